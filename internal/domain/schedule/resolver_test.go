//go:build unit

package schedule_test

import (
	"testing"
	"time"

	"slotbook/internal/domain/schedule"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(v int) *int { return &v }

func timePtr(v time.Time) *time.Time { return &v }

func date(y int, m time.Month, d, hh, mm int) time.Time {
	return time.Date(y, m, d, hh, mm, 0, 0, time.UTC)
}

func weeklyPattern(t *testing.T, mutate func(*schedule.PatternSpec)) *schedule.Pattern {
	t.Helper()
	spec := schedule.PatternSpec{
		Frequency:   schedule.FrequencyWeekly,
		DayOfWeek:   intPtr(2), // Tuesday
		StartDate:   date(2025, time.November, 4, 14, 0),
		TimeZone:    "UTC",
		DurationMin: 60,
	}
	if mutate != nil {
		mutate(&spec)
	}
	p, err := schedule.NewPattern(spec)
	require.NoError(t, err)
	return p
}

func monthlyPattern(t *testing.T, dayOfMonth int, start time.Time) *schedule.Pattern {
	t.Helper()
	p, err := schedule.NewPattern(schedule.PatternSpec{
		Frequency:   schedule.FrequencyMonthly,
		DayOfMonth:  intPtr(dayOfMonth),
		StartDate:   start,
		TimeZone:    "UTC",
		DurationMin: 60,
	})
	require.NoError(t, err)
	return p
}

func TestNextOccurrence_Weekly(t *testing.T) {
	t.Run("advances to the next anchored Tuesday", func(t *testing.T) {
		p := weeklyPattern(t, nil)

		next, ok, err := p.NextOccurrence(date(2025, time.November, 5, 0, 0))
		require.NoError(t, err)
		require.True(t, ok)
		assert.Equal(t, date(2025, time.November, 11, 14, 0), next)
	})

	t.Run("search is inclusive of the lower bound", func(t *testing.T) {
		p := weeklyPattern(t, nil)

		next, ok, err := p.NextOccurrence(date(2025, time.November, 11, 14, 0))
		require.NoError(t, err)
		require.True(t, ok)
		assert.Equal(t, date(2025, time.November, 11, 14, 0), next)
	})

	t.Run("returns the anchor when from precedes it", func(t *testing.T) {
		p := weeklyPattern(t, nil)

		next, ok, err := p.NextOccurrence(date(2025, time.October, 1, 0, 0))
		require.NoError(t, err)
		require.True(t, ok)
		assert.Equal(t, p.StartDate(), next)
	})

	t.Run("interval multiplies the weekly step", func(t *testing.T) {
		p := weeklyPattern(t, func(s *schedule.PatternSpec) { s.Interval = 2 })

		next, ok, err := p.NextOccurrence(date(2025, time.November, 5, 0, 0))
		require.NoError(t, err)
		require.True(t, ok)
		assert.Equal(t, date(2025, time.November, 18, 14, 0), next)
	})

	t.Run("every result lands on the pattern weekday with the anchor clock", func(t *testing.T) {
		p := weeklyPattern(t, nil)

		froms := []time.Time{
			date(2025, time.November, 6, 3, 15),
			date(2025, time.December, 25, 23, 59),
			date(2026, time.March, 1, 0, 0),
		}
		for _, from := range froms {
			next, ok, err := p.NextOccurrence(from)
			require.NoError(t, err)
			require.True(t, ok)
			assert.Equal(t, time.Tuesday, next.Weekday())
			assert.False(t, next.Before(from))
			hh, mm, _ := next.Clock()
			assert.Equal(t, 14, hh)
			assert.Equal(t, 0, mm)
		}
	})
}

func TestNextOccurrence_Biweekly(t *testing.T) {
	t.Run("fixed fourteen day cadence", func(t *testing.T) {
		p := weeklyPattern(t, func(s *schedule.PatternSpec) { s.Frequency = schedule.FrequencyBiweekly })

		next, ok, err := p.NextOccurrence(date(2025, time.November, 5, 0, 0))
		require.NoError(t, err)
		require.True(t, ok)
		assert.Equal(t, date(2025, time.November, 18, 14, 0), next)
	})

	t.Run("interval does not multiply the biweekly step", func(t *testing.T) {
		p := weeklyPattern(t, func(s *schedule.PatternSpec) {
			s.Frequency = schedule.FrequencyBiweekly
			s.Interval = 3
		})

		next, ok, err := p.NextOccurrence(date(2025, time.November, 5, 0, 0))
		require.NoError(t, err)
		require.True(t, ok)
		assert.Equal(t, date(2025, time.November, 18, 14, 0), next)
	})
}

func TestNextOccurrence_Monthly(t *testing.T) {
	t.Run("short month clamps to its last day", func(t *testing.T) {
		p := monthlyPattern(t, 31, date(2025, time.January, 31, 9, 30))

		next, ok, err := p.NextOccurrence(date(2025, time.February, 1, 0, 0))
		require.NoError(t, err)
		require.True(t, ok)
		assert.Equal(t, date(2025, time.February, 28, 9, 30), next)
	})

	t.Run("leap February clamps to the 29th", func(t *testing.T) {
		p := monthlyPattern(t, 31, date(2024, time.January, 31, 9, 30))

		next, ok, err := p.NextOccurrence(date(2024, time.February, 1, 0, 0))
		require.NoError(t, err)
		require.True(t, ok)
		assert.Equal(t, date(2024, time.February, 29, 9, 30), next)
	})

	t.Run("clamping never skips a month", func(t *testing.T) {
		p := monthlyPattern(t, 31, date(2025, time.January, 31, 9, 30))

		next, ok, err := p.NextOccurrence(date(2025, time.March, 1, 0, 0))
		require.NoError(t, err)
		require.True(t, ok)
		assert.Equal(t, date(2025, time.March, 31, 9, 30), next)
	})

	t.Run("interval steps whole months from the anchor", func(t *testing.T) {
		p, err := schedule.NewPattern(schedule.PatternSpec{
			Frequency:   schedule.FrequencyMonthly,
			Interval:    2,
			DayOfMonth:  intPtr(15),
			StartDate:   date(2025, time.January, 15, 10, 0),
			TimeZone:    "UTC",
			DurationMin: 45,
		})
		require.NoError(t, err)

		next, ok, err := p.NextOccurrence(date(2025, time.February, 1, 0, 0))
		require.NoError(t, err)
		require.True(t, ok)
		assert.Equal(t, date(2025, time.March, 15, 10, 0), next)
	})

	t.Run("year rollover", func(t *testing.T) {
		p := monthlyPattern(t, 15, date(2025, time.November, 15, 10, 0))

		next, ok, err := p.NextOccurrence(date(2025, time.December, 20, 0, 0))
		require.NoError(t, err)
		require.True(t, ok)
		assert.Equal(t, date(2026, time.January, 15, 10, 0), next)
	})
}

func TestNextOccurrence_Termination(t *testing.T) {
	t.Run("candidate strictly after end date exhausts the series", func(t *testing.T) {
		p := weeklyPattern(t, func(s *schedule.PatternSpec) {
			s.EndDate = timePtr(date(2025, time.November, 10, 0, 0))
		})

		_, ok, err := p.NextOccurrence(date(2025, time.November, 5, 0, 0))
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("candidate exactly on end date still occurs", func(t *testing.T) {
		p := weeklyPattern(t, func(s *schedule.PatternSpec) {
			s.EndDate = timePtr(date(2025, time.November, 11, 14, 0))
		})

		next, ok, err := p.NextOccurrence(date(2025, time.November, 5, 0, 0))
		require.NoError(t, err)
		require.True(t, ok)
		assert.Equal(t, date(2025, time.November, 11, 14, 0), next)
	})

	t.Run("consumed occurrence budget exhausts regardless of date", func(t *testing.T) {
		generated := make([]uuid.UUID, 5)
		for i := range generated {
			generated[i] = uuid.New()
		}
		p := schedule.ReconstructPattern(
			uuid.New(), schedule.FrequencyWeekly, 1,
			intPtr(2), nil,
			date(2025, time.November, 4, 14, 0), "UTC", 60,
			nil, intPtr(5),
			schedule.StatusActive, generated,
		)

		_, ok, err := p.NextOccurrence(date(2099, time.January, 1, 0, 0))
		require.NoError(t, err)
		assert.False(t, ok)
	})
}

func TestNextOccurrence_Validation(t *testing.T) {
	anchor := date(2025, time.November, 4, 14, 0)

	tests := []struct {
		name    string
		pattern *schedule.Pattern
		errIs   error
	}{
		{
			name: "weekly without day of week",
			pattern: schedule.ReconstructPattern(uuid.New(), schedule.FrequencyWeekly, 1,
				nil, nil, anchor, "UTC", 60, nil, nil, schedule.StatusActive, nil),
			errIs: schedule.ErrDayOfWeekRequired,
		},
		{
			name: "biweekly without day of week",
			pattern: schedule.ReconstructPattern(uuid.New(), schedule.FrequencyBiweekly, 1,
				nil, nil, anchor, "UTC", 60, nil, nil, schedule.StatusActive, nil),
			errIs: schedule.ErrDayOfWeekRequired,
		},
		{
			name: "monthly without day of month",
			pattern: schedule.ReconstructPattern(uuid.New(), schedule.FrequencyMonthly, 1,
				nil, nil, anchor, "UTC", 60, nil, nil, schedule.StatusActive, nil),
			errIs: schedule.ErrDayOfMonthRequired,
		},
		{
			name: "day of week out of range",
			pattern: schedule.ReconstructPattern(uuid.New(), schedule.FrequencyWeekly, 1,
				intPtr(7), nil, anchor, "UTC", 60, nil, nil, schedule.StatusActive, nil),
			errIs: schedule.ErrInvalidDayOfWeek,
		},
		{
			name: "day of month out of range",
			pattern: schedule.ReconstructPattern(uuid.New(), schedule.FrequencyMonthly, 1,
				nil, intPtr(0), anchor, "UTC", 60, nil, nil, schedule.StatusActive, nil),
			errIs: schedule.ErrInvalidDayOfMonth,
		},
		{
			name: "day of month on a weekly pattern",
			pattern: schedule.ReconstructPattern(uuid.New(), schedule.FrequencyWeekly, 1,
				intPtr(2), intPtr(10), anchor, "UTC", 60, nil, nil, schedule.StatusActive, nil),
			errIs: schedule.ErrDayOfMonthNotAllowed,
		},
		{
			name: "day of week on a monthly pattern",
			pattern: schedule.ReconstructPattern(uuid.New(), schedule.FrequencyMonthly, 1,
				intPtr(2), intPtr(10), anchor, "UTC", 60, nil, nil, schedule.StatusActive, nil),
			errIs: schedule.ErrDayOfWeekNotAllowed,
		},
		{
			name: "non-positive interval",
			pattern: schedule.ReconstructPattern(uuid.New(), schedule.FrequencyWeekly, 0,
				intPtr(2), nil, anchor, "UTC", 60, nil, nil, schedule.StatusActive, nil),
			errIs: schedule.ErrInvalidInterval,
		},
		{
			name: "unknown frequency",
			pattern: schedule.ReconstructPattern(uuid.New(), schedule.Frequency("daily"), 1,
				intPtr(2), nil, anchor, "UTC", 60, nil, nil, schedule.StatusActive, nil),
			errIs: schedule.ErrUnknownFrequency,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := tt.pattern.NextOccurrence(anchor)
			assert.ErrorIs(t, err, tt.errIs)
		})
	}
}
