//go:build unit

package schedule_test

import (
	"testing"
	"time"

	"slotbook/internal/domain/schedule"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOccurrenceDates_Weekly(t *testing.T) {
	t.Run("seeds with the anchor and steps seven days", func(t *testing.T) {
		p := weeklyPattern(t, nil)

		dates, err := p.OccurrenceDates(4)
		require.NoError(t, err)

		want := []time.Time{
			date(2025, time.November, 4, 14, 0),
			date(2025, time.November, 11, 14, 0),
			date(2025, time.November, 18, 14, 0),
			date(2025, time.November, 25, 14, 0),
		}
		if diff := cmp.Diff(want, dates); diff != "" {
			t.Errorf("occurrence dates mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("consecutive biweekly dates are exactly fourteen days apart", func(t *testing.T) {
		p := weeklyPattern(t, func(s *schedule.PatternSpec) { s.Frequency = schedule.FrequencyBiweekly })

		dates, err := p.OccurrenceDates(6)
		require.NoError(t, err)
		require.Len(t, dates, 6)
		for i := 1; i < len(dates); i++ {
			assert.Equal(t, 14*24*time.Hour, dates[i].Sub(dates[i-1]))
		}
	})

	t.Run("repeated expansion is identical", func(t *testing.T) {
		p := weeklyPattern(t, nil)

		first, err := p.OccurrenceDates(10)
		require.NoError(t, err)
		second, err := p.OccurrenceDates(10)
		require.NoError(t, err)
		assert.Empty(t, cmp.Diff(first, second))
	})
}

func TestOccurrenceDates_Monthly(t *testing.T) {
	t.Run("short months clamp without skipping", func(t *testing.T) {
		p := monthlyPattern(t, 31, date(2025, time.January, 31, 9, 30))

		dates, err := p.OccurrenceDates(4)
		require.NoError(t, err)

		want := []time.Time{
			date(2025, time.January, 31, 9, 30),
			date(2025, time.February, 28, 9, 30),
			date(2025, time.March, 31, 9, 30),
			date(2025, time.April, 30, 9, 30),
		}
		if diff := cmp.Diff(want, dates); diff != "" {
			t.Errorf("occurrence dates mismatch (-want +got):\n%s", diff)
		}
	})
}

func TestOccurrenceDates_Bounds(t *testing.T) {
	t.Run("never exceeds maxToGenerate", func(t *testing.T) {
		p := weeklyPattern(t, nil)

		dates, err := p.OccurrenceDates(3)
		require.NoError(t, err)
		assert.Len(t, dates, 3)
	})

	t.Run("stops at the end date", func(t *testing.T) {
		p := weeklyPattern(t, func(s *schedule.PatternSpec) {
			s.EndDate = timePtr(date(2025, time.November, 18, 14, 0))
		})

		dates, err := p.OccurrenceDates(50)
		require.NoError(t, err)
		require.Len(t, dates, 3)
		for _, d := range dates {
			assert.False(t, d.After(*p.EndDate()))
		}
	})

	t.Run("occurrence cap bounds the expansion", func(t *testing.T) {
		p := weeklyPattern(t, func(s *schedule.PatternSpec) {
			s.MaxOccurrences = intPtr(5)
		})

		dates, err := p.OccurrenceDates(50)
		require.NoError(t, err)
		assert.Len(t, dates, 5)
	})

	t.Run("already materialized bookings shrink the budget", func(t *testing.T) {
		p := schedule.ReconstructPattern(
			uuid.New(), schedule.FrequencyWeekly, 1,
			intPtr(2), nil,
			date(2025, time.November, 4, 14, 0), "UTC", 60,
			nil, intPtr(5),
			schedule.StatusActive, []uuid.UUID{uuid.New(), uuid.New()},
		)

		dates, err := p.OccurrenceDates(50)
		require.NoError(t, err)
		assert.Len(t, dates, 3)
	})

	t.Run("exhausted budget yields nothing", func(t *testing.T) {
		p := schedule.ReconstructPattern(
			uuid.New(), schedule.FrequencyWeekly, 1,
			intPtr(2), nil,
			date(2025, time.November, 4, 14, 0), "UTC", 60,
			nil, intPtr(2),
			schedule.StatusActive, []uuid.UUID{uuid.New(), uuid.New()},
		)

		dates, err := p.OccurrenceDates(50)
		require.NoError(t, err)
		assert.Empty(t, dates)
	})

	t.Run("anchor past the end date yields nothing", func(t *testing.T) {
		p := weeklyPattern(t, func(s *schedule.PatternSpec) {
			s.EndDate = timePtr(date(2025, time.November, 1, 0, 0))
		})

		dates, err := p.OccurrenceDates(10)
		require.NoError(t, err)
		assert.Empty(t, dates)
	})

	t.Run("both ceilings set, first reached wins", func(t *testing.T) {
		// endDate allows 3 dates, occurrence cap allows 5: endDate wins.
		p := weeklyPattern(t, func(s *schedule.PatternSpec) {
			s.EndDate = timePtr(date(2025, time.November, 18, 14, 0))
			s.MaxOccurrences = intPtr(5)
		})
		dates, err := p.OccurrenceDates(50)
		require.NoError(t, err)
		assert.Len(t, dates, 3)

		// occurrence cap allows 2, endDate allows many: the cap wins.
		p = weeklyPattern(t, func(s *schedule.PatternSpec) {
			s.EndDate = timePtr(date(2026, time.November, 18, 14, 0))
			s.MaxOccurrences = intPtr(2)
		})
		dates, err = p.OccurrenceDates(50)
		require.NoError(t, err)
		assert.Len(t, dates, 2)
	})
}

func TestOccurrenceDates_Validation(t *testing.T) {
	p := schedule.ReconstructPattern(
		uuid.New(), schedule.FrequencyWeekly, 1,
		nil, nil,
		date(2025, time.November, 4, 14, 0), "UTC", 60,
		nil, nil,
		schedule.StatusActive, nil,
	)

	_, err := p.OccurrenceDates(10)
	assert.ErrorIs(t, err, schedule.ErrDayOfWeekRequired)
}
