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

func TestNewPattern(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		p := weeklyPattern(t, nil)

		assert.NotEqual(t, uuid.Nil, p.ID())
		assert.Equal(t, 1, p.Interval())
		assert.Equal(t, schedule.StatusActive, p.Status())
		assert.Empty(t, p.GeneratedBookingIDs())
		assert.Equal(t, time.Hour, p.Duration())
	})

	t.Run("rejects non-positive duration", func(t *testing.T) {
		_, err := schedule.NewPattern(schedule.PatternSpec{
			Frequency: schedule.FrequencyWeekly,
			DayOfWeek: intPtr(1),
			StartDate: date(2025, time.November, 3, 9, 0),
		})
		assert.ErrorIs(t, err, schedule.ErrInvalidDuration)
	})

	t.Run("rejects non-positive occurrence cap", func(t *testing.T) {
		_, err := schedule.NewPattern(schedule.PatternSpec{
			Frequency:      schedule.FrequencyWeekly,
			DayOfWeek:      intPtr(1),
			StartDate:      date(2025, time.November, 3, 9, 0),
			DurationMin:    30,
			MaxOccurrences: intPtr(0),
		})
		assert.ErrorIs(t, err, schedule.ErrInvalidOccurrenceCap)
	})

	t.Run("rejects structurally invalid specs", func(t *testing.T) {
		_, err := schedule.NewPattern(schedule.PatternSpec{
			Frequency:   schedule.FrequencyMonthly,
			StartDate:   date(2025, time.November, 3, 9, 0),
			DurationMin: 30,
		})
		assert.ErrorIs(t, err, schedule.ErrDayOfMonthRequired)
	})
}

func TestRecordGeneratedBooking(t *testing.T) {
	t.Run("appends in order", func(t *testing.T) {
		p := weeklyPattern(t, nil)
		first, second := uuid.New(), uuid.New()

		require.NoError(t, p.RecordGeneratedBooking(first))
		require.NoError(t, p.RecordGeneratedBooking(second))
		assert.Equal(t, []uuid.UUID{first, second}, p.GeneratedBookingIDs())
	})

	t.Run("refuses to exceed the occurrence cap", func(t *testing.T) {
		p := weeklyPattern(t, func(s *schedule.PatternSpec) { s.MaxOccurrences = intPtr(1) })

		require.NoError(t, p.RecordGeneratedBooking(uuid.New()))
		err := p.RecordGeneratedBooking(uuid.New())
		assert.ErrorIs(t, err, schedule.ErrOccurrenceBudgetExhausted)
		assert.Len(t, p.GeneratedBookingIDs(), 1)
	})
}

func TestFrequencyAndStatusParsing(t *testing.T) {
	for _, s := range []string{"weekly", "biweekly", "monthly"} {
		f, err := schedule.NewFrequency(s)
		require.NoError(t, err)
		assert.Equal(t, s, f.String())
	}
	_, err := schedule.NewFrequency("daily")
	assert.ErrorIs(t, err, schedule.ErrUnknownFrequency)

	for _, s := range []string{"active", "paused", "cancelled", "completed"} {
		st, err := schedule.NewStatus(s)
		require.NoError(t, err)
		assert.Equal(t, s, st.String())
	}
	_, err = schedule.NewStatus("archived")
	assert.ErrorIs(t, err, schedule.ErrInvalidStatus)
}
