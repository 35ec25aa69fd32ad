//go:build unit

package booking_test

import (
	"testing"
	"time"

	"slotbook/internal/domain/booking"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var staffX = uuid.New()

func at(hh, mm int) time.Time {
	return time.Date(2025, time.November, 10, hh, mm, 0, 0, time.UTC)
}

func slot(t *testing.T, start, end time.Time) booking.TimeSlot {
	t.Helper()
	s, err := booking.NewTimeSlot(start, end)
	require.NoError(t, err)
	return s
}

func existingBooking(t *testing.T, staffID uuid.UUID, start, end time.Time, status booking.Status) *booking.Booking {
	t.Helper()
	return booking.ReconstructBooking(
		uuid.New(), uuid.New(), staffID, uuid.New(), nil,
		slot(t, start, end), status, booking.NewNote(""),
		time.Now(), time.Now(),
	)
}

func TestIsSlotAvailable_OverlapClauses(t *testing.T) {
	// Existing booking occupies [10:00, 11:00).
	existing := []*booking.Booking{
		existingBooking(t, staffX, at(10, 0), at(11, 0), booking.StatusConfirmed),
	}

	tests := []struct {
		name      string
		start     time.Time
		end       time.Time
		available bool
	}{
		{"identical interval", at(10, 0), at(11, 0), false},
		{"proposed start inside existing", at(10, 30), at(11, 30), false},
		{"proposed end inside existing", at(9, 30), at(10, 30), false},
		{"existing contained in proposed", at(9, 0), at(12, 0), false},
		{"proposed contained in existing", at(10, 15), at(10, 45), false},
		{"touching existing end", at(11, 0), at(12, 0), true},
		{"touching existing start", at(9, 0), at(10, 0), true},
		{"fully before", at(8, 0), at(9, 0), true},
		{"fully after", at(12, 0), at(13, 0), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := booking.IsSlotAvailable(staffX, slot(t, tt.start, tt.end), existing, uuid.Nil)
			assert.Equal(t, tt.available, got)
		})
	}
}

func TestIsSlotAvailable_StatusFiltering(t *testing.T) {
	proposed := slot(t, at(10, 0), at(11, 0))

	blocking := []booking.Status{
		booking.StatusPending,
		booking.StatusConfirmed,
		booking.StatusCompleted,
		booking.StatusRescheduled,
	}
	for _, status := range blocking {
		t.Run("blocked by "+status.String(), func(t *testing.T) {
			existing := []*booking.Booking{existingBooking(t, staffX, at(10, 0), at(11, 0), status)}
			assert.False(t, booking.IsSlotAvailable(staffX, proposed, existing, uuid.Nil))
		})
	}

	released := []booking.Status{booking.StatusCancelled, booking.StatusNoShow}
	for _, status := range released {
		t.Run("released by "+status.String(), func(t *testing.T) {
			existing := []*booking.Booking{existingBooking(t, staffX, at(10, 0), at(11, 0), status)}
			assert.True(t, booking.IsSlotAvailable(staffX, proposed, existing, uuid.Nil))
		})
	}
}

func TestIsSlotAvailable_Exclusion(t *testing.T) {
	t.Run("exclude ID skips the only overlapping booking", func(t *testing.T) {
		rescheduled := existingBooking(t, staffX, at(10, 0), at(11, 0), booking.StatusConfirmed)
		existing := []*booking.Booking{rescheduled}

		proposed := slot(t, at(10, 30), at(11, 30))
		assert.False(t, booking.IsSlotAvailable(staffX, proposed, existing, uuid.Nil))
		assert.True(t, booking.IsSlotAvailable(staffX, proposed, existing, rescheduled.ID()))
	})

	t.Run("exclude ID does not skip other bookings", func(t *testing.T) {
		first := existingBooking(t, staffX, at(10, 0), at(11, 0), booking.StatusConfirmed)
		second := existingBooking(t, staffX, at(11, 0), at(12, 0), booking.StatusConfirmed)
		existing := []*booking.Booking{first, second}

		proposed := slot(t, at(10, 30), at(11, 30))
		assert.False(t, booking.IsSlotAvailable(staffX, proposed, existing, first.ID()))
	})
}

func TestIsSlotAvailable_Scoping(t *testing.T) {
	t.Run("bookings for another staff member are ignored", func(t *testing.T) {
		other := existingBooking(t, uuid.New(), at(10, 0), at(11, 0), booking.StatusConfirmed)
		proposed := slot(t, at(10, 0), at(11, 0))
		assert.True(t, booking.IsSlotAvailable(staffX, proposed, []*booking.Booking{other}, uuid.Nil))
	})

	t.Run("empty calendar is trivially available", func(t *testing.T) {
		proposed := slot(t, at(10, 0), at(11, 0))
		assert.True(t, booking.IsSlotAvailable(staffX, proposed, nil, uuid.Nil))
	})
}
