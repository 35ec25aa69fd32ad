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

func TestNewTimeSlot(t *testing.T) {
	t.Run("rejects inverted and empty intervals", func(t *testing.T) {
		_, err := booking.NewTimeSlot(at(11, 0), at(10, 0))
		assert.ErrorIs(t, err, booking.ErrInvalidTimeSlot)

		_, err = booking.NewTimeSlot(at(10, 0), at(10, 0))
		assert.ErrorIs(t, err, booking.ErrInvalidTimeSlot)
	})

	t.Run("not-past validation uses the supplied clock", func(t *testing.T) {
		s := slot(t, at(10, 0), at(11, 0))
		assert.NoError(t, s.ValidateNotPast(at(9, 0)))
		assert.ErrorIs(t, s.ValidateNotPast(at(10, 30)), booking.ErrSlotInPast)
	})

	t.Run("tstzrange rendering is half-open", func(t *testing.T) {
		s := slot(t, at(10, 0), at(11, 0))
		assert.Equal(t, "[2025-11-10T10:00:00Z,2025-11-10T11:00:00Z)", s.ToTstzrange())
	})
}

func TestBookingLifecycle(t *testing.T) {
	newBooking := func(t *testing.T) *booking.Booking {
		t.Helper()
		return booking.NewBooking(uuid.New(), staffX, uuid.New(), nil, slot(t, at(10, 0), at(11, 0)), booking.NewNote("intro call"))
	}

	t.Run("created confirmed", func(t *testing.T) {
		b := newBooking(t)
		assert.Equal(t, booking.StatusConfirmed, b.Status())
		assert.True(t, b.IsBlocking())
		assert.Nil(t, b.PatternID())
	})

	t.Run("cancel is terminal", func(t *testing.T) {
		b := newBooking(t)
		require.NoError(t, b.Cancel())
		assert.Equal(t, booking.StatusCancelled, b.Status())
		assert.False(t, b.IsBlocking())
		assert.ErrorIs(t, b.Cancel(), booking.ErrAlreadyCancelled)
	})

	t.Run("reschedule replaces the slot in place", func(t *testing.T) {
		b := newBooking(t)
		target := slot(t, at(14, 0), at(15, 0))
		require.NoError(t, b.Reschedule(target))
		assert.Equal(t, target, b.Slot())
		assert.Equal(t, booking.StatusConfirmed, b.Status())
	})

	t.Run("completed bookings cannot be rescheduled", func(t *testing.T) {
		b := booking.ReconstructBooking(
			uuid.New(), uuid.New(), staffX, uuid.New(), nil,
			slot(t, at(10, 0), at(11, 0)), booking.StatusCompleted, booking.NewNote(""),
			time.Now(), time.Now(),
		)
		assert.ErrorIs(t, b.Reschedule(slot(t, at(14, 0), at(15, 0))), booking.ErrNotReschedulable)
	})
}
