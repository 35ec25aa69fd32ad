package booking

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidStatus    = errors.New("invalid booking status")
	ErrAlreadyCancelled = errors.New("booking is already cancelled")
	ErrNotReschedulable = errors.New("booking cannot be rescheduled in its current status")
)

type Booking struct {
	id        uuid.UUID
	serviceID uuid.UUID
	staffID   uuid.UUID
	clientID  uuid.UUID
	patternID *uuid.UUID
	slot      TimeSlot
	status    Status
	note      Note
	createdAt time.Time
	updatedAt time.Time
}

// NewBooking creates a confirmed booking. patternID links occurrences
// materialized from a recurrence pattern; it is nil for one-off bookings.
func NewBooking(
	serviceID, staffID, clientID uuid.UUID,
	patternID *uuid.UUID,
	slot TimeSlot,
	note Note,
) *Booking {
	return &Booking{
		id:        uuid.New(),
		serviceID: serviceID,
		staffID:   staffID,
		clientID:  clientID,
		patternID: patternID,
		slot:      slot,
		status:    StatusConfirmed,
		note:      note,
	}
}

func ReconstructBooking(
	id, serviceID, staffID, clientID uuid.UUID,
	patternID *uuid.UUID,
	slot TimeSlot,
	status Status,
	note Note,
	createdAt, updatedAt time.Time,
) *Booking {
	return &Booking{
		id:        id,
		serviceID: serviceID,
		staffID:   staffID,
		clientID:  clientID,
		patternID: patternID,
		slot:      slot,
		status:    status,
		note:      note,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

func (b *Booking) Cancel() error {
	if b.status == StatusCancelled {
		return ErrAlreadyCancelled
	}
	b.status = StatusCancelled
	return nil
}

// Reschedule moves the booking to a new slot in place. Availability of the
// target slot is the caller's responsibility (checked with the booking's own
// ID excluded).
func (b *Booking) Reschedule(slot TimeSlot) error {
	switch b.status {
	case StatusPending, StatusConfirmed:
		b.slot = slot
		return nil
	default:
		return ErrNotReschedulable
	}
}

func (b *Booking) IsBlocking() bool {
	return b.status.Blocks()
}

func (b *Booking) HasEnded(now time.Time) bool {
	return now.After(b.slot.End())
}

func (b *Booking) ID() uuid.UUID         { return b.id }
func (b *Booking) ServiceID() uuid.UUID  { return b.serviceID }
func (b *Booking) StaffID() uuid.UUID    { return b.staffID }
func (b *Booking) ClientID() uuid.UUID   { return b.clientID }
func (b *Booking) PatternID() *uuid.UUID { return b.patternID }
func (b *Booking) Slot() TimeSlot        { return b.slot }
func (b *Booking) Status() Status        { return b.status }
func (b *Booking) Note() Note            { return b.note }
func (b *Booking) CreatedAt() time.Time  { return b.createdAt }
func (b *Booking) UpdatedAt() time.Time  { return b.updatedAt }
