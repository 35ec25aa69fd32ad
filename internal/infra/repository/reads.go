package repository

import (
	"context"
	"time"

	"slotbook/internal/domain/booking"
	"slotbook/internal/infra"
	"slotbook/internal/infra/db"
	"slotbook/internal/usecase/shared"

	"github.com/google/uuid"
)

// CommandReads loads the snapshots command handlers validate against.
type CommandReads struct {
	dbtx db.DBTX
}

func NewCommandReads(dbtx db.DBTX) *CommandReads {
	return &CommandReads{dbtx: dbtx}
}

var _ shared.CommandReads = (*CommandReads)(nil)

func (r *CommandReads) ServiceByID(ctx context.Context, id uuid.UUID) (*shared.ServiceSnapshot, error) {
	const q = `
		SELECT id, name, duration_min, price_cents, is_active
		FROM services
		WHERE id = $1`

	var s shared.ServiceSnapshot
	err := r.dbtx.QueryRow(ctx, q, id).Scan(&s.ID, &s.Name, &s.DurationMin, &s.PriceCents, &s.IsActive)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load service", err, classify(err))
	}
	return &s, nil
}

func (r *CommandReads) StaffByID(ctx context.Context, id uuid.UUID) (*shared.StaffSnapshot, error) {
	const q = `
		SELECT id, name, time_zone, is_active
		FROM staff
		WHERE id = $1`

	var s shared.StaffSnapshot
	err := r.dbtx.QueryRow(ctx, q, id).Scan(&s.ID, &s.Name, &s.TimeZone, &s.IsActive)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load staff", err, classify(err))
	}
	return &s, nil
}

func (r *CommandReads) BookingByID(ctx context.Context, id uuid.UUID) (*booking.Booking, error) {
	const q = bookingSelect + ` WHERE id = $1`

	row := r.dbtx.QueryRow(ctx, q, id)
	b, err := scanBooking(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load booking", err, classify(err))
	}
	return b, nil
}

func (r *CommandReads) StaffCalendar(ctx context.Context, staffID uuid.UUID, from, to time.Time) ([]*booking.Booking, error) {
	const q = bookingSelect + `
		WHERE staff_id = $1
		  AND slot && tstzrange($2, $3, '[)')
		ORDER BY lower(slot)`

	rows, err := r.dbtx.Query(ctx, q, staffID, from, to)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load staff calendar", err, classify(err))
	}
	defer rows.Close()

	var bookings []*booking.Booking
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan booking row", err)
		}
		bookings = append(bookings, b)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate staff calendar", err)
	}
	return bookings, nil
}

const bookingSelect = `
	SELECT id, service_id, staff_id, client_id, pattern_id,
	       lower(slot), upper(slot), status, note, created_at, updated_at
	FROM bookings`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanBooking(row rowScanner) (*booking.Booking, error) {
	var (
		id, serviceID, staffID, clientID uuid.UUID
		patternID                        *uuid.UUID
		start, end                       time.Time
		status, note                     string
		createdAt, updatedAt             time.Time
	)
	err := row.Scan(&id, &serviceID, &staffID, &clientID, &patternID,
		&start, &end, &status, &note, &createdAt, &updatedAt)
	if err != nil {
		return nil, err
	}

	slot, err := booking.NewTimeSlot(start, end)
	if err != nil {
		return nil, err
	}
	return booking.ReconstructBooking(
		id, serviceID, staffID, clientID, patternID,
		slot, booking.Status(status), booking.NewNote(note),
		createdAt, updatedAt,
	), nil
}
