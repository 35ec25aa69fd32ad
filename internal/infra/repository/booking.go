package repository

import (
	"context"

	"slotbook/internal/domain/booking"
	"slotbook/internal/infra"
	"slotbook/internal/infra/db"
	"slotbook/internal/usecase/shared"

	"github.com/google/uuid"
)

type BookingRepository struct {
	dbtx db.DBTX
}

func NewBookingRepository(dbtx db.DBTX) *BookingRepository {
	return &BookingRepository{dbtx: dbtx}
}

var _ shared.BookingRepository = (*BookingRepository)(nil)

func (r *BookingRepository) Create(ctx context.Context, b *booking.Booking) (uuid.UUID, error) {
	const q = `
		INSERT INTO bookings (id, service_id, staff_id, client_id, pattern_id, slot, status, note)
		VALUES ($1, $2, $3, $4, $5, tstzrange($6, $7, '[)'), $8, $9)
		RETURNING id`

	var id uuid.UUID
	err := r.dbtx.QueryRow(ctx, q,
		b.ID(),
		b.ServiceID(),
		b.StaffID(),
		b.ClientID(),
		b.PatternID(),
		b.Slot().Start(),
		b.Slot().End(),
		string(b.Status()),
		b.Note().String(),
	).Scan(&id)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create booking", err, classify(err))
	}
	return id, nil
}

func (r *BookingRepository) UpdateSlot(ctx context.Context, id uuid.UUID, slot booking.TimeSlot) error {
	const q = `
		UPDATE bookings
		SET slot = tstzrange($2, $3, '[)'), updated_at = now()
		WHERE id = $1`

	tag, err := r.dbtx.Exec(ctx, q, id, slot.Start(), slot.End())
	if err != nil {
		return infra.WrapRepoErr("failed to update booking slot", err, classify(err))
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("booking not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *BookingRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status booking.Status) error {
	const q = `
		UPDATE bookings
		SET status = $2, updated_at = now()
		WHERE id = $1`

	tag, err := r.dbtx.Exec(ctx, q, id, string(status))
	if err != nil {
		return infra.WrapRepoErr("failed to update booking status", err, classify(err))
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("booking not found", nil, infra.KindNotFound)
	}
	return nil
}
