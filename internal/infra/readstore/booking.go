package readstore

import (
	"context"
	"time"

	"slotbook/internal/infra"
	"slotbook/internal/infra/db"
	"slotbook/internal/usecase/queries"

	"github.com/google/uuid"
)

type BookingReadStore struct {
	dbtx db.DBTX
}

func NewBookingReadStore(dbtx db.DBTX) *BookingReadStore {
	return &BookingReadStore{dbtx: dbtx}
}

var _ queries.BookingViewRepo = (*BookingReadStore)(nil)

const bookingViewSelect = `
	SELECT b.id, b.service_id, s.name, b.staff_id, st.name,
	       b.client_id, u.email, b.pattern_id,
	       lower(b.slot), upper(b.slot), b.status, b.note,
	       b.created_at, b.updated_at
	FROM bookings b
	JOIN services s ON s.id = b.service_id
	JOIN staff st ON st.id = b.staff_id
	JOIN users u ON u.id = b.client_id`

func (r *BookingReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.BookingView, error) {
	row := r.dbtx.QueryRow(ctx, bookingViewSelect+` WHERE b.id = $1`, id)

	var v queries.BookingView
	var note *string
	err := row.Scan(&v.ID, &v.ServiceID, &v.ServiceName, &v.StaffID, &v.StaffName,
		&v.ClientID, &v.ClientEmail, &v.PatternID,
		&v.StartsAt, &v.EndsAt, &v.Status, &note,
		&v.CreatedAt, &v.UpdatedAt)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find booking by ID", err, classify(err))
	}
	if note != nil && *note != "" {
		v.Note = note
	}
	return &v, nil
}

func (r *BookingReadStore) FindByClientID(ctx context.Context, clientID uuid.UUID, limit int32) ([]*queries.BookingListItem, error) {
	const q = `
		SELECT b.id, s.name, st.name, lower(b.slot), upper(b.slot), b.status
		FROM bookings b
		JOIN services s ON s.id = b.service_id
		JOIN staff st ON st.id = b.staff_id
		WHERE b.client_id = $1
		ORDER BY lower(b.slot) DESC
		LIMIT $2`

	rows, err := r.dbtx.Query(ctx, q, clientID, limit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list client bookings", err)
	}
	defer rows.Close()

	return scanListItems(rows)
}

func (r *BookingReadStore) FindByStaffBetween(ctx context.Context, staffID uuid.UUID, from, to time.Time) ([]*queries.BookingListItem, error) {
	const q = `
		SELECT b.id, s.name, st.name, lower(b.slot), upper(b.slot), b.status
		FROM bookings b
		JOIN services s ON s.id = b.service_id
		JOIN staff st ON st.id = b.staff_id
		WHERE b.staff_id = $1
		  AND b.slot && tstzrange($2, $3, '[)')
		ORDER BY lower(b.slot)`

	rows, err := r.dbtx.Query(ctx, q, staffID, from, to)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list staff bookings", err)
	}
	defer rows.Close()

	return scanListItems(rows)
}

type rowIter interface {
	Next() bool
	Scan(dest ...any) error
	Err() error
}

func scanListItems(rows rowIter) ([]*queries.BookingListItem, error) {
	var items []*queries.BookingListItem
	for rows.Next() {
		var item queries.BookingListItem
		err := rows.Scan(&item.ID, &item.ServiceName, &item.StaffName,
			&item.StartsAt, &item.EndsAt, &item.Status)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan booking list item", err)
		}
		items = append(items, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate booking list", err)
	}
	return items, nil
}
