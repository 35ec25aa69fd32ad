package readstore

import (
	"context"
	"time"

	"slotbook/internal/infra"
	"slotbook/internal/infra/db"
	"slotbook/internal/usecase/queries"
)

type ReminderReadStore struct {
	dbtx db.DBTX
}

func NewReminderReadStore(dbtx db.DBTX) *ReminderReadStore {
	return &ReminderReadStore{dbtx: dbtx}
}

var _ queries.ReminderViewRepo = (*ReminderReadStore)(nil)

func (r *ReminderReadStore) FindConfirmedStartingBetween(ctx context.Context, from, to time.Time) ([]*queries.ReminderView, error) {
	const q = `
		SELECT b.id, b.client_id, u.email, s.name, st.name, lower(b.slot)
		FROM bookings b
		JOIN services s ON s.id = b.service_id
		JOIN staff st ON st.id = b.staff_id
		JOIN users u ON u.id = b.client_id
		WHERE b.status = 'confirmed'
		  AND lower(b.slot) >= $1
		  AND lower(b.slot) < $2
		ORDER BY lower(b.slot)`

	rows, err := r.dbtx.Query(ctx, q, from, to)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find due reminders", err)
	}
	defer rows.Close()

	var views []*queries.ReminderView
	for rows.Next() {
		var v queries.ReminderView
		err := rows.Scan(&v.BookingID, &v.ClientID, &v.ClientEmail,
			&v.ServiceName, &v.StaffName, &v.StartsAt)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan reminder row", err)
		}
		views = append(views, &v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate reminders", err)
	}
	return views, nil
}
