package repository

import (
	"context"

	"slotbook/internal/domain/schedule"
	"slotbook/internal/infra"
	"slotbook/internal/infra/db"
	"slotbook/internal/usecase/shared"

	"github.com/google/uuid"
)

type PatternRepository struct {
	dbtx db.DBTX
}

func NewPatternRepository(dbtx db.DBTX) *PatternRepository {
	return &PatternRepository{dbtx: dbtx}
}

var _ shared.PatternRepository = (*PatternRepository)(nil)

func (r *PatternRepository) Create(ctx context.Context, p *schedule.Pattern) (uuid.UUID, error) {
	const q = `
		INSERT INTO recurrence_patterns (
			id, frequency, recurrence_interval, day_of_week, day_of_month,
			start_date, time_zone, duration_min, end_date, max_occurrences, status
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id`

	var id uuid.UUID
	err := r.dbtx.QueryRow(ctx, q,
		p.ID(),
		string(p.Frequency()),
		p.Interval(),
		p.DayOfWeek(),
		p.DayOfMonth(),
		p.StartDate(),
		p.TimeZone(),
		p.DurationMin(),
		p.EndDate(),
		p.MaxOccurrences(),
		string(p.Status()),
	).Scan(&id)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create recurrence pattern", err, classify(err))
	}
	return id, nil
}

func (r *PatternRepository) AppendGeneratedBooking(ctx context.Context, patternID, bookingID uuid.UUID) error {
	const q = `
		UPDATE recurrence_patterns
		SET generated_booking_ids = array_append(generated_booking_ids, $2),
		    updated_at = now()
		WHERE id = $1
		  AND (max_occurrences IS NULL
		       OR cardinality(generated_booking_ids) < max_occurrences)`

	tag, err := r.dbtx.Exec(ctx, q, patternID, bookingID)
	if err != nil {
		return infra.WrapRepoErr("failed to append generated booking", err, classify(err))
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("pattern missing or occurrence budget exhausted", nil, infra.KindConflict)
	}
	return nil
}

func (r *PatternRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status schedule.Status) error {
	const q = `
		UPDATE recurrence_patterns
		SET status = $2, updated_at = now()
		WHERE id = $1`

	tag, err := r.dbtx.Exec(ctx, q, id, string(status))
	if err != nil {
		return infra.WrapRepoErr("failed to update pattern status", err, classify(err))
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("pattern not found", nil, infra.KindNotFound)
	}
	return nil
}
