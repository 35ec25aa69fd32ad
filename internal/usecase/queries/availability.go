package queries

import (
	"context"
	"time"

	"slotbook/internal/domain/booking"
	"slotbook/internal/domain/schedule"
	"slotbook/internal/pkg/errs"

	"github.com/google/uuid"
)

// StaffCalendarReader loads the staff member's bookings intersecting a window.
type StaffCalendarReader interface {
	StaffCalendar(ctx context.Context, staffID uuid.UUID, from, to time.Time) ([]*booking.Booking, error)
}

// PreviewPatternInput mirrors the recurrence fields of a pattern plus an
// explicit duration, so a preview needs no catalog lookup.
type PreviewPatternInput struct {
	Frequency      string
	Interval       int
	DayOfWeek      *int
	DayOfMonth     *int
	StartDate      time.Time
	TimeZone       string
	DurationMin    int
	EndDate        *time.Time
	MaxOccurrences *int
}

// OccurrencePreview is one would-be occurrence of a previewed pattern.
type OccurrencePreview struct {
	StartsAt time.Time `json:"starts_at"`
	EndsAt   time.Time `json:"ends_at"`
}

type AvailabilityQueries interface {
	// CheckAvailability reports whether the slot is free on the staff calendar.
	CheckAvailability(ctx context.Context, staffID uuid.UUID, start, end time.Time) (bool, error)
	// PreviewOccurrences expands a pattern without persisting anything.
	PreviewOccurrences(ctx context.Context, in PreviewPatternInput, max int) ([]OccurrencePreview, error)
}

type availabilityQueriesImpl struct {
	calendar StaffCalendarReader
}

func NewAvailabilityQueries(calendar StaffCalendarReader) AvailabilityQueries {
	return &availabilityQueriesImpl{calendar: calendar}
}

func (q *availabilityQueriesImpl) CheckAvailability(ctx context.Context, staffID uuid.UUID, start, end time.Time) (bool, error) {
	slot, err := booking.NewTimeSlot(start, end)
	if err != nil {
		return false, errs.Mark(err, errs.ErrInvalidTimeSlot)
	}
	existing, err := q.calendar.StaffCalendar(ctx, staffID, start, end)
	if err != nil {
		return false, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return booking.IsSlotAvailable(staffID, slot, existing, uuid.Nil), nil
}

func (q *availabilityQueriesImpl) PreviewOccurrences(_ context.Context, in PreviewPatternInput, max int) ([]OccurrencePreview, error) {
	frequency, err := schedule.NewFrequency(in.Frequency)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrInvalidPattern)
	}
	pattern, err := schedule.NewPattern(schedule.PatternSpec{
		Frequency:      frequency,
		Interval:       in.Interval,
		DayOfWeek:      in.DayOfWeek,
		DayOfMonth:     in.DayOfMonth,
		StartDate:      in.StartDate,
		TimeZone:       in.TimeZone,
		DurationMin:    in.DurationMin,
		EndDate:        in.EndDate,
		MaxOccurrences: in.MaxOccurrences,
	})
	if err != nil {
		return nil, errs.Mark(err, errs.ErrInvalidPattern)
	}

	dates, err := pattern.OccurrenceDates(max)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrInvalidPattern)
	}

	previews := make([]OccurrencePreview, 0, len(dates))
	for _, d := range dates {
		previews = append(previews, OccurrencePreview{
			StartsAt: d,
			EndsAt:   d.Add(pattern.Duration()),
		})
	}
	return previews, nil
}
