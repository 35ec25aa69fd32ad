package commands

import (
	"context"
	"time"

	"slotbook/internal/domain/booking"
	"slotbook/internal/domain/schedule"
	"slotbook/internal/domain/user"
	"slotbook/internal/infra"
	"slotbook/internal/pkg/clock"
	"slotbook/internal/pkg/config"
	"slotbook/internal/pkg/errs"
	"slotbook/internal/usecase/shared"

	"github.com/google/uuid"
)

// Actor identifies the authenticated caller of a command.
type Actor struct {
	ID   uuid.UUID
	Role user.Role
}

// CanManage reports whether the actor may mutate a booking owned by clientID.
func (a Actor) CanManage(clientID uuid.UUID) bool {
	if a.Role == user.RoleAdmin || a.Role == user.RoleStaff {
		return true
	}
	return a.ID == clientID
}

// CreateRecurringBookingInput carries the caller-supplied recurrence fields.
// Occurrence duration is not an input; it comes from the booked service.
type CreateRecurringBookingInput struct {
	ServiceID      uuid.UUID
	StaffID        uuid.UUID
	Frequency      string
	Interval       int
	DayOfWeek      *int
	DayOfMonth     *int
	StartDate      time.Time
	TimeZone       string
	EndDate        *time.Time
	MaxOccurrences *int
	Note           string
}

type CreateRecurringBookingResult struct {
	PatternID      uuid.UUID
	BookingIDs     []uuid.UUID
	ScheduledDates []time.Time
	// SkippedDates are occurrences dropped because the staff calendar
	// already had a blocking booking at that slot.
	SkippedDates []time.Time
}

type BookingCommands interface {
	CreateRecurringBooking(ctx context.Context, actor Actor, in CreateRecurringBookingInput) (*CreateRecurringBookingResult, error)
	RescheduleBooking(ctx context.Context, actor Actor, bookingID uuid.UUID, newStart time.Time) error
	CancelBooking(ctx context.Context, actor Actor, bookingID uuid.UUID) error
}

type bookingCommandsImpl struct {
	uow   shared.UnitOfWork
	cfg   config.BookingConfig
	clock clock.Clock
}

func NewBookingCommands(uow shared.UnitOfWork, cfg config.BookingConfig, clk clock.Clock) BookingCommands {
	return &bookingCommandsImpl{uow: uow, cfg: cfg, clock: clk}
}

func (c *bookingCommandsImpl) CreateRecurringBooking(
	ctx context.Context,
	actor Actor,
	in CreateRecurringBookingInput,
) (*CreateRecurringBookingResult, error) {
	svc, err := c.validateService(ctx, in.ServiceID)
	if err != nil {
		return nil, err
	}
	staff, err := c.validateStaff(ctx, in.StaffID)
	if err != nil {
		return nil, err
	}

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
		DurationMin:    svc.DurationMin,
		EndDate:        in.EndDate,
		MaxOccurrences: in.MaxOccurrences,
	})
	if err != nil {
		return nil, errs.Mark(err, errs.ErrInvalidPattern)
	}

	dates, err := pattern.OccurrenceDates(c.cfg.MaxOccurrencesPerRequest)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrInvalidPattern)
	}
	if len(dates) == 0 {
		return nil, errs.ErrNothingToSchedule
	}

	firstSlot, err := booking.NewTimeSlot(dates[0], dates[0].Add(pattern.Duration()))
	if err != nil {
		return nil, errs.Mark(err, errs.ErrInvalidTimeSlot)
	}
	if err := firstSlot.ValidateNotPast(c.clock.Now()); err != nil {
		return nil, errs.Mark(err, errs.ErrInvalidTimeSlot)
	}

	scheduled, skipped, err := c.partitionByAvailability(ctx, staff.ID, pattern, dates)
	if err != nil {
		return nil, err
	}
	if len(scheduled) == 0 {
		return nil, errs.ErrNothingToSchedule
	}

	result := &CreateRecurringBookingResult{
		PatternID:    pattern.ID(),
		SkippedDates: skipped,
	}
	note := booking.NewNote(in.Note)
	patternID := pattern.ID()

	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if _, err := tx.Patterns().Create(ctx, pattern); err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		for _, slot := range scheduled {
			b := booking.NewBooking(svc.ID, staff.ID, actor.ID, &patternID, slot, note)
			if err := pattern.RecordGeneratedBooking(b.ID()); err != nil {
				return errs.Mark(err, errs.ErrDomainValidation)
			}
			if _, err := tx.Bookings().Create(ctx, b); err != nil {
				if infra.IsKind(err, infra.KindConflict) {
					return errs.Mark(err, errs.ErrBookingConflict)
				}
				return errs.Mark(err, errs.ErrDatabaseOperationFailed)
			}
			if err := tx.Patterns().AppendGeneratedBooking(ctx, patternID, b.ID()); err != nil {
				return errs.Mark(err, errs.ErrDatabaseOperationFailed)
			}
			result.BookingIDs = append(result.BookingIDs, b.ID())
			result.ScheduledDates = append(result.ScheduledDates, slot.Start())
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// partitionByAvailability splits occurrence dates into schedulable slots and
// skipped dates using one calendar read spanning the whole series.
func (c *bookingCommandsImpl) partitionByAvailability(
	ctx context.Context,
	staffID uuid.UUID,
	pattern *schedule.Pattern,
	dates []time.Time,
) ([]booking.TimeSlot, []time.Time, error) {
	windowFrom := dates[0]
	windowTo := dates[len(dates)-1].Add(pattern.Duration())

	calendar, err := c.uow.CommandReads().StaffCalendar(ctx, staffID, windowFrom, windowTo)
	if err != nil {
		return nil, nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	var (
		scheduled []booking.TimeSlot
		skipped   []time.Time
	)
	for _, date := range dates {
		slot, err := booking.NewTimeSlot(date, date.Add(pattern.Duration()))
		if err != nil {
			return nil, nil, errs.Mark(err, errs.ErrInvalidTimeSlot)
		}
		if booking.IsSlotAvailable(staffID, slot, calendar, uuid.Nil) {
			scheduled = append(scheduled, slot)
		} else {
			skipped = append(skipped, date)
		}
	}
	return scheduled, skipped, nil
}

func (c *bookingCommandsImpl) RescheduleBooking(
	ctx context.Context,
	actor Actor,
	bookingID uuid.UUID,
	newStart time.Time,
) error {
	b, err := c.loadOwnedBooking(ctx, actor, bookingID)
	if err != nil {
		return err
	}

	newSlot, err := booking.NewTimeSlot(newStart, newStart.Add(b.Slot().Duration()))
	if err != nil {
		return errs.Mark(err, errs.ErrInvalidTimeSlot)
	}
	if err := newSlot.ValidateNotPast(c.clock.Now()); err != nil {
		return errs.Mark(err, errs.ErrInvalidTimeSlot)
	}

	calendar, err := c.uow.CommandReads().StaffCalendar(ctx, b.StaffID(), newSlot.Start(), newSlot.End())
	if err != nil {
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	if !booking.IsSlotAvailable(b.StaffID(), newSlot, calendar, b.ID()) {
		return errs.ErrSlotUnavailable
	}

	if err := b.Reschedule(newSlot); err != nil {
		return errs.Mark(err, errs.ErrDomainValidation)
	}

	return c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := tx.Bookings().UpdateSlot(ctx, b.ID(), b.Slot()); err != nil {
			if infra.IsKind(err, infra.KindConflict) {
				return errs.Mark(err, errs.ErrBookingConflict)
			}
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		return nil
	})
}

func (c *bookingCommandsImpl) CancelBooking(ctx context.Context, actor Actor, bookingID uuid.UUID) error {
	b, err := c.loadOwnedBooking(ctx, actor, bookingID)
	if err != nil {
		return err
	}

	if err := b.Cancel(); err != nil {
		return errs.Mark(err, errs.ErrDomainValidation)
	}

	return c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := tx.Bookings().UpdateStatus(ctx, b.ID(), b.Status()); err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		return nil
	})
}

func (c *bookingCommandsImpl) loadOwnedBooking(ctx context.Context, actor Actor, bookingID uuid.UUID) (*booking.Booking, error) {
	b, err := c.uow.CommandReads().BookingByID(ctx, bookingID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrBookingNotFound
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	if !actor.CanManage(b.ClientID()) {
		return nil, errs.ErrBookingAccessDenied
	}
	return b, nil
}

func (c *bookingCommandsImpl) validateService(ctx context.Context, id uuid.UUID) (*shared.ServiceSnapshot, error) {
	svc, err := c.uow.CommandReads().ServiceByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrServiceNotFound
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	if !svc.IsActive {
		return nil, errs.ErrServiceNotFound
	}
	return svc, nil
}

func (c *bookingCommandsImpl) validateStaff(ctx context.Context, id uuid.UUID) (*shared.StaffSnapshot, error) {
	staff, err := c.uow.CommandReads().StaffByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrStaffNotFound
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	if !staff.IsActive {
		return nil, errs.ErrStaffNotFound
	}
	return staff, nil
}
