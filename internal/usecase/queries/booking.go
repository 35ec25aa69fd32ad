package queries

import (
	"context"
	"time"

	"slotbook/internal/domain/user"
	"slotbook/internal/infra"
	"slotbook/internal/pkg/errs"

	"github.com/google/uuid"
)

type BookingQueries interface {
	GetByID(ctx context.Context, actorID uuid.UUID, actorRole user.Role, id uuid.UUID) (*BookingView, error)
	ListByClient(ctx context.Context, clientID uuid.UUID, limit int) ([]*BookingListItem, error)
	ListByStaffBetween(ctx context.Context, staffID uuid.UUID, from, to time.Time) ([]*BookingListItem, error)
}

type BookingViewRepo interface {
	FindByID(ctx context.Context, id uuid.UUID) (*BookingView, error)
	FindByClientID(ctx context.Context, clientID uuid.UUID, limit int32) ([]*BookingListItem, error)
	FindByStaffBetween(ctx context.Context, staffID uuid.UUID, from, to time.Time) ([]*BookingListItem, error)
}

type bookingQueriesImpl struct {
	repo BookingViewRepo
}

func NewBookingQueries(repo BookingViewRepo) BookingQueries {
	return &bookingQueriesImpl{repo: repo}
}

func (q *bookingQueriesImpl) GetByID(ctx context.Context, actorID uuid.UUID, actorRole user.Role, id uuid.UUID) (*BookingView, error) {
	view, err := q.repo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrBookingNotFound
		}
		return nil, err
	}
	// Clients only see their own bookings; not-found hides existence.
	if actorRole == user.RoleClient && view.ClientID != actorID {
		return nil, errs.ErrBookingNotFound
	}
	return view, nil
}

func (q *bookingQueriesImpl) ListByClient(ctx context.Context, clientID uuid.UUID, limit int) ([]*BookingListItem, error) {
	if limit <= 0 {
		limit = 50
	}
	return q.repo.FindByClientID(ctx, clientID, int32(limit))
}

func (q *bookingQueriesImpl) ListByStaffBetween(ctx context.Context, staffID uuid.UUID, from, to time.Time) ([]*BookingListItem, error) {
	if !from.Before(to) {
		return nil, errs.ErrInvalidTimeSlot
	}
	return q.repo.FindByStaffBetween(ctx, staffID, from, to)
}
