package queries

import (
	"context"

	"slotbook/internal/infra"
	"slotbook/internal/pkg/errs"

	"github.com/google/uuid"
)

type CatalogQueries interface {
	GetService(ctx context.Context, id uuid.UUID) (*ServiceView, error)
	ListServices(ctx context.Context) ([]*ServiceView, error)
	GetStaff(ctx context.Context, id uuid.UUID) (*StaffView, error)
	ListStaff(ctx context.Context) ([]*StaffView, error)
}

type CatalogViewRepo interface {
	FindServiceByID(ctx context.Context, id uuid.UUID) (*ServiceView, error)
	FindActiveServices(ctx context.Context) ([]*ServiceView, error)
	FindStaffByID(ctx context.Context, id uuid.UUID) (*StaffView, error)
	FindActiveStaff(ctx context.Context) ([]*StaffView, error)
}

type catalogQueriesImpl struct {
	repo CatalogViewRepo
}

func NewCatalogQueries(repo CatalogViewRepo) CatalogQueries {
	return &catalogQueriesImpl{repo: repo}
}

func (q *catalogQueriesImpl) GetService(ctx context.Context, id uuid.UUID) (*ServiceView, error) {
	view, err := q.repo.FindServiceByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrServiceNotFound
		}
		return nil, err
	}
	return view, nil
}

func (q *catalogQueriesImpl) ListServices(ctx context.Context) ([]*ServiceView, error) {
	return q.repo.FindActiveServices(ctx)
}

func (q *catalogQueriesImpl) GetStaff(ctx context.Context, id uuid.UUID) (*StaffView, error) {
	view, err := q.repo.FindStaffByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrStaffNotFound
		}
		return nil, err
	}
	return view, nil
}

func (q *catalogQueriesImpl) ListStaff(ctx context.Context) ([]*StaffView, error) {
	return q.repo.FindActiveStaff(ctx)
}
