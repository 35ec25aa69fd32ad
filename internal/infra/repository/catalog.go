package repository

import (
	"context"

	"slotbook/internal/domain/catalog"
	"slotbook/internal/infra"
	"slotbook/internal/infra/db"
	"slotbook/internal/usecase/shared"

	"github.com/google/uuid"
)

type CatalogRepository struct {
	dbtx db.DBTX
}

func NewCatalogRepository(dbtx db.DBTX) *CatalogRepository {
	return &CatalogRepository{dbtx: dbtx}
}

var _ shared.CatalogRepository = (*CatalogRepository)(nil)

func (r *CatalogRepository) CreateService(ctx context.Context, s *catalog.Service) (uuid.UUID, error) {
	const q = `
		INSERT INTO services (id, name, description, duration_min, price_cents, is_active)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`

	var id uuid.UUID
	err := r.dbtx.QueryRow(ctx, q,
		s.ID(), s.Name(), s.Description(), s.DurationMin(), s.Price().Cents(), s.IsActive(),
	).Scan(&id)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create service", err, classify(err))
	}
	return id, nil
}

func (r *CatalogRepository) CreateStaff(ctx context.Context, s *catalog.Staff) (uuid.UUID, error) {
	const q = `
		INSERT INTO staff (id, name, title, time_zone, is_active)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`

	var id uuid.UUID
	err := r.dbtx.QueryRow(ctx, q,
		s.ID(), s.Name(), s.Title(), s.TimeZone(), s.IsActive(),
	).Scan(&id)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create staff", err, classify(err))
	}
	return id, nil
}
