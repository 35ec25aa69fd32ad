package readstore

import (
	"context"

	"slotbook/internal/infra"
	"slotbook/internal/infra/db"
	"slotbook/internal/usecase/queries"

	"github.com/google/uuid"
)

type CatalogReadStore struct {
	dbtx db.DBTX
}

func NewCatalogReadStore(dbtx db.DBTX) *CatalogReadStore {
	return &CatalogReadStore{dbtx: dbtx}
}

var _ queries.CatalogViewRepo = (*CatalogReadStore)(nil)

func (r *CatalogReadStore) FindServiceByID(ctx context.Context, id uuid.UUID) (*queries.ServiceView, error) {
	const q = `
		SELECT id, name, description, duration_min, price_cents, is_active, created_at, updated_at
		FROM services
		WHERE id = $1`

	var v queries.ServiceView
	err := r.dbtx.QueryRow(ctx, q, id).Scan(&v.ID, &v.Name, &v.Description,
		&v.DurationMin, &v.PriceCents, &v.IsActive, &v.CreatedAt, &v.UpdatedAt)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find service by ID", err, classify(err))
	}
	return &v, nil
}

func (r *CatalogReadStore) FindActiveServices(ctx context.Context) ([]*queries.ServiceView, error) {
	const q = `
		SELECT id, name, description, duration_min, price_cents, is_active, created_at, updated_at
		FROM services
		WHERE is_active
		ORDER BY name`

	rows, err := r.dbtx.Query(ctx, q)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list services", err)
	}
	defer rows.Close()

	var views []*queries.ServiceView
	for rows.Next() {
		var v queries.ServiceView
		err := rows.Scan(&v.ID, &v.Name, &v.Description,
			&v.DurationMin, &v.PriceCents, &v.IsActive, &v.CreatedAt, &v.UpdatedAt)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan service row", err)
		}
		views = append(views, &v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate services", err)
	}
	return views, nil
}

func (r *CatalogReadStore) FindStaffByID(ctx context.Context, id uuid.UUID) (*queries.StaffView, error) {
	const q = `
		SELECT id, name, title, time_zone, is_active, created_at, updated_at
		FROM staff
		WHERE id = $1`

	var v queries.StaffView
	err := r.dbtx.QueryRow(ctx, q, id).Scan(&v.ID, &v.Name, &v.Title,
		&v.TimeZone, &v.IsActive, &v.CreatedAt, &v.UpdatedAt)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find staff by ID", err, classify(err))
	}
	return &v, nil
}

func (r *CatalogReadStore) FindActiveStaff(ctx context.Context) ([]*queries.StaffView, error) {
	const q = `
		SELECT id, name, title, time_zone, is_active, created_at, updated_at
		FROM staff
		WHERE is_active
		ORDER BY name`

	rows, err := r.dbtx.Query(ctx, q)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list staff", err)
	}
	defer rows.Close()

	var views []*queries.StaffView
	for rows.Next() {
		var v queries.StaffView
		err := rows.Scan(&v.ID, &v.Name, &v.Title,
			&v.TimeZone, &v.IsActive, &v.CreatedAt, &v.UpdatedAt)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan staff row", err)
		}
		views = append(views, &v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate staff", err)
	}
	return views, nil
}
