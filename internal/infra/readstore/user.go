package readstore

import (
	"context"

	"slotbook/internal/infra"
	"slotbook/internal/infra/db"
	"slotbook/internal/usecase/queries"

	"github.com/google/uuid"
)

type UserReadStore struct {
	dbtx db.DBTX
}

func NewUserReadStore(dbtx db.DBTX) *UserReadStore {
	return &UserReadStore{dbtx: dbtx}
}

var _ queries.UserReadStore = (*UserReadStore)(nil)

func (r *UserReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.AuthorizedUserView, error) {
	const q = `
		SELECT id, email, name, role, is_active
		FROM users
		WHERE id = $1`

	var v queries.AuthorizedUserView
	err := r.dbtx.QueryRow(ctx, q, id).Scan(&v.ID, &v.Email, &v.Name, &v.Role, &v.IsActive)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find user by ID", err, classify(err))
	}
	return &v, nil
}

func (r *UserReadStore) FindByEmail(ctx context.Context, email string) (*queries.AuthorizedUserView, string, error) {
	const q = `
		SELECT id, email, name, role, is_active, password_hash
		FROM users
		WHERE email = $1`

	var (
		v    queries.AuthorizedUserView
		hash string
	)
	err := r.dbtx.QueryRow(ctx, q, email).Scan(&v.ID, &v.Email, &v.Name, &v.Role, &v.IsActive, &hash)
	if err != nil {
		return nil, "", infra.WrapRepoErr("failed to find user by email", err, classify(err))
	}
	return &v, hash, nil
}
