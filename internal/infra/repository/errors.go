package repository

import (
	"errors"

	"slotbook/internal/infra"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// Postgres error codes the booking schema can raise.
const (
	pgUniqueViolation    = "23505"
	pgExclusionViolation = "23P01" // bookings staff/slot overlap constraint
)

// classify maps a pgx error onto a repository error kind.
func classify(err error) infra.RepositoryErrorKind {
	if errors.Is(err, pgx.ErrNoRows) {
		return infra.KindNotFound
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgUniqueViolation:
			return infra.KindDuplicateKey
		case pgExclusionViolation:
			return infra.KindConflict
		}
	}
	return infra.KindDBFailure
}
