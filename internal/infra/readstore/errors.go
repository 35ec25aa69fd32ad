package readstore

import (
	"errors"

	"slotbook/internal/infra"

	"github.com/jackc/pgx/v5"
)

func classify(err error) infra.RepositoryErrorKind {
	if errors.Is(err, pgx.ErrNoRows) {
		return infra.KindNotFound
	}
	return infra.KindDBFailure
}
