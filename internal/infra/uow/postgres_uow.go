package uow

import (
	"context"
	"errors"
	"time"

	"slotbook/internal/infra/db"
	"slotbook/internal/infra/repository"
	"slotbook/internal/pkg/errs"
	"slotbook/internal/usecase/shared"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	maxRetries       = 3
	initialBackoff   = 10 * time.Millisecond
	serializationErr = "40001"
	deadlockErr      = "40P01"
)

type PostgresUnitOfWork struct {
	pool  *pgxpool.Pool
	reads *repository.CommandReads
}

func NewPostgresUnitOfWork(pool *pgxpool.Pool) *PostgresUnitOfWork {
	return &PostgresUnitOfWork{
		pool:  pool,
		reads: repository.NewCommandReads(pool),
	}
}

var _ shared.UnitOfWork = (*PostgresUnitOfWork)(nil)

// Within runs fn inside a read-committed transaction, retrying on
// serialization failures and deadlocks with exponential backoff.
func (u *PostgresUnitOfWork) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	var lastErr error

	for attempt := 0; attempt <= maxRetries; attempt++ {
		if attempt > 0 {
			backoff := initialBackoff * time.Duration(1<<(attempt-1))
			select {
			case <-ctx.Done():
				return errs.Wrap(ctx.Err(), "transaction retry cancelled")
			case <-time.After(backoff):
			}
		}

		err := u.runInTx(ctx, fn)
		if err == nil {
			return nil
		}
		if !isRetryable(err) {
			return err
		}
		lastErr = err
	}

	return errs.Wrap(lastErr, "transaction failed after retries")
}

func (u *PostgresUnitOfWork) runInTx(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	pgxTx, err := u.pool.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted})
	if err != nil {
		return errs.Wrap(err, "failed to begin transaction")
	}
	defer func() { _ = pgxTx.Rollback(ctx) }()

	if err := fn(ctx, newTx(pgxTx)); err != nil {
		return err
	}
	if err := pgxTx.Commit(ctx); err != nil {
		return errs.Wrap(err, "failed to commit transaction")
	}
	return nil
}

func (u *PostgresUnitOfWork) WithDB(ctx context.Context, fn func(ctx context.Context, dbtx db.DBTX) error) error {
	return fn(ctx, u.pool)
}

func (u *PostgresUnitOfWork) CommandReads() shared.CommandReads {
	return u.reads
}

func isRetryable(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == serializationErr || pgErr.Code == deadlockErr
	}
	return false
}

// pgTx hands out repositories bound to one pgx transaction, constructed
// lazily so callers only pay for what they touch.
type pgTx struct {
	dbtx     pgx.Tx
	bookings *repository.BookingRepository
	patterns *repository.PatternRepository
	catalog  *repository.CatalogRepository
	users    *repository.UserRepository
	reads    *repository.CommandReads
}

func newTx(dbtx pgx.Tx) *pgTx {
	return &pgTx{dbtx: dbtx}
}

var _ shared.Tx = (*pgTx)(nil)

func (t *pgTx) Bookings() shared.BookingRepository {
	if t.bookings == nil {
		t.bookings = repository.NewBookingRepository(t.dbtx)
	}
	return t.bookings
}

func (t *pgTx) Patterns() shared.PatternRepository {
	if t.patterns == nil {
		t.patterns = repository.NewPatternRepository(t.dbtx)
	}
	return t.patterns
}

func (t *pgTx) Catalog() shared.CatalogRepository {
	if t.catalog == nil {
		t.catalog = repository.NewCatalogRepository(t.dbtx)
	}
	return t.catalog
}

func (t *pgTx) Users() shared.UserRepository {
	if t.users == nil {
		t.users = repository.NewUserRepository(t.dbtx)
	}
	return t.users
}

func (t *pgTx) Reads() shared.CommandReads {
	if t.reads == nil {
		t.reads = repository.NewCommandReads(t.dbtx)
	}
	return t.reads
}

func (t *pgTx) DB() db.DBTX {
	return t.dbtx
}
