package uow

import (
	"context"
	"crypto/rand"
	"errors"
	"math/big"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"shareit/internal/infra/sqlc"
	"shareit/internal/pkg/errs"
	"shareit/internal/usecase/shared"
)

const (
	maxRetries    = 3
	baseBackoffMs = 10
)

type PostgresUoW struct {
	pool     *pgxpool.Pool
	users    shared.UserRepository
	items    shared.ItemRepository
	bookings shared.BookingRepository
	comments shared.CommentRepository
	requests shared.RequestRepository
}

func NewPostgresUoW(
	pool *pgxpool.Pool,
	users shared.UserRepository,
	items shared.ItemRepository,
	bookings shared.BookingRepository,
	comments shared.CommentRepository,
	requests shared.RequestRepository,
) shared.UnitOfWork {
	return &PostgresUoW{
		pool:     pool,
		users:    users,
		items:    items,
		bookings: bookings,
		comments: comments,
		requests: requests,
	}
}

func (u *PostgresUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	var lastErr error
	for attempt := 0; attempt <= maxRetries; attempt++ {
		if attempt > 0 {
			if err := sleepWithJitter(ctx, attempt); err != nil {
				return err
			}
		}
		lastErr = u.runInTx(ctx, fn)
		if lastErr == nil || !isRetryableError(lastErr) {
			return lastErr
		}
	}
	return errs.Wrap(lastErr, "transaction failed after retries")
}

func (u *PostgresUoW) runInTx(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	pgxTx, err := u.pool.Begin(ctx)
	if err != nil {
		return errs.Wrap(err, "failed to begin transaction")
	}
	defer pgxTx.Rollback(ctx) //nolint:errcheck // rollback after commit is a no-op

	if err := fn(ctx, &pgTx{uow: u, tx: pgxTx}); err != nil {
		return err
	}
	if err := pgxTx.Commit(ctx); err != nil {
		return errs.Wrap(err, "failed to commit transaction")
	}
	return nil
}

func (u *PostgresUoW) WithDB(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error {
	return fn(ctx, u.pool)
}

func (u *PostgresUoW) CommandReads() shared.CommandReads {
	return newCommandReads(u.pool)
}

// serialization_failure and deadlock_detected
func isRetryableError(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "40001" || pgErr.Code == "40P01"
	}
	return false
}

func sleepWithJitter(ctx context.Context, attempt int) error {
	backoff := time.Duration(baseBackoffMs<<uint(attempt-1)) * time.Millisecond
	if n, err := rand.Int(rand.Reader, big.NewInt(int64(backoff))); err == nil {
		backoff += time.Duration(n.Int64())
	}
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(backoff):
		return nil
	}
}

type pgTx struct {
	uow *PostgresUoW
	tx  pgx.Tx
}

func (t *pgTx) Users() shared.UserRepository       { return t.uow.users }
func (t *pgTx) Items() shared.ItemRepository       { return t.uow.items }
func (t *pgTx) Bookings() shared.BookingRepository { return t.uow.bookings }
func (t *pgTx) Comments() shared.CommentRepository { return t.uow.comments }
func (t *pgTx) Requests() shared.RequestRepository { return t.uow.requests }
func (t *pgTx) Reads() shared.CommandReads         { return newCommandReads(t.tx) }
func (t *pgTx) DB() sqlc.DBTX                      { return t.tx }
