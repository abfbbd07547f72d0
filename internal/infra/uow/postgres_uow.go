package uow

import (
	"context"
	"crypto/rand"
	"encoding/binary"
	"errors"
	"log/slog"
	"time"

	"coliving-payments/internal/infra/readstore"
	"coliving-payments/internal/infra/repository"
	sqlc "coliving-payments/internal/infra/sqlc/generated"
	"coliving-payments/internal/pkg/config"
	"coliving-payments/internal/pkg/errs"
	"coliving-payments/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	pgErrCodeSerializationFailure = "40001"
	pgErrCodeDeadlockDetected     = "40P01"
)

var (
	errTransactionBegin   = errs.New("failed to begin transaction")
	errTransactionCommit  = errs.New("failed to commit transaction")
	errMaxRetriesExceeded = errs.New("transaction failed after max retries")
)

type PostgresUoW struct {
	pool    *pgxpool.Pool
	q       *sqlc.Queries
	timeout time.Duration
}

func NewPostgresUoW(pool *pgxpool.Pool, q *sqlc.Queries, cfg config.DBConfig) shared.UnitOfWork {
	return &PostgresUoW{
		pool:    pool,
		q:       q,
		timeout: cfg.StoreTimeout,
	}
}

// ReadCommitted is enough here: every contended write goes through a row
// lock or a unique constraint.
func (u *PostgresUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	ctx, cancel := u.bound(ctx)
	defer cancel()
	return u.runInTxWithOptions(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted}, fn)
}

func (u *PostgresUoW) CommandReads() shared.CommandReads {
	return &commandReads{uow: u, dbtx: u.pool, bounded: true}
}

func (u *PostgresUoW) bound(ctx context.Context) (context.Context, context.CancelFunc) {
	if u.timeout <= 0 {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, u.timeout)
}

// Avoids defer accumulation in retry loops to prevent connection leaks
func (u *PostgresUoW) runInTxWithOptions(ctx context.Context, options pgx.TxOptions, fn func(ctx context.Context, tx shared.Tx) error) error {
	const maxRetries = 3
	base := 100 * time.Millisecond

	for attempt := 0; attempt <= maxRetries; attempt++ {
		pgxTx, err := u.pool.BeginTx(ctx, options)
		if err != nil {
			return errs.Mark(err, errTransactionBegin)
		}

		tx := &pgTx{
			dbtx: pgxTx,
			uow:  u,
		}

		err = fn(ctx, tx)
		if err == nil {
			if err = pgxTx.Commit(ctx); err == nil {
				return nil
			}
			err = errs.Mark(err, errTransactionCommit)
		}

		// rollback must run even when ctx already expired
		if rollbackErr := pgxTx.Rollback(context.WithoutCancel(ctx)); rollbackErr != nil {
			if !errors.Is(rollbackErr, pgx.ErrTxClosed) {
				slog.Warn("rollback failed", "attempt", attempt+1, "error", rollbackErr.Error())
			}
		}

		if !shouldRetry(err, attempt, maxRetries) {
			if attempt == maxRetries && isRetryableError(err) {
				slog.Error("transaction failed after max retries",
					"attempts", attempt+1,
					"error", err.Error())
				return errs.Mark(err, errMaxRetriesExceeded)
			}
			return err
		}

		waitTime := calculateBackoff(attempt, base)

		slog.Warn("retrying transaction due to retryable error",
			"attempt", attempt+1,
			"wait_ms", waitTime.Milliseconds(),
			"error", err.Error())

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(waitTime):
		}
	}

	return errMaxRetriesExceeded
}

func shouldRetry(err error, attempt, maxRetries int) bool {
	return isRetryableError(err) && attempt < maxRetries
}

func calculateBackoff(attempt int, base time.Duration) time.Duration {
	waitTime := time.Duration(1<<attempt) * base
	jitter := cryptoRandInt63n(int64(waitTime / 5))
	return waitTime + time.Duration(jitter)
}

func cryptoRandInt63n(n int64) int64 {
	if n <= 0 {
		return 0
	}
	var buf [8]byte
	if _, err := rand.Read(buf[:]); err != nil {
		return 0
	}
	uval := binary.BigEndian.Uint64(buf[:]) & 0x7FFFFFFFFFFFFFFF
	// #nosec G115 -- high bit masked above
	return int64(uval) % n
}

func isRetryableError(err error) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}

	switch pgErr.Code {
	case pgErrCodeSerializationFailure, pgErrCodeDeadlockDetected:
		return true
	default:
		return false
	}
}

type pgTx struct {
	dbtx sqlc.DBTX
	uow  *PostgresUoW

	// Lazy-initialized repositories
	bookingRepo  shared.BookingRepository
	roomRepo     shared.RoomInventoryRepository
	eventRepo    shared.BookingEventRepository
	deliveryRepo shared.WebhookDeliveryRepository
	commandReads shared.CommandReads
}

func (t *pgTx) Bookings() shared.BookingRepository {
	if t.bookingRepo == nil {
		t.bookingRepo = repository.NewBookingRepository(t.uow.q, t.dbtx)
	}
	return t.bookingRepo
}

func (t *pgTx) Rooms() shared.RoomInventoryRepository {
	if t.roomRepo == nil {
		t.roomRepo = repository.NewRoomInventoryRepository(t.uow.q, t.dbtx)
	}
	return t.roomRepo
}

func (t *pgTx) Events() shared.BookingEventRepository {
	if t.eventRepo == nil {
		t.eventRepo = repository.NewBookingEventRepository(t.uow.q, t.dbtx)
	}
	return t.eventRepo
}

func (t *pgTx) WebhookDeliveries() shared.WebhookDeliveryRepository {
	if t.deliveryRepo == nil {
		t.deliveryRepo = repository.NewWebhookDeliveryRepository(t.uow.q, t.dbtx)
	}
	return t.deliveryRepo
}

func (t *pgTx) Reads() shared.CommandReads {
	if t.commandReads == nil {
		t.commandReads = &commandReads{
			uow:  t.uow,
			dbtx: t.dbtx,
		}
	}
	return t.commandReads
}

// commandReads runs lookups either on the pool or inside an open
// transaction. Pool reads get their own store timeout.
type commandReads struct {
	uow     *PostgresUoW
	dbtx    sqlc.DBTX
	bounded bool

	// Lazy-initialized readstores
	catalogStore *readstore.CatalogReadStore
	bookingStore *readstore.BookingReadStore
}

func (r *commandReads) catalog() *readstore.CatalogReadStore {
	if r.catalogStore == nil {
		r.catalogStore = readstore.NewCatalogReadStore(r.uow.q)
	}
	return r.catalogStore
}

func (r *commandReads) bookings() *readstore.BookingReadStore {
	if r.bookingStore == nil {
		r.bookingStore = readstore.NewBookingReadStore(r.uow.q)
	}
	return r.bookingStore
}

func (r *commandReads) ctx(ctx context.Context) (context.Context, context.CancelFunc) {
	if !r.bounded {
		return ctx, func() {}
	}
	return r.uow.bound(ctx)
}

func (r *commandReads) PropertyByID(ctx context.Context, id uuid.UUID) (*shared.PropertySnapshot, error) {
	ctx, cancel := r.ctx(ctx)
	defer cancel()
	return r.catalog().FindPropertyByID(ctx, r.dbtx, id)
}

func (r *commandReads) RoomByID(ctx context.Context, id uuid.UUID) (*shared.RoomSnapshot, error) {
	ctx, cancel := r.ctx(ctx)
	defer cancel()
	return r.catalog().FindRoomByID(ctx, r.dbtx, id)
}

func (r *commandReads) BookingByPaymentID(ctx context.Context, gatewayPaymentID string) (*shared.BookingSnapshot, error) {
	ctx, cancel := r.ctx(ctx)
	defer cancel()
	return r.bookings().FindByPaymentID(ctx, r.dbtx, gatewayPaymentID)
}

func (r *commandReads) BookingsPendingRelease(ctx context.Context, limit int32) ([]uuid.UUID, error) {
	ctx, cancel := r.ctx(ctx)
	defer cancel()
	return r.bookings().ListPendingRelease(ctx, r.dbtx, limit)
}

func (r *commandReads) WebhookDeliveryExists(ctx context.Context, eventID string) (bool, error) {
	ctx, cancel := r.ctx(ctx)
	defer cancel()
	return r.bookings().WebhookDeliveryExists(ctx, r.dbtx, eventID)
}
