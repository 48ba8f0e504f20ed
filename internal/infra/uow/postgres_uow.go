package uow

import (
	"context"
	"crypto/rand"
	"encoding/binary"
	"errors"
	"log/slog"
	"time"

	"foody/internal/infra/readstore"
	"foody/internal/infra/repository"
	sqlc "foody/internal/infra/sqlc/generated"
	"foody/internal/pkg/config"
	"foody/internal/pkg/errs"
	"foody/internal/usecase/shared"

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

const defaultRetryBase = 100 * time.Millisecond

type PostgresUoW struct {
	pool       *pgxpool.Pool
	q          *sqlc.Queries
	maxRetries int
	retryBase  time.Duration
}

func NewPostgresUoW(pool *pgxpool.Pool, q *sqlc.Queries, cfg config.Config) shared.UnitOfWork {
	maxRetries := cfg.DB.TxMaxRetries
	if maxRetries < 0 {
		maxRetries = 0
	}
	return &PostgresUoW{
		pool:       pool,
		q:          q,
		maxRetries: maxRetries,
		retryBase:  defaultRetryBase,
	}
}

// ReadCommitted prevents dirty reads while allowing concurrent writes
func (u *PostgresUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	return u.runInTxWithOptions(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted}, u.maxRetries, fn)
}

// WithinOnce never re-runs fn; the caller sees the first failure as-is.
func (u *PostgresUoW) WithinOnce(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	return u.runInTxWithOptions(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted}, 0, fn)
}

// Read-only transaction for consistent multi-table snapshots
func (u *PostgresUoW) WithinReadOnly(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error {
	return u.runReadOnlyTx(ctx, pgx.TxOptions{AccessMode: pgx.ReadOnly}, fn)
}

func (u *PostgresUoW) WithDB(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error {
	return fn(ctx, u.pool)
}

func (u *PostgresUoW) CommandReads() shared.CommandReads {
	return &commandReads{uow: u, dbtx: u.pool}
}

// Avoids defer accumulation in retry loops to prevent connection leaks
func (u *PostgresUoW) runInTxWithOptions(ctx context.Context, options pgx.TxOptions, maxRetries int, fn func(ctx context.Context, tx shared.Tx) error) error {
	base := u.retryBase

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

		if rollbackErr := pgxTx.Rollback(ctx); rollbackErr != nil {
			if !errors.Is(rollbackErr, pgx.ErrTxClosed) {
				slog.Warn("rollback failed", "attempt", attempt+1, "error", rollbackErr.Error())
			}
		}

		if !shouldRetry(err, attempt, maxRetries) {
			if attempt == maxRetries && maxRetries > 0 && isRetryableError(err) {
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

func (u *PostgresUoW) runReadOnlyTx(ctx context.Context, options pgx.TxOptions, fn func(ctx context.Context, db sqlc.DBTX) error) error {
	pgxTx, err := u.pool.BeginTx(ctx, options)
	if err != nil {
		return errs.Mark(err, errTransactionBegin)
	}

	defer func() {
		if rollbackErr := pgxTx.Rollback(ctx); rollbackErr != nil {
			if !errors.Is(rollbackErr, pgx.ErrTxClosed) {
				slog.Warn("failed to rollback read-only transaction", "error", rollbackErr.Error())
			}
		}
	}()

	if err := fn(ctx, pgxTx); err != nil {
		return err
	}

	return pgxTx.Commit(ctx)
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
		// Fallback to a simple calculation if crypto/rand fails
		return 0
	}
	// Safe conversion: mask high bit to ensure positive int64
	uval := binary.BigEndian.Uint64(buf[:]) & 0x7FFFFFFFFFFFFFFF
	// #nosec G115 -- Intentionally safe conversion after masking
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
	offerRepo       shared.OfferRepository
	reservationRepo shared.ReservationRepository
	restaurantRepo  shared.RestaurantRepository
	requestRepo     shared.ReservationRequestRepository
	commandReads    shared.CommandReads
}

func (t *pgTx) DB() sqlc.DBTX {
	return t.dbtx
}

func (t *pgTx) Offers() shared.OfferRepository {
	if t.offerRepo == nil {
		t.offerRepo = repository.NewOfferRepository(t.uow.q)
	}
	return t.offerRepo
}

func (t *pgTx) Reservations() shared.ReservationRepository {
	if t.reservationRepo == nil {
		t.reservationRepo = repository.NewReservationRepository(t.uow.q)
	}
	return t.reservationRepo
}

func (t *pgTx) Restaurants() shared.RestaurantRepository {
	if t.restaurantRepo == nil {
		t.restaurantRepo = repository.NewRestaurantRepository(t.uow.q)
	}
	return t.restaurantRepo
}

func (t *pgTx) ReservationRequests() shared.ReservationRequestRepository {
	if t.requestRepo == nil {
		t.requestRepo = repository.NewReservationRequestRepository(t.uow.q)
	}
	return t.requestRepo
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

type commandReads struct {
	uow  *PostgresUoW
	dbtx sqlc.DBTX

	// Lazy-initialized readstores
	offerStore       *readstore.OfferReadStore
	restaurantStore  *readstore.RestaurantReadStore
	reservationStore *readstore.ReservationReadStore
}

func (r *commandReads) OfferByID(ctx context.Context, id uuid.UUID) (*shared.OfferSnapshot, error) {
	if r.offerStore == nil {
		r.offerStore = readstore.NewOfferReadStore(r.uow.q, r.dbtx)
	}

	o, err := r.offerStore.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	owner, err := r.RestaurantByID(ctx, o.RestaurantID)
	if err != nil {
		return nil, err
	}

	snapshot := &shared.OfferSnapshot{
		ID:                   o.ID,
		RestaurantID:         o.RestaurantID,
		PriceCents:           o.PriceCents,
		QtyTotal:             o.QtyTotal,
		QtyLeft:              o.QtyLeft,
		ExpiresAt:            o.ExpiresAt,
		ArchivedAt:           o.ArchivedAt,
		RestaurantArchivedAt: owner.ArchivedAt,
	}
	return snapshot, nil
}

func (r *commandReads) RestaurantByID(ctx context.Context, id uuid.UUID) (*shared.RestaurantSnapshot, error) {
	if r.restaurantStore == nil {
		r.restaurantStore = readstore.NewRestaurantReadStore(r.uow.q, r.dbtx)
	}

	rest, err := r.restaurantStore.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	snapshot := &shared.RestaurantSnapshot{
		ID:         rest.ID,
		Name:       rest.Name,
		APIKeyHash: rest.APIKeyHash,
		ArchivedAt: rest.ArchivedAt,
	}
	return snapshot, nil
}

func (r *commandReads) ReservationByID(ctx context.Context, id uuid.UUID) (*shared.ReservationSnapshot, error) {
	if r.reservationStore == nil {
		r.reservationStore = readstore.NewReservationReadStore(r.uow.q, r.dbtx)
	}

	res, err := r.reservationStore.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	snapshot := &shared.ReservationSnapshot{
		ID:           res.ID,
		OfferID:      res.OfferID,
		RestaurantID: res.RestaurantID,
		BuyerID:      res.BuyerID,
		Code:         res.Code,
		Status:       res.Status,
		ExpiresAt:    res.ExpiresAt,
		RedeemedAt:   res.RedeemedAt,
		CreatedAt:    res.CreatedAt,
	}
	return snapshot, nil
}
