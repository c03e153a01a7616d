package uow

import (
	"context"
	"crypto/rand"
	"encoding/binary"
	"errors"
	"log/slog"
	"time"

	"rental-marketplace/internal/domain/review"
	"rental-marketplace/internal/infra/readstore"
	"rental-marketplace/internal/infra/repository"
	sqlc "rental-marketplace/internal/infra/sqlc/generated"
	"rental-marketplace/internal/pkg/errs"
	"rental-marketplace/internal/usecase/shared"

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
	pool *pgxpool.Pool
	q    *sqlc.Queries
}

func NewPostgresUoW(pool *pgxpool.Pool, q *sqlc.Queries) shared.UnitOfWork {
	return &PostgresUoW{
		pool: pool,
		q:    q,
	}
}

// ReadCommitted prevents dirty reads while allowing concurrent writes
func (u *PostgresUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	return u.runInTxWithOptions(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted}, fn)
}

// Serializable makes overlap-check-then-insert atomic; conflicting attempts fail with 40001 and are retried.
func (u *PostgresUoW) WithinSerializable(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	return u.runInTxWithOptions(ctx, pgx.TxOptions{IsoLevel: pgx.Serializable}, fn)
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

		if rollbackErr := pgxTx.Rollback(ctx); rollbackErr != nil {
			if !errors.Is(rollbackErr, pgx.ErrTxClosed) {
				slog.Warn("rollback failed", "attempt", attempt+1, "error", rollbackErr.Error())
			}
		}

		if !shouldRetry(err, attempt, maxRetries) {
			if attempt == maxRetries {
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
	userRepo     shared.UserRepository
	propertyRepo shared.PropertyRepository
	bookingRepo  shared.BookingRepository
	intentRepo   shared.PaymentIntentRepository
	reviewRepo   shared.ReviewRepository
	commandReads shared.CommandReads
}

func (t *pgTx) DB() sqlc.DBTX {
	return t.dbtx
}

func (t *pgTx) Users() shared.UserRepository {
	if t.userRepo == nil {
		t.userRepo = repository.NewUserRepository(t.uow.q)
	}
	return t.userRepo
}

func (t *pgTx) Properties() shared.PropertyRepository {
	if t.propertyRepo == nil {
		t.propertyRepo = repository.NewPropertyRepository(t.uow.q)
	}
	return t.propertyRepo
}

func (t *pgTx) Bookings() shared.BookingRepository {
	if t.bookingRepo == nil {
		t.bookingRepo = repository.NewBookingRepository(t.uow.q)
	}
	return t.bookingRepo
}

func (t *pgTx) PaymentIntents() shared.PaymentIntentRepository {
	if t.intentRepo == nil {
		t.intentRepo = repository.NewPaymentIntentRepository(t.uow.q)
	}
	return t.intentRepo
}

func (t *pgTx) Reviews() shared.ReviewRepository {
	if t.reviewRepo == nil {
		t.reviewRepo = repository.NewReviewRepository(t.uow.q)
	}
	return t.reviewRepo
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
	userStore     *readstore.UserReadStore
	propertyStore *readstore.PropertyReadStore
	reviewStore   *readstore.ReviewReadStore
}

func (r *commandReads) UserCredentials(ctx context.Context, email string) (*shared.UserCredentials, error) {
	if r.userStore == nil {
		r.userStore = readstore.NewUserReadStore(r.uow.q, r.dbtx)
	}
	return r.userStore.FindCredentials(ctx, email)
}

func (r *commandReads) PropertyOwnership(ctx context.Context, propertyID uuid.UUID) (*shared.PropertyOwnership, error) {
	if r.propertyStore == nil {
		r.propertyStore = readstore.NewPropertyReadStore(r.uow.q, r.dbtx)
	}
	return r.propertyStore.FindOwnership(ctx, propertyID)
}

func (r *commandReads) ReviewEligibility(ctx context.Context, userID, propertyID uuid.UUID) (review.Eligibility, error) {
	if r.reviewStore == nil {
		r.reviewStore = readstore.NewReviewReadStore(r.uow.q, r.dbtx)
	}

	bookingID, err := r.reviewStore.CompletedBookingID(ctx, userID, propertyID)
	if err != nil {
		return review.Eligibility{}, err
	}
	exists, err := r.reviewStore.Exists(ctx, userID, propertyID)
	if err != nil {
		return review.Eligibility{}, err
	}

	return review.Eligibility{
		CompletedBookingID: bookingID,
		AlreadyReviewed:    exists,
	}, nil
}
