package uow

import (
	"context"
	"crypto/rand"
	"encoding/binary"
	"errors"
	"log/slog"
	"time"

	"storefront/internal/domain/address"
	"storefront/internal/domain/cart"
	"storefront/internal/domain/catalog"
	"storefront/internal/domain/content"
	"storefront/internal/domain/coupon"
	"storefront/internal/domain/order"
	"storefront/internal/domain/user"
	"storefront/internal/infra/repository"
	"storefront/internal/infra/sqlc"
	"storefront/internal/pkg/errs"
	"storefront/internal/usecase/shared"

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

// repositories hold no per-transaction state.
type repositories struct {
	users         *repository.UserRepository
	catalog       *repository.CatalogRepository
	coupons       *repository.CouponRepository
	carts         *repository.CartRepository
	addresses     *repository.AddressRepository
	orders        *repository.OrderRepository
	rewards       *repository.RewardRepository
	content       *repository.ContentRepository
	idempotency   *repository.IdempotencyRepository
	notifications *repository.NotificationRepository
}

type PostgresUoW struct {
	pool  *pgxpool.Pool
	repos repositories
}

func NewPostgresUoW(pool *pgxpool.Pool, q *sqlc.Queries) shared.UnitOfWork {
	return &PostgresUoW{
		pool: pool,
		repos: repositories{
			users:         repository.NewUserRepository(q),
			catalog:       repository.NewCatalogRepository(q),
			coupons:       repository.NewCouponRepository(q),
			carts:         repository.NewCartRepository(q),
			addresses:     repository.NewAddressRepository(q),
			orders:        repository.NewOrderRepository(q),
			rewards:       repository.NewRewardRepository(q),
			content:       repository.NewContentRepository(q),
			idempotency:   repository.NewIdempotencyRepository(q),
			notifications: repository.NewNotificationRepository(q),
		},
	}
}

// ReadCommitted prevents dirty reads while allowing concurrent writes
func (u *PostgresUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	return u.runInTxWithOptions(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted}, fn)
}

// Read-only transaction for consistent multi-table snapshots
func (u *PostgresUoW) WithinReadOnly(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error {
	return u.runReadOnlyTx(ctx, pgx.TxOptions{AccessMode: pgx.ReadOnly}, fn)
}

func (u *PostgresUoW) WithDB(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error {
	return fn(ctx, u.pool)
}

func (u *PostgresUoW) CommandReads() shared.CommandReads {
	return &commandReads{repos: &u.repos, dbtx: u.pool}
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
			dbtx:  pgxTx,
			repos: &u.repos,
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
	dbtx  sqlc.DBTX
	repos *repositories

	// Lazy-initialized on first use
	commandReads shared.CommandReads
}

func (t *pgTx) DB() sqlc.DBTX                                { return t.dbtx }
func (t *pgTx) Users() shared.UserRepository                 { return t.repos.users }
func (t *pgTx) Catalog() shared.CatalogRepository            { return t.repos.catalog }
func (t *pgTx) Coupons() shared.CouponRepository             { return t.repos.coupons }
func (t *pgTx) Carts() shared.CartRepository                 { return t.repos.carts }
func (t *pgTx) Addresses() shared.AddressRepository          { return t.repos.addresses }
func (t *pgTx) Orders() shared.OrderRepository               { return t.repos.orders }
func (t *pgTx) Rewards() shared.RewardRepository             { return t.repos.rewards }
func (t *pgTx) Content() shared.ContentRepository            { return t.repos.content }
func (t *pgTx) Idempotency() shared.IdempotencyRepository    { return t.repos.idempotency }
func (t *pgTx) Notifications() shared.NotificationRepository { return t.repos.notifications }

func (t *pgTx) Reads() shared.CommandReads {
	if t.commandReads == nil {
		t.commandReads = &commandReads{
			repos: t.repos,
			dbtx:  t.dbtx,
		}
	}
	return t.commandReads
}

// commandReads loads aggregates for validation; inside a transaction it sees uncommitted writes.
type commandReads struct {
	repos *repositories
	dbtx  sqlc.DBTX
}

func (r *commandReads) UserByID(ctx context.Context, id uuid.UUID) (*user.User, error) {
	return r.repos.users.FindByID(ctx, r.dbtx, id)
}

func (r *commandReads) CategoryByID(ctx context.Context, id uuid.UUID) (*catalog.Category, error) {
	return r.repos.catalog.FindCategoryByID(ctx, r.dbtx, id)
}

func (r *commandReads) ProductByID(ctx context.Context, id uuid.UUID) (*catalog.Product, error) {
	return r.repos.catalog.FindProductByID(ctx, r.dbtx, id)
}

func (r *commandReads) ProductsByIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]*catalog.Product, error) {
	return r.repos.catalog.FindProductsByIDs(ctx, r.dbtx, ids)
}

func (r *commandReads) BundleByID(ctx context.Context, id uuid.UUID) (*catalog.Bundle, error) {
	return r.repos.catalog.FindBundleByID(ctx, r.dbtx, id)
}

func (r *commandReads) BundlesByIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]*catalog.Bundle, error) {
	return r.repos.catalog.FindBundlesByIDs(ctx, r.dbtx, ids)
}

func (r *commandReads) CouponByID(ctx context.Context, id uuid.UUID) (*coupon.Coupon, error) {
	return r.repos.coupons.FindByID(ctx, r.dbtx, id)
}

func (r *commandReads) CouponByCode(ctx context.Context, code string) (*coupon.Coupon, error) {
	return r.repos.coupons.FindByCode(ctx, r.dbtx, code)
}

func (r *commandReads) CartByUser(ctx context.Context, userID uuid.UUID, forUpdate bool) (*cart.Cart, error) {
	return r.repos.carts.FindByUser(ctx, r.dbtx, userID, forUpdate)
}

func (r *commandReads) AddressByID(ctx context.Context, id uuid.UUID) (*address.Address, error) {
	return r.repos.addresses.FindByID(ctx, r.dbtx, id)
}

func (r *commandReads) OrderByID(ctx context.Context, id uuid.UUID, forUpdate bool) (*order.Order, error) {
	return r.repos.orders.FindByID(ctx, r.dbtx, id, forUpdate)
}

func (r *commandReads) OrderByProviderOrderID(ctx context.Context, providerOrderID string) (*order.Order, error) {
	return r.repos.orders.FindByProviderOrderID(ctx, r.dbtx, providerOrderID)
}

func (r *commandReads) LatestSpinAt(ctx context.Context, userID uuid.UUID) (*time.Time, error) {
	return r.repos.rewards.LatestSpinAt(ctx, r.dbtx, userID)
}

func (r *commandReads) HeroImageByID(ctx context.Context, id uuid.UUID) (*content.HeroImage, error) {
	return r.repos.content.FindHeroByID(ctx, r.dbtx, id)
}

func (r *commandReads) BroadcastByID(ctx context.Context, id uuid.UUID, forUpdate bool) (*content.Broadcast, error) {
	return r.repos.content.FindBroadcastByID(ctx, r.dbtx, id, forUpdate)
}

func (r *commandReads) IdempotencyByKey(ctx context.Context, key, userID uuid.UUID) (*shared.IdempotencyRecord, error) {
	return r.repos.idempotency.Get(ctx, r.dbtx, key, userID)
}
