package shared

import (
	"context"
	"time"

	"storefront/internal/domain/address"
	"storefront/internal/domain/cart"
	"storefront/internal/domain/catalog"
	"storefront/internal/domain/content"
	"storefront/internal/domain/coupon"
	"storefront/internal/domain/order"
	"storefront/internal/domain/reward"
	"storefront/internal/domain/user"
	"storefront/internal/infra/sqlc"

	"github.com/google/uuid"
)

//go:generate mockgen -source=uow.go -destination=../../../tests/mock/shared/uow.go -package=sharedmock

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithinReadOnly: Read-only transaction for multi-table consistent reads
	WithinReadOnly(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error
	// WithDB: Single query operations using implicit transactions
	WithDB(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error
	// CommandReads: Direct access to command reads for validation outside transactions
	CommandReads() CommandReads
}

type Tx interface {
	Users() UserRepository
	Catalog() CatalogRepository
	Coupons() CouponRepository
	Carts() CartRepository
	Addresses() AddressRepository
	Orders() OrderRepository
	Rewards() RewardRepository
	Content() ContentRepository
	Idempotency() IdempotencyRepository
	Notifications() NotificationRepository
	Reads() CommandReads
	DB() sqlc.DBTX
}

// CommandReads loads aggregates for the write side. Inside a Tx they see uncommitted changes.
type CommandReads interface {
	UserByID(ctx context.Context, id uuid.UUID) (*user.User, error)
	CategoryByID(ctx context.Context, id uuid.UUID) (*catalog.Category, error)
	ProductByID(ctx context.Context, id uuid.UUID) (*catalog.Product, error)
	ProductsByIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]*catalog.Product, error)
	BundleByID(ctx context.Context, id uuid.UUID) (*catalog.Bundle, error)
	BundlesByIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]*catalog.Bundle, error)
	CouponByID(ctx context.Context, id uuid.UUID) (*coupon.Coupon, error)
	CouponByCode(ctx context.Context, code string) (*coupon.Coupon, error)
	CartByUser(ctx context.Context, userID uuid.UUID, forUpdate bool) (*cart.Cart, error)
	AddressByID(ctx context.Context, id uuid.UUID) (*address.Address, error)
	OrderByID(ctx context.Context, id uuid.UUID, forUpdate bool) (*order.Order, error)
	OrderByProviderOrderID(ctx context.Context, providerOrderID string) (*order.Order, error)
	LatestSpinAt(ctx context.Context, userID uuid.UUID) (*time.Time, error)
	HeroImageByID(ctx context.Context, id uuid.UUID) (*content.HeroImage, error)
	BroadcastByID(ctx context.Context, id uuid.UUID, forUpdate bool) (*content.Broadcast, error)
	IdempotencyByKey(ctx context.Context, key, userID uuid.UUID) (*IdempotencyRecord, error)
}

type UserRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, u *user.User, now time.Time) error
	UpdateLastLogin(ctx context.Context, tx sqlc.DBTX, userID uuid.UUID) error
	// Lock serializes per-user operations such as spins.
	Lock(ctx context.Context, tx sqlc.DBTX, userID uuid.UUID) error
}

type CatalogRepository interface {
	CreateCategory(ctx context.Context, tx sqlc.DBTX, c *catalog.Category) error
	UpdateCategory(ctx context.Context, tx sqlc.DBTX, c *catalog.Category) error
	DeleteCategory(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) error
	CreateProduct(ctx context.Context, tx sqlc.DBTX, p *catalog.Product) error
	UpdateProduct(ctx context.Context, tx sqlc.DBTX, p *catalog.Product) error
	DeleteProduct(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) error
	// AdjustStock applies delta atomically and returns the new stock.
	// It fails with a CONFLICT repository error when stock would go negative.
	AdjustStock(ctx context.Context, tx sqlc.DBTX, productID uuid.UUID, delta int32) (int32, error)
	CreateBundle(ctx context.Context, tx sqlc.DBTX, b *catalog.Bundle) error
	UpdateBundle(ctx context.Context, tx sqlc.DBTX, b *catalog.Bundle) error
	DeleteBundle(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) error
}

type CouponRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, c *coupon.Coupon) error
	Update(ctx context.Context, tx sqlc.DBTX, c *coupon.Coupon) error
	Delete(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) error
	// ReserveUsage increments used_count unless the limit is reached (CONFLICT).
	ReserveUsage(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) error
	ReleaseUsage(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) error
	DeactivateExpiredRewards(ctx context.Context, tx sqlc.DBTX, now time.Time) (int64, error)
}

type CartRepository interface {
	Upsert(ctx context.Context, tx sqlc.DBTX, userID uuid.UUID, item cart.Item) error
	Remove(ctx context.Context, tx sqlc.DBTX, userID, productID uuid.UUID, bundleID *uuid.UUID) error
	RemoveBundle(ctx context.Context, tx sqlc.DBTX, userID, bundleID uuid.UUID) (int64, error)
	Clear(ctx context.Context, tx sqlc.DBTX, userID uuid.UUID) error
}

type AddressRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, a *address.Address) error
	Update(ctx context.Context, tx sqlc.DBTX, a *address.Address) error
	Delete(ctx context.Context, tx sqlc.DBTX, id, userID uuid.UUID) error
	CountByUser(ctx context.Context, tx sqlc.DBTX, userID uuid.UUID) (int64, error)
	// SetDefault clears the user's current default before marking id.
	SetDefault(ctx context.Context, tx sqlc.DBTX, id, userID uuid.UUID) error
	PromoteLatest(ctx context.Context, tx sqlc.DBTX, userID uuid.UUID) error
}

type OrderRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, o *order.Order) error
	SaveState(ctx context.Context, tx sqlc.DBTX, o *order.Order) error
	StalePendingIDs(ctx context.Context, tx sqlc.DBTX, before time.Time, limit int32) ([]uuid.UUID, error)
}

type RewardRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, r *reward.Reward) error
}

type ContentRepository interface {
	CreateHero(ctx context.Context, tx sqlc.DBTX, h *content.HeroImage) error
	UpdateHero(ctx context.Context, tx sqlc.DBTX, h *content.HeroImage) error
	DeleteHero(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) error
	CreateBroadcast(ctx context.Context, tx sqlc.DBTX, b *content.Broadcast) error
	SaveBroadcast(ctx context.Context, tx sqlc.DBTX, b *content.Broadcast) error
	DeleteBroadcast(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) error
	MarkBroadcastsSent(ctx context.Context, tx sqlc.DBTX, now time.Time) (int64, error)
}

type IdempotencyRepository interface {
	// TryInsert reports whether this call created the key.
	TryInsert(ctx context.Context, tx sqlc.DBTX, key, userID uuid.UUID, endpoint, requestHash string, expiresAt time.Time) (bool, error)
	// ClaimExpired takes over an expired key for a new request.
	ClaimExpired(ctx context.Context, tx sqlc.DBTX, key, userID uuid.UUID, requestHash string, expiresAt time.Time) (bool, error)
	Complete(ctx context.Context, tx sqlc.DBTX, key, userID uuid.UUID, responseHash string, orderID uuid.UUID) error
	// Release drops a key still processing so the client may retry.
	Release(ctx context.Context, tx sqlc.DBTX, key, userID uuid.UUID) error
	DeleteExpired(ctx context.Context, tx sqlc.DBTX, now time.Time) (int64, error)
}

type NotificationRepository interface {
	CreateJob(ctx context.Context, tx sqlc.DBTX, kind, topic string, payload []byte, runAt time.Time) error
	// CreateBroadcastJobs fans one job out per active customer and returns the count.
	CreateBroadcastJobs(ctx context.Context, tx sqlc.DBTX, b *content.Broadcast, runAt time.Time) (int64, error)
	ClaimDue(ctx context.Context, tx sqlc.DBTX, now time.Time, limit int32) ([]NotificationJob, error)
	MarkSent(ctx context.Context, tx sqlc.DBTX, id uuid.UUID, now time.Time) error
	Reschedule(ctx context.Context, tx sqlc.DBTX, id uuid.UUID, status string, attempts int32, runAt time.Time, lastError string) error
}
