package sqlc

import (
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type Addresses struct {
	ID        uuid.UUID          `json:"id"`
	UserID    uuid.UUID          `json:"user_id"`
	FullName  string             `json:"full_name"`
	Phone     string             `json:"phone"`
	Line1     string             `json:"line1"`
	Line2     string             `json:"line2"`
	City      string             `json:"city"`
	State     string             `json:"state"`
	Pincode   string             `json:"pincode"`
	IsDefault bool               `json:"is_default"`
	CreatedAt pgtype.Timestamptz `json:"created_at"`
	UpdatedAt pgtype.Timestamptz `json:"updated_at"`
}

type Broadcasts struct {
	ID             uuid.UUID          `json:"id"`
	Subject        string             `json:"subject"`
	Body           string             `json:"body"`
	Status         string             `json:"status"`
	CreatedBy      uuid.UUID          `json:"created_by"`
	RecipientCount int32              `json:"recipient_count"`
	QueuedAt       pgtype.Timestamptz `json:"queued_at"`
	SentAt         pgtype.Timestamptz `json:"sent_at"`
	CreatedAt      pgtype.Timestamptz `json:"created_at"`
	UpdatedAt      pgtype.Timestamptz `json:"updated_at"`
}

type BundleItems struct {
	BundleID  uuid.UUID `json:"bundle_id"`
	ProductID uuid.UUID `json:"product_id"`
	Position  int32     `json:"position"`
}

type Bundles struct {
	ID             uuid.UUID          `json:"id"`
	Name           string             `json:"name"`
	Slug           string             `json:"slug"`
	Mode           string             `json:"mode"`
	PercentOff     pgtype.Numeric     `json:"percent_off"`
	AmountOffCents pgtype.Int8        `json:"amount_off_cents"`
	Active         bool               `json:"active"`
	CreatedAt      pgtype.Timestamptz `json:"created_at"`
	UpdatedAt      pgtype.Timestamptz `json:"updated_at"`
}

type CartItems struct {
	UserID    uuid.UUID          `json:"user_id"`
	ProductID uuid.UUID          `json:"product_id"`
	BundleID  pgtype.UUID        `json:"bundle_id"`
	Quantity  int32              `json:"quantity"`
	CreatedAt pgtype.Timestamptz `json:"created_at"`
	UpdatedAt pgtype.Timestamptz `json:"updated_at"`
}

type Categories struct {
	ID        uuid.UUID          `json:"id"`
	Name      string             `json:"name"`
	Slug      string             `json:"slug"`
	CreatedAt pgtype.Timestamptz `json:"created_at"`
}

type Coupons struct {
	ID               uuid.UUID          `json:"id"`
	Code             string             `json:"code"`
	Kind             string             `json:"kind"`
	PercentOff       pgtype.Numeric     `json:"percent_off"`
	AmountOffCents   int64              `json:"amount_off_cents"`
	MaxDiscountCents int64              `json:"max_discount_cents"`
	MinOrderCents    int64              `json:"min_order_cents"`
	UsageLimit       pgtype.Int4        `json:"usage_limit"`
	UsedCount        int32              `json:"used_count"`
	AllowedEmails    []string           `json:"allowed_emails"`
	ProductIds       []uuid.UUID        `json:"product_ids"`
	CategoryIds      []uuid.UUID        `json:"category_ids"`
	ValidFrom        pgtype.Timestamptz `json:"valid_from"`
	ValidTo          pgtype.Timestamptz `json:"valid_to"`
	Active           bool               `json:"active"`
	CreatedAt        pgtype.Timestamptz `json:"created_at"`
	UpdatedAt        pgtype.Timestamptz `json:"updated_at"`
}

type HeroImages struct {
	ID        uuid.UUID          `json:"id"`
	Title     string             `json:"title"`
	Subtitle  string             `json:"subtitle"`
	ImageUrl  string             `json:"image_url"`
	LinkUrl   string             `json:"link_url"`
	SortOrder int32              `json:"sort_order"`
	Active    bool               `json:"active"`
	CreatedAt pgtype.Timestamptz `json:"created_at"`
	UpdatedAt pgtype.Timestamptz `json:"updated_at"`
}

type IdempotencyKeys struct {
	Key              uuid.UUID          `json:"key"`
	UserID           uuid.UUID          `json:"user_id"`
	Endpoint         string             `json:"endpoint"`
	RequestHash      string             `json:"request_hash"`
	Status           string             `json:"status"`
	ResponseBodyHash pgtype.Text        `json:"response_body_hash"`
	ResultOrderID    pgtype.UUID        `json:"result_order_id"`
	ExpiresAt        pgtype.Timestamptz `json:"expires_at"`
	CreatedAt        pgtype.Timestamptz `json:"created_at"`
}

type NotificationJobs struct {
	ID          uuid.UUID          `json:"id"`
	Kind        string             `json:"kind"`
	Topic       string             `json:"topic"`
	Payload     []byte             `json:"payload"`
	RunAt       pgtype.Timestamptz `json:"run_at"`
	Attempts    int32              `json:"attempts"`
	Status      string             `json:"status"`
	LastError   pgtype.Text        `json:"last_error"`
	BroadcastID pgtype.UUID        `json:"broadcast_id"`
	SentAt      pgtype.Timestamptz `json:"sent_at"`
	CreatedAt   pgtype.Timestamptz `json:"created_at"`
	UpdatedAt   pgtype.Timestamptz `json:"updated_at"`
}

type OrderItems struct {
	OrderID        uuid.UUID   `json:"order_id"`
	Position       int32       `json:"position"`
	ProductID      uuid.UUID   `json:"product_id"`
	BundleID       pgtype.UUID `json:"bundle_id"`
	Name           string      `json:"name"`
	UnitPriceCents int64       `json:"unit_price_cents"`
	Quantity       int32       `json:"quantity"`
	LineTotalCents int64       `json:"line_total_cents"`
}

type Orders struct {
	ID              uuid.UUID          `json:"id"`
	UserID          uuid.UUID          `json:"user_id"`
	Number          string             `json:"number"`
	Status          string             `json:"status"`
	SubtotalCents   int64              `json:"subtotal_cents"`
	ShippingCents   int64              `json:"shipping_cents"`
	DiscountCents   int64              `json:"discount_cents"`
	TotalCents      int64              `json:"total_cents"`
	Currency        string             `json:"currency"`
	CouponID        pgtype.UUID        `json:"coupon_id"`
	CouponCode      pgtype.Text        `json:"coupon_code"`
	ShipFullName    string             `json:"ship_full_name"`
	ShipPhone       string             `json:"ship_phone"`
	ShipLine1       string             `json:"ship_line1"`
	ShipLine2       string             `json:"ship_line2"`
	ShipCity        string             `json:"ship_city"`
	ShipState       string             `json:"ship_state"`
	ShipPincode     string             `json:"ship_pincode"`
	ProviderOrderID pgtype.Text        `json:"provider_order_id"`
	PaymentID       pgtype.Text        `json:"payment_id"`
	CancelReason    pgtype.Text        `json:"cancel_reason"`
	PaidAt          pgtype.Timestamptz `json:"paid_at"`
	CancelledAt     pgtype.Timestamptz `json:"cancelled_at"`
	CreatedAt       pgtype.Timestamptz `json:"created_at"`
	UpdatedAt       pgtype.Timestamptz `json:"updated_at"`
}

type Products struct {
	ID             uuid.UUID          `json:"id"`
	CategoryID     pgtype.UUID        `json:"category_id"`
	Name           string             `json:"name"`
	Slug           string             `json:"slug"`
	Description    string             `json:"description"`
	PriceCents     int64              `json:"price_cents"`
	CompareAtCents pgtype.Int8        `json:"compare_at_cents"`
	Stock          int32              `json:"stock"`
	ImageUrl       string             `json:"image_url"`
	Active         bool               `json:"active"`
	CreatedAt      pgtype.Timestamptz `json:"created_at"`
	UpdatedAt      pgtype.Timestamptz `json:"updated_at"`
}

type Rewards struct {
	ID         uuid.UUID          `json:"id"`
	UserID     uuid.UUID          `json:"user_id"`
	Label      string             `json:"label"`
	CouponID   pgtype.UUID        `json:"coupon_id"`
	CouponCode pgtype.Text        `json:"coupon_code"`
	ExpiresAt  pgtype.Timestamptz `json:"expires_at"`
	CreatedAt  pgtype.Timestamptz `json:"created_at"`
}

type Users struct {
	ID           uuid.UUID          `json:"id"`
	Email        string             `json:"email"`
	FullName     string             `json:"full_name"`
	PasswordHash string             `json:"password_hash"`
	Role         string             `json:"role"`
	LastLogin    pgtype.Timestamptz `json:"last_login"`
	IsActive     bool               `json:"is_active"`
	CreatedAt    pgtype.Timestamptz `json:"created_at"`
	UpdatedAt    pgtype.Timestamptz `json:"updated_at"`
}
