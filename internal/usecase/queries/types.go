package queries

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// AuthorizedUserView represents read-optimized user data with authorization info
type AuthorizedUserView struct {
	ID       uuid.UUID `json:"id"`
	Email    string    `json:"email"`
	FullName string    `json:"full_name"`
	Role     string    `json:"role"`
	IsActive bool      `json:"is_active"`
}

type CategoryView struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Slug      string    `json:"slug"`
	CreatedAt time.Time `json:"created_at"`
}

type ProductView struct {
	ID                  uuid.UUID  `json:"id"`
	CategoryID          *uuid.UUID `json:"category_id,omitempty"`
	Name                string     `json:"name"`
	Slug                string     `json:"slug"`
	Description         string     `json:"description"`
	PriceCents          int64      `json:"price_cents"`
	CompareAtPriceCents *int64     `json:"compare_at_price_cents,omitempty"`
	Stock               int32      `json:"stock"`
	ImageURL            string     `json:"image_url"`
	Active              bool       `json:"active"`
	CreatedAt           time.Time  `json:"created_at"`
	UpdatedAt           time.Time  `json:"updated_at"`
}

type BundleView struct {
	ID             uuid.UUID        `json:"id"`
	Name           string           `json:"name"`
	Slug           string           `json:"slug"`
	Mode           string           `json:"mode"`
	PercentOff     *decimal.Decimal `json:"percent_off,omitempty"`
	AmountOffCents *int64           `json:"amount_off_cents,omitempty"`
	Active         bool             `json:"active"`
	Products       []ProductView    `json:"products"`
	CreatedAt      time.Time        `json:"created_at"`
}

type ProductFilter struct {
	CategoryID *uuid.UUID
	Search     *string
	ActiveOnly bool
}

// CouponView represents read-optimized coupon data
type CouponView struct {
	ID               uuid.UUID        `json:"id"`
	Code             string           `json:"code"`
	Kind             string           `json:"kind"`
	PercentOff       *decimal.Decimal `json:"percent_off,omitempty"`
	AmountOffCents   int64            `json:"amount_off_cents"`
	MaxDiscountCents int64            `json:"max_discount_cents"`
	MinOrderCents    int64            `json:"min_order_cents"`
	UsageLimit       *int32           `json:"usage_limit,omitempty"`
	UsedCount        int32            `json:"used_count"`
	AllowedEmails    []string         `json:"allowed_emails"`
	ProductIDs       []uuid.UUID      `json:"product_ids"`
	CategoryIDs      []uuid.UUID      `json:"category_ids"`
	ValidFrom        *time.Time       `json:"valid_from,omitempty"`
	ValidTo          *time.Time       `json:"valid_to,omitempty"`
	Active           bool             `json:"active"`
	CreatedAt        time.Time        `json:"created_at"`
	UpdatedAt        time.Time        `json:"updated_at"`
}

type OrderItemView struct {
	ProductID      uuid.UUID  `json:"product_id"`
	BundleID       *uuid.UUID `json:"bundle_id,omitempty"`
	Name           string     `json:"name"`
	UnitPriceCents int64      `json:"unit_price_cents"`
	Quantity       int32      `json:"quantity"`
	LineTotalCents int64      `json:"line_total_cents"`
}

type ShippingAddressView struct {
	FullName string `json:"full_name"`
	Phone    string `json:"phone"`
	Line1    string `json:"line1"`
	Line2    string `json:"line2,omitempty"`
	City     string `json:"city"`
	State    string `json:"state"`
	Pincode  string `json:"pincode"`
}

type OrderView struct {
	ID              uuid.UUID           `json:"id"`
	UserID          uuid.UUID           `json:"user_id"`
	Number          string              `json:"number"`
	Status          string              `json:"status"`
	Items           []OrderItemView     `json:"items"`
	SubtotalCents   int64               `json:"subtotal_cents"`
	ShippingCents   int64               `json:"shipping_cents"`
	DiscountCents   int64               `json:"discount_cents"`
	TotalCents      int64               `json:"total_cents"`
	Currency        string              `json:"currency"`
	CouponCode      *string             `json:"coupon_code,omitempty"`
	Address         ShippingAddressView `json:"address"`
	ProviderOrderID *string             `json:"provider_order_id,omitempty"`
	PaymentID       *string             `json:"payment_id,omitempty"`
	CancelReason    *string             `json:"cancel_reason,omitempty"`
	PaidAt          *time.Time          `json:"paid_at,omitempty"`
	CancelledAt     *time.Time          `json:"cancelled_at,omitempty"`
	CreatedAt       time.Time           `json:"created_at"`
	UpdatedAt       time.Time           `json:"updated_at"`
}

type OrderListItem struct {
	ID         uuid.UUID `json:"id"`
	UserID     uuid.UUID `json:"user_id"`
	Number     string    `json:"number"`
	Status     string    `json:"status"`
	TotalCents int64     `json:"total_cents"`
	Currency   string    `json:"currency"`
	CreatedAt  time.Time `json:"created_at"`
}

type OrderFilter struct {
	UserID *uuid.UUID
	Status *string
}

type AddressView struct {
	ID        uuid.UUID `json:"id"`
	FullName  string    `json:"full_name"`
	Phone     string    `json:"phone"`
	Line1     string    `json:"line1"`
	Line2     string    `json:"line2,omitempty"`
	City      string    `json:"city"`
	State     string    `json:"state"`
	Pincode   string    `json:"pincode"`
	IsDefault bool      `json:"is_default"`
	CreatedAt time.Time `json:"created_at"`
}

type RewardView struct {
	ID         uuid.UUID  `json:"id"`
	Label      string     `json:"label"`
	CouponCode *string    `json:"coupon_code,omitempty"`
	ExpiresAt  *time.Time `json:"expires_at,omitempty"`
	Redeemed   bool       `json:"redeemed"`
	Expired    bool       `json:"expired"`
	CreatedAt  time.Time  `json:"created_at"`
}

type HeroView struct {
	ID        uuid.UUID `json:"id"`
	Title     string    `json:"title"`
	Subtitle  string    `json:"subtitle"`
	ImageURL  string    `json:"image_url"`
	LinkURL   string    `json:"link_url"`
	SortOrder int32     `json:"sort_order"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type BroadcastView struct {
	ID             uuid.UUID  `json:"id"`
	Subject        string     `json:"subject"`
	Body           string     `json:"body"`
	Status         string     `json:"status"`
	CreatedBy      uuid.UUID  `json:"created_by"`
	RecipientCount int32      `json:"recipient_count"`
	QueuedAt       *time.Time `json:"queued_at,omitempty"`
	SentAt         *time.Time `json:"sent_at,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}
