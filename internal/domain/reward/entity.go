package reward

import (
	"time"

	"github.com/google/uuid"
)

type Reward struct {
	id         uuid.UUID
	userID     uuid.UUID
	label      string
	couponID   *uuid.UUID
	couponCode *string
	expiresAt  *time.Time
	createdAt  time.Time
}

func NewReward(userID uuid.UUID, label string, couponID *uuid.UUID, couponCode *string, expiresAt *time.Time, now time.Time) *Reward {
	return &Reward{
		id:         uuid.New(),
		userID:     userID,
		label:      label,
		couponID:   couponID,
		couponCode: couponCode,
		expiresAt:  expiresAt,
		createdAt:  now,
	}
}

func (r *Reward) IsPrize() bool { return r.couponID != nil }

func (r *Reward) IsExpired(now time.Time) bool {
	return r.expiresAt != nil && now.After(*r.expiresAt)
}

func (r *Reward) ID() uuid.UUID         { return r.id }
func (r *Reward) UserID() uuid.UUID     { return r.userID }
func (r *Reward) Label() string         { return r.label }
func (r *Reward) CouponID() *uuid.UUID  { return r.couponID }
func (r *Reward) CouponCode() *string   { return r.couponCode }
func (r *Reward) ExpiresAt() *time.Time { return r.expiresAt }
func (r *Reward) CreatedAt() time.Time  { return r.createdAt }
