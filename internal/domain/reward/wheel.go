package reward

import (
	"math/rand/v2"
	"strings"
	"time"

	"storefront/internal/domain/coupon"
	"storefront/internal/domain/pricing"
	"storefront/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// KindNone marks a "better luck next time" segment.
const KindNone = "none"

const (
	codePrefix   = "SPIN"
	codeLength   = 8
	codeAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
)

var (
	ErrSpinCooldown   = errs.NewCategorized("spin is on cooldown", errs.ErrConflict)
	ErrEmptyWheel     = errs.New("wheel has no segments with positive weight")
	ErrInvalidSegment = errs.New("invalid wheel segment")
)

// Rand is the randomness a wheel needs; tests pass a scripted source.
type Rand interface {
	IntN(n int) int
}

type defaultRand struct{}

func (defaultRand) IntN(n int) int { return rand.IntN(n) }

func DefaultRand() Rand { return defaultRand{} }

type Segment struct {
	Label        string
	Kind         string
	PercentOff   decimal.Decimal
	AmountOff    pricing.Money
	MaxDiscount  pricing.Money
	MinOrder     pricing.Money
	ValidityDays int
	Weight       int
}

func (s Segment) IsPrize() bool {
	return s.Kind != KindNone
}

type Wheel struct {
	segments    []Segment
	totalWeight int
	cooldown    time.Duration
	rng         Rand
}

func NewWheel(segments []Segment, cooldown time.Duration, rng Rand) (*Wheel, error) {
	total := 0
	for _, s := range segments {
		if s.Weight < 0 {
			return nil, errs.Wrapf(ErrInvalidSegment, "%q has negative weight", s.Label)
		}
		if s.IsPrize() {
			if !pricing.CouponKind(s.Kind).Valid() {
				return nil, errs.Wrapf(ErrInvalidSegment, "%q has unknown kind %q", s.Label, s.Kind)
			}
			if s.ValidityDays < 1 {
				return nil, errs.Wrapf(ErrInvalidSegment, "%q needs validity days", s.Label)
			}
		}
		total += s.Weight
	}
	if total == 0 {
		return nil, ErrEmptyWheel
	}
	if rng == nil {
		rng = DefaultRand()
	}
	return &Wheel{segments: segments, totalWeight: total, cooldown: cooldown, rng: rng}, nil
}

func (w *Wheel) Segments() []Segment     { return w.segments }
func (w *Wheel) Cooldown() time.Duration { return w.cooldown }

// NextSpinAt is when the user may spin again; zero when they already can.
func (w *Wheel) NextSpinAt(lastSpinAt *time.Time, now time.Time) time.Time {
	if lastSpinAt == nil {
		return time.Time{}
	}
	next := lastSpinAt.Add(w.cooldown)
	if !next.After(now) {
		return time.Time{}
	}
	return next
}

// Pick returns the index of a segment chosen proportionally to weight.
func (w *Wheel) Pick() int {
	n := w.rng.IntN(w.totalWeight)
	for i, s := range w.segments {
		if n < s.Weight {
			return i
		}
		n -= s.Weight
	}
	return len(w.segments) - 1
}

type Outcome struct {
	SegmentIndex int
	Segment      Segment
	Coupon       *coupon.Coupon
	Reward       *Reward
}

// Spin enforces the cooldown, picks a segment and mints a personal single-use coupon for prizes.
func (w *Wheel) Spin(userID uuid.UUID, email string, lastSpinAt *time.Time, now time.Time) (*Outcome, error) {
	if next := w.NextSpinAt(lastSpinAt, now); !next.IsZero() {
		return nil, errs.Wrapf(ErrSpinCooldown, "next spin at %s", next.Format(time.RFC3339))
	}

	idx := w.Pick()
	seg := w.segments[idx]
	out := &Outcome{SegmentIndex: idx, Segment: seg}

	if !seg.IsPrize() {
		out.Reward = NewReward(userID, seg.Label, nil, nil, nil, now)
		return out, nil
	}

	validTo := now.Add(time.Duration(seg.ValidityDays) * 24 * time.Hour)
	limit := int32(1)
	c, err := coupon.NewCoupon(uuid.Nil, coupon.Params{
		Code:          w.code(),
		Kind:          pricing.CouponKind(seg.Kind),
		PercentOff:    seg.PercentOff,
		AmountOff:     seg.AmountOff,
		MaxDiscount:   seg.MaxDiscount,
		MinOrder:      seg.MinOrder,
		UsageLimit:    &limit,
		AllowedEmails: []string{email},
		ValidFrom:     &now,
		ValidTo:       &validTo,
		Active:        true,
	}, now)
	if err != nil {
		return nil, errs.Wrapf(err, "segment %q", seg.Label)
	}

	couponID := c.ID()
	code := c.Code().String()
	out.Coupon = c
	out.Reward = NewReward(userID, seg.Label, &couponID, &code, &validTo, now)
	return out, nil
}

func (w *Wheel) code() string {
	var b strings.Builder
	b.Grow(len(codePrefix) + codeLength)
	b.WriteString(codePrefix)
	for i := 0; i < codeLength; i++ {
		b.WriteByte(codeAlphabet[w.rng.IntN(len(codeAlphabet))])
	}
	return b.String()
}
