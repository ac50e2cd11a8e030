package commands

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"log/slog"
	"slices"
	"time"

	"storefront/internal/domain/address"
	"storefront/internal/domain/coupon"
	"storefront/internal/domain/order"
	"storefront/internal/domain/payment"
	"storefront/internal/domain/pricing"
	reqdto "storefront/internal/handler/dto/request"
	"storefront/internal/infra"
	"storefront/internal/pkg/clock"
	"storefront/internal/pkg/errs"
	"storefront/internal/pkg/metrics"
	"storefront/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrCartEmpty              = errs.NewCategorized("cart is empty", errs.ErrValidation)
	ErrCartHasUnavailable     = errs.NewCategorized("cart has unavailable items", errs.ErrConflict)
	ErrIdempotencyInProgress  = errs.NewCategorized("idempotency in progress", errs.ErrConflict)
	ErrIdempotencyKeyReuse    = errs.NewCategorized("idempotency key reused with a different request", errs.ErrConflict)
	ErrIdempotencyCheckFailed = errs.New("idempotency check failed")
	ErrPaymentGateway         = errs.New("payment gateway unavailable")
)

const placeOrderEndpoint = "POST /orders"

// zeroAmountPaymentID settles orders whose total is fully discounted.
const zeroAmountPaymentID = "zero_amount"

//go:generate mockgen -source=order.go -destination=../../../tests/mock/commands/order.go -package=commandsmock

type PaymentGateway interface {
	KeyID() string
	CreateOrder(ctx context.Context, amountCents int64, currency, receipt string) (string, error)
	ParseWebhook(body []byte) (payment.WebhookEvent, error)
}

type CouponCacheInvalidator interface {
	Invalidate(ctx context.Context, code string)
}

type OrderSettings struct {
	Currency        string
	PendingOrderTTL time.Duration
	IdempotencyTTL  time.Duration
	KeySecret       string
	WebhookSecret   string
	BatchSize       int32
}

type PaymentIntent struct {
	OrderID         uuid.UUID `json:"order_id"`
	OrderNumber     string    `json:"order_number"`
	Status          string    `json:"status"`
	ProviderOrderID string    `json:"razorpay_order_id,omitempty"`
	AmountCents     int64     `json:"amount_cents"`
	Currency        string    `json:"currency"`
	KeyID           string    `json:"key_id"`
}

type PlaceOrderResult struct {
	Intent     *PaymentIntent
	IsReplayed bool
}

type OrderCommands interface {
	PlaceOrder(ctx context.Context, actor shared.Actor, req reqdto.PlaceOrderRequest, idempotencyKey uuid.UUID) (*PlaceOrderResult, error)
	ConfirmPayment(ctx context.Context, actor shared.Actor, orderID uuid.UUID, req reqdto.VerifyPaymentRequest) error
	HandleWebhook(ctx context.Context, body []byte, signature string) error
	Cancel(ctx context.Context, actor shared.Actor, orderID uuid.UUID, reason string) error
	UpdateStatus(ctx context.Context, actor shared.Actor, orderID uuid.UUID, status string) error
	// ExpireStale cancels pending orders older than the payment window and returns how many.
	ExpireStale(ctx context.Context) (int, error)
}

type orderCommandsImpl struct {
	uow      shared.UnitOfWork
	calc     pricing.Calculator
	gateway  PaymentGateway
	coupons  CouponCacheInvalidator
	clock    clock.Clock
	settings OrderSettings
}

func NewOrderCommands(
	uow shared.UnitOfWork,
	calc pricing.Calculator,
	gateway PaymentGateway,
	coupons CouponCacheInvalidator,
	clk clock.Clock,
	settings OrderSettings,
) OrderCommands {
	return &orderCommandsImpl{
		uow:      uow,
		calc:     calc,
		gateway:  gateway,
		coupons:  coupons,
		clock:    clk,
		settings: settings,
	}
}

func (o *orderCommandsImpl) PlaceOrder(
	ctx context.Context,
	actor shared.Actor,
	req reqdto.PlaceOrderRequest,
	idempotencyKey uuid.UUID,
) (*PlaceOrderResult, error) {
	requestHash := calculateRequestHash(req)

	existing, err := o.handleIdempotency(ctx, idempotencyKey, actor.ID, requestHash)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		intent, err := o.ensureIntent(ctx, existing)
		if err != nil {
			return nil, err
		}
		return &PlaceOrderResult{Intent: intent, IsReplayed: true}, nil
	}

	created, err := o.createOrder(ctx, actor, req, idempotencyKey, requestHash)
	if err != nil {
		o.releaseKey(ctx, idempotencyKey, actor.ID)
		return nil, err
	}

	metrics.OrderPlaced()
	slog.Info("Order placed", "order_id", created.ID(), "number", created.Number(), "total", created.Total().Cents())

	if code := created.CouponCode(); code != nil {
		o.coupons.Invalidate(ctx, *code)
	}

	intent, err := o.ensureIntent(ctx, created)
	if err != nil {
		return nil, err
	}
	return &PlaceOrderResult{Intent: intent}, nil
}

// handleIdempotency returns the order a completed key produced, or nil when this call owns the key.
func (o *orderCommandsImpl) handleIdempotency(ctx context.Context, key, userID uuid.UUID, requestHash string) (*order.Order, error) {
	now := o.clock.Now()
	expiresAt := now.Add(o.settings.IdempotencyTTL)

	var replay *order.Order
	err := o.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		inserted, err := tx.Idempotency().TryInsert(ctx, tx.DB(), key, userID, placeOrderEndpoint, requestHash, expiresAt)
		if err != nil {
			return errs.Mark(err, ErrIdempotencyCheckFailed)
		}
		if inserted {
			return nil
		}

		existing, err := tx.Reads().IdempotencyByKey(ctx, key, userID)
		if err != nil {
			return errs.Mark(err, ErrIdempotencyCheckFailed)
		}

		if existing.IsExpired(now) {
			claimed, err := tx.Idempotency().ClaimExpired(ctx, tx.DB(), key, userID, requestHash, expiresAt)
			if err != nil {
				return errs.Mark(err, ErrIdempotencyCheckFailed)
			}
			if !claimed {
				return ErrIdempotencyInProgress
			}
			return nil
		}

		if existing.RequestHash != requestHash {
			return ErrIdempotencyKeyReuse
		}

		switch existing.Status {
		case shared.IdempotencyCompleted:
			if existing.ResultOrderID == nil {
				return errs.New("completed request missing result order ID")
			}
			replay, err = tx.Reads().OrderByID(ctx, *existing.ResultOrderID, false)
			return repoErr(err, ErrOrderNotFound)
		case shared.IdempotencyProcessing:
			return ErrIdempotencyInProgress
		default:
			return errs.New("invalid idempotency key status")
		}
	})
	if err != nil {
		return nil, err
	}
	return replay, nil
}

func (o *orderCommandsImpl) createOrder(
	ctx context.Context,
	actor shared.Actor,
	req reqdto.PlaceOrderRequest,
	idempotencyKey uuid.UUID,
	requestHash string,
) (*order.Order, error) {
	var created *order.Order
	err := o.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		now := o.clock.Now()
		reads := tx.Reads()

		crt, err := reads.CartByUser(ctx, actor.ID, true)
		if err != nil {
			return repoErr(err, nil)
		}
		if crt.IsEmpty() {
			return ErrCartEmpty
		}

		addr, err := reads.AddressByID(ctx, req.AddressID)
		if err != nil {
			return repoErr(err, address.ErrAddressNotFound)
		}
		if !addr.IsOwnedBy(actor.ID) {
			return address.ErrAddressNotFound
		}

		var cp *coupon.Coupon
		if code := req.GetCouponCode(); code != "" {
			cp, err = reads.CouponByCode(ctx, code)
			if err != nil {
				return repoErr(err, coupon.ErrCouponNotFound)
			}
		}

		priced, err := shared.PriceCart(ctx, reads, o.calc, crt, cp, actor.Email, now)
		if err != nil {
			return repoErr(err, nil)
		}
		if len(priced.Unavailable) > 0 {
			return ErrCartHasUnavailable
		}
		if priced.CouponErr != nil {
			metrics.CouponRejected(coupon.MessageCode(priced.CouponErr))
			return priced.CouponErr
		}

		var couponID *uuid.UUID
		if priced.CouponApplied() {
			id := cp.ID()
			couponID = &id
		}

		ord, err := order.NewOrder(actor.ID, priced.Quote, couponID, shippingSnapshot(addr), o.settings.Currency, now)
		if err != nil {
			return err
		}

		if err := o.reserveStock(ctx, tx, ord); err != nil {
			return err
		}
		if couponID != nil {
			if err := tx.Coupons().ReserveUsage(ctx, tx.DB(), *couponID); err != nil {
				if infra.IsKind(err, infra.KindConflict) {
					return coupon.ErrCouponLimitReached
				}
				return repoErr(err, nil)
			}
		}

		if err := tx.Orders().Create(ctx, tx.DB(), ord); err != nil {
			return repoErr(err, nil)
		}
		if err := tx.Carts().Clear(ctx, tx.DB(), actor.ID); err != nil {
			return repoErr(err, nil)
		}
		if err := tx.Idempotency().Complete(ctx, tx.DB(), idempotencyKey, actor.ID, calculateIDHash(ord.ID()), ord.ID()); err != nil {
			return repoErr(err, nil)
		}

		created = ord
		return nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

// reserveStock decrements in product id order so concurrent checkouts lock rows consistently.
func (o *orderCommandsImpl) reserveStock(ctx context.Context, tx shared.Tx, ord *order.Order) error {
	qty := ord.ItemQuantities()
	ids := make([]uuid.UUID, 0, len(qty))
	for id := range qty {
		ids = append(ids, id)
	}
	slices.SortFunc(ids, func(a, b uuid.UUID) int { return bytes.Compare(a[:], b[:]) })

	for _, id := range ids {
		if _, err := tx.Catalog().AdjustStock(ctx, tx.DB(), id, -int32(qty[id])); err != nil {
			if infra.IsKind(err, infra.KindConflict) {
				return errs.Wrapf(ErrOutOfStock, "product %s", id)
			}
			return repoErr(err, nil)
		}
	}
	return nil
}

// ensureIntent opens the gateway order once; replays reuse the stored provider id.
func (o *orderCommandsImpl) ensureIntent(ctx context.Context, ord *order.Order) (*PaymentIntent, error) {
	if ord.Status() == order.StatusPending && ord.ProviderOrderID() == nil {
		if ord.Total().IsZero() {
			if err := o.settleZeroAmount(ctx, ord.ID()); err != nil {
				return nil, err
			}
			return o.intentFor(ctx, ord.ID())
		}

		providerID, err := o.gateway.CreateOrder(ctx, ord.Total().Cents(), ord.Currency(), ord.Number())
		if err != nil {
			slog.Error("failed to open payment order", "order_id", ord.ID(), "error", err.Error())
			return nil, errs.Mark(err, ErrPaymentGateway)
		}

		err = o.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
			locked, err := tx.Reads().OrderByID(ctx, ord.ID(), true)
			if err != nil {
				return repoErr(err, ErrOrderNotFound)
			}
			if locked.ProviderOrderID() != nil {
				return nil
			}
			locked.AttachProviderOrder(providerID, o.clock.Now())
			ord = locked
			return repoErr(tx.Orders().SaveState(ctx, tx.DB(), locked), ErrOrderNotFound)
		})
		if err != nil {
			return nil, err
		}
	}
	return o.newIntent(ord), nil
}

func (o *orderCommandsImpl) intentFor(ctx context.Context, orderID uuid.UUID) (*PaymentIntent, error) {
	ord, err := o.uow.CommandReads().OrderByID(ctx, orderID, false)
	if err != nil {
		return nil, repoErr(err, ErrOrderNotFound)
	}
	return o.newIntent(ord), nil
}

func (o *orderCommandsImpl) newIntent(ord *order.Order) *PaymentIntent {
	intent := &PaymentIntent{
		OrderID:     ord.ID(),
		OrderNumber: ord.Number(),
		Status:      ord.Status().String(),
		AmountCents: ord.Total().Cents(),
		Currency:    ord.Currency(),
		KeyID:       o.gateway.KeyID(),
	}
	if id := ord.ProviderOrderID(); id != nil {
		intent.ProviderOrderID = *id
	}
	return intent
}

func (o *orderCommandsImpl) settleZeroAmount(ctx context.Context, orderID uuid.UUID) error {
	return o.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		ord, err := tx.Reads().OrderByID(ctx, orderID, true)
		if err != nil {
			return repoErr(err, ErrOrderNotFound)
		}
		_, err = o.markPaid(ctx, tx, ord, zeroAmountPaymentID)
		return err
	})
}

func (o *orderCommandsImpl) releaseKey(ctx context.Context, key, userID uuid.UUID) {
	err := o.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Idempotency().Release(ctx, tx.DB(), key, userID)
	})
	if err != nil {
		slog.Warn("failed to release idempotency key", "key", key, "error", err.Error())
	}
}

func shippingSnapshot(a *address.Address) order.ShippingAddress {
	return order.ShippingAddress{
		FullName: a.FullName(),
		Phone:    a.Phone(),
		Line1:    a.Line1(),
		Line2:    a.Line2(),
		City:     a.City(),
		State:    a.State(),
		Pincode:  a.Pincode(),
	}
}

func calculateRequestHash(req any) string {
	data, _ := json.Marshal(req)
	hash := sha256.Sum256(data)
	return hex.EncodeToString(hash[:])
}

func calculateIDHash(id uuid.UUID) string {
	hash := sha256.Sum256([]byte(id.String()))
	return hex.EncodeToString(hash[:])
}
