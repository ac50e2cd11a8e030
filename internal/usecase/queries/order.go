package queries

import (
	"context"
	"time"

	"storefront/internal/infra"
	"storefront/internal/pkg/errs"
	"storefront/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrOrderNotFound = errs.NewCategorized("order not found", errs.ErrNotFound)
	ErrOrderAccess   = errs.NewCategorized("order access denied", errs.ErrForbidden)
)

//go:generate mockgen -source=order.go -destination=../../../tests/mock/queries/order.go -package=queriesmock

type OrderReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*OrderView, error)
	List(ctx context.Context, filter OrderFilter, after *Keyset, limit int32) ([]*OrderListItem, error)
}

// InvoiceRenderer turns an order into a printable HTML invoice.
type InvoiceRenderer interface {
	Render(order *OrderView) ([]byte, error)
}

type OrderQueries interface {
	Get(ctx context.Context, actor shared.Actor, id uuid.UUID) (*OrderView, error)
	ListMine(ctx context.Context, actor shared.Actor, cursor *Cursor, limit int) ([]*OrderListItem, *Cursor, error)
	// ListAll is the staff listing; status narrows it when set.
	ListAll(ctx context.Context, status *string, cursor *Cursor, limit int) ([]*OrderListItem, *Cursor, error)
	Invoice(ctx context.Context, actor shared.Actor, id uuid.UUID) ([]byte, error)
}

type orderQueriesImpl struct {
	readStore OrderReadStore
	invoices  InvoiceRenderer
}

func NewOrderQueries(readStore OrderReadStore, invoices InvoiceRenderer) OrderQueries {
	return &orderQueriesImpl{readStore: readStore, invoices: invoices}
}

func (q *orderQueriesImpl) Get(ctx context.Context, actor shared.Actor, id uuid.UUID) (*OrderView, error) {
	o, err := q.readStore.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}
	if !actor.CanAccess(o.UserID) {
		// hide other users' orders rather than confirm they exist
		return nil, ErrOrderNotFound
	}
	return o, nil
}

func (q *orderQueriesImpl) ListMine(ctx context.Context, actor shared.Actor, cursor *Cursor, limit int) ([]*OrderListItem, *Cursor, error) {
	filter := OrderFilter{UserID: &actor.ID}
	return q.list(ctx, filter, cursor, limit)
}

func (q *orderQueriesImpl) ListAll(ctx context.Context, status *string, cursor *Cursor, limit int) ([]*OrderListItem, *Cursor, error) {
	return q.list(ctx, OrderFilter{Status: status}, cursor, limit)
}

func (q *orderQueriesImpl) list(ctx context.Context, filter OrderFilter, cursor *Cursor, limit int) ([]*OrderListItem, *Cursor, error) {
	fetch := func(after *Keyset, n int32) ([]*OrderListItem, error) {
		return q.readStore.List(ctx, filter, after, n)
	}
	return page(limit, cursor, fetch, func(o *OrderListItem) (time.Time, uuid.UUID) { return o.CreatedAt, o.ID })
}

func (q *orderQueriesImpl) Invoice(ctx context.Context, actor shared.Actor, id uuid.UUID) ([]byte, error) {
	o, err := q.Get(ctx, actor, id)
	if err != nil {
		return nil, err
	}
	return q.invoices.Render(o)
}
