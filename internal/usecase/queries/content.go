package queries

import (
	"context"
	"time"

	"storefront/internal/infra"
	"storefront/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrBroadcastNotFound = errs.NewCategorized("broadcast not found", errs.ErrNotFound)

//go:generate mockgen -source=content.go -destination=../../../tests/mock/queries/content.go -package=queriesmock

type ContentReadStore interface {
	ListHeroes(ctx context.Context, activeOnly bool) ([]*HeroView, error)
	FindBroadcastByID(ctx context.Context, id uuid.UUID) (*BroadcastView, error)
	ListBroadcasts(ctx context.Context, after *Keyset, limit int32) ([]*BroadcastView, error)
}

type ContentQueries interface {
	ListHeroes(ctx context.Context, activeOnly bool) ([]*HeroView, error)
	GetBroadcast(ctx context.Context, id uuid.UUID) (*BroadcastView, error)
	ListBroadcasts(ctx context.Context, cursor *Cursor, limit int) ([]*BroadcastView, *Cursor, error)
}

type contentQueriesImpl struct {
	readStore ContentReadStore
}

func NewContentQueries(readStore ContentReadStore) ContentQueries {
	return &contentQueriesImpl{readStore: readStore}
}

func (q *contentQueriesImpl) ListHeroes(ctx context.Context, activeOnly bool) ([]*HeroView, error) {
	return q.readStore.ListHeroes(ctx, activeOnly)
}

func (q *contentQueriesImpl) GetBroadcast(ctx context.Context, id uuid.UUID) (*BroadcastView, error) {
	b, err := q.readStore.FindBroadcastByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrBroadcastNotFound
		}
		return nil, err
	}
	return b, nil
}

func (q *contentQueriesImpl) ListBroadcasts(ctx context.Context, cursor *Cursor, limit int) ([]*BroadcastView, *Cursor, error) {
	fetch := func(after *Keyset, n int32) ([]*BroadcastView, error) {
		return q.readStore.ListBroadcasts(ctx, after, n)
	}
	return page(limit, cursor, fetch, func(b *BroadcastView) (time.Time, uuid.UUID) { return b.CreatedAt, b.ID })
}
