package readstore

import (
	"context"

	"storefront/internal/infra"
	"storefront/internal/infra/sqlc"
	"storefront/internal/pkg/pgconv"
	"storefront/internal/usecase/queries"

	"github.com/google/uuid"
)

type ContentReadQueries interface {
	ListHeroImages(ctx context.Context, db sqlc.DBTX, activeOnly bool) ([]sqlc.HeroImages, error)
	FindBroadcastByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Broadcasts, error)
	ListBroadcasts(ctx context.Context, db sqlc.DBTX, arg sqlc.ListBroadcastsParams) ([]sqlc.Broadcasts, error)
}

type ContentReadStore struct {
	queries ContentReadQueries
	db      sqlc.DBTX
}

func NewContentReadStore(queries ContentReadQueries, db sqlc.DBTX) *ContentReadStore {
	return &ContentReadStore{queries: queries, db: db}
}

func (r *ContentReadStore) ListHeroes(ctx context.Context, activeOnly bool) ([]*queries.HeroView, error) {
	rows, err := r.queries.ListHeroImages(ctx, r.db, activeOnly)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list hero images", err)
	}
	out := make([]*queries.HeroView, 0, len(rows))
	for _, row := range rows {
		out = append(out, &queries.HeroView{
			ID:        row.ID,
			Title:     row.Title,
			Subtitle:  row.Subtitle,
			ImageURL:  row.ImageUrl,
			LinkURL:   row.LinkUrl,
			SortOrder: row.SortOrder,
			Active:    row.Active,
			CreatedAt: pgconv.TimeFromPgtype(row.CreatedAt),
			UpdatedAt: pgconv.TimeFromPgtype(row.UpdatedAt),
		})
	}
	return out, nil
}

func (r *ContentReadStore) FindBroadcastByID(ctx context.Context, id uuid.UUID) (*queries.BroadcastView, error) {
	row, err := r.queries.FindBroadcastByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("broadcast not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find broadcast", err)
	}
	return toBroadcastView(row), nil
}

func (r *ContentReadStore) ListBroadcasts(ctx context.Context, after *queries.Keyset, limit int32) ([]*queries.BroadcastView, error) {
	params := sqlc.ListBroadcastsParams{Limit: limit}
	params.AfterCreatedAt, params.AfterID = afterParams(after)

	rows, err := r.queries.ListBroadcasts(ctx, r.db, params)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list broadcasts", err)
	}
	out := make([]*queries.BroadcastView, 0, len(rows))
	for _, row := range rows {
		out = append(out, toBroadcastView(row))
	}
	return out, nil
}

func toBroadcastView(row sqlc.Broadcasts) *queries.BroadcastView {
	return &queries.BroadcastView{
		ID:             row.ID,
		Subject:        row.Subject,
		Body:           row.Body,
		Status:         row.Status,
		CreatedBy:      row.CreatedBy,
		RecipientCount: row.RecipientCount,
		QueuedAt:       pgconv.TimePtrFromPgtype(row.QueuedAt),
		SentAt:         pgconv.TimePtrFromPgtype(row.SentAt),
		CreatedAt:      pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:      pgconv.TimeFromPgtype(row.UpdatedAt),
	}
}
