package repository

import (
	"context"
	"time"

	"storefront/internal/domain/content"
	"storefront/internal/infra"
	"storefront/internal/infra/repository/converter"
	"storefront/internal/infra/sqlc"
	"storefront/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type ContentQueries interface {
	CreateHeroImage(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateHeroImageParams) error
	UpdateHeroImage(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateHeroImageParams) (int64, error)
	DeleteHeroImage(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (int64, error)
	FindHeroImageByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.HeroImages, error)
	CreateBroadcast(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateBroadcastParams) error
	UpdateBroadcast(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateBroadcastParams) (int64, error)
	DeleteBroadcast(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (int64, error)
	FindBroadcastByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Broadcasts, error)
	FindBroadcastByIDForUpdate(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Broadcasts, error)
	MarkBroadcastsSent(ctx context.Context, db sqlc.DBTX, now pgtype.Timestamptz) (int64, error)
}

type ContentRepository struct {
	queries ContentQueries
}

func NewContentRepository(queries ContentQueries) *ContentRepository {
	return &ContentRepository{queries: queries}
}

func (r *ContentRepository) CreateHero(ctx context.Context, tx sqlc.DBTX, h *content.HeroImage) error {
	if err := r.queries.CreateHeroImage(ctx, tx, converter.HeroToCreateParams(h)); err != nil {
		return infra.WrapRepoErr("failed to create hero image", err)
	}
	return nil
}

func (r *ContentRepository) UpdateHero(ctx context.Context, tx sqlc.DBTX, h *content.HeroImage) error {
	rows, err := r.queries.UpdateHeroImage(ctx, tx, converter.HeroToUpdateParams(h))
	return expectAffected(rows, err, "hero image")
}

func (r *ContentRepository) DeleteHero(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) error {
	rows, err := r.queries.DeleteHeroImage(ctx, tx, id)
	return expectAffected(rows, err, "hero image")
}

func (r *ContentRepository) FindHeroByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (*content.HeroImage, error) {
	row, err := r.queries.FindHeroImageByID(ctx, db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("hero image not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find hero image", err)
	}
	return converter.HeroFromRow(row), nil
}

func (r *ContentRepository) CreateBroadcast(ctx context.Context, tx sqlc.DBTX, b *content.Broadcast) error {
	if err := r.queries.CreateBroadcast(ctx, tx, converter.BroadcastToCreateParams(b)); err != nil {
		return infra.WrapRepoErr("failed to create broadcast", err)
	}
	return nil
}

func (r *ContentRepository) SaveBroadcast(ctx context.Context, tx sqlc.DBTX, b *content.Broadcast) error {
	rows, err := r.queries.UpdateBroadcast(ctx, tx, converter.BroadcastToUpdateParams(b))
	return expectAffected(rows, err, "broadcast")
}

// DeleteBroadcast only removes drafts; anything else reports NOT_FOUND.
func (r *ContentRepository) DeleteBroadcast(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) error {
	rows, err := r.queries.DeleteBroadcast(ctx, tx, id)
	return expectAffected(rows, err, "draft broadcast")
}

func (r *ContentRepository) MarkBroadcastsSent(ctx context.Context, tx sqlc.DBTX, now time.Time) (int64, error) {
	n, err := r.queries.MarkBroadcastsSent(ctx, tx, pgconv.TimeToPgtype(now))
	if err != nil {
		return 0, infra.WrapRepoErr("failed to mark broadcasts sent", err)
	}
	return n, nil
}

func (r *ContentRepository) FindBroadcastByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID, forUpdate bool) (*content.Broadcast, error) {
	find := r.queries.FindBroadcastByID
	if forUpdate {
		find = r.queries.FindBroadcastByIDForUpdate
	}
	row, err := find(ctx, db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("broadcast not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find broadcast", err)
	}
	return converter.BroadcastFromRow(row), nil
}
