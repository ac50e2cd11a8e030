package converter

import (
	"storefront/internal/domain/content"
	"storefront/internal/infra/sqlc"
	"storefront/internal/pkg/pgconv"
)

func HeroToCreateParams(h *content.HeroImage) sqlc.CreateHeroImageParams {
	return sqlc.CreateHeroImageParams{
		ID:        h.ID(),
		Title:     h.Title(),
		Subtitle:  h.Subtitle(),
		ImageUrl:  h.ImageURL(),
		LinkUrl:   h.LinkURL(),
		SortOrder: h.SortOrder(),
		Active:    h.Active(),
		CreatedAt: pgconv.TimeToPgtype(h.CreatedAt()),
	}
}

func HeroToUpdateParams(h *content.HeroImage) sqlc.UpdateHeroImageParams {
	return sqlc.UpdateHeroImageParams{
		ID:        h.ID(),
		Title:     h.Title(),
		Subtitle:  h.Subtitle(),
		ImageUrl:  h.ImageURL(),
		LinkUrl:   h.LinkURL(),
		SortOrder: h.SortOrder(),
		Active:    h.Active(),
		UpdatedAt: pgconv.TimeToPgtype(h.UpdatedAt()),
	}
}

func HeroFromRow(row sqlc.HeroImages) *content.HeroImage {
	return content.ReconstructHeroImage(row.ID, content.HeroParams{
		Title:     row.Title,
		Subtitle:  row.Subtitle,
		ImageURL:  row.ImageUrl,
		LinkURL:   row.LinkUrl,
		SortOrder: row.SortOrder,
		Active:    row.Active,
	}, pgconv.TimeFromPgtype(row.CreatedAt), pgconv.TimeFromPgtype(row.UpdatedAt))
}

func BroadcastToCreateParams(b *content.Broadcast) sqlc.CreateBroadcastParams {
	return sqlc.CreateBroadcastParams{
		ID:        b.ID(),
		Subject:   b.Subject(),
		Body:      b.Body(),
		Status:    string(b.Status()),
		CreatedBy: b.CreatedBy(),
		CreatedAt: pgconv.TimeToPgtype(b.CreatedAt()),
	}
}

func BroadcastToUpdateParams(b *content.Broadcast) sqlc.UpdateBroadcastParams {
	return sqlc.UpdateBroadcastParams{
		ID:             b.ID(),
		Subject:        b.Subject(),
		Body:           b.Body(),
		Status:         string(b.Status()),
		RecipientCount: b.RecipientCount(),
		QueuedAt:       pgconv.TimePtrToPgtype(b.QueuedAt()),
		SentAt:         pgconv.TimePtrToPgtype(b.SentAt()),
		UpdatedAt:      pgconv.TimeToPgtype(b.UpdatedAt()),
	}
}

func BroadcastFromRow(row sqlc.Broadcasts) *content.Broadcast {
	return content.ReconstructBroadcast(row.ID, content.BroadcastState{
		Subject:        row.Subject,
		Body:           row.Body,
		Status:         content.BroadcastStatus(row.Status),
		CreatedBy:      row.CreatedBy,
		RecipientCount: row.RecipientCount,
		QueuedAt:       pgconv.TimePtrFromPgtype(row.QueuedAt),
		SentAt:         pgconv.TimePtrFromPgtype(row.SentAt),
		CreatedAt:      pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:      pgconv.TimeFromPgtype(row.UpdatedAt),
	})
}
