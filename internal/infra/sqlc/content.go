package sqlc

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const heroColumns = `id, title, subtitle, image_url, link_url, sort_order, active, created_at, updated_at`

const broadcastColumns = `id, subject, body, status, created_by, recipient_count, queued_at, sent_at, created_at, updated_at`

// ---- hero images

const createHeroImage = `-- name: CreateHeroImage :exec
INSERT INTO hero_images (id, title, subtitle, image_url, link_url, sort_order, active, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $8)
`

type CreateHeroImageParams struct {
	ID        uuid.UUID          `json:"id"`
	Title     string             `json:"title"`
	Subtitle  string             `json:"subtitle"`
	ImageUrl  string             `json:"image_url"`
	LinkUrl   string             `json:"link_url"`
	SortOrder int32              `json:"sort_order"`
	Active    bool               `json:"active"`
	CreatedAt pgtype.Timestamptz `json:"created_at"`
}

func (q *Queries) CreateHeroImage(ctx context.Context, db DBTX, arg CreateHeroImageParams) error {
	_, err := db.Exec(ctx, createHeroImage,
		arg.ID,
		arg.Title,
		arg.Subtitle,
		arg.ImageUrl,
		arg.LinkUrl,
		arg.SortOrder,
		arg.Active,
		arg.CreatedAt,
	)
	return err
}

const updateHeroImage = `-- name: UpdateHeroImage :execrows
UPDATE hero_images
SET title = $2, subtitle = $3, image_url = $4, link_url = $5, sort_order = $6, active = $7, updated_at = $8
WHERE id = $1
`

type UpdateHeroImageParams struct {
	ID        uuid.UUID          `json:"id"`
	Title     string             `json:"title"`
	Subtitle  string             `json:"subtitle"`
	ImageUrl  string             `json:"image_url"`
	LinkUrl   string             `json:"link_url"`
	SortOrder int32              `json:"sort_order"`
	Active    bool               `json:"active"`
	UpdatedAt pgtype.Timestamptz `json:"updated_at"`
}

func (q *Queries) UpdateHeroImage(ctx context.Context, db DBTX, arg UpdateHeroImageParams) (int64, error) {
	result, err := db.Exec(ctx, updateHeroImage,
		arg.ID,
		arg.Title,
		arg.Subtitle,
		arg.ImageUrl,
		arg.LinkUrl,
		arg.SortOrder,
		arg.Active,
		arg.UpdatedAt,
	)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}

const deleteHeroImage = `-- name: DeleteHeroImage :execrows
DELETE FROM hero_images WHERE id = $1
`

func (q *Queries) DeleteHeroImage(ctx context.Context, db DBTX, id uuid.UUID) (int64, error) {
	result, err := db.Exec(ctx, deleteHeroImage, id)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}

const findHeroImageByID = `-- name: FindHeroImageByID :one
SELECT ` + heroColumns + ` FROM hero_images WHERE id = $1
`

func (q *Queries) FindHeroImageByID(ctx context.Context, db DBTX, id uuid.UUID) (HeroImages, error) {
	row := db.QueryRow(ctx, findHeroImageByID, id)
	var i HeroImages
	err := scanHeroImage(row, &i)
	return i, err
}

const listHeroImages = `-- name: ListHeroImages :many
SELECT ` + heroColumns + ` FROM hero_images
WHERE (NOT $1::boolean OR active)
ORDER BY sort_order ASC, created_at ASC
`

func (q *Queries) ListHeroImages(ctx context.Context, db DBTX, activeOnly bool) ([]HeroImages, error) {
	rows, err := db.Query(ctx, listHeroImages, activeOnly)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []HeroImages
	for rows.Next() {
		var i HeroImages
		if err := scanHeroImage(rows, &i); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

func scanHeroImage(row interface{ Scan(...any) error }, i *HeroImages) error {
	return row.Scan(
		&i.ID,
		&i.Title,
		&i.Subtitle,
		&i.ImageUrl,
		&i.LinkUrl,
		&i.SortOrder,
		&i.Active,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
}

// ---- broadcasts

const createBroadcast = `-- name: CreateBroadcast :exec
INSERT INTO broadcasts (id, subject, body, status, created_by, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $6)
`

type CreateBroadcastParams struct {
	ID        uuid.UUID          `json:"id"`
	Subject   string             `json:"subject"`
	Body      string             `json:"body"`
	Status    string             `json:"status"`
	CreatedBy uuid.UUID          `json:"created_by"`
	CreatedAt pgtype.Timestamptz `json:"created_at"`
}

func (q *Queries) CreateBroadcast(ctx context.Context, db DBTX, arg CreateBroadcastParams) error {
	_, err := db.Exec(ctx, createBroadcast,
		arg.ID,
		arg.Subject,
		arg.Body,
		arg.Status,
		arg.CreatedBy,
		arg.CreatedAt,
	)
	return err
}

const updateBroadcast = `-- name: UpdateBroadcast :execrows
UPDATE broadcasts
SET subject = $2, body = $3, status = $4, recipient_count = $5, queued_at = $6, sent_at = $7, updated_at = $8
WHERE id = $1
`

type UpdateBroadcastParams struct {
	ID             uuid.UUID          `json:"id"`
	Subject        string             `json:"subject"`
	Body           string             `json:"body"`
	Status         string             `json:"status"`
	RecipientCount int32              `json:"recipient_count"`
	QueuedAt       pgtype.Timestamptz `json:"queued_at"`
	SentAt         pgtype.Timestamptz `json:"sent_at"`
	UpdatedAt      pgtype.Timestamptz `json:"updated_at"`
}

func (q *Queries) UpdateBroadcast(ctx context.Context, db DBTX, arg UpdateBroadcastParams) (int64, error) {
	result, err := db.Exec(ctx, updateBroadcast,
		arg.ID,
		arg.Subject,
		arg.Body,
		arg.Status,
		arg.RecipientCount,
		arg.QueuedAt,
		arg.SentAt,
		arg.UpdatedAt,
	)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}

const deleteBroadcast = `-- name: DeleteBroadcast :execrows
DELETE FROM broadcasts WHERE id = $1 AND status = 'draft'
`

func (q *Queries) DeleteBroadcast(ctx context.Context, db DBTX, id uuid.UUID) (int64, error) {
	result, err := db.Exec(ctx, deleteBroadcast, id)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}

const findBroadcastByIDForUpdate = `-- name: FindBroadcastByIDForUpdate :one
SELECT ` + broadcastColumns + ` FROM broadcasts WHERE id = $1 FOR UPDATE
`

func (q *Queries) FindBroadcastByIDForUpdate(ctx context.Context, db DBTX, id uuid.UUID) (Broadcasts, error) {
	row := db.QueryRow(ctx, findBroadcastByIDForUpdate, id)
	var i Broadcasts
	err := scanBroadcast(row, &i)
	return i, err
}

const findBroadcastByID = `-- name: FindBroadcastByID :one
SELECT ` + broadcastColumns + ` FROM broadcasts WHERE id = $1
`

func (q *Queries) FindBroadcastByID(ctx context.Context, db DBTX, id uuid.UUID) (Broadcasts, error) {
	row := db.QueryRow(ctx, findBroadcastByID, id)
	var i Broadcasts
	err := scanBroadcast(row, &i)
	return i, err
}

const listBroadcasts = `-- name: ListBroadcasts :many
SELECT ` + broadcastColumns + ` FROM broadcasts
WHERE ($1::timestamptz IS NULL OR (created_at, id) < ($1, $2::uuid))
ORDER BY created_at DESC, id DESC
LIMIT $3
`

type ListBroadcastsParams struct {
	AfterCreatedAt pgtype.Timestamptz `json:"after_created_at"`
	AfterID        pgtype.UUID        `json:"after_id"`
	Limit          int32              `json:"limit"`
}

func (q *Queries) ListBroadcasts(ctx context.Context, db DBTX, arg ListBroadcastsParams) ([]Broadcasts, error) {
	rows, err := db.Query(ctx, listBroadcasts, arg.AfterCreatedAt, arg.AfterID, arg.Limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []Broadcasts
	for rows.Next() {
		var i Broadcasts
		if err := scanBroadcast(rows, &i); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const markBroadcastsSent = `-- name: MarkBroadcastsSent :execrows
UPDATE broadcasts b
SET status = 'sent', sent_at = $1, updated_at = $1
WHERE b.status = 'queued'
  AND NOT EXISTS (
      SELECT 1 FROM notification_jobs j WHERE j.broadcast_id = b.id AND j.status = 'queued'
  )
`

func (q *Queries) MarkBroadcastsSent(ctx context.Context, db DBTX, now pgtype.Timestamptz) (int64, error) {
	result, err := db.Exec(ctx, markBroadcastsSent, now)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}

func scanBroadcast(row interface{ Scan(...any) error }, i *Broadcasts) error {
	return row.Scan(
		&i.ID,
		&i.Subject,
		&i.Body,
		&i.Status,
		&i.CreatedBy,
		&i.RecipientCount,
		&i.QueuedAt,
		&i.SentAt,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
}
