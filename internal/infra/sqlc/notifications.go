package sqlc

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const notificationJobColumns = `id, kind, topic, payload, run_at, attempts, status, last_error, broadcast_id, sent_at, created_at, updated_at`

const createNotificationJob = `-- name: CreateNotificationJob :exec
INSERT INTO notification_jobs (kind, topic, payload, run_at, status, broadcast_id)
VALUES ($1, $2, $3, $4, $5, $6)
`

type CreateNotificationJobParams struct {
	Kind        string             `json:"kind"`
	Topic       string             `json:"topic"`
	Payload     []byte             `json:"payload"`
	RunAt       pgtype.Timestamptz `json:"run_at"`
	Status      string             `json:"status"`
	BroadcastID pgtype.UUID        `json:"broadcast_id"`
}

func (q *Queries) CreateNotificationJob(ctx context.Context, db DBTX, arg CreateNotificationJobParams) error {
	_, err := db.Exec(ctx, createNotificationJob,
		arg.Kind,
		arg.Topic,
		arg.Payload,
		arg.RunAt,
		arg.Status,
		arg.BroadcastID,
	)
	return err
}

const createBroadcastJobs = `-- name: CreateBroadcastJobs :execrows
INSERT INTO notification_jobs (kind, topic, payload, run_at, status, broadcast_id)
SELECT 'email', 'broadcast',
       jsonb_build_object(
           'to', u.email,
           'name', u.full_name,
           'broadcast_id', $1::uuid,
           'subject', $2::text,
           'body', $3::text
       ),
       $4, 'queued', $1::uuid
FROM users u
WHERE u.role = 'customer' AND u.is_active
`

type CreateBroadcastJobsParams struct {
	BroadcastID uuid.UUID          `json:"broadcast_id"`
	Subject     string             `json:"subject"`
	Body        string             `json:"body"`
	RunAt       pgtype.Timestamptz `json:"run_at"`
}

func (q *Queries) CreateBroadcastJobs(ctx context.Context, db DBTX, arg CreateBroadcastJobsParams) (int64, error) {
	result, err := db.Exec(ctx, createBroadcastJobs,
		arg.BroadcastID,
		arg.Subject,
		arg.Body,
		arg.RunAt,
	)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}

const claimDueNotificationJobs = `-- name: ClaimDueNotificationJobs :many
SELECT ` + notificationJobColumns + ` FROM notification_jobs
WHERE status = 'queued' AND run_at <= $1
ORDER BY run_at
LIMIT $2
FOR UPDATE SKIP LOCKED
`

type ClaimDueNotificationJobsParams struct {
	Now   pgtype.Timestamptz `json:"now"`
	Limit int32              `json:"limit"`
}

func (q *Queries) ClaimDueNotificationJobs(ctx context.Context, db DBTX, arg ClaimDueNotificationJobsParams) ([]NotificationJobs, error) {
	rows, err := db.Query(ctx, claimDueNotificationJobs, arg.Now, arg.Limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []NotificationJobs
	for rows.Next() {
		var i NotificationJobs
		if err := rows.Scan(
			&i.ID,
			&i.Kind,
			&i.Topic,
			&i.Payload,
			&i.RunAt,
			&i.Attempts,
			&i.Status,
			&i.LastError,
			&i.BroadcastID,
			&i.SentAt,
			&i.CreatedAt,
			&i.UpdatedAt,
		); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const markNotificationJobSent = `-- name: MarkNotificationJobSent :exec
UPDATE notification_jobs SET status = 'sent', sent_at = $2, last_error = NULL, updated_at = $2 WHERE id = $1
`

type MarkNotificationJobSentParams struct {
	ID     uuid.UUID          `json:"id"`
	SentAt pgtype.Timestamptz `json:"sent_at"`
}

func (q *Queries) MarkNotificationJobSent(ctx context.Context, db DBTX, arg MarkNotificationJobSentParams) error {
	_, err := db.Exec(ctx, markNotificationJobSent, arg.ID, arg.SentAt)
	return err
}

const rescheduleNotificationJob = `-- name: RescheduleNotificationJob :exec
UPDATE notification_jobs
SET status = $2, attempts = $3, run_at = $4, last_error = $5, updated_at = now()
WHERE id = $1
`

type RescheduleNotificationJobParams struct {
	ID        uuid.UUID          `json:"id"`
	Status    string             `json:"status"`
	Attempts  int32              `json:"attempts"`
	RunAt     pgtype.Timestamptz `json:"run_at"`
	LastError pgtype.Text        `json:"last_error"`
}

func (q *Queries) RescheduleNotificationJob(ctx context.Context, db DBTX, arg RescheduleNotificationJobParams) error {
	_, err := db.Exec(ctx, rescheduleNotificationJob,
		arg.ID,
		arg.Status,
		arg.Attempts,
		arg.RunAt,
		arg.LastError,
	)
	return err
}
