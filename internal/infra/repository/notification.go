package repository

import (
	"context"
	"time"

	"storefront/internal/domain/content"
	"storefront/internal/domain/notification"
	"storefront/internal/infra"
	"storefront/internal/infra/sqlc"
	"storefront/internal/pkg/pgconv"
	"storefront/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type NotificationQueries interface {
	CreateNotificationJob(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateNotificationJobParams) error
	CreateBroadcastJobs(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateBroadcastJobsParams) (int64, error)
	ClaimDueNotificationJobs(ctx context.Context, db sqlc.DBTX, arg sqlc.ClaimDueNotificationJobsParams) ([]sqlc.NotificationJobs, error)
	MarkNotificationJobSent(ctx context.Context, db sqlc.DBTX, arg sqlc.MarkNotificationJobSentParams) error
	RescheduleNotificationJob(ctx context.Context, db sqlc.DBTX, arg sqlc.RescheduleNotificationJobParams) error
}

type NotificationRepository struct {
	queries NotificationQueries
}

func NewNotificationRepository(queries NotificationQueries) *NotificationRepository {
	return &NotificationRepository{queries: queries}
}

func (r *NotificationRepository) CreateJob(ctx context.Context, tx sqlc.DBTX, kind, topic string, payload []byte, runAt time.Time) error {
	params := sqlc.CreateNotificationJobParams{
		Kind:    kind,
		Topic:   topic,
		Payload: payload,
		RunAt:   pgtype.Timestamptz{Time: runAt, Valid: true},
		Status:  string(notification.JobQueued),
	}

	err := r.queries.CreateNotificationJob(ctx, tx, params)
	if err != nil {
		return infra.WrapRepoErr("failed to create notification job", err)
	}

	return nil
}

func (r *NotificationRepository) CreateBroadcastJobs(ctx context.Context, tx sqlc.DBTX, b *content.Broadcast, runAt time.Time) (int64, error) {
	n, err := r.queries.CreateBroadcastJobs(ctx, tx, sqlc.CreateBroadcastJobsParams{
		BroadcastID: b.ID(),
		Subject:     b.Subject(),
		Body:        b.Body(),
		RunAt:       pgconv.TimeToPgtype(runAt),
	})
	if err != nil {
		return 0, infra.WrapRepoErr("failed to queue broadcast jobs", err)
	}
	return n, nil
}

func (r *NotificationRepository) ClaimDue(ctx context.Context, tx sqlc.DBTX, now time.Time, limit int32) ([]shared.NotificationJob, error) {
	rows, err := r.queries.ClaimDueNotificationJobs(ctx, tx, sqlc.ClaimDueNotificationJobsParams{
		Now:   pgconv.TimeToPgtype(now),
		Limit: limit,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to claim notification jobs", err)
	}

	jobs := make([]shared.NotificationJob, 0, len(rows))
	for _, row := range rows {
		jobs = append(jobs, shared.NotificationJob{
			ID:          row.ID,
			Kind:        row.Kind,
			Topic:       row.Topic,
			Payload:     row.Payload,
			Attempts:    row.Attempts,
			RunAt:       pgconv.TimeFromPgtype(row.RunAt),
			BroadcastID: pgconv.UUIDPtrFromPgtype(row.BroadcastID),
		})
	}
	return jobs, nil
}

func (r *NotificationRepository) MarkSent(ctx context.Context, tx sqlc.DBTX, id uuid.UUID, now time.Time) error {
	err := r.queries.MarkNotificationJobSent(ctx, tx, sqlc.MarkNotificationJobSentParams{ID: id, SentAt: pgconv.TimeToPgtype(now)})
	if err != nil {
		return infra.WrapRepoErr("failed to mark notification job sent", err)
	}
	return nil
}

func (r *NotificationRepository) Reschedule(ctx context.Context, tx sqlc.DBTX, id uuid.UUID, status string, attempts int32, runAt time.Time, lastError string) error {
	params := sqlc.RescheduleNotificationJobParams{
		ID:       id,
		Status:   status,
		Attempts: attempts,
		RunAt:    pgconv.TimeToPgtype(runAt),
	}
	if lastError != "" {
		params.LastError = pgtype.Text{String: lastError, Valid: true}
	}

	if err := r.queries.RescheduleNotificationJob(ctx, tx, params); err != nil {
		return infra.WrapRepoErr("failed to reschedule notification job", err)
	}
	return nil
}
