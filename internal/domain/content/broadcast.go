package content

import (
	"strings"
	"time"
	"unicode/utf8"

	"storefront/internal/pkg/errs"

	"github.com/google/uuid"
)

type BroadcastStatus string

const (
	BroadcastDraft  BroadcastStatus = "draft"
	BroadcastQueued BroadcastStatus = "queued"
	BroadcastSent   BroadcastStatus = "sent"
)

var (
	ErrInvalidSubject    = errs.NewCategorized("subject must be 1 to 200 characters", errs.ErrValidation)
	ErrInvalidBody       = errs.NewCategorized("body must be 1 to 20000 characters", errs.ErrValidation)
	ErrBroadcastNotDraft = errs.NewCategorized("only draft broadcasts can be changed", errs.ErrConflict)
	ErrNoRecipients      = errs.NewCategorized("broadcast has no recipients", errs.ErrValidation)
)

type Broadcast struct {
	id             uuid.UUID
	subject        string
	body           string
	status         BroadcastStatus
	createdBy      uuid.UUID
	recipientCount int32
	queuedAt       *time.Time
	sentAt         *time.Time
	createdAt      time.Time
	updatedAt      time.Time
}

func NewBroadcast(subject, body string, createdBy uuid.UUID, now time.Time) (*Broadcast, error) {
	b := &Broadcast{id: uuid.New(), status: BroadcastDraft, createdBy: createdBy, createdAt: now}
	if err := b.setContent(subject, body, now); err != nil {
		return nil, err
	}
	return b, nil
}

type BroadcastState struct {
	Subject        string
	Body           string
	Status         BroadcastStatus
	CreatedBy      uuid.UUID
	RecipientCount int32
	QueuedAt       *time.Time
	SentAt         *time.Time
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

func ReconstructBroadcast(id uuid.UUID, s BroadcastState) *Broadcast {
	return &Broadcast{
		id:             id,
		subject:        s.Subject,
		body:           s.Body,
		status:         s.Status,
		createdBy:      s.CreatedBy,
		recipientCount: s.RecipientCount,
		queuedAt:       s.QueuedAt,
		sentAt:         s.SentAt,
		createdAt:      s.CreatedAt,
		updatedAt:      s.UpdatedAt,
	}
}

func (b *Broadcast) Edit(subject, body string, now time.Time) error {
	if b.status != BroadcastDraft {
		return ErrBroadcastNotDraft
	}
	return b.setContent(subject, body, now)
}

func (b *Broadcast) setContent(subject, body string, now time.Time) error {
	subject = strings.TrimSpace(subject)
	if subject == "" || utf8.RuneCountInString(subject) > 200 {
		return ErrInvalidSubject
	}
	body = strings.TrimSpace(body)
	if body == "" || utf8.RuneCountInString(body) > 20000 {
		return ErrInvalidBody
	}
	b.subject = subject
	b.body = body
	b.updatedAt = now
	return nil
}

func (b *Broadcast) CanDelete() error {
	if b.status != BroadcastDraft {
		return ErrBroadcastNotDraft
	}
	return nil
}

// Queue records the fan-out size; jobs themselves are written by the caller.
func (b *Broadcast) Queue(recipients int, now time.Time) error {
	if b.status != BroadcastDraft {
		return ErrBroadcastNotDraft
	}
	if recipients == 0 {
		return ErrNoRecipients
	}
	b.status = BroadcastQueued
	b.recipientCount = int32(recipients)
	b.queuedAt = &now
	b.updatedAt = now
	return nil
}

func (b *Broadcast) ID() uuid.UUID           { return b.id }
func (b *Broadcast) Subject() string         { return b.subject }
func (b *Broadcast) Body() string            { return b.body }
func (b *Broadcast) Status() BroadcastStatus { return b.status }
func (b *Broadcast) CreatedBy() uuid.UUID    { return b.createdBy }
func (b *Broadcast) RecipientCount() int32   { return b.recipientCount }
func (b *Broadcast) QueuedAt() *time.Time    { return b.queuedAt }
func (b *Broadcast) SentAt() *time.Time      { return b.sentAt }
func (b *Broadcast) CreatedAt() time.Time    { return b.createdAt }
func (b *Broadcast) UpdatedAt() time.Time    { return b.updatedAt }
