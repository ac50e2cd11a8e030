package shared

import (
	"time"

	"storefront/internal/domain/user"

	"github.com/google/uuid"
)

const (
	IdempotencyProcessing = "processing"
	IdempotencyCompleted  = "completed"
)

type IdempotencyRecord struct {
	Key           uuid.UUID
	UserID        uuid.UUID
	Status        string
	RequestHash   string
	ResultOrderID *uuid.UUID
	ExpiresAt     time.Time
}

func (r *IdempotencyRecord) IsExpired(now time.Time) bool {
	return !r.ExpiresAt.After(now)
}

// NotificationJob is a claimed outbox row.
type NotificationJob struct {
	ID          uuid.UUID
	Kind        string
	Topic       string
	Payload     []byte
	Attempts    int32
	RunAt       time.Time
	BroadcastID *uuid.UUID
}

// Actor is the authenticated caller of a usecase.
type Actor struct {
	ID    uuid.UUID
	Email string
	Role  user.Role
}

func (a Actor) IsStaff() bool { return a.Role.AtLeast(user.RoleStaff) }
func (a Actor) IsAdmin() bool { return a.Role.AtLeast(user.RoleAdmin) }

// CanAccess reports whether the actor may see a resource owned by ownerID.
func (a Actor) CanAccess(ownerID uuid.UUID) bool {
	return a.ID == ownerID || a.IsStaff()
}
