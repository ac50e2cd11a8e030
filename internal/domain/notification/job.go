package notification

import (
	"time"

	"github.com/google/uuid"
)

const KindEmail = "email"

type Topic string

const (
	TopicOrderPaid      Topic = "order_paid"
	TopicOrderShipped   Topic = "order_shipped"
	TopicOrderCancelled Topic = "order_cancelled"
	TopicInvoice        Topic = "invoice"
	TopicBroadcast      Topic = "broadcast"
)

func (t Topic) String() string { return string(t) }

func (t Topic) IsValid() bool {
	switch t {
	case TopicOrderPaid, TopicOrderShipped, TopicOrderCancelled, TopicInvoice, TopicBroadcast:
		return true
	}
	return false
}

type JobStatus string

const (
	JobQueued JobStatus = "queued"
	JobSent   JobStatus = "sent"
	JobFailed JobStatus = "failed"
)

const (
	MaxAttempts = 5
	baseBackoff = 30 * time.Second
)

// NextRunAt schedules a retry after the given number of failed attempts.
// It returns ok=false once the job has used up its attempts.
func NextRunAt(attempts int32, now time.Time) (runAt time.Time, ok bool) {
	if attempts >= MaxAttempts {
		return time.Time{}, false
	}
	return now.Add(time.Duration(1<<attempts) * baseBackoff), true
}

// EmailPayload is the message body shared by the API and the mailer.
type EmailPayload struct {
	To          string     `json:"to"`
	Name        string     `json:"name,omitempty"`
	OrderID     *uuid.UUID `json:"order_id,omitempty"`
	OrderNumber string     `json:"order_number,omitempty"`
	BroadcastID *uuid.UUID `json:"broadcast_id,omitempty"`
	Subject     string     `json:"subject,omitempty"`
	Body        string     `json:"body,omitempty"`
	Reason      string     `json:"reason,omitempty"`
}

// Message is what travels over the broker.
type Message struct {
	JobID   uuid.UUID    `json:"job_id"`
	Topic   Topic        `json:"topic"`
	Payload EmailPayload `json:"payload"`
}

// Email is a rendered message ready for a mail transport.
type Email struct {
	To          string
	Subject     string
	HTML        string
	Attachments []Attachment
}

type Attachment struct {
	Filename    string
	ContentType string
	Data        []byte
}
