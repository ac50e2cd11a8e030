//go:build unit

package notification_test

import (
	"testing"
	"time"

	"storefront/internal/domain/notification"

	"github.com/stretchr/testify/assert"
)

func TestNextRunAt(t *testing.T) {
	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	cases := []struct {
		attempts int32
		wait     time.Duration
		ok       bool
	}{
		{0, 30 * time.Second, true},
		{1, time.Minute, true},
		{2, 2 * time.Minute, true},
		{4, 8 * time.Minute, true},
		{5, 0, false},
	}
	for _, tc := range cases {
		runAt, ok := notification.NextRunAt(tc.attempts, now)
		assert.Equal(t, tc.ok, ok, "attempts %d", tc.attempts)
		if ok {
			assert.Equal(t, now.Add(tc.wait), runAt, "attempts %d", tc.attempts)
		}
	}
}

func TestTopic_IsValid(t *testing.T) {
	assert.True(t, notification.TopicInvoice.IsValid())
	assert.False(t, notification.Topic("sms").IsValid())
}
