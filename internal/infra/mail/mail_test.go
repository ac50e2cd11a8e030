//go:build unit

package mail

import (
	"encoding/base64"
	"io"
	"mime"
	"mime/multipart"
	netmail "net/mail"
	"strings"
	"testing"
	"time"

	"storefront/internal/domain/notification"
	"storefront/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTemplates_Compose(t *testing.T) {
	tmpl, err := NewTemplates("Chai Co")
	require.NoError(t, err)

	t.Run("order cancelled", func(t *testing.T) {
		subject, body, err := tmpl.Compose(notification.TopicOrderCancelled, notification.EmailPayload{
			Name:        "Asha",
			OrderNumber: "SF-1",
			Reason:      "payment window expired",
		}, nil)

		require.NoError(t, err)
		assert.Equal(t, "Order SF-1 cancelled", subject)
		assert.Contains(t, body, "Hi Asha")
		assert.Contains(t, body, "Reason: payment window expired.")
	})

	t.Run("broadcast splits paragraphs and escapes", func(t *testing.T) {
		subject, body, err := tmpl.Compose(notification.TopicBroadcast, notification.EmailPayload{
			Subject: "Diwali sale",
			Body:    "Flat 20% off.\r\n\r\n<b>Hurry</b>",
		}, nil)

		require.NoError(t, err)
		assert.Equal(t, "Diwali sale", subject)
		assert.Contains(t, body, "Hi there")
		assert.Contains(t, body, "<p>Flat 20% off.</p>")
		assert.Contains(t, body, "<p>&lt;b&gt;Hurry&lt;/b&gt;</p>")
	})

	t.Run("unknown topic", func(t *testing.T) {
		_, _, err := tmpl.Compose(notification.Topic("welcome"), notification.EmailPayload{}, nil)
		assert.True(t, errs.Is(err, ErrUnknownTopic))
	})
}

func TestParagraphs(t *testing.T) {
	assert.Equal(t, []string{"a", "b\nc"}, paragraphs("a\n\n\n\nb\nc\n\n  "))
	assert.Nil(t, paragraphs("  "))
}

func TestBuild(t *testing.T) {
	from := netmail.Address{Name: "Chai Co", Address: "orders@chai.example"}
	to := netmail.Address{Address: "asha@example.com"}
	now := time.Date(2026, 2, 1, 9, 30, 0, 0, time.UTC)
	html := "<p>" + strings.Repeat("x", 200) + "</p>"

	raw, err := Build(from, to, notification.Email{
		To:      to.Address,
		Subject: "Invoice für SF-1",
		HTML:    html,
		Attachments: []notification.Attachment{
			{Filename: "invoice-SF-1.html", ContentType: "text/html; charset=utf-8", Data: []byte("<html>inv</html>")},
		},
	}, now)
	require.NoError(t, err)

	msg, err := netmail.ReadMessage(strings.NewReader(string(raw)))
	require.NoError(t, err)

	subject, err := new(mime.WordDecoder).DecodeHeader(msg.Header.Get("Subject"))
	require.NoError(t, err)
	assert.Equal(t, "Invoice für SF-1", subject)
	assert.Equal(t, now.Format(time.RFC1123Z), msg.Header.Get("Date"))
	assert.True(t, strings.HasSuffix(msg.Header.Get("Message-ID"), "@chai.example>"))

	mediaType, params, err := mime.ParseMediaType(msg.Header.Get("Content-Type"))
	require.NoError(t, err)
	assert.Equal(t, "multipart/mixed", mediaType)

	mr := multipart.NewReader(msg.Body, params["boundary"])
	decode := func(p *multipart.Part) string {
		data, err := io.ReadAll(base64.NewDecoder(base64.StdEncoding, stripCRLF(p)))
		require.NoError(t, err)
		return string(data)
	}

	body, err := mr.NextPart()
	require.NoError(t, err)
	assert.Equal(t, html, decode(body))

	attachment, err := mr.NextPart()
	require.NoError(t, err)
	assert.Equal(t, "invoice-SF-1.html", attachment.FileName())
	assert.Equal(t, "<html>inv</html>", decode(attachment))

	_, err = mr.NextPart()
	assert.ErrorIs(t, err, io.EOF)
}

func stripCRLF(r io.Reader) io.Reader {
	data, _ := io.ReadAll(r)
	return strings.NewReader(strings.NewReplacer("\r", "", "\n", "").Replace(string(data)))
}

func TestDomainOf(t *testing.T) {
	assert.Equal(t, "chai.example", domainOf("orders@chai.example"))
	assert.Equal(t, "localhost", domainOf("orders"))
}
