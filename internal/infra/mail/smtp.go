package mail

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"io"
	"mime"
	"mime/multipart"
	"net"
	"net/mail"
	"net/smtp"
	"net/textproto"
	"time"

	"storefront/internal/domain/notification"
	"storefront/internal/pkg/config"
	"storefront/internal/pkg/errs"

	"github.com/google/uuid"
)

// SMTPSender delivers messages through a plain SMTP relay, using AUTH PLAIN when credentials are set.
type SMTPSender struct {
	addr string
	host string
	auth smtp.Auth
	from mail.Address
}

func NewSMTPSender(cfg config.MailConfig, storeName string) (*SMTPSender, error) {
	from, err := mail.ParseAddress(cfg.From)
	if err != nil {
		return nil, errs.Wrapf(err, "invalid MAIL_FROM %q", cfg.From)
	}
	if from.Name == "" {
		from.Name = storeName
	}
	s := &SMTPSender{
		addr: net.JoinHostPort(cfg.SMTPHost, cfg.SMTPPort),
		host: cfg.SMTPHost,
		from: *from,
	}
	if cfg.Username != "" {
		s.auth = smtp.PlainAuth("", cfg.Username, cfg.Password, cfg.SMTPHost)
	}
	return s, nil
}

func (s *SMTPSender) Send(ctx context.Context, msg notification.Email) error {
	to, err := mail.ParseAddress(msg.To)
	if err != nil {
		return errs.Wrapf(err, "invalid recipient %q", msg.To)
	}
	raw, err := Build(s.from, *to, msg, time.Now())
	if err != nil {
		return err
	}

	done := make(chan error, 1)
	go func() {
		done <- smtp.SendMail(s.addr, s.auth, s.from.Address, []string{to.Address}, raw)
	}()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case err := <-done:
		if err != nil {
			return errs.Wrapf(err, "failed to send mail to %s", to.Address)
		}
		return nil
	}
}

// Build renders an RFC 5322 message: an HTML body plus base64 attachments.
func Build(from, to mail.Address, msg notification.Email, now time.Time) ([]byte, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	header := func(k, v string) { fmt.Fprintf(&buf, "%s: %s\r\n", k, v) }
	header("From", from.String())
	header("To", to.String())
	header("Subject", mime.QEncoding.Encode("utf-8", msg.Subject))
	header("Date", now.Format(time.RFC1123Z))
	header("Message-ID", fmt.Sprintf("<%s@%s>", uuid.NewString(), domainOf(from.Address)))
	header("MIME-Version", "1.0")
	header("Content-Type", fmt.Sprintf("multipart/mixed; boundary=%q", w.Boundary()))
	buf.WriteString("\r\n")

	part, err := w.CreatePart(textproto.MIMEHeader{
		"Content-Type":              {"text/html; charset=utf-8"},
		"Content-Transfer-Encoding": {"base64"},
	})
	if err != nil {
		return nil, errs.Wrap(err, "failed to create body part")
	}
	if err := writeBase64(part, []byte(msg.HTML)); err != nil {
		return nil, err
	}

	for _, a := range msg.Attachments {
		part, err := w.CreatePart(textproto.MIMEHeader{
			"Content-Type":              {a.ContentType},
			"Content-Transfer-Encoding": {"base64"},
			"Content-Disposition":       {mime.FormatMediaType("attachment", map[string]string{"filename": a.Filename})},
		})
		if err != nil {
			return nil, errs.Wrapf(err, "failed to create attachment %s", a.Filename)
		}
		if err := writeBase64(part, a.Data); err != nil {
			return nil, err
		}
	}
	if err := w.Close(); err != nil {
		return nil, errs.Wrap(err, "failed to close multipart message")
	}
	return buf.Bytes(), nil
}

func writeBase64(w io.Writer, data []byte) error {
	enc := base64.StdEncoding.EncodeToString(data)
	for len(enc) > 76 {
		if _, err := fmt.Fprintf(w, "%s\r\n", enc[:76]); err != nil {
			return errs.Wrap(err, "failed to write mime part")
		}
		enc = enc[76:]
	}
	if _, err := fmt.Fprintf(w, "%s\r\n", enc); err != nil {
		return errs.Wrap(err, "failed to write mime part")
	}
	return nil
}

func domainOf(addr string) string {
	for i := len(addr) - 1; i >= 0; i-- {
		if addr[i] == '@' {
			return addr[i+1:]
		}
	}
	return "localhost"
}
