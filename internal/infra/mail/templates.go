package mail

import (
	"bytes"
	"embed"
	"html/template"
	"strings"

	"storefront/internal/domain/notification"
	"storefront/internal/infra/invoice"
	"storefront/internal/pkg/errs"
	"storefront/internal/usecase/queries"
)

//go:embed templates/*.html
var templateFS embed.FS

var ErrUnknownTopic = errs.New("no email template for topic")

type TemplateData struct {
	StoreName string
	Name      string
	Payload   notification.EmailPayload
	Order     *queries.OrderView
}

type Templates struct {
	storeName string
	tmpl      *template.Template
}

func NewTemplates(storeName string) (*Templates, error) {
	tmpl, err := template.New("emails").Funcs(template.FuncMap{
		"money":      invoice.FormatMoney,
		"paragraphs": paragraphs,
	}).ParseFS(templateFS, "templates/emails.html")
	if err != nil {
		return nil, errs.Wrap(err, "failed to parse email templates")
	}
	return &Templates{storeName: storeName, tmpl: tmpl}, nil
}

// Compose renders the subject and HTML body for topic.
func (t *Templates) Compose(topic notification.Topic, payload notification.EmailPayload, order *queries.OrderView) (string, string, error) {
	subjectTmpl := t.tmpl.Lookup(string(topic) + ".subject")
	bodyTmpl := t.tmpl.Lookup(string(topic) + ".body")
	if subjectTmpl == nil || bodyTmpl == nil {
		return "", "", errs.Wrapf(ErrUnknownTopic, "topic %q", topic)
	}

	name := payload.Name
	if name == "" {
		name = "there"
	}
	data := TemplateData{StoreName: t.storeName, Name: name, Payload: payload, Order: order}

	var subject, body bytes.Buffer
	if err := subjectTmpl.Execute(&subject, data); err != nil {
		return "", "", errs.Wrapf(err, "failed to render %s subject", topic)
	}
	if err := bodyTmpl.Execute(&body, data); err != nil {
		return "", "", errs.Wrapf(err, "failed to render %s body", topic)
	}
	return strings.TrimSpace(subject.String()), strings.TrimSpace(body.String()), nil
}

func paragraphs(s string) []string {
	var out []string
	for _, p := range strings.Split(strings.ReplaceAll(s, "\r\n", "\n"), "\n\n") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
