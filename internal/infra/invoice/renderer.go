package invoice

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"time"

	"storefront/internal/pkg/errs"
	"storefront/internal/usecase/queries"
)

//go:embed templates/*.html
var templateFS embed.FS

var currencySymbols = map[string]string{
	"INR": "₹",
	"USD": "$",
	"EUR": "€",
	"GBP": "£",
}

// FormatMoney renders minor units with the currency symbol, e.g. ₹1249.00.
func FormatMoney(cents int64, currency string) string {
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}
	symbol, ok := currencySymbols[currency]
	if !ok {
		symbol = currency + " "
	}
	return fmt.Sprintf("%s%s%d.%02d", sign, symbol, cents/100, cents%100)
}

type Renderer struct {
	storeName string
	tmpl      *template.Template
	location  *time.Location
}

func NewRenderer(storeName string, loc *time.Location) (*Renderer, error) {
	if loc == nil {
		loc = time.UTC
	}
	tmpl, err := template.New("invoice.html").Funcs(template.FuncMap{
		"money": FormatMoney,
		"date":  func(t time.Time) string { return t.In(loc).Format("02 Jan 2006") },
	}).ParseFS(templateFS, "templates/invoice.html")
	if err != nil {
		return nil, errs.Wrap(err, "failed to parse invoice template")
	}
	return &Renderer{storeName: storeName, tmpl: tmpl, location: loc}, nil
}

type invoiceData struct {
	StoreName string
	Order     *queries.OrderView
	IssuedAt  time.Time
}

func (r *Renderer) Render(order *queries.OrderView) ([]byte, error) {
	issued := order.CreatedAt
	if order.PaidAt != nil {
		issued = *order.PaidAt
	}
	var buf bytes.Buffer
	if err := r.tmpl.Execute(&buf, invoiceData{StoreName: r.storeName, Order: order, IssuedAt: issued}); err != nil {
		return nil, errs.Wrapf(err, "failed to render invoice for order %s", order.Number)
	}
	return buf.Bytes(), nil
}
