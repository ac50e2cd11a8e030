//go:build unit

package invoice

import (
	"testing"
	"time"

	"storefront/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatMoney(t *testing.T) {
	assert.Equal(t, "₹1249.00", FormatMoney(124900, "INR"))
	assert.Equal(t, "$0.05", FormatMoney(5, "USD"))
	assert.Equal(t, "-€12.30", FormatMoney(-1230, "EUR"))
	assert.Equal(t, "JPY 1.00", FormatMoney(100, "JPY"))
}

func TestRenderer_Render(t *testing.T) {
	ist := time.FixedZone("IST", 5*3600+1800)
	r, err := NewRenderer("Chai Co", ist)
	require.NoError(t, err)

	code := "SAVE10"
	paymentID := "pay_123"
	paidAt := time.Date(2026, 1, 31, 20, 0, 0, 0, time.UTC)
	bundleID := uuid.New()
	view := &queries.OrderView{
		ID:     uuid.New(),
		Number: "SF-260131-0001",
		Status: "paid",
		Items: []queries.OrderItemView{
			{ProductID: uuid.New(), Name: "Masala Chai", UnitPriceCents: 45000, Quantity: 2, LineTotalCents: 90000},
			{ProductID: uuid.New(), BundleID: &bundleID, Name: "Gift Box <Deluxe>", UnitPriceCents: 30000, Quantity: 1, LineTotalCents: 30000},
		},
		SubtotalCents: 120000,
		ShippingCents: 0,
		DiscountCents: 12000,
		TotalCents:    108000,
		Currency:      "INR",
		CouponCode:    &code,
		PaymentID:     &paymentID,
		PaidAt:        &paidAt,
		Address: queries.ShippingAddressView{
			FullName: "Asha Rao", Phone: "9876543210", Line1: "12 MG Road",
			City: "Bengaluru", State: "KA", Pincode: "560001",
		},
		CreatedAt: paidAt.Add(-time.Hour),
	}

	out, err := r.Render(view)
	require.NoError(t, err)
	html := string(out)

	assert.Contains(t, html, "Chai Co")
	assert.Contains(t, html, "SF-260131-0001")
	// paid timestamp rolls over to the next day in IST
	assert.Contains(t, html, "01 Feb 2026")
	assert.Contains(t, html, "pay_123")
	assert.Contains(t, html, "₹900.00")
	assert.Contains(t, html, "-₹120.00")
	assert.Contains(t, html, "(SAVE10)")
	assert.Contains(t, html, "Free")
	assert.Contains(t, html, "₹1080.00")
	assert.Contains(t, html, "Gift Box &lt;Deluxe&gt;")
	assert.Contains(t, html, "(bundle)")
}
