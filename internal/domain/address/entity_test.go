//go:build unit

package address_test

import (
	"strings"
	"testing"
	"time"

	"storefront/internal/domain/address"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validParams() address.Params {
	return address.Params{
		FullName: "Asha Rao",
		Phone:    "9876543210",
		Line1:    "12 MG Road",
		City:     "Bengaluru",
		State:    "Karnataka",
		Pincode:  "560001",
	}
}

func TestNormalizePhone(t *testing.T) {
	cases := []struct {
		in   string
		want string
		err  bool
	}{
		{in: "9876543210", want: "9876543210"},
		{in: "+91 98765 43210", want: "9876543210"},
		{in: "+91-9876543210", want: "9876543210"},
		{in: "09876543210", want: "9876543210"},
		{in: "919876543210", want: "9876543210"},
		{in: "5876543210", err: true},
		{in: "987654321", err: true},
		{in: "98765432100", err: true},
		{in: "", err: true},
	}
	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			got, err := address.NormalizePhone(tc.in)
			if tc.err {
				assert.ErrorIs(t, err, address.ErrInvalidPhone)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestNormalizePincode(t *testing.T) {
	for in, ok := range map[string]bool{
		"560001":  true,
		"560 001": true,
		"060001":  false,
		"56001":   false,
		"5600011": false,
		"56000a":  false,
	} {
		_, err := address.NormalizePincode(in)
		if ok {
			assert.NoError(t, err, in)
		} else {
			assert.ErrorIs(t, err, address.ErrInvalidPincode, in)
		}
	}
}

func TestNewAddress(t *testing.T) {
	now := time.Now()
	userID := uuid.New()

	a, err := address.NewAddress(userID, validParams(), true, now)
	require.NoError(t, err)
	assert.True(t, a.IsDefault())
	assert.True(t, a.IsOwnedBy(userID))

	cases := []struct {
		name   string
		mutate func(p *address.Params)
		errIs  error
	}{
		{name: "missing name", mutate: func(p *address.Params) { p.FullName = " " }, errIs: address.ErrMissingField},
		{name: "missing city", mutate: func(p *address.Params) { p.City = "" }, errIs: address.ErrMissingField},
		{name: "line2 optional", mutate: func(p *address.Params) { p.Line2 = "" }},
		{name: "line too long", mutate: func(p *address.Params) { p.Line1 = strings.Repeat("x", 201) }, errIs: address.ErrFieldTooLong},
		{name: "bad pincode", mutate: func(p *address.Params) { p.Pincode = "000000" }, errIs: address.ErrInvalidPincode},
		{name: "bad phone", mutate: func(p *address.Params) { p.Phone = "12345" }, errIs: address.ErrInvalidPhone},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := validParams()
			tc.mutate(&p)
			_, err := address.NewAddress(userID, p, false, now)
			if tc.errIs == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tc.errIs)
			}
		})
	}
}
