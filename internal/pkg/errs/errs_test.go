//go:build unit

package errs_test

import (
	"fmt"
	"testing"

	"storefront/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
)

var (
	errSlugTaken   = errs.NewCategorized("slug already in use", errs.ErrConflict)
	errOutOfStock  = errs.NewCategorized("not enough stock", errs.ErrConflict)
	errNoSuchOrder = errs.NewCategorized("order not found", errs.ErrNotFound)
	errExpired     = errs.Categorize(errs.WithHint(errs.New("coupon has expired"), "coupon_expired"), errs.ErrValidation)
	errInactive    = errs.Categorize(errs.WithHint(errs.New("coupon is inactive"), "coupon_inactive"), errs.ErrValidation)
)

func TestIs_CategorizedSentinels(t *testing.T) {
	tests := []struct {
		name      string
		err       error
		reference error
		want      bool
	}{
		{"sentinel matches itself", errSlugTaken, errSlugTaken, true},
		{"sentinel matches its category", errSlugTaken, errs.ErrConflict, true},
		{"siblings stay distinct", errSlugTaken, errOutOfStock, false},
		{"hinted siblings stay distinct", errExpired, errInactive, false},
		{"other category does not match", errNoSuchOrder, errs.ErrConflict, false},
		{"wrapped sentinel keeps identity", errs.Wrap(errOutOfStock, "reserve stock"), errOutOfStock, true},
		{"wrapped sentinel keeps category", errs.Wrapf(errNoSuchOrder, "order %d", 7), errs.ErrNotFound, true},
		{"marked cause joins the category", errs.Mark(errs.New("pg: 23505"), errSlugTaken), errs.ErrConflict, true},
		{"category does not match a sentinel", errs.ErrConflict, errSlugTaken, false},
		{"plain error has no category", errs.New("boom"), errs.ErrValidation, false},
		{"nil matches nothing", nil, errs.ErrConflict, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, errs.Is(tt.err, tt.reference))
		})
	}
}

func TestWithCause(t *testing.T) {
	cause := errs.New(`violates foreign key constraint "orders_user_id_fkey"`)
	err := errs.WithCause(errSlugTaken, cause)

	assert.True(t, errs.Is(err, errSlugTaken))
	assert.True(t, errs.Is(err, errs.ErrConflict))
	assert.Equal(t, "slug already in use", errs.UnwrapAll(err).Error())
	assert.Contains(t, fmt.Sprintf("%+v", err), "orders_user_id_fkey")
}

func TestHint(t *testing.T) {
	assert.Equal(t, "coupon_expired", errs.Hint(errs.Wrap(errExpired, "apply")))
	assert.Empty(t, errs.Hint(errSlugTaken))
}
