package catalog

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"storefront/internal/pkg/errs"
)

var (
	ErrInvalidSlug        = errs.NewCategorized("slug must be lowercase words separated by hyphens", errs.ErrValidation)
	ErrInvalidName        = errs.NewCategorized("name must be 1 to 200 characters", errs.ErrValidation)
	ErrInvalidPrice       = errs.NewCategorized("price must be greater than zero", errs.ErrValidation)
	ErrInvalidCompareAt   = errs.NewCategorized("compare-at price must exceed price", errs.ErrValidation)
	ErrNegativeStock      = errs.NewCategorized("stock cannot be negative", errs.ErrValidation)
	ErrInvalidPercent     = errs.NewCategorized("bundle percentage must be greater than 0 and at most 100", errs.ErrValidation)
	ErrInvalidAmount      = errs.NewCategorized("bundle amount cannot be negative", errs.ErrValidation)
	ErrInvalidBundleMode  = errs.NewCategorized("invalid bundle mode", errs.ErrValidation)
	ErrBundleTooSmall     = errs.NewCategorized("a bundle needs at least two distinct products", errs.ErrValidation)
	ErrInsufficientStock  = errs.NewCategorized("stock adjustment would go below zero", errs.ErrConflict)
	ErrDescriptionTooLong = errs.NewCategorized("description too long", errs.ErrValidation)
)

const MaxDescriptionLength = 5000

var slugRegex = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)

type Slug string

func NewSlug(s string) (Slug, error) {
	s = strings.TrimSpace(s)
	if len(s) > 120 || !slugRegex.MatchString(s) {
		return "", ErrInvalidSlug
	}
	return Slug(s), nil
}

// Slugify derives a slug from a display name, for admins that leave it blank.
func Slugify(name string) string {
	var b strings.Builder
	dash := false
	for _, r := range strings.ToLower(name) {
		switch {
		case (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9'):
			b.WriteRune(r)
			dash = false
		case b.Len() > 0 && !dash:
			b.WriteByte('-')
			dash = true
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}

func (s Slug) String() string { return string(s) }

type Name string

func NewName(s string) (Name, error) {
	s = strings.TrimSpace(s)
	if s == "" || utf8.RuneCountInString(s) > 200 {
		return "", ErrInvalidName
	}
	return Name(s), nil
}

func (n Name) String() string { return string(n) }

// slugOrDerive falls back to Slugify(name) when raw is blank.
func slugOrDerive(raw string, name Name) (Slug, error) {
	if strings.TrimSpace(raw) == "" {
		raw = Slugify(name.String())
	}
	return NewSlug(raw)
}
