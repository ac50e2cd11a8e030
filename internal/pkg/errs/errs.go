package errs

import (
	"fmt"
	"strings"

	cr "github.com/cockroachdb/errors"
)

func Wrap(err error, msg string) error {
	if err == nil {
		return nil
	}
	return cr.Wrap(err, msg)
}

func Wrapf(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	return cr.Wrapf(err, format, args...)
}

func New(msg string) error {
	return cr.New(msg)
}

func Newf(format string, args ...any) error {
	return cr.Newf(format, args...)
}

func Mark(err error, markErr error) error {
	if err == nil {
		return markErr
	}
	return cr.Mark(err, markErr)
}

// Is understands marks as well as wrap chains; prefer it over errors.Is for marked errors.
// A category marker matches every error carrying one of its sentinels.
func Is(err, reference error) bool {
	if cr.Is(err, reference) {
		return true
	}
	return inCategory(err, reference)
}

// WithHint attaches a user-facing message code (e.g. "coupon_expired").
func WithHint(err error, hint string) error {
	return cr.WithHint(err, hint)
}

// Hint returns the innermost hint attached to err, or "".
func Hint(err error) string {
	hints := cr.GetAllHints(err)
	if len(hints) == 0 {
		return ""
	}
	return hints[0]
}

func ExtractStackLines(err error, maxLines int) []string {
	if err == nil {
		return nil
	}
	s := fmt.Sprintf("%+v", err)
	lines := strings.Split(s, "\n")
	if maxLines > 0 && len(lines) > maxLines {
		lines = lines[:maxLines]
	}
	return lines
}

func As(err error, target any) bool {
	return cr.As(err, target)
}

// UnwrapAll returns the innermost cause, dropping wrap messages and marks.
func UnwrapAll(err error) error {
	return cr.UnwrapAll(err)
}
