package user

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"storefront/internal/pkg/errs"
)

var (
	ErrInvalidEmail    = errs.NewCategorized("invalid email format", errs.ErrValidation)
	ErrInvalidRole     = errs.NewCategorized("invalid role", errs.ErrValidation)
	ErrPasswordTooWeak = errs.NewCategorized("password must be at least 8 characters long", errs.ErrValidation)
	ErrInvalidFullName = errs.NewCategorized("full name must be 1 to 100 characters", errs.ErrValidation)
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

type Email struct {
	value string
}

// NewEmail lower-cases the address; emails are unique case-insensitively.
func NewEmail(s string) (Email, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if !emailRegex.MatchString(s) {
		return Email{}, ErrInvalidEmail
	}
	return Email{value: s}, nil
}

func (e Email) Value() string {
	return e.value
}

type Password struct {
	value string
}

func NewPassword(s string) (Password, error) {
	if len(s) < 8 {
		return Password{}, ErrPasswordTooWeak
	}
	return Password{value: s}, nil
}

func (p Password) Value() string {
	return p.value
}

type FullName string

func NewFullName(s string) (FullName, error) {
	s = strings.TrimSpace(s)
	if s == "" || utf8.RuneCountInString(s) > 100 {
		return "", ErrInvalidFullName
	}
	return FullName(s), nil
}

func (n FullName) String() string {
	return string(n)
}
