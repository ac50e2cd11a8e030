package auth

import (
	"storefront/internal/domain/user"
	"storefront/internal/pkg/errs"
)

var (
	ErrInvalidCredentials = errs.New("invalid email or password")
)

type Credentials struct {
	email    user.Email
	password user.Password
}

func NewCredentials(emailStr, passwordStr string) (Credentials, error) {
	email, err := user.NewEmail(emailStr)
	if err != nil {
		return Credentials{}, err
	}

	password, err := user.NewPassword(passwordStr)
	if err != nil {
		return Credentials{}, err
	}

	return Credentials{
		email:    email,
		password: password,
	}, nil
}

func (c Credentials) Email() user.Email {
	return c.email
}

func (c Credentials) Password() user.Password {
	return c.password
}

// Registration is a validated sign-up request.
type Registration struct {
	Credentials
	fullName user.FullName
}

func NewRegistration(emailStr, passwordStr, fullName string) (Registration, error) {
	creds, err := NewCredentials(emailStr, passwordStr)
	if err != nil {
		return Registration{}, err
	}
	name, err := user.NewFullName(fullName)
	if err != nil {
		return Registration{}, err
	}
	return Registration{Credentials: creds, fullName: name}, nil
}

func (r Registration) FullName() user.FullName {
	return r.fullName
}
