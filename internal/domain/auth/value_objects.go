package auth

import (
	"strings"

	"rental-marketplace/internal/domain/user"
	"rental-marketplace/internal/pkg/errs"
)

var (
	ErrInvalidCredentials = errs.Domain(errs.ErrAuthentication, "invalid email or password")
	ErrAccountDisabled    = errs.Domain(errs.ErrAuthentication, "account is deactivated")
	ErrMissingPassword    = errs.Domain(errs.ErrValidation, "password is required")
)

type Credentials struct {
	email    user.Email
	password string
}

// NewCredentials does not apply the signup password policy; a login only needs a non-empty password.
func NewCredentials(emailStr, passwordStr string) (Credentials, error) {
	email, err := user.NewEmail(emailStr)
	if err != nil {
		return Credentials{}, err
	}

	if strings.TrimSpace(passwordStr) == "" {
		return Credentials{}, ErrMissingPassword
	}

	return Credentials{
		email:    email,
		password: passwordStr,
	}, nil
}

func (c Credentials) Email() user.Email {
	return c.email
}

func (c Credentials) Password() string {
	return c.password
}
