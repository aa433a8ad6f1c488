package queries

import (
	"errors"
	"strings"

	"shop/internal/core/domain/model/kernel"
	"shop/internal/core/domain/model/user"
	"shop/internal/pkg/errs"
	"shop/internal/pkg/guard"
)

var (
	ErrAuthenticateUserQueryIsNotConstructed = errors.New(
		"AuthenticateUserQuery must be created via NewAuthenticateUserQuery constructor",
	)
)

// AuthenticateUserQuery checks a login attempt against the user directory.
// Authentication is a read: it changes nothing, it only verifies the
// credential and returns who the caller is.
type AuthenticateUserQuery struct {
	email    string
	password string

	guard guard.ConstructorGuard
}

// NewAuthenticateUserQuery creates a login query. The email is normalized to
// the stored form (trimmed, lowercase) before matching.
func NewAuthenticateUserQuery(email string, password string) (AuthenticateUserQuery, error) {
	normalized := strings.ToLower(strings.TrimSpace(email))
	if normalized == "" {
		return AuthenticateUserQuery{}, errs.NewValueIsRequiredError("email")
	}
	if password == "" {
		return AuthenticateUserQuery{}, errs.NewValueIsRequiredError("password")
	}

	return AuthenticateUserQuery{
		email:    normalized,
		password: password,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q AuthenticateUserQuery) Validate() error {
	return q.guard.Validate(ErrAuthenticateUserQueryIsNotConstructed)
}

// Email returns the normalized login email.
func (q AuthenticateUserQuery) Email() string {
	return q.email
}

// Password returns the plain-text password to verify.
func (q AuthenticateUserQuery) Password() string {
	return q.password
}

// AuthenticateUserQueryResponse identifies the authenticated user.
type AuthenticateUserQueryResponse struct {
	ID    kernel.UUID
	Name  string
	Email string
	Role  user.Role
}
