package user

import (
	"errors"
	"strings"

	"shop/internal/core/domain/model/kernel"
	"shop/internal/pkg/errs"
	"shop/internal/pkg/guard"
)

var (
	// ErrNameIsRequired is returned when creating a user without a name.
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")
	// ErrEmailIsRequired is returned when creating a user without an email.
	ErrEmailIsRequired = errs.NewValueIsRequiredError("email")
	// ErrPasswordHashIsRequired is returned when creating a user without a password hash.
	ErrPasswordHashIsRequired = errs.NewValueIsRequiredError("passwordHash")
	// ErrUserIsNotConstructed is returned when using an improperly initialized User.
	ErrUserIsNotConstructed = errors.New("User must be created via NewUser constructor")
)

// User is the registered-customer aggregate. The order subsystem consults it
// for two things only: the registered email (the reconciliation correlation
// key) and the role (the privileged-caller gate). Credentials are stored as
// a bcrypt hash produced by the registration flow.
//
// Emails are normalized to lowercase with surrounding whitespace trimmed, so
// two registrations differing only in case resolve to the same address.
// Note that order contact emails are NOT normalized; reconciliation matches
// them exactly as stored.
type User struct {
	id           kernel.UUID
	name         string
	email        string
	role         Role
	passwordHash string

	guard guard.ConstructorGuard
}

// NewUser creates a user with a validated id, non-empty name, normalized
// non-empty email, valid role, and a non-empty password hash.
func NewUser(id kernel.UUID, name string, email string, role Role, passwordHash string) (*User, error) {
	u := &User{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		u.setID(id),
		u.setName(name),
		u.setEmail(email),
		u.setRole(role),
		u.setPasswordHash(passwordHash),
	); err != nil {
		return nil, err
	}

	return u, nil
}

// RestoreUser reconstructs a user from persistence.
func RestoreUser(id kernel.UUID, name string, email string, role Role, passwordHash string) (*User, error) {
	return NewUser(id, name, email, role, passwordHash)
}

// Validate ensures the User instance was properly constructed.
func (u *User) Validate() error {
	if u == nil {
		return ErrUserIsNotConstructed
	}
	return u.guard.Validate(ErrUserIsNotConstructed)
}

// ID returns the user's identity.
func (u *User) ID() kernel.UUID {
	return u.id
}

// Name returns the user's display name.
func (u *User) Name() string {
	return u.name
}

// Email returns the normalized registered email.
func (u *User) Email() string {
	return u.email
}

// Role returns the user's role.
func (u *User) Role() Role {
	return u.role
}

// IsAdmin reports whether the user passes the privileged gate.
func (u *User) IsAdmin() bool {
	return u.role == RoleAdmin
}

// PasswordHash returns the stored bcrypt hash.
func (u *User) PasswordHash() string {
	return u.passwordHash
}

func (u *User) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	u.id = id
	return nil
}

func (u *User) setName(name string) error {
	if name == "" {
		return ErrNameIsRequired
	}
	u.name = name
	return nil
}

func (u *User) setEmail(email string) error {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return ErrEmailIsRequired
	}
	u.email = email
	return nil
}

func (u *User) setRole(role Role) error {
	if err := role.Validate(); err != nil {
		return err
	}
	u.role = role
	return nil
}

func (u *User) setPasswordHash(passwordHash string) error {
	if passwordHash == "" {
		return ErrPasswordHashIsRequired
	}
	u.passwordHash = passwordHash
	return nil
}
