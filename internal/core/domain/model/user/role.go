package user

import (
	"fmt"

	"shop/internal/pkg/errs"
)

// Role controls what a user may do over the HTTP surface. Admins pass the
// privileged gate on the list-all and update-status endpoints; customers do
// not.
type Role string

const (
	// RoleCustomer is the default role for self-registered users.
	RoleCustomer Role = "customer"

	// RoleAdmin marks privileged operators.
	RoleAdmin Role = "admin"
)

// getValidRoles returns the allowed roles.
func getValidRoles() map[Role]struct{} {
	return map[Role]struct{}{
		RoleCustomer: {},
		RoleAdmin:    {},
	}
}

// Validate checks that the role belongs to the allowed set.
func (r Role) Validate() error {
	if _, ok := getValidRoles()[r]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("role",
			fmt.Errorf("%q is not a valid role", string(r)))
	}
	return nil
}

// String implements fmt.Stringer.
func (r Role) String() string {
	return string(r)
}
