// Package user provides the registered-customer aggregate. It backs the
// identity contract of the order subsystem: reconciliation looks up a user's
// registered email by identity, and the HTTP layer checks the role for the
// privileged endpoints.
package user
