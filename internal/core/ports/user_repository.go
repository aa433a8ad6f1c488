package ports

import (
	"context"

	"shop/internal/core/domain/model/kernel"
	"shop/internal/core/domain/model/user"
)

// UserRepository defines the persistence contract for user aggregates.
// It also serves as the user directory consulted by order reconciliation.
type UserRepository interface {
	// Add persists a new user. The registered email must be unique.
	Add(ctx context.Context, aggregate *user.User) error

	// Get retrieves a user by identity.
	// Returns an ObjectNotFoundError when the user does not exist.
	Get(ctx context.Context, id kernel.UUID) (*user.User, error)

	// GetByEmail retrieves a user by normalized email.
	GetByEmail(ctx context.Context, email string) (*user.User, error)
}
