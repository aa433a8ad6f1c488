package ports

import (
	"context"

	"shop/internal/core/domain/model/kernel"
	"shop/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	// The order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order by its storage identity.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetByTrackingNumber retrieves an order by its human-facing tracking
	// number. Returns an ObjectNotFoundError when no such number was issued.
	GetByTrackingNumber(ctx context.Context, trackingNumber int64) (*order.Order, error)

	// GetAll retrieves every order, newest first. Privileged callers only;
	// the authorization gate sits in front of the use case, not here.
	GetAll(ctx context.Context) ([]*order.Order, error)

	// GetByOwner retrieves the orders linked to the given user, newest first.
	GetByOwner(ctx context.Context, ownerID kernel.UUID) ([]*order.Order, error)

	// GetByEmail retrieves orders whose contact email matches exactly,
	// newest first. Used by ownership reconciliation.
	GetByEmail(ctx context.Context, email string) ([]*order.Order, error)

	// LinkOwnerByEmail backfills ownerID onto every order whose contact
	// email matches exactly and that has no owner yet. Returns the number
	// of orders linked; zero on a repeat run (the operation is idempotent).
	LinkOwnerByEmail(ctx context.Context, email string, ownerID kernel.UUID) (int64, error)
}
