package queries

import (
	"errors"

	"shop/internal/core/domain/model/kernel"
	"shop/internal/pkg/guard"
)

var (
	ErrGetMyOrdersQueryIsNotConstructed = errors.New(
		"GetMyOrdersQuery must be created via NewGetMyOrdersQuery constructor",
	)
)

// GetMyOrdersQuery retrieves the orders linked to one owner.
type GetMyOrdersQuery struct {
	ownerID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetMyOrdersQuery creates a query for the given owner's orders.
func NewGetMyOrdersQuery(ownerID kernel.UUID) (GetMyOrdersQuery, error) {
	if err := ownerID.Validate(); err != nil {
		return GetMyOrdersQuery{}, err
	}

	return GetMyOrdersQuery{
		ownerID: ownerID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetMyOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetMyOrdersQueryIsNotConstructed)
}

// OwnerID returns the owner whose orders are requested.
func (q GetMyOrdersQuery) OwnerID() kernel.UUID {
	return q.ownerID
}
