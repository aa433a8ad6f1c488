package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetMyOrdersQueryHandler retrieves the caller's orders, newest first.
// An empty result here is what triggers ownership reconciliation upstream.
type GetMyOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetMyOrdersQueryHandler creates a handler for per-owner order listings.
func NewGetMyOrdersQueryHandler(db *gorm.DB) GetMyOrdersQueryHandler {
	return GetMyOrdersQueryHandler{db: db}
}

// Handle executes the query and returns the owner's orders ordered by
// creation time descending. No match is an empty slice, not an error.
func (h GetMyOrdersQueryHandler) Handle(ctx context.Context, query GetMyOrdersQuery) ([]OrderView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	return loadOrderViews(ctx, h.db, `
		SELECT `+orderViewColumns+`
		FROM orders
		WHERE owner_id = ?
		ORDER BY created_at DESC
	`, query.OwnerID().Bytes())
}
