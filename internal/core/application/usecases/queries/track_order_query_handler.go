package queries

import (
	"context"

	"shop/internal/pkg/errs"

	"gorm.io/gorm"
)

// TrackOrderQueryHandler retrieves one order by tracking number.
type TrackOrderQueryHandler struct {
	db *gorm.DB
}

// NewTrackOrderQueryHandler creates a handler for public order tracking.
func NewTrackOrderQueryHandler(db *gorm.DB) TrackOrderQueryHandler {
	return TrackOrderQueryHandler{db: db}
}

// Handle executes the query. An unknown tracking number returns an
// ObjectNotFoundError.
func (h TrackOrderQueryHandler) Handle(ctx context.Context, query TrackOrderQuery) (OrderView, error) {
	if err := query.Validate(); err != nil {
		return OrderView{}, err
	}

	views, err := loadOrderViews(ctx, h.db, `
		SELECT `+orderViewColumns+`
		FROM orders
		WHERE tracking_number = ?
	`, query.TrackingNumber())
	if err != nil {
		return OrderView{}, err
	}

	if len(views) == 0 {
		return OrderView{}, errs.NewObjectNotFoundError("trackingNumber", query.TrackingNumber())
	}

	return views[0], nil
}
