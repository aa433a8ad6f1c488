// Package queries contains read-only operations in the CQRS split. Query
// handlers go straight to the database and return read models; they never
// load aggregates or start transactions.
package queries

import (
	"context"
	"time"

	"shop/internal/core/domain/model/kernel"
	"shop/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// OrderView is the read model of a stored order, contact details and line
// items included. It carries everything the public order payload needs.
type OrderView struct {
	ID             kernel.UUID
	TrackingNumber int64
	OwnerID        *kernel.UUID
	Name           string
	Email          string
	Phone          string
	Address        string
	Items          []OrderItemView
	TotalPrice     float64
	PaymentMethod  string
	PaymentStatus  order.PaymentStatus
	Status         order.Status
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// OrderItemView is a single line item of an order read model.
type OrderItemView struct {
	ProductID string
	Quantity  int
	Color     string
	Size      string
}

const orderViewColumns = `
	id,
	tracking_number,
	owner_id,
	name,
	email,
	phone,
	address,
	total_price,
	payment_method,
	payment_status,
	status,
	created_at,
	updated_at
`

// loadOrderViews runs the given orders query and attaches line items to each
// returned view with a second query. The orders query must select
// orderViewColumns in that exact order.
func loadOrderViews(ctx context.Context, db *gorm.DB, query string, args ...any) ([]OrderView, error) {
	views := make([]OrderView, 0)
	rawIDs := make([]uuid.UUID, 0)

	rows, err := db.WithContext(ctx).Raw(query, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var view OrderView
		var id uuid.UUID
		var ownerID uuid.NullUUID

		err = rows.Scan(
			&id,
			&view.TrackingNumber,
			&ownerID,
			&view.Name,
			&view.Email,
			&view.Phone,
			&view.Address,
			&view.TotalPrice,
			&view.PaymentMethod,
			&view.PaymentStatus,
			&view.Status,
			&view.CreatedAt,
			&view.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}

		viewID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		view.ID = viewID

		if ownerID.Valid {
			owner, ownerErr := kernel.UUIDFromBytes(ownerID.UUID[:])
			if ownerErr != nil {
				return nil, ownerErr
			}
			view.OwnerID = &owner
		}

		view.Items = make([]OrderItemView, 0)
		views = append(views, view)
		rawIDs = append(rawIDs, id)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	if len(views) == 0 {
		return views, nil
	}

	if err = attachItems(ctx, db, views, rawIDs); err != nil {
		return nil, err
	}

	return views, nil
}

func attachItems(ctx context.Context, db *gorm.DB, views []OrderView, rawIDs []uuid.UUID) error {
	indexByID := make(map[uuid.UUID]int, len(views))
	for i, id := range rawIDs {
		indexByID[id] = i
	}

	rows, err := db.WithContext(ctx).Raw(`
		SELECT
			order_id,
			product_id,
			quantity,
			color,
			size
		FROM order_items
		WHERE order_id IN ?
		ORDER BY order_id, position
	`, rawIDs).Rows()
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var orderID uuid.UUID
		var item OrderItemView

		err = rows.Scan(
			&orderID,
			&item.ProductID,
			&item.Quantity,
			&item.Color,
			&item.Size,
		)
		if err != nil {
			return err
		}

		i, ok := indexByID[orderID]
		if !ok {
			continue
		}
		views[i].Items = append(views[i].Items, item)
	}

	return rows.Err()
}
