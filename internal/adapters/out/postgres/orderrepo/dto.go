// Package orderrepo provides data transfer objects and mapping functions for
// order persistence. It implements the repository pattern for the order
// aggregate, converting between domain entities and database rows.
package orderrepo

import (
	"time"

	"shop/internal/core/domain/model/kernel"
	"shop/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting orders.
// The tracking number carries a unique index (the sequence generator makes
// duplicates impossible, the constraint makes them loud), and contact email
// and owner are indexed for the reconciliation lookups.
type OrderDTO struct {
	ID             uuid.UUID  `gorm:"type:uuid;primaryKey"`
	TrackingNumber int64      `gorm:"uniqueIndex;not null"`
	OwnerID        *uuid.UUID `gorm:"type:uuid;index"`
	Name           string
	Email          string `gorm:"index"`
	Phone          string
	Address        string
	Items          []OrderItemDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	TotalPrice     float64
	PaymentMethod  string
	PaymentStatus  string
	Status         string
	CreatedAt      time.Time `gorm:"index"`
	UpdatedAt      time.Time
}

// TableName specifies the database table name for orders.
func (OrderDTO) TableName() string {
	return "orders"
}

// OrderItemDTO represents a single line item row. Position preserves the
// order of items as submitted at checkout.
type OrderItemDTO struct {
	ID        int64     `gorm:"primaryKey;autoIncrement"`
	OrderID   uuid.UUID `gorm:"type:uuid;index;not null"`
	Position  int       `gorm:"not null"`
	ProductID string
	Quantity  int
	Color     string
	Size      string
}

// TableName specifies the database table name for order line items.
func (OrderItemDTO) TableName() string {
	return "order_items"
}

// fromDomain converts an order aggregate to its database representation.
func fromDomain(aggregate *order.Order) OrderDTO {
	var ownerID *uuid.UUID
	if id := aggregate.Owner(); id != nil {
		raw := id.Bytes()
		ownerID = &raw
	}

	items := make([]OrderItemDTO, 0, len(aggregate.Items()))
	for i, item := range aggregate.Items() {
		items = append(items, OrderItemDTO{
			OrderID:   aggregate.ID().Bytes(),
			Position:  i,
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			Color:     item.Color,
			Size:      item.Size,
		})
	}

	contact := aggregate.Contact()
	return OrderDTO{
		ID:             aggregate.ID().Bytes(),
		TrackingNumber: aggregate.TrackingNumber(),
		OwnerID:        ownerID,
		Name:           contact.Name,
		Email:          contact.Email,
		Phone:          contact.Phone,
		Address:        contact.Address,
		Items:          items,
		TotalPrice:     aggregate.TotalPrice(),
		PaymentMethod:  aggregate.PaymentMethod(),
		PaymentStatus:  aggregate.PaymentStatus().String(),
		Status:         aggregate.Status().String(),
	}
}

// toDomain converts a database row back into an order aggregate via
// RestoreOrder, which re-validates the persisted enum values.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	var ownerID *kernel.UUID
	if dto.OwnerID != nil {
		oID, ownerErr := kernel.UUIDFromBytes((*dto.OwnerID)[:])
		if ownerErr != nil {
			return nil, ownerErr
		}
		ownerID = &oID
	}

	items := make([]order.LineItem, 0, len(dto.Items))
	for _, item := range dto.Items {
		items = append(items, order.LineItem{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			Color:     item.Color,
			Size:      item.Size,
		})
	}

	return order.RestoreOrder(
		id,
		dto.TrackingNumber,
		ownerID,
		order.Contact{
			Name:    dto.Name,
			Email:   dto.Email,
			Phone:   dto.Phone,
			Address: dto.Address,
		},
		items,
		dto.TotalPrice,
		dto.PaymentMethod,
		order.PaymentStatus(dto.PaymentStatus),
		order.Status(dto.Status),
		dto.CreatedAt,
		dto.UpdatedAt,
	)
}
