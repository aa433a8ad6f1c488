package commands

import (
	"errors"

	"shop/internal/core/domain/model/kernel"
	"shop/internal/core/domain/model/order"
	"shop/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
)

// CreateOrderCommand represents a checkout request. The owner is optional:
// anonymous checkout is an accepted path and produces an order without an
// owner link. Contact fields and line items arrive pre-validated from the
// HTTP layer and are carried as-is.
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID       kernel.UUID
	ownerID       *kernel.UUID
	contact       order.Contact
	items         []order.LineItem
	totalPrice    float64
	paymentMethod string

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to place a new order.
// ownerID may be nil (anonymous checkout); when present it must be valid.
func NewCreateOrderCommand(
	orderID kernel.UUID,
	ownerID *kernel.UUID,
	contact order.Contact,
	items []order.LineItem,
	totalPrice float64,
	paymentMethod string,
) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		contact:       contact,
		items:         items,
		totalPrice:    totalPrice,
		paymentMethod: paymentMethod,
		guard:         guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setOwnerID(ownerID),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// OrderID returns the storage identity for the new order.
func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// OwnerID returns the resolved caller identity, or nil for anonymous checkout.
func (c CreateOrderCommand) OwnerID() *kernel.UUID {
	return c.ownerID
}

// Contact returns the delivery contact details.
func (c CreateOrderCommand) Contact() order.Contact {
	return c.contact
}

// Items returns the requested line items.
func (c CreateOrderCommand) Items() []order.LineItem {
	return c.items
}

// TotalPrice returns the order total.
func (c CreateOrderCommand) TotalPrice() float64 {
	return c.totalPrice
}

// PaymentMethod returns the free-form payment method text.
func (c CreateOrderCommand) PaymentMethod() string {
	return c.paymentMethod
}

func (c *CreateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setOwnerID(ownerID *kernel.UUID) error {
	if ownerID == nil {
		return nil
	}
	if err := ownerID.Validate(); err != nil {
		return err
	}

	c.ownerID = ownerID
	return nil
}
