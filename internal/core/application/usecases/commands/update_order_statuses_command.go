package commands

import (
	"errors"

	"shop/internal/core/domain/model/kernel"
	"shop/internal/core/domain/model/order"
	"shop/internal/pkg/errs"
	"shop/internal/pkg/guard"
)

var (
	ErrUpdateOrderStatusesCommandIsNotConstructed = errors.New(
		"UpdateOrderStatusesCommand must be created via NewUpdateOrderStatusesCommand constructor",
	)

	ErrNoStatusFieldsToUpdate = errs.NewValueIsInvalidError(
		"update requires orderStatus or paymentStatus")
)

// UpdateOrderStatusesCommand represents an operator request to change an
// order's fulfillment status, payment status, or both. Fields left nil are
// untouched; a request carrying neither field is rejected outright.
type UpdateOrderStatusesCommand struct { //nolint:recvcheck //using for validation
	orderID       kernel.UUID
	status        *order.Status
	paymentStatus *order.PaymentStatus

	guard guard.ConstructorGuard
}

// NewUpdateOrderStatusesCommand creates a command to update order statuses.
// Both status arguments are optional, but at least one must be present and
// every present one must belong to its allowed set.
func NewUpdateOrderStatusesCommand(
	orderID kernel.UUID,
	status *order.Status,
	paymentStatus *order.PaymentStatus,
) (UpdateOrderStatusesCommand, error) {
	cmd := UpdateOrderStatusesCommand{
		guard: guard.NewConstructorGuard(),
	}

	if status == nil && paymentStatus == nil {
		return UpdateOrderStatusesCommand{}, ErrNoStatusFieldsToUpdate
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setStatus(status),
		cmd.setPaymentStatus(paymentStatus),
	); err != nil {
		return UpdateOrderStatusesCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateOrderStatusesCommand) Validate() error {
	return c.guard.Validate(ErrUpdateOrderStatusesCommandIsNotConstructed)
}

// OrderID returns the identity of the order to update.
func (c UpdateOrderStatusesCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Status returns the requested fulfillment status, or nil to leave it unchanged.
func (c UpdateOrderStatusesCommand) Status() *order.Status {
	return c.status
}

// PaymentStatus returns the requested payment status, or nil to leave it unchanged.
func (c UpdateOrderStatusesCommand) PaymentStatus() *order.PaymentStatus {
	return c.paymentStatus
}

func (c *UpdateOrderStatusesCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *UpdateOrderStatusesCommand) setStatus(status *order.Status) error {
	if status == nil {
		return nil
	}
	if err := status.Validate(); err != nil {
		return err
	}

	c.status = status
	return nil
}

func (c *UpdateOrderStatusesCommand) setPaymentStatus(paymentStatus *order.PaymentStatus) error {
	if paymentStatus == nil {
		return nil
	}
	if err := paymentStatus.Validate(); err != nil {
		return err
	}

	c.paymentStatus = paymentStatus
	return nil
}
