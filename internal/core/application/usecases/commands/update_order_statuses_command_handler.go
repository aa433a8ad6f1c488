package commands

import (
	"context"

	"shop/internal/core/domain/model/order"
)

// UpdateOrderStatusesCommandHandler handles operator updates of order
// statuses. The aggregate re-validates each value before it is applied, so
// nothing outside the allowed sets can reach storage.
type UpdateOrderStatusesCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewUpdateOrderStatusesCommandHandler creates a handler for status updates.
func NewUpdateOrderStatusesCommandHandler(uowFactory OrderUoWFactory) UpdateOrderStatusesCommandHandler {
	return UpdateOrderStatusesCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle loads the order, applies the requested status changes and returns
// the updated order.
func (h *UpdateOrderStatusesCommandHandler) Handle(
	ctx context.Context, cmd UpdateOrderStatusesCommand,
) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderAggregate, err := uow.OrderRepository().Get(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	if status := cmd.Status(); status != nil {
		if err = orderAggregate.ChangeStatus(*status); err != nil {
			return nil, err
		}
	}

	if paymentStatus := cmd.PaymentStatus(); paymentStatus != nil {
		if err = orderAggregate.ChangePaymentStatus(*paymentStatus); err != nil {
			return nil, err
		}
	}

	if err = uow.OrderRepository().Update(ctx, orderAggregate); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return orderAggregate, nil
}
