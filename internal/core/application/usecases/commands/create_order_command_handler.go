package commands

import (
	"context"

	"shop/internal/core/domain/model/order"
	"shop/internal/core/ports"
)

// CreateOrderCommandHandler handles the business logic for placing orders.
//
// The tracking number is allocated from the sequence generator before the
// order transaction begins, and the allocation commits on its own. If the
// subsequent save fails the number stays consumed — a gap in the sequence
// is accepted, a duplicate never is. A failed allocation fails the whole
// command; there is no fallback numbering.
type CreateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	sequence   ports.SequenceGenerator
}

// NewCreateOrderCommandHandler creates a handler for order placement.
func NewCreateOrderCommandHandler(uowFactory OrderUoWFactory, sequence ports.SequenceGenerator) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		sequence:   sequence,
	}
}

// Handle processes the checkout command and returns the stored order,
// tracking number included.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	trackingNumber, err := h.sequence.NextValue(ctx, ports.OrderTrackingCounter)
	if err != nil {
		return nil, err
	}

	newOrder, err := order.NewOrder(
		cmd.OrderID(),
		trackingNumber,
		cmd.OwnerID(),
		cmd.Contact(),
		cmd.Items(),
		cmd.TotalPrice(),
		cmd.PaymentMethod(),
	)
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.OrderRepository().Add(ctx, newOrder); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return newOrder, nil
}
