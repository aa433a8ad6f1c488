package commands

import (
	"context"

	"shop/internal/core/domain/model/order"
)

// ReconcileOwnershipCommandHandler links unowned orders to their owner by
// matching the contact email against the caller's registered email.
//
// The lookup of the caller in the user directory is best effort: if it fails
// for any reason the handler reports "nothing to reconcile" rather than
// failing the surrounding list request. The batch link itself is not best
// effort; a storage failure there is returned to the caller.
type ReconcileOwnershipCommandHandler struct {
	uowFactory UoWFactory
}

// NewReconcileOwnershipCommandHandler creates a handler for ownership
// reconciliation.
func NewReconcileOwnershipCommandHandler(uowFactory UoWFactory) ReconcileOwnershipCommandHandler {
	return ReconcileOwnershipCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle links matching orders to the caller and returns the caller's orders
// after linking, newest first. The returned slice is empty when the caller is
// unknown or no orders matched.
func (h *ReconcileOwnershipCommandHandler) Handle(
	ctx context.Context, cmd ReconcileOwnershipCommand,
) ([]*order.Order, error) {
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

	owner, err := uow.UserRepository().Get(ctx, cmd.OwnerID())
	if err != nil {
		return []*order.Order{}, nil
	}

	linked, err := uow.OrderRepository().LinkOwnerByEmail(ctx, owner.Email(), cmd.OwnerID())
	if err != nil {
		return nil, err
	}
	if linked == 0 {
		return []*order.Order{}, nil
	}

	orders, err := uow.OrderRepository().GetByOwner(ctx, cmd.OwnerID())
	if err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return orders, nil
}
