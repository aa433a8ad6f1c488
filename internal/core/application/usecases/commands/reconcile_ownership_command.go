package commands

import (
	"errors"

	"shop/internal/core/domain/model/kernel"
	"shop/internal/pkg/guard"
)

var (
	ErrReconcileOwnershipCommandIsNotConstructed = errors.New(
		"ReconcileOwnershipCommand must be created via NewReconcileOwnershipCommand constructor",
	)
)

// ReconcileOwnershipCommand requests that unowned orders whose contact email
// matches the caller's registered email be linked to the caller. It is issued
// only when the caller's order list came back empty.
type ReconcileOwnershipCommand struct { //nolint:recvcheck //using for validation
	ownerID kernel.UUID

	guard guard.ConstructorGuard
}

// NewReconcileOwnershipCommand creates a command to reconcile order ownership
// for the given caller.
func NewReconcileOwnershipCommand(ownerID kernel.UUID) (ReconcileOwnershipCommand, error) {
	if err := ownerID.Validate(); err != nil {
		return ReconcileOwnershipCommand{}, err
	}

	return ReconcileOwnershipCommand{
		ownerID: ownerID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c ReconcileOwnershipCommand) Validate() error {
	return c.guard.Validate(ErrReconcileOwnershipCommandIsNotConstructed)
}

// OwnerID returns the caller whose orders are being reconciled.
func (c ReconcileOwnershipCommand) OwnerID() kernel.UUID {
	return c.ownerID
}
