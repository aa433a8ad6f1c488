package order

import (
	"errors"
	"fmt"
	"time"

	"shop/internal/core/domain/model/kernel"
	"shop/internal/pkg/errs"
	"shop/internal/pkg/guard"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not
	// created through NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder constructor")

	// ErrOrderAlreadyOwned is returned when linking an owner onto an order
	// that already belongs to a different user.
	ErrOrderAlreadyOwned = errors.New("order is already linked to another owner")
)

// Order is the aggregate root of the order subsystem. It represents a
// customer purchase from checkout through fulfillment.
//
// Order maintains these invariants:
//   - Exactly one tracking number, assigned at creation and never changed.
//     The number comes from the named sequence counter, so it is globally
//     unique and monotonically increasing across all orders.
//   - Status and payment status always belong to their allowed sets.
//   - The owner link is optional (anonymous checkout) and, once set, is
//     only ever set again to the same identity (idempotent backfill).
//   - Contact details and line items are immutable after creation.
//
// Orders can only be created through NewOrder (new purchases) or
// RestoreOrder (reconstruction from persistence).
type Order struct {
	// id is the storage identity of the order, used by the admin update
	// endpoint. The human-facing identifier is trackingNumber.
	id kernel.UUID

	// trackingNumber is the sequence-assigned, human-facing order number.
	trackingNumber int64

	// ownerID links the order to a registered user; nil for anonymous orders.
	ownerID *kernel.UUID

	contact       Contact
	items         []LineItem
	totalPrice    float64
	paymentMethod string

	paymentStatus PaymentStatus
	status        Status

	// createdAt and updatedAt are system-managed; NewOrder leaves them zero
	// and the persistence layer fills them in.
	createdAt time.Time
	updatedAt time.Time

	guard guard.ConstructorGuard
}

// NewOrder creates an order for a fresh purchase. The tracking number must
// already have been allocated from the sequence counter; NewOrder only
// checks that one is present and positive. ownerID may be nil for anonymous
// checkout. The order starts as pending/unpaid.
//
// Contact fields and line items are accepted as-is: payload-shape validation
// is the HTTP layer's responsibility and free-form values are part of the
// data model.
func NewOrder(
	id kernel.UUID,
	trackingNumber int64,
	ownerID *kernel.UUID,
	contact Contact,
	items []LineItem,
	totalPrice float64,
	paymentMethod string,
) (*Order, error) {
	o := &Order{
		contact:       contact,
		items:         items,
		totalPrice:    totalPrice,
		paymentMethod: paymentMethod,
		paymentStatus: PaymentUnpaid,
		status:        StatusPending,
		guard:         guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		o.setID(id),
		o.setTrackingNumber(trackingNumber),
		o.setOwner(ownerID),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOrder reconstructs an order from persistence. Unlike NewOrder it
// accepts the persisted statuses and timestamps, validating that the stored
// values still belong to their allowed sets.
func RestoreOrder(
	id kernel.UUID,
	trackingNumber int64,
	ownerID *kernel.UUID,
	contact Contact,
	items []LineItem,
	totalPrice float64,
	paymentMethod string,
	paymentStatus PaymentStatus,
	status Status,
	createdAt time.Time,
	updatedAt time.Time,
) (*Order, error) {
	o, err := NewOrder(id, trackingNumber, ownerID, contact, items, totalPrice, paymentMethod)
	if err != nil {
		return nil, err
	}

	if err = errors.Join(paymentStatus.Validate(), status.Validate()); err != nil {
		return nil, err
	}

	o.paymentStatus = paymentStatus
	o.status = status
	o.createdAt = createdAt
	o.updatedAt = updatedAt
	return o, nil
}

// Validate ensures the Order instance was properly constructed.
func (o *Order) Validate() error {
	if o == nil {
		return ErrOrderIsNotConstructed
	}
	return o.guard.Validate(ErrOrderIsNotConstructed)
}

// IsEqual compares two orders by their storage identity.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the storage identity of the order.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// TrackingNumber returns the human-facing order number.
func (o *Order) TrackingNumber() int64 {
	return o.trackingNumber
}

// Owner returns the linked user identity, or nil for an anonymous order.
func (o *Order) Owner() *kernel.UUID {
	return o.ownerID
}

// Contact returns the delivery contact captured at checkout.
func (o *Order) Contact() Contact {
	return o.contact
}

// Items returns the order's line items.
func (o *Order) Items() []LineItem {
	return o.items
}

// TotalPrice returns the order total.
func (o *Order) TotalPrice() float64 {
	return o.totalPrice
}

// PaymentMethod returns the free-form payment method text.
func (o *Order) PaymentMethod() string {
	return o.paymentMethod
}

// PaymentStatus returns the current payment status.
func (o *Order) PaymentStatus() PaymentStatus {
	return o.paymentStatus
}

// Status returns the current fulfillment status.
func (o *Order) Status() Status {
	return o.status
}

// CreatedAt returns the creation timestamp (zero until persisted).
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// UpdatedAt returns the last modification timestamp (zero until persisted).
func (o *Order) UpdatedAt() time.Time {
	return o.updatedAt
}

// ChangeStatus moves the order to a new fulfillment status.
// The value is validated against the allowed set before the order is
// touched, so an invalid status leaves the aggregate unmodified.
func (o *Order) ChangeStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}

	o.status = status
	return nil
}

// ChangePaymentStatus moves the order to a new payment status.
// Validation mirrors ChangeStatus.
func (o *Order) ChangePaymentStatus(status PaymentStatus) error {
	if err := status.Validate(); err != nil {
		return err
	}

	o.paymentStatus = status
	return nil
}

// LinkOwner backfills the owner identity onto an order placed anonymously.
// Linking is idempotent: relinking the same owner is a no-op. Linking a
// different owner onto an already-owned order is rejected.
func (o *Order) LinkOwner(ownerID kernel.UUID) error {
	if err := ownerID.Validate(); err != nil {
		return err
	}

	if o.ownerID != nil {
		if o.ownerID.IsEqual(ownerID) {
			return nil
		}
		return ErrOrderAlreadyOwned
	}

	o.ownerID = &ownerID
	return nil
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setTrackingNumber(trackingNumber int64) error {
	if trackingNumber <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("trackingNumber",
			fmt.Errorf("%d is not a sequence-assigned tracking number", trackingNumber))
	}
	o.trackingNumber = trackingNumber
	return nil
}

func (o *Order) setOwner(ownerID *kernel.UUID) error {
	if ownerID == nil {
		return nil
	}
	if err := ownerID.Validate(); err != nil {
		return err
	}
	o.ownerID = ownerID
	return nil
}
