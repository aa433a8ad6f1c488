package order

import (
	"fmt"

	"shop/internal/pkg/errs"
)

// PaymentStatus represents the payment state of an order.
// Like Status it is a closed string-backed set validated before any update
// reaches storage.
type PaymentStatus string

const (
	// PaymentUnpaid is the initial payment status of every new order.
	PaymentUnpaid PaymentStatus = "unpaid"

	// PaymentPaid indicates payment has been received.
	PaymentPaid PaymentStatus = "paid"

	// PaymentRefunded indicates a received payment was returned.
	PaymentRefunded PaymentStatus = "refunded"
)

// getValidPaymentStatuses returns the allowed payment statuses.
func getValidPaymentStatuses() map[PaymentStatus]struct{} {
	return map[PaymentStatus]struct{}{
		PaymentUnpaid:   {},
		PaymentPaid:     {},
		PaymentRefunded: {},
	}
}

// Validate checks that the payment status belongs to the allowed set.
func (s PaymentStatus) Validate() error {
	if _, ok := getValidPaymentStatuses()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("paymentStatus",
			fmt.Errorf("%q is not a valid payment status", string(s)))
	}
	return nil
}

// String implements fmt.Stringer.
func (s PaymentStatus) String() string {
	return string(s)
}
