package order

import (
	"fmt"

	"shop/internal/pkg/errs"
)

// Status represents the fulfillment state of an order.
//
// Statuses form a small, closed set; the update operation accepts any member
// of the set (an operator may move an order backwards, e.g. from "in
// delivery" to "pending"), but values outside the set are rejected before
// storage is touched.
//
// Status is stored and transported as its string value, so the constants
// double as wire and database representations.
type Status string

const (
	// StatusPending is the initial status of every new order.
	StatusPending Status = "pending"

	// StatusInDelivery indicates the order has been handed to a carrier.
	StatusInDelivery Status = "in delivery"

	// StatusCompleted indicates the order was delivered.
	StatusCompleted Status = "completed"

	// StatusCancelled indicates the order will not be fulfilled.
	StatusCancelled Status = "cancelled"
)

// getValidStatuses returns the allowed order statuses.
func getValidStatuses() map[Status]struct{} {
	return map[Status]struct{}{
		StatusPending:    {},
		StatusInDelivery: {},
		StatusCompleted:  {},
		StatusCancelled:  {},
	}
}

// Validate checks that the status belongs to the allowed set.
// Returns a ValueIsInvalidError for anything else, including the empty
// string.
func (s Status) Validate() error {
	if _, ok := getValidStatuses()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("orderStatus",
			fmt.Errorf("%q is not a valid order status", string(s)))
	}
	return nil
}

// String implements fmt.Stringer.
func (s Status) String() string {
	return string(s)
}
