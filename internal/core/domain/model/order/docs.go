// Package order provides the domain model for customer orders: the Order
// aggregate root plus its status enumerations and checkout value objects.
//
// Key business rules:
//   - Every order carries exactly one sequence-assigned tracking number,
//     assigned at creation and immutable afterwards.
//   - Order status is one of pending, in delivery, completed, cancelled;
//     payment status is one of unpaid, paid, refunded. Updates outside these
//     sets are rejected before any state changes.
//   - Orders may be placed anonymously; the owner link is backfilled later by
//     reconciliation and is idempotent once set.
//   - Contact details and line items are captured once at checkout and never
//     mutated through this subsystem.
package order
