package ports

import "context"

// OrderTrackingCounter is the counter name backing order tracking numbers.
const OrderTrackingCounter = "orderId"

// SequenceGenerator allocates monotonically increasing integers from named
// counters. Allocation is a single atomic step at the storage layer: under
// concurrent callers every allocation returns a distinct, strictly
// increasing value with no lost updates.
//
// The generator deliberately sits outside any unit of work. An allocation
// commits on its own, so a number allocated for an order whose save later
// fails stays consumed; the resulting gap in the sequence is accepted.
type SequenceGenerator interface {
	// NextValue atomically increments the named counter and returns the new
	// value, creating the counter (starting from 0) on first use.
	// Returns a StorageUnavailableError if the store cannot complete the
	// atomic operation; callers must fail their operation rather than
	// assign a fallback number.
	NextValue(ctx context.Context, name string) (int64, error)
}
