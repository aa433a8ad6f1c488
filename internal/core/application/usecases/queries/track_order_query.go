package queries

import (
	"errors"

	"shop/internal/pkg/errs"
	"shop/internal/pkg/guard"
)

var (
	ErrTrackOrderQueryIsNotConstructed = errors.New(
		"TrackOrderQuery must be created via NewTrackOrderQuery constructor",
	)
)

// TrackOrderQuery retrieves a single order by its public tracking number.
// This is the anonymous tracking path: no credential, no ownership check.
type TrackOrderQuery struct {
	trackingNumber int64

	guard guard.ConstructorGuard
}

// NewTrackOrderQuery creates a query for the order with the given tracking
// number. Tracking numbers start at 1, so anything below that is rejected
// without touching storage.
func NewTrackOrderQuery(trackingNumber int64) (TrackOrderQuery, error) {
	if trackingNumber <= 0 {
		return TrackOrderQuery{}, errs.NewValueIsInvalidError("trackingNumber")
	}

	return TrackOrderQuery{
		trackingNumber: trackingNumber,
		guard:          guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q TrackOrderQuery) Validate() error {
	return q.guard.Validate(ErrTrackOrderQueryIsNotConstructed)
}

// TrackingNumber returns the requested tracking number.
func (q TrackOrderQuery) TrackingNumber() int64 {
	return q.trackingNumber
}
