package schedule

import "errors"

var (
	// ErrInvalidConfiguration reports a rotation or segment template that
	// violates a construction invariant. Wrapped errors carry the detail.
	ErrInvalidConfiguration = errors.New("invalid configuration")

	// ErrOutOfRange reports a requested date range whose start falls after
	// its end. Rejected before any partial result is produced.
	ErrOutOfRange = errors.New("date range out of order")
)
