package timeseries

import "errors"

var (
	// ErrOutOfRange means a sparse point falls outside the dense domain.
	ErrOutOfRange = errors.New("date outside of series domain")

	// ErrDomainMismatch means columns being merged were laid out over
	// different calendar domains.
	ErrDomainMismatch = errors.New("series domains differ")

	// ErrInvariantViolation means a derived residual went negative, which
	// points to double counting upstream.
	ErrInvariantViolation = errors.New("residual invariant violated")
)
