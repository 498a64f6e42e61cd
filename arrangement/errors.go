package arrangement

import "errors"

var (
	// ErrNoLines reports an empty line set. Build does not return it: an
	// empty line set yields the degenerate single-face arrangement.
	ErrNoLines = errors.New("arrangement: no lines to arrange")

	// ErrBadBoundary signals a face whose accumulated half-edges could not
	// be closed into a cycle — a programmer-error invariant violation, not
	// a condition callers can trigger from valid inputs.
	ErrBadBoundary = errors.New("arrangement: inconsistent DCEL face boundary")
)
