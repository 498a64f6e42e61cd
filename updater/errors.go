package updater

import "errors"

var (
	// ErrNotAdjacent is returned by transposeAdjacent when position j has
	// no successor j+1 in the matrix to swap with — a vineyard
	// transposition is only ever local (spec §4.4: "swap the two adjacent
	// simplices").
	ErrNotAdjacent = errors.New("updater: columns are not adjacent in the current order")

	// ErrDimensionMismatch is returned when a pristine matrix handed to
	// NewState has a lift map of the wrong length.
	ErrDimensionMismatch = errors.New("updater: lift map length does not match matrix column count")

	// ErrInvariantViolation is returned by Verify (when DebugVerify is set)
	// if D != R*U — a bug in the update logic, not a data error.
	ErrInvariantViolation = errors.New("updater: RU decomposition invariant violated")
)
