package firep

import "errors"

// Sentinel errors for firep package operations. All are Input-kind
// failures per spec §7: malformed matrices, inconsistent grade vectors,
// out-of-range bigrades, or a FIRep that fails D_low*D_high=0.
var (
	// ErrRowOutOfRange indicates a column entry refers to a row beyond the
	// matrix's declared row bound.
	ErrRowOutOfRange = errors.New("firep: row index out of declared bound")

	// ErrColumnsUnsorted indicates columns were appended out of order for
	// the matrix's declared sort order (colex or lex).
	ErrColumnsUnsorted = errors.New("firep: columns not sorted in declared order")

	// ErrProductNonZero indicates D_low * D_high != 0, i.e. the FIRep is not
	// a valid chain complex fragment.
	ErrProductNonZero = errors.New("firep: D_low * D_high is not zero")

	// ErrDimensionMismatch indicates D_high's row bound (its codomain
	// dimension) does not match D_low's column count (its domain dimension).
	ErrDimensionMismatch = errors.New("firep: D_high codomain size does not match D_low domain size")
)
