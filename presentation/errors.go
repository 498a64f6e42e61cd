package presentation

import "errors"

// ErrNotInKernelSpan is returned when a column of H' cannot be fully
// reduced against K: it would mean D_high's image isn't actually contained
// in D_low's kernel, i.e. the FIRep's D_low*D_high == 0 invariant was
// violated despite FIRep.Validate passing (Validate checks that invariant;
// NewFIRep alone checks only the matrix dimensions and order).
var ErrNotInKernelSpan = errors.New("presentation: column not in kernel span")

// ErrRowOutOfRange is returned when a minimization row lookup falls outside
// the supplied row-grade vector.
var ErrRowOutOfRange = errors.New("presentation: row index out of range")

// ErrRowReappeared is returned when minimization's single left-to-right
// elimination pass leaves a deleted row referenced by a surviving column —
// an internal consistency failure, not an expected input condition.
var ErrRowReappeared = errors.New("presentation: deleted row reappeared during reindex")
