package engine

import "errors"

var (
	// ErrNilFIRep is returned when Compute is called with a nil FIRep.
	ErrNilFIRep = errors.New("engine: FIRep is nil")

	// ErrCanceled is returned when ctx is done before Compute finishes.
	// Any partial ComputationResult is discarded; the caller gets only
	// the error.
	ErrCanceled = errors.New("engine: computation canceled")

	// ErrNoRootFace is returned when an arrangement has no face at gap
	// slot 0 (should not happen for an arrangement built by
	// arrangement.Build, which always allocates the two outer gaps).
	ErrNoRootFace = errors.New("engine: arrangement has no root face")
)
