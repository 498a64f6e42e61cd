package bigrade

import "errors"

// Sentinel errors for bigrade package operations.
var (
	// ErrIndexOutOfRange indicates a bigrade index exceeds its grade vector's size.
	ErrIndexOutOfRange = errors.New("bigrade: index out of range")

	// ErrNotSorted indicates a Grades vector was not strictly ascending.
	ErrNotSorted = errors.New("bigrade: grade vector is not strictly ascending")

	// ErrEmptyGrades indicates an operation requires at least one grade value.
	ErrEmptyGrades = errors.New("bigrade: grade vector is empty")
)
