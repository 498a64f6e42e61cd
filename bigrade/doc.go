// Package bigrade provides the exact-arithmetic foundation for the rest of
// the engine: arbitrary-precision rationals with a float64 fast path, and
// the bigrade (pair of grade-vector indices) used throughout the pipeline
// to tag matrix columns, template points and anchors.
//
// Exact wraps math/big.Rat and keeps a float64 "shadow" alongside it so
// that hot comparisons (the Bentley–Ottmann sweep's line ordering and
// crossing tests) can run in double precision and only fall back to the exact
// rational when the doubles are suspiciously close. See Exact.Cmp.
//
// Bigrade is a pair of nonnegative indices (X, Y) into two sorted Grades
// vectors, never the coordinate values themselves; Grades.At resolves an
// index to its Exact coordinate. Three partial/total orders are defined
// over Bigrade: Product (componentwise, a true partial order), Colex and
// Lex (both total orders used to sequence matrix columns).
package bigrade
