// Package barcode rescales a face's barcode template into numeric
// birth/death pairs for one query line (spec §4.5): template points
// carry only grade indices, so every bar must be projected through the
// query's angle/offset parameterisation against the real grade
// coordinates before it means anything to a caller.
//
// The projection arithmetic is modeled on dtw.DTW's numbered-step,
// precompute-constants-then-loop style (the teacher's closest numeric
// algorithm to a per-point geometric transform); this package is the
// only one in the module that works in plain float64 rather than
// bigrade.Exact, since §4.5 queries are themselves given as float64
// angle/offset and the result is an approximate numeric barcode, not an
// exact structural computation.
package barcode
