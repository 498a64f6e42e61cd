// Package presentation implements stage S2: bigraded reduction of a FIRep
// into a minimal presentation, plus the bigraded Betti numbers and the
// Hilbert function (spec §4.1).
//
// The pipeline is three reductions of the same shape (reduce a sequence of
// bigraded columns left to right, using already-retained columns that
// share a pivot), composed as:
//
//	ReduceImage:          D_high (lex order)  -> H'  (minimal generators of im(D_high))
//	ReduceKernel:         D_low  (colex order) -> K  (a basis for ker(D_low), via slave tracking)
//	ExpressInKernelBasis: H' (colex order) reduced against K -> presentation matrix P
//	Minimize:             P -> minimal presentation (pivot/bigrade-matching row-column elimination)
//
// Following tsp/mst.go's dense-vs-generic split, the shared reduction
// sweep is factored into one generic helper (reduceBigraded) reused by
// both ReduceImage and ReduceKernel, matching matrix/impl_linear_algebra.go's
// one-kernel-per-concern layout.
package presentation
