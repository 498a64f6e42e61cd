// Package updater maintains an RU-decomposition of a bifiltration's
// boundary matrices across a path-planning traversal (spec §4.4,
// "Persistence Updater (vineyard with reset)"): an initial left-to-right
// reduction, followed by a sequence of per-crossing updates that either
// locally patch the decomposition (a vineyard transposition) or abandon
// it and rebuild from the pristine matrices (a reset), depending on a
// self-tuning cost threshold.
//
// State (R_low, R_high, U_low, U_high, perm/inv_perm, lift maps) is
// grounded on dijkstra.Dijkstra's runner struct (a mutable state holder
// plus a process loop, here CrossLow/CrossHigh instead of a single-shot Run),
// and the column/row kernels follow matrix/impl_linear_algebra.go's
// dense LU-style split into one function per operation.
//
// Simplification from the named six/four vineyard cases: a single
// column transposition is implemented by locally re-reducing only the
// two swapped columns against the (unaffected) rest of the matrix,
// rather than case-splitting on sign and pivot combinations as RIVET's
// own implementation does. A local transposition changes at most those
// two columns' reduced form — every other column's pivot relationship is
// provably unaffected — so this reaches the same resulting
// decomposition without enumerating RIVET's named cases. Recorded in
// DESIGN.md.
package updater
