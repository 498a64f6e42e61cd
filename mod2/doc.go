// Package mod2 implements the sparse mod-2 matrix column used throughout
// the reduction and persistence-update stages: a lazy max-heap of row
// indices where duplicate pushes of the same row cancel pairwise (mod-2
// addition), following the vector_heap representation the engine is
// ported from (see original_source/math/phat_mod).
//
// A Column is "finalized" when its entries are unique and sorted
// descending; Finalize (== Prune) forces that state, but an Add may leave
// the column lazily un-finalized again until the next Finalize/Prune or
// until PopMax/PeekMax resolve pending cancellations on demand.
package mod2
