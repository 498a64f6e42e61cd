// Package arrangement builds the planar line arrangement dual to a set of
// template points (spec §4.2): a doubly-connected edge list (DCEL) swept
// out by a Bentley-Ottmann left-to-right sweep over exact-rational dual
// lines, plus the point-location queries later stages answer face lookups
// with.
//
// Representation follows the teacher's arena-style indexed graphs
// (gridgraph's id-cross-referenced cells, dfs/cycle.go's boundary-closure
// checks): vertices, half-edges, and faces are arena slices addressed by
// integer id, never by pointer, so the cyclic twin/next/prev relationship
// never needs a reference cycle.
//
// Simplification from the general case: the sweep assumes general
// position (no three dual lines concurrent at a point) except where an
// event queue pop discovers an exact tie, which is handled by merging
// adjacent events into one wider reversal block — the natural extension of
// the pairwise case, not a separate code path.
//
// Event ordering uses bigrade.Exact.Cmp directly: its shadow-first,
// exact-fallback-on-proximity policy already is the comparator precision
// policy the sweep needs, so no separate exact-only comparator is
// introduced here.
package arrangement
