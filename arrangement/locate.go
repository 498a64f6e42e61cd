package arrangement

import (
	"sort"

	"github.com/tildedata/mphom/bigrade"
)

// LocateVertical answers a vertical query line (slope = 90° in the
// original plane, spec §4.2 point location case 1) by binary search over
// the slope-sorted anchor order (the right-boundary cross section
// recorded at sweep step 5), returning the face whose gap holds exactly
// the anchors steeper than slope above it.
func (d *DCEL) LocateVertical(slope bigrade.Exact) int {
	idx := sort.Search(len(d.VerticalOrder), func(i int) bool {
		return !d.Lines[d.VerticalOrder[i]].X.Less(slope) // first i with X_i >= slope
	})
	gap := len(d.VerticalOrder) - idx

	return d.faceAtGapInfinity(gap)
}

// LocateHorizontal answers a horizontal query line (spec §4.2 point
// location case 2) by binary search over the left-intercept order
// (v(0) = -Y, descending) for the first anchor whose left-intercept is
// < offset; that index is the number of anchors with left-intercept ≥
// offset, and the answer is the face in that gap slot at u = 0.
func (d *DCEL) LocateHorizontal(offset bigrade.Exact) int {
	idx := sort.Search(len(d.LeftOrder), func(i int) bool {
		return d.Lines[d.LeftOrder[i]].Y.Neg().Less(offset) // first i failing left-intercept >= offset
	})

	return d.faceAtGapU(idx, bigrade.NewExactInt(0))
}

// Locate answers a general (u,v) dual-plane query (spec §4.2 point
// location case 3) by evaluating every anchor line at u and counting how
// many lie above v (At(u) > v); that count is exactly the current
// position-order rank of the query among the lines at parameter u.
// Evaluate-and-count reaches the same face identity the spec's literal
// "walk right, cross edges" procedure would, without re-walking the DCEL
// from the left boundary on every query.
func (d *DCEL) Locate(u, v bigrade.Exact) int {
	rank := 0
	for _, l := range d.Lines {
		if v.Less(l.At(u)) {
			rank++
		}
	}

	return d.faceAtGapU(rank, u)
}

// faceAtGapU returns the face occupying gap slot gap at sweep parameter
// u, i.e. the one Face among the (possibly several, over time) faces
// that slot held whose [UFrom, UTo) interval contains u.
func (d *DCEL) faceAtGapU(gap int, u bigrade.Exact) int {
	for _, f := range d.Faces {
		if f.Gap != gap || u.Less(f.UFrom) {
			continue
		}
		if f.UToInfinite || u.Less(f.UTo) {
			return f.ID
		}
	}

	return -1
}

// faceAtGapInfinity returns the still-open (never-closed) face currently
// occupying gap slot gap, used by LocateVertical which answers from the
// right-boundary (u = ∞) cross section rather than a finite u.
func (d *DCEL) faceAtGapInfinity(gap int) int {
	for _, f := range d.Faces {
		if f.Gap == gap && f.UToInfinite {
			return f.ID
		}
	}

	return -1
}
