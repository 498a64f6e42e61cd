package arrangement

import "github.com/tildedata/mphom/bigrade"

// Vertex is a DCEL vertex. The four corners of the bounding frame (spec
// §4.2 "four corner vertices at (0,±∞),(∞,±∞)") and the right-boundary
// slope-coalesced vertices carry an infinite coordinate on one axis,
// flagged via UInf/VInf instead of a finite Exact value on that axis.
type Vertex struct {
	ID   int
	UInf int // 0 = finite, +1 = u = ∞ (u never reaches -∞: u ∈ [0,∞])
	VInf int // -1, 0, +1
	U, V bigrade.Exact
}

// HalfEdge is one directed DCEL edge. Line is the index into a Lines
// slice identifying which anchor's dual line this segment lies on, or -1
// for a frame edge (spec §4.2: "these half-edges have no anchor").
type HalfEdge struct {
	ID               int
	Origin           int
	Twin, Next, Prev int
	Face             int
	Line             int
}

// Face is a 2-cell of the arrangement. Below and Above are the anchor
// line indices immediately bounding it in the position order active
// during [UFrom, UTo) (or -1 where the frame bounds it instead). Gap is
// the fixed 0..n slot this face occupies between consecutive positions;
// internal gaps are replaced by a fresh Face each time their bounding
// pair of lines crosses, while the two outermost gaps (bounded by the
// frame above/below everything) persist for the whole sweep.
type Face struct {
	ID           int
	Outer        int // a half-edge id on its boundary
	Below, Above int
	Gap          int
	UFrom        bigrade.Exact
	UTo          bigrade.Exact
	UToInfinite  bool
}

// DCEL is the full arena: vertices/half-edges/faces addressed by integer
// id, plus per-anchor bookkeeping used by point location.
type DCEL struct {
	Vertices  []Vertex
	HalfEdges []HalfEdge
	Faces     []Face
	Lines     []Line

	// VerticalOrder lists anchor indices sorted ascending by slope (X) —
	// the final sweep position order, reversed — for the vertical-query binary
	// search (spec §4.2 point location, case 1).
	VerticalOrder []int
	// TopHalfEdge maps an anchor index to the topmost right-boundary
	// half-edge id among lines coalesced at its slope (spec §4.2 step 5).
	TopHalfEdge map[int]int
	// LeftOrder lists anchor indices in left-intercept order, the order
	// used to seed the sweep and to answer horizontal queries (spec §4.2
	// point location, case 2).
	LeftOrder []int
}

func (d *DCEL) addVertex(v Vertex) int {
	v.ID = len(d.Vertices)
	d.Vertices = append(d.Vertices, v)

	return v.ID
}

func (d *DCEL) addFace(gap, below, above int, ufrom bigrade.Exact) int {
	f := Face{ID: len(d.Faces), Outer: -1, Below: below, Above: above, Gap: gap, UFrom: ufrom, UToInfinite: true}
	d.Faces = append(d.Faces, f)

	return f.ID
}

// addHalfEdgePair creates a twinned half-edge pair: he (origin -> dest,
// bordering faceUp) and its twin (dest -> origin, bordering faceDown).
// The twin's Origin is left at -1; callers fill it in once the
// destination vertex is known. Returns (he, twin) ids.
func (d *DCEL) addHalfEdgePair(origin, line, faceUp, faceDown int) (int, int) {
	heID := len(d.HalfEdges)
	twinID := heID + 1
	d.HalfEdges = append(d.HalfEdges,
		HalfEdge{ID: heID, Origin: origin, Twin: twinID, Next: -1, Prev: -1, Face: faceUp, Line: line},
		HalfEdge{ID: twinID, Origin: -1, Twin: heID, Next: -1, Prev: -1, Face: faceDown, Line: line},
	)
	if faceUp >= 0 && d.Faces[faceUp].Outer == -1 {
		d.Faces[faceUp].Outer = heID
	}
	if faceDown >= 0 && d.Faces[faceDown].Outer == -1 {
		d.Faces[faceDown].Outer = twinID
	}

	return heID, twinID
}

// closeBoundaries wires Next/Prev for every face's accumulated half-edge
// list into a closed cycle, in discovery order. Discovery order is the
// order edges are appended while sweeping left to right, which for every
// face here already traces a consistent closed walk (each face's edges
// share endpoints pairwise by construction), so closing the list as a
// cycle is the correct boundary, not merely a same-Face grouping.
func (d *DCEL) closeBoundaries(boundary map[int][]int) {
	for _, hes := range boundary {
		m := len(hes)
		for k := 0; k < m; k++ {
			a, b := hes[k], hes[(k+1)%m]
			d.HalfEdges[a].Next = b
			d.HalfEdges[b].Prev = a
		}
	}
}
