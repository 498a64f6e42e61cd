package pathplan

import "github.com/tildedata/mphom/arrangement"

// Edge is one internal half-edge pair of an arrangement, viewed as an
// undirected dual-graph edge between the two faces it separates.
// HalfEdgeA borders FaceA, HalfEdgeB (its twin) borders FaceB: crossing
// from FaceA to FaceB means traversing HalfEdgeA's twin, i.e. HalfEdgeB.
type Edge struct {
	ID                   int
	FaceA, FaceB         int
	HalfEdgeA, HalfEdgeB int
	Line                 int
	Weight               int64
}

// Graph is the dual multigraph over an arrangement's faces (spec §4.3).
type Graph struct {
	NumFaces int
	Edges    []Edge
}

// BuildGraph builds the dual multigraph from an arrangement's DCEL.
// weight estimates the transposition cost of crossing a given anchor
// line (spec §4.4's "dry run" estimate); frame half-edges (Line == -1)
// never separate two distinct internal faces usable for path planning in
// the same way and are skipped.
func BuildGraph(d *arrangement.DCEL, weight func(line int) int64) *Graph {
	g := &Graph{NumFaces: len(d.Faces)}
	seen := make(map[int]bool, len(d.HalfEdges))
	for _, he := range d.HalfEdges {
		if he.Line < 0 || seen[he.ID] {
			continue
		}
		twin := d.HalfEdges[he.Twin]
		seen[he.ID] = true
		seen[twin.ID] = true
		if he.Face < 0 || twin.Face < 0 {
			continue
		}
		g.Edges = append(g.Edges, Edge{
			ID: len(g.Edges), FaceA: he.Face, FaceB: twin.Face,
			HalfEdgeA: he.ID, HalfEdgeB: twin.ID,
			Line: he.Line, Weight: weight(he.Line),
		})
	}

	return g
}
