package pathplan

import "sort"

// Step is one element of a path-planning traversal (spec §4.3): Forward
// when crossing an anchor into a not-yet-visited face, Backtrack when
// re-crossing to return to an ancestor face already visited.
type Step struct {
	HalfEdge  int
	Backtrack bool
}

type neighbor struct {
	to, via, back int
	weight        int64
}

// Traverse walks the MST depth-first, rooted at root, visiting each
// node's children in decreasing subtree-weight order (spec §4.3:
// "reduces backtracking"). Every MST edge is crossed at most twice (once
// forward, once back), so len(result) <= 2*len(mst) <= 2*numFaces-2.
//
// Errors:
//  1. ErrRootOutOfRange if root is not in [0, numFaces).
func Traverse(mst []Edge, numFaces, root int) ([]Step, error) {
	if root < 0 || root >= numFaces {
		return nil, ErrRootOutOfRange
	}

	adj := make(map[int][]neighbor, numFaces)
	for _, e := range mst {
		adj[e.FaceA] = append(adj[e.FaceA], neighbor{to: e.FaceB, via: e.HalfEdgeA, back: e.HalfEdgeB, weight: e.Weight})
		adj[e.FaceB] = append(adj[e.FaceB], neighbor{to: e.FaceA, via: e.HalfEdgeB, back: e.HalfEdgeA, weight: e.Weight})
	}

	subtreeWeight := make(map[int]int64, numFaces)
	var computeWeight func(face, parent int) int64
	computeWeight = func(face, parent int) int64 {
		var total int64
		for _, nb := range adj[face] {
			if nb.to == parent {
				continue
			}
			total += nb.weight + computeWeight(nb.to, face)
		}
		subtreeWeight[face] = total

		return total
	}
	computeWeight(root, -1)

	var steps []Step
	var visit func(face, parent int)
	visit = func(face, parent int) {
		children := append([]neighbor(nil), adj[face]...)
		sort.SliceStable(children, func(i, j int) bool {
			return subtreeWeight[children[i].to] > subtreeWeight[children[j].to]
		})
		for _, nb := range children {
			if nb.to == parent {
				continue
			}
			steps = append(steps, Step{HalfEdge: nb.via})
			visit(nb.to, face)
			steps = append(steps, Step{HalfEdge: nb.back, Backtrack: true})
		}
	}
	visit(root, -1)

	return steps, nil
}
