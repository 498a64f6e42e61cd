package pathplan

import "sort"

// MST computes a minimum spanning tree of g (spec §4.3), a direct
// adaptation of prim_kruskal.Kruskal's union-find (path compression,
// union by rank) generalized from core.Graph vertex ids/weights to
// integer face ids and int64 anchor weights.
//
// Errors:
//  1. ErrDisconnected if g has no faces, or fewer than NumFaces-1 edges
//     survive union-find (the dual graph is not connected).
//
// Complexity: O(E log E + α(V)·E).
func MST(g *Graph) ([]Edge, int64, error) {
	if g.NumFaces == 0 {
		return nil, 0, ErrDisconnected
	}
	if g.NumFaces == 1 {
		return []Edge{}, 0, nil
	}

	edges := append([]Edge(nil), g.Edges...)
	sort.SliceStable(edges, func(i, j int) bool { return edges[i].Weight < edges[j].Weight })

	parent := make([]int, g.NumFaces)
	rank := make([]int, g.NumFaces)
	for i := range parent {
		parent[i] = i
	}

	var find func(int) int
	find = func(x int) int {
		for parent[x] != x {
			parent[x] = parent[parent[x]]
			x = parent[x]
		}

		return x
	}
	union := func(a, b int) {
		ra, rb := find(a), find(b)
		if ra == rb {
			return
		}
		if rank[ra] < rank[rb] {
			parent[ra] = rb
		} else {
			parent[rb] = ra
			if rank[ra] == rank[rb] {
				rank[ra]++
			}
		}
	}

	var mst []Edge
	var total int64
	for _, e := range edges {
		if find(e.FaceA) == find(e.FaceB) {
			continue
		}
		union(e.FaceA, e.FaceB)
		mst = append(mst, e)
		total += e.Weight
		if len(mst) == g.NumFaces-1 {
			break
		}
	}
	if len(mst) < g.NumFaces-1 {
		return nil, 0, ErrDisconnected
	}

	return mst, total, nil
}
