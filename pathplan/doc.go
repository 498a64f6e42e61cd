// Package pathplan builds the dual multigraph over an arrangement's
// faces (spec §4.3): one node per face, one edge per internal
// half-edge pair weighted by anchor weight, a minimum spanning tree over
// it, and a traversal order that crosses every MST edge at most twice.
//
// MST construction is a direct adaptation of
// prim_kruskal.Kruskal's union-find (generalized from core.Graph's
// string vertex ids and int64 edge weights to integer face ids);
// traversal ordering follows dfs.DFS's recursive-with-hooks shape.
// Anchor weight is supplied by the caller through BuildGraph's weight
// callback rather than computed here; engine passes a constant weight of
// 1 per edge.
package pathplan
