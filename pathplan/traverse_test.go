package pathplan_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tildedata/mphom/pathplan"
)

// threeFacePath builds a 3-node path MST: face 0 -- (weight 5) -- face 1
// -- (weight 3) -- face 2.
func threeFacePath() []pathplan.Edge {
	return []pathplan.Edge{
		{ID: 0, FaceA: 0, FaceB: 1, HalfEdgeA: 10, HalfEdgeB: 11, Weight: 5},
		{ID: 1, FaceA: 1, FaceB: 2, HalfEdgeA: 20, HalfEdgeB: 21, Weight: 3},
	}
}

func TestTraverse_PathRootedAtEnd(t *testing.T) {
	steps, err := pathplan.Traverse(threeFacePath(), 3, 0)
	require.NoError(t, err)

	// Depth-first from 0: cross into 1 (heavier subtree explored first is
	// moot here, there's only one child), then into 2, then backtrack
	// twice to return to the root.
	assert.Equal(t, []pathplan.Step{
		{HalfEdge: 10},
		{HalfEdge: 20},
		{HalfEdge: 21, Backtrack: true},
		{HalfEdge: 11, Backtrack: true},
	}, steps)
}

func TestTraverse_VisitsHeavierSubtreeFirst(t *testing.T) {
	// Root (face 0) has two children: face 1 (a leaf, weight 1) and face
	// 2 (weight 1, but itself has a child face 3 adding weight 10) — the
	// heavier subtree through face 2 should be visited first.
	mst := []pathplan.Edge{
		{ID: 0, FaceA: 0, FaceB: 1, HalfEdgeA: 1, HalfEdgeB: 2, Weight: 1},
		{ID: 1, FaceA: 0, FaceB: 2, HalfEdgeA: 3, HalfEdgeB: 4, Weight: 1},
		{ID: 2, FaceA: 2, FaceB: 3, HalfEdgeA: 5, HalfEdgeB: 6, Weight: 10},
	}
	steps, err := pathplan.Traverse(mst, 4, 0)
	require.NoError(t, err)

	require.Len(t, steps, 6)
	assert.Equal(t, 3, steps[0].HalfEdge) // into face 2 (heavier subtree) first
	assert.Equal(t, 5, steps[1].HalfEdge) // into face 3
}

func TestTraverse_RootOutOfRange(t *testing.T) {
	_, err := pathplan.Traverse(nil, 3, 5)
	assert.ErrorIs(t, err, pathplan.ErrRootOutOfRange)
}
