package pathplan_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tildedata/mphom/arrangement"
	"github.com/tildedata/mphom/bigrade"
	"github.com/tildedata/mphom/pathplan"
)

func TestBuildGraph_OneEdgePerCrossingAnchor(t *testing.T) {
	lines := []arrangement.Line{
		{X: bigrade.NewExactInt(2), Y: bigrade.NewExactInt(0)},
		{X: bigrade.NewExactInt(1), Y: bigrade.NewExactInt(-1)},
	}
	d, err := arrangement.Build(lines)
	require.NoError(t, err)

	g := pathplan.BuildGraph(d, func(line int) int64 { return 1 })
	assert.Equal(t, len(d.Faces), g.NumFaces)
	for _, e := range g.Edges {
		assert.GreaterOrEqual(t, e.Line, 0)
	}

	mst, _, err := pathplan.MST(g)
	require.NoError(t, err)
	assert.Len(t, mst, g.NumFaces-1)
}
