package presentation_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tildedata/mphom/bigrade"
	"github.com/tildedata/mphom/firep"
	"github.com/tildedata/mphom/mod2"
	"github.com/tildedata/mphom/presentation"
)

func TestMinimize_EliminatesMatchingPivotAndPropagates(t *testing.T) {
	// Row 0 born at (0,0); column 0 also at (0,0) with pivot row 0: a
	// same-bigrade relation, eliminated. Column 1 (at (1,0)) also touches
	// row 0, so it absorbs column 0 and ends up the zero column.
	p := firep.NewMatrix(firep.Colex, 1, 2, 2)
	require.NoError(t, p.AppendColumn(mod2.NewColumn(0), bigrade.Bigrade{X: 0, Y: 0}))
	require.NoError(t, p.AppendColumn(mod2.NewColumn(0), bigrade.Bigrade{X: 1, Y: 0}))
	p.BuildIndex()

	rowGrades := []bigrade.Bigrade{{X: 0, Y: 0}}
	minP, keptRows, err := presentation.Minimize(p, rowGrades)
	require.NoError(t, err)

	assert.Empty(t, keptRows)
	require.Equal(t, 1, minP.NCols())
	col, g := minP.Column(0)
	assert.Equal(t, bigrade.Bigrade{X: 1, Y: 0}, g)
	assert.Empty(t, col.Rows())
}

func TestMinimize_NoEligibleEliminationLeavesPresentationUnchanged(t *testing.T) {
	p := firep.NewMatrix(firep.Colex, 2, 2, 2)
	require.NoError(t, p.AppendColumn(mod2.NewColumn(0, 1), bigrade.Bigrade{X: 1, Y: 1}))
	p.BuildIndex()

	rowGrades := []bigrade.Bigrade{{X: 0, Y: 0}, {X: 0, Y: 0}}
	minP, keptRows, err := presentation.Minimize(p, rowGrades)
	require.NoError(t, err)

	assert.Equal(t, rowGrades, keptRows)
	require.Equal(t, 1, minP.NCols())
	col, _ := minP.Column(0)
	assert.Equal(t, []int{1, 0}, col.Rows())
}
