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

func intGrades(t *testing.T, n int) bigrade.Grades {
	t.Helper()
	vals := make([]bigrade.Exact, n)
	for i := range vals {
		vals[i] = bigrade.NewExactInt(int64(i))
	}
	g, err := bigrade.NewGrades(vals, false)
	require.NoError(t, err)

	return g
}

// twoGeneratorsOneRelation builds the FIRep for H_0 of two points joined by
// a single edge born at bigrade (1,1): C_h has the two points (dim 2),
// C_{h+1} has the one edge, C_{h-1} is trivial.
func twoGeneratorsOneRelation(t *testing.T) *firep.FIRep {
	t.Helper()
	xs, ys := intGrades(t, 2), intGrades(t, 2)

	dHigh := firep.NewMatrix(firep.Colex, 2, 2, 2)
	require.NoError(t, dHigh.AppendColumn(mod2.NewColumn(0, 1), bigrade.Bigrade{X: 1, Y: 1}))
	dHigh.BuildIndex()

	dLow := firep.NewMatrix(firep.Colex, 0, 2, 2)
	require.NoError(t, dLow.AppendColumn(mod2.NewColumn(), bigrade.Bigrade{X: 0, Y: 0}))
	require.NoError(t, dLow.AppendColumn(mod2.NewColumn(), bigrade.Bigrade{X: 0, Y: 0}))
	dLow.BuildIndex()

	fr, err := firep.NewFIRep(0, xs, ys, dHigh, dLow)
	require.NoError(t, err)
	require.NoError(t, fr.Validate())

	return fr
}

func TestCompute_TwoGeneratorsOneRelation(t *testing.T) {
	fr := twoGeneratorsOneRelation(t)
	res, err := presentation.Compute(fr)
	require.NoError(t, err)

	// Already minimal: two generators at (0,0), one relation at (1,1).
	require.Equal(t, 2, res.Presentation.RowBound())
	require.Equal(t, 1, res.Presentation.NCols())
	_, colGrade := res.Presentation.Column(0)
	assert.Equal(t, bigrade.Bigrade{X: 1, Y: 1}, colGrade)

	assert.Equal(t, 2, res.Xi0[0][0])
	assert.Equal(t, 1, res.Xi1[1][1])
	assert.Equal(t, 2, res.Hilbert[0][0])
	assert.Equal(t, 1, res.Hilbert[1][1])
}

// threeGeneratorsTwoIncomparableRelations builds H_0 of three points with
// two edges whose birth bigrades disagree in x/y order: edge 0-1 born at
// (1,0), edge 1-2 born at (0,1). D_high's columns are therefore sorted in
// Colex order ((1,0) before (0,1), since Colex compares y first) but NOT
// in Lex order ((0,1) would have to come first there) — exercising the
// Colex/Lex mismatch presentation.Compute must resolve before reducing.
func threeGeneratorsTwoIncomparableRelations(t *testing.T) *firep.FIRep {
	t.Helper()
	xs, ys := intGrades(t, 2), intGrades(t, 2)

	dHigh := firep.NewMatrix(firep.Colex, 3, 2, 2)
	require.NoError(t, dHigh.AppendColumn(mod2.NewColumn(0, 1), bigrade.Bigrade{X: 1, Y: 0}))
	require.NoError(t, dHigh.AppendColumn(mod2.NewColumn(1, 2), bigrade.Bigrade{X: 0, Y: 1}))
	dHigh.BuildIndex()

	dLow := firep.NewMatrix(firep.Colex, 0, 2, 2)
	for i := 0; i < 3; i++ {
		require.NoError(t, dLow.AppendColumn(mod2.NewColumn(), bigrade.Bigrade{X: 0, Y: 0}))
	}
	dLow.BuildIndex()

	fr, err := firep.NewFIRep(0, xs, ys, dHigh, dLow)
	require.NoError(t, err)
	require.NoError(t, fr.Validate())

	return fr
}

func TestCompute_ColexLexOrderMismatch(t *testing.T) {
	fr := threeGeneratorsTwoIncomparableRelations(t)
	res, err := presentation.Compute(fr)
	require.NoError(t, err)

	// Three independent points, two merges: rank 3 at (0,0), dropping to 2
	// wherever exactly one edge has appeared, and to 1 once both have.
	require.Equal(t, 3, res.Presentation.RowBound())
	require.Equal(t, 2, res.Presentation.NCols())

	_, g0 := res.Presentation.Column(0)
	_, g1 := res.Presentation.Column(1)
	assert.Equal(t, bigrade.Bigrade{X: 1, Y: 0}, g0)
	assert.Equal(t, bigrade.Bigrade{X: 0, Y: 1}, g1)

	assert.Equal(t, 3, res.Xi0[0][0])
	assert.Equal(t, 1, res.Xi1[1][0])
	assert.Equal(t, 1, res.Xi1[0][1])

	assert.Equal(t, 3, res.Hilbert[0][0])
	assert.Equal(t, 2, res.Hilbert[1][0])
	assert.Equal(t, 2, res.Hilbert[0][1])
	assert.Equal(t, 1, res.Hilbert[1][1])
}

func TestCompute_EmptyFIRepYieldsNoGenerators(t *testing.T) {
	xs, ys := intGrades(t, 1), intGrades(t, 1)
	dHigh := firep.NewMatrix(firep.Colex, 0, 1, 1)
	dHigh.BuildIndex()
	dLow := firep.NewMatrix(firep.Colex, 0, 1, 1)
	dLow.BuildIndex()

	fr, err := firep.NewFIRep(0, xs, ys, dHigh, dLow)
	require.NoError(t, err)
	require.NoError(t, fr.Validate())

	res, err := presentation.Compute(fr)
	require.NoError(t, err)
	assert.Equal(t, 0, res.Presentation.NCols())
	assert.Equal(t, 0, res.Presentation.RowBound())
	assert.Equal(t, 0, res.Hilbert[0][0])
}
