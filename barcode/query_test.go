package barcode_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tildedata/mphom/barcode"
	"github.com/tildedata/mphom/bigrade"
	"github.com/tildedata/mphom/template"
	"github.com/tildedata/mphom/updater"
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

func TestQuery_ProjectsAndSuppressesZeroLength(t *testing.T) {
	xg := intGrades(t, 2)
	yg := intGrades(t, 1)
	points := []template.Point{
		{Grade: bigrade.Bigrade{X: 0, Y: 0}},
		{Grade: bigrade.Bigrade{X: 1, Y: 0}},
	}
	bars := []updater.Bar{
		{A: 0, B: 1},
		{A: 0, BInfinite: true},
		{A: 0, B: 0},
	}

	out, err := barcode.Query(bars, points, xg, yg, 0, 5)
	require.NoError(t, err)
	require.Len(t, out, 2)
	assert.Equal(t, barcode.Bar{Birth: 0, Death: 1}, out[0])
	assert.Equal(t, float64(0), out[1].Birth)
	assert.True(t, out[1].Infinite)
	assert.True(t, math.IsInf(out[1].Death, 1))
}

func TestQuery_RejectsOutOfRangeTheta(t *testing.T) {
	_, err := barcode.Query(nil, nil, bigrade.Grades{}, bigrade.Grades{}, 91, 0)
	assert.ErrorIs(t, err, barcode.ErrBadQuery)
}
