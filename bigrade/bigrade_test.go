package bigrade_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tildedata/mphom/bigrade"
)

func TestOrders(t *testing.T) {
	a := bigrade.Bigrade{X: 0, Y: 1}
	b := bigrade.Bigrade{X: 1, Y: 0}

	// strongly incomparable under product order
	assert.True(t, bigrade.Incomparable(a, b))
	assert.False(t, bigrade.LessEqualProduct(a, b))
	assert.False(t, bigrade.LessEqualProduct(b, a))
	assert.Equal(t, bigrade.Bigrade{X: 1, Y: 1}, bigrade.Join(a, b))

	c := bigrade.Bigrade{X: 0, Y: 0}
	assert.True(t, bigrade.StrictlyLessProduct(c, a))
	assert.True(t, bigrade.LessEqualProduct(c, a))

	// colex compares Y first
	assert.True(t, bigrade.LessColex(b, a)) // b.Y=0 < a.Y=1
	// lex compares X first
	assert.True(t, bigrade.LessLex(a, b)) // a.X=0 < b.X=1
}

func TestSortColexLex(t *testing.T) {
	bs := []bigrade.Bigrade{{X: 1, Y: 0}, {X: 0, Y: 1}, {X: 0, Y: 0}}
	colex := append([]bigrade.Bigrade(nil), bs...)
	bigrade.SortColex(colex)
	assert.Equal(t, []bigrade.Bigrade{{0, 0}, {1, 0}, {0, 1}}, colex)

	lex := append([]bigrade.Bigrade(nil), bs...)
	bigrade.SortLex(lex)
	assert.Equal(t, []bigrade.Bigrade{{0, 0}, {0, 1}, {1, 0}}, lex)
}

func TestGrades(t *testing.T) {
	vals := []bigrade.Exact{bigrade.NewExactInt(0), bigrade.NewExactInt(1), bigrade.NewExactInt(2)}
	g, err := bigrade.NewGrades(vals, false)
	require.NoError(t, err)
	assert.Equal(t, 3, g.Len())

	v, err := g.At(1)
	require.NoError(t, err)
	assert.Equal(t, "1", v.String())

	_, err = g.At(5)
	assert.ErrorIs(t, err, bigrade.ErrIndexOutOfRange)

	rg, err := NewReversed(vals)
	require.NoError(t, err)
	rv, err := rg.At(1)
	require.NoError(t, err)
	assert.Equal(t, "-1", rv.String())
}

func NewReversed(vals []bigrade.Exact) (bigrade.Grades, error) {
	return bigrade.NewGrades(vals, true)
}

func TestGrades_Errors(t *testing.T) {
	_, err := bigrade.NewGrades(nil, false)
	assert.ErrorIs(t, err, bigrade.ErrEmptyGrades)

	unsorted := []bigrade.Exact{bigrade.NewExactInt(1), bigrade.NewExactInt(0)}
	_, err = bigrade.NewGrades(unsorted, false)
	assert.ErrorIs(t, err, bigrade.ErrNotSorted)
}
