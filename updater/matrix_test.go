package updater_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tildedata/mphom/mod2"
	"github.com/tildedata/mphom/updater"
)

// TestReduce_AddsEarlierSharedPivotColumns hand-verifies a 3-column
// boundary matrix where column 2 needs two cascading adds: D = [{0},
// {0,1}, {1}]. Column 1's pivot is 1 (no collision with column 0's
// pivot 0), so it reduces to itself. Column 2's pivot 1 collides with
// column 1, reducing to {0}; that in turn collides with column 0's
// pivot 0, reducing to empty.
func TestReduce_AddsEarlierSharedPivotColumns(t *testing.T) {
	d := []*mod2.Column{
		mod2.NewColumn(0),
		mod2.NewColumn(0, 1),
		mod2.NewColumn(1),
	}
	r, u := updater.Reduce(d)

	assert.Equal(t, []int{0}, r.Cols[0].Rows())
	assert.Equal(t, []int{1, 0}, r.Cols[1].Rows())
	assert.Empty(t, r.Cols[2].Rows())

	assert.Empty(t, u.Cols[0].Rows())
	assert.Empty(t, u.Cols[1].Rows())
	assert.ElementsMatch(t, []int{0, 1}, u.Cols[2].Rows())
}

func TestReduce_EmptyMatrixIsTrivial(t *testing.T) {
	r, u := updater.Reduce(nil)
	assert.Empty(t, r.Cols)
	assert.Empty(t, u.Cols)
}
