package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tildedata/mphom/bigrade"
	"github.com/tildedata/mphom/template"
)

func gridPoints(coords ...[2]int) []template.Point {
	pts := make([]template.Point, len(coords))
	for i, c := range coords {
		pts[i] = template.Point{Grade: bigrade.Bigrade{X: c[0], Y: c[1]}}
	}

	return pts
}

func TestNearestLeft_FindsNearestSameY(t *testing.T) {
	pts := gridPoints([2]int{0, 0}, [2]int{1, 0}, [2]int{3, 0})
	idx, ok := nearestLeft(pts, 2)
	require.True(t, ok)
	assert.Equal(t, 1, idx) // x=1 is nearer to x=3 than x=0
}

func TestNearestLeft_NoneWhenDifferentY(t *testing.T) {
	pts := gridPoints([2]int{0, 1}, [2]int{1, 0})
	_, ok := nearestLeft(pts, 1)
	assert.False(t, ok)
}

func TestNearestBelow_FindsNearestSameX(t *testing.T) {
	pts := gridPoints([2]int{0, 0}, [2]int{0, 1}, [2]int{0, 3})
	idx, ok := nearestBelow(pts, 2)
	require.True(t, ok)
	assert.Equal(t, 1, idx)
}

func TestBubbleAdjacent_MovesYBeforeX(t *testing.T) {
	lift := []int{5, 5, 7, 7, 7}
	at := func(j int) int { return lift[j] }
	cross := func(j int) error {
		lift[j], lift[j+1] = lift[j+1], lift[j]

		return nil
	}
	require.NoError(t, bubbleAdjacent(len(lift), at, cross, 5, 7))
	assert.Equal(t, []int{7, 7, 7, 5, 5}, lift)
}

func TestTogglePair_IsSelfInverse(t *testing.T) {
	lift := []int{5, 5, 7, 7, 7}
	at := func(j int) int { return lift[j] }
	cross := func(j int) error {
		lift[j], lift[j+1] = lift[j+1], lift[j]

		return nil
	}

	require.NoError(t, togglePair(len(lift), at, cross, 5, 7))
	assert.Equal(t, []int{7, 7, 7, 5, 5}, lift)

	require.NoError(t, togglePair(len(lift), at, cross, 5, 7))
	assert.Equal(t, []int{5, 5, 7, 7, 7}, lift)
}

func TestTogglePair_NoopWhenValuesAbsent(t *testing.T) {
	lift := []int{1, 1, 1}
	at := func(j int) int { return lift[j] }
	calls := 0
	cross := func(j int) error {
		calls++

		return nil
	}
	require.NoError(t, togglePair(len(lift), at, cross, 5, 7))
	assert.Equal(t, 0, calls)
	assert.Equal(t, []int{1, 1, 1}, lift)
}
