package arrangement_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tildedata/mphom/arrangement"
	"github.com/tildedata/mphom/bigrade"
)

// crossingLines builds the two-line fixture used across this file: line 0
// (slope 2, left-intercept 0) starts below line 1 (slope 1,
// left-intercept 1) at u=0 and crosses it once at (u,v) = (1,2).
func crossingLines() []arrangement.Line {
	return []arrangement.Line{
		{X: bigrade.NewExactInt(2), Y: bigrade.NewExactInt(0)},
		{X: bigrade.NewExactInt(1), Y: bigrade.NewExactInt(-1)},
	}
}

func TestBuild_EmptyLinesYieldsSingleFace(t *testing.T) {
	d, err := arrangement.Build(nil)
	require.NoError(t, err)
	require.Len(t, d.Faces, 1)
	assert.Equal(t, -1, d.Faces[0].Below)
	assert.Equal(t, -1, d.Faces[0].Above)
}

func TestBuild_TwoLinesCrossOnce(t *testing.T) {
	d, err := arrangement.Build(crossingLines())
	require.NoError(t, err)

	require.Len(t, d.Faces, 4)

	// gap 0 ("above everything") persists for the whole sweep and ends
	// bounded below by line 0 (the steeper line, which dominates as
	// u -> infinity).
	var aboveAll *arrangement.Face
	for i := range d.Faces {
		if d.Faces[i].Gap == 0 {
			aboveAll = &d.Faces[i]
		}
	}
	require.NotNil(t, aboveAll)
	assert.Equal(t, 0, aboveAll.Below)
	assert.Equal(t, -1, aboveAll.Above)
	assert.True(t, aboveAll.UToInfinite)

	// the middle gap (gap 1) closes once, at the crossing (u,v) = (1,2),
	// then reopens with line 0 and line 1 swapped.
	var closed, reopened *arrangement.Face
	for i := range d.Faces {
		if d.Faces[i].Gap == 1 {
			if d.Faces[i].UToInfinite {
				reopened = &d.Faces[i]
			} else {
				closed = &d.Faces[i]
			}
		}
	}
	require.NotNil(t, closed)
	require.NotNil(t, reopened)
	assert.Equal(t, 0, closed.Below)
	assert.Equal(t, 1, closed.Above)
	assert.True(t, closed.UTo.Equal(bigrade.NewExactInt(1)))
	assert.Equal(t, 1, reopened.Below)
	assert.Equal(t, 0, reopened.Above)
	assert.True(t, reopened.UFrom.Equal(bigrade.NewExactInt(1)))

	// gap 2 ("below everything") persists too, kinked from above=line0 to
	// above=line1 at the crossing.
	var belowAll *arrangement.Face
	for i := range d.Faces {
		if d.Faces[i].Gap == 2 {
			belowAll = &d.Faces[i]
		}
	}
	require.NotNil(t, belowAll)
	assert.Equal(t, -1, belowAll.Below)
	assert.Equal(t, 1, belowAll.Above)
	assert.True(t, belowAll.UToInfinite)
}

func TestBuild_ParallelLinesNeverCross(t *testing.T) {
	lines := []arrangement.Line{
		{X: bigrade.NewExactInt(1), Y: bigrade.NewExactInt(0)},
		{X: bigrade.NewExactInt(1), Y: bigrade.NewExactInt(-1)},
	}
	d, err := arrangement.Build(lines)
	require.NoError(t, err)

	// no crossing event means no extra face beyond the 3 initial gaps.
	assert.Len(t, d.Faces, 3)
}
