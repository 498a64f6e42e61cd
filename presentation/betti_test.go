package presentation_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tildedata/mphom/bigrade"
	"github.com/tildedata/mphom/presentation"
)

func TestHilbertFunction_TwoGeneratorsMergingAtOneOne(t *testing.T) {
	kernel := []bigrade.Bigrade{{X: 0, Y: 0}, {X: 0, Y: 0}}
	hPrime := []bigrade.Bigrade{{X: 1, Y: 1}}

	h := presentation.HilbertFunction(kernel, hPrime, 2, 2)
	assert.Equal(t, 2, h[0][0])
	assert.Equal(t, 2, h[1][0])
	assert.Equal(t, 2, h[0][1])
	assert.Equal(t, 1, h[1][1])
}

func TestBigradedBetti_MatchesHandDerivedExample(t *testing.T) {
	rowGrades := []bigrade.Bigrade{{X: 0, Y: 0}, {X: 0, Y: 0}}
	colGrades := []bigrade.Bigrade{{X: 1, Y: 1}}
	hilbert := presentation.HilbertFunction(rowGrades, colGrades, 2, 2)

	xi0, xi1, xi2 := presentation.BigradedBetti(rowGrades, colGrades, hilbert, 2, 2)
	assert.Equal(t, 2, xi0[0][0])
	assert.Equal(t, 1, xi1[1][1])

	for x := 0; x < 2; x++ {
		for y := 0; y < 2; y++ {
			assert.Equalf(t, 0, xi2[x][y], "xi2[%d][%d]", x, y)
		}
	}
}

func TestBigradedBetti_SumMatchesHilbert(t *testing.T) {
	// spec universal invariant: sum of xi0-xi1+xi2 over (x',y')<=(x,y)
	// equals HilbertDim(x,y) for every (x,y).
	rowGrades := []bigrade.Bigrade{{X: 0, Y: 0}, {X: 0, Y: 1}}
	colGrades := []bigrade.Bigrade{{X: 1, Y: 1}, {X: 1, Y: 0}}
	xSize, ySize := 3, 3
	hilbert := presentation.HilbertFunction(rowGrades, colGrades, xSize, ySize)
	xi0, xi1, xi2 := presentation.BigradedBetti(rowGrades, colGrades, hilbert, xSize, ySize)

	for x := 0; x < xSize; x++ {
		for y := 0; y < ySize; y++ {
			sum := 0
			for xp := 0; xp <= x; xp++ {
				for yp := 0; yp <= y; yp++ {
					sum += xi0[xp][yp] - xi1[xp][yp] + xi2[xp][yp]
				}
			}
			assert.Equalf(t, hilbert[x][y], sum, "(x,y)=(%d,%d)", x, y)
		}
	}
}
