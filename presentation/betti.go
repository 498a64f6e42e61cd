package presentation

import "github.com/tildedata/mphom/bigrade"

// densePrefixCounts builds a dense [xSize][ySize] table where entry [x][y]
// is the number of grades with bigrade <=product (x,y) (componentwise),
// via a 2D prefix sum over a per-cell histogram. This computes the same
// cumulative counts a colex sweep would produce one row at a time, just
// without needing the sweep's incremental bookkeeping.
func densePrefixCounts(grades []bigrade.Bigrade, xSize, ySize int) [][]int {
	hist := make([][]int, xSize)
	for x := range hist {
		hist[x] = make([]int, ySize)
	}
	for _, g := range grades {
		if g.X >= 0 && g.X < xSize && g.Y >= 0 && g.Y < ySize {
			hist[g.X][g.Y]++
		}
	}

	out := make([][]int, xSize)
	for x := 0; x < xSize; x++ {
		out[x] = make([]int, ySize)
	}
	for y := 0; y < ySize; y++ {
		running := 0
		for x := 0; x < xSize; x++ {
			running += hist[x][y]
			out[x][y] = running
			if y > 0 {
				out[x][y] += out[x][y-1]
			}
		}
	}

	return out
}

// HilbertFunction computes the dense Hilbert function HilbertDim[x][y] =
// (#kernel generators with bigrade <=product (x,y)) - (#H' generators with
// bigrade <=product (x,y)) (spec §4.1).
func HilbertFunction(kernelGrades, hPrimeGrades []bigrade.Bigrade, xSize, ySize int) [][]int {
	kCounts := densePrefixCounts(kernelGrades, xSize, ySize)
	hCounts := densePrefixCounts(hPrimeGrades, xSize, ySize)

	out := make([][]int, xSize)
	for x := 0; x < xSize; x++ {
		out[x] = make([]int, ySize)
		for y := 0; y < ySize; y++ {
			out[x][y] = kCounts[x][y] - hCounts[x][y]
		}
	}

	return out
}

// exactCounts builds a dense [xSize][ySize] table counting grades exactly
// equal to (x,y) (not <=product), used for xi0/xi1.
func exactCounts(grades []bigrade.Bigrade, xSize, ySize int) [][]int {
	out := make([][]int, xSize)
	for x := range out {
		out[x] = make([]int, ySize)
	}
	for _, g := range grades {
		if g.X >= 0 && g.X < xSize && g.Y >= 0 && g.Y < ySize {
			out[g.X][g.Y]++
		}
	}

	return out
}

// BigradedBetti computes the three bigraded Betti number functions for a
// minimal presentation: xi0 from its row grades, xi1 from its column
// grades, and xi2 by inclusion-exclusion against the Hilbert function
// (spec §4.1):
//
//	xi2(x,y) = HilbertDim(x,y) - HilbertDim(x,y-1)
//	           - sum_{x'<=x} (xi0(x',y) - xi1(x',y) + xi2(x',y-1))
//
// out-of-range terms (y-1 < 0) are taken as zero.
func BigradedBetti(rowGrades, colGrades []bigrade.Bigrade, hilbert [][]int, xSize, ySize int) (xi0, xi1, xi2 [][]int) {
	xi0 = exactCounts(rowGrades, xSize, ySize)
	xi1 = exactCounts(colGrades, xSize, ySize)
	xi2 = make([][]int, xSize)
	for x := 0; x < xSize; x++ {
		xi2[x] = make([]int, ySize)
	}

	for y := 0; y < ySize; y++ {
		cum := 0
		for x := 0; x < xSize; x++ {
			prevXi2 := 0
			hPrev := 0
			if y > 0 {
				prevXi2 = xi2[x][y-1]
				hPrev = hilbert[x][y-1]
			}
			cum += xi0[x][y] - xi1[x][y] + prevXi2
			xi2[x][y] = hilbert[x][y] - hPrev - cum
		}
	}

	return xi0, xi1, xi2
}
