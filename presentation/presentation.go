package presentation

import (
	"github.com/tildedata/mphom/bigrade"
	"github.com/tildedata/mphom/firep"
)

// Result bundles everything S2 produces from a FIRep: the minimal
// presentation itself and the three dense functions downstream stages
// (template-point selection, barcode queries) need.
type Result struct {
	Presentation  *firep.Matrix // colex order
	RowGrades     []bigrade.Bigrade
	Hilbert       [][]int // [x][y]
	Xi0, Xi1, Xi2 [][]int // [x][y]
}

// Compute runs the full S2 pipeline on fr: reduce D_high into H', reduce
// D_low into a kernel basis K, express H' in K's basis to get a (not yet
// minimal) presentation, minimize it, then derive the Hilbert function and
// bigraded Betti numbers.
func Compute(fr *firep.FIRep) (*Result, error) {
	hPrimeLex, err := ReduceImage(fr.DHigh.ToOrder(firep.Lex))
	if err != nil {
		return nil, err
	}

	kr, err := ReduceKernel(fr.DLow)
	if err != nil {
		return nil, err
	}

	hPrimeColex := hPrimeLex.ToOrder(firep.Colex)
	pres, err := ExpressInKernelBasis(hPrimeColex, kr)
	if err != nil {
		return nil, err
	}

	rowGrades := kernelRowGrades(kr.K)
	minPres, minRowGrades, err := Minimize(pres, rowGrades)
	if err != nil {
		return nil, err
	}

	xSize, ySize := fr.XS.Len(), fr.YS.Len()
	hilbert := HilbertFunction(rowGrades, columnGrades(hPrimeColex), xSize, ySize)
	colGrades := columnGrades(minPres)
	xi0, xi1, xi2 := BigradedBetti(minRowGrades, colGrades, hilbert, xSize, ySize)

	return &Result{
		Presentation: minPres,
		RowGrades:    minRowGrades,
		Hilbert:      hilbert,
		Xi0:          xi0,
		Xi1:          xi1,
		Xi2:          xi2,
	}, nil
}

func columnGrades(m *firep.Matrix) []bigrade.Bigrade {
	out := make([]bigrade.Bigrade, m.NCols())
	for i := range out {
		_, g := m.Column(i)
		out[i] = g
	}

	return out
}
