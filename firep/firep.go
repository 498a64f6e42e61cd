package firep

import (
	"github.com/tildedata/mphom/bigrade"
	"github.com/tildedata/mphom/mod2"
)

// FIRep is a free implicit representation: two bigraded matrices D_high :
// C_{h+1} -> C_h and D_low : C_h -> C_{h-1}, both in colex order, with
// HomDegree the homology degree h being computed (spec §3).
type FIRep struct {
	HomDegree uint32
	XS        bigrade.Grades
	YS        bigrade.Grades
	DHigh     *Matrix // NMid x NHigh: rows index into C_h, columns into C_{h+1}
	DLow      *Matrix // NLow x NMid: rows index into C_{h-1}, columns into C_h
}

// NewFIRep builds a FIRep, checking that DHigh's row bound (its codomain
// dimension, the size of C_h) matches DLow's column count (its domain
// dimension). Both matrices must already be in colex order.
func NewFIRep(hom uint32, xs, ys bigrade.Grades, dHigh, dLow *Matrix) (*FIRep, error) {
	if dHigh.RowBound() != dLow.NCols() {
		return nil, ErrDimensionMismatch
	}
	if dHigh.Order() != Colex || dLow.Order() != Colex {
		return nil, ErrColumnsUnsorted
	}

	return &FIRep{HomDegree: hom, XS: xs, YS: ys, DHigh: dHigh, DLow: dLow}, nil
}

// NMid is the dimension of C_h: D_high's codomain, D_low's domain.
func (f *FIRep) NMid() int { return f.DHigh.RowBound() }

// NHigh is the dimension of C_{h+1}: D_high's number of columns.
func (f *FIRep) NHigh() int { return f.DHigh.NCols() }

// NLow is the dimension of C_{h-1}: D_low's codomain (row bound).
func (f *FIRep) NLow() int { return f.DLow.RowBound() }

// Validate checks the FIRep's structural preconditions (spec §4.1 Failure
// semantics): every column entry within its declared row bound, every
// column bigrade within the grade-vector sizes, and D_low*D_high == 0.
//
// Complexity: O(NHigh * avg |D_low column|) for the product check, which
// dominates; acceptable since Validate runs once per FIRep, not per
// reduction step.
func (f *FIRep) Validate() error {
	if err := validateBounds(f.DHigh, f.XS.Len(), f.YS.Len()); err != nil {
		return err
	}
	if err := validateBounds(f.DLow, f.XS.Len(), f.YS.Len()); err != nil {
		return err
	}

	return f.checkProductZero()
}

func validateBounds(m *Matrix, xSize, ySize int) error {
	for j := 0; j < m.NCols(); j++ {
		col, g := m.Column(j)
		if g.X < 0 || g.X >= xSize || g.Y < 0 || g.Y >= ySize {
			return bigrade.ErrIndexOutOfRange
		}
		for _, r := range col.Rows() {
			if r < 0 || r >= m.RowBound() {
				return ErrRowOutOfRange
			}
		}
	}

	return nil
}

// checkProductZero verifies D_low * D_high == 0 over mod 2: for every
// column of D_high (a subset of rows in C_h), the mod-2 sum of the
// corresponding D_low columns must be the zero column.
func (f *FIRep) checkProductZero() error {
	for j := 0; j < f.DHigh.NCols(); j++ {
		col, _ := f.DHigh.Column(j)
		acc := mod2.NewColumn()
		for _, r := range col.Rows() {
			lowCol, _ := f.DLow.Column(r)
			acc.Add(lowCol.Clone())
		}
		if !acc.IsEmpty() {
			return ErrProductNonZero
		}
	}

	return nil
}
