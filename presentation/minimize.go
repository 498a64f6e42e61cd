package presentation

import (
	"github.com/tildedata/mphom/bigrade"
	"github.com/tildedata/mphom/firep"
	"github.com/tildedata/mphom/mod2"
)

// Minimize reduces a presentation matrix p (colex order) to a minimal
// presentation: scanning columns left to right, a column whose pivot row's
// bigrade equals its own column bigrade is redundant — a degree-(0,0)
// relation between two generators born at the same bigrade — so it (and
// its pivot row) is eliminated, adding it into every later column that
// still touches that row. rowGrades supplies the bigrade of each of p's
// rows (the kernel generators' own bigrades; see ReduceKernel).
//
// Complexity: O(n^2) column adds in the worst case, same shape as
// matrix/impl_linear_algebra.go's dense elimination passes; n here is the
// input presentation's column count, already far smaller than the original
// complex.
func Minimize(p *firep.Matrix, rowGrades []bigrade.Bigrade) (*firep.Matrix, []bigrade.Bigrade, error) {
	n := p.NCols()
	cols := make([]*mod2.Column, n)
	grades := make([]bigrade.Bigrade, n)
	for i := 0; i < n; i++ {
		c, g := p.Column(i)
		cols[i] = c.Clone()
		cols[i].Finalize()
		grades[i] = g
	}

	deletedCol := make([]bool, n)
	deletedRow := make([]bool, len(rowGrades))

	for i := 0; i < n; i++ {
		if deletedCol[i] {
			continue
		}
		pivotRow, ok := cols[i].PeekMax()
		if !ok {
			continue
		}
		if pivotRow < 0 || pivotRow >= len(rowGrades) {
			return nil, nil, ErrRowOutOfRange
		}
		if rowGrades[pivotRow] != grades[i] {
			continue
		}
		deletedCol[i] = true
		deletedRow[pivotRow] = true
		for j := i + 1; j < n; j++ {
			if deletedCol[j] {
				continue
			}
			if cols[j].Contains(pivotRow) {
				cols[j].Add(cols[i].Clone())
			}
		}
	}

	rowRemap := make(map[int]int)
	keptRowGrades := make([]bigrade.Bigrade, 0, len(rowGrades))
	for r, g := range rowGrades {
		if deletedRow[r] {
			continue
		}
		rowRemap[r] = len(keptRowGrades)
		keptRowGrades = append(keptRowGrades, g)
	}

	out := firep.NewMatrix(p.Order(), len(keptRowGrades), p.XSize(), p.YSize())
	for i := 0; i < n; i++ {
		if deletedCol[i] {
			continue
		}
		remapped := mod2.NewColumn()
		for _, r := range cols[i].Rows() {
			nr, ok := rowRemap[r]
			if !ok {
				return nil, nil, ErrRowReappeared
			}
			remapped.PushRow(nr)
		}
		remapped.Finalize()
		if err := out.AppendColumn(remapped, grades[i]); err != nil {
			return nil, nil, err
		}
	}
	out.BuildIndex()

	return out, keptRowGrades, nil
}
