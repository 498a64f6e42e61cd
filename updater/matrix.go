package updater

import "github.com/tildedata/mphom/mod2"

// Matrix is a column-sparse mod-2 matrix in explicit, mutable column
// order: unlike firep.Matrix (grouped by bigraded colex/lex order for the
// one-shot reduction stage), the vineyard update permutes individual
// columns directly, so columns are addressed purely by their current
// position. U is stored with the same column-sparse Column type as R
// (rather than row-sparse, as spec §4.4 describes it): column j of U
// lists the row indices k<j added into column j during reduction, which
// is exactly the information the spec's row-sparse U needs, just indexed
// from the other side. Documented simplification, no behavioral cost —
// U is only ever read back one column at a time.
type Matrix struct {
	Cols []*mod2.Column
}

// NewMatrix wraps the given columns (not copied) as a Matrix.
func NewMatrix(cols []*mod2.Column) *Matrix {
	return &Matrix{Cols: cols}
}

// Clone returns a deep copy.
func (m *Matrix) Clone() *Matrix {
	cols := make([]*mod2.Column, len(m.Cols))
	for i, c := range m.Cols {
		cols[i] = c.Clone()
	}

	return &Matrix{Cols: cols}
}

// pivot returns the current pivot row of column j (its logical maximum
// entry), or -1 if the column is empty.
func (m *Matrix) pivot(j int) int {
	v, ok := m.Cols[j].PeekMax()
	if !ok {
		return -1
	}

	return v
}

// Reduce performs the standard left-to-right column reduction (spec
// §4.4's initial decomposition): for each column j in order, repeatedly
// add an earlier column k<j sharing j's current pivot, until no such k
// remains or the column empties out. U is built as each add is recorded:
// U's column j carries the row index k for every column added into j,
// so that D = R*U over GF(2) (D the matrix reduced, identity diagonal on
// U implicit — callers needing the diagonal should treat an absent row
// k in U's column j, for k==j, as the implicit unit entry).
//
// Complexity: O(n^2) column additions worst case, matching the teacher's
// matrix/impl_linear_algebra.go dense elimination; sparse in practice
// since mod2.Column only stores nonzero rows.
func Reduce(d []*mod2.Column) (r, u *Matrix) {
	n := len(d)
	rCols := make([]*mod2.Column, n)
	uCols := make([]*mod2.Column, n)
	for i, c := range d {
		rCols[i] = c.Clone()
		uCols[i] = mod2.NewColumn()
	}

	low := make(map[int]int) // pivot row -> column index currently owning it
	for j := 0; j < n; j++ {
		for {
			p := -1
			if v, ok := rCols[j].PeekMax(); ok {
				p = v
			}
			if p < 0 {
				break
			}
			k, ok := low[p]
			if !ok {
				low[p] = j
				break
			}
			rCols[j].Add(rCols[k])
			uCols[j].PushRow(k)
		}
	}
	for _, c := range rCols {
		c.Finalize()
	}
	for _, c := range uCols {
		c.Finalize()
	}

	return &Matrix{Cols: rCols}, &Matrix{Cols: uCols}
}
