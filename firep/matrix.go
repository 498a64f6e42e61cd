package firep

import (
	"sort"

	"github.com/tildedata/mphom/bigrade"
	"github.com/tildedata/mphom/mod2"
)

// Order names the two total orders a Matrix's columns can be sorted by.
type Order int

const (
	// Colex sorts columns by bigrade.LessColex (y outer, x inner).
	Colex Order = iota
	// Lex sorts columns by bigrade.LessLex (x outer, y inner).
	Lex
)

// Matrix is a sparse bigraded mod-2 matrix: one mod2.Column plus one
// bigrade.Bigrade per column, the columns sorted ascending in Order, with
// a row bound used to validate entries and an index matrix for O(1)
// "how many columns have bigrade <= g" queries.
type Matrix struct {
	order    Order
	rowBound int // declared number of rows; every entry must be < rowBound
	xSize    int // size of the x grade vector this matrix's columns index into
	ySize    int // size of the y grade vector
	cols     []*mod2.Column
	grades   []bigrade.Bigrade
	index    [][]int // see BuildIndex
}

// NewMatrix builds an empty Matrix for the given Order, row bound, and
// grade-vector sizes. Columns are appended via AppendColumn.
func NewMatrix(order Order, rowBound, xSize, ySize int) *Matrix {
	return &Matrix{order: order, rowBound: rowBound, xSize: xSize, ySize: ySize}
}

// Order reports the sort order this matrix's columns currently satisfy.
func (m *Matrix) Order() Order { return m.order }

// RowBound returns the declared row bound (exclusive upper row index).
func (m *Matrix) RowBound() int { return m.rowBound }

// NCols returns the number of columns.
func (m *Matrix) NCols() int { return len(m.cols) }

// XSize returns the size of the x grade vector this matrix's columns index into.
func (m *Matrix) XSize() int { return m.xSize }

// YSize returns the size of the y grade vector this matrix's columns index into.
func (m *Matrix) YSize() int { return m.ySize }

// Column returns column j and its bigrade.
func (m *Matrix) Column(j int) (*mod2.Column, bigrade.Bigrade) { return m.cols[j], m.grades[j] }

func (m *Matrix) less(a, b bigrade.Bigrade) bool {
	if m.order == Colex {
		return bigrade.LessColex(a, b)
	}

	return bigrade.LessLex(a, b)
}

// AppendColumn appends a column with the given bigrade. The caller must
// append in non-decreasing order for m.Order(); returns ErrColumnsUnsorted
// otherwise. Does not rebuild the index matrix — call BuildIndex once all
// columns are appended.
func (m *Matrix) AppendColumn(col *mod2.Column, g bigrade.Bigrade) error {
	if g.X < 0 || g.X >= m.xSize || g.Y < 0 || g.Y >= m.ySize {
		return bigrade.ErrIndexOutOfRange
	}
	if n := len(m.grades); n > 0 && m.less(g, m.grades[n-1]) {
		return ErrColumnsUnsorted
	}
	m.cols = append(m.cols, col)
	m.grades = append(m.grades, g)

	return nil
}

// BuildIndex (re)computes the index matrix from the current columns and
// order. For Colex, index[y][x] is the count of columns whose bigrade is
// <=colex (x,y) (so the last such column's position is index[y][x]-1).
// For Lex, index[x][y] is the analogous count with x outer.
//
// Complexity: O(xSize*ySize*log n) via binary search over the sorted
// column grades.
func (m *Matrix) BuildIndex() {
	if m.order == Colex {
		m.index = make([][]int, m.ySize)
		for y := 0; y < m.ySize; y++ {
			m.index[y] = make([]int, m.xSize)
			for x := 0; x < m.xSize; x++ {
				g := bigrade.Bigrade{X: x, Y: y}
				// First index i with grades[i] >colex g; that count is the
				// number of columns with bigrade <=colex g.
				m.index[y][x] = sort.Search(len(m.grades), func(i int) bool {
					return bigrade.LessColex(g, m.grades[i])
				})
			}
		}

		return
	}

	m.index = make([][]int, m.xSize)
	for x := 0; x < m.xSize; x++ {
		m.index[x] = make([]int, m.ySize)
		for y := 0; y < m.ySize; y++ {
			g := bigrade.Bigrade{X: x, Y: y}
			m.index[x][y] = sort.Search(len(m.grades), func(i int) bool {
				return bigrade.LessLex(g, m.grades[i])
			})
		}
	}
}

// CountUpTo returns the number of columns with bigrade <=order g (order
// being the order this matrix is currently sorted in), using the index
// matrix built by BuildIndex.
func (m *Matrix) CountUpTo(g bigrade.Bigrade) int {
	if m.order == Colex {
		return m.index[g.Y][g.X]
	}

	return m.index[g.X][g.Y]
}

// ToOrder returns a new Matrix with the same columns, permuted into the
// requested order. The original is left untouched.
func (m *Matrix) ToOrder(order Order) *Matrix {
	if order == m.order {
		return m.cloneSameOrder()
	}
	type pair struct {
		col *mod2.Column
		g   bigrade.Bigrade
	}
	pairs := make([]pair, len(m.cols))
	for i := range m.cols {
		pairs[i] = pair{m.cols[i], m.grades[i]}
	}
	var less func(a, b bigrade.Bigrade) bool
	if order == Colex {
		less = bigrade.LessColex
	} else {
		less = bigrade.LessLex
	}
	sort.SliceStable(pairs, func(i, j int) bool { return less(pairs[i].g, pairs[j].g) })

	out := NewMatrix(order, m.rowBound, m.xSize, m.ySize)
	out.cols = make([]*mod2.Column, len(pairs))
	out.grades = make([]bigrade.Bigrade, len(pairs))
	for i, p := range pairs {
		out.cols[i] = p.col
		out.grades[i] = p.g
	}
	out.BuildIndex()

	return out
}

func (m *Matrix) cloneSameOrder() *Matrix {
	out := NewMatrix(m.order, m.rowBound, m.xSize, m.ySize)
	out.cols = append([]*mod2.Column(nil), m.cols...)
	out.grades = append([]bigrade.Bigrade(nil), m.grades...)
	out.BuildIndex()

	return out
}
