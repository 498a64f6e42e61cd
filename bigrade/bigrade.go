package bigrade

import "sort"

// Bigrade is a pair of nonnegative indices into a pair of Grades vectors.
// It never carries the coordinate values directly; resolve via Grades.At.
type Bigrade struct {
	X int // index into the x grade vector
	Y int // index into the y grade vector
}

// LessEqualProduct reports whether a ≤ b under the product (componentwise)
// partial order: a.X ≤ b.X ∧ a.Y ≤ b.Y.
func LessEqualProduct(a, b Bigrade) bool {
	return a.X <= b.X && a.Y <= b.Y
}

// StrictlyLessProduct reports whether a < b under the product order, i.e.
// a ≤ b and a != b.
func StrictlyLessProduct(a, b Bigrade) bool {
	return LessEqualProduct(a, b) && a != b
}

// Incomparable reports whether neither a ≤ b nor b ≤ a under the product
// order — the two bigrades are "strongly incomparable" (spec §4.2).
func Incomparable(a, b Bigrade) bool {
	return !LessEqualProduct(a, b) && !LessEqualProduct(b, a)
}

// Join returns the least upper bound of a and b under the product order:
// componentwise max. Used to build anchor candidates from incomparable
// template-point pairs (spec §4.2).
func Join(a, b Bigrade) Bigrade {
	j := Bigrade{X: a.X, Y: a.Y}
	if b.X > j.X {
		j.X = b.X
	}
	if b.Y > j.Y {
		j.Y = b.Y
	}

	return j
}

// LessColex reports whether a < b under the colex order: compare Y first,
// then X on ties. Colex orders matrix columns for D_low/D_high/H'/K.
func LessColex(a, b Bigrade) bool {
	if a.Y != b.Y {
		return a.Y < b.Y
	}

	return a.X < b.X
}

// LessLex reports whether a < b under the lex order: compare X first, then
// Y on ties. Lex orders matrix columns when visiting D_high for reduction.
func LessLex(a, b Bigrade) bool {
	if a.X != b.X {
		return a.X < b.X
	}

	return a.Y < b.Y
}

// SortColex sorts bigrades ascending by LessColex, stable so ties preserve
// their original relative order (mirrors prim_kruskal.Kruskal's use of
// sort.SliceStable for deterministic tie-breaking).
func SortColex(bs []Bigrade) {
	sort.SliceStable(bs, func(i, j int) bool { return LessColex(bs[i], bs[j]) })
}

// SortLex sorts bigrades ascending by LessLex, stable.
func SortLex(bs []Bigrade) {
	sort.SliceStable(bs, func(i, j int) bool { return LessLex(bs[i], bs[j]) })
}

// Grades is a sorted vector of exact grade values for one axis, optionally
// reversed (spec §6 InputParameters.x_reverse / y_reverse: "reverse flips
// sign of that coordinate axis before comparisons").
type Grades struct {
	values   []Exact
	reversed bool
}

// NewGrades builds a Grades vector from already-sorted-ascending values.
// Returns ErrNotSorted if values is not strictly ascending, ErrEmptyGrades
// if values is empty.
func NewGrades(values []Exact, reversed bool) (Grades, error) {
	if len(values) == 0 {
		return Grades{}, ErrEmptyGrades
	}
	for i := 1; i < len(values); i++ {
		if !values[i-1].Less(values[i]) {
			return Grades{}, ErrNotSorted
		}
	}
	cp := make([]Exact, len(values))
	copy(cp, values)

	return Grades{values: cp, reversed: reversed}, nil
}

// Len returns the number of grade values.
func (g Grades) Len() int { return len(g.values) }

// Reversed reports whether this axis has its sign flipped before compares.
func (g Grades) Reversed() bool { return g.reversed }

// At resolves index i to its Exact coordinate, applying the axis reversal.
// Returns ErrIndexOutOfRange if i is out of [0, Len()).
func (g Grades) At(i int) (Exact, error) {
	if i < 0 || i >= len(g.values) {
		return Exact{}, ErrIndexOutOfRange
	}
	v := g.values[i]
	if g.reversed {
		v = v.Neg()
	}

	return v, nil
}

// Raw returns a defensive copy of the underlying (unreversed) value slice.
func (g Grades) Raw() []Exact {
	cp := make([]Exact, len(g.values))
	copy(cp, g.values)

	return cp
}

// gradesWire is Grades' exported mirror for gob encoding, since values and
// reversed are both unexported.
type gradesWire struct {
	Values   []Exact
	Reversed bool
}

// GobEncode serialises g via its exported mirror.
func (g Grades) GobEncode() ([]byte, error) {
	return gobEncode(gradesWire{Values: g.values, Reversed: g.reversed})
}

// GobDecode restores g from its exported mirror.
func (g *Grades) GobDecode(data []byte) error {
	var w gradesWire
	if err := gobDecode(data, &w); err != nil {
		return err
	}
	g.values = w.Values
	g.reversed = w.Reversed

	return nil
}
