package updater

import "github.com/tildedata/mphom/mod2"

// State is the maintained RU-decomposition for one point along a
// path-planning traversal (spec §4.4): a reduced low matrix and a
// reduced high matrix, each with its own reduction-recording U and its
// own permutation of the induced simplex order relative to the pristine
// (unordered) input matrix — low and high simplices are reordered
// independently, since they live in different chain groups — plus the
// two lift maps from a matrix column to the template-point index that
// currently dominates it (read by BarcodeTemplate for bar endpoints).
type State struct {
	RLow, ULow   *Matrix
	RHigh, UHigh *Matrix

	// PermLow[i] (PermHigh[i]) is the pristine column index currently
	// sitting at position i; InvPermLow/InvPermHigh are their inverses.
	PermLow, InvPermLow   []int
	PermHigh, InvPermHigh []int

	LiftLow, LiftHigh []int

	pristineLow, pristineHigh []*mod2.Column

	Threshold *Threshold
}

// NewState builds the initial decomposition (spec §4.4 "Initial
// decomposition"): pristineLow/pristineHigh are the boundary matrices in
// the order induced by a near-vertical query line, liftLow/liftHigh map
// each of their columns to the template-point index it is born at.
func NewState(pristineLow, pristineHigh []*mod2.Column, liftLow, liftHigh []int) (*State, error) {
	if len(liftLow) != len(pristineLow) || len(liftHigh) != len(pristineHigh) {
		return nil, ErrDimensionMismatch
	}

	rLow, uLow := Reduce(pristineLow)
	rHigh, uHigh := Reduce(pristineHigh)

	return &State{
		RLow: rLow, ULow: uLow,
		RHigh: rHigh, UHigh: uHigh,
		PermLow: identity(len(pristineLow)), InvPermLow: identity(len(pristineLow)),
		PermHigh: identity(len(pristineHigh)), InvPermHigh: identity(len(pristineHigh)),
		LiftLow:  append([]int(nil), liftLow...),
		LiftHigh: append([]int(nil), liftHigh...),

		pristineLow:  cloneCols(pristineLow),
		pristineHigh: cloneCols(pristineHigh),

		Threshold: NewThreshold(),
	}, nil
}

func identity(n int) []int {
	p := make([]int, n)
	for i := range p {
		p[i] = i
	}

	return p
}

func cloneCols(cols []*mod2.Column) []*mod2.Column {
	out := make([]*mod2.Column, len(cols))
	for i, c := range cols {
		out[i] = c.Clone()
	}

	return out
}

// ResetLow rebuilds the low decomposition from the pristine matrix under
// the current permutation, discarding RLow/ULow's accumulated
// transposition history (spec §4.4: the fallback chosen when a
// transposition's estimated cost exceeds the self-tuning threshold).
func (s *State) ResetLow() {
	permuted := make([]*mod2.Column, len(s.pristineLow))
	for i, p := range s.PermLow {
		permuted[i] = s.pristineLow[p].Clone()
	}
	s.RLow, s.ULow = Reduce(permuted)
}

// ResetHigh is ResetLow's counterpart for the high matrix.
func (s *State) ResetHigh() {
	permuted := make([]*mod2.Column, len(s.pristineHigh))
	for i, p := range s.PermHigh {
		permuted[i] = s.pristineHigh[p].Clone()
	}
	s.RHigh, s.UHigh = Reduce(permuted)
}
