package updater

// Threshold is the self-tuning cost estimate gating a per-crossing
// choice between a vineyard transposition and a full reset (spec §4.4,
// "Threshold tuning"): accumulated transposition time/count and reset
// time/count are tracked separately, and the threshold is re-derived
// from their ratio after every reset so it adapts to the actual relative
// cost observed on this machine and this bifiltration, rather than using
// a fixed constant.
type Threshold struct {
	Value float64

	totalTranspositions int64
	totalTranspositionT float64
	totalResets         int64
	totalResetT         float64
}

// NewThreshold starts with an optimistic value of 1 (prefer transposing
// until evidence says otherwise), matching the "start cheap, learn from
// resets" framing of spec §4.4.
func NewThreshold() *Threshold {
	return &Threshold{Value: 1}
}

// RecordTransposition folds one observed transposition cost (an
// estimated "separation count", spec §4.4) and its wall-clock cost into
// the running averages.
func (t *Threshold) RecordTransposition(cost int64, elapsed float64) {
	t.totalTranspositions += cost
	t.totalTranspositionT += elapsed
}

// RecordReset folds one observed reset's wall-clock cost into the
// running averages and re-derives Value:
//
//	threshold <- (total_transpositions / total_transposition_time)
//	           * (total_reset_time / number_of_resets)
//
// i.e. the number of unit-cost transpositions that would fit in the time
// a single reset just took, at the average observed transposition rate.
func (t *Threshold) RecordReset(elapsed float64) {
	t.totalResets++
	t.totalResetT += elapsed

	if t.totalTranspositionT <= 0 || t.totalResets == 0 {
		return
	}
	rate := float64(t.totalTranspositions) / t.totalTranspositionT
	avgReset := t.totalResetT / float64(t.totalResets)
	t.Value = rate * avgReset
}

// ShouldTranspose reports whether an anchor crossing with the given
// estimated transposition cost should be handled by transposition
// (true) rather than a full reset (false).
func (t *Threshold) ShouldTranspose(estimatedCost int64) bool {
	return float64(estimatedCost) <= t.Value
}
