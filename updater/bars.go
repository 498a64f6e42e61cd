package updater

// Bar is one entry of a face's barcode template (spec §4.4 step 5):
// birth and death are template-point indices, not numeric values — the
// numeric rescaling for a specific query line happens downstream, in
// the barcode package.
type Bar struct {
	A, B      int
	BInfinite bool
}

// BarcodeTemplate reads the current barcode template off R (spec §4.4
// step 5): every zero column c of R_low is a birth; if some column s of
// R_high has pivot c, death is lift_high(s), otherwise the bar is
// infinite.
func (s *State) BarcodeTemplate() []Bar {
	highPivotOwner := make(map[int]int, len(s.RHigh.Cols))
	for j, col := range s.RHigh.Cols {
		if p, ok := col.PeekMax(); ok {
			highPivotOwner[p] = j
		}
	}

	var bars []Bar
	for c, col := range s.RLow.Cols {
		if !col.IsEmpty() {
			continue
		}
		a := s.LiftLow[c]
		if j, ok := highPivotOwner[c]; ok {
			bars = append(bars, Bar{A: a, B: s.LiftHigh[j]})
			continue
		}
		bars = append(bars, Bar{A: a, BInfinite: true})
	}

	return bars
}
