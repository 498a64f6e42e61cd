package updater

import "github.com/tildedata/mphom/template"

// AnchorKind is the per-crossing classification of an anchor event
// (spec §4.4 step 1): Strict anchors swap the simplex blocks assigned
// to their left (L) and below (D) template-point neighbors; a
// non-strict anchor is missing one of those two neighbors, and the
// crossing is classified as a merge of a neighbouring equivalence class
// into the anchor or a split of the anchor's class, by which of the two
// neighbours exists (see Classify); the side the sweep approaches from
// is not taken into account.
type AnchorKind int

const (
	Strict AnchorKind = iota
	NonStrictMerge
	NonStrictSplit
)

func (k AnchorKind) String() string {
	switch k {
	case Strict:
		return "strict"
	case NonStrictMerge:
		return "non-strict-merge"
	case NonStrictSplit:
		return "non-strict-split"
	default:
		return "unknown"
	}
}

// Classify implements spec §4.4 step 1: locate A = points[anchorIdx]'s
// left neighbour L (same y, nearest smaller x) and below neighbour D
// (same x, nearest smaller y) by linear scan of the template-point
// vector, then classify:
//
//   - both L and D exist: Strict.
//   - only D exists (no L): NonStrictMerge — a neighbour directly below
//     merges its class into A as the sweep passes.
//   - otherwise (only L, or neither): NonStrictSplit — spec leaves the
//     missing-both case unstated; treated as split since there is no
//     lower neighbour to merge from. Recorded as an Open Question
//     decision.
func Classify(points []template.Point, anchorIdx int) AnchorKind {
	a := points[anchorIdx]

	haveL, haveD := false, false
	for i, p := range points {
		if i == anchorIdx {
			continue
		}
		if p.Grade.Y == a.Grade.Y && p.Grade.X < a.Grade.X {
			haveL = true
		}
		if p.Grade.X == a.Grade.X && p.Grade.Y < a.Grade.Y {
			haveD = true
		}
	}

	switch {
	case haveL && haveD:
		return Strict
	case haveD:
		return NonStrictMerge
	default:
		return NonStrictSplit
	}
}
