package engine

import (
	"context"

	"github.com/tildedata/mphom/arrangement"
	"github.com/tildedata/mphom/pathplan"
	"github.com/tildedata/mphom/template"
	"github.com/tildedata/mphom/updater"
)

// walkTraversal walks steps starting at root, maintaining state across
// each anchor crossing, and records the barcode template current at
// every face visited. ctx is polled once per step (spec §5).
func walkTraversal(ctx context.Context, d *arrangement.DCEL, root int, steps []pathplan.Step, state *updater.State, points []template.Point) (map[int][]updater.Bar, error) {
	faceBars := map[int][]updater.Bar{root: state.BarcodeTemplate()}

	face := root
	for _, step := range steps {
		if err := checkContext(ctx); err != nil {
			return nil, err
		}

		he := d.HalfEdges[step.HalfEdge]
		anchor := he.Line
		if err := crossAnchor(state, points, anchor); err != nil {
			return nil, err
		}

		face = d.HalfEdges[he.Twin].Face
		faceBars[face] = state.BarcodeTemplate()
	}

	return faceBars, nil
}

// crossAnchor applies the vineyard update for crossing anchor ai: the
// sweep direction (spec §4.4 step 1) picks ai's immediate below neighbor
// D if present, else its immediate left neighbor L, as the partner block
// ai's simplices exchange places with. An anchor with neither (both
// missing in Classify's classification) borders no other template point
// along either axis and is skipped: there is nothing to swap.
func crossAnchor(state *updater.State, points []template.Point, anchor int) error {
	kind := updater.Classify(points, anchor)

	partner, ok := nearestBelow(points, anchor)
	if !ok {
		partner, ok = nearestLeft(points, anchor)
	}
	if !ok {
		return nil
	}

	if err := togglePair(len(state.LiftLow), func(j int) int { return state.LiftLow[j] }, func(j int) error { return state.CrossLow(j, kind) }, anchor, partner); err != nil {
		return err
	}

	return togglePair(len(state.LiftHigh), func(j int) int { return state.LiftHigh[j] }, func(j int) error { return state.CrossHigh(j, kind) }, anchor, partner)
}

// togglePair flips the relative order of the block of positions lifted
// to a against the block lifted to b: it first checks which of the two
// values occurs first (scanning for whichever of a, b it meets first),
// then bubbles the other one past it. Calling togglePair twice in a row
// with the same (a, b) restores the original order, matching a
// traversal step's Forward crossing being undone by its Backtrack. If
// neither value occurs (this matrix has no simplices lifting to a or
// b), both the scan and the bubble are no-ops.
func togglePair(n int, at func(int) int, cross func(int) error, a, b int) error {
	aFirst := true
	for j := 0; j < n; j++ {
		v := at(j)
		if v != a && v != b {
			continue
		}
		aFirst = v == a

		break
	}

	if aFirst {
		return bubbleAdjacent(n, at, cross, a, b)
	}

	return bubbleAdjacent(n, at, cross, b, a)
}

// bubbleAdjacent repeatedly scans for an adjacent pair currently at (x,
// y) and crosses it, moving every y left past every x, until a full pass
// finds nothing left to swap.
func bubbleAdjacent(n int, at func(int) int, cross func(int) error, x, y int) error {
	for {
		swapped := false
		for j := 0; j < n-1; j++ {
			if at(j) == x && at(j+1) == y {
				if err := cross(j); err != nil {
					return err
				}
				swapped = true
			}
		}
		if !swapped {
			return nil
		}
	}
}

// nearestLeft returns the index of the template point immediately left
// of points[ai] at the same y (the largest x strictly less than ai's).
func nearestLeft(points []template.Point, ai int) (int, bool) {
	a := points[ai]
	best := -1
	for i, p := range points {
		if i == ai || p.Grade.Y != a.Grade.Y || p.Grade.X >= a.Grade.X {
			continue
		}
		if best == -1 || p.Grade.X > points[best].Grade.X {
			best = i
		}
	}

	return best, best != -1
}

// nearestBelow returns the index of the template point immediately
// below points[ai] at the same x (the largest y strictly less than
// ai's).
func nearestBelow(points []template.Point, ai int) (int, bool) {
	a := points[ai]
	best := -1
	for i, p := range points {
		if i == ai || p.Grade.X != a.Grade.X || p.Grade.Y >= a.Grade.Y {
			continue
		}
		if best == -1 || p.Grade.Y > points[best].Grade.Y {
			best = i
		}
	}

	return best, best != -1
}
