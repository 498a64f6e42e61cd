package arrangement

import (
	"container/heap"
	"sort"

	"github.com/tildedata/mphom/bigrade"
)

// Build runs the Bentley-Ottmann sweep over lines (spec §4.2 "Sweep",
// steps 1-5) and returns the completed DCEL.
//
// Two lines are "strongly comparable" (eligible to cross, per spec step
// 2/4) when their slopes differ: parallel dual lines never intersect
// within the finite strip, so no event is ever generated for them — this
// is the concrete reading adopted for the spec's "strongly comparable"
// phrase in this context (recorded in DESIGN.md).
//
// Simultaneous multi-line concurrency (more than two lines crossing at
// the exact same point) is merged into one wider reversal block as long
// as the matching pending events extend the block contiguously; a
// same-U event found not to extend the current block is pushed back
// unprocessed and handled on its own turn, which only changes behavior
// for genuinely degenerate (non-general-position) inputs.
func Build(lines []Line) (*DCEL, error) {
	d := &DCEL{Lines: lines}
	boundary := map[int][]int{}

	zero := bigrade.NewExactInt(0)
	tl := d.addVertex(Vertex{VInf: 1})
	bl := d.addVertex(Vertex{VInf: -1})
	tr := d.addVertex(Vertex{UInf: 1, VInf: 1})
	br := d.addVertex(Vertex{UInf: 1, VInf: -1})

	n := len(lines)
	if n == 0 {
		f := d.addFace(0, -1, -1, zero)
		top, topTwin := d.addHalfEdgePair(tl, -1, f, -1)
		d.HalfEdges[topTwin].Origin = tr
		right, rightTwin := d.addHalfEdgePair(tr, -1, f, -1)
		d.HalfEdges[rightTwin].Origin = br
		bottom, bottomTwin := d.addHalfEdgePair(br, -1, f, -1)
		d.HalfEdges[bottomTwin].Origin = bl
		left, leftTwin := d.addHalfEdgePair(bl, -1, f, -1)
		d.HalfEdges[leftTwin].Origin = tl
		boundary[f] = []int{top, right, bottom, left}
		d.closeBoundaries(boundary)

		return d, nil
	}

	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	// Left-intercept (top-to-bottom) order: ascending Y (v(0) = -Y
	// descending means ascending Y is highest-v-first). Ties (equal Y)
	// break by descending X, since for equal Y the line with the larger
	// slope has the larger v immediately to the right of u=0 and so sits
	// higher in the top-to-bottom order.
	sort.SliceStable(order, func(i, j int) bool {
		a, b := lines[order[i]], lines[order[j]]
		if !a.Y.Equal(b.Y) {
			return a.Y.Less(b.Y)
		}

		return b.X.Less(a.X)
	})
	leftOrder := append([]int(nil), order...)

	pos := make([]int, n)
	for p, li := range order {
		pos[li] = p
	}

	gapFace := make([]int, n+1)
	for g := 0; g <= n; g++ {
		below, above := -1, -1
		if g > 0 {
			above = order[g-1]
		}
		if g < n {
			below = order[g]
		}
		gapFace[g] = d.addFace(g, below, above, zero)
	}

	leftVertex := make([]int, n)
	for i := 0; i < n; {
		j := i
		for j+1 < n && lines[order[j+1]].Y.Equal(lines[order[i]].Y) {
			j++
		}
		v := lines[order[i]].Y.Neg()
		vert := d.addVertex(Vertex{V: v})
		for p := i; p <= j; p++ {
			leftVertex[p] = vert
		}
		i = j + 1
	}

	pendingHE := make([]int, n)
	for p, li := range order {
		faceAbove, faceBelow := gapFace[p], gapFace[p+1]
		he, twin := d.addHalfEdgePair(leftVertex[p], li, faceAbove, faceBelow)
		pendingHE[li] = he
		boundary[faceAbove] = append(boundary[faceAbove], he)
		boundary[faceBelow] = append(boundary[faceBelow], twin)
	}

	topFrame, topFrameTwin := d.addHalfEdgePair(tl, -1, gapFace[0], -1)
	d.HalfEdges[topFrameTwin].Origin = leftVertex[0]
	boundary[gapFace[0]] = append(boundary[gapFace[0]], topFrame)

	bottomFrame, bottomFrameTwin := d.addHalfEdgePair(leftVertex[n-1], -1, gapFace[n], -1)
	d.HalfEdges[bottomFrameTwin].Origin = bl
	boundary[gapFace[n]] = append(boundary[gapFace[n]], bottomFrame)

	considered := map[[2]int]bool{}
	eh := &eventHeap{}
	heap.Init(eh)
	tryEnqueue := func(a, b int) {
		key := pairKey(a, b)
		if considered[key] {
			return
		}
		considered[key] = true
		la, lb := lines[a], lines[b]
		if la.X.Equal(lb.X) {
			return
		}
		u := la.Y.Sub(lb.Y).Div(la.X.Sub(lb.X))
		if u.Less(zero) {
			return
		}
		heap.Push(eh, crossingEvent{U: u, V: la.At(u), lineA: a, lineB: b})
	}
	for p := 0; p+1 < n; p++ {
		tryEnqueue(order[p], order[p+1])
	}

	for eh.Len() > 0 {
		ev := heap.Pop(eh).(crossingEvent)
		pa, pb := pos[ev.lineA], pos[ev.lineB]
		if abs(pa-pb) != 1 {
			continue // stale: no longer adjacent
		}
		lo, hi := pa, pb
		if lo > hi {
			lo, hi = hi, lo
		}

		var deferred []crossingEvent
		for eh.Len() > 0 && (*eh)[0].U.Equal(ev.U) {
			top := heap.Pop(eh).(crossingEvent)
			tp1, tp2 := pos[top.lineA], pos[top.lineB]
			tlo, thi := tp1, tp2
			if tlo > thi {
				tlo, thi = thi, tlo
			}
			switch {
			case thi == lo-1:
				lo = tlo
			case tlo == hi+1:
				hi = thi
			default:
				deferred = append(deferred, top)
			}
		}
		for _, dfEvent := range deferred {
			heap.Push(eh, dfEvent)
		}

		v := d.addVertex(Vertex{U: ev.U, V: ev.V})
		blockLines := append([]int(nil), order[lo:hi+1]...)
		for _, li := range blockLines {
			twin := d.HalfEdges[pendingHE[li]].Twin
			d.HalfEdges[twin].Origin = v
		}

		for g := lo + 1; g <= hi; g++ {
			d.Faces[gapFace[g]].UTo = ev.U
			d.Faces[gapFace[g]].UToInfinite = false
			gapFace[g] = d.addFace(g, -1, -1, ev.U)
		}

		for a, b := lo, hi; a < b; a, b = a+1, b-1 {
			order[a], order[b] = order[b], order[a]
		}
		for p := lo; p <= hi; p++ {
			pos[order[p]] = p
		}
		for g := lo; g <= hi+1; g++ {
			below, above := -1, -1
			if g > 0 {
				above = order[g-1]
			}
			if g < n {
				below = order[g]
			}
			d.Faces[gapFace[g]].Below = below
			d.Faces[gapFace[g]].Above = above
		}

		for p := lo; p <= hi; p++ {
			li := order[p]
			faceAbove, faceBelow := gapFace[p], gapFace[p+1]
			he, twin := d.addHalfEdgePair(v, li, faceAbove, faceBelow)
			pendingHE[li] = he
			boundary[faceAbove] = append(boundary[faceAbove], he)
			boundary[faceBelow] = append(boundary[faceBelow], twin)
		}

		if lo > 0 {
			tryEnqueue(order[lo-1], order[lo])
		}
		if hi+1 < n {
			tryEnqueue(order[hi], order[hi+1])
		}
	}

	// Right edge: the sweep's end state has order sorted descending by
	// slope (X) — the larger the slope, the larger v grows as u → ∞, so
	// the steepest line ends up topmost. Coalesce equal-slope runs into
	// one right-boundary vertex.
	rightVertex := make([]int, n)
	topHE := make(map[int]int, n)
	for i := 0; i < n; {
		j := i
		for j+1 < n && lines[order[j+1]].X.Equal(lines[order[i]].X) {
			j++
		}
		vert := d.addVertex(Vertex{UInf: 1})
		for p := i; p <= j; p++ {
			rightVertex[p] = vert
		}
		topHE[order[i]] = pendingHE[order[i]]
		i = j + 1
	}
	for p, li := range order {
		twin := d.HalfEdges[pendingHE[li]].Twin
		d.HalfEdges[twin].Origin = rightVertex[p]
	}

	topRightFrame, topRightFrameTwin := d.addHalfEdgePair(rightVertex[0], -1, gapFace[0], -1)
	d.HalfEdges[topRightFrameTwin].Origin = tr
	boundary[gapFace[0]] = append(boundary[gapFace[0]], topRightFrame)

	bottomRightFrame, bottomRightFrameTwin := d.addHalfEdgePair(br, -1, gapFace[n], -1)
	d.HalfEdges[bottomRightFrameTwin].Origin = rightVertex[n-1]
	boundary[gapFace[n]] = append(boundary[gapFace[n]], bottomRightFrame)

	topBar, topBarTwin := d.addHalfEdgePair(tr, -1, gapFace[0], -1)
	d.HalfEdges[topBarTwin].Origin = tl
	boundary[gapFace[0]] = append(boundary[gapFace[0]], topBar)

	bottomBar, bottomBarTwin := d.addHalfEdgePair(bl, -1, gapFace[n], -1)
	d.HalfEdges[bottomBarTwin].Origin = br
	boundary[gapFace[n]] = append(boundary[gapFace[n]], bottomBar)

	d.closeBoundaries(boundary)

	// VerticalOrder is kept ascending by slope independent of the sweep's
	// own (descending) internal order, since LocateVertical's binary
	// search assumes an ascending key.
	vertical := append([]int(nil), order...)
	sort.SliceStable(vertical, func(i, j int) bool {
		return lines[vertical[i]].X.Less(lines[vertical[j]].X)
	})
	d.VerticalOrder = vertical
	d.LeftOrder = leftOrder
	d.TopHalfEdge = topHE

	return d, nil
}

func abs(x int) int {
	if x < 0 {
		return -x
	}

	return x
}
