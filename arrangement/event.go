package arrangement

import "github.com/tildedata/mphom/bigrade"

// crossingEvent is a pending intersection of two currently-adjacent dual
// lines at (U,V), tracked by line identity rather than position: a line's
// position can shift due to an event elsewhere before this one is popped,
// so lineA/lineB (not posI/posJ) are checked for adjacency at pop time.
type crossingEvent struct {
	U, V        bigrade.Exact
	lineA, lineB int
}

// eventHeap is a container/heap min-priority-queue of crossingEvents
// ordered by (U,V), grounded on dijkstra.nodePQ's container/heap pattern
// (inverted here to order ascending U since the sweep walks left to
// right rather than by shortest distance).
type eventHeap []crossingEvent

func (h eventHeap) Len() int { return len(h) }

func (h eventHeap) Less(i, j int) bool {
	if c := h[i].U.Cmp(h[j].U); c != 0 {
		return c < 0
	}

	return h[i].V.Cmp(h[j].V) < 0
}

func (h eventHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *eventHeap) Push(x any) {
	*h = append(*h, x.(crossingEvent))
}

func (h *eventHeap) Pop() any {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]

	return item
}

func pairKey(a, b int) [2]int {
	if a < b {
		return [2]int{a, b}
	}

	return [2]int{b, a}
}
