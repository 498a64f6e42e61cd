package mod2

import "container/heap"

// maxHeap is a plain array-backed binary max-heap of row indices; h[0] is
// always the current maximum when non-empty. Modeled on dijkstra.nodePQ's
// container/heap.Interface implementation, inverted to a max-heap.
type maxHeap []int

func (h maxHeap) Len() int            { return len(h) }
func (h maxHeap) Less(i, j int) bool  { return h[i] > h[j] }
func (h maxHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *maxHeap) Push(x interface{}) { *h = append(*h, x.(int)) }
func (h *maxHeap) Pop() interface{} {
	old := *h
	n := len(old)
	v := old[n-1]
	*h = old[:n-1]

	return v
}

// Column is a sparse mod-2 column: a multiset of nonnegative row indices
// where an even number of pushes of the same row cancels it out. Internally
// it is a lazy max-heap: pushes and Add are O(log n)/O(n) respectively and
// never eagerly cancel duplicates; PopMax/PeekMax/Prune resolve
// cancellations as needed. This mirrors the vector_heap_mod representation
// the engine is ported from (original_source/math/phat_mod).
type Column struct {
	h       maxHeap
	inserts int  // raw entries appended since the last Prune
	dirty   bool // true once uncancelled duplicates may be present
}

// NewColumn builds a Column containing the given row indices (duplicates
// allowed; they cancel pairwise per mod-2 semantics), heapified once.
func NewColumn(rows ...int) *Column {
	c := &Column{h: append(maxHeap(nil), rows...)}
	heap.Init(&c.h)
	c.dirty = len(c.h) > 0

	return c
}

// PushRow pushes one row index onto the column (mod-2: a second push of
// the same row later cancels both).
func (c *Column) PushRow(row int) {
	heap.Push(&c.h, row)
	c.inserts++
	c.dirty = true
}

func (c *Column) popRaw() (int, bool) {
	if len(c.h) == 0 {
		return 0, false
	}

	return heap.Pop(&c.h).(int), true
}

func (c *Column) peekRaw() (int, bool) {
	if len(c.h) == 0 {
		return 0, false
	}

	return c.h[0], true
}

// IsFinalized reports whether the column is currently known to be unique
// and sorted descending (i.e. Prune/Finalize ran and nothing was pushed or
// added since).
func (c *Column) IsFinalized() bool { return !c.dirty }

// PopMax destructively removes and returns the current logical maximum row
// index, resolving any pending mod-2 cancellations first (an even run of
// equal entries at the top cancels completely; an odd run leaves one).
// Returns ok=false if the column is logically empty.
func (c *Column) PopMax() (int, bool) {
	for {
		v, ok := c.popRaw()
		if !ok {
			return 0, false
		}
		v2, ok2 := c.peekRaw()
		if !ok2 || v2 != v {
			return v, true
		}
		// v2 == v: these two cancel; drop the duplicate and try again.
		c.popRaw()
	}
}

// PeekMax returns the current logical maximum row index without removing
// it (internally pops to resolve cancellations, then pushes the survivor
// back), mirroring vector_heap_mod's _get_max_index.
func (c *Column) PeekMax() (int, bool) {
	v, ok := c.PopMax()
	if !ok {
		return 0, false
	}
	heap.Push(&c.h, v)

	return v, true
}

// IsEmpty reports whether the column is logically empty once pending
// cancellations are resolved.
func (c *Column) IsEmpty() bool {
	_, ok := c.PeekMax()

	return !ok
}

// Prune materializes the column's canonical form: entries unique and
// sorted descending. A fully descending-sorted array already satisfies the
// binary max-heap invariant, so no re-heapify is required afterward.
func (c *Column) Prune() {
	out := make(maxHeap, 0, len(c.h))
	for {
		v, ok := c.PopMax()
		if !ok {
			break
		}
		out = append(out, v)
	}
	c.h = out
	c.inserts = 0
	c.dirty = false
}

// Finalize is Prune, named per the spec's lifecycle terminology: a column
// is "finalized" between external reads of its content.
func (c *Column) Finalize() { c.Prune() }

// maybeAutoPrune prunes once the number of raw inserts since the last
// prune exceeds half the current heap size, matching vector_heap_mod's
// amortized-cost heuristic (2*inserts > size).
func (c *Column) maybeAutoPrune() {
	if 2*c.inserts > len(c.h) {
		c.Prune()
	}
}

// Add concatenates other's raw entries onto c and re-heapifies in O(n)
// rather than pushing one at a time, then auto-prunes if warranted. c and
// other must be distinct columns.
func (c *Column) Add(other *Column) {
	c.h = append(c.h, other.h...)
	heap.Init(&c.h)
	c.inserts += len(other.h)
	c.dirty = true
	c.maybeAutoPrune()
}

// AddPopped implements the reduction's fast path (spec §9): source must
// already be finalized, and the caller must already have popped (removed)
// the matching pivot from c itself — this is the "add a finalized source
// to a just-popped target, skipping the source's pivot" optimization.
// Returns ErrNotFinalized if source is not finalized.
func (c *Column) AddPopped(source *Column) error {
	if !source.IsFinalized() {
		return ErrNotFinalized
	}
	if len(source.h) == 0 {
		return nil
	}
	// source.h[0] is its pivot (finalized columns are sorted descending);
	// everything from index 1 on is added to the already-popped target.
	c.h = append(c.h, source.h[1:]...)
	heap.Init(&c.h)
	c.inserts += len(source.h) - 1
	c.dirty = true
	c.maybeAutoPrune()

	return nil
}

// Rows finalizes the column and returns a defensive copy of its rows,
// sorted descending.
func (c *Column) Rows() []int {
	c.Finalize()
	out := make([]int, len(c.h))
	copy(out, c.h)

	return out
}

// Contains finalizes the column and reports whether row is present, via
// binary search over the sorted-descending entries.
func (c *Column) Contains(row int) bool {
	c.Finalize()
	lo, hi := 0, len(c.h)
	for lo < hi {
		mid := (lo + hi) / 2
		switch {
		case c.h[mid] == row:
			return true
		case c.h[mid] > row: // descending order: bigger values come first
			lo = mid + 1
		default:
			hi = mid
		}
	}

	return false
}

// Clone returns a deep copy of the column, preserving its current (lazy or
// finalized) state.
func (c *Column) Clone() *Column {
	return &Column{
		h:       append(maxHeap(nil), c.h...),
		inserts: c.inserts,
		dirty:   c.dirty,
	}
}
