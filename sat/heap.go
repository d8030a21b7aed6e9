package sat

import "github.com/rhartert/yagh"

// varHeap orders unassigned, decidable variables by descending activity.
// It wraps the teacher's own dependency, yagh's indexed heap, which
// supports O(log n) decrease-key via Put and O(1) membership via Contains
// — exactly what activity bumps and lazy deletion need.
//
// Lazy deletion: a variable is only ever removed from the heap when it is
// extracted by pop(); if the extracted variable turns out to already be
// assigned (or blocked from decision), it is silently discarded rather
// than reinserted. Unassignment on backtrack (reinsert) is what brings a
// variable back.
type varHeap struct {
	order *yagh.IntMap[float64]
}

func newVarHeap() *varHeap {
	return &varHeap{order: yagh.New[float64](0)}
}

// addVar registers a new variable in the heap with the given initial
// activity.
func (h *varHeap) addVar(v Variable, activity float64) {
	h.order.GrowBy(1)
	h.order.Put(int(v), -activity)
}

// contains reports whether v is currently queued in the heap.
func (h *varHeap) contains(v Variable) bool {
	return h.order.Contains(int(v))
}

// insert (re-)queues v with key 0, the lowest priority a variable can
// hold, whatever its activity; its next activity update moves it. Used for
// a freshly unblocked variable (backtracking uses reinsert).
func (h *varHeap) insert(v Variable) {
	// Put is idempotent on membership: it inserts if absent, updates the
	// key (decrease-key) if present.
	h.order.Put(int(v), 0)
}

// update notifies the heap that v's activity changed, if v is currently
// queued. No-op if v has already been extracted (lazy deletion).
func (h *varHeap) update(v Variable, activity float64) {
	if h.order.Contains(int(v)) {
		h.order.Put(int(v), -activity)
	}
}

// reinsert puts v back in the heap at the given activity, used when v is
// unassigned by a backtrack.
func (h *varHeap) reinsert(v Variable, activity float64) {
	h.order.Put(int(v), -activity)
}

// pop extracts the variable with the highest activity, or ok=false if the
// heap is empty.
func (h *varHeap) pop() (v Variable, ok bool) {
	next, ok := h.order.Pop()
	if !ok {
		return 0, false
	}
	return Variable(next.Elem), true
}
