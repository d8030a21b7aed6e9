package sat

import "testing"

func TestWatchIndexWatchAndUnwatch(t *testing.T) {
	var w watchIndex
	w.expand()
	w.expand()

	l := Literal(2)
	w.watch(l, ClauseID(0), Literal(4))
	w.watch(l, ClauseID(1), Literal(5))

	if len(w.lists[l]) != 2 {
		t.Fatalf("lists[l] has %d entries, want 2", len(w.lists[l]))
	}

	w.unwatch(l, ClauseID(0))
	if len(w.lists[l]) != 1 || w.lists[l][0].clause != ClauseID(1) {
		t.Fatalf("unwatch did not remove the right entry: %v", w.lists[l])
	}
}

func TestWatchIndexSweepDropsDeletedClauses(t *testing.T) {
	var w watchIndex
	w.expand()
	w.expand()

	var cs clauseStore
	keepID := cs.alloc([]Literal{PositiveLiteral(1), PositiveLiteral(2)}, false)
	dropID := cs.alloc([]Literal{PositiveLiteral(1), NegativeLiteral(2)}, false)
	cs.get(dropID).flags |= flagDeleted

	l := Literal(2)
	w.watch(l, keepID, Literal(0))
	w.watch(l, dropID, Literal(0))

	w.sweep(&cs)

	if len(w.lists[l]) != 1 || w.lists[l][0].clause != keepID {
		t.Fatalf("sweep left %v, want only the non-deleted clause", w.lists[l])
	}
}
