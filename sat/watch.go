package sat

// watcher attaches a clause to the watch list of one of its two watched
// literals. blocker caches a literal of the clause that was recently
// observed to be true, so propagate can skip loading the clause entirely
// when the blocker is still true.
type watcher struct {
	clause  ClauseID
	blocker Literal
}

// watchIndex holds one watch list per literal. A clause watching literal w
// is stored in the list of w's negation, so lists[l] holds the clauses to
// visit when l becomes true. A clause appears in exactly two lists (those
// of the negations of its first two literals) for as long as it is watched
// and not deleted.
type watchIndex struct {
	lists [][]watcher
}

func (w *watchIndex) expand() {
	w.lists = append(w.lists, nil, nil) // one slot per literal of the new variable
}

func (w *watchIndex) watch(l Literal, id ClauseID, blocker Literal) {
	w.lists[l] = append(w.lists[l], watcher{clause: id, blocker: blocker})
}

// unwatch removes every entry referencing id from l's watch list.
func (w *watchIndex) unwatch(l Literal, id ClauseID) {
	lst := w.lists[l]
	j := 0
	for i := range lst {
		if lst[i].clause != id {
			lst[j] = lst[i]
			j++
		}
	}
	w.lists[l] = lst[:j]
}

// sweep compacts every watch list, dropping entries whose clause has been
// deleted. It is invoked after root-level simplification and after a
// learnt-clause purge, both of which lazily mark clauses deleted without
// touching the watch lists at the time of deletion.
func (w *watchIndex) sweep(store *clauseStore) {
	for l := range w.lists {
		lst := w.lists[l]
		j := 0
		for i := range lst {
			if c := store.get(lst[i].clause); c != nil && !c.isDeleted() {
				lst[j] = lst[i]
				j++
			}
		}
		w.lists[l] = lst[:j]
	}
}
