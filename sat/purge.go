package sat

import "sort"

// maybeReduceDB is called every purgeInterval conflicts (see Solve). It
// grows the schedule regardless of outcome, and actually purges only if
// the learnt count has grown past the current threshold, per spec §4.5.
func (s *Solver) maybeReduceDB() {
	s.nextPurgeAt = s.TotalConflicts + int64(s.purgeInterval)
	s.purgeInterval *= 1.5

	if float64(len(s.learnts)) > s.purgeThreshold {
		s.reduceDB()
	}
	s.purgeThreshold *= 1.1
}

// locked reports whether id is currently the reason for an assigned
// variable (deleting it would leave a dangling justification on the
// trail).
func (s *Solver) locked(id ClauseID) bool {
	c := s.store.get(id)
	if len(c.literals) == 0 {
		return false
	}
	r := s.reason[c.literals[0].Var()]
	return r != ReasonNone && r != ReasonLazy && r.clauseID() == id
}

// reduceDB discards learnt clauses by activity, in the classic MiniSat
// shape: sort ascending, always drop the bottom half (excluding locked
// clauses and clauses with 2 or fewer literals, which are glue clauses too
// valuable to ever purge), and additionally drop any clause in the top
// half whose activity has fallen below the per-clause share of the
// current increment.
func (s *Solver) reduceDB() {
	s.TotalPurges++

	sort.Slice(s.learnts, func(i, j int) bool {
		ci, cj := s.store.get(s.learnts[i]), s.store.get(s.learnts[j])
		if ci.activity != cj.activity {
			return ci.activity < cj.activity
		}
		return ci.lbd > cj.lbd
	})

	n := len(s.learnts)
	limit := n / 2
	extraLim := s.clauseInc / float64(n)

	kept := s.learnts[:0]
	for i, id := range s.learnts {
		c := s.store.get(id)
		disposable := len(c.literals) > 2 && !s.locked(id)
		if disposable && (i < limit || c.activity < extraLim) {
			s.store.release(id)
			continue
		}
		kept = append(kept, id)
	}
	s.learnts = kept
	s.watch.sweep(&s.store)
}
