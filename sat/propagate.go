package sat

// Propagate runs BCP from the propagation cursor to the end of the trail,
// following the two-watched-literal scheme. It returns NoClause once the
// cursor catches up with the trail (no conflict), or the id of a falsified
// clause the moment one is found (the cursor and watch lists are left
// exactly as described in spec §4.2: compacted up to the conflicting
// entry, cursor unmoved beyond the literal that triggered the conflict).
func (s *Solver) Propagate() ClauseID {
	for s.qhead < len(s.trail) {
		l := s.trail[s.qhead]
		s.qhead++

		if s.binary != nil {
			if conflict := s.propagateBinaryFor(l); conflict != NoClause {
				return conflict
			}
		}

		// Clauses watching l are stored at bucket Negate(watched literal),
		// so the bucket keyed by l itself is exactly the set of clauses
		// whose watched literal just became false.
		s.tmpWatchers = append(s.tmpWatchers[:0], s.watch.lists[l]...)
		s.watch.lists[l] = s.watch.lists[l][:0]

		falseLit := l.Negate()

		for i := 0; i < len(s.tmpWatchers); i++ {
			w := s.tmpWatchers[i]

			// 1. Cached blocker already true: keep the watch untouched,
			// no need to even load the clause.
			if s.LitValue(w.blocker) == True {
				s.watch.lists[l] = append(s.watch.lists[l], w)
				continue
			}

			c := s.store.get(w.clause)
			lits := c.literals

			// 2. Normalize so that falseLit sits at position 1.
			if lits[0] == falseLit {
				lits[0], lits[1] = lits[1], lits[0]
			}

			// 3. The other watched literal is true: clause already
			// satisfied, refresh the blocker and keep the watch.
			if s.LitValue(lits[0]) == True {
				s.watch.lists[l] = append(s.watch.lists[l], watcher{clause: w.clause, blocker: lits[0]})
				continue
			}

			// 4. Look for a replacement watch among the rest of the
			// clause.
			moved := false
			for k := 2; k < len(lits); k++ {
				if s.LitValue(lits[k]) != False {
					lits[1], lits[k] = lits[k], lits[1]
					s.watch.watch(lits[1].Negate(), w.clause, lits[0])
					moved = true
					break
				}
			}
			if moved {
				continue
			}

			// 5. No replacement: the clause is unit or conflicting on
			// lits[0]. Keep watching l either way.
			s.watch.lists[l] = append(s.watch.lists[l], watcher{clause: w.clause, blocker: lits[0]})

			if s.LitValue(lits[0]) == False {
				// Conflict. Copy the untouched remainder of the watch
				// list back and stop; the cursor stays where it is.
				s.watch.lists[l] = append(s.watch.lists[l], s.tmpWatchers[i+1:]...)
				return w.clause
			}

			s.assertUnit(lits[0], w.clause)
		}
	}
	return NoClause
}

// assertUnit enqueues lits[0] as forced by clause id, recording a root-level
// proof unit if proof recording is enabled (spec §4.2's root-level
// contract: every root-level propagation must be citable by id for later
// resolution steps).
func (s *Solver) assertUnit(l Literal, id ClauseID) {
	s.enqueue(l, fromClauseID(id))
	if s.proof != nil && s.DecisionLevel() == 0 {
		s.proof.recordRootUnit(s, l, id)
	}
}

func (s *Solver) propagateBinaryFor(l Literal) ClauseID {
	for _, imp := range s.binary.implications[l] {
		switch s.LitValue(imp.lit) {
		case True:
			continue
		case False:
			return imp.clause
		default:
			s.assertUnit(imp.lit, imp.clause)
		}
	}
	return NoClause
}
