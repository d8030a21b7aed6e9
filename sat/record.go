package sat

// record installs a freshly learnt clause (UIP at position 0, the
// highest-level remaining literal at position 1) and asserts its UIP. A
// unit clause is simply enqueued as a permanent root-level fact; the
// caller has already cancelled to backtrackLevel, which is 0 for a unit.
func (s *Solver) record(learnt []Literal, lbd uint32) {
	if len(learnt) == 1 {
		s.enqueue(learnt[0], ReasonNone)
		return
	}

	id := s.store.alloc(learnt, true)
	c := s.store.get(id)
	c.lbd = lbd

	s.watch.watch(c.literals[0].Negate(), id, c.literals[1])
	s.watch.watch(c.literals[1].Negate(), id, c.literals[0])
	s.learnts = append(s.learnts, id)

	if s.binary != nil && len(c.literals) == 2 {
		s.binary.addClause(c.literals[0], c.literals[1], id)
	}

	s.enqueue(c.literals[0], fromClauseID(id))
}
