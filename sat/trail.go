package sat

// enqueue asserts l true with the given reason, appending it to the trail.
// It returns false if l is already false (a conflicting assignment), true
// otherwise (including when l was already true).
func (s *Solver) enqueue(l Literal, from Reason) bool {
	switch s.LitValue(l) {
	case False:
		return false
	case True:
		return true
	default:
		v := l.Var()
		val := Lift(l.IsPositive())
		s.value[v] = val
		s.varLevel[v] = int32(s.DecisionLevel())
		s.reason[v] = from
		s.trail = append(s.trail, l)
		return true
	}
}

// assume pushes a new decision level and enqueues l as a decision (no
// reason) at that level.
func (s *Solver) assume(l Literal) bool {
	s.levelStart = append(s.levelStart, int32(len(s.trail)))
	return s.enqueue(l, ReasonNone)
}

// undoOne pops the most recent trail literal, unassigning its variable and
// returning it to the decision heap.
func (s *Solver) undoOne() {
	l := s.trail[len(s.trail)-1]
	v := l.Var()

	if s.opts.PhaseSaving {
		s.phase[v] = s.value[v]
	}

	s.value[v] = Undef
	s.varLevel[v] = -1
	s.reason[v] = ReasonNone
	s.trail = s.trail[:len(s.trail)-1]

	if s.decidable[v] {
		s.heap.reinsert(v, s.activity[v])
	}
}

// cancelUntil truncates the trail back to the given decision level,
// undoing every literal assigned above it. The propagation cursor is
// rewound with the trail.
func (s *Solver) cancelUntil(level int) {
	for s.DecisionLevel() > level {
		start := s.levelStart[len(s.levelStart)-1]
		for len(s.trail) > int(start) {
			s.undoOne()
		}
		s.levelStart = s.levelStart[:len(s.levelStart)-1]
	}
	if s.qhead > len(s.trail) {
		s.qhead = len(s.trail)
	}
}

// Decide picks the next variable to branch on via the activity heap,
// assigning it the polarity held in its phase cache, and pushes a new
// decision level. It returns false when the heap has nothing left to
// offer: every variable is assigned, so the problem is satisfied.
func (s *Solver) Decide() bool {
	for {
		v, ok := s.heap.pop()
		if !ok {
			return false
		}
		if s.value[v] != Undef || !s.decidable[v] {
			continue // lazily-deleted entry: already assigned or blocked
		}

		s.TotalDecisions++

		var l Literal
		if s.phase[v] == True {
			l = PositiveLiteral(v)
		} else {
			l = NegativeLiteral(v)
		}
		s.assume(l)
		return true
	}
}
