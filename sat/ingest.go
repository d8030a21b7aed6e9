package sat

import "sort"

// AddClause ingests an externally supplied clause. Ownership of lits
// transfers to the solver: the caller must not read or reuse the slice
// afterward.
func (s *Solver) AddClause(lits []Literal) {
	s.addClause(lits, false, false)
}

// AddConflictClause ingests a clause the same way AddClause does, but
// flags it eligible for reduceDB purge even though it did not arise from
// conflict analysis (e.g. a driver-supplied nogood).
func (s *Solver) AddConflictClause(lits []Literal) {
	s.addClause(lits, true, false)
}

// AddLazyClause supplies the justifying clause for a literal previously
// pushed via Hint. It must be called only from inside an Explainer
// callback, and lits must satisfy the lazy-clause invariant (spec §5,
// §4.8): exactly one literal true, every other literal false, and the
// true literal's level is the maximum level among all of them. Under that
// precondition ingestion never needs to backtrack, which is what makes it
// safe to call reentrantly from inside analysis or propagation. It panics
// with a KindMisuse SolverError when lits break that invariant.
func (s *Solver) AddLazyClause(lits []Literal) {
	nTrue, trueLevel, maxLevel := 0, 0, 0
	for _, l := range lits {
		lv := s.LitLevel(l)
		switch s.LitValue(l) {
		case True:
			nTrue++
			trueLevel = lv
		case Undef:
			nTrue = len(lits) + 1 // an undefined literal breaks the invariant
		}
		maxLevel = max(maxLevel, lv)
	}
	if nTrue != 1 || trueLevel < maxLevel {
		panic(&SolverError{Kind: KindMisuse, Message: "AddLazyClause: clause breaks the lazy-clause invariant"})
	}
	s.addClause(lits, false, true)
}

func (s *Solver) addClause(lits []Literal, conflictOrigin, lazy bool) {
	checkCapacity(s, len(lits))
	if s.status == StatusUnsat {
		return // absorbed silently, per the UNSAT sink state (spec §4.9)
	}

	buf, tautology := dedupSort(lits)
	if tautology {
		return
	}
	for _, l := range buf {
		// A lazy clause's hint literal is true by design, even at the root.
		if !lazy && s.LitValue(l) == True && s.VarLevel(l.Var()) == 0 {
			return // root-true literal: tautology
		}
	}
	if s.status == StatusSat {
		s.status = StatusUndef // the new clause may invalidate the model on the trail
	}

	if !lazy {
		buf = s.dropRootFalse(buf)
	}
	if len(buf) == 0 {
		s.status = StatusUnsat
		return
	}

	sortWatchPreferred(s, buf)

	if len(buf) == 1 {
		s.cancelUntil(0)
		s.assertOrPatch(buf[0], NoClause, lazy)
		if conflict := s.Propagate(); conflict != NoClause {
			s.status = StatusUnsat
		}
		return
	}

	v0, v1 := s.LitValue(buf[0]), s.LitValue(buf[1])
	l0, l1 := s.LitLevel(buf[0]), s.LitLevel(buf[1])

	if v0 == False && v1 == False && l0 == l1 {
		// Both watched slots false at the same level: this clause is
		// already conflicting. Back up to that level and resolve it like
		// any other conflict.
		s.cancelUntil(l0)
		id := s.installClause(buf, conflictOrigin)
		learnt, backtrackLevel, lbd := s.analyze(id)
		s.cancelUntil(backtrackLevel)
		s.record(learnt, lbd)
		return
	}

	noTrailChange := (v0 != False && v1 != False) || (lazy && v0 == True)
	if noTrailChange {
		id := s.installClause(buf, conflictOrigin)
		if lazy {
			// buf[0] is the hint literal the lazy-clause invariant
			// guarantees is already true and ranked first: this is the
			// only branch a well-formed AddLazyClause call ever reaches,
			// so it is the one place that must patch its reason.
			s.reason[buf[0].Var()] = fromClauseID(id)
		}
		return
	}

	// Either slot 0 is undefined/true-but-stale with slot 1 false, or
	// slot 0 is false at a level strictly above slot 1's: back up to
	// slot 1's level, which always undoes whatever slot 0 was doing
	// above it, then assert slot 0 as forced by the new clause.
	s.cancelUntil(l1)
	id := s.installClause(buf, conflictOrigin)
	s.assertOrPatch(buf[0], id, lazy)
	if conflict := s.Propagate(); conflict != NoClause {
		s.status = StatusUnsat
	}
}

// assertOrPatch asserts l as forced by id. For the ordinary path that
// means enqueuing it fresh (l is currently undefined, as guaranteed by
// the caller). For the lazy path l is already on the trail with
// ReasonLazy: its reason is patched to the new clause instead.
func (s *Solver) assertOrPatch(l Literal, id ClauseID, lazy bool) {
	if lazy {
		s.reason[l.Var()] = fromClauseID(id)
		return
	}
	s.enqueue(l, fromClauseID(id))
}

// installClause allocates the clause and sets up its two watches. The
// caller is responsible for having already arranged buf in
// watch-preferred order.
func (s *Solver) installClause(buf []Literal, conflictOrigin bool) ClauseID {
	learnt := conflictOrigin
	id := s.store.alloc(buf, learnt)
	c := s.store.get(id)
	if conflictOrigin {
		c.flags |= flagConflictOrigin
	}
	if !learnt {
		s.constraints = append(s.constraints, id)
	} else {
		s.learnts = append(s.learnts, id)
	}

	s.watch.watch(c.literals[0].Negate(), id, c.literals[1])
	s.watch.watch(c.literals[1].Negate(), id, c.literals[0])

	if s.binary != nil && len(c.literals) == 2 {
		s.binary.addClause(c.literals[0], c.literals[1], id)
	}
	return id
}

// dropRootFalse splices out every literal permanently false at the root,
// recording a proof step per drop when proof recording is enabled.
func (s *Solver) dropRootFalse(buf []Literal) []Literal {
	j := 0
	for _, l := range buf {
		if s.LitValue(l) == False && s.VarLevel(l.Var()) == 0 {
			if s.proof != nil {
				s.proof.recordRootUnit(s, l.Negate(), s.rootReasonOf(l))
			}
			continue
		}
		buf[j] = l
		j++
	}
	return buf[:j]
}

// rootReasonOf returns the clause id that forced l's negation at the
// root, used only for proof bookkeeping when dropping l as root-false.
// Resolving through resolveReason means a still-lazy hint gets its
// explainer invoked right here, rather than leaving a gap in the chain.
func (s *Solver) rootReasonOf(l Literal) ClauseID {
	return s.resolveReason(l.Negate())
}

// dedupSort sorts lits by variable and removes exact duplicates in
// place, reporting tautology if two complementary literals are present.
func dedupSort(lits []Literal) (out []Literal, tautology bool) {
	buf := append([]Literal(nil), lits...)
	sort.Slice(buf, func(i, j int) bool { return buf[i].Var() < buf[j].Var() })

	out = buf[:0]
	for i, l := range buf {
		if i > 0 && l.Var() == out[len(out)-1].Var() {
			if l != out[len(out)-1] {
				return nil, true
			}
			continue
		}
		out = append(out, l)
	}
	return out, false
}

// sortWatchPreferred orders buf so that true literals come first in
// increasing level, undefined literals next, and false literals last in
// decreasing level — the order spec §4.7 needs so that the first two
// slots are always the best available watch pair.
func sortWatchPreferred(s *Solver, buf []Literal) {
	rank := func(l Literal) int {
		switch s.LitValue(l) {
		case True:
			return 0
		case Undef:
			return 1
		default:
			return 2
		}
	}
	sort.Slice(buf, func(i, j int) bool {
		ri, rj := rank(buf[i]), rank(buf[j])
		if ri != rj {
			return ri < rj
		}
		li, lj := s.LitLevel(buf[i]), s.LitLevel(buf[j])
		if ri == 2 { // false group: decreasing level
			return li > lj
		}
		return li < lj // true/undef groups: increasing level
	})
}
