package sat

// antecedentsOf returns the literals that justify a clause's propagation:
// every literal of the clause if skipFirst is false (the conflict-clause
// case, where every literal is false), or every literal but the first if
// skipFirst is true (the clause's own asserted literal is excluded, the
// rest are its antecedents). Every returned literal is false under the
// current assignment, which is exactly the form the learned clause needs.
func (s *Solver) antecedentsOf(id ClauseID, skipFirst bool) []Literal {
	c := s.store.get(id)
	s.tmpReason = s.tmpReason[:0]
	lits := c.literals
	if skipFirst {
		lits = lits[1:]
	}
	s.tmpReason = append(s.tmpReason, lits...)
	if c.isLearnt() {
		s.bumpClauseActivity(c)
	}
	return s.tmpReason
}

// resolveReason returns the real clause id justifying l, invoking the
// Explainer callback if l was pushed via Hint and its reason is still
// lazy. After the callback returns, the reason must be real: the
// Explainer contract (spec §4.8/§5) is that AddLazyClause patches it
// before returning.
func (s *Solver) resolveReason(l Literal) ClauseID {
	v := l.Var()
	r := s.reason[v]
	if r == ReasonLazy {
		if s.explainer == nil {
			panic(&SolverError{Kind: KindMisuse, Message: "lazy reason encountered with no Explainer configured"})
		}
		s.explainer.Explain(s, l)
		r = s.reason[v]
		if r == ReasonLazy {
			panic(&SolverError{Kind: KindMisuse, Message: "Explainer did not resolve the lazy reason for its literal"})
		}
	}
	return r.clauseID()
}

// analyze performs first-UIP conflict analysis starting from the given
// conflicting clause, returning the learned clause (UIP at position 0,
// highest-level remaining literal at position 1), the backtrack level, and
// the clause's literal block distance.
func (s *Solver) analyze(conflict ClauseID) ([]Literal, int, uint32) {
	level := s.DecisionLevel()
	s.seen.clear()

	s.tmpLearnt = append(s.tmpLearnt[:0], 0) // placeholder for the UIP

	nImplicationPoints := 0
	nextIdx := len(s.trail) - 1
	backtrackLevel := 0

	reasonID := conflict
	skipFirst := false
	var p Literal

	if s.proof != nil {
		s.tmpChain = s.tmpChain[:0]
	}

	for {
		if s.proof != nil {
			s.tmpChain = append(s.tmpChain, snapshotLiterals(s.store.get(reasonID).literals))
		}

		for _, q := range s.antecedentsOf(reasonID, skipFirst) {
			v := q.Var()
			if s.seen.contains(v) {
				continue
			}
			s.seen.add(v)
			s.bumpVarActivity(v)

			if s.VarLevel(v) == level {
				nImplicationPoints++
				continue
			}
			s.tmpLearnt = append(s.tmpLearnt, q)
			if lv := s.VarLevel(v); lv > backtrackLevel {
				backtrackLevel = lv
			}
		}

		for {
			p = s.trail[nextIdx]
			nextIdx--
			if s.seen.contains(p.Var()) {
				break
			}
		}

		nImplicationPoints--
		if nImplicationPoints <= 0 {
			break
		}

		reasonID = s.resolveReason(p)
		skipFirst = true
	}

	s.tmpLearnt[0] = p.Negate()

	lbd := s.computeLBD(s.tmpLearnt)
	if s.proof != nil {
		s.proof.recordLearnt(s.tmpLearnt, s.tmpChain)
	}

	learnt := s.minimizeClause(s.tmpLearnt, level)
	backtrackLevel = s.placeSecondWatch(learnt)

	return learnt, backtrackLevel, lbd
}

// placeSecondWatch swaps the literal with the highest level among
// learnt[1:] into position 1 (so it becomes the clause's second watched
// literal) and returns that level, which is the backtrack target. It
// returns 0 (root) for a unit learned clause.
func (s *Solver) placeSecondWatch(learnt []Literal) int {
	if len(learnt) <= 1 {
		return 0
	}
	maxAt := 1
	for i := 2; i < len(learnt); i++ {
		if s.LitLevel(learnt[i]) > s.LitLevel(learnt[maxAt]) {
			maxAt = i
		}
	}
	learnt[1], learnt[maxAt] = learnt[maxAt], learnt[1]
	return s.LitLevel(learnt[1])
}

func (s *Solver) computeLBD(lits []Literal) uint32 {
	if len(lits) == 0 {
		return 0
	}
	var mask uint64
	extra := map[int]bool(nil)
	n := uint32(0)
	for _, l := range lits {
		lv := s.LitLevel(l)
		if lv < 64 {
			bit := uint64(1) << uint(lv)
			if mask&bit == 0 {
				mask |= bit
				n++
			}
			continue
		}
		if extra == nil {
			extra = map[int]bool{}
		}
		if !extra[lv] {
			extra[lv] = true
			n++
		}
	}
	return n
}

// levelMask returns the "restricted" level bitmask used by minimization:
// each literal's decision level, collapsed modulo 32, sets a bit. This is
// the approximate classical scheme from spec §4.4: false positives (an
// ancestor wrongly judged at a represented level) are allowed, which can
// only make minimization conservative, never unsound.
func (s *Solver) levelMask(lits []Literal) uint32 {
	var mask uint32
	for _, l := range lits {
		mask |= 1 << uint(s.LitLevel(l)%32)
	}
	return mask
}

// minimizeClause drops context literals (lits[1:]) that are implied by the
// rest of the learned clause through their reason chains, per spec §4.4.
// lits[0], the UIP, is never a candidate.
func (s *Solver) minimizeClause(lits []Literal, level int) []Literal {
	mask := s.levelMask(lits)
	out := lits[:1]
	for _, l := range lits[1:] {
		r := s.reason[l.Var()]
		if r == ReasonNone || r == ReasonLazy || !s.litRedundant(l, mask) {
			out = append(out, l)
		}
	}
	return out
}

// litRedundant reports whether l's assignment is implied by the rest of
// the (pre-minimization) learned clause, walking l's reason chain with a
// scratch stack. An ancestor variable blocks removal unless it is already
// "seen" (already represented in the clause), has a real (non-lazy)
// reason, and lies at a level the level mask says is represented.
func (s *Solver) litRedundant(l Literal, levelMask uint32) bool {
	s.tmpStack = append(s.tmpStack[:0], l)

	for len(s.tmpStack) > 0 {
		cur := s.tmpStack[len(s.tmpStack)-1]
		s.tmpStack = s.tmpStack[:len(s.tmpStack)-1]

		c := s.store.get(s.reason[cur.Var()].clauseID())
		for _, q := range c.literals[1:] {
			w := q.Var()
			if s.VarLevel(w) == 0 || s.seen.contains(w) {
				continue
			}
			ar := s.reason[w]
			if ar == ReasonNone || ar == ReasonLazy {
				return false
			}
			if levelMask&(1<<uint(s.VarLevel(w)%32)) == 0 {
				return false
			}
			s.seen.add(w)
			s.tmpStack = append(s.tmpStack, q)
		}
	}
	return true
}
