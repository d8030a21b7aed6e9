package sat

// MinimalModelOptions configures MinimalModel (spec §6).
type MinimalModelOptions struct {
	// UseTautologies additionally drops literals whose reason is a
	// conflict-origin clause none of whose other literals has been dropped,
	// so the literal stays implied by the kept ones — the "tautology via
	// reasons" pass.
	UseTautologies bool
	// SkipPropagated excludes literals with a real reason clause from
	// removal candidacy in the first pass, leaving only decisions as
	// candidates.
	SkipPropagated bool
}

// MinimalModel compresses the current trail (which must hold a satisfying
// assignment, i.e. Status() == StatusSat) down to a smaller set of
// literals that still satisfies every original clause. It does not modify
// the solver's own trail; it returns a fresh slice.
//
// The first pass drops a literal when every original clause containing it
// has at least one other true literal: removing it can never leave a
// clause unsatisfied, and the satisfied-count bookkeeping is updated as
// literals are dropped so that cascading removals compound correctly,
// matching the order the trail itself was built in.
func (s *Solver) MinimalModel(opts MinimalModelOptions) []Literal {
	lits := append([]Literal(nil), s.trail...)

	clausesByLit := make([][]ClauseID, len(s.watch.lists))
	satCount := make(map[ClauseID]int, len(s.constraints))
	for _, id := range s.constraints {
		c := s.store.get(id)
		if c.isDeleted() {
			continue
		}
		n := 0
		for _, l := range c.literals {
			clausesByLit[l] = append(clausesByLit[l], id)
			if s.LitValue(l) == True {
				n++
			}
		}
		satCount[id] = n
	}

	removed := make([]bool, len(s.value))

	for _, l := range lits {
		if opts.SkipPropagated {
			if r := s.reason[l.Var()]; r != ReasonNone && r != ReasonLazy {
				continue
			}
		}

		essential := false
		for _, id := range clausesByLit[l] {
			if satCount[id] == 1 {
				essential = true
				break
			}
		}
		if essential {
			continue
		}

		removed[l.Var()] = true
		for _, id := range clausesByLit[l] {
			satCount[id]--
		}
	}

	if opts.UseTautologies {
		for i := len(lits) - 1; i >= 0; i-- {
			l := lits[i]
			r := s.reason[l.Var()]
			if r == ReasonNone || r == ReasonLazy {
				continue
			}
			c := s.store.get(r.clauseID())
			if c.isDeleted() || !c.isConflictOrigin() {
				continue
			}

			blocked := false
			for _, cl := range c.literals {
				if removed[cl.Var()] {
					blocked = true
					break
				}
			}
			if !blocked {
				removed[l.Var()] = true
			}
		}
	}

	out := lits[:0]
	for _, l := range lits {
		if !removed[l.Var()] {
			out = append(out, l)
		}
	}
	return out
}
