package sat

// bumpVarActivity increases v's activity by the current increment, and
// rescales every variable's activity (and the increment itself) if that
// pushes v over the threshold. Rescaling preserves relative activity
// across all variables; it merely keeps every value in a safe float64
// range.
func (s *Solver) bumpVarActivity(v Variable) {
	s.activity[v] += s.varInc
	if s.activity[v] > 1e100 {
		for i := range s.activity {
			s.activity[i] *= 1e-100
		}
		s.varInc *= 1e-100
	}
	s.heap.update(v, s.activity[v])
}

// decayVarActivity makes future bumps relatively larger than past ones by
// growing the increment rather than shrinking every stored activity.
func (s *Solver) decayVarActivity() {
	s.varInc /= s.opts.VariableDecay
}

// bumpClauseActivity is the clause-activity analogue of bumpVarActivity,
// applied to learnt clauses used during conflict analysis.
func (s *Solver) bumpClauseActivity(c *Clause) {
	c.activity += s.clauseInc
	if c.activity > 1e20 {
		for _, id := range s.learnts {
			s.store.get(id).activity *= 1e-20
		}
		s.clauseInc *= 1e-20
	}
}

func (s *Solver) decayClauseActivity() {
	s.clauseInc /= s.opts.ClauseDecay
}
