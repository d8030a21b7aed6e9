package sat

// Reason identifies why a trail literal is true: either a decision, a
// lazily-explained hint awaiting its reason clause, or a real clause id.
type Reason int32

const (
	// ReasonNone marks a literal that was a decision, not implied by any
	// clause.
	ReasonNone Reason = -1

	// ReasonLazy marks a literal that was pushed via Hint and whose
	// justifying clause has not been supplied yet. It must be resolved to
	// a real ClauseID (via the Explainer callback) before the literal's
	// reason can be walked by propagation bookkeeping or analysis.
	ReasonLazy Reason = -2
)

// clauseID returns the Reason as a ClauseID. It must only be called when
// the Reason is known to be a real clause (not ReasonNone/ReasonLazy).
func (r Reason) clauseID() ClauseID {
	return ClauseID(r)
}

func fromClauseID(id ClauseID) Reason {
	return Reason(id)
}
