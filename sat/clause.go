package sat

import "strings"

// ClauseID identifies a clause record in the solver's clause store. Ids,
// not pointers, are what watch lists and the learnt registry hold, so
// clause records can be freely reallocated or recycled without needing to
// fix up any other structure.
type ClauseID int32

// NoClause is the sentinel clause id meaning "no clause" (e.g. a decision's
// reason, or the conflict slot when there is no conflict).
const NoClause ClauseID = -1

type clauseFlags uint8

const (
	flagDeleted clauseFlags = 1 << iota
	flagLearnt
	flagConflictOrigin
)

// Clause is a disjunction of literals. The first two literals of a clause
// that is currently watched are its two watched literals; that invariant is
// structural (maintained by propagate/ingest), not tracked by a flag.
type Clause struct {
	literals []Literal
	flags    clauseFlags

	// activity is bumped when the clause participates in conflict analysis
	// and decayed over time; it drives which learnt clauses survive a purge.
	activity float64

	// lbd is the literal block distance computed when the clause was
	// learnt: the number of distinct decision levels among its literals.
	// It is purely informational bookkeeping exposed via LBD(), used by
	// purge only as a tiebreaker alongside the activity-based rule.
	lbd uint32
}

func (c *Clause) isDeleted() bool        { return c.flags&flagDeleted != 0 }
func (c *Clause) isLearnt() bool         { return c.flags&flagLearnt != 0 }
func (c *Clause) isConflictOrigin() bool { return c.flags&flagConflictOrigin != 0 }

// Literals returns the clause's current literals. The caller must not
// retain or mutate the returned slice: it is invalidated by the next
// simplification or deletion of the clause.
func (c *Clause) Literals() []Literal {
	return c.literals
}

// LBD returns the clause's literal block distance, or 0 if it was never
// computed (original clauses and clauses added through AddConflictClause
// read as 0; clauses learnt by conflict analysis carry their LBD).
func (c *Clause) LBD() uint32 {
	return c.lbd
}

// Activity returns the clause's current activity score.
func (c *Clause) Activity() float64 {
	return c.activity
}

func (c *Clause) String() string {
	if len(c.literals) == 0 {
		return "clause[]"
	}
	sb := strings.Builder{}
	sb.WriteString("clause[")
	sb.WriteString(c.literals[0].String())
	for _, l := range c.literals[1:] {
		sb.WriteByte(' ')
		sb.WriteString(l.String())
	}
	sb.WriteByte(']')
	return sb.String()
}
