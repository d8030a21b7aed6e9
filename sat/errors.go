package sat

import "fmt"

// Kind classifies a SolverError.
type Kind uint8

const (
	// KindMisuse marks a violation of the single-threaded calling
	// contract, e.g. BlockDecide called away from the root level.
	KindMisuse Kind = iota
	// KindCapacity marks an attempt to exceed a hard structural limit
	// (more than 2^30 clauses, or a clause with more than 2^27 literals).
	KindCapacity
	// KindProofInconsistent marks a resolution chain that the optional
	// proof verifier could not replay to its claimed clause.
	KindProofInconsistent
)

// SolverError is panicked for misuse and capacity violations. A proof-chain
// inconsistency is not panicked: VerifyProof returns it as an ordinary
// error. Satisfiability verdicts are always reported through Status, never
// through this type.
type SolverError struct {
	Kind    Kind
	Message string
}

func (e *SolverError) Error() string {
	return e.Message
}

// maxClauses and maxClauseLiterals are the hard capacity limits from the
// spec: clause ids need at least 30 bits, literal counts at least 28.
const (
	maxClauses        = 1 << 30
	maxClauseLiterals = 1 << 27
)

func checkCapacity(s *Solver, nLiterals int) {
	if nLiterals > maxClauseLiterals {
		panic(&SolverError{
			Kind:    KindCapacity,
			Message: fmt.Sprintf("clause has %d literals, limit is %d", nLiterals, maxClauseLiterals),
		})
	}
	if len(s.store.records) >= maxClauses {
		panic(&SolverError{
			Kind:    KindCapacity,
			Message: fmt.Sprintf("clause store holds %d clauses, limit is %d", len(s.store.records), maxClauses),
		})
	}
}
