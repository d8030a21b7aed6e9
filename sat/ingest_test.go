package sat

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestDedupSort(t *testing.T) {
	tests := []struct {
		name      string
		in        []Literal
		want      []Literal
		tautology bool
	}{
		{
			name: "already sorted, no dups",
			in:   []Literal{NegativeLiteral(1), PositiveLiteral(2), NegativeLiteral(3)},
			want: []Literal{NegativeLiteral(1), PositiveLiteral(2), NegativeLiteral(3)},
		},
		{
			name: "out of order, exact duplicate collapses",
			in:   []Literal{PositiveLiteral(3), PositiveLiteral(1), PositiveLiteral(3)},
			want: []Literal{PositiveLiteral(1), PositiveLiteral(3)},
		},
		{
			name:      "complementary literals are a tautology",
			in:        []Literal{PositiveLiteral(1), NegativeLiteral(1)},
			tautology: true,
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, taut := dedupSort(tc.in)
			if taut != tc.tautology {
				t.Fatalf("tautology = %v, want %v", taut, tc.tautology)
			}
			if tc.tautology {
				return
			}
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Errorf("dedupSort() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestSortWatchPreferred(t *testing.T) {
	s := NewDefaultSolver()
	trueVar, falseVar, undefVar := s.NewVar(), s.NewVar(), s.NewVar()
	s.enqueue(PositiveLiteral(trueVar), ReasonNone)
	s.enqueue(NegativeLiteral(falseVar), ReasonNone)

	buf := []Literal{NegativeLiteral(falseVar), NegativeLiteral(undefVar), PositiveLiteral(trueVar)}
	sortWatchPreferred(s, buf)

	if s.LitValue(buf[0]) != True {
		t.Fatalf("first slot is not the true literal: %v", buf)
	}
	if s.LitValue(buf[1]) != Undef {
		t.Fatalf("second slot is not the undefined literal: %v", buf)
	}
	if s.LitValue(buf[2]) != False {
		t.Fatalf("third slot is not the false literal: %v", buf)
	}
}

func TestAddClauseUnitForcesImmediately(t *testing.T) {
	s := NewDefaultSolver()
	a := s.NewVar()
	s.AddClause([]Literal{PositiveLiteral(a)})

	if s.VarValue(a) != True {
		t.Fatalf("unit clause did not force its literal")
	}
	if s.status == StatusUnsat {
		t.Fatalf("solver incorrectly reached UNSAT")
	}
}

func TestAddClauseConflictingUnitsAreUnsat(t *testing.T) {
	s := NewDefaultSolver()
	a := s.NewVar()
	s.AddClause([]Literal{PositiveLiteral(a)})
	s.AddClause([]Literal{NegativeLiteral(a)})

	if s.status != StatusUnsat {
		t.Fatalf("status = %v, want StatusUnsat", s.status)
	}
}

func TestAddClauseAfterUnsatIsAbsorbed(t *testing.T) {
	s := NewDefaultSolver()
	a := s.NewVar()
	s.AddClause([]Literal{PositiveLiteral(a)})
	s.AddClause([]Literal{NegativeLiteral(a)})
	if s.status != StatusUnsat {
		t.Fatalf("setup did not reach UNSAT")
	}

	before := s.NumConstraints()
	s.AddClause([]Literal{PositiveLiteral(a), NegativeLiteral(a)})
	if s.NumConstraints() != before {
		t.Errorf("clause ingested after UNSAT instead of being absorbed")
	}
}

// TestAddClauseAssertsForcedLiteralWhenSecondWatchIsFalse covers the case
// sortWatchPreferred can produce: an undefined top literal with a false
// second literal at a decision level below the top. The clause must still
// force its undefined literal immediately rather than being treated as a
// no-op installation.
func TestAddClauseAssertsForcedLiteralWhenSecondWatchIsFalse(t *testing.T) {
	s := NewDefaultSolver()
	v1, v2, v3 := s.NewVar(), s.NewVar(), s.NewVar()

	s.assume(PositiveLiteral(v1))
	s.assume(NegativeLiteral(v2))

	s.AddClause([]Literal{NegativeLiteral(v1), PositiveLiteral(v2), PositiveLiteral(v3)})

	if s.status == StatusUnsat {
		t.Fatalf("solver incorrectly reached UNSAT")
	}
	if s.VarValue(v3) != True {
		t.Fatalf("v3 = %v, want True: the clause's only non-false literal must be forced", s.VarValue(v3))
	}
}

func TestAddClauseBacktracksToResolveConflict(t *testing.T) {
	s := NewDefaultSolver()
	a, b := s.NewVar(), s.NewVar()

	s.assume(PositiveLiteral(a))
	s.assume(PositiveLiteral(b))

	// Both literals are false, at levels 1 and 2: ingestion must back up
	// to level 1 and assert -b rather than leaving an unresolved conflict.
	s.AddClause([]Literal{NegativeLiteral(a), NegativeLiteral(b)})

	if s.status == StatusUnsat && s.DecisionLevel() != 0 {
		t.Errorf("UNSAT result left decision level at %d, want 0", s.DecisionLevel())
	}
}
