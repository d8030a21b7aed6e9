package sat

import "testing"

func TestRecordUnitClauseEnqueuesWithNoReason(t *testing.T) {
	s := NewDefaultSolver()
	a := s.NewVar()

	s.record([]Literal{PositiveLiteral(a)}, 0)

	if s.VarValue(a) != True {
		t.Fatalf("unit learnt clause did not assert its literal")
	}
	if s.reason[a] != ReasonNone {
		t.Errorf("reason = %v, want ReasonNone for a unit learnt clause", s.reason[a])
	}
	if s.NumLearnts() != 0 {
		t.Errorf("a unit learnt clause should not be stored in the learnt database")
	}
}

func TestRecordMultiLiteralClauseWatchesAndAsserts(t *testing.T) {
	s := NewDefaultSolver()
	a, b, c := s.NewVar(), s.NewVar(), s.NewVar()
	s.enqueue(NegativeLiteral(b), ReasonNone)
	s.enqueue(NegativeLiteral(c), ReasonNone)

	s.record([]Literal{PositiveLiteral(a), PositiveLiteral(b), PositiveLiteral(c)}, 2)

	if s.NumLearnts() != 1 {
		t.Fatalf("NumLearnts() = %d, want 1", s.NumLearnts())
	}
	if s.VarValue(a) != True {
		t.Errorf("record() did not assert the UIP literal")
	}
	id := s.reason[a].clauseID()
	if id == NoClause {
		t.Fatalf("a's reason was not set to the newly learnt clause")
	}
	if got := s.store.get(id).LBD(); got != 2 {
		t.Errorf("learnt clause LBD = %d, want 2", got)
	}
}
