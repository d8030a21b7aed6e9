package sat

import "testing"

func TestLuby(t *testing.T) {
	// Classical Luby sequence: 1 1 2 1 1 2 4 1 1 2 1 1 2 4 8 ...
	want := []int{1, 1, 2, 1, 1, 2, 4, 1, 1, 2, 1, 1, 2, 4, 8}

	for i, w := range want {
		if got := luby(i + 1); got != w {
			t.Errorf("luby(%d) = %d, want %d", i+1, got, w)
		}
	}
}

func TestRestart(t *testing.T) {
	s := NewDefaultSolver()
	s.opts.RestartBase = 10

	s.Restart()
	if s.conflictsToGo != 10 {
		t.Errorf("after first restart: conflictsToGo = %d, want 10", s.conflictsToGo)
	}
	if s.TotalRestarts != 1 {
		t.Errorf("TotalRestarts = %d, want 1", s.TotalRestarts)
	}

	s.Restart()
	if s.conflictsToGo != 10 {
		t.Errorf("after second restart: conflictsToGo = %d, want 10", s.conflictsToGo)
	}

	s.Restart()
	if s.conflictsToGo != 20 {
		t.Errorf("after third restart: conflictsToGo = %d, want 20", s.conflictsToGo)
	}
}

func TestRestartCancelsToRoot(t *testing.T) {
	s := NewDefaultSolver()
	a := s.NewVar()
	s.assume(PositiveLiteral(a))

	if s.DecisionLevel() == 0 {
		t.Fatalf("test setup did not raise the decision level")
	}

	s.Restart()

	if s.DecisionLevel() != 0 {
		t.Errorf("DecisionLevel() = %d, want 0 after restart", s.DecisionLevel())
	}
}
