package sat

import "testing"

func TestLiteralEncoding(t *testing.T) {
	tests := []struct {
		name string
		v    Variable
		lit  Literal
		pos  bool
	}{
		{"positive var 1", 1, PositiveLiteral(1), true},
		{"negative var 1", 1, NegativeLiteral(1), false},
		{"positive var 42", 42, PositiveLiteral(42), true},
		{"negative var 42", 42, NegativeLiteral(42), false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.lit.Var(); got != tc.v {
				t.Errorf("Var() = %d, want %d", got, tc.v)
			}
			if got := tc.lit.IsPositive(); got != tc.pos {
				t.Errorf("IsPositive() = %v, want %v", got, tc.pos)
			}
		})
	}
}

func TestLiteralNegate(t *testing.T) {
	l := PositiveLiteral(7)
	n := l.Negate()

	if n.Var() != l.Var() {
		t.Fatalf("Negate() changed the variable: got %d, want %d", n.Var(), l.Var())
	}
	if n.IsPositive() == l.IsPositive() {
		t.Fatalf("Negate() did not flip polarity")
	}
	if n.Negate() != l {
		t.Fatalf("Negate() is not its own inverse")
	}
}

func TestLitValue(t *testing.T) {
	tests := []struct {
		name   string
		varVal Value
		pos    bool
		want   Value
	}{
		{"true var, positive lit", True, true, True},
		{"true var, negative lit", True, false, False},
		{"false var, positive lit", False, true, False},
		{"false var, negative lit", False, false, True},
		{"undef var, positive lit", Undef, true, Undef},
		{"undef var, negative lit", Undef, false, Undef},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			l := NegativeLiteral(1)
			if tc.pos {
				l = PositiveLiteral(1)
			}
			if got := litValue(tc.varVal, l); got != tc.want {
				t.Errorf("litValue(%v, %v) = %v, want %v", tc.varVal, l, got, tc.want)
			}
		})
	}
}
