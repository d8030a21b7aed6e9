package sat

// Value is a lifted boolean: the value of a variable or literal. The
// encoding is part of the package's ABI and is load-bearing: false=0,
// true=1, undef=2. Keeping undef at bit 1 means a literal's value can be
// derived from its variable's value with a single XOR (see litValue)
// instead of a branch on every propagation step.
type Value uint8

const (
	False Value = 0
	True  Value = 1
	Undef Value = 2
)

// Lift converts a plain bool into a Value.
func Lift(b bool) Value {
	if b {
		return True
	}
	return False
}

func (v Value) String() string {
	switch v {
	case True:
		return "true"
	case False:
		return "false"
	default:
		return "undef"
	}
}

// litValue derives the value of a literal from the value currently held by
// its variable. Flipping the low bit for a negative literal negates true
// and false in place; if the variable is undef, the XOR can leave the
// result at 3, which still carries the undef bit (bit 1), so it is folded
// back onto Undef. This is the XOR trick spec'd for this encoding: one
// bitwise operation handles true/false, one comparison folds undef.
func litValue(varVal Value, l Literal) Value {
	mask := uint8(l.polarity() ^ 1)
	v := Value(uint8(varVal) ^ mask)
	if v > True {
		return Undef
	}
	return v
}
