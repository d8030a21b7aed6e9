package sat

// binaryImpl records that asserting the index literal implies lit, via the
// 2-literal clause id.
type binaryImpl struct {
	lit    Literal
	clause ClauseID
}

// binaryIndex is the optional binary-clause subsystem from spec §4.10. Every
// 2-literal clause is additionally indexed by each of its literals so that
// propagate can drain direct implications before falling back to the
// general watch-list walk. Correctness never depends on this subsystem:
// every binary clause is still a regular watched clause too.
type binaryIndex struct {
	implications [][]binaryImpl

	// closure memoizes the transitive closure of implications per literal.
	// It is invalidated wholesale whenever a new binary clause appears,
	// since any parent closure may now need to reach further. Cycles inside
	// one closureOf walk are cut by the walk's own visited set, so an
	// equivalence cycle is expanded once instead of looping. computing only
	// marks a literal whose closure is being built, so that closureOf is
	// not re-entered for it.
	closure   [][]Literal
	computing []bool
}

func newBinaryIndex() *binaryIndex {
	return &binaryIndex{}
}

func (b *binaryIndex) expand() {
	b.implications = append(b.implications, nil, nil)
	b.closure = append(b.closure, nil, nil)
	b.computing = append(b.computing, false, false)
}

// addClause registers the 2-literal clause (l0 l1): ¬l0 implies l1 and ¬l1
// implies l0.
func (b *binaryIndex) addClause(l0, l1 Literal, id ClauseID) {
	b.implications[l0.Negate()] = append(b.implications[l0.Negate()], binaryImpl{lit: l1, clause: id})
	b.implications[l1.Negate()] = append(b.implications[l1.Negate()], binaryImpl{lit: l0, clause: id})
	for i := range b.closure {
		b.closure[i] = nil
	}
}

// closureOf returns every literal transitively implied by l. It is not on
// propagate's hot path (propagate only drains direct implications); it is
// exposed for callers that want the full closure, e.g. minimal-model
// extraction or an external theory reasoner.
func (b *binaryIndex) closureOf(l Literal) []Literal {
	if b.closure[l] != nil {
		return b.closure[l]
	}
	if b.computing[l] {
		return nil
	}
	b.computing[l] = true
	defer func() { b.computing[l] = false }()

	seen := map[Literal]bool{}
	var out []Literal
	var walk func(Literal)
	walk = func(cur Literal) {
		for _, imp := range b.implications[cur] {
			if seen[imp.lit] {
				continue
			}
			seen[imp.lit] = true
			out = append(out, imp.lit)
			walk(imp.lit)
		}
	}
	walk(l)

	b.closure[l] = out
	return out
}
