package sat

import (
	"math/bits"
	"sync"
)

// clauseStore owns every clause record ever created during a solve. Clauses
// are addressed by ClauseID so that the backing slice can grow (or recycle
// a deleted clause's slot) without invalidating any watch list or the
// learnt registry, both of which hold ids rather than pointers.
type clauseStore struct {
	records []*Clause
	free    []ClauseID
}

func (cs *clauseStore) get(id ClauseID) *Clause {
	return cs.records[id]
}

// alloc creates a new clause record holding (a copy of) literals, recycling
// a deleted slot when one is available.
func (cs *clauseStore) alloc(literals []Literal, learnt bool) ClauseID {
	lits := allocLiteralSlice(len(literals))
	lits = append(lits, literals...)

	c := &Clause{literals: lits}
	if learnt {
		c.flags |= flagLearnt
	}

	if n := len(cs.free); n > 0 {
		id := cs.free[n-1]
		cs.free = cs.free[:n-1]
		cs.records[id] = c
		return id
	}

	id := ClauseID(len(cs.records))
	cs.records = append(cs.records, c)
	return id
}

// release marks id's slot as reusable. The caller must already have removed
// the clause from every watch list and registry that referenced it.
func (cs *clauseStore) release(id ClauseID) {
	c := cs.records[id]
	freeLiteralSlice(c.literals)
	cs.records[id] = nil
	cs.free = append(cs.free, id)
}

// Pools of literal slices grouped by capacity class, so that clause
// creation and deletion during search does not constantly hit the
// allocator. A slice of capacity c goes to pool floor(log2 c), so pool i
// holds capacities in [2^i, 2^(i+1)-1] (pool 0 also takes capacity 0); the
// last pool holds every capacity of at least 2^(nLiteralPools-1). A fresh
// slice made by pool i has capacity 2^(i+1).
const nLiteralPools = 5

var literalPools [nLiteralPools]sync.Pool

func init() {
	for i := 0; i < nLiteralPools; i++ {
		capa := 1 << (i + 1)
		literalPools[i].New = func() any {
			s := make([]Literal, 0, capa)
			return &s
		}
	}
}

func literalPoolID(capa int) int {
	last := 1 << nLiteralPools
	if capa >= last {
		return nLiteralPools - 1
	}
	id := bits.Len(uint(capa)) - 1
	if capa < (1 << id) {
		id--
	}
	if id < 0 {
		id = 0
	}
	return id
}

func allocLiteralSlice(capa int) []Literal {
	ref := literalPools[literalPoolID(capa)].Get().(*[]Literal)
	s := (*ref)[:0]
	if cap(s) < capa {
		s = make([]Literal, 0, capa)
	}
	return s
}

func freeLiteralSlice(s []Literal) {
	s = s[:0]
	literalPools[literalPoolID(cap(s))].Put(&s)
}
