package sat

// luby returns the i-th term (1-indexed) of the Luby sequence: 1 1 2 1 1 2
// 4 1 1 2 1 1 2 4 8 ... Grounded on the classical finite-sum recurrence
// (the form used by veriT-SAT's restart_suite/luby helpers): find the
// smallest 2^k-1 at least i; if it equals i the term is 2^(k-1), otherwise
// recurse on i against the start of its own 2^k-1 block.
func luby(i int) int {
	for {
		k, size := 1, 1
		for size < i {
			k++
			size = 2*size + 1
		}
		if size == i {
			return 1 << uint(k-1)
		}
		i -= (size+1)/2 - 1
	}
}

// Restart cancels back to the root level and reloads the conflict budget
// from the next Luby term. It never clears learnt clauses or activities;
// reduceDB and decay handle those independently.
func (s *Solver) Restart() {
	s.cancelUntil(0)
	s.lubyIndex++
	s.conflictsToGo = int64(luby(s.lubyIndex)) * int64(s.opts.RestartBase)
	s.TotalRestarts++
}
