package optimizer

// bestLengthTable is the best-length cache: for each reachable match
// length L, the length l <= L that minimizes
// optimal[index-l].Bits + EliasGammaBits(l-1) at the index currently being
// scanned. bestLength[2] is always 2; for L > 2, bestLength[L] is either
// bestLength[L-1] or L.
//
// One table is allocated per shard task (replicated rather than shared
// across tasks), so it is reset to size 2 at the start of every task
// instead of being shared mutable state.
type bestLengthTable struct {
	length []int
	size   int
}

func newBestLengthTable(n int) *bestLengthTable {
	t := &bestLengthTable{length: make([]int, max(n, 3))}
	t.reset()
	return t
}

func (t *bestLengthTable) reset() {
	t.size = 2
	t.length[2] = 2
}

// extend grows the table up to matchLen (if it isn't already that large)
// and returns bestLength[matchLen]. optimal holds the optimal-end block for
// every index already scanned; index is the position currently being
// extended at.
func (t *bestLengthTable) extend(optimal []*Block, index, matchLen int) int {
	l := t.size
	bits1 := optimal[index-t.length[l]].Bits + EliasGammaBits(t.length[l]-1)
	for l < matchLen {
		l++
		bits2 := optimal[index-l].Bits + EliasGammaBits(l-1)
		if bits2 <= bits1 {
			t.length[l] = l
			bits1 = bits2
		} else {
			t.length[l] = t.length[l-1]
		}
	}
	t.size = l
	return t.length[matchLen]
}
