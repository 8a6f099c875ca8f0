package optimizer

// scanShard runs transitionOffset for every offset in [lo, hi] at the
// given index, in ascending offset order, and returns the minimum-Bits
// block produced this step within the shard (nil if the shard produced
// none). Strict '<' is used here — the task-local optimum keeps the
// first-encountered minimum on ties, which is what makes the merged
// result independent of how many shards the offset range was split into.
func scanShard(input []byte, optimal []*Block, state *offsetState, index, skip, lo, hi int) *Block {
	bl := newBestLengthTable(len(optimal))

	var best *Block
	for offset := lo; offset <= hi; offset++ {
		candidate := transitionOffset(input, optimal, state, bl, index, offset, skip)
		if candidate != nil && (best == nil || candidate.Bits < best.Bits) {
			best = candidate
		}
	}
	return best
}
