package optimizer

// bruteForceBits independently enumerates every legal parse of
// input[skip:] under the same cost model transitionOffset uses, without
// any of the optimizer's incremental state (bestLengthTable,
// lastLiteral/lastMatch) — it recomputes match runs from scratch at every
// call. Used only to cross-check Optimize's result for small inputs as
// an optimality invariant.
//
// Returns the same quantity Optimize does before the origin's -1
// sentinel is added: callers should compare -1+bruteForceBits(...) against
// a terminal block's Bits.
func bruteForceBits(input []byte, skip, offsetLimit int) int {
	n := len(input)
	memo := make(map[[2]int]int)

	var walk func(index, lastOffset int) int
	walk = func(index, lastOffset int) int {
		if index == n {
			return 0
		}
		key := [2]int{index, lastOffset}
		if v, ok := memo[key]; ok {
			return v
		}

		best := -1
		consider := func(c int) {
			if best == -1 || c < best {
				best = c
			}
		}

		// literal run of any length
		for length := 1; index+length <= n; length++ {
			cost := 1 + EliasGammaBits(length) + 8*length + walk(index+length, lastOffset)
			consider(cost)
		}

		// match at any legal offset, if this isn't the very first token
		if index != skip {
			maxOffset := OffsetCeiling(index, offsetLimit)
			for offset := 1; offset <= maxOffset; offset++ {
				matchLen := 0
				for index+matchLen < n && input[index+matchLen] == input[index+matchLen-offset] {
					matchLen++
				}
				if matchLen == 0 {
					continue
				}
				minLen := 2
				if offset == lastOffset {
					minLen = 1
				}
				for length := minLen; length <= matchLen; length++ {
					var cost int
					if offset == lastOffset {
						cost = 1 + EliasGammaBits(length)
					} else {
						cost = 8 + EliasGammaBits((offset-1)/128+1) + EliasGammaBits(length-1)
					}
					cost += walk(index+length, offset)
					consider(cost)
				}
			}
		}

		memo[key] = best
		return best
	}

	return walk(skip, 1)
}
