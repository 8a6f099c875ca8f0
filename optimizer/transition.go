package optimizer

// transitionOffset applies the per-offset transition rule at the given
// index and offset, updating state in place and returning the freshly
// created block (or nil if none was formed this step). skip is the
// scan's starting index — index == skip always forces the mismatch path
// regardless of byte equality, since a literal run must be able to start
// there.
func transitionOffset(input []byte, optimal []*Block, state *offsetState, bl *bestLengthTable, index, offset, skip int) *Block {
	matches := index != skip && index >= offset && input[index] == input[index-offset]

	if !matches {
		state.matchLength[offset] = 0
		lm := state.lastMatch[offset]
		if lm == nil {
			return nil
		}
		length := index - lm.Index
		bits := lm.Bits + 1 + EliasGammaBits(length) + 8*length
		literal := &Block{Bits: bits, Index: index, Offset: 0, Chain: lm}
		state.lastLiteral[offset] = literal
		return literal
	}

	var candidate *Block

	// A1: repeat-offset literal-to-match — reuses the offset of the
	// immediately preceding match, so only the length is encoded.
	if ll := state.lastLiteral[offset]; ll != nil {
		length := index - ll.Index
		bits := ll.Bits + 1 + EliasGammaBits(length)
		candidate = &Block{Bits: bits, Index: index, Offset: offset, Chain: ll}
		state.lastMatch[offset] = candidate
	}

	// A2: new-offset match — 8 bits for the offset's low byte, a gamma
	// code for its high part, and a gamma code for the length.
	state.matchLength[offset]++
	if state.matchLength[offset] > 1 {
		length := bl.extend(optimal, index, state.matchLength[offset])
		bits := optimal[index-length].Bits + 8 + EliasGammaBits((offset-1)/128+1) + EliasGammaBits(length-1)
		match := &Block{Bits: bits, Index: index, Offset: offset, Chain: optimal[index-length]}

		if lm := state.lastMatch[offset]; lm == nil || lm.Index != index || lm.Bits > bits {
			state.lastMatch[offset] = match
		}
		if candidate == nil || match.Bits < candidate.Bits {
			candidate = match
		}
	}

	return candidate
}
