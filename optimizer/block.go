package optimizer

// Block is one node in the parse DAG produced by Optimize: "a parse ending
// at byte Index with cumulative cost Bits, reached via a literal run
// (Offset == 0) or a back-reference match at distance Offset". Immutable
// once constructed and shared by reference — many later blocks chain
// through the same predecessor, so Chain must stay reachable for as long
// as any descendant is reachable from optimal[] or the per-offset state.
//
// Chain.Index is always strictly smaller than Index, so the chain can
// never cycle; walking it backwards from a terminal block to the origin
// reconstructs the chosen parse in reverse.
type Block struct {
	Bits   int
	Index  int
	Offset int
	Chain  *Block
}

// newOrigin builds the synthetic block the scan starts from: as if a match
// at offset 1 had just completed ending at skip-1. This is what lets a
// literal run begin at skip via the lastMatch -> lastLiteral transition,
// and its Bits sentinel of -1 absorbs the one-bit overhead the format
// would otherwise charge for the very first block. Changing this sentinel
// would shift every downstream bit count by one.
func newOrigin(skip int) *Block {
	return &Block{Bits: -1, Index: skip - 1, Offset: 1}
}
