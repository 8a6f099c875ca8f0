package optimizer

import "math/bits"

// EliasGammaBits returns the bit length of the Elias-gamma code for v (v >=
// 1): one bit for the value-is-1 flag, then one data bit plus one
// continuation bit for each additional bit position. It is accounting
// only — the optimizer never emits bits, only counts them to compare
// candidate parses.
func EliasGammaBits(v int) int {
	return 2*bits.Len(uint(v)) - 1
}
