// Package optimizer implements the ZX0 optimal parser: a dynamic-programming
// search over every legal way to split an input buffer into literal runs
// and back-reference matches, picking the split that minimizes total
// encoded bit length under the ZX0 cost model. See the package's Optimize
// for the entry point; encoding the chosen parse into bytes is the sibling
// encoder package's job.
package optimizer

import (
	"fmt"

	"github.com/pkg/errors"

	zx0 "github.com/wonst719/zx0"
)

// Optimize finds the minimum-cost parse of input[skip:] and returns the
// block ending at the last index, from which the caller walks Chain back
// to the origin to recover the chosen parse in reverse.
//
// offsetLimit is typically OffsetLimitFull or OffsetLimitQuick, but any
// positive value is legal. threads controls how many offsets are scanned
// concurrently per input index; the result is identical regardless of
// threads. verbose prints a progress bar of up to 47 dots to stdout as the
// scan advances.
func Optimize(input []byte, skip, offsetLimit, threads int, verbose bool) (*Block, error) {
	n := len(input)
	if n == 0 || skip < 0 || skip >= n {
		return nil, errors.Wrapf(zx0.ErrInvalidArgument, "skip %d out of range for input of length %d", skip, n)
	}
	if offsetLimit < 1 {
		return nil, errors.Wrapf(zx0.ErrInvalidArgument, "offsetLimit %d must be positive", offsetLimit)
	}
	if threads < 1 {
		return nil, errors.Wrapf(zx0.ErrInvalidArgument, "threads %d must be positive", threads)
	}

	ceiling := OffsetCeiling(n-1, offsetLimit)
	state := newOffsetState(ceiling)
	optimal := make([]*Block, n)

	origin := newOrigin(skip)
	state.lastMatch[1] = origin

	if verbose {
		fmt.Print("[")
	}
	dots := 2

	for index := skip; index < n; index++ {
		maxOffset := OffsetCeiling(index, offsetLimit)
		best, err := dispatchIndex(input, optimal, state, index, skip, maxOffset, threads)
		if err != nil {
			return nil, err
		}
		optimal[index] = best

		if verbose {
			for index*50/n > dots {
				dots++
				fmt.Print(".")
			}
		}
	}

	if verbose {
		fmt.Println("]")
	}

	return optimal[n-1], nil
}
