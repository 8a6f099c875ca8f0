package optimizer

import "golang.org/x/sync/errgroup"

// dispatchIndex computes optimal[index]: the minimum-Bits block across all
// offsets in [1, maxOffset]. With threads <= 1 it runs the whole range as a
// single shard inline. Otherwise it partitions [1, maxOffset] into
// contiguous shards of shardSize = maxOffset/threads + 1 and runs one
// goroutine per shard via errgroup, which also gives us the join barrier
// required between index steps and propagates any worker failure to the
// caller unmodified.
func dispatchIndex(input []byte, optimal []*Block, state *offsetState, index, skip, maxOffset, threads int) (*Block, error) {
	if threads <= 1 || maxOffset <= 1 {
		return scanShard(input, optimal, state, index, skip, 1, maxOffset), nil
	}

	shardSize := maxOffset/threads + 1
	numShards := (maxOffset + shardSize - 1) / shardSize
	results := make([]*Block, numShards)

	g := new(errgroup.Group)
	for s := 0; s < numShards; s++ {
		lo := s*shardSize + 1
		hi := lo + shardSize - 1
		if hi > maxOffset {
			hi = maxOffset
		}
		s, lo, hi := s, lo, hi
		g.Go(func() error {
			results[s] = scanShard(input, optimal, state, index, skip, lo, hi)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var best *Block
	for _, candidate := range results {
		if candidate != nil && (best == nil || candidate.Bits < best.Bits) {
			best = candidate
		}
	}
	return best, nil
}
