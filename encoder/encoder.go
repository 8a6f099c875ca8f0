// Package encoder serializes an optimizer.Block chain — the parse chosen by
// package optimizer — into the ZX0 wire format. It never re-runs the
// search; it only walks the chain the optimizer already built.
package encoder

import (
	"encoding/binary"

	"github.com/pkg/errors"

	zx0 "github.com/wonst719/zx0"
	"github.com/wonst719/zx0/optimizer"
)

// endMarkerLowByte is a low-byte field value no real match ever produces
// (real low bytes only ever hold (offset-1) mod 128, so the top bit is
// always 0): it terminates the stream in place of one more token.
const endMarkerLowByte = 0xFF

// Encode walks terminal's chain back to the block ending at skip-1 (the
// origin optimizer.Optimize installs) and emits a self-contained stream:
// a 4-byte big-endian length header giving len(input)-skip, followed by
// the bitstream of literal runs and matches, followed by the end marker,
// zero-padded to a byte boundary.
//
// skip bytes of input are never compressed — the caller is responsible for
// re-attaching any uncompressed prefix on disk, exactly like the real ZX0
// CLI copies its skip bytes through unchanged ahead of the compressed
// stream.
func Encode(input []byte, skip int, terminal *optimizer.Block) ([]byte, error) {
	if terminal == nil {
		return nil, errors.Wrap(zx0.ErrInvalidArgument, "encoder: nil terminal block")
	}
	if skip < 0 || skip > len(input) {
		return nil, errors.Wrapf(zx0.ErrInvalidArgument, "encoder: skip %d out of range for input of length %d", skip, len(input))
	}

	blocks, origin := chainToSlice(terminal)
	if origin.Index != skip-1 {
		return nil, errors.Wrapf(zx0.ErrInvalidArgument, "encoder: chain origin at index %d, want %d", origin.Index, skip-1)
	}

	header := make([]byte, 4)
	binary.BigEndian.PutUint32(header, uint32(len(input)-skip))

	w := &bitWriter{}
	lastOffset := origin.Offset // 1, by optimizer convention
	for _, b := range blocks {
		length := b.Index - b.Chain.Index
		if b.Offset == 0 {
			w.writeBit(0)
			w.writeGamma(length)
			for i := b.Chain.Index + 1; i <= b.Index; i++ {
				w.writeBits(int(input[i]), 8)
			}
			continue
		}

		w.writeBit(1)
		if b.Offset == lastOffset {
			w.writeBit(1)
			w.writeGamma(length)
		} else {
			w.writeBit(0)
			o := b.Offset - 1
			w.writeBits(o%128, 8)
			w.writeGamma(o/128 + 1)
			w.writeGamma(length - 1)
		}
		lastOffset = b.Offset
	}

	w.writeBit(1)
	w.writeBit(0)
	w.writeBits(endMarkerLowByte, 8)

	return append(header, w.bytes()...), nil
}

// chainToSlice walks terminal.Chain back to the origin (the block with a
// nil Chain) and returns the non-origin blocks in forward (encode) order,
// plus the origin itself for validation.
func chainToSlice(terminal *optimizer.Block) ([]*optimizer.Block, *optimizer.Block) {
	var blocks []*optimizer.Block
	b := terminal
	for b.Chain != nil {
		blocks = append(blocks, b)
		b = b.Chain
	}
	for i, j := 0, len(blocks)-1; i < j; i, j = i+1, j-1 {
		blocks[i], blocks[j] = blocks[j], blocks[i]
	}
	return blocks, b
}
