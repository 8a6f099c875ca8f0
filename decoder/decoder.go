// Package decoder is the pure inverse of package encoder: it replays a ZX0
// stream's literal runs and matches to reconstruct the original bytes. It
// never re-runs the optimizer's search.
package decoder

import (
	"encoding/binary"

	"github.com/pkg/errors"

	zx0 "github.com/wonst719/zx0"
)

// endMarkerLowByte mirrors encoder.endMarkerLowByte: the low-byte field
// value that terminates the stream in place of one more token.
const endMarkerLowByte = 0xFF

// Decode reconstructs the bytes encoder.Encode produced: a 4-byte
// big-endian length header followed by the bitstream of literal runs and
// matches, terminated by the end marker.
func Decode(stream []byte) ([]byte, error) {
	if len(stream) < 4 {
		return nil, errors.Wrap(zx0.ErrCorruptStream, "decoder: stream too short for header")
	}
	want := int(binary.BigEndian.Uint32(stream[:4]))
	r := &bitReader{data: stream[4:]}

	out := make([]byte, 0, want)
	lastOffset := 1

	for len(out) < want {
		flag, ok := r.readBit()
		if !ok {
			return nil, errors.Wrap(zx0.ErrCorruptStream, "decoder: truncated stream")
		}

		if flag == 0 {
			length, ok := r.readGamma()
			if !ok {
				return nil, errors.Wrap(zx0.ErrCorruptStream, "decoder: truncated literal length")
			}
			for i := 0; i < length; i++ {
				b, ok := r.readBits(8)
				if !ok {
					return nil, errors.Wrap(zx0.ErrCorruptStream, "decoder: truncated literal data")
				}
				out = append(out, byte(b))
			}
			continue
		}

		repeat, ok := r.readBit()
		if !ok {
			return nil, errors.Wrap(zx0.ErrCorruptStream, "decoder: truncated match kind flag")
		}

		var offset, length int
		if repeat == 1 {
			offset = lastOffset
			length, ok = r.readGamma()
			if !ok {
				return nil, errors.Wrap(zx0.ErrCorruptStream, "decoder: truncated repeat-offset length")
			}
		} else {
			low, ok := r.readBits(8)
			if !ok {
				return nil, errors.Wrap(zx0.ErrCorruptStream, "decoder: truncated offset low byte")
			}
			if low == endMarkerLowByte {
				break
			}
			high, ok := r.readGamma()
			if !ok {
				return nil, errors.Wrap(zx0.ErrCorruptStream, "decoder: truncated offset high part")
			}
			offset = (high-1)*128 + low + 1

			l, ok := r.readGamma()
			if !ok {
				return nil, errors.Wrap(zx0.ErrCorruptStream, "decoder: truncated match length")
			}
			length = l + 1
		}

		if offset < 1 || offset > len(out) {
			return nil, errors.Wrapf(zx0.ErrCorruptStream, "decoder: match offset %d exceeds %d decoded bytes", offset, len(out))
		}
		for i := 0; i < length; i++ {
			out = append(out, out[len(out)-offset])
		}
		lastOffset = offset
	}

	if len(out) != want {
		return nil, errors.Wrapf(zx0.ErrCorruptStream, "decoder: decoded %d bytes, want %d", len(out), want)
	}
	return out, nil
}
