package decoder

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	zx0 "github.com/wonst719/zx0"
	"github.com/wonst719/zx0/encoder"
	"github.com/wonst719/zx0/optimizer"
)

func compress(t *testing.T, input []byte, skip int) []byte {
	t.Helper()
	terminal, err := optimizer.Optimize(input, skip, optimizer.OffsetLimitFull, 1, false)
	require.NoError(t, err)
	stream, err := encoder.Encode(input, skip, terminal)
	require.NoError(t, err)
	return stream
}

func TestDecodeRoundTrip(t *testing.T) {
	inputs := [][]byte{
		{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0},
		{0x00, 0xFF, 0x00, 0xFF, 0x00, 0xFF, 0x00, 0xFF},
		{'A', 'B', 'A', 'B', 'A'},
		{0x42},
		[]byte("the quick brown fox jumps over the lazy dog, the quick brown fox jumps again"),
		{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16, 17, 18, 19, 20},
	}

	for _, in := range inputs {
		stream := compress(t, in, 0)
		out, err := Decode(stream)
		require.NoError(t, err)
		assert.Equal(t, in, out)
	}
}

func TestDecodeRoundTripWithSkip(t *testing.T) {
	in := []byte{9, 9, 9, 1, 2, 3, 1, 2, 3, 1, 2, 3}
	skip := 3
	stream := compress(t, in, skip)

	out, err := Decode(stream)
	require.NoError(t, err)
	assert.Equal(t, in[skip:], out)
}

func TestDecodeTruncatedStreamIsCorrupt(t *testing.T) {
	in := []byte{1, 2, 3, 4, 5, 6, 7, 8, 9, 1, 2, 3}
	stream := compress(t, in, 0)

	_, err := Decode(stream[:len(stream)-2])
	require.Error(t, err)
	assert.ErrorIs(t, err, zx0.ErrCorruptStream)
}

func TestDecodeHeaderTooShort(t *testing.T) {
	_, err := Decode([]byte{0, 0})
	require.Error(t, err)
	assert.ErrorIs(t, err, zx0.ErrCorruptStream)
}

func TestDecodeBadOffsetIsCorrupt(t *testing.T) {
	// A well-formed header claiming 4 bytes, followed by a new-offset match
	// token (offset 6, length 2) that is unreachable from an empty output:
	// flag=1, new-offset=0, low byte=00000101 (5), high gamma(1)="1",
	// length gamma(1)="1", zero-padded to two bytes.
	stream := []byte{0, 0, 0, 4, 0x81, 0x70}

	_, err := Decode(stream)
	require.Error(t, err)
	assert.ErrorIs(t, err, zx0.ErrCorruptStream)
}
