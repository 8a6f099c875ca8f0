package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReverseBytes(t *testing.T) {
	in := []byte{1, 2, 3, 4, 5}
	out := reverseBytes(in)
	assert.Equal(t, []byte{5, 4, 3, 2, 1}, out)

	assert.Equal(t, []byte{}, reverseBytes([]byte{}))
	assert.Equal(t, []byte{7}, reverseBytes([]byte{7}))
}

func TestDefaultCompressedOutput(t *testing.T) {
	assert.Equal(t, "game.bin.zx0", defaultCompressedOutput("game.bin"))
}

func TestDefaultDecompressedOutput(t *testing.T) {
	assert.Equal(t, "game.bin", defaultDecompressedOutput("game.bin.zx0"))
	assert.Equal(t, "game.bin.out", defaultDecompressedOutput("game.bin"))
}
