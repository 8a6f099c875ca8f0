// Package zx0 holds the sentinel errors shared by the optimizer, encoder,
// decoder, and CLI packages that make up this ZX0 compressor.
package zx0

import "errors"

var (
	// ErrInvalidArgument marks a programmer error: a precondition on an
	// exported function's arguments was violated (bad skip, offsetLimit,
	// threads, or a malformed parse chain). Never returned for anything
	// a caller could reasonably hit from untrusted input.
	ErrInvalidArgument = errors.New("zx0: invalid argument")

	// ErrCorruptStream marks a data error: a compressed stream passed to
	// the decoder ended early, pointed a back-reference before the start
	// of output, or otherwise could not have been produced by the encoder.
	ErrCorruptStream = errors.New("zx0: corrupt stream")
)
