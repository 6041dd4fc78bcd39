// Package wire implements the low-level tag-length-value primitive codecs:
// unsigned and zigzag varints, little-endian fixed32/64, and
// length-delimited byte strings. Every decoder here is a pure function
// over (buf, offset) and, on failure, returns the offset it was given
// rather than wherever it got to before noticing the problem.
package wire

import "errors"

var (
	// ErrTruncated means the buffer ended before a value could be read in full.
	ErrTruncated = errors.New("wire: truncated input")

	// ErrVarintTooLong means ten continuation-set bytes were seen without a terminator.
	ErrVarintTooLong = errors.New("wire: varint longer than 10 bytes")

	// ErrVarintOverflow means the tenth varint byte carries more than the single
	// payload bit that still fits in a 64-bit result.
	ErrVarintOverflow = errors.New("wire: varint overflows 64 bits")
)
