package codec

import (
	"errors"
	"fmt"
)

var (
	// ErrFieldNumberZero means a tag on the wire carried field number 0.
	ErrFieldNumberZero = errors.New("codec: tag has field number 0")

	// ErrReservedWireClass means a tag carried a wire class other than 0,
	// 1, 2 or 5: either 3 or 4, the deprecated and unsupported groups
	// framing, or the undefined codes 6 and 7.
	ErrReservedWireClass = errors.New("codec: reserved wire class (groups are not supported)")

	// ErrWireTypeMismatch means a known field's tag carried a wire class
	// other than the one its descriptor declares.
	ErrWireTypeMismatch = errors.New("codec: wire type does not match the field's descriptor")

	// ErrPackedOverrun means an element inside a packed payload decoded
	// past the payload's declared end.
	ErrPackedOverrun = errors.New("codec: packed element overruns the payload")

	// ErrPackedBoundary means a packed payload did not end exactly on an
	// element boundary.
	ErrPackedBoundary = errors.New("codec: packed payload did not end on an element boundary")

	// ErrLengthOverrun means a nested message or packed payload extends
	// past the buffer. An overrunning string or bytes payload is reported
	// as wire.ErrTruncated instead.
	ErrLengthOverrun = errors.New("codec: length-delimited payload exceeds the buffer")

	// ErrInvalidBool means a Bool field's varint was neither 0 nor 1.
	ErrInvalidBool = errors.New("codec: bool field carried a varint other than 0 or 1")
)

// DecodeError reports a decode failure together with the byte offset at
// which it was detected, per the conventions documented on Decode.
type DecodeError struct {
	Offset int
	Err    error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("codec: decode error at offset %d: %v", e.Offset, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

func decodeErr(offset int, err error) *DecodeError {
	return &DecodeError{Offset: offset, Err: err}
}
