package wire

import (
	"encoding/binary"
	"math"
)

// AppendFixed32 appends the 4-byte little-endian encoding of v to dst.
func AppendFixed32(dst []byte, v uint32) []byte {
	return binary.LittleEndian.AppendUint32(dst, v)
}

// AppendFixed64 appends the 8-byte little-endian encoding of v to dst.
func AppendFixed64(dst []byte, v uint64) []byte {
	return binary.LittleEndian.AppendUint64(dst, v)
}

// DecodeFixed32 reads a 4-byte little-endian value from buf at offset.
func DecodeFixed32(buf []byte, offset int) (uint32, int, error) {
	if offset+4 > len(buf) {
		return 0, offset, ErrTruncated
	}
	return binary.LittleEndian.Uint32(buf[offset:]), offset + 4, nil
}

// DecodeFixed64 reads an 8-byte little-endian value from buf at offset.
func DecodeFixed64(buf []byte, offset int) (uint64, int, error) {
	if offset+8 > len(buf) {
		return 0, offset, ErrTruncated
	}
	return binary.LittleEndian.Uint64(buf[offset:]), offset + 8, nil
}

// AppendFloat32 bit-casts v and appends it as a fixed32. NaN payloads are
// carried through bitwise; the bit pattern is never canonicalized.
func AppendFloat32(dst []byte, v float32) []byte {
	return AppendFixed32(dst, math.Float32bits(v))
}

// AppendFloat64 bit-casts v and appends it as a fixed64.
func AppendFloat64(dst []byte, v float64) []byte {
	return AppendFixed64(dst, math.Float64bits(v))
}

// DecodeFloat32 reads a fixed32 and bit-casts it back to a float32.
func DecodeFloat32(buf []byte, offset int) (float32, int, error) {
	bits, next, err := DecodeFixed32(buf, offset)
	if err != nil {
		return 0, offset, err
	}
	return math.Float32frombits(bits), next, nil
}

// DecodeFloat64 reads a fixed64 and bit-casts it back to a float64.
func DecodeFloat64(buf []byte, offset int) (float64, int, error) {
	bits, next, err := DecodeFixed64(buf, offset)
	if err != nil {
		return 0, offset, err
	}
	return math.Float64frombits(bits), next, nil
}
