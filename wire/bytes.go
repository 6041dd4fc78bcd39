package wire

// AppendBytes appends the length-delimited encoding of data (a varint
// length followed by the raw bytes) to dst. An empty payload encodes as
// the single byte 0x00.
func AppendBytes(dst []byte, data []byte) []byte {
	dst = AppendVarint(dst, uint64(len(data)))
	return append(dst, data...)
}

// AppendString appends the length-delimited encoding of s to dst.
func AppendString(dst []byte, s string) []byte {
	return AppendBytes(dst, []byte(s))
}

// DecodeBytes decodes a length-delimited byte string from buf at offset.
// The returned slice is a copy; it does not alias buf. On failure the
// original offset is returned, whether the length varint itself was
// malformed or the payload it promised runs past the end of buf.
func DecodeBytes(buf []byte, offset int) ([]byte, int, error) {
	length, pos, err := DecodeVarint(buf, offset)
	if err != nil {
		return nil, offset, err
	}
	if uint64(len(buf)-pos) < length {
		return nil, offset, ErrTruncated
	}
	end := pos + int(length)
	out := make([]byte, length)
	copy(out, buf[pos:end])
	return out, end, nil
}

// DecodeString decodes a length-delimited string from buf at offset.
// The bytes are not validated as UTF-8.
func DecodeString(buf []byte, offset int) (string, int, error) {
	b, next, err := DecodeBytes(buf, offset)
	if err != nil {
		return "", offset, err
	}
	return string(b), next, nil
}
