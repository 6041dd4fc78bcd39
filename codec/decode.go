package codec

import (
	"github.com/arjunsahu/protodyn/descriptor"
	"github.com/arjunsahu/protodyn/message"
	"github.com/arjunsahu/protodyn/wire"
)

// decodeScalar decodes one scalar value of type t starting at offset. It
// never advances past a failure; on the nested-Message path, the error
// returned is whatever the recursive Decode produced, left unwrapped so
// the caller can choose which offset to surface (see Decode).
func decodeScalar(buf []byte, offset int, t descriptor.FieldType, nested *descriptor.MessageDescriptor) (message.Value, int, error) {
	switch t {
	case descriptor.Int:
		u, next, err := wire.DecodeVarint(buf, offset)
		if err != nil {
			return nil, offset, err
		}
		return message.IntValue(wire.DecodeZigZag(u)), next, nil

	case descriptor.UInt:
		u, next, err := wire.DecodeVarint(buf, offset)
		if err != nil {
			return nil, offset, err
		}
		return message.UIntValue(u), next, nil

	case descriptor.Bool:
		u, next, err := wire.DecodeVarint(buf, offset)
		if err != nil {
			return nil, offset, err
		}
		if u != 0 && u != 1 {
			return nil, offset, ErrInvalidBool
		}
		return message.BoolValue(u == 1), next, nil

	case descriptor.Double:
		f, next, err := wire.DecodeFloat64(buf, offset)
		if err != nil {
			return nil, offset, err
		}
		return message.DoubleValue(f), next, nil

	case descriptor.Float:
		f, next, err := wire.DecodeFloat32(buf, offset)
		if err != nil {
			return nil, offset, err
		}
		return message.FloatValue(f), next, nil

	case descriptor.String:
		s, next, err := wire.DecodeString(buf, offset)
		if err != nil {
			return nil, offset, err
		}
		return message.StringValue(s), next, nil

	case descriptor.Bytes:
		b, next, err := wire.DecodeBytes(buf, offset)
		if err != nil {
			return nil, offset, err
		}
		return message.BytesValue(b), next, nil

	case descriptor.Message:
		length, afterLen, err := wire.DecodeVarint(buf, offset)
		if err != nil {
			return nil, offset, err
		}
		end := afterLen + int(length)
		if end > len(buf) {
			return nil, offset, ErrLengthOverrun
		}
		child, err := Decode(buf[afterLen:end], nested)
		if err != nil {
			return nil, offset, err
		}
		return message.MessageValue{Msg: child}, end, nil

	default:
		panic("codec: unhandled field type in decodeScalar")
	}
}

// skipField advances past one unknown field's value given its wire class,
// without producing a typed value. offset is left unchanged on failure.
func skipField(buf []byte, offset int, wc wire.WireClass) (int, error) {
	switch wc {
	case wire.WireVarint:
		_, next, err := wire.DecodeVarint(buf, offset)
		if err != nil {
			return offset, err
		}
		return next, nil
	case wire.WireI64:
		_, next, err := wire.DecodeFixed64(buf, offset)
		if err != nil {
			return offset, err
		}
		return next, nil
	case wire.WireI32:
		_, next, err := wire.DecodeFixed32(buf, offset)
		if err != nil {
			return offset, err
		}
		return next, nil
	case wire.WireLen:
		_, next, err := wire.DecodeBytes(buf, offset)
		if err != nil {
			return offset, err
		}
		return next, nil
	default:
		return offset, ErrReservedWireClass
	}
}

// Decode parses buf as a message of the given descriptor, consuming the
// entire buffer. Unknown fields are skipped by wire class. Known fields
// with a wire class that doesn't match their descriptor, and packed
// payloads that overrun or misalign, fail the whole decode.
//
// On failure the returned *DecodeError's Offset follows these rules: a
// malformed tag varint itself fails at the tag's start; everything else —
// field-number-0, a reserved wire class, a wire-type mismatch, a scalar or
// per-element decode failure, a malformed packed length — fails at the
// offset just past the tag (or, for a per-element failure inside a packed
// payload, at that element's own start); and, for a nested message
// field, the start of the outer field's value rather than wherever inside
// the nested message the failure actually occurred (the inner error is
// still reachable via Unwrap).
func Decode(buf []byte, desc *descriptor.MessageDescriptor) (*message.Message, error) {
	offset := 0
	sz := len(buf)
	m := message.New(desc)

	for offset < sz {
		tagStart := offset
		tag, afterTag, err := wire.DecodeVarint(buf, offset)
		if err != nil {
			logf("no tag at offset %d: %v", tagStart, err)
			return nil, decodeErr(tagStart, err)
		}
		offset = afterTag

		fieldNumber, wc := wire.ParseTag(tag)
		if fieldNumber == 0 {
			logf("field number 0 in tag at offset %d", offset)
			return nil, decodeErr(offset, ErrFieldNumberZero)
		}
		if !wc.Valid() {
			logf("reserved wire class %v in tag at offset %d", wc, offset)
			return nil, decodeErr(offset, ErrReservedWireClass)
		}

		idx := desc.IndexByNumber(fieldNumber)
		if idx < 0 {
			logf("unknown field %d, skipping", fieldNumber)
			next, err := skipField(buf, offset, wc)
			if err != nil {
				return nil, decodeErr(offset, err)
			}
			offset = next
			continue
		}

		fd := desc.Field(idx)

		if !fd.Repeated {
			if wc != fd.Type.ScalarWireClass() {
				logf("wire type mismatch for field %q at offset %d", fd.Name, offset)
				return nil, decodeErr(offset, ErrWireTypeMismatch)
			}
			valueStart := offset
			v, next, err := decodeScalar(buf, offset, fd.Type, fd.Nested)
			if err != nil {
				return nil, decodeErr(valueStart, err)
			}
			offset = next
			m.SetRaw(idx, v)
			continue
		}

		// The wire class actually present decides packed vs. unpacked
		// handling here, not fd.Packed: per spec.md's locked compatibility
		// rule, both forms are accepted on decode for any packable
		// repeated field regardless of the descriptor's packed bit.
		// Encoding (codec/encode.go) is the only place fd.Packed governs.
		if wc == wire.WireLen && fd.Type.Packable() {
			lengthStart := offset
			length, afterLen, err := wire.DecodeVarint(buf, offset)
			if err != nil {
				return nil, decodeErr(lengthStart, err)
			}
			offset = afterLen
			end := offset + int(length)
			if end > sz {
				return nil, decodeErr(lengthStart, ErrLengthOverrun)
			}

			existing, _ := m.RawValue(idx).(message.RepeatedValue)
			existing.Elem = fd.Type
			for offset < end {
				elemStart := offset
				v, next, err := decodeScalar(buf, offset, fd.Type, fd.Nested)
				if err != nil {
					return nil, decodeErr(elemStart, err)
				}
				if next > end {
					return nil, decodeErr(elemStart, ErrPackedOverrun)
				}
				offset = next
				existing.Values = append(existing.Values, v)
			}
			if offset != end {
				return nil, decodeErr(offset, ErrPackedBoundary)
			}
			m.SetRaw(idx, existing)
			continue
		}

		// Repeated, unpacked: one tagged occurrence per element.
		if wc != fd.Type.ScalarWireClass() {
			logf("wire type mismatch for repeated field %q at offset %d", fd.Name, offset)
			return nil, decodeErr(offset, ErrWireTypeMismatch)
		}
		elemStart := offset
		v, next, err := decodeScalar(buf, offset, fd.Type, fd.Nested)
		if err != nil {
			return nil, decodeErr(elemStart, err)
		}
		offset = next

		existing, _ := m.RawValue(idx).(message.RepeatedValue)
		existing.Elem = fd.Type
		existing.Values = append(existing.Values, v)
		m.SetRaw(idx, existing)
	}

	return m, nil
}
