// Package codec implements the schema-directed wire engine: Encode walks
// a Message in descriptor order and emits tagged fields; Decode walks a
// byte buffer in wire order, skipping unknown fields and checking every
// known field's wire class against its descriptor.
package codec

import (
	"fmt"

	"github.com/arjunsahu/protodyn/descriptor"
	"github.com/arjunsahu/protodyn/message"
	"github.com/arjunsahu/protodyn/wire"
)

// appendTag appends the varint tag combining fieldNumber and wc.
func appendTag(dst []byte, fieldNumber uint32, wc wire.WireClass) []byte {
	return wire.AppendVarint(dst, wire.MakeTag(fieldNumber, wc))
}

// encodeScalar appends the wire encoding of one scalar value, without a
// tag, according to its field type. It panics if v does not hold the Go
// type that t expects: by the time Encode calls this, message.Set and
// message.Push have already enforced that match, so a mismatch here means
// the Message was built by hand incorrectly — a programmer error, not a
// malformed-input error.
func encodeScalar(dst []byte, t descriptor.FieldType, v message.Value) []byte {
	switch t {
	case descriptor.Int:
		return wire.AppendVarint(dst, wire.EncodeZigZag(int64(v.(message.IntValue))))
	case descriptor.UInt:
		return wire.AppendVarint(dst, uint64(v.(message.UIntValue)))
	case descriptor.Bool:
		b := uint64(0)
		if bool(v.(message.BoolValue)) {
			b = 1
		}
		return wire.AppendVarint(dst, b)
	case descriptor.Double:
		return wire.AppendFloat64(dst, float64(v.(message.DoubleValue)))
	case descriptor.Float:
		return wire.AppendFloat32(dst, float32(v.(message.FloatValue)))
	case descriptor.String:
		return wire.AppendString(dst, string(v.(message.StringValue)))
	case descriptor.Bytes:
		return wire.AppendBytes(dst, []byte(v.(message.BytesValue)))
	case descriptor.Message:
		nested := v.(message.MessageValue).Msg
		body := Encode(nested)
		dst = wire.AppendVarint(dst, uint64(len(body)))
		return append(dst, body...)
	default:
		panic(fmt.Sprintf("codec: unhandled field type %v in encodeScalar", t))
	}
}

// Encode serializes m into a new byte slice following m.Desc in field
// declaration order. Unset fields are skipped entirely; a field set to its
// zero value is still emitted with its tag, so it decodes as set.
func Encode(m *message.Message) []byte {
	var out []byte
	fields := m.Desc.Fields()
	for i, fd := range fields {
		v := m.RawValue(i)
		if v == nil {
			continue
		}

		if !fd.Repeated {
			out = appendTag(out, fd.Number, fd.Type.ScalarWireClass())
			out = encodeScalar(out, fd.Type, v)
			continue
		}

		rv, ok := v.(message.RepeatedValue)
		if !ok {
			panic(fmt.Sprintf("codec: field %q is repeated but holds a non-repeated value", fd.Name))
		}
		if rv.Elem != fd.Type {
			panic(fmt.Sprintf("codec: field %q repeated value has element type %v, want %v", fd.Name, rv.Elem, fd.Type))
		}

		if fd.Packed {
			if !fd.Type.Packable() {
				panic(fmt.Sprintf("codec: field %q is packed but type %v cannot be packed", fd.Name, fd.Type))
			}
			out = appendTag(out, fd.Number, wire.WireLen)
			var payload []byte
			for _, elem := range rv.Values {
				payload = encodeScalar(payload, fd.Type, elem)
			}
			out = wire.AppendVarint(out, uint64(len(payload)))
			out = append(out, payload...)
			continue
		}

		for _, elem := range rv.Values {
			out = appendTag(out, fd.Number, fd.Type.ScalarWireClass())
			out = encodeScalar(out, fd.Type, elem)
		}
	}
	return out
}
