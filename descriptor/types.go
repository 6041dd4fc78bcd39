package descriptor

import "github.com/arjunsahu/protodyn/wire"

// FieldType names a scalar or structural field type. Unlike the protobuf
// IDL, there is no distinction between int32/int64 or sint32/sint64: Int
// is a zig-zag-encoded signed 64-bit integer and UInt is a plain varint
// unsigned 64-bit integer.
type FieldType uint8

const (
	Int FieldType = iota
	UInt
	Bool
	Double
	Float
	String
	Bytes
	Message
)

func (t FieldType) String() string {
	switch t {
	case Int:
		return "Int"
	case UInt:
		return "UInt"
	case Bool:
		return "Bool"
	case Double:
		return "Double"
	case Float:
		return "Float"
	case String:
		return "String"
	case Bytes:
		return "Bytes"
	case Message:
		return "Message"
	default:
		return "FieldType(?)"
	}
}

// ScalarWireClass returns the wire class a single occurrence of this type
// is framed with. It panics for types with no scalar framing of their own;
// there are none today, but it guards against FieldType growing one.
func (t FieldType) ScalarWireClass() wire.WireClass {
	switch t {
	case Int, UInt, Bool:
		return wire.WireVarint
	case Double:
		return wire.WireI64
	case Float:
		return wire.WireI32
	case String, Bytes, Message:
		return wire.WireLen
	default:
		panic("descriptor: unhandled FieldType in ScalarWireClass")
	}
}

// Packable reports whether a repeated field of this type may set its
// packed bit. LEN-framed element types (String, Bytes, Message) cannot be
// packed: packing only makes sense for the fixed-width and varint classes.
func (t FieldType) Packable() bool {
	switch t.ScalarWireClass() {
	case wire.WireVarint, wire.WireI64, wire.WireI32:
		return true
	default:
		return false
	}
}
