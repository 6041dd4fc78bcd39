package message

import "github.com/arjunsahu/protodyn/descriptor"

// Value is the dynamically-typed payload held in one Message field slot.
// There is exactly one concrete implementation per descriptor.FieldType,
// plus RepeatedValue for repeated fields of any element type.
type Value interface {
	Kind() descriptor.FieldType
}

// IntValue holds a signed, zig-zag-encoded integer.
type IntValue int64

func (IntValue) Kind() descriptor.FieldType { return descriptor.Int }

// UIntValue holds an unsigned, plain-varint integer.
type UIntValue uint64

func (UIntValue) Kind() descriptor.FieldType { return descriptor.UInt }

// BoolValue holds a boolean, wire-encoded as a varint 0 or 1.
type BoolValue bool

func (BoolValue) Kind() descriptor.FieldType { return descriptor.Bool }

// DoubleValue holds a 64-bit float, wire-encoded as fixed64.
type DoubleValue float64

func (DoubleValue) Kind() descriptor.FieldType { return descriptor.Double }

// FloatValue holds a 32-bit float, wire-encoded as fixed32.
type FloatValue float32

func (FloatValue) Kind() descriptor.FieldType { return descriptor.Float }

// StringValue holds a UTF-8-agnostic string; bytes are not validated.
type StringValue string

func (StringValue) Kind() descriptor.FieldType { return descriptor.String }

// BytesValue holds an opaque byte slice.
type BytesValue []byte

func (BytesValue) Kind() descriptor.FieldType { return descriptor.Bytes }

// MessageValue boxes a nested Message.
type MessageValue struct {
	Msg *Message
}

func (MessageValue) Kind() descriptor.FieldType { return descriptor.Message }

// RepeatedValue holds the ordered elements of a repeated field. Elem names
// the scalar type each element must satisfy; a RepeatedValue is never
// itself a valid element of another RepeatedValue.
type RepeatedValue struct {
	Elem   descriptor.FieldType
	Values []Value
}

func (RepeatedValue) Kind() descriptor.FieldType {
	// RepeatedValue has no single FieldType of its own; callers that need
	// the element type read Elem directly. Kind exists only so
	// RepeatedValue satisfies the Value interface.
	panic("message: Kind() is not meaningful on RepeatedValue; use Elem")
}
