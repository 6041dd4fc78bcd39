// Package protodyn provides schema-aware binary serialization without
// generated code: build a MessageDescriptor describing your fields, fill
// a Message against it, and Marshal/Unmarshal move it to and from the
// tag-length-value wire format.
package protodyn

import (
	"github.com/arjunsahu/protodyn/codec"
	"github.com/arjunsahu/protodyn/descriptor"
	"github.com/arjunsahu/protodyn/message"
)

// Re-exported so callers only need to import this package for everyday use.
type (
	FieldType         = descriptor.FieldType
	FieldDescriptor   = descriptor.FieldDescriptor
	MessageDescriptor = descriptor.MessageDescriptor
	Message           = message.Message
	Value             = message.Value
	RepeatedValue     = message.RepeatedValue
	DecodeError       = codec.DecodeError

	IntValue     = message.IntValue
	UIntValue    = message.UIntValue
	BoolValue    = message.BoolValue
	DoubleValue  = message.DoubleValue
	FloatValue   = message.FloatValue
	StringValue  = message.StringValue
	BytesValue   = message.BytesValue
	MessageValue = message.MessageValue
)

const (
	Int     = descriptor.Int
	UInt    = descriptor.UInt
	Bool    = descriptor.Bool
	Double  = descriptor.Double
	Float   = descriptor.Float
	String  = descriptor.String
	Bytes   = descriptor.Bytes
	MsgType = descriptor.Message
)

// NewMessageDescriptor validates fields and builds a reusable schema.
func NewMessageDescriptor(fields []FieldDescriptor) (*MessageDescriptor, error) {
	return descriptor.NewMessageDescriptor(fields)
}

// NewMessage returns a Message with every field unset, bound to desc.
func NewMessage(desc *MessageDescriptor) *Message {
	return message.New(desc)
}

// Marshal serializes m to its tag-length-value wire encoding.
func Marshal(m *Message) []byte {
	return codec.Encode(m)
}

// Unmarshal parses data as a message of the given descriptor.
func Unmarshal(data []byte, desc *MessageDescriptor) (*Message, error) {
	return codec.Decode(data, desc)
}

// SetDebug enables or disables verbose decode tracing, written through
// the standard log package.
func SetDebug(on bool) {
	codec.SetDebug(on)
}
