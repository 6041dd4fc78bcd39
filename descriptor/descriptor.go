// Package descriptor defines the schema types a Message is built against:
// FieldDescriptor describes one field slot, MessageDescriptor owns an
// ordered sequence of them plus name and number lookup indexes. Both are
// validated once at construction and are immutable thereafter.
package descriptor

import "fmt"

// reservedLow and reservedHigh bound the field-number range set aside by
// convention and never assignable to a field here.
const (
	reservedLow  = 19000
	reservedHigh = 19999
	maxNumber    = 1<<29 - 1
)

// FieldDescriptor describes a single field slot within a MessageDescriptor.
type FieldDescriptor struct {
	Name     string
	Number   uint32
	Type     FieldType
	Repeated bool
	Packed   bool

	// Nested is the schema of this field's values when Type == Message.
	// It is nil for every other type.
	Nested *MessageDescriptor
}

// MessageDescriptor is an ordered, validated set of field descriptors with
// O(1) lookup by name and by field number.
type MessageDescriptor struct {
	fields      []FieldDescriptor
	nameToIndex map[string]int
	numToIndex  map[uint32]int
}

// NewMessageDescriptor validates fields and builds the lookup indexes. It
// returns an error rather than panicking: unlike a Message mutation, this
// is schema authoring, and callers build descriptors from data they may
// not control (e.g. a config file).
func NewMessageDescriptor(fields []FieldDescriptor) (*MessageDescriptor, error) {
	md := &MessageDescriptor{
		fields:      make([]FieldDescriptor, len(fields)),
		nameToIndex: make(map[string]int, len(fields)),
		numToIndex:  make(map[uint32]int, len(fields)),
	}
	for i, fd := range fields {
		if fd.Name == "" {
			return nil, fmt.Errorf("descriptor: field %d has an empty name", i)
		}
		if fd.Number == 0 {
			return nil, fmt.Errorf("descriptor: field %q has number 0", fd.Name)
		}
		if fd.Number > maxNumber {
			return nil, fmt.Errorf("descriptor: field %q number %d exceeds %d", fd.Name, fd.Number, maxNumber)
		}
		if fd.Number >= reservedLow && fd.Number <= reservedHigh {
			return nil, fmt.Errorf("descriptor: field %q number %d falls in the reserved range %d-%d",
				fd.Name, fd.Number, reservedLow, reservedHigh)
		}
		if (fd.Type == Message) != (fd.Nested != nil) {
			return nil, fmt.Errorf("descriptor: field %q must carry a nested descriptor iff its type is Message", fd.Name)
		}
		if fd.Packed {
			if !fd.Repeated {
				return nil, fmt.Errorf("descriptor: field %q is packed but not repeated", fd.Name)
			}
			if !fd.Type.Packable() {
				return nil, fmt.Errorf("descriptor: field %q has type %v, which cannot be packed", fd.Name, fd.Type)
			}
		}
		if _, dup := md.nameToIndex[fd.Name]; dup {
			return nil, fmt.Errorf("descriptor: duplicate field name %q", fd.Name)
		}
		if _, dup := md.numToIndex[fd.Number]; dup {
			return nil, fmt.Errorf("descriptor: duplicate field number %d", fd.Number)
		}
		md.fields[i] = fd
		md.nameToIndex[fd.Name] = i
		md.numToIndex[fd.Number] = i
	}
	return md, nil
}

// Fields returns the descriptor's fields in declaration order. The
// returned slice must not be mutated by the caller.
func (md *MessageDescriptor) Fields() []FieldDescriptor {
	return md.fields
}

// Field returns the field at index i.
func (md *MessageDescriptor) Field(i int) FieldDescriptor {
	return md.fields[i]
}

// Len returns the number of fields in the descriptor.
func (md *MessageDescriptor) Len() int {
	return len(md.fields)
}

// IndexByName returns the slot index for name, or -1 if no such field exists.
func (md *MessageDescriptor) IndexByName(name string) int {
	if i, ok := md.nameToIndex[name]; ok {
		return i
	}
	return -1
}

// IndexByNumber returns the slot index for a field number, or -1 if unknown.
func (md *MessageDescriptor) IndexByNumber(number uint32) int {
	if i, ok := md.numToIndex[number]; ok {
		return i
	}
	return -1
}
