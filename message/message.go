// Package message implements the dynamically-typed container bound to a
// descriptor.MessageDescriptor: one optional Value per declared field,
// with strict type and arity checking on every mutation.
package message

import (
	"fmt"

	"github.com/arjunsahu/protodyn/descriptor"
)

// Message holds one optional Value per field declared in its descriptor.
// A Message is only ever valid with respect to the descriptor it was
// constructed from; it keeps a reference to it for the lifetime of the
// value.
type Message struct {
	Desc *descriptor.MessageDescriptor
	vals []Value // vals[i] is nil when field i is unset
}

// New returns a Message with every field slot unset.
func New(desc *descriptor.MessageDescriptor) *Message {
	return &Message{Desc: desc, vals: make([]Value, desc.Len())}
}

// Get returns the value stored for name and whether it was set. An
// unknown field name or an unset field both report ok == false.
func (m *Message) Get(name string) (Value, bool) {
	i := m.Desc.IndexByName(name)
	if i < 0 || m.vals[i] == nil {
		return nil, false
	}
	return m.vals[i], true
}

// scalarMatches reports whether v is a valid scalar for fd, i.e. it has
// the right concrete Go type for fd's declared FieldType.
func scalarMatches(fd descriptor.FieldDescriptor, v Value) bool {
	if _, repeated := v.(RepeatedValue); repeated {
		return false
	}
	if fd.Type == descriptor.Message {
		mv, ok := v.(MessageValue)
		return ok && mv.Msg != nil && mv.Msg.Desc == fd.Nested
	}
	return v.Kind() == fd.Type
}

// Set validates that v matches fd's declared shape (a RepeatedValue of
// the right element type for a repeated field, a bare scalar of the
// right type otherwise) and, on success, overwrites the slot. On
// mismatch it returns an error and leaves the Message unmodified.
func (m *Message) Set(name string, v Value) error {
	i := m.Desc.IndexByName(name)
	if i < 0 {
		return fmt.Errorf("message: unknown field %q", name)
	}
	fd := m.Desc.Field(i)

	if fd.Repeated {
		rv, ok := v.(RepeatedValue)
		if !ok {
			return fmt.Errorf("message: field %q is repeated, got a non-repeated value", name)
		}
		if rv.Elem != fd.Type {
			return fmt.Errorf("message: field %q expects element type %v, got %v", name, fd.Type, rv.Elem)
		}
		for idx, elem := range rv.Values {
			if !scalarMatches(fd, elem) {
				return fmt.Errorf("message: field %q element %d has the wrong type", name, idx)
			}
		}
		m.vals[i] = v
		return nil
	}

	if !scalarMatches(fd, v) {
		return fmt.Errorf("message: field %q: value has the wrong type for %v", name, fd.Type)
	}
	m.vals[i] = v
	return nil
}

// Push appends to a repeated field, initializing an empty RepeatedValue
// first if the slot is unset. It fails on a non-repeated field or an
// element of the wrong type.
func (m *Message) Push(name string, elem Value) error {
	i := m.Desc.IndexByName(name)
	if i < 0 {
		return fmt.Errorf("message: unknown field %q", name)
	}
	fd := m.Desc.Field(i)
	if !fd.Repeated {
		return fmt.Errorf("message: field %q is not repeated", name)
	}
	if !scalarMatches(fd, elem) {
		return fmt.Errorf("message: field %q element has the wrong type for %v", name, fd.Type)
	}

	rv, _ := m.vals[i].(RepeatedValue)
	rv.Elem = fd.Type
	rv.Values = append(rv.Values, elem)
	m.vals[i] = rv
	return nil
}

// GetIndex returns element i of a repeated field.
func (m *Message) GetIndex(name string, i int) (Value, error) {
	rv, err := m.repeatedValue(name)
	if err != nil {
		return nil, err
	}
	if i < 0 || i >= len(rv.Values) {
		return nil, fmt.Errorf("message: field %q index %d out of range [0,%d)", name, i, len(rv.Values))
	}
	return rv.Values[i], nil
}

// SetIndex overwrites element i of a repeated field in place.
func (m *Message) SetIndex(name string, i int, elem Value) error {
	fidx := m.Desc.IndexByName(name)
	if fidx < 0 {
		return fmt.Errorf("message: unknown field %q", name)
	}
	fd := m.Desc.Field(fidx)
	if !fd.Repeated {
		return fmt.Errorf("message: field %q is not repeated", name)
	}
	rv, ok := m.vals[fidx].(RepeatedValue)
	if !ok || i < 0 || i >= len(rv.Values) {
		length := 0
		if ok {
			length = len(rv.Values)
		}
		return fmt.Errorf("message: field %q index %d out of range [0,%d)", name, i, length)
	}
	if !scalarMatches(fd, elem) {
		return fmt.Errorf("message: field %q element has the wrong type for %v", name, fd.Type)
	}
	rv.Values[i] = elem
	m.vals[fidx] = rv
	return nil
}

func (m *Message) repeatedValue(name string) (RepeatedValue, error) {
	i := m.Desc.IndexByName(name)
	if i < 0 {
		return RepeatedValue{}, fmt.Errorf("message: unknown field %q", name)
	}
	fd := m.Desc.Field(i)
	if !fd.Repeated {
		return RepeatedValue{}, fmt.Errorf("message: field %q is not repeated", name)
	}
	rv, _ := m.vals[i].(RepeatedValue)
	return rv, nil
}

// RawValue returns the slot value at field index i (unset is nil), for
// use by the codec which iterates fields by position rather than name.
func (m *Message) RawValue(i int) Value {
	return m.vals[i]
}

// SetRaw stores v directly into slot i without validation; used only by
// the codec while decoding, where the type is already known to be
// correct by construction from the wire.
func (m *Message) SetRaw(i int, v Value) {
	m.vals[i] = v
}
