package protodyn

import "testing"

func TestMarshalUnmarshalRoundTrip(t *testing.T) {
	desc, err := NewMessageDescriptor([]FieldDescriptor{
		{Name: "id", Number: 1, Type: Int},
		{Name: "name", Number: 2, Type: String},
	})
	if err != nil {
		t.Fatalf("NewMessageDescriptor: %v", err)
	}

	m := NewMessage(desc)
	if err := m.Set("id", IntValue(42)); err != nil {
		t.Fatalf("Set id: %v", err)
	}
	if err := m.Set("name", StringValue("widget")); err != nil {
		t.Fatalf("Set name: %v", err)
	}

	data := Marshal(m)
	decoded, err := Unmarshal(data, desc)
	if err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}

	id, ok := decoded.Get("id")
	if !ok || id.(IntValue) != 42 {
		t.Fatalf("id = (%v, %v), want (42, true)", id, ok)
	}
	name, ok := decoded.Get("name")
	if !ok || name.(StringValue) != "widget" {
		t.Fatalf("name = (%v, %v), want (widget, true)", name, ok)
	}
}

func TestUnmarshalMalformedReturnsDecodeError(t *testing.T) {
	desc, err := NewMessageDescriptor([]FieldDescriptor{{Name: "id", Number: 1, Type: Int}})
	if err != nil {
		t.Fatal(err)
	}
	_, err = Unmarshal([]byte{0x80}, desc)
	if err == nil {
		t.Fatal("expected an error decoding a truncated varint tag")
	}
	if _, ok := err.(*DecodeError); !ok {
		t.Fatalf("expected *DecodeError, got %T", err)
	}
}

func TestNestedMessageThroughFacade(t *testing.T) {
	inner, err := NewMessageDescriptor([]FieldDescriptor{{Name: "x", Number: 1, Type: Int}})
	if err != nil {
		t.Fatal(err)
	}
	outer, err := NewMessageDescriptor([]FieldDescriptor{
		{Name: "child", Number: 1, Type: MsgType, Nested: inner},
	})
	if err != nil {
		t.Fatal(err)
	}

	child := NewMessage(inner)
	_ = child.Set("x", IntValue(9))

	parent := NewMessage(outer)
	if err := parent.Set("child", MessageValue{Msg: child}); err != nil {
		t.Fatalf("Set child: %v", err)
	}

	data := Marshal(parent)
	decoded, err := Unmarshal(data, outer)
	if err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	v, ok := decoded.Get("child")
	if !ok {
		t.Fatal("expected child to be set")
	}
	x, _ := v.(MessageValue).Msg.Get("x")
	if x.(IntValue) != 9 {
		t.Fatalf("nested x = %v, want 9", x)
	}
}
