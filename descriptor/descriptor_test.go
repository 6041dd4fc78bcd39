package descriptor

import "testing"

func mustBuild(t *testing.T, fields []FieldDescriptor) *MessageDescriptor {
	t.Helper()
	md, err := NewMessageDescriptor(fields)
	if err != nil {
		t.Fatalf("NewMessageDescriptor: %v", err)
	}
	return md
}

func TestBasicLookups(t *testing.T) {
	md := mustBuild(t, []FieldDescriptor{
		{Name: "id", Number: 1, Type: Int},
		{Name: "label", Number: 2, Type: String},
	})
	if md.IndexByName("id") != 0 || md.IndexByName("label") != 1 {
		t.Fatal("unexpected name index")
	}
	if md.IndexByNumber(1) != 0 || md.IndexByNumber(2) != 1 {
		t.Fatal("unexpected number index")
	}
	if md.IndexByName("nope") != -1 || md.IndexByNumber(99) != -1 {
		t.Fatal("unknown lookups should return -1")
	}
	if md.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", md.Len())
	}
}

func TestRejectsZeroFieldNumber(t *testing.T) {
	_, err := NewMessageDescriptor([]FieldDescriptor{{Name: "x", Number: 0, Type: Int}})
	if err == nil {
		t.Fatal("expected error for field number 0")
	}
}

func TestRejectsEmptyName(t *testing.T) {
	_, err := NewMessageDescriptor([]FieldDescriptor{{Name: "", Number: 1, Type: Int}})
	if err == nil {
		t.Fatal("expected error for empty field name")
	}
}

func TestRejectsDuplicateName(t *testing.T) {
	_, err := NewMessageDescriptor([]FieldDescriptor{
		{Name: "x", Number: 1, Type: Int},
		{Name: "x", Number: 2, Type: Int},
	})
	if err == nil {
		t.Fatal("expected error for duplicate field name")
	}
}

func TestRejectsDuplicateNumber(t *testing.T) {
	_, err := NewMessageDescriptor([]FieldDescriptor{
		{Name: "x", Number: 1, Type: Int},
		{Name: "y", Number: 1, Type: Int},
	})
	if err == nil {
		t.Fatal("expected error for duplicate field number")
	}
}

func TestRejectsReservedRange(t *testing.T) {
	for _, n := range []uint32{19000, 19500, 19999} {
		_, err := NewMessageDescriptor([]FieldDescriptor{{Name: "x", Number: n, Type: Int}})
		if err == nil {
			t.Fatalf("expected error for reserved field number %d", n)
		}
	}
}

func TestRejectsNumberAboveMax(t *testing.T) {
	_, err := NewMessageDescriptor([]FieldDescriptor{{Name: "x", Number: maxNumber + 1, Type: Int}})
	if err == nil {
		t.Fatal("expected error for field number above 2^29-1")
	}
}

func TestAcceptsMaxFieldNumber(t *testing.T) {
	md, err := NewMessageDescriptor([]FieldDescriptor{{Name: "x", Number: maxNumber, Type: Int}})
	if err != nil {
		t.Fatalf("unexpected error at max field number: %v", err)
	}
	if md.IndexByNumber(maxNumber) != 0 {
		t.Fatal("max field number not indexed")
	}
}

func TestMessageFieldRequiresNestedDescriptor(t *testing.T) {
	_, err := NewMessageDescriptor([]FieldDescriptor{{Name: "x", Number: 1, Type: Message}})
	if err == nil {
		t.Fatal("expected error: Message field without a nested descriptor")
	}
}

func TestNonMessageFieldRejectsNestedDescriptor(t *testing.T) {
	inner := mustBuild(t, []FieldDescriptor{{Name: "y", Number: 1, Type: Int}})
	_, err := NewMessageDescriptor([]FieldDescriptor{{Name: "x", Number: 1, Type: Int, Nested: inner}})
	if err == nil {
		t.Fatal("expected error: non-Message field carrying a nested descriptor")
	}
}

func TestMessageFieldWithNestedDescriptorOK(t *testing.T) {
	inner := mustBuild(t, []FieldDescriptor{{Name: "y", Number: 1, Type: Int}})
	md := mustBuild(t, []FieldDescriptor{{Name: "x", Number: 1, Type: Message, Nested: inner}})
	if md.Field(0).Nested != inner {
		t.Fatal("nested descriptor not preserved")
	}
}

func TestPackedRequiresRepeated(t *testing.T) {
	_, err := NewMessageDescriptor([]FieldDescriptor{{Name: "x", Number: 1, Type: Int, Packed: true}})
	if err == nil {
		t.Fatal("expected error: packed without repeated")
	}
}

func TestPackedRejectsLenFramedTypes(t *testing.T) {
	for _, typ := range []FieldType{String, Bytes} {
		_, err := NewMessageDescriptor([]FieldDescriptor{
			{Name: "x", Number: 1, Type: typ, Repeated: true, Packed: true},
		})
		if err == nil {
			t.Fatalf("expected error: packed %v field", typ)
		}
	}
}

func TestPackedAcceptsVarintAndFixedTypes(t *testing.T) {
	for _, typ := range []FieldType{Int, UInt, Bool, Double, Float} {
		_, err := NewMessageDescriptor([]FieldDescriptor{
			{Name: "x", Number: 1, Type: typ, Repeated: true, Packed: true},
		})
		if err != nil {
			t.Fatalf("unexpected error packing %v: %v", typ, err)
		}
	}
}
