package metadata

import (
	"reflect"
	"testing"
)

type label struct {
	Text string
	size int
}

type badge struct {
	label
	Count int
}

type pairOf[A, B any] struct {
	V0 A
	V1 B
}

type holder[T any] struct {
	Value T
}

type weekday uint8

func TestTypeOfIdentity(t *testing.T) {
	a := TypeOf(label{})
	b := TypeOf(label{Text: "x"})
	c := TypeOf(badge{})

	if a != b {
		t.Error("same dynamic type must yield the same identity")
	}
	if a == c {
		t.Error("distinct types must yield distinct identities")
	}
	if a != TypeFor[label]() {
		t.Error("TypeOf and TypeFor must agree")
	}
	if !a.Valid() {
		t.Error("identity of a real type must be valid")
	}
	if TypeOf(nil).Valid() {
		t.Error("nil has no identity")
	}
}

func TestTypeIDAsMapKey(t *testing.T) {
	m := map[TypeID]int{
		TypeFor[label](): 1,
		TypeFor[badge](): 2,
	}
	if m[TypeOf(label{})] != 1 || m[TypeOf(badge{})] != 2 {
		t.Error("identities must be usable as map keys")
	}
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		id   TypeID
		want Kind
		ok   bool
	}{
		{"struct", TypeFor[label](), KindStruct, true},
		{"tuple shape", TypeFor[pairOf[int, string]](), KindTuple, true},
		{"class", TypeFor[*label](), KindClass, true},
		{"existential", TypeFor[interface{ Body() }](), KindExistential, true},
		{"function", TypeFor[func() int](), KindFunction, true},
		{"opaque primitive", TypeFor[string](), KindOpaque, true},
		{"metatype", TypeFor[reflect.Type](), KindMetatype, true},
		{"slice unknown", TypeFor[[]int](), 0, false},
		{"map unknown", TypeFor[map[string]int](), 0, false},
		{"pointer to non-struct unknown", TypeFor[*int](), 0, false},
		{"invalid", TypeID{}, 0, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := Classify(tc.id)
			if ok != tc.ok {
				t.Fatalf("ok = %v, want %v", ok, tc.ok)
			}
			if ok && got != tc.want {
				t.Errorf("kind = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestClassifyOverride(t *testing.T) {
	RegisterAs[weekday](KindEnum)

	k, ok := Classify(TypeFor[weekday]())
	if !ok || k != KindEnum {
		t.Errorf("Classify = %v/%v, want enum/true", k, ok)
	}

	// First registration wins; a conflicting override is ignored.
	DefaultRegistry().SetKind(TypeFor[weekday](), KindOpaque)
	if k, _ := Classify(TypeFor[weekday]()); k != KindEnum {
		t.Errorf("override changed after first registration: %v", k)
	}
}

func TestDecodeTuple(t *testing.T) {
	layout, err := DecodeTuple(TypeFor[pairOf[uint8, string]]())
	if err != nil {
		t.Fatalf("DecodeTuple: %v", err)
	}
	if layout.Count != 2 {
		t.Fatalf("Count = %d, want 2", layout.Count)
	}
	if layout.Elements[0].Type != TypeFor[uint8]() {
		t.Errorf("element 0 type = %v, want uint8", layout.Elements[0].Type)
	}
	if layout.Elements[1].Type != TypeFor[string]() {
		t.Errorf("element 1 type = %v, want string", layout.Elements[1].Type)
	}
	if layout.Elements[0].Offset != 0 {
		t.Errorf("element 0 offset = %d, want 0", layout.Elements[0].Offset)
	}
	if layout.Elements[1].Offset == 0 {
		t.Error("element 1 offset must be past element 0")
	}
}

func TestDecodeTupleGuarded(t *testing.T) {
	if _, err := DecodeTuple(TypeFor[label]()); err == nil {
		t.Error("decoding a struct as tuple must fail")
	}
	if _, err := DecodeTuple(TypeFor[[]int]()); err == nil {
		t.Error("decoding an unknown kind must fail")
	}
}

func TestGenericArguments(t *testing.T) {
	// Arguments resolve only once their types have passed through TypeOf.
	TypeFor[label]()

	t.Run("struct strategy", func(t *testing.T) {
		args, ok := GenericArguments(TypeFor[holder[label]]())
		if !ok {
			t.Fatal("expected a generic vector")
		}
		if len(args) != 1 {
			t.Fatalf("len(args) = %d, want 1", len(args))
		}
		if args[0] != TypeFor[label]() {
			t.Errorf("args[0] = %v, want label identity", args[0])
		}
	})

	t.Run("class strategy", func(t *testing.T) {
		args, ok := GenericArguments(TypeFor[*holder[label]]())
		if !ok {
			t.Fatal("expected a generic vector through the reference")
		}
		if len(args) != 1 || args[0] != TypeFor[label]() {
			t.Errorf("args = %v, want [label identity]", args)
		}
	})

	t.Run("two arguments", func(t *testing.T) {
		args, ok := GenericArguments(TypeFor[pairOf[label, badge]]())
		if !ok {
			t.Fatal("expected a generic vector")
		}
		if len(args) != 2 || args[0] != TypeFor[label]() || args[1] != TypeFor[badge]() {
			t.Errorf("args = %v", args)
		}
	})

	t.Run("non-generic", func(t *testing.T) {
		if _, ok := GenericArguments(TypeFor[label]()); ok {
			t.Error("non-generic type must report no vector")
		}
	})

	t.Run("unknown kind", func(t *testing.T) {
		if _, ok := GenericArguments(TypeFor[[]label]()); ok {
			t.Error("unclassifiable type must report no vector")
		}
	})
}

func TestField(t *testing.T) {
	desc, err := Field(TypeFor[label](), "Text")
	if err != nil {
		t.Fatalf("Field: %v", err)
	}
	if desc.Name != "Text" || desc.Type != TypeFor[string]() {
		t.Errorf("descriptor = %+v", desc)
	}

	t.Run("cached", func(t *testing.T) {
		again, err := Field(TypeFor[label](), "Text")
		if err != nil {
			t.Fatalf("Field: %v", err)
		}
		if again != desc {
			t.Error("cached descriptor must be identical")
		}
	})

	t.Run("unexported", func(t *testing.T) {
		desc, err := Field(TypeFor[label](), "size")
		if err != nil {
			t.Fatalf("Field: %v", err)
		}
		if desc.Type != TypeFor[int]() {
			t.Errorf("size type = %v, want int", desc.Type)
		}
	})

	t.Run("embedded member", func(t *testing.T) {
		desc, err := Field(TypeFor[badge](), "Text")
		if err != nil {
			t.Fatalf("Field: %v", err)
		}
		if desc.Type != TypeFor[string]() {
			t.Errorf("Text type = %v, want string", desc.Type)
		}
	})

	t.Run("direct field shadows embedded", func(t *testing.T) {
		desc, err := Field(TypeFor[badge](), "Count")
		if err != nil {
			t.Fatalf("Field: %v", err)
		}
		if desc.Type != TypeFor[int]() {
			t.Errorf("Count type = %v", desc.Type)
		}
	})

	t.Run("class layout", func(t *testing.T) {
		desc, err := Field(TypeFor[*badge](), "Count")
		if err != nil {
			t.Fatalf("Field: %v", err)
		}
		if desc.Type != TypeFor[int]() {
			t.Errorf("Count type = %v", desc.Type)
		}
	})

	t.Run("not found", func(t *testing.T) {
		if _, err := Field(TypeFor[label](), "Missing"); err == nil {
			t.Error("missing field must be a typed error")
		}
	})

	t.Run("kind without layout", func(t *testing.T) {
		if _, err := Field(TypeFor[string](), "anything"); err == nil {
			t.Error("opaque kinds expose no layout")
		}
	})
}

func TestFieldValue(t *testing.T) {
	v := badge{label: label{Text: "hello", size: 12}, Count: 3}

	t.Run("read value instance", func(t *testing.T) {
		got, err := FieldValue[int](v, "Count")
		if err != nil {
			t.Fatalf("FieldValue: %v", err)
		}
		if got != 3 {
			t.Errorf("Count = %d, want 3", got)
		}
	})

	t.Run("read embedded through offset", func(t *testing.T) {
		got, err := FieldValue[string](v, "Text")
		if err != nil {
			t.Fatalf("FieldValue: %v", err)
		}
		if got != "hello" {
			t.Errorf("Text = %q, want hello", got)
		}
	})

	t.Run("read unexported", func(t *testing.T) {
		got, err := FieldValue[int](v, "size")
		if err != nil {
			t.Fatalf("FieldValue: %v", err)
		}
		if got != 12 {
			t.Errorf("size = %d, want 12", got)
		}
	})

	t.Run("read through reference", func(t *testing.T) {
		got, err := FieldValue[int](&v, "Count")
		if err != nil {
			t.Fatalf("FieldValue: %v", err)
		}
		if got != 3 {
			t.Errorf("Count = %d, want 3", got)
		}
	})

	t.Run("type mismatch", func(t *testing.T) {
		if _, err := FieldValue[string](v, "Count"); err == nil {
			t.Error("reading an int field as string must fail")
		}
	})

	t.Run("not found", func(t *testing.T) {
		if _, err := FieldValue[int](v, "Nope"); err == nil {
			t.Error("missing field must fail")
		}
	})

	t.Run("nil value", func(t *testing.T) {
		if _, err := FieldValue[int](nil, "Count"); err == nil {
			t.Error("nil value must fail")
		}
	})
}

func TestSetFieldValue(t *testing.T) {
	v := badge{Count: 1}

	if err := SetFieldValue(&v, "Count", 9); err != nil {
		t.Fatalf("SetFieldValue: %v", err)
	}
	if v.Count != 9 {
		t.Errorf("Count = %d, want 9", v.Count)
	}

	if err := SetFieldValue(&v, "size", 44); err != nil {
		t.Fatalf("SetFieldValue unexported: %v", err)
	}
	if v.size != 44 {
		t.Errorf("size = %d, want 44", v.size)
	}

	t.Run("non-pointer target", func(t *testing.T) {
		if err := SetFieldValue(v, "Count", 2); err == nil {
			t.Error("writes must require a pointer target")
		}
	})

	t.Run("type mismatch", func(t *testing.T) {
		if err := SetFieldValue(&v, "Count", "nine"); err == nil {
			t.Error("writing a string into an int field must fail")
		}
	})

	t.Run("nil target", func(t *testing.T) {
		var p *badge
		if err := SetFieldValue(p, "Count", 2); err == nil {
			t.Error("nil target must fail")
		}
	})
}

func TestRegistryIsolation(t *testing.T) {
	r := NewRegistry()
	id := TypeFor[label]()

	if _, ok := r.LookupName("metadata.label"); ok {
		t.Error("fresh registry must start empty")
	}

	r.Record(id)
	if got, ok := r.LookupName("metadata.label"); !ok || got != id {
		t.Errorf("LookupName = %v/%v after Record", got, ok)
	}
}
