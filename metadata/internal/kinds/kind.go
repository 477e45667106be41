package kinds

// Kind is the closed tag set of runtime type metadata kinds. Values outside
// this set never classify; callers treat such types as opaque and do not
// introspect further.
type Kind uint8

const (
	KindStruct Kind = iota
	KindClass
	KindEnum
	KindOptional
	KindTuple
	KindFunction
	KindExistential
	KindMetatype
	KindOpaque
)

var kindNames = [...]string{
	KindStruct:      "struct",
	KindClass:       "class",
	KindEnum:        "enum",
	KindOptional:    "optional",
	KindTuple:       "tuple",
	KindFunction:    "function",
	KindExistential: "existential",
	KindMetatype:    "metatype",
	KindOpaque:      "opaque",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

// IsNominal reports whether the kind carries a nominal descriptor with a
// possible trailing generic-argument vector.
func (k Kind) IsNominal() bool {
	switch k {
	case KindStruct, KindClass, KindEnum, KindOptional, KindTuple:
		return true
	default:
		return false
	}
}

// IsReference reports whether values of the kind have reference semantics.
func (k Kind) IsReference() bool {
	return k == KindClass
}

// HasLayout reports whether the kind exposes a decodable field layout.
func (k Kind) HasLayout() bool {
	switch k {
	case KindStruct, KindClass, KindTuple:
		return true
	default:
		return false
	}
}
