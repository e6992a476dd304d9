package reflection

import (
	"iter"

	"github.com/skdltmxn/refmeta/classinfo"
)

// TypeKind identifies the category of a type.
type TypeKind uint8

const (
	TypeKindUnknown TypeKind = iota
	TypeKindPrimitive
	TypeKindClass
	TypeKindInterface
	TypeKindArray
)

func (k TypeKind) String() string {
	switch k {
	case TypeKindPrimitive:
		return "primitive"
	case TypeKindClass:
		return "class"
	case TypeKindInterface:
		return "interface"
	case TypeKindArray:
		return "array"
	default:
		return "unknown"
	}
}

// Type is a fully resolved primitive, class, interface or array type.
type Type interface {
	// Kind returns the type kind.
	Kind() TypeKind

	// Name returns the type name, e.g. "int", "com.example.Foo" or "[I".
	Name() string

	// Descriptor returns the metadata descriptor token, e.g. "I" or "Lcom.example.Foo;".
	Descriptor() string
}

// Class is a class or interface type backed by live runtime members.
type Class interface {
	Type

	// Superclass returns the direct superclass, or nil.
	Superclass() Class

	// Interfaces returns the directly declared interfaces in declaration order.
	Interfaces() []Class

	// IsAbstract reports whether the class cannot be instantiated.
	IsAbstract() bool

	// Members returns the live member table.
	Members() MemberTable

	// Metadata returns the discovered metadata record, or nil if the class has none.
	Metadata() *classinfo.Record
}

// Member is a live runtime member: the key it is registered under and its
// runtime type encoding. An empty encoding means none is available.
type Member struct {
	Key      string `json:"key" yaml:"key"`
	Encoding string `json:"encoding,omitempty" yaml:"encoding,omitempty"`
}

// MemberTable is the runtime member surface of a class.
type MemberTable interface {
	// InstanceMembers enumerates instance-level members.
	InstanceMembers() iter.Seq[Member]

	// ClassMembers enumerates class-level members.
	ClassMembers() iter.Seq[Member]

	// ProtocolMember returns the interface member description for key,
	// from the required or the optional set.
	ProtocolMember(key string, required bool) (Member, bool)
}

// Registry resolves names and codes to types.
//
// A Registry must not be called while a class is being defined; see Universe.Define.
type Registry interface {
	// ResolveName returns the type with the given name.
	ResolveName(name string) (Type, error)

	// ResolvePrimitive returns the primitive type for a descriptor code.
	ResolvePrimitive(code byte) (Type, bool)

	// ArrayOf returns the array type with the given element type.
	ArrayOf(elem Type) Type
}

// PrimitiveType is a built-in type.
type PrimitiveType struct {
	code byte
	name string
}

func (t *PrimitiveType) Kind() TypeKind     { return TypeKindPrimitive }
func (t *PrimitiveType) Name() string       { return t.name }
func (t *PrimitiveType) Descriptor() string { return string(t.code) }
func (t *PrimitiveType) Code() byte         { return t.code }

// ArrayType is an array of a resolved element type.
type ArrayType struct {
	elem Type
}

func (t *ArrayType) Kind() TypeKind     { return TypeKindArray }
func (t *ArrayType) Name() string       { return t.Descriptor() }
func (t *ArrayType) Descriptor() string { return "[" + t.elem.Descriptor() }
func (t *ArrayType) Elem() Type         { return t.elem }

func findMember(members iter.Seq[Member], key string) (Member, bool) {
	for m := range members {
		if m.Key == key {
			return m, true
		}
	}
	return Member{}, false
}
