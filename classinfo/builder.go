package classinfo

import (
	"math"
	"slices"
)

// MethodSpec is the authoring form of a method table entry.
// An empty ReturnType makes the entry a constructor.
type MethodSpec struct {
	Key              string
	ReturnType       string
	Params           string
	Modifiers        Modifiers
	Name             string
	GenericSignature string
	Exceptions       string
}

// FieldSpec is the authoring form of a field table entry.
type FieldSpec struct {
	Key              string
	Type             string
	Modifiers        Modifiers
	Name             string
	GenericSignature string
}

// Builder assembles a Record, interning every string into the pointer table
// once. Empty strings are recorded as NoIndex.
type Builder struct {
	rec      Record
	interned map[string]Index
	overflow bool
}

// NewBuilder starts a record for the class with the given simple name.
func NewBuilder(typeName string) *Builder {
	b := &Builder{
		interned: make(map[string]Index),
		rec: Record{
			header: Header{
				Version:             CurrentVersion,
				TypeNameIdx:         NoIndex,
				PackageNameIdx:      NoIndex,
				EnclosingNameIdx:    NoIndex,
				GenericSignatureIdx: NoIndex,
				InnerClassesIdx:     NoIndex,
				EnclosingMethodIdx:  NoIndex,
			},
		},
	}
	b.rec.header.TypeNameIdx = b.intern(typeName)
	return b
}

func (b *Builder) intern(s string) Index {
	if s == "" {
		return NoIndex
	}
	if idx, ok := b.interned[s]; ok {
		return idx
	}
	if len(b.rec.ptrs) >= math.MaxInt16 {
		b.overflow = true
		return NoIndex
	}
	idx := Index(len(b.rec.ptrs))
	b.rec.ptrs = append(b.rec.ptrs, s)
	b.interned[s] = idx
	return idx
}

// Version overrides the format version tag.
func (b *Builder) Version(v uint16) *Builder {
	b.rec.header.Version = v
	return b
}

// Package sets the package name.
func (b *Builder) Package(name string) *Builder {
	b.rec.header.PackageNameIdx = b.intern(name)
	return b
}

// Enclosing sets the descriptor of the enclosing class.
func (b *Builder) Enclosing(descriptor string) *Builder {
	b.rec.header.EnclosingNameIdx = b.intern(descriptor)
	return b
}

// Modifiers sets the class modifiers.
func (b *Builder) Modifiers(m Modifiers) *Builder {
	b.rec.header.Modifiers = m
	return b
}

// GenericSignature sets the class generic signature.
func (b *Builder) GenericSignature(sig string) *Builder {
	b.rec.header.GenericSignatureIdx = b.intern(sig)
	return b
}

// InnerClasses sets the descriptor list of member classes.
func (b *Builder) InnerClasses(descriptors string) *Builder {
	b.rec.header.InnerClassesIdx = b.intern(descriptors)
	return b
}

// EnclosingMethod sets the native key of the enclosing method.
func (b *Builder) EnclosingMethod(key string) *Builder {
	b.rec.header.EnclosingMethodIdx = b.intern(key)
	return b
}

// AddMethod appends a method table entry.
func (b *Builder) AddMethod(m MethodSpec) *Builder {
	b.rec.methods = append(b.rec.methods, MethodEntry{
		KeyIdx:              b.intern(m.Key),
		ReturnTypeIdx:       b.intern(m.ReturnType),
		Modifiers:           m.Modifiers,
		ParamsIdx:           b.intern(m.Params),
		GenericSignatureIdx: b.intern(m.GenericSignature),
		NameIdx:             b.intern(m.Name),
		ExceptionsIdx:       b.intern(m.Exceptions),
	})
	return b
}

// AddField appends a field table entry.
func (b *Builder) AddField(f FieldSpec) *Builder {
	b.rec.fields = append(b.rec.fields, FieldEntry{
		KeyIdx:              b.intern(f.Key),
		TypeIdx:             b.intern(f.Type),
		Modifiers:           f.Modifiers,
		NameIdx:             b.intern(f.Name),
		GenericSignatureIdx: b.intern(f.GenericSignature),
	})
	return b
}

// Build returns the assembled record. The builder may keep being used.
func (b *Builder) Build() (*Record, error) {
	if b.overflow || len(b.rec.methods) > math.MaxUint16 || len(b.rec.fields) > math.MaxUint16 {
		return nil, ErrTableTooLarge
	}
	rec := &Record{
		header:  b.rec.header,
		methods: slices.Clone(b.rec.methods),
		fields:  slices.Clone(b.rec.fields),
		ptrs:    slices.Clone(b.rec.ptrs),
	}
	rec.header.MethodCount = uint16(len(rec.methods))
	rec.header.FieldCount = uint16(len(rec.fields))
	rec.header.PtrCount = uint16(len(rec.ptrs))
	return rec, nil
}

// MustBuild is like Build but panics on error. It is intended for records
// declared as package-level values.
func (b *Builder) MustBuild() *Record {
	rec, err := b.Build()
	if err != nil {
		panic(err)
	}
	return rec
}
