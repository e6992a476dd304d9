package classinfo

// CurrentVersion is the metadata format version this package reads and writes.
// A record carrying any other version is unusable.
const CurrentVersion uint16 = 7

// Magic is the signature at the start of every encoded record.
const Magic = "RFMD"

// Index is an offset into a record's pointer table.
type Index int16

// NoIndex is the sentinel meaning "no value".
const NoIndex Index = -1

// Present reports whether the index refers to a value.
func (i Index) Present() bool { return i >= 0 }

// Header holds the scalar fields at the start of a record.
type Header struct {
	Version     uint16
	MethodCount uint16
	FieldCount  uint16
	PtrCount    uint16
	Modifiers   Modifiers

	TypeNameIdx         Index
	PackageNameIdx      Index
	EnclosingNameIdx    Index // descriptor of the enclosing class
	GenericSignatureIdx Index
	InnerClassesIdx     Index // descriptor list of member classes
	EnclosingMethodIdx  Index
}

// MethodEntry describes one method or constructor.
// A constructor is an entry without a return type.
type MethodEntry struct {
	KeyIdx              Index // native key, always present
	ReturnTypeIdx       Index
	Modifiers           Modifiers
	ParamsIdx           Index // concatenated parameter descriptors
	GenericSignatureIdx Index
	NameIdx             Index // logical name when it differs from the key
	ExceptionsIdx       Index // concatenated exception descriptors
}

// IsConstructor reports whether the entry has no return type.
func (e *MethodEntry) IsConstructor() bool { return !e.ReturnTypeIdx.Present() }

// IsStatic reports whether the entry describes a class-level member.
func (e *MethodEntry) IsStatic() bool { return e.Modifiers.IsStatic() }

// FieldEntry describes one field.
type FieldEntry struct {
	KeyIdx              Index // native key, always present
	TypeIdx             Index
	Modifiers           Modifiers
	NameIdx             Index
	GenericSignatureIdx Index
}

// IsStatic reports whether the entry describes a class-level field.
func (e *FieldEntry) IsStatic() bool { return e.Modifiers.IsStatic() }

// Record is the immutable metadata of one class.
// It is safe for concurrent use.
type Record struct {
	header  Header
	methods []MethodEntry
	fields  []FieldEntry
	ptrs    []string
}

// Header returns a copy of the record header.
func (r *Record) Header() Header { return r.header }

// Version returns the format version tag.
func (r *Record) Version() uint16 { return r.header.Version }

// Modifiers returns the class modifiers.
func (r *Record) Modifiers() Modifiers { return r.header.Modifiers }

// MethodCount returns the number of method table entries.
func (r *Record) MethodCount() int { return len(r.methods) }

// FieldCount returns the number of field table entries.
func (r *Record) FieldCount() int { return len(r.fields) }

// Method returns the i-th method entry.
func (r *Record) Method(i int) *MethodEntry { return &r.methods[i] }

// Field returns the i-th field entry.
func (r *Record) Field(i int) *FieldEntry { return &r.fields[i] }

// Ptr returns the pointer-table string at idx.
// The sentinel index, and any other negative index, yields false.
func (r *Record) Ptr(idx Index) (string, bool) {
	if !idx.Present() || int(idx) >= len(r.ptrs) {
		return "", false
	}
	return r.ptrs[idx], true
}

func (r *Record) ptrOrEmpty(idx Index) string {
	s, _ := r.Ptr(idx)
	return s
}

// TypeName returns the simple name of the class.
func (r *Record) TypeName() string { return r.ptrOrEmpty(r.header.TypeNameIdx) }

// PackageName returns the package name, if any.
func (r *Record) PackageName() (string, bool) { return r.Ptr(r.header.PackageNameIdx) }

// EnclosingDescriptor returns the raw descriptor of the enclosing class, if any.
func (r *Record) EnclosingDescriptor() (string, bool) { return r.Ptr(r.header.EnclosingNameIdx) }

// GenericSignature returns the class generic signature, if any.
func (r *Record) GenericSignature() (string, bool) { return r.Ptr(r.header.GenericSignatureIdx) }

// InnerClasses returns the descriptor list of member classes, if any.
func (r *Record) InnerClasses() (string, bool) { return r.Ptr(r.header.InnerClassesIdx) }

// EnclosingMethod returns the native key of the enclosing method, if any.
func (r *Record) EnclosingMethod() (string, bool) { return r.Ptr(r.header.EnclosingMethodIdx) }

// MethodKey returns the native key of e.
func (r *Record) MethodKey(e *MethodEntry) string { return r.ptrOrEmpty(e.KeyIdx) }

// MethodReturnType returns the return-type descriptor of e; false for constructors.
func (r *Record) MethodReturnType(e *MethodEntry) (string, bool) { return r.Ptr(e.ReturnTypeIdx) }

// MethodParams returns the parameter descriptor list of e, if recorded.
func (r *Record) MethodParams(e *MethodEntry) (string, bool) { return r.Ptr(e.ParamsIdx) }

// MethodName returns the alternate logical name of e, if recorded.
func (r *Record) MethodName(e *MethodEntry) (string, bool) { return r.Ptr(e.NameIdx) }

// MethodGenericSignature returns the generic signature of e, if recorded.
func (r *Record) MethodGenericSignature(e *MethodEntry) (string, bool) {
	return r.Ptr(e.GenericSignatureIdx)
}

// MethodExceptions returns the exception descriptor list of e, if recorded.
func (r *Record) MethodExceptions(e *MethodEntry) (string, bool) { return r.Ptr(e.ExceptionsIdx) }

// FieldKey returns the native key of e.
func (r *Record) FieldKey(e *FieldEntry) string { return r.ptrOrEmpty(e.KeyIdx) }

// FieldType returns the type descriptor of e, if recorded.
func (r *Record) FieldType(e *FieldEntry) (string, bool) { return r.Ptr(e.TypeIdx) }

// FieldName returns the alternate logical name of e, if recorded.
func (r *Record) FieldName(e *FieldEntry) (string, bool) { return r.Ptr(e.NameIdx) }

// FieldGenericSignature returns the generic signature of e, if recorded.
func (r *Record) FieldGenericSignature(e *FieldEntry) (string, bool) {
	return r.Ptr(e.GenericSignatureIdx)
}
