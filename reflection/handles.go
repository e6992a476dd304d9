package reflection

import (
	"fmt"
	"strings"

	"github.com/skdltmxn/refmeta/classinfo"
)

// executable holds what methods and constructors have in common.
type executable struct {
	resolver *Resolver
	class    Class
	record   *classinfo.Record
	entry    *classinfo.MethodEntry
	member   Member
	sig      CallSignature
}

// DeclaringClass returns the class whose metadata declares the member.
func (x *executable) DeclaringClass() Class { return x.class }

// NativeKey returns the key the member is registered under at runtime.
func (x *executable) NativeKey() string { return x.member.Key }

// Modifiers returns the recorded modifier bits.
func (x *executable) Modifiers() classinfo.Modifiers { return x.entry.Modifiers }

// Signature returns the call signature extracted from the runtime member.
func (x *executable) Signature() CallSignature { return x.sig }

// IsVarargs reports whether the last parameter is variadic.
func (x *executable) IsVarargs() bool { return x.entry.Modifiers.IsVarargs() }

// ParameterTypes resolves the recorded parameter descriptors.
func (x *executable) ParameterTypes() ([]Type, error) {
	list, ok := x.record.MethodParams(x.entry)
	return x.resolver.parseOptionalTypes(list, ok)
}

// ExceptionTypes resolves the recorded exception descriptors.
func (x *executable) ExceptionTypes() ([]Type, error) {
	list, ok := x.record.MethodExceptions(x.entry)
	return x.resolver.parseOptionalTypes(list, ok)
}

// GenericSignature returns the recorded generic signature, if any.
func (x *executable) GenericSignature() (string, bool) {
	return x.record.MethodGenericSignature(x.entry)
}

func (x *executable) paramString() string {
	params, err := x.ParameterTypes()
	if err != nil {
		list, _ := x.record.MethodParams(x.entry)
		return list
	}
	names := make([]string, len(params))
	for i, p := range params {
		names[i] = p.Name()
	}
	return strings.Join(names, ",")
}

// Method is a reflective handle to a located method.
type Method struct {
	executable
}

// Name returns the logical method name.
func (m *Method) Name() string { return methodLogicalName(m.record, m.entry) }

// IsStatic reports whether the method is class-level.
func (m *Method) IsStatic() bool { return m.entry.IsStatic() }

// ReturnType resolves the recorded return-type descriptor.
func (m *Method) ReturnType() (Type, error) {
	desc, ok := m.record.MethodReturnType(m.entry)
	if !ok {
		return nil, ErrNoDescriptor
	}
	return m.resolver.ParseType(desc)
}

// String renders the method as "modifiers return class.name(params)".
func (m *Method) String() string {
	ret, _ := m.record.MethodReturnType(m.entry)
	if t, err := m.ReturnType(); err == nil {
		ret = t.Name()
	}
	return joinNonEmpty(m.Modifiers().String(), ret,
		fmt.Sprintf("%s.%s(%s)", m.class.Name(), m.Name(), m.paramString()))
}

// Constructor is a reflective handle to a located constructor.
type Constructor struct {
	executable
}

// Name returns the name of the declaring class.
func (c *Constructor) Name() string { return c.class.Name() }

// String renders the constructor as "modifiers class(params)".
func (c *Constructor) String() string {
	return joinNonEmpty(c.Modifiers().String(), fmt.Sprintf("%s(%s)", c.class.Name(), c.paramString()))
}

// Field is a reflective handle to a located field.
type Field struct {
	resolver *Resolver
	class    Class
	record   *classinfo.Record
	entry    *classinfo.FieldEntry
	member   Member
}

// Name returns the logical field name.
func (f *Field) Name() string { return fieldLogicalName(f.record, f.entry) }

// NativeKey returns the key the field is registered under at runtime.
func (f *Field) NativeKey() string { return f.member.Key }

// Encoding returns the runtime type encoding of the field slot.
func (f *Field) Encoding() string { return f.member.Encoding }

// DeclaringClass returns the class whose metadata declares the field.
func (f *Field) DeclaringClass() Class { return f.class }

// Modifiers returns the recorded modifier bits.
func (f *Field) Modifiers() classinfo.Modifiers { return f.entry.Modifiers }

// IsStatic reports whether the field is class-level.
func (f *Field) IsStatic() bool { return f.entry.IsStatic() }

// Type resolves the recorded type descriptor.
func (f *Field) Type() (Type, error) {
	desc, ok := f.record.FieldType(f.entry)
	if !ok {
		return nil, ErrNoDescriptor
	}
	return f.resolver.ParseType(desc)
}

// GenericSignature returns the recorded generic signature, if any.
func (f *Field) GenericSignature() (string, bool) {
	return f.record.FieldGenericSignature(f.entry)
}

// String renders the field as "modifiers type class.name".
func (f *Field) String() string {
	typ, _ := f.record.FieldType(f.entry)
	if t, err := f.Type(); err == nil {
		typ = t.Name()
	}
	return joinNonEmpty(f.Modifiers().String(), typ, f.class.Name()+"."+f.Name())
}

func joinNonEmpty(parts ...string) string {
	out := parts[:0:0]
	for _, p := range parts {
		if p != "" {
			out = append(out, p)
		}
	}
	return strings.Join(out, " ")
}
