package reflection

import (
	"strings"

	"github.com/skdltmxn/refmeta/classinfo"
)

// renderParamTypes concatenates the descriptor tokens of params. A nil
// element makes the list unrenderable, so it matches no recorded list.
func renderParamTypes(params []Type) (string, bool) {
	var sb strings.Builder
	for _, p := range params {
		if p == nil {
			return "", false
		}
		sb.WriteString(p.Descriptor())
	}
	return sb.String(), true
}

// paramsMatch compares a rendered list with the recorded descriptor list;
// an absent descriptor list equals the empty list.
func paramsMatch(rec *classinfo.Record, e *classinfo.MethodEntry, rendered string) bool {
	recorded, _ := rec.MethodParams(e)
	return recorded == rendered
}

func (r *Resolver) newMethod(c Class, rec *classinfo.Record, e *classinfo.MethodEntry) *Method {
	m, sig, ok := r.locateMethod(c, rec, e)
	if !ok {
		return nil
	}
	return &Method{executable{resolver: r, class: c, record: rec, entry: e, member: m, sig: sig}}
}

func (r *Resolver) newConstructor(c Class, rec *classinfo.Record, e *classinfo.MethodEntry) *Constructor {
	m, sig, ok := r.locateConstructor(c, rec, e)
	if !ok {
		return nil
	}
	return &Constructor{executable{resolver: r, class: c, record: rec, entry: e, member: m, sig: sig}}
}

func (r *Resolver) newField(c Class, rec *classinfo.Record, e *classinfo.FieldEntry) *Field {
	m, ok := r.locateField(c, rec, e)
	if !ok {
		return nil
	}
	return &Field{resolver: r, class: c, record: rec, entry: e, member: m}
}

// findMethodEntry returns the first entry of c's method table satisfying match.
func findMethodEntry(c Class, match func(*classinfo.Record, *classinfo.MethodEntry) bool) (*classinfo.Record, *classinfo.MethodEntry) {
	if c == nil {
		return nil, nil
	}
	rec := c.Metadata()
	if rec == nil {
		return nil, nil
	}
	for i := 0; i < rec.MethodCount(); i++ {
		e := rec.Method(i)
		if match(rec, e) {
			return rec, e
		}
	}
	return nil, nil
}

// MethodByNameAndParamTypes returns the method of c declared with the given
// logical name and parameter types, or nil. Only c's own metadata is searched.
func (r *Resolver) MethodByNameAndParamTypes(c Class, name string, params []Type) *Method {
	rendered, ok := renderParamTypes(params)
	if !ok {
		return nil
	}
	rec, e := findMethodEntry(c, func(rec *classinfo.Record, e *classinfo.MethodEntry) bool {
		return !e.IsConstructor() && matchesMethodName(rec, e, name) && paramsMatch(rec, e, rendered)
	})
	if e == nil {
		return nil
	}
	return r.newMethod(c, rec, e)
}

// ConstructorByParamTypes returns the constructor of c declared with the
// given parameter types, or nil.
func (r *Resolver) ConstructorByParamTypes(c Class, params []Type) *Constructor {
	rendered, ok := renderParamTypes(params)
	if !ok {
		return nil
	}
	rec, e := findMethodEntry(c, func(rec *classinfo.Record, e *classinfo.MethodEntry) bool {
		return e.IsConstructor() && paramsMatch(rec, e, rendered)
	})
	if e == nil {
		return nil
	}
	return r.newConstructor(c, rec, e)
}

// MethodByNativeKey returns the method of c registered under key, or nil.
func (r *Resolver) MethodByNativeKey(c Class, key string) *Method {
	rec, e := findMethodEntry(c, func(rec *classinfo.Record, e *classinfo.MethodEntry) bool {
		return !e.IsConstructor() && rec.MethodKey(e) == key
	})
	if e == nil {
		return nil
	}
	return r.newMethod(c, rec, e)
}

// ConstructorByNativeKey returns the constructor of c registered under key, or nil.
func (r *Resolver) ConstructorByNativeKey(c Class, key string) *Constructor {
	rec, e := findMethodEntry(c, func(rec *classinfo.Record, e *classinfo.MethodEntry) bool {
		return e.IsConstructor() && rec.MethodKey(e) == key
	})
	if e == nil {
		return nil
	}
	return r.newConstructor(c, rec, e)
}

// FieldByName returns the first field of c answering to name, or nil.
func (r *Resolver) FieldByName(c Class, name string) *Field {
	if c == nil {
		return nil
	}
	rec := c.Metadata()
	if rec == nil {
		return nil
	}
	for i := 0; i < rec.FieldCount(); i++ {
		e := rec.Field(i)
		if matchesField(rec, e, name) {
			return r.newField(c, rec, e)
		}
	}
	return nil
}

// MethodAt returns the method built from entry i of c's method table, or nil
// when i is out of range, the entry is a constructor or it cannot be located.
func (r *Resolver) MethodAt(c Class, i int) *Method {
	rec := metadataOf(c)
	if rec == nil || i < 0 || i >= rec.MethodCount() {
		return nil
	}
	e := rec.Method(i)
	if e.IsConstructor() {
		return nil
	}
	return r.newMethod(c, rec, e)
}

// ConstructorAt is MethodAt for constructor entries.
func (r *Resolver) ConstructorAt(c Class, i int) *Constructor {
	rec := metadataOf(c)
	if rec == nil || i < 0 || i >= rec.MethodCount() {
		return nil
	}
	e := rec.Method(i)
	if !e.IsConstructor() {
		return nil
	}
	return r.newConstructor(c, rec, e)
}

// FieldAt returns the field built from entry i of c's field table, or nil.
func (r *Resolver) FieldAt(c Class, i int) *Field {
	rec := metadataOf(c)
	if rec == nil || i < 0 || i >= rec.FieldCount() {
		return nil
	}
	return r.newField(c, rec, rec.Field(i))
}

// DeclaredMethods returns the locatable methods of c in table order.
func (r *Resolver) DeclaredMethods(c Class) []*Method {
	var methods []*Method
	forEachMethodEntry(c, func(rec *classinfo.Record, e *classinfo.MethodEntry) {
		if e.IsConstructor() {
			return
		}
		if m := r.newMethod(c, rec, e); m != nil {
			methods = append(methods, m)
		}
	})
	return methods
}

// DeclaredConstructors returns the locatable constructors of c in table order.
func (r *Resolver) DeclaredConstructors(c Class) []*Constructor {
	var ctors []*Constructor
	forEachMethodEntry(c, func(rec *classinfo.Record, e *classinfo.MethodEntry) {
		if !e.IsConstructor() {
			return
		}
		if k := r.newConstructor(c, rec, e); k != nil {
			ctors = append(ctors, k)
		}
	})
	return ctors
}

// DeclaredFields returns the locatable fields of c in table order.
func (r *Resolver) DeclaredFields(c Class) []*Field {
	if c == nil || c.Metadata() == nil {
		return nil
	}
	rec := c.Metadata()
	var fields []*Field
	for i := 0; i < rec.FieldCount(); i++ {
		if f := r.newField(c, rec, rec.Field(i)); f != nil {
			fields = append(fields, f)
		}
	}
	return fields
}

func forEachMethodEntry(c Class, fn func(*classinfo.Record, *classinfo.MethodEntry)) {
	if c == nil || c.Metadata() == nil {
		return
	}
	rec := c.Metadata()
	for i := 0; i < rec.MethodCount(); i++ {
		fn(rec, rec.Method(i))
	}
}
