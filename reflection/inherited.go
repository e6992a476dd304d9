package reflection

// searchHierarchy applies find to c, then depth-first to each declared
// interface in order, then to the superclass chain. The first non-nil
// result wins. The class graph is acyclic, so no visited set is kept.
func searchHierarchy[T any](c Class, find func(Class) *T) *T {
	if c == nil {
		return nil
	}
	if v := find(c); v != nil {
		return v
	}
	for _, iface := range c.Interfaces() {
		if v := searchHierarchy(iface, find); v != nil {
			return v
		}
	}
	return searchHierarchy(c.Superclass(), find)
}

// MethodByNameAndParamTypesInherited is MethodByNameAndParamTypes over c,
// its interfaces and its superclasses.
func (r *Resolver) MethodByNameAndParamTypesInherited(c Class, name string, params []Type) *Method {
	return searchHierarchy(c, func(k Class) *Method {
		return r.MethodByNameAndParamTypes(k, name, params)
	})
}

// MethodByNativeKeyInherited is MethodByNativeKey over c, its interfaces and
// its superclasses.
func (r *Resolver) MethodByNativeKeyInherited(c Class, key string) *Method {
	return searchHierarchy(c, func(k Class) *Method {
		return r.MethodByNativeKey(k, key)
	})
}

// FieldByNameInherited is FieldByName over c, its interfaces and its superclasses.
func (r *Resolver) FieldByNameInherited(c Class, name string) *Field {
	return searchHierarchy(c, func(k Class) *Field {
		return r.FieldByName(k, name)
	})
}
