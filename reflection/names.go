package reflection

import (
	"strings"

	"github.com/skdltmxn/refmeta/classinfo"
)

// fieldMarker is appended to native field keys that would otherwise collide
// with reserved words or method names.
const fieldMarker = '_'

// matchesField reports whether field entry e answers to name: its alternate
// name, its native key, or its native key without one trailing marker.
func matchesField(rec *classinfo.Record, e *classinfo.FieldEntry, name string) bool {
	if alt, ok := rec.FieldName(e); ok && alt == name {
		return true
	}
	key := rec.FieldKey(e)
	if key == name {
		return true
	}
	// A bare marker is a key of its own, not a marked empty name.
	n := len(key)
	return n > 1 && key[n-1] == fieldMarker && key[:n-1] == name
}

// fieldLogicalName returns the name a field is reported under.
func fieldLogicalName(rec *classinfo.Record, e *classinfo.FieldEntry) string {
	if alt, ok := rec.FieldName(e); ok {
		return alt
	}
	key := rec.FieldKey(e)
	if n := len(key); n > 1 && key[n-1] == fieldMarker {
		return key[:n-1]
	}
	return key
}

// matchesMethodName reports whether method entry e answers to name: its
// alternate name, its native key, or, without an alternate name, the name
// derived from its native key.
func matchesMethodName(rec *classinfo.Record, e *classinfo.MethodEntry, name string) bool {
	alt, hasAlt := rec.MethodName(e)
	if hasAlt && alt == name {
		return true
	}
	key := rec.MethodKey(e)
	if key == name {
		return true
	}
	return !hasAlt && methodNameFromKey(key) == name
}

// methodLogicalName returns the name a method is reported under.
func methodLogicalName(rec *classinfo.Record, e *classinfo.MethodEntry) string {
	if alt, ok := rec.MethodName(e); ok {
		return alt
	}
	return methodNameFromKey(rec.MethodKey(e))
}

// methodNameFromKey derives a logical name from a native key such as
// "fooWithInt:withBar:": the part before the first ':' up to its last
// "With" that starts a parameter type name.
func methodNameFromKey(key string) string {
	colon := strings.IndexByte(key, ':')
	if colon < 0 {
		return key
	}
	base := key[:colon]
	for i := len(base) - len("With") - 1; i > 0; i-- {
		if strings.HasPrefix(base[i:], "With") && isUpper(base[i+len("With")]) {
			return base[:i]
		}
	}
	return base
}

func isUpper(c byte) bool { return c >= 'A' && c <= 'Z' }
