package reflection

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/skdltmxn/refmeta/classinfo"
	"github.com/skdltmxn/refmeta/internal/descriptor"
)

// maxEnclosingDepth bounds the chain of enclosing classes followed by
// QualifiedName. Longer chains, including cycles, yield an absent name.
const maxEnclosingDepth = 64

// QualifiedName builds the fully-qualified name recorded in rec, e.g.
// "com.example.Foo" or "com.example.Foo$Inner". Nested names are built from
// the enclosing class's own record; if that cannot be obtained the result
// is absent rather than partial.
func (r *Resolver) QualifiedName(rec *classinfo.Record) (string, bool) {
	return r.qualifiedName(rec, 0)
}

func (r *Resolver) qualifiedName(rec *classinfo.Record, depth int) (string, bool) {
	if rec == nil {
		return "", false
	}
	if depth >= maxEnclosingDepth {
		r.log.Debug("enclosing chain too deep", zap.String("type", rec.TypeName()))
		return "", false
	}

	if desc, ok := rec.EnclosingDescriptor(); ok {
		outer, err := r.classFromDescriptor(desc)
		if err != nil {
			r.log.Debug("enclosing class unavailable",
				zap.String("type", rec.TypeName()),
				zap.String("descriptor", desc),
				zap.Error(err))
			return "", false
		}
		outerName, ok := r.qualifiedName(outer.Metadata(), depth+1)
		if !ok {
			return "", false
		}
		return outerName + "$" + rec.TypeName(), true
	}

	if pkg, ok := rec.PackageName(); ok {
		return pkg + "." + rec.TypeName(), true
	}
	return rec.TypeName(), true
}

// EnclosingClass returns the class enclosing c, or nil for top-level classes.
func (r *Resolver) EnclosingClass(c Class) (Class, error) {
	rec := metadataOf(c)
	if rec == nil {
		return nil, nil
	}
	desc, ok := rec.EnclosingDescriptor()
	if !ok {
		return nil, nil
	}
	return r.classFromDescriptor(desc)
}

// InnerClasses resolves the member classes recorded for c.
func (r *Resolver) InnerClasses(c Class) ([]Type, error) {
	rec := metadataOf(c)
	if rec == nil {
		return nil, nil
	}
	list, ok := rec.InnerClasses()
	return r.parseOptionalTypes(list, ok)
}

// ClassGenericSignature returns the generic signature recorded for c, if any.
func (r *Resolver) ClassGenericSignature(c Class) (string, bool) {
	rec := metadataOf(c)
	if rec == nil {
		return "", false
	}
	return rec.GenericSignature()
}

// metadataOf returns c's record, or nil for a nil class.
func metadataOf(c Class) *classinfo.Record {
	if c == nil {
		return nil
	}
	return c.Metadata()
}

func (r *Resolver) classFromDescriptor(desc string) (Class, error) {
	node, err := descriptor.ParseOne(desc)
	if err != nil {
		return nil, err
	}
	ref, ok := node.(*descriptor.Reference)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrNotReference, desc)
	}
	t, err := r.registry.ResolveName(ref.Name)
	if err != nil {
		return nil, err
	}
	c, ok := t.(Class)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrNotReference, desc)
	}
	return c, nil
}
