package reflection

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/skdltmxn/refmeta/internal/descriptor"
)

// Resolver answers reflective queries over classes whose metadata has been
// discovered. It holds no mutable state and is safe for concurrent use.
type Resolver struct {
	registry Registry
	log      *zap.Logger
}

// NewResolver creates a Resolver that resolves descriptors through reg.
func NewResolver(reg Registry, opts ...Option) *Resolver {
	o := buildOptions(opts)
	return &Resolver{registry: reg, log: o.log}
}

// Registry returns the registry descriptors are resolved against.
func (r *Resolver) Registry() Registry { return r.registry }

// ParseType parses and resolves a single type descriptor.
func (r *Resolver) ParseType(desc string) (Type, error) {
	node, err := descriptor.ParseOne(desc)
	if err != nil {
		return nil, err
	}
	t, err := r.resolveNode(node)
	if err != nil {
		return nil, fmt.Errorf("reflection: resolving %q: %w", desc, err)
	}
	return t, nil
}

// ParseTypes parses and resolves a concatenated descriptor list.
// An empty list yields no types and no error.
func (r *Resolver) ParseTypes(list string) ([]Type, error) {
	nodes, err := descriptor.ParseAll(list)
	if err != nil {
		return nil, err
	}
	types := make([]Type, 0, len(nodes))
	for _, n := range nodes {
		t, err := r.resolveNode(n)
		if err != nil {
			return nil, fmt.Errorf("reflection: resolving %q in %q: %w", n.String(), list, err)
		}
		types = append(types, t)
	}
	return types, nil
}

func (r *Resolver) resolveNode(n descriptor.Node) (Type, error) {
	switch n := n.(type) {
	case *descriptor.Primitive:
		t, ok := r.registry.ResolvePrimitive(n.Code)
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownPrimitive, n.Code)
		}
		return t, nil

	case *descriptor.Reference:
		return r.registry.ResolveName(n.Name)

	case *descriptor.Array:
		elem, err := r.resolveNode(n.Elem)
		if err != nil {
			return nil, err
		}
		return r.registry.ArrayOf(elem), nil

	default:
		return nil, fmt.Errorf("reflection: unsupported descriptor node %s", n.Kind())
	}
}

// parseOptionalTypes parses list when present; an absent list is empty.
func (r *Resolver) parseOptionalTypes(list string, ok bool) ([]Type, error) {
	if !ok {
		return nil, nil
	}
	return r.ParseTypes(list)
}
