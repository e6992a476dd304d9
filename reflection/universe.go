package reflection

import (
	"fmt"
	"iter"
	"slices"
	"strings"
	"sync"

	"go.uber.org/zap"

	"github.com/skdltmxn/refmeta/classinfo"
	"github.com/skdltmxn/refmeta/internal/descriptor"
)

var primitiveNames = map[byte]string{
	descriptor.CodeBoolean: "boolean",
	descriptor.CodeByte:    "byte",
	descriptor.CodeChar:    "char",
	descriptor.CodeShort:   "short",
	descriptor.CodeInt:     "int",
	descriptor.CodeLong:    "long",
	descriptor.CodeFloat:   "float",
	descriptor.CodeDouble:  "double",
	descriptor.CodeVoid:    "void",
}

// ProtocolMember is an interface member description.
type ProtocolMember struct {
	Member   `yaml:",inline"`
	Required bool `json:"required" yaml:"required"`
}

// ClassDef describes a class to define in a Universe.
type ClassDef struct {
	Name            string
	Interface       bool
	Abstract        bool
	Superclass      string
	Interfaces      []string
	InstanceMembers []Member
	ClassMembers    []Member
	ProtocolMembers []ProtocolMember
	Metadata        MetadataSource
}

// Universe is an in-memory type system: a Registry over primitive, array
// and defined classes, each carrying a precomputed member index.
// It is safe for concurrent use.
type Universe struct {
	log *zap.Logger

	mu         sync.RWMutex
	classes    map[string]*RuntimeClass
	order      []*RuntimeClass
	primitives map[byte]*PrimitiveType
	arrays     sync.Map // map[string]*ArrayType keyed by element descriptor

	// initMu is the type-initialization lock held while a class's metadata
	// is discovered.
	initMu sync.Mutex
}

// NewUniverse creates a Universe containing only the primitive types.
func NewUniverse(opts ...Option) *Universe {
	o := buildOptions(opts)
	u := &Universe{
		log:        o.log,
		classes:    make(map[string]*RuntimeClass),
		primitives: make(map[byte]*PrimitiveType, len(primitiveNames)),
	}
	for code, name := range primitiveNames {
		u.primitives[code] = &PrimitiveType{code: code, name: name}
	}
	return u
}

// Resolver returns a Resolver over this Universe sharing its logger.
func (u *Universe) Resolver(opts ...Option) *Resolver {
	return NewResolver(u, append([]Option{WithLogger(u.log)}, opts...)...)
}

// Define adds a class. Its superclass and interfaces must already be defined,
// which keeps the class graph acyclic.
//
// The class's metadata is discovered while the type-initialization lock is
// held; nothing in that window resolves other types.
func (u *Universe) Define(def ClassDef) (*RuntimeClass, error) {
	c := &RuntimeClass{
		name:     def.Name,
		kind:     TypeKindClass,
		abstract: def.Abstract || def.Interface,
		instance: slices.Clone(def.InstanceMembers),
		class:    slices.Clone(def.ClassMembers),
	}
	if def.Interface {
		c.kind = TypeKindInterface
	}
	if len(def.ProtocolMembers) > 0 {
		c.protocol = make(map[protocolKey]Member, len(def.ProtocolMembers))
		for _, pm := range def.ProtocolMembers {
			k := protocolKey{key: pm.Key, required: pm.Required}
			if _, dup := c.protocol[k]; !dup {
				c.protocol[k] = pm.Member
			}
		}
	}

	if err := u.link(c, def); err != nil {
		return nil, err
	}

	c.meta = u.discover(def)

	u.mu.Lock()
	defer u.mu.Unlock()
	if _, exists := u.classes[def.Name]; exists {
		return nil, fmt.Errorf("%w: %s", ErrDuplicateClass, def.Name)
	}
	u.classes[def.Name] = c
	u.order = append(u.order, c)

	u.log.Debug("class defined",
		zap.String("class", def.Name),
		zap.Stringer("kind", c.kind),
		zap.Bool("metadata", c.meta != nil))
	return c, nil
}

func (u *Universe) discover(def ClassDef) *classinfo.Record {
	u.initMu.Lock()
	defer u.initMu.Unlock()
	return Discover(def.Metadata, u.log.With(zap.String("class", def.Name)))
}

func (u *Universe) link(c *RuntimeClass, def ClassDef) error {
	u.mu.RLock()
	defer u.mu.RUnlock()

	if def.Name == "" || strings.HasPrefix(def.Name, "[") {
		return fmt.Errorf("reflection: invalid class name %q", def.Name)
	}
	if _, exists := u.classes[def.Name]; exists {
		return fmt.Errorf("%w: %s", ErrDuplicateClass, def.Name)
	}

	if def.Superclass != "" {
		super, ok := u.classes[def.Superclass]
		if !ok {
			return fmt.Errorf("%w: superclass %s of %s", ErrClassNotFound, def.Superclass, def.Name)
		}
		if super.kind == TypeKindInterface || def.Interface {
			return fmt.Errorf("%w: %s cannot extend %s", ErrInvalidHierarchy, def.Name, def.Superclass)
		}
		c.super = super
	}

	for _, name := range def.Interfaces {
		iface, ok := u.classes[name]
		if !ok {
			return fmt.Errorf("%w: interface %s of %s", ErrClassNotFound, name, def.Name)
		}
		if iface.kind != TypeKindInterface {
			return fmt.Errorf("%w: %s is not an interface", ErrInvalidHierarchy, name)
		}
		c.interfaces = append(c.interfaces, iface)
	}
	return nil
}

// Lookup returns the defined class with the given name.
func (u *Universe) Lookup(name string) (*RuntimeClass, bool) {
	u.mu.RLock()
	defer u.mu.RUnlock()
	c, ok := u.classes[name]
	return c, ok
}

// Classes returns an iterator over defined classes in definition order.
func (u *Universe) Classes() iter.Seq[*RuntimeClass] {
	u.mu.RLock()
	snapshot := slices.Clone(u.order)
	u.mu.RUnlock()

	return func(yield func(*RuntimeClass) bool) {
		for _, c := range snapshot {
			if !yield(c) {
				return
			}
		}
	}
}

// ResolveName returns the class with the given name. Array names in
// descriptor form, e.g. "[I", resolve to array types.
func (u *Universe) ResolveName(name string) (Type, error) {
	if strings.HasPrefix(name, "[") {
		node, err := descriptor.ParseOne(name)
		if err != nil {
			return nil, err
		}
		return NewResolver(u).resolveNode(node)
	}

	if c, ok := u.Lookup(name); ok {
		return c, nil
	}
	return nil, fmt.Errorf("%w: %s", ErrClassNotFound, name)
}

// ResolvePrimitive returns the primitive type for a descriptor code.
func (u *Universe) ResolvePrimitive(code byte) (Type, bool) {
	p, ok := u.primitives[code]
	if !ok {
		return nil, false
	}
	return p, true
}

// ArrayOf returns the array type with the given element type. Repeated calls
// with the same element return the same handle.
func (u *Universe) ArrayOf(elem Type) Type {
	key := elem.Descriptor()
	if a, ok := u.arrays.Load(key); ok {
		return a.(*ArrayType)
	}
	a, _ := u.arrays.LoadOrStore(key, &ArrayType{elem: elem})
	return a.(*ArrayType)
}

type protocolKey struct {
	key      string
	required bool
}

// RuntimeClass is a class defined in a Universe.
type RuntimeClass struct {
	name       string
	kind       TypeKind
	abstract   bool
	super      *RuntimeClass
	interfaces []Class
	instance   []Member
	class      []Member
	protocol   map[protocolKey]Member
	meta       *classinfo.Record
}

func (c *RuntimeClass) Kind() TypeKind              { return c.kind }
func (c *RuntimeClass) Name() string                { return c.name }
func (c *RuntimeClass) Descriptor() string          { return "L" + c.name + ";" }
func (c *RuntimeClass) IsAbstract() bool            { return c.abstract }
func (c *RuntimeClass) Members() MemberTable        { return c }
func (c *RuntimeClass) Metadata() *classinfo.Record { return c.meta }

// Superclass returns the direct superclass, or nil.
func (c *RuntimeClass) Superclass() Class {
	if c.super == nil {
		return nil
	}
	return c.super
}

// Interfaces returns the directly declared interfaces.
func (c *RuntimeClass) Interfaces() []Class {
	return slices.Clone(c.interfaces)
}

// InstanceMembers enumerates instance-level members in definition order.
func (c *RuntimeClass) InstanceMembers() iter.Seq[Member] {
	return slices.Values(c.instance)
}

// ClassMembers enumerates class-level members in definition order.
func (c *RuntimeClass) ClassMembers() iter.Seq[Member] {
	return slices.Values(c.class)
}

// ProtocolMember returns the interface member description for key.
func (c *RuntimeClass) ProtocolMember(key string, required bool) (Member, bool) {
	m, ok := c.protocol[protocolKey{key: key, required: required}]
	return m, ok
}
