// Package model loads class-model files: YAML descriptions of classes, their
// live runtime members and their reflection metadata, from which a
// reflection.Universe is built.
package model

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/skdltmxn/refmeta/classinfo"
	"github.com/skdltmxn/refmeta/reflection"
)

// Errors
var (
	ErrUnknownClass   = errors.New("model: unknown class")
	ErrCycle          = errors.New("model: class hierarchy cycle")
	ErrDuplicateClass = errors.New("model: duplicate class")
)

// Kinds accepted in Class.Kind.
const (
	KindClass     = "class"
	KindInterface = "interface"
)

// File is a parsed class-model file.
type File struct {
	Classes []Class `yaml:"classes"`
}

// Class describes one class: its place in the hierarchy, its runtime member
// tables and, optionally, its metadata record.
type Class struct {
	Name       string   `yaml:"name"`
	Kind       string   `yaml:"kind,omitempty"`
	Abstract   bool     `yaml:"abstract,omitempty"`
	Superclass string   `yaml:"superclass,omitempty"`
	Interfaces []string `yaml:"interfaces,omitempty"`
	Members    Members  `yaml:"members,omitempty"`
	Metadata   *Record  `yaml:"metadata,omitempty"`
}

// Members are the live runtime member tables of a class.
type Members struct {
	Instance []reflection.Member         `yaml:"instance,omitempty"`
	Class    []reflection.Member         `yaml:"class,omitempty"`
	Protocol []reflection.ProtocolMember `yaml:"protocol,omitempty"`
}

// Record is the authoring form of a classinfo.Record.
type Record struct {
	// Version overrides the record version; zero means current.
	Version          uint16   `yaml:"version,omitempty"`
	Type             string   `yaml:"type"`
	Package          string   `yaml:"package,omitempty"`
	Enclosing        string   `yaml:"enclosing,omitempty"`
	Modifiers        []string `yaml:"modifiers,omitempty"`
	GenericSignature string   `yaml:"generic_signature,omitempty"`
	InnerClasses     string   `yaml:"inner_classes,omitempty"`
	EnclosingMethod  string   `yaml:"enclosing_method,omitempty"`
	Methods          []Method `yaml:"methods,omitempty"`
	Fields           []Field  `yaml:"fields,omitempty"`
}

// Method is a method table entry. Constructors have no return type.
type Method struct {
	Key              string   `yaml:"key"`
	Return           string   `yaml:"return,omitempty"`
	Params           string   `yaml:"params,omitempty"`
	Modifiers        []string `yaml:"modifiers,omitempty"`
	Name             string   `yaml:"name,omitempty"`
	GenericSignature string   `yaml:"generic_signature,omitempty"`
	Exceptions       string   `yaml:"exceptions,omitempty"`
}

// Field is a field table entry.
type Field struct {
	Key              string   `yaml:"key"`
	Type             string   `yaml:"type"`
	Modifiers        []string `yaml:"modifiers,omitempty"`
	Name             string   `yaml:"name,omitempty"`
	GenericSignature string   `yaml:"generic_signature,omitempty"`
}

// Load reads and parses a class-model file.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("model: failed to open file: %w", err)
	}
	return Parse(data)
}

// Parse parses class-model YAML.
func Parse(data []byte) (*File, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("model: %w", err)
	}
	seen := make(map[string]bool, len(f.Classes))
	for i, c := range f.Classes {
		if c.Name == "" {
			return nil, fmt.Errorf("model: class #%d has no name", i)
		}
		if seen[c.Name] {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateClass, c.Name)
		}
		seen[c.Name] = true
		switch c.Kind {
		case "", KindClass, KindInterface:
		default:
			return nil, fmt.Errorf("model: class %s: unknown kind %q", c.Name, c.Kind)
		}
	}
	return &f, nil
}

// Class returns the class with the given name.
func (f *File) Class(name string) (*Class, bool) {
	for i := range f.Classes {
		if f.Classes[i].Name == name {
			return &f.Classes[i], true
		}
	}
	return nil, false
}

// IsInterface reports whether the class is an interface.
func (c *Class) IsInterface() bool { return c.Kind == KindInterface }

// Build assembles the metadata record of c, or nil if c declares none.
func (c *Class) Build() (*classinfo.Record, error) {
	if c.Metadata == nil {
		return nil, nil
	}
	m := c.Metadata

	mods, err := classinfo.ParseModifiers(m.Modifiers)
	if err != nil {
		return nil, fmt.Errorf("model: class %s: %w", c.Name, err)
	}
	typeName := m.Type
	if typeName == "" {
		typeName = simpleName(c.Name)
	}

	b := classinfo.NewBuilder(typeName).
		Package(m.Package).
		Enclosing(m.Enclosing).
		Modifiers(mods).
		GenericSignature(m.GenericSignature).
		InnerClasses(m.InnerClasses).
		EnclosingMethod(m.EnclosingMethod)
	if m.Version != 0 {
		b.Version(m.Version)
	}

	for _, e := range m.Methods {
		mods, err := classinfo.ParseModifiers(e.Modifiers)
		if err != nil {
			return nil, fmt.Errorf("model: %s.%s: %w", c.Name, e.Key, err)
		}
		b.AddMethod(classinfo.MethodSpec{
			Key:              e.Key,
			ReturnType:       e.Return,
			Params:           e.Params,
			Modifiers:        mods,
			Name:             e.Name,
			GenericSignature: e.GenericSignature,
			Exceptions:       e.Exceptions,
		})
	}
	for _, e := range m.Fields {
		mods, err := classinfo.ParseModifiers(e.Modifiers)
		if err != nil {
			return nil, fmt.Errorf("model: %s.%s: %w", c.Name, e.Key, err)
		}
		b.AddField(classinfo.FieldSpec{
			Key:              e.Key,
			Type:             e.Type,
			Modifiers:        mods,
			Name:             e.Name,
			GenericSignature: e.GenericSignature,
		})
	}

	rec, err := b.Build()
	if err != nil {
		return nil, fmt.Errorf("model: class %s: %w", c.Name, err)
	}
	return rec, nil
}

// Encode returns the binary metadata record of c, or nil if c declares none.
func (c *Class) Encode() ([]byte, error) {
	rec, err := c.Build()
	if err != nil || rec == nil {
		return nil, err
	}
	return classinfo.Encode(rec)
}

// simpleName strips the package and enclosing-class prefixes of a class name.
func simpleName(name string) string {
	for i := len(name) - 1; i >= 0; i-- {
		if name[i] == '.' || name[i] == '$' {
			return name[i+1:]
		}
	}
	return name
}
