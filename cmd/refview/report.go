package main

import (
	"github.com/skdltmxn/refmeta/classinfo"
	"github.com/skdltmxn/refmeta/reflection"
)

type ClassReport struct {
	Name          string         `json:"name" yaml:"name"`
	QualifiedName string         `json:"qualified_name,omitempty" yaml:"qualified_name,omitempty"`
	Kind          string         `json:"kind" yaml:"kind"`
	Superclass    string         `json:"superclass,omitempty" yaml:"superclass,omitempty"`
	Interfaces    []string       `json:"interfaces,omitempty" yaml:"interfaces,omitempty"`
	Version       uint16         `json:"version,omitempty" yaml:"version,omitempty"`
	Modifiers     string         `json:"modifiers,omitempty" yaml:"modifiers,omitempty"`
	Constructors  []MethodReport `json:"constructors,omitempty" yaml:"constructors,omitempty"`
	Methods       []MethodReport `json:"methods,omitempty" yaml:"methods,omitempty"`
	Fields        []FieldReport  `json:"fields,omitempty" yaml:"fields,omitempty"`
	Problems      []EntryProblem `json:"problems,omitempty" yaml:"problems,omitempty"`
}

type MethodReport struct {
	Name        string                   `json:"name" yaml:"name"`
	Key         string                   `json:"key" yaml:"key"`
	Declaration string                   `json:"declaration" yaml:"declaration"`
	Signature   reflection.CallSignature `json:"signature" yaml:"signature"`
}

type FieldReport struct {
	Name        string `json:"name" yaml:"name"`
	Key         string `json:"key" yaml:"key"`
	Declaration string `json:"declaration" yaml:"declaration"`
	Encoding    string `json:"encoding,omitempty" yaml:"encoding,omitempty"`
}

// EntryProblem is a metadata entry that cannot be served reflectively.
type EntryProblem struct {
	Table  string `json:"table" yaml:"table"`
	Key    string `json:"key" yaml:"key"`
	Reason string `json:"reason" yaml:"reason"`
}

// Problem reasons.
const (
	reasonUnsupported = "unsupported"
	reasonDescriptor  = "bad descriptor"
)

// buildReport resolves every metadata entry of c, each from its own table slot.
func buildReport(r *reflection.Resolver, c reflection.Class) *ClassReport {
	rep := &ClassReport{Name: c.Name(), Kind: c.Kind().String()}
	if super := c.Superclass(); super != nil {
		rep.Superclass = super.Name()
	}
	for _, iface := range c.Interfaces() {
		rep.Interfaces = append(rep.Interfaces, iface.Name())
	}

	rec := c.Metadata()
	if rec == nil {
		return rep
	}
	rep.Version = rec.Version()
	rep.Modifiers = rec.Modifiers().String()
	rep.QualifiedName, _ = r.QualifiedName(rec)

	for i := 0; i < rec.MethodCount(); i++ {
		e := rec.Method(i)
		key := rec.MethodKey(e)
		if e.IsConstructor() {
			k := r.ConstructorAt(c, i)
			if k == nil {
				rep.problem("constructors", key, reasonUnsupported)
				continue
			}
			if _, err := k.ParameterTypes(); err != nil {
				rep.problem("constructors", key, reasonDescriptor+": "+err.Error())
			}
			rep.Constructors = append(rep.Constructors, MethodReport{
				Name: k.Name(), Key: key, Declaration: k.String(), Signature: k.Signature(),
			})
			continue
		}

		m := r.MethodAt(c, i)
		if m == nil {
			rep.problem("methods", key, reasonUnsupported)
			continue
		}
		if err := methodDescriptorError(m); err != nil {
			rep.problem("methods", key, reasonDescriptor+": "+err.Error())
		}
		rep.Methods = append(rep.Methods, MethodReport{
			Name: m.Name(), Key: key, Declaration: m.String(), Signature: m.Signature(),
		})
	}

	for i := 0; i < rec.FieldCount(); i++ {
		e := rec.Field(i)
		key := rec.FieldKey(e)
		f := r.FieldAt(c, i)
		if f == nil {
			rep.problem("fields", key, reasonUnsupported)
			continue
		}
		if _, err := f.Type(); err != nil {
			rep.problem("fields", key, reasonDescriptor+": "+err.Error())
		}
		rep.Fields = append(rep.Fields, FieldReport{
			Name: f.Name(), Key: key, Declaration: f.String(), Encoding: f.Encoding(),
		})
	}
	return rep
}

func methodDescriptorError(m *reflection.Method) error {
	if _, err := m.ReturnType(); err != nil {
		return err
	}
	if _, err := m.ParameterTypes(); err != nil {
		return err
	}
	_, err := m.ExceptionTypes()
	return err
}

func (rep *ClassReport) problem(table, key, reason string) {
	rep.Problems = append(rep.Problems, EntryProblem{Table: table, Key: key, Reason: reason})
}

// entryCount is the number of entries in a record, or zero.
func entryCount(rec *classinfo.Record) int {
	if rec == nil {
		return 0
	}
	return rec.MethodCount() + rec.FieldCount()
}
