package model

import (
	"fmt"

	"github.com/skdltmxn/refmeta/reflection"
)

// Order returns the classes so that every superclass and interface comes
// before the classes that name it. Ties keep file order.
func (f *File) Order() ([]*Class, error) {
	const (
		unvisited = iota
		visiting
		done
	)
	state := make(map[string]int, len(f.Classes))
	order := make([]*Class, 0, len(f.Classes))

	var visit func(c *Class) error
	visit = func(c *Class) error {
		switch state[c.Name] {
		case done:
			return nil
		case visiting:
			return fmt.Errorf("%w: at %s", ErrCycle, c.Name)
		}
		state[c.Name] = visiting

		deps := c.Interfaces
		if c.Superclass != "" {
			deps = append([]string{c.Superclass}, deps...)
		}
		for _, name := range deps {
			dep, ok := f.Class(name)
			if !ok {
				return fmt.Errorf("%w: %s (referenced by %s)", ErrUnknownClass, name, c.Name)
			}
			if err := visit(dep); err != nil {
				return err
			}
		}

		state[c.Name] = done
		order = append(order, c)
		return nil
	}

	for i := range f.Classes {
		if err := visit(&f.Classes[i]); err != nil {
			return nil, err
		}
	}
	return order, nil
}

// Universe defines every class of f in a new reflection.Universe. Metadata
// records go through the binary codec, so a record the engine cannot use
// is reported the same way an embedded one would be.
func (f *File) Universe(opts ...reflection.Option) (*reflection.Universe, error) {
	order, err := f.Order()
	if err != nil {
		return nil, err
	}

	u := reflection.NewUniverse(opts...)
	for _, c := range order {
		data, err := c.Encode()
		if err != nil {
			return nil, err
		}
		def := reflection.ClassDef{
			Name:            c.Name,
			Interface:       c.IsInterface(),
			Abstract:        c.Abstract,
			Superclass:      c.Superclass,
			Interfaces:      c.Interfaces,
			InstanceMembers: c.Members.Instance,
			ClassMembers:    c.Members.Class,
			ProtocolMembers: c.Members.Protocol,
		}
		if data != nil {
			def.Metadata = reflection.Blob(data)
		}
		if _, err := u.Define(def); err != nil {
			return nil, fmt.Errorf("model: %w", err)
		}
	}
	return u, nil
}
