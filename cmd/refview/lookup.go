package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/skdltmxn/refmeta/reflection"
)

var (
	lookupByKey     bool
	lookupCtor      bool
	lookupField     bool
	lookupInherited bool
)

var errNotFound = errors.New("not found")

var lookupCmd = &cobra.Command{
	Use:   "lookup <model> <class> [name] [param-descriptors]",
	Short: "Look up a method, constructor or field",
	Long: `Look up a member of a class the way reflective calls do.

Examples:
  - Method by name:        lookup model.yaml com.example.Foo size I
  - Method by native key:  lookup model.yaml com.example.Foo sizeWithInt: --key
  - Constructor:           lookup model.yaml com.example.Foo --ctor I
  - Field:                 lookup model.yaml com.example.Foo value --field

Parameter descriptors are concatenated, e.g. "ILjava.lang.String;[J".`,
	Args: cobra.RangeArgs(2, 4),
	RunE: runLookup,
}

func init() {
	lookupCmd.Flags().BoolVarP(&lookupByKey, "key", "k", false, "treat name as a native key")
	lookupCmd.Flags().BoolVar(&lookupCtor, "ctor", false, "look up a constructor")
	lookupCmd.Flags().BoolVarP(&lookupField, "field", "f", false, "look up a field")
	lookupCmd.Flags().BoolVarP(&lookupInherited, "inherited", "i", false, "search interfaces and superclasses")
}

func runLookup(cmd *cobra.Command, args []string) error {
	u, c, err := openClass(args[0], args[1])
	if err != nil {
		return err
	}
	r := u.Resolver()
	rest := args[2:]

	inherited := cfg.Lookup.Inherited
	if cmd.Flags().Changed("inherited") {
		inherited = lookupInherited
	}

	switch {
	case lookupCtor:
		return lookupConstructor(r, c, rest)
	case len(rest) == 0:
		return fmt.Errorf("name required")
	case lookupField:
		return lookupFieldByName(r, c, rest[0], inherited)
	default:
		return lookupMethod(r, c, rest, inherited)
	}
}

func lookupConstructor(r *reflection.Resolver, c reflection.Class, rest []string) error {
	var k *reflection.Constructor
	switch {
	case lookupByKey:
		if len(rest) == 0 {
			return fmt.Errorf("native key required")
		}
		k = r.ConstructorByNativeKey(c, rest[0])
	default:
		var desc string
		if len(rest) > 0 {
			desc = rest[0]
		}
		params, err := r.ParseTypes(desc)
		if err != nil {
			return fmt.Errorf("invalid parameter descriptors: %w", err)
		}
		k = r.ConstructorByParamTypes(c, params)
	}
	if k == nil {
		return fmt.Errorf("constructor %w in %s", errNotFound, c.Name())
	}
	printExecutable("Constructor", k.Name(), k.String(), k.NativeKey(), k.DeclaringClass(), k.Signature())
	return nil
}

func lookupMethod(r *reflection.Resolver, c reflection.Class, rest []string, inherited bool) error {
	name := rest[0]

	var m *reflection.Method
	if lookupByKey {
		if inherited {
			m = r.MethodByNativeKeyInherited(c, name)
		} else {
			m = r.MethodByNativeKey(c, name)
		}
	} else {
		var desc string
		if len(rest) > 1 {
			desc = rest[1]
		}
		params, err := r.ParseTypes(desc)
		if err != nil {
			return fmt.Errorf("invalid parameter descriptors: %w", err)
		}
		if inherited {
			m = r.MethodByNameAndParamTypesInherited(c, name, params)
		} else {
			m = r.MethodByNameAndParamTypes(c, name, params)
		}
	}
	if m == nil {
		return fmt.Errorf("method %s %w in %s", name, errNotFound, c.Name())
	}
	printExecutable("Method", m.Name(), m.String(), m.NativeKey(), m.DeclaringClass(), m.Signature())
	return nil
}

func lookupFieldByName(r *reflection.Resolver, c reflection.Class, name string, inherited bool) error {
	var f *reflection.Field
	if inherited {
		f = r.FieldByNameInherited(c, name)
	} else {
		f = r.FieldByName(c, name)
	}
	if f == nil {
		return fmt.Errorf("field %s %w in %s", name, errNotFound, c.Name())
	}

	fmt.Fprintf(output, "Field:\n")
	fmt.Fprintf(output, "  Name: %s\n", f.Name())
	fmt.Fprintf(output, "  Declaration: %s\n", f.String())
	fmt.Fprintf(output, "  Native Key: %s\n", f.NativeKey())
	fmt.Fprintf(output, "  Declaring Class: %s\n", f.DeclaringClass().Name())
	if f.Encoding() != "" {
		fmt.Fprintf(output, "  Encoding: %s\n", f.Encoding())
	}
	if sig, ok := f.GenericSignature(); ok {
		fmt.Fprintf(output, "  Generic Signature: %s\n", sig)
	}
	return nil
}

func printExecutable(kind, name, decl, key string, owner reflection.Class, sig reflection.CallSignature) {
	fmt.Fprintf(output, "%s:\n", kind)
	fmt.Fprintf(output, "  Name: %s\n", name)
	fmt.Fprintf(output, "  Declaration: %s\n", decl)
	fmt.Fprintf(output, "  Native Key: %s\n", key)
	fmt.Fprintf(output, "  Declaring Class: %s\n", owner.Name())
	fmt.Fprintf(output, "  Signature: %s (%s)\n", sig.Return, strings.Join(sig.Args, " "))
}
