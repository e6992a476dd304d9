package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var infoCmd = &cobra.Command{
	Use:   "info <model> <class>",
	Short: "Display class metadata information",
	Long:  `Display the metadata record header of a class: version, modifiers, names, linkage and table sizes.`,
	Args:  cobra.ExactArgs(2),
	RunE:  runInfo,
}

func runInfo(cmd *cobra.Command, args []string) error {
	u, c, err := openClass(args[0], args[1])
	if err != nil {
		return err
	}
	r := u.Resolver()

	fmt.Fprintf(output, "Class: %s\n", c.Name())
	fmt.Fprintf(output, "Kind: %s\n", c.Kind())
	if super := c.Superclass(); super != nil {
		fmt.Fprintf(output, "Superclass: %s\n", super.Name())
	}
	if ifaces := c.Interfaces(); len(ifaces) > 0 {
		names := make([]string, len(ifaces))
		for i, iface := range ifaces {
			names[i] = iface.Name()
		}
		fmt.Fprintf(output, "Interfaces: %s\n", strings.Join(names, ", "))
	}

	rec := c.Metadata()
	if rec == nil {
		fmt.Fprintf(output, "Metadata: none\n")
		return nil
	}

	hdr := rec.Header()
	fmt.Fprintf(output, "Version: %d\n", hdr.Version)
	fmt.Fprintf(output, "Modifiers: 0x%04X (%s)\n", uint32(hdr.Modifiers), hdr.Modifiers)
	fmt.Fprintf(output, "Type Name: %s\n", rec.TypeName())
	if name, ok := r.QualifiedName(rec); ok {
		fmt.Fprintf(output, "Qualified Name: %s\n", name)
	} else {
		fmt.Fprintf(output, "Qualified Name: <unavailable>\n")
	}
	if pkg, ok := rec.PackageName(); ok {
		fmt.Fprintf(output, "Package: %s\n", pkg)
	}
	if outer, err := r.EnclosingClass(c); err != nil {
		fmt.Fprintf(output, "Enclosing Class: <unresolved: %v>\n", err)
	} else if outer != nil {
		fmt.Fprintf(output, "Enclosing Class: %s\n", outer.Name())
	}
	if m, ok := rec.EnclosingMethod(); ok {
		fmt.Fprintf(output, "Enclosing Method: %s\n", m)
	}
	if sig, ok := r.ClassGenericSignature(c); ok {
		fmt.Fprintf(output, "Generic Signature: %s\n", sig)
	}
	if inner, err := r.InnerClasses(c); err != nil {
		fmt.Fprintf(output, "Inner Classes: <unresolved: %v>\n", err)
	} else if len(inner) > 0 {
		names := make([]string, len(inner))
		for i, t := range inner {
			names[i] = t.Name()
		}
		fmt.Fprintf(output, "Inner Classes: %s\n", strings.Join(names, ", "))
	}
	fmt.Fprintf(output, "Methods: %d\n", hdr.MethodCount)
	fmt.Fprintf(output, "Fields: %d\n", hdr.FieldCount)
	fmt.Fprintf(output, "Pointer Table: %d\n", hdr.PtrCount)
	return nil
}
