package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/skdltmxn/refmeta/classinfo"
)

var methodsCmd = &cobra.Command{
	Use:   "methods <model> <class>",
	Short: "List the method table of a class",
	Long: `List every method and constructor entry of a class's metadata record,
with the runtime member it resolves to or "unsupported" if none can be located.`,
	Args: cobra.ExactArgs(2),
	RunE: runMethods,
}

func runMethods(cmd *cobra.Command, args []string) error {
	u, c, err := openClass(args[0], args[1])
	if err != nil {
		return err
	}
	r := u.Resolver()

	rec := c.Metadata()
	if rec == nil {
		fmt.Fprintf(output, "No metadata for %s\n", c.Name())
		return nil
	}

	fmt.Fprintf(output, "%-6s %-12s %-32s %s\n", "Index", "Status", "Key", "Declaration")
	fmt.Fprintf(output, "%s\n", "------------------------------------------------------------------------")
	for i := 0; i < rec.MethodCount(); i++ {
		e := rec.Method(i)
		key := rec.MethodKey(e)

		var (
			located bool
			decl    string
		)
		if e.IsConstructor() {
			if k := r.ConstructorByNativeKey(c, key); k != nil {
				located, decl = true, k.String()
			}
		} else {
			if m := r.MethodByNativeKey(c, key); m != nil {
				located, decl = true, m.String()
			}
		}
		if !located {
			decl = rawMethod(rec, e)
		}
		fmt.Fprintf(output, "%-6d %-12s %-32s %s\n", i, status(located), key, decl)
	}
	return nil
}

// rawMethod renders an entry from its recorded descriptors.
func rawMethod(rec *classinfo.Record, e *classinfo.MethodEntry) string {
	params, _ := rec.MethodParams(e)
	ret, ok := rec.MethodReturnType(e)
	if !ok {
		return fmt.Sprintf("<init>(%s)", params)
	}
	name := rec.MethodKey(e)
	if alt, ok := rec.MethodName(e); ok {
		name = alt
	}
	return fmt.Sprintf("%s(%s)%s", name, params, ret)
}
