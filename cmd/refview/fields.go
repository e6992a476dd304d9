package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var fieldsCmd = &cobra.Command{
	Use:   "fields <model> <class>",
	Short: "List the field table of a class",
	Long: `List every field entry of a class's metadata record, with the runtime
slot it resolves to or "unsupported" if none can be located.`,
	Args: cobra.ExactArgs(2),
	RunE: runFields,
}

func runFields(cmd *cobra.Command, args []string) error {
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

	fmt.Fprintf(output, "%-6s %-12s %-24s %s\n", "Index", "Status", "Key", "Declaration")
	fmt.Fprintf(output, "%s\n", "----------------------------------------------------------------")
	for i := 0; i < rec.FieldCount(); i++ {
		e := rec.Field(i)
		key := rec.FieldKey(e)

		decl, _ := rec.FieldType(e)
		decl += " " + key
		f := r.FieldByName(c, key)
		if f != nil {
			decl = f.String()
		}
		fmt.Fprintf(output, "%-6d %-12s %-24s %s\n", i, status(f != nil), key, decl)
	}
	return nil
}
