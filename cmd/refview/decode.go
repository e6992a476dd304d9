package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/skdltmxn/refmeta/classinfo"
)

var decodeCmd = &cobra.Command{
	Use:   "decode <record-file>",
	Short: "Print a binary metadata record",
	Long: `Decode a binary metadata record and print its header, method table,
field table and pointer table. Descriptors are shown as recorded.`,
	Args: cobra.ExactArgs(1),
	RunE: runDecode,
}

func runDecode(cmd *cobra.Command, args []string) error {
	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("failed to read record: %w", err)
	}
	rec, err := classinfo.Parse(data)
	if err != nil {
		return fmt.Errorf("failed to decode record: %w", err)
	}

	hdr := rec.Header()
	fmt.Fprintf(output, "Record: %s (%d bytes)\n", args[0], len(data))
	fmt.Fprintf(output, "Version: %d\n", hdr.Version)
	fmt.Fprintf(output, "Modifiers: 0x%04X (%s)\n", uint32(hdr.Modifiers), hdr.Modifiers)
	fmt.Fprintf(output, "Type Name: %s\n", rec.TypeName())
	printOptional("Package", rec.PackageName)
	printOptional("Enclosing", rec.EnclosingDescriptor)
	printOptional("Generic Signature", rec.GenericSignature)
	printOptional("Inner Classes", rec.InnerClasses)
	printOptional("Enclosing Method", rec.EnclosingMethod)

	fmt.Fprintf(output, "\nMethods (%d):\n", rec.MethodCount())
	for i := 0; i < rec.MethodCount(); i++ {
		e := rec.Method(i)
		fmt.Fprintf(output, "  [%d] %s %s\n", i, rec.MethodKey(e), rawMethod(rec, e))
		if mods := e.Modifiers.String(); mods != "" {
			fmt.Fprintf(output, "      modifiers: %s\n", mods)
		}
		if exc, ok := rec.MethodExceptions(e); ok {
			fmt.Fprintf(output, "      throws: %s\n", exc)
		}
		if sig, ok := rec.MethodGenericSignature(e); ok {
			fmt.Fprintf(output, "      signature: %s\n", sig)
		}
	}

	fmt.Fprintf(output, "\nFields (%d):\n", rec.FieldCount())
	for i := 0; i < rec.FieldCount(); i++ {
		e := rec.Field(i)
		typ, _ := rec.FieldType(e)
		fmt.Fprintf(output, "  [%d] %s %s", i, rec.FieldKey(e), typ)
		if name, ok := rec.FieldName(e); ok {
			fmt.Fprintf(output, " as %s", name)
		}
		fmt.Fprintln(output)
		if mods := e.Modifiers.String(); mods != "" {
			fmt.Fprintf(output, "      modifiers: %s\n", mods)
		}
	}

	fmt.Fprintf(output, "\nPointer Table (%d):\n", hdr.PtrCount)
	for i := 0; i < int(hdr.PtrCount); i++ {
		s, _ := rec.Ptr(classinfo.Index(i))
		fmt.Fprintf(output, "  %4d: %q\n", i, s)
	}
	return nil
}

func printOptional(label string, get func() (string, bool)) {
	if v, ok := get(); ok {
		fmt.Fprintf(output, "%s: %s\n", label, v)
	}
}
