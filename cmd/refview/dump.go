package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var (
	dumpFormat string
)

var dumpCmd = &cobra.Command{
	Use:   "dump <model> [class]",
	Short: "Dump resolved classes of a class model",
	Long: `Dump every class of a class model, or a single class, with its resolved
constructors, methods and fields in structured format.

Supported formats:
  - json: JSON format (default)
  - yaml: YAML format`,
	Args: cobra.RangeArgs(1, 2),
	RunE: runDump,
}

func init() {
	dumpCmd.Flags().StringVarP(&dumpFormat, "format", "f", "json", "output format (json, yaml)")
}

type ModelDump struct {
	Model   string         `json:"model" yaml:"model"`
	Classes []*ClassReport `json:"classes" yaml:"classes"`
}

func runDump(cmd *cobra.Command, args []string) error {
	switch dumpFormat {
	case "json", "yaml":
	default:
		return fmt.Errorf("unknown format: %s", dumpFormat)
	}

	_, u, err := openModel(args[0])
	if err != nil {
		return err
	}
	r := u.Resolver()

	dump := ModelDump{Model: args[0]}
	if len(args) == 2 {
		c, ok := u.Lookup(args[1])
		if !ok {
			return fmt.Errorf("class not found: %s", args[1])
		}
		dump.Classes = append(dump.Classes, buildReport(r, c))
	} else {
		for c := range u.Classes() {
			dump.Classes = append(dump.Classes, buildReport(r, c))
		}
	}

	if dumpFormat == "yaml" {
		enc := yaml.NewEncoder(output)
		enc.SetIndent(2)
		if err := enc.Encode(dump); err != nil {
			return err
		}
		return enc.Close()
	}
	encoder := json.NewEncoder(output)
	encoder.SetIndent("", "  ")
	return encoder.Encode(dump)
}
