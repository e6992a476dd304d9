package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var encodeCmd = &cobra.Command{
	Use:   "encode <model> <class>",
	Short: "Write the binary metadata record of a class",
	Long: `Encode the metadata record a class model declares for a class and write
it to the output (use --output to write a file).`,
	Args: cobra.ExactArgs(2),
	RunE: runEncode,
}

func runEncode(cmd *cobra.Command, args []string) error {
	f, _, err := openModel(args[0])
	if err != nil {
		return err
	}
	c, ok := f.Class(args[1])
	if !ok {
		return fmt.Errorf("class not found: %s", args[1])
	}

	data, err := c.Encode()
	if err != nil {
		return fmt.Errorf("failed to encode: %w", err)
	}
	if data == nil {
		return fmt.Errorf("class %s declares no metadata", c.Name)
	}
	if _, err := output.Write(data); err != nil {
		return fmt.Errorf("failed to write record: %w", err)
	}
	logger.Debug("record encoded", zap.String("class", c.Name), zap.Int("bytes", len(data)))
	return nil
}
