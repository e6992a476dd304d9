package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/skdltmxn/refmeta/internal/config"
	"github.com/skdltmxn/refmeta/internal/logging"
	"github.com/skdltmxn/refmeta/internal/model"
	"github.com/skdltmxn/refmeta/reflection"
)

var (
	outputFile string
	configFile string
	verbose    bool

	output io.Writer
	cfg    *config.Config
	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "refview",
	Short: "Reflection metadata viewer and resolver",
	Long: `refview is a command-line tool for inspecting class reflection metadata
records and resolving them against a class model.

A class model is a YAML file describing classes, their live runtime members
and their metadata records. refview encodes the records, discovers them the
way an embedded record would be, and answers reflective lookups over them.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load(configFile)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		if verbose {
			cfg.Logging.Level = "debug"
		}
		logger, err = logging.New(cfg.Logging)
		if err != nil {
			return err
		}

		if outputFile != "" {
			f, err := os.Create(outputFile)
			if err != nil {
				return fmt.Errorf("failed to create output file: %w", err)
			}
			output = f
		} else {
			output = os.Stdout
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if f, ok := output.(*os.File); ok && f != os.Stdout {
			f.Close()
		}
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&outputFile, "output", "o", "", "write output to file instead of stdout")
	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "", "configuration file (YAML)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	rootCmd.AddCommand(infoCmd)
	rootCmd.AddCommand(methodsCmd)
	rootCmd.AddCommand(fieldsCmd)
	rootCmd.AddCommand(lookupCmd)
	rootCmd.AddCommand(encodeCmd)
	rootCmd.AddCommand(decodeCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(dumpCmd)
}

// openModel loads a class model and builds its universe.
func openModel(path string) (*model.File, *reflection.Universe, error) {
	f, err := model.Load(path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open model: %w", err)
	}
	u, err := f.Universe(reflection.WithLogger(logger))
	if err != nil {
		return nil, nil, fmt.Errorf("failed to build model: %w", err)
	}
	return f, u, nil
}

// openClass loads a class model and returns the named class in it.
func openClass(path, name string) (*reflection.Universe, *reflection.RuntimeClass, error) {
	_, u, err := openModel(path)
	if err != nil {
		return nil, nil, err
	}
	c, ok := u.Lookup(name)
	if !ok {
		return nil, nil, fmt.Errorf("class not found: %s", name)
	}
	return u, c, nil
}

func status(located bool) string {
	if located {
		return "ok"
	}
	return "unsupported"
}
