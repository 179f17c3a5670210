package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/relindex/relindex/internal/logging"
	"github.com/relindex/relindex/pkg/config"
)

var (
	// Version is set during build.
	Version = "0.1.0"

	cfgFile   string
	logLevel  string
	logFormat string
)

// rootCmd represents the base command. Its own Run does the same thing
// as the run subcommand, so `relindex < commands.txt` works without
// naming a subcommand at all.
var rootCmd = &cobra.Command{
	Use:     "relindex",
	Short:   "Incremental maximum-in-degree index over entities and relations",
	Version: Version,
	Long: `relindex maintains an in-memory index over a dynamic set of named
entities and typed directed relations between them.

It reads addent/delent/addrel/delrel/report/end commands from standard
input and, for each report command, writes a line naming the entities
with the greatest in-degree for every relation type currently in use.

Examples:
  relindex < commands.txt
  relindex run --input commands.txt --output report.txt
  relindex version`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runEngine(cmd)
	},
}

// Execute adds all child commands to the root command and runs it.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file path")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "", "log format (console, json)")

	runCmd.Flags().String("input", "", "input file (default: stdin)")
	runCmd.Flags().String("output", "", "output file (default: stdout)")

	rootCmd.Flags().AddFlagSet(runCmd.Flags())
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(versionCmd)
}

// loadConfig reads configuration from cfgFile or the default search
// path, then applies any log-level/log-format flag overrides before
// initializing the global logger.
func loadConfig() (*config.Config, error) {
	cfg, err := config.LoadFrom(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrLoadingConfig, err)
	}

	if logLevel != "" {
		cfg.Logging.Level = logLevel
	}
	if logFormat != "" {
		cfg.Logging.Format = logFormat
	}

	logging.Init(logging.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Output: cfg.Logging.Output,
	})

	return cfg, nil
}
