// =============================================================================
// BOM Check - Root Command
// =============================================================================
//
// This file defines the root command for the Cobra CLI. The root command is
// the base command that all other commands are attached to.
//
// COBRA CLI STRUCTURE:
//   rootCmd (bomcheck)
//   ├── checkCmd (bomcheck check)
//   └── versionCmd (bomcheck version)
//
// The root command owns the global flags (--config, --verbose) and the
// logger setup shared by all subcommands.
//
// =============================================================================

package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// cfgFile holds the path to the configuration file.
// This can be overridden using the --config flag.
var cfgFile string

// verbose enables debug logging when set to true.
var verbose bool

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "bomcheck",
	Short: "BOM Check - Audit and repair Bill of Materials workbooks",
	Long: `BOM Check audits Excel Bill of Materials workbooks that follow the
version 3 BOM template. It verifies cross-field consistency rules (quantity
vs designators, unit price vs sub-total, material and total cost roll-ups),
normalizes component types against a canonical dictionary, expands designator
ranges, and repairs derived cost fields.

Example Usage:
  bomcheck check                        # Audit all workbooks in the input directory
  bomcheck check --fix                  # Audit and write corrected copies
  bomcheck check --file ./board.xlsx    # Audit a single workbook
  bomcheck check --config ./my.yaml     # Use a custom configuration file`,

	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(
		&cfgFile,
		"config",
		"config.yaml",
		"Path to the configuration file",
	)

	rootCmd.PersistentFlags().BoolVarP(
		&verbose,
		"verbose",
		"v",
		false,
		"Enable verbose output for debugging",
	)
}

// newLogger builds the application logger. The --verbose flag forces debug
// level regardless of the configured level.
func newLogger(level string) (*zap.SugaredLogger, error) {
	if verbose {
		level = "debug"
	}

	var zapLevel zapcore.Level
	if err := zapLevel.Set(level); err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}

	cfg := zap.NewDevelopmentConfig()
	cfg.Level = zap.NewAtomicLevelAt(zapLevel)
	cfg.DisableStacktrace = true

	logger, err := cfg.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to build logger: %w", err)
	}

	return logger.Sugar(), nil
}
