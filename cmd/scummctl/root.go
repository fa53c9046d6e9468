package main

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/joshuapare/scummkit/internal/logger"
)

var (
	// Global flags
	verbose bool
	quiet   bool
	jsonOut bool
	logJSON bool
	logFile string
)

var rootCmd = &cobra.Command{
	Use:   "scummctl",
	Short: "Decompile and inspect encoded game resource archives",
	Long: `scummctl reads the index and disk files of a game built on the
classic room/resource archive layout, decodes their XOR obfuscation and
extracts every resource block into loose files together with a per-room
descriptor and a project manifest.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return initLogging()
	},
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().
		BoolVarP(&quiet, "quiet", "q", false, "Suppress all output except errors")
	rootCmd.PersistentFlags().BoolVar(&jsonOut, "json", false, "Output in JSON format")
	rootCmd.PersistentFlags().BoolVar(&logJSON, "log-json", false, "Write progress logs to stderr as JSON lines")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "Append progress logs to this file")
}

// initLogging enables the progress log only when asked for: --verbose logs
// at debug level, --log-json or --log-file at info level.
func initLogging() error {
	enabled := (verbose || logJSON || logFile != "") && !quiet
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return logger.Init(logger.Options{
		Enabled: enabled,
		Level:   level,
		JSON:    logJSON,
		Writer:  os.Stderr,
		LogFile: logFile,
	})
}

func execute() {
	err := rootCmd.Execute()
	_ = logger.Close()
	if err != nil {
		printError("%v\n", err)
		os.Exit(1)
	}
}

// Helper functions for output

// printInfo prints an info message if not in quiet mode
func printInfo(format string, args ...any) {
	if !quiet {
		fmt.Fprintf(os.Stdout, format, args...)
	}
}

// printError prints an error message
func printError(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format, args...)
}

// printVerbose prints a verbose message if verbose mode is enabled
func printVerbose(format string, args ...any) {
	if verbose && !quiet {
		fmt.Fprintf(os.Stdout, format, args...)
	}
}

// printJSON outputs data as JSON
func printJSON(v any) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}
