package main

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"github.com/tebeka/atexit"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/joshuapare/memtest/internal/logger"
)

var (
	// Global flags
	verbose   bool
	quiet     bool
	jsonOut   bool
	noColor   bool
	logEnable bool
	logDir    string
	logDebug  bool
	logStderr bool
	envFile   string
)

// counts formats numbers with thousands separators.
var counts = message.NewPrinter(language.English)

var rootCmd = &cobra.Command{
	Use:   "memtest",
	Short: "Test RAM for faulty cells with pinned pattern tests",
	Long: `memtest allocates a region of memory, locks it into physical RAM so it
cannot be swapped out, and runs a fixed battery of bit-pattern tests against it.
Each test mutates both halves of the region identically and compares them;
any word where the halves disagree is reported as a suspected memory fault.

Locking memory requires root (Linux/macOS) or an elevated prompt (Windows).`,
	Version:           "0.1.0",
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().
		BoolVarP(&quiet, "quiet", "q", false, "Suppress all output except errors")
	rootCmd.PersistentFlags().BoolVar(&jsonOut, "json", false, "Output in JSON format")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colored output")
	rootCmd.PersistentFlags().BoolVar(&logEnable, "log", false, "Write a JSON log file")
	rootCmd.PersistentFlags().
		StringVar(&logDir, "log-dir", "", "Directory for log files (default ~/.memtest/logs)")
	rootCmd.PersistentFlags().BoolVar(&logDebug, "log-debug", false, "Log at debug level")
	rootCmd.PersistentFlags().
		BoolVar(&logStderr, "log-stderr", false, "Write log records to stderr instead of a file")
	rootCmd.PersistentFlags().
		StringVar(&envFile, "env-file", "", "Load MEMTEST_* defaults from a dotenv file")
}

// setup loads configuration defaults and initializes logging.
func setup(cmd *cobra.Command, args []string) error {
	if err := loadEnvDefaults(cmd, envFile); err != nil {
		return err
	}

	level := slog.LevelInfo
	if logDebug {
		level = slog.LevelDebug
	}
	if err := logger.Init(logger.Options{
		Enabled: logEnable || logStderr || logDir != "",
		LogDir:  logDir,
		Level:   level,
		Stderr:  logStderr,
	}); err != nil {
		return fmt.Errorf("failed to initialize logging: %w", err)
	}
	if p := logger.Path(); p != "" {
		printVerbose("Logging to %s\n", p)
	}
	atexit.Register(logger.Close)
	return nil
}

func execute() {
	defer logger.Close()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		logger.Close()
		os.Exit(1)
	}
}

// Helper functions for output

// printInfo prints an info message if not in quiet mode
func printInfo(format string, args ...interface{}) {
	if !quiet {
		fmt.Fprintf(os.Stdout, format, args...)
	}
}

// printError prints an error message
func printError(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, "Error: "+format, args...)
}

// printVerbose prints a verbose message if verbose mode is enabled
func printVerbose(format string, args ...interface{}) {
	if verbose && !quiet {
		fmt.Fprintf(os.Stdout, format, args...)
	}
}

// printJSON outputs data as JSON
func printJSON(v interface{}) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}

// isTerminal reports whether stdout is an interactive terminal.
func isTerminal() bool {
	fd := os.Stdout.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

const (
	ansiRed   = "\033[31m"
	ansiGreen = "\033[32m"
	ansiReset = "\033[0m"
)

// colorize wraps s in an ANSI color when writing to a terminal.
func colorize(color, s string) string {
	if noColor || !isTerminal() {
		return s
	}
	return color + s + ansiReset
}
