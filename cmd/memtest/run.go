package main

import (
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
	"github.com/tebeka/atexit"

	"github.com/joshuapare/memtest/engine"
	"github.com/joshuapare/memtest/internal/logger"
	"github.com/joshuapare/memtest/pkg/types"
)

var (
	runSize    string
	runPercent float64
	runSeed    uint64
	runReport  string
)

// platform is the session platform; the zero value selects the system.
var platform engine.Platform

func init() {
	rootCmd.AddCommand(newRunCmd())
}

func newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Lock a memory region and run all pattern tests",
		Long: `The run command allocates a region of memory, locks it into RAM and runs
the ten pattern tests in order: Random Data, XOR, ADD, SUB, MUL, DIV, OR, AND,
Solid Bits and Checkerboard. The region is unlocked and freed when the run
finishes or is interrupted.

The size must be a multiple of 16 bytes. Suffixes such as KiB, MiB and GiB are
accepted. --percent sizes the region from currently available memory instead.

Example:
  memtest run --size 1GiB
  memtest run --percent 50 --verbose
  memtest run --size 64MiB --seed 42 --json
  memtest run --size 1GiB --quiet --report compact`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRun()
		},
	}
	cmd.Flags().StringVarP(&runSize, "size", "s", "256MiB", "Region size in bytes (multiple of 16)")
	cmd.Flags().
		Float64VarP(&runPercent, "percent", "p", 0, "Size the region as a percent of available memory")
	cmd.Flags().Uint64Var(&runSeed, "seed", 0, "Seed for the random patterns (0 picks one)")
	cmd.Flags().
		StringVar(&runReport, "report", "", "Report style after the run: full or compact (faulty addresses only)")
	return cmd
}

func runRun() error {
	switch runReport {
	case "", "full", "compact":
	default:
		return fmt.Errorf("invalid --report %q (want full or compact)", runReport)
	}

	size, err := resolveSize(runSize, runPercent)
	if err != nil {
		return err
	}

	printVerbose("Allocating %s (%s bytes)\n", humanize.IBytes(uint64(size)), counts.Sprintf("%d", size))

	s, err := engine.Open(size, engine.Options{
		Verbose:  verbose,
		Logger:   logger.L,
		Progress: func(label string) { printVerbose("\t%s\n", label) },
		Seed:     runSeed,
		Platform: platform,
	})
	if err != nil {
		return openError(size, err)
	}
	defer s.Close()

	stop := releaseOnSignal(s)
	defer stop()

	printInfo("Testing %s of locked memory\n\n", humanize.IBytes(uint64(size)))
	runTests(s.Tests())

	if err := s.Close(); err != nil {
		printError("%v\n", err)
	}

	report := s.Report()
	switch {
	case jsonOut:
		if err := printJSON(report); err != nil {
			return err
		}
	case runReport == "full":
		printInfo("\n%s", report.FormatText())
	case runReport == "compact":
		// Fault lines are the result itself, so --quiet does not hide them.
		fmt.Fprint(os.Stdout, report.FormatTextCompact())
	default:
		printSummary(report)
	}

	if report.HasFaults() {
		return fmt.Errorf("memory faults detected: %s errors at %s addresses",
			counts.Sprintf("%d", report.Summary.TotalErrors),
			counts.Sprintf("%d", report.Summary.FaultyAddresses))
	}
	return nil
}

// runTests drives the runner, printing one line per test.
func runTests(r *engine.Runner) {
	tty := isTerminal()
	for {
		name, ok := r.NextName()
		if !ok {
			return
		}
		if tty {
			printInfo("  %-14s ", name+"...")
		}
		res, ok := r.Next()
		if !ok {
			return
		}
		if !tty {
			printInfo("  %-14s ", name+"...")
		}
		if res.Passed() {
			printInfo("%s\n", colorize(ansiGreen, "ok"))
		} else {
			printInfo("%s\n", colorize(ansiRed, counts.Sprintf("FAILED (%d errors)", res.Errors)))
		}
	}
}

func printSummary(r *types.Report) {
	printInfo("\nTotal errors: %s\n", counts.Sprintf("%d", r.Summary.TotalErrors))
	if !r.HasFaults() {
		return
	}
	printInfo("Faulty addresses: %s\n", counts.Sprintf("%d", r.Summary.FaultyAddresses))
	for _, f := range r.Faults {
		printVerbose("  %s  %s\n", f.Address, counts.Sprintf("%d", f.Count))
	}
}

// openError explains construction failures in terms of what the user can do.
func openError(size int, err error) error {
	switch {
	case errors.Is(err, types.ErrInsufficientPrivilege):
		return fmt.Errorf("%w\nRe-run with sudo (or from an elevated prompt on Windows)", err)
	case errors.Is(err, types.ErrInvalidSize):
		return fmt.Errorf("%w: %s", err, sizeHint(size))
	case errors.Is(err, types.ErrLockFailure):
		return fmt.Errorf("%w\nCheck `memtest info` for the lock limit or try a smaller --size", err)
	default:
		return err
	}
}

// releaseOnSignal unlocks and frees the session when the process is
// interrupted, then exits through atexit so other handlers run too.
func releaseOnSignal(s *engine.Session) (stop func()) {
	atexit.Register(func() {
		if err := s.Close(); err != nil {
			logger.Error("release on exit failed", "session", s.ID(), "err", err)
		}
	})

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, os.Interrupt, syscall.SIGTERM)
	done := make(chan struct{})
	go func() {
		select {
		case sig := <-sigs:
			printError("interrupted by %s, releasing memory\n", sig)
			logger.Warn("interrupted", "signal", sig.String(), "session", s.ID())
			atexit.Exit(130)
		case <-done:
		}
	}()

	return func() {
		signal.Stop(sigs)
		close(done)
	}
}
