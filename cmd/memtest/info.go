package main

import (
	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/joshuapare/memtest/internal/lockmem"
	"github.com/joshuapare/memtest/pkg/types"
)

func init() {
	rootCmd.AddCommand(newInfoCmd())
}

func newInfoCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "info",
		Short: "Report privilege, lock limit and memory available for testing",
		Long: `The info command reports whether this process may lock memory, the
platform page size and lock limit, and how much memory is available to test.

Example:
  memtest info
  memtest info --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInfo()
		},
	}
	return cmd
}

// systemInfo is the JSON shape of the info command.
type systemInfo struct {
	Privileged     bool   `json:"privileged"`
	PageSize       int    `json:"page_size"`
	LockLimit      uint64 `json:"lock_limit,omitempty"`
	LockUnlimited  bool   `json:"lock_unlimited"`
	TotalMemory    uint64 `json:"total_memory"`
	AvailMemory    uint64 `json:"available_memory"`
	SuggestedBytes uint64 `json:"suggested_size"`
}

// privileged reports the privilege check of the configured platform.
func privileged() bool {
	if platform.Privileged != nil {
		return platform.Privileged()
	}
	return lockmem.Privileged()
}

func runInfo() error {
	lim, err := lockmem.PlatformLimits()
	if err != nil {
		printVerbose("lock limit unavailable: %v\n", err)
	}
	total, avail, err := availableMemory()
	if err != nil {
		printVerbose("memory statistics unavailable: %v\n", err)
	}

	info := systemInfo{
		Privileged:    privileged(),
		PageSize:      lim.PageSize,
		LockLimit:     lim.LockLimit,
		LockUnlimited: lim.Unlimited,
		TotalMemory:   total,
		AvailMemory:   avail,
	}
	info.SuggestedBytes = types.AlignSize(avail)
	if !lim.Unlimited && lim.LockLimit > 0 && lim.LockLimit < info.SuggestedBytes && !info.Privileged {
		info.SuggestedBytes = types.AlignSize(lim.LockLimit)
	}

	if jsonOut {
		return printJSON(info)
	}

	printInfo("\nSystem Information:\n")
	if info.Privileged {
		printInfo("  Privileged:       yes\n")
	} else {
		printInfo("  Privileged:       no (run as root/administrator to lock memory)\n")
	}
	printInfo("  Page size:        %s bytes\n", counts.Sprintf("%d", info.PageSize))
	switch {
	case info.LockUnlimited:
		printInfo("  Lock limit:       unlimited\n")
	case info.LockLimit > 0:
		printInfo("  Lock limit:       %s\n", humanize.IBytes(info.LockLimit))
	default:
		printInfo("  Lock limit:       unknown\n")
	}
	printInfo("  Total memory:     %s\n", humanize.IBytes(info.TotalMemory))
	printInfo("  Available memory: %s\n", humanize.IBytes(info.AvailMemory))
	printInfo("  Largest region:   %s\n", humanize.IBytes(info.SuggestedBytes))

	return nil
}
