package main

import (
	"github.com/spf13/cobra"

	"github.com/joshuapare/memtest/engine"
)

func init() {
	rootCmd.AddCommand(newListCmd())
}

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the pattern tests in execution order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList()
		},
	}
}

func runList() error {
	names := engine.CatalogNames()
	if jsonOut {
		return printJSON(names)
	}
	for i, name := range names {
		printInfo("%2d. %s\n", i+1, name)
	}
	return nil
}
