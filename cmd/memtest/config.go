package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// envDefaults maps flag names to the environment variables that supply
// their defaults. Explicitly set flags always win.
var envDefaults = map[string]string{
	"size":    "MEMTEST_SIZE",
	"percent": "MEMTEST_PERCENT",
	"seed":    "MEMTEST_SEED",
	"verbose": "MEMTEST_VERBOSE",
	"log-dir": "MEMTEST_LOG_DIR",
}

// loadEnvDefaults loads path (if set) into the environment and applies
// MEMTEST_* variables to every flag of cmd the user did not set.
func loadEnvDefaults(cmd *cobra.Command, path string) error {
	if path != "" {
		if err := godotenv.Load(path); err != nil {
			return fmt.Errorf("failed to load env file %s: %w", path, err)
		}
	}

	var firstErr error
	apply := func(f *pflag.Flag) {
		if firstErr != nil || f.Changed {
			return
		}
		key, ok := envDefaults[f.Name]
		if !ok {
			return
		}
		val, ok := os.LookupEnv(key)
		if !ok || val == "" {
			return
		}
		if err := f.Value.Set(val); err != nil {
			firstErr = fmt.Errorf("invalid %s=%q: %w", key, val, err)
		}
	}
	cmd.Flags().VisitAll(apply)
	cmd.InheritedFlags().VisitAll(apply)
	return firstErr
}
