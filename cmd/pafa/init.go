// Init command: create the config and data directories.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize the archive storage",
	Long: `Init creates the configuration directory with a default config.yaml and
opens the storage backend once so the data directory exists.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, closeStore, err := openStore()
		if err != nil {
			fail(exitSysError, "init: %s", err)
		}
		defer closeStore()

		dataDir, err := resolveDataDir()
		if err != nil {
			fail(exitSysError, "init: %s", err)
		}
		fmt.Printf("Archive initialized at %s\n", dataDir)
		return nil
	},
}
