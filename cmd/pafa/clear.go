// Clear command: irreversible deletion of the whole collection.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var clearForce bool

var clearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete ALL entries (irreversible)",
	Long: `Clear permanently deletes the entire entry collection. There is no
soft-delete and no undo. The --force flag is required; without it nothing
is deleted.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if !clearForce {
			fail(exitUserError, "clear: this permanently deletes ALL entries; re-run with --force to confirm")
		}

		store, closeStore, err := openStore()
		if err != nil {
			fail(exitSysError, "clear: %s", err)
		}
		defer closeStore()

		if err := store.Clear(); err != nil {
			fail(exitSysError, "clear: %s", err)
		}
		fmt.Println("All entries cleared.")
		return nil
	},
}

func init() {
	clearCmd.Flags().BoolVar(&clearForce, "force", false, "confirm irreversible deletion")
}
