// Remove command: delete one entry by id.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var removeCmd = &cobra.Command{
	Use:   "remove <id>",
	Short: "Delete an entry by id",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, closeStore, err := openStore()
		if err != nil {
			fail(exitSysError, "remove: %s", err)
		}
		defer closeStore()

		if err := store.Remove(args[0]); err != nil {
			if isNotFound(err) {
				fail(exitUserError, "entry %q not found; nothing removed", args[0])
			}
			fail(exitSysError, "remove: %s", err)
		}

		fmt.Printf("Removed %s\n", args[0])
		return nil
	},
}
