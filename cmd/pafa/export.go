// Export command: serialize the full collection for offline backup.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var exportOutput string

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export all entries as indented JSON",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		store, closeStore, err := openStore()
		if err != nil {
			fail(exitSysError, "export: %s", err)
		}
		defer closeStore()

		out, err := store.ExportAll()
		if err != nil {
			fail(exitSysError, "export: %s", err)
		}

		if exportOutput != "" {
			if err := os.WriteFile(exportOutput, []byte(out), 0o644); err != nil {
				fail(exitSysError, "export: %s", err)
			}
			fmt.Printf("Exported to %s\n", exportOutput)
			return nil
		}
		fmt.Println(out)
		return nil
	},
}

func init() {
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "write to file instead of stdout")
}
