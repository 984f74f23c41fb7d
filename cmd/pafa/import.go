// Import command: administrative bulk import from a JSON file.
package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pafa-project/pafa/pkg/types"
)

var importReplace bool

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Bulk-import entries from a JSON array",
	Long: `Import reads a JSON array of entries and adds them to the collection.
Entries without an id are assigned consecutive sequential ids; entries
without a submitted timestamp are stamped with the current time. Unknown
fields are kept verbatim.

With --replace the existing collection is discarded first.

Example:
  pafa import backup.json
  pafa import seed.json --replace`,
	Args: cobra.ExactArgs(1),
	RunE: runImport,
}

func init() {
	importCmd.Flags().BoolVar(&importReplace, "replace", false, "replace the existing collection instead of appending")
}

func runImport(cmd *cobra.Command, args []string) error {
	raw, err := os.ReadFile(args[0])
	if err != nil {
		fail(exitUserError, "import: %s", err)
	}

	var batch []types.Entry
	if err := json.Unmarshal(raw, &batch); err != nil {
		fail(exitUserError, "import: %s is not a JSON array of entries: %s", args[0], err)
	}

	store, closeStore, err := openStore()
	if err != nil {
		fail(exitSysError, "import: %s", err)
	}
	defer closeStore()

	imported, err := store.Import(batch, importReplace)
	if err != nil {
		fail(exitSysError, "import: %s", err)
	}

	if flagJSON {
		return printJSON(imported)
	}
	fmt.Printf("Imported %d entries\n", len(imported))
	return nil
}
