// Update command: shallow-merge fields over an existing entry.
package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var (
	updateSetFlags   []string
	updateFieldsJSON string
)

var updateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Update fields of an entry",
	Long: `Update shallow-merges the given fields over the stored entry. The id and
submitted timestamp are pinned and keep their stored values even if supplied.

Fields are given as repeated --set key=value pairs (string values) or as a
JSON object via --fields for non-string values.

Example:
  pafa update PAFA-000001 --set title="Corrected Title"
  pafa update PAFA-000001 --fields '{"content_warnings":["arrest"]}'`,
	Args: cobra.ExactArgs(1),
	RunE: runUpdate,
}

func init() {
	updateCmd.Flags().StringArrayVar(&updateSetFlags, "set", nil, "field assignment key=value (repeatable)")
	updateCmd.Flags().StringVar(&updateFieldsJSON, "fields", "", "JSON object of fields to merge")
}

func runUpdate(cmd *cobra.Command, args []string) error {
	fields := make(map[string]any)

	if updateFieldsJSON != "" {
		if err := json.Unmarshal([]byte(updateFieldsJSON), &fields); err != nil {
			fail(exitUserError, "update: --fields is not a JSON object: %s", err)
		}
	}
	for _, kv := range updateSetFlags {
		key, value, ok := strings.Cut(kv, "=")
		if !ok || key == "" {
			fail(exitUserError, "update: --set %q is not key=value", kv)
		}
		fields[key] = value
	}
	if len(fields) == 0 {
		fail(exitUserError, "update: at least one of --set or --fields must be provided")
	}

	store, closeStore, err := openStore()
	if err != nil {
		fail(exitSysError, "update: %s", err)
	}
	defer closeStore()

	entry, err := store.Update(args[0], fields)
	if err != nil {
		if isNotFound(err) {
			fail(exitUserError, "entry %q not found; nothing changed", args[0])
		}
		fail(exitSysError, "update: %s", err)
	}

	if flagJSON {
		return printJSON(entry)
	}
	fmt.Printf("Updated %s\n", entry.ID)
	return nil
}
