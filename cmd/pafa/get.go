// Get command: show one entry by id.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pafa-project/pafa/pkg/types"
)

var getCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Show an entry by id",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, closeStore, err := openStore()
		if err != nil {
			fail(exitSysError, "get: %s", err)
		}
		defer closeStore()

		id := args[0]
		for _, e := range store.Load() {
			if e.ID == id {
				if flagJSON {
					return printJSON(e)
				}
				printEntryDetail(e)
				return nil
			}
		}

		fail(exitUserError, "entry %q not found", id)
		return nil
	},
}

// printEntryDetail prints the typed fields of one entry, then any
// passthrough fields by key.
func printEntryDetail(e types.Entry) {
	fmt.Printf("ID:          %s\n", e.ID)
	fmt.Printf("Title:       %s\n", e.Title)
	fmt.Printf("Category:    %s\n", displayCategory(e.Category))
	fmt.Printf("URL:         %s\n", e.URL)
	fmt.Printf("Platform:    %s\n", e.Platform)
	fmt.Printf("Submitted:   %s\n", e.Submitted)
	printOptional("Incident:", e.IncidentDate)
	printOptional("Location:", e.Location)
	printOptional("Agency:", e.Agency)
	printOptional("Source:", e.Source)
	if len(e.ContentWarnings) > 0 {
		fmt.Printf("Warnings:    %v\n", e.ContentWarnings)
	}
	if e.Description != "" {
		fmt.Printf("Description: %s\n", e.Description)
	}
	for k := range e.Extra {
		fmt.Printf("Extra:       %s\n", k)
	}
}

func printOptional(label string, v *string) {
	if v != nil {
		fmt.Printf("%-12s %s\n", label, *v)
	}
}

// displayCategory renders a category with its label when recognized, or
// verbatim otherwise.
func displayCategory(cat string) string {
	if label, ok := types.CategoryLabels[cat]; ok {
		return fmt.Sprintf("%s (%s)", cat, label)
	}
	return cat
}
