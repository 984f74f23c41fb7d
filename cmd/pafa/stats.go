// Stats command: aggregate category counts.
package main

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/pafa-project/pafa/pkg/types"
)

// statsOrder fixes the display order of categories.
var statsOrder = []string{
	types.CategoryBodycam,
	types.CategoryPolice,
	types.CategoryCCTV,
	types.CategoryDashcam,
	types.CategoryBystander,
	types.CategoryHelicopter,
	types.CategoryCourtroom,
	types.CategoryOther,
}

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show per-category entry counts",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		store, closeStore, err := openStore()
		if err != nil {
			fail(exitSysError, "stats: %s", err)
		}
		defer closeStore()

		stats := store.Stats()
		if flagJSON {
			return printJSON(stats)
		}

		var sb strings.Builder
		w := tabwriter.NewWriter(&sb, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "CATEGORY\tCOUNT")
		fmt.Fprintln(w, "--------\t-----")
		for _, cat := range statsOrder {
			fmt.Fprintf(w, "%s\t%d\n", types.CategoryLabels[cat], stats.ByCategory[cat])
		}
		w.Flush()
		fmt.Print(sb.String())
		fmt.Printf("Total: %d entries\n", stats.Total)
		return nil
	},
}
