// List command: the browse surface, filtered, sorted, paginated.
package main

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/pafa-project/pafa/internal/query"
	"github.com/pafa-project/pafa/pkg/types"
)

var (
	listCategory string
	listSearch   string
	listSort     string
	listPage     int
	listPageSize int
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Browse entries with filtering, sorting, and pagination",
	Long: `List filters the collection by category and free-text search, sorts it,
and shows one page of results.

Example:
  pafa list
  pafa list --category bodycam --search arrest
  pafa list --sort az --page 2
  pafa list --json`,
	RunE: runList,
}

func init() {
	listCmd.Flags().StringVar(&listCategory, "category", "", "filter by category")
	listCmd.Flags().StringVar(&listSearch, "search", "", "free-text search over title, description, location, agency, source, id")
	listCmd.Flags().StringVar(&listSort, "sort", query.SortNewest, "sort order: newest, oldest, az")
	listCmd.Flags().IntVar(&listPage, "page", 1, "page number (1-indexed)")
	listCmd.Flags().IntVar(&listPageSize, "page-size", query.DefaultPageSize, "entries per page")
}

func runList(cmd *cobra.Command, args []string) error {
	store, closeStore, err := openStore()
	if err != nil {
		fail(exitSysError, "list: %s", err)
	}
	defer closeStore()

	filtered := query.FilterAndSort(store.Load(), query.Options{
		Category: listCategory,
		Search:   listSearch,
		Sort:     listSort,
	})
	page := query.Paginate(filtered, listPageSize, listPage)

	if flagJSON {
		return printJSON(struct {
			Items      []types.Entry `json:"items"`
			Page       int           `json:"page"`
			TotalPages int           `json:"total_pages"`
			Results    int           `json:"results"`
		}{page.Items, page.Number, page.TotalPages, len(filtered)})
	}

	printEntryTable(page.Items)
	fmt.Printf("Page %d of %d (%d result(s))\n", page.Number, page.TotalPages, len(filtered))
	return nil
}

// printEntryTable prints entries in a human-readable table format.
func printEntryTable(entries []types.Entry) {
	if len(entries) == 0 {
		fmt.Println("No entries found.")
		return
	}

	var sb strings.Builder
	w := tabwriter.NewWriter(&sb, 0, 0, 2, ' ', 0)

	fmt.Fprintln(w, "ID\tTITLE\tCATEGORY\tSUBMITTED")
	fmt.Fprintln(w, "--\t-----\t--------\t---------")
	for _, e := range entries {
		title := e.Title
		if len(title) > 48 {
			title = title[:45] + "..."
		}
		submitted := e.Submitted
		if len(submitted) > 10 {
			submitted = submitted[:10]
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", e.ID, title, e.Category, submitted)
	}
	w.Flush()

	for _, line := range strings.Split(sb.String(), "\n") {
		if line != "" {
			fmt.Println(strings.TrimRight(line, " "))
		}
	}
}
