// Report commands: flag entries for review and list filed reports.
package main

import (
	"errors"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/pafa-project/pafa/pkg/types"
)

var reportReason string

var reportCmd = &cobra.Command{
	Use:   "report <entry-id>",
	Short: "Report an entry for administrative review",
	Long: `Report flags an entry (broken link, fabricated content, inappropriate,
...). A reason is required.

Example:
  pafa report PAFA-000003 --reason "broken link"`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, closeStore, err := openStore()
		if err != nil {
			fail(exitSysError, "report: %s", err)
		}
		defer closeStore()

		report, err := store.FileReport(args[0], reportReason)
		if err != nil {
			if errors.Is(err, types.ErrReasonRequired) {
				fail(exitUserError, "report: a reason is required (--reason)")
			}
			fail(exitSysError, "report: %s", err)
		}

		if flagJSON {
			return printJSON(report)
		}
		fmt.Printf("Report %s filed for entry %s\n", report.ReportID, report.EntryID)
		return nil
	},
}

var reportsCmd = &cobra.Command{
	Use:   "reports",
	Short: "List all filed reports",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		store, closeStore, err := openStore()
		if err != nil {
			fail(exitSysError, "reports: %s", err)
		}
		defer closeStore()

		reports := store.Reports()
		if flagJSON {
			return printJSON(reports)
		}
		if len(reports) == 0 {
			fmt.Println("No reports filed.")
			return nil
		}

		var sb strings.Builder
		w := tabwriter.NewWriter(&sb, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "ENTRY\tREASON\tREPORTED")
		fmt.Fprintln(w, "-----\t------\t--------")
		for _, r := range reports {
			reason := r.Reason
			if len(reason) > 50 {
				reason = reason[:47] + "..."
			}
			fmt.Fprintf(w, "%s\t%s\t%s\n", r.EntryID, reason, r.ReportedAt)
		}
		w.Flush()
		fmt.Print(sb.String())
		fmt.Printf("Total: %d report(s)\n", len(reports))
		return nil
	},
}

func init() {
	reportCmd.Flags().StringVar(&reportReason, "reason", "", "why this entry is being reported (required)")
}
