// Add command: the submission path, with full form validation.
package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pafa-project/pafa/internal/archive"
)

var addSub archive.Submission

var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Submit a new footage record",
	Long: `Add validates a submission and stores it as a new entry with the next
sequential id. All validation failures are reported together; nothing is
stored unless every rule passes.

Example:
  pafa add --title "Traffic Stop, I-95" --category dashcam \
    --url https://example.com/v/123 --platform Vimeo \
    --description "Full dash camera release of the stop." \
    --cw arrest --cw language --agree`,
	RunE: runAdd,
}

func init() {
	addCmd.Flags().StringVar(&addSub.Title, "title", "", "entry title (required, max 200 chars)")
	addCmd.Flags().StringVar(&addSub.Category, "category", "", "entry category (required)")
	addCmd.Flags().StringVar(&addSub.URL, "url", "", "playback URL, http or https (required)")
	addCmd.Flags().StringVar(&addSub.Platform, "platform", "", "video platform (required)")
	addCmd.Flags().StringVar(&addSub.Description, "description", "", "description, 20-2000 chars (required)")
	addCmd.Flags().StringVar(&addSub.IncidentDate, "incident-date", "", "incident date")
	addCmd.Flags().StringVar(&addSub.Location, "location", "", "incident location")
	addCmd.Flags().StringVar(&addSub.Agency, "agency", "", "agency involved")
	addCmd.Flags().StringVar(&addSub.Source, "source", "", "footage source")
	addCmd.Flags().StringArrayVar(&addSub.ContentWarnings, "cw", nil, "content warning tag (repeatable)")
	addCmd.Flags().BoolVar(&addSub.Agree, "agree", false, "confirm the submission terms")
}

func runAdd(cmd *cobra.Command, args []string) error {
	store, closeStore, err := openStore()
	if err != nil {
		fail(exitSysError, "add: %s", err)
	}
	defer closeStore()

	entry, err := store.Submit(addSub)
	if err != nil {
		var verr *archive.ValidationError
		if errors.As(err, &verr) {
			for _, msg := range verr.Messages {
				fmt.Fprintln(cmd.ErrOrStderr(), "-", msg)
			}
			fail(exitUserError, "add: submission rejected")
		}
		if isStorageError(err) {
			fail(exitSysError, "add: a storage error occurred; the archive was not modified, retry when space is available")
		}
		fail(exitSysError, "add: %s", err)
	}

	if flagJSON {
		return printJSON(entry)
	}
	fmt.Printf("Created entry %s\n", entry.ID)
	return nil
}
