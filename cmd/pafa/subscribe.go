// Subscription commands: notification signups and their management.
package main

import (
	"errors"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/pafa-project/pafa/pkg/types"
)

var (
	subscribeCategory   string
	unsubscribeCategory string
)

var subscribeCmd = &cobra.Command{
	Use:   "subscribe <email>",
	Short: "Sign up for new-footage notifications",
	Long: `Subscribe records a notification signup for a category ("all" by
default). Duplicate (email, category) signups are kept once.

Example:
  pafa subscribe watcher@example.org
  pafa subscribe watcher@example.org --category bodycam`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, closeStore, err := openStore()
		if err != nil {
			fail(exitSysError, "subscribe: %s", err)
		}
		defer closeStore()

		sub, already, err := store.Subscribe(args[0], subscribeCategory)
		if err != nil {
			if errors.Is(err, types.ErrInvalidEmail) {
				fail(exitUserError, "subscribe: please enter a valid email address")
			}
			fail(exitSysError, "subscribe: %s", err)
		}

		if flagJSON {
			return printJSON(sub)
		}
		if already {
			fmt.Printf("Already subscribed: %s (%s)\n", sub.Email, sub.Category)
		} else {
			fmt.Printf("Subscribed %s to %s\n", sub.Email, sub.Category)
		}
		return nil
	},
}

var unsubscribeCmd = &cobra.Command{
	Use:   "unsubscribe <email>",
	Short: "Remove a notification signup",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, closeStore, err := openStore()
		if err != nil {
			fail(exitSysError, "unsubscribe: %s", err)
		}
		defer closeStore()

		if err := store.Unsubscribe(args[0], unsubscribeCategory); err != nil {
			if errors.Is(err, types.ErrNotSubscribed) {
				fail(exitUserError, "no matching subscription for %s", args[0])
			}
			fail(exitSysError, "unsubscribe: %s", err)
		}
		fmt.Printf("Unsubscribed %s\n", args[0])
		return nil
	},
}

var subscriptionsCmd = &cobra.Command{
	Use:   "subscriptions",
	Short: "List notification signups",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		store, closeStore, err := openStore()
		if err != nil {
			fail(exitSysError, "subscriptions: %s", err)
		}
		defer closeStore()

		subs := store.Subscriptions()
		if flagJSON {
			return printJSON(subs)
		}
		if len(subs) == 0 {
			fmt.Println("No subscriptions.")
			return nil
		}

		var sb strings.Builder
		w := tabwriter.NewWriter(&sb, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "EMAIL\tCATEGORY\tSINCE")
		fmt.Fprintln(w, "-----\t--------\t-----")
		for _, s := range subs {
			fmt.Fprintf(w, "%s\t%s\t%s\n", s.Email, s.Category, s.SubscribedAt)
		}
		w.Flush()
		fmt.Print(sb.String())
		return nil
	},
}

func init() {
	subscribeCmd.Flags().StringVar(&subscribeCategory, "category", types.SubscribeAll, "notification category")
	unsubscribeCmd.Flags().StringVar(&unsubscribeCategory, "category", types.SubscribeAll, "notification category")
}
