// Version command for the pafa CLI.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pafa-project/pafa/pkg/pafa"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the pafa version",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("pafa", pafa.Version)
	},
}
