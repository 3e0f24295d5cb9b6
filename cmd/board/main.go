// Command board serves and queries the contributors directory and awards board.
//
// @title Contributors Board API
// @version 1.0
// @description Read-only API over the contributors directory and Town Hall awards.
// @BasePath /
package main

import (
	"os"

	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "board",
		Short: "Contributors directory and awards board",
		Long: `board serves the contributors directory and Town Hall awards board
over HTTP, and answers the same queries from the command line.

Configuration is read from the environment (and .env outside production).`,
		SilenceUsage: true,
	}
	root.AddCommand(
		newServeCmd(),
		newPeopleCmd(),
		newAwardsCmd(),
		newWhoisCmd(),
		newMigrateCmd(),
		newSeedCmd(),
	)
	return root
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
