// ABOUTME: Root cobra command and subcommand registration
// ABOUTME: Running the binary with no subcommand starts the HTTP server

package main

import (
	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "shopthelook",
		Short: "Shop The Look backend",
		Long: `Backend for Shop The Look: Pinterest login and feed proxy, and
shopping search by image through Google Custom Search.

Configuration is read from the environment and an optional .env file.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context(), "")
		},
	}

	root.AddCommand(newServeCmd())
	root.AddCommand(newSearchCmd())
	return root
}
