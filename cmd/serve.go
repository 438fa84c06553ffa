package cmd

import (
	"github.com/spf13/cobra"
)

// serveCmd is the explicit form of the default action.
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the MCP server on stdin/stdout",
	RunE: func(cmd *cobra.Command, args []string) error {
		return serve()
	},
}
