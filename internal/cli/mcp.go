// ABOUTME: MCP subcommand for running the studylog MCP server
// ABOUTME: Handles stdio transport initialization and server lifecycle
package cli

import (
	"github.com/harper/studylog/internal/mcp"
	"github.com/spf13/cobra"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Run the studylog MCP server",
	Long:  `Start the Model Context Protocol server so AI assistants can log and report study time over stdio.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(cmd)
		if err != nil {
			return err
		}

		server := mcp.NewServer(a.tracker, a.journal)
		return server.Run(cmd.Context())
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}
