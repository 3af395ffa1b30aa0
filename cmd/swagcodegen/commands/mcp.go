package commands

import (
	"github.com/spf13/cobra"

	"github.com/swagcodegen/swagcodegen/internal/mcpserver"
)

func newMCPCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "mcp",
		Short: "Serve swagcodegen over the Model Context Protocol on stdio",
		Long: `Start an MCP server on stdin/stdout exposing the generate and view tools.
Tool defaults come from SWAGCODEGEN_MCP_* environment variables. Logs go to stderr.`,
		Args: cobra.NoArgs,
		RunE: func(*cobra.Command, []string) error {
			a.logger.Info("starting MCP server")
			return mcpserver.Run(a.ctx)
		},
	}
}
