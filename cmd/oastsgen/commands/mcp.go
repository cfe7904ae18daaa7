package commands

import (
	"github.com/spf13/cobra"

	"github.com/erraggy/oastsgen/internal/mcpserver"
)

func newMCPCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "mcp",
		Short: "Run the MCP server on stdio",
		Long: `Run a Model Context Protocol server exposing the generate and inspect
tools over stdio. Configure it with OASTSGEN_MCP_* environment variables in
the MCP client config.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return mcpserver.Run(cmd.Context())
		},
	}
}
