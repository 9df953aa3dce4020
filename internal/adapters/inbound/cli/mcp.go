package cli

import (
	mcpadapter "github.com/commitgate/commitgate/internal/adapters/inbound/mcp"

	"github.com/mark3labs/mcp-go/server"
	"github.com/spf13/cobra"
)

func newMCPCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mcp",
		Short: "MCP server commands",
		Long:  "Commands for running the commitgate MCP (Model Context Protocol) server.",
	}
	cmd.AddCommand(newMCPServeCmd())
	return cmd
}

func newMCPServeCmd() *cobra.Command {
	var path string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start commitgate MCP server (stdio)",
		Long:  "Start the commitgate MCP server using stdio transport. This allows AI coding assistants to run the gate and inspect its configuration.",
		RunE: func(cmd *cobra.Command, args []string) error {
			if path == "" {
				path = "."
			}
			s := mcpadapter.NewCommitGateMCPServer(path)
			return server.ServeStdio(s)
		},
	}

	cmd.Flags().StringVar(&path, "path", "", "Working tree (defaults to current working directory)")

	return cmd
}
