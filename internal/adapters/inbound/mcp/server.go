package mcp

import (
	"github.com/mark3labs/mcp-go/server"
)

// NewCommitGateMCPServer creates a new MCP server with all commitgate tools
// and resources registered. The root is the working tree the gate runs in.
func NewCommitGateMCPServer(root string) *server.MCPServer {
	s := server.NewMCPServer(
		"commitgate",
		"0.1.0",
		server.WithToolCapabilities(true),
		server.WithResourceCapabilities(true, false),
	)

	registerTools(s, root)
	registerResources(s, root)

	return s
}
