package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/commitgate/commitgate/internal/adapters/outbound/config"
)

// registerResources registers all commitgate MCP resources on the given server.
func registerResources(s *server.MCPServer, root string) {
	// commitgate://config - effective gate configuration
	s.AddResource(
		mcplib.NewResource(
			"commitgate://config",
			"Gate Configuration",
			mcplib.WithResourceDescription("Effective hook configuration for the working tree"),
			mcplib.WithMIMEType("application/json"),
		),
		handleConfigResource(root),
	)
}

func handleConfigResource(root string) server.ResourceHandlerFunc {
	return func(_ context.Context, _ mcplib.ReadResourceRequest) ([]mcplib.ResourceContents, error) {
		cfg, err := config.New().Load(root)
		if err != nil {
			return nil, fmt.Errorf("loading config failed: %w", err)
		}

		data, err := json.MarshalIndent(cfg, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("marshaling config: %w", err)
		}

		return []mcplib.ResourceContents{
			mcplib.TextResourceContents{
				URI:      "commitgate://config",
				MIMEType: "application/json",
				Text:     string(data),
			},
		}, nil
	}
}
