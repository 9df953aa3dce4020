package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/commitgate/commitgate/internal/adapters/outbound/config"
	"github.com/commitgate/commitgate/internal/adapters/outbound/gitinfo"
	"github.com/commitgate/commitgate/internal/adapters/outbound/rewrite"
	"github.com/commitgate/commitgate/internal/adapters/outbound/scanner"
	"github.com/commitgate/commitgate/internal/application"
	"go.uber.org/zap"
)

// registerTools registers all commitgate MCP tools on the given server.
func registerTools(s *server.MCPServer, root string) {
	// 1. commitgate_run
	s.AddTool(
		mcplib.NewTool("commitgate_run",
			mcplib.WithDescription("Run every configured hook over the file set and return the per-hook outcomes as JSON"),
			mcplib.WithString("files",
				mcplib.Description("Comma-separated file subset relative to the working tree (default: all files under version control)"),
			),
			mcplib.WithBoolean("all",
				mcplib.Description("Walk the tree instead of asking version control for the file set"),
			),
		),
		handleRun(root),
	)

	// 2. commitgate_list_hooks
	s.AddTool(
		mcplib.NewTool("commitgate_list_hooks",
			mcplib.WithDescription("Returns the configured hooks with their include/exclude patterns and file-type filters"),
		),
		handleListHooks(root),
	)

	// 3. commitgate_validate_config
	s.AddTool(
		mcplib.NewTool("commitgate_validate_config",
			mcplib.WithDescription("Validate .commitgate.yaml and report the effective configuration"),
		),
		handleValidateConfig(root),
	)
}

// newServices creates the standard set of outbound adapters and services.
func newServices() (*application.RunService, *application.FileSetService) {
	loader := config.New()
	return application.NewRunService(loader, rewrite.New(), zap.NewNop()),
		application.NewFileSetService(gitinfo.New(), scanner.New())
}

func handleRun(root string) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		runSvc, fileSvc := newServices()

		args := request.GetArguments()
		var explicit []string
		if filesStr, ok := args["files"].(string); ok && filesStr != "" {
			explicit = splitAndTrim(filesStr)
		}
		all, _ := args["all"].(bool)

		fileSet, err := fileSvc.Resolve(root, explicit, all)
		if err != nil {
			return errorResult(fmt.Sprintf("resolving file set failed: %v", err)), nil
		}

		result, err := runSvc.Run(ctx, root, fileSet)
		if err != nil {
			return errorResult(fmt.Sprintf("run failed: %v", err)), nil
		}
		return jsonResult(result)
	}
}

func handleListHooks(root string) server.ToolHandlerFunc {
	return func(_ context.Context, _ mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		cfg, err := config.New().Load(root)
		if err != nil {
			return errorResult(fmt.Sprintf("loading config failed: %v", err)), nil
		}
		return jsonResult(cfg.Hooks)
	}
}

func handleValidateConfig(root string) server.ToolHandlerFunc {
	return func(_ context.Context, _ mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		cfg, err := config.New().Load(root)
		if err != nil {
			return errorResult(fmt.Sprintf("invalid configuration: %v", err)), nil
		}
		return jsonResult(cfg)
	}
}

func splitAndTrim(s string) []string {
	parts := strings.Split(s, ",")
	var result []string
	for _, p := range parts {
		trimmed := strings.TrimSpace(p)
		if trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}

// jsonResult marshals v to JSON and returns it as a text content result.
func jsonResult(v interface{}) (*mcplib.CallToolResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling result: %w", err)
	}
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{mcplib.NewTextContent(string(data))},
	}, nil
}

// errorResult returns a tool result that indicates an error occurred.
func errorResult(msg string) *mcplib.CallToolResult {
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{mcplib.NewTextContent(msg)},
		IsError: true,
	}
}
