package mcpserver

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/erraggy/oastsgen/generator"
)

type inspectInput struct {
	Spec specInput `json:"spec" jsonschema:"The OpenAPI 3 document to inspect"`
}

func handleInspect(ctx context.Context, _ *mcp.CallToolRequest, input inspectInput) (*mcp.CallToolResult, generator.Summary, error) {
	result, err := run(ctx, input.Spec)
	if err != nil {
		return errResult(err), generator.Summary{}, nil
	}
	return nil, result.Summary(), nil
}
