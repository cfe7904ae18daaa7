package mcpserver

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/erraggy/oastsgen/emitter"
	"github.com/erraggy/oastsgen/generator"
)

type generateInput struct {
	Spec    specInput `json:"spec"              jsonschema:"The OpenAPI 3 document to generate a client from"`
	Runtime string    `json:"runtime,omitempty" jsonschema:"Runtime style: global (module-level init) or config (explicit ClientConfig argument). Default from OASTSGEN_MCP_RUNTIME."`
	Output  string    `json:"output,omitempty"  jsonschema:"File to write the client to. When empty the client is returned inline."`
}

type generateOutput struct {
	Success bool     `json:"success"`
	Issues  []string `json:"issues,omitempty"`
	Content string   `json:"content,omitempty"`
	Routes  int      `json:"routes"`
	Types   int      `json:"types"`
	Schemes int      `json:"schemes"`
	Written string   `json:"written,omitempty"`
}

func handleGenerate(ctx context.Context, _ *mcp.CallToolRequest, input generateInput) (*mcp.CallToolResult, generateOutput, error) {
	runtime := cfg.Runtime
	if input.Runtime != "" {
		r, err := emitter.ParseRuntime(input.Runtime)
		if err != nil {
			return errResult(err), generateOutput{}, nil
		}
		runtime = r
	}

	result, err := run(ctx, input.Spec, generator.WithRuntime(runtime))
	if err != nil {
		return errResult(err), generateOutput{}, nil
	}

	output := generateOutput{
		Success: result.Success,
		Issues:  result.IssueStrings(),
		Routes:  result.RouteCount,
		Types:   result.TypeCount,
		Schemes: result.SchemeCount,
	}
	if !result.Success {
		return nil, output, nil
	}

	if input.Output == "" {
		output.Content = result.Content
		return nil, output, nil
	}
	path := filepath.Clean(input.Output)
	if err := result.WriteFile(path); err != nil {
		return errResult(fmt.Errorf("failed to write client: %w", err)), generateOutput{}, nil
	}
	output.Written = path
	return nil, output, nil
}

// run loads and generates the document described by spec.
func run(ctx context.Context, spec specInput, extra ...generator.Option) (*generator.GenerateResult, error) {
	opts, err := spec.options(ctx)
	if err != nil {
		return nil, err
	}
	opts = append(opts, generator.WithConcurrency(cfg.Concurrency))
	opts = append(opts, extra...)
	return generator.GenerateWithOptions(opts...)
}
