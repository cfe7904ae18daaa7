// Package mcpserver implements an MCP (Model Context Protocol) server
// that exposes oastsgen capabilities as MCP tools over stdio.
package mcpserver

import (
	"context"
	"regexp"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/erraggy/oastsgen"
)

const serverInstructions = `oastsgen MCP server: turns OpenAPI 3 documents into dependency-free TypeScript fetch clients.

Tools:
- inspect: extract a document and return its types, security schemes, routes and diagnostics without generating code. Use it first to see what a document will produce.
- generate: produce the TypeScript client. Returned inline, or written to output when given.

A document with any diagnostic produces no client; the diagnostics are returned in issues with success=false.

Configuration: defaults come from OASTSGEN_MCP_* environment variables set in your MCP client config.
- OASTSGEN_MCP_RUNTIME (default: global): runtime style when a call does not set one
- OASTSGEN_MCP_MAX_INPUT_SIZE (default: 10485760): byte limit for inline content and URL fetches
- OASTSGEN_MCP_CONCURRENCY (default: 1): routes extracted in parallel
- OASTSGEN_MCP_FETCH_TIMEOUT (default: 30s): timeout for URL inputs
- OASTSGEN_MCP_ALLOW_PRIVATE_IPS (default: false): allow URL inputs on private networks`

// Run starts the MCP server over stdio and blocks until the client disconnects
// or the context is cancelled.
func Run(ctx context.Context) error {
	server := mcp.NewServer(
		&mcp.Implementation{Name: "oastsgen", Version: oastsgen.Version()},
		&mcp.ServerOptions{
			Instructions: serverInstructions,
		},
	)
	registerAllTools(server)
	return server.Run(ctx, &mcp.StdioTransport{})
}

func registerAllTools(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "inspect",
		Description: "Extract an OpenAPI 3 document and summarize what the client would contain: type declarations with their TypeScript expressions, security schemes, and routes with parameters, body, responses and security. Diagnostics are listed in issues; success is false when there is any.",
	}, handleInspect)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "generate",
		Description: "Generate a TypeScript client from an OpenAPI 3 document. Set runtime to config for functions taking an explicit ClientConfig argument instead of module-level state. Without output the client is returned in content; with output it is written atomically to that file. Nothing is produced when the document has diagnostics.",
	}, handleGenerate)
}

// sanitizeError strips absolute filesystem paths from error messages
// to prevent leaking internal directory structure to MCP clients.
var pathPattern = regexp.MustCompile(`(?:/(?:home|tmp|var|Users|etc|opt|usr|private|root|mnt|srv|run|snap|nix)[a-zA-Z0-9._/-]*)`)

func sanitizeError(err error) string {
	if err == nil {
		return ""
	}
	return pathPattern.ReplaceAllString(err.Error(), "<path>")
}

// errResult creates an MCP error result from an error.
func errResult(err error) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		IsError: true,
		Content: []mcp.Content{&mcp.TextContent{Text: sanitizeError(err)}},
	}
}
