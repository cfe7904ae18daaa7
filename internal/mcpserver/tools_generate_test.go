package mcpserver

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erraggy/oastsgen/emitter"
	"github.com/erraggy/oastsgen/internal/testutil"
)

// brokenSpec has one operation without operationId or summary.
const brokenSpec = `openapi: "3.0.3"
info:
  title: Broken
  version: "1"
paths:
  /a:
    get:
      responses:
        "200":
          description: ok
`

func TestGenerateTool_Inline(t *testing.T) {
	withConfig(t, func(c *serverConfig) { c.Runtime = emitter.RuntimeGlobal })

	input := generateInput{Spec: specInput{Content: testutil.PetstoreYAML}}
	result, output, err := handleGenerate(context.Background(), &mcp.CallToolRequest{}, input)
	require.NoError(t, err)
	assert.Nil(t, result)

	assert.True(t, output.Success)
	assert.Empty(t, output.Issues)
	assert.Equal(t, 3, output.Routes)
	assert.Equal(t, 2, output.Types)
	assert.Equal(t, 1, output.Schemes)
	assert.Empty(t, output.Written)
	assert.Contains(t, output.Content, "export async function listPets")
	assert.Contains(t, output.Content, "let _baseUrl")
}

func TestGenerateTool_Runtime(t *testing.T) {
	t.Run("from input", func(t *testing.T) {
		withConfig(t, func(c *serverConfig) { c.Runtime = emitter.RuntimeGlobal })
		input := generateInput{Spec: specInput{Content: testutil.PetstoreYAML}, Runtime: "config"}
		_, output, err := handleGenerate(context.Background(), &mcp.CallToolRequest{}, input)
		require.NoError(t, err)
		assert.Contains(t, output.Content, "export interface ClientConfig")
	})

	t.Run("from config", func(t *testing.T) {
		withConfig(t, func(c *serverConfig) { c.Runtime = emitter.RuntimeConfig })
		input := generateInput{Spec: specInput{Content: testutil.PetstoreYAML}}
		_, output, err := handleGenerate(context.Background(), &mcp.CallToolRequest{}, input)
		require.NoError(t, err)
		assert.Contains(t, output.Content, "export interface ClientConfig")
	})

	t.Run("invalid", func(t *testing.T) {
		input := generateInput{Spec: specInput{Content: testutil.PetstoreYAML}, Runtime: "deno"}
		result, _, err := handleGenerate(context.Background(), &mcp.CallToolRequest{}, input)
		require.NoError(t, err)
		require.NotNil(t, result)
		assert.True(t, result.IsError)
	})
}

func TestGenerateTool_WritesOutput(t *testing.T) {
	specPath := testutil.WriteTempFile(t, "petstore.yaml", testutil.PetstoreYAML)
	out := filepath.Join(t.TempDir(), "client", "api.ts")

	input := generateInput{Spec: specInput{File: specPath}, Output: out}
	result, output, err := handleGenerate(context.Background(), &mcp.CallToolRequest{}, input)
	require.NoError(t, err)
	assert.Nil(t, result)

	assert.True(t, output.Success)
	assert.Equal(t, out, output.Written)
	assert.Empty(t, output.Content)

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Contains(t, string(data), "export async function showPetById")
}

func TestGenerateTool_Issues(t *testing.T) {
	out := filepath.Join(t.TempDir(), "api.ts")

	input := generateInput{Spec: specInput{Content: brokenSpec}, Output: out}
	result, output, err := handleGenerate(context.Background(), &mcp.CallToolRequest{}, input)
	require.NoError(t, err)
	assert.Nil(t, result, "diagnostics are reported in the output, not as a tool error")

	assert.False(t, output.Success)
	require.Len(t, output.Issues, 1)
	assert.Contains(t, output.Issues[0], "Error in get /a: field `operationId` is required")
	assert.Empty(t, output.Content)
	assert.Empty(t, output.Written)
	assert.NoFileExists(t, out)
}

func TestGenerateTool_LoadErrors(t *testing.T) {
	tests := []struct {
		name  string
		input generateInput
	}{
		{"no spec", generateInput{}},
		{"not a document", generateInput{Spec: specInput{Content: "just words"}}},
		{"swagger 2", generateInput{Spec: specInput{Content: "swagger: \"2.0\"\ninfo: {title: x, version: \"1\"}\npaths: {}\n"}}},
		{"missing file", generateInput{Spec: specInput{File: filepath.Join(t.TempDir(), "nope.yaml")}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, _, err := handleGenerate(context.Background(), &mcp.CallToolRequest{}, tt.input)
			require.NoError(t, err)
			require.NotNil(t, result)
			assert.True(t, result.IsError)
		})
	}
}
