package commands

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.yaml.in/yaml/v4"

	"github.com/erraggy/oastsgen/generator"
	"github.com/erraggy/oastsgen/internal/testutil"
)

const brokenYAML = `openapi: "3.0.3"
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

// clearOASTSGENEnv isolates tests from OASTSGEN_* variables in the ambient environment.
func clearOASTSGENEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"OASTSGEN_VERBOSE", "OASTSGEN_CONCURRENCY", "OASTSGEN_RUNTIME",
		"OASTSGEN_FORMAT", "OASTSGEN_STDOUT",
	} {
		t.Setenv(key, "")
	}
}

func execute(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	cmd := NewRootCommand()
	var stdout, stderr bytes.Buffer
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestGenerate_WritesFile(t *testing.T) {
	clearOASTSGENEnv(t)
	input := testutil.WriteTempFile(t, "petstore.yaml", testutil.PetstoreYAML)
	output := filepath.Join(t.TempDir(), "src", "api.ts")

	stdout, stderr, err := execute(t, "", "generate", input, output)
	require.NoError(t, err)
	assert.Empty(t, stdout)
	assert.Contains(t, stderr, "Specification: "+input)
	assert.Contains(t, stderr, "Types: 2")
	assert.Contains(t, stderr, "Routes: 3")
	assert.Contains(t, stderr, "Output: "+output)

	data, err := os.ReadFile(output)
	require.NoError(t, err)
	assert.Contains(t, string(data), "export async function listPets")
	assert.Contains(t, string(data), "let _baseUrl")
}

func TestGenerate_Stdout(t *testing.T) {
	clearOASTSGENEnv(t)
	input := testutil.WriteTempFile(t, "petstore.yaml", testutil.PetstoreYAML)

	stdout, stderr, err := execute(t, "", "generate", "--stdout", input)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(stdout, "export type Pet"), stdout)
	assert.NotContains(t, stderr, "Output:")
}

func TestGenerate_Stdin(t *testing.T) {
	clearOASTSGENEnv(t)

	stdout, stderr, err := execute(t, testutil.PetstoreYAML, "generate", "--stdout", StdinFilePath)
	require.NoError(t, err)
	assert.Contains(t, stdout, "export async function showPetById")
	assert.Contains(t, stderr, "Specification: <stdin>")
}

func TestGenerate_RuntimeSources(t *testing.T) {
	input := testutil.WriteTempFile(t, "petstore.yaml", testutil.PetstoreYAML)

	t.Run("flag", func(t *testing.T) {
		clearOASTSGENEnv(t)
		stdout, _, err := execute(t, "", "generate", "--stdout", "--runtime", "config", input)
		require.NoError(t, err)
		assert.Contains(t, stdout, "export interface ClientConfig")
	})

	t.Run("environment", func(t *testing.T) {
		clearOASTSGENEnv(t)
		t.Setenv("OASTSGEN_RUNTIME", "config")
		stdout, _, err := execute(t, "", "generate", "--stdout", input)
		require.NoError(t, err)
		assert.Contains(t, stdout, "export interface ClientConfig")
	})

	t.Run("config file", func(t *testing.T) {
		clearOASTSGENEnv(t)
		cfg := testutil.WriteTempFile(t, "oastsgen.yaml", "runtime: config\nconcurrency: 2\n")
		stdout, _, err := execute(t, "", "--config", cfg, "generate", "--stdout", input)
		require.NoError(t, err)
		assert.Contains(t, stdout, "export interface ClientConfig")
	})

	t.Run("flag wins over environment", func(t *testing.T) {
		clearOASTSGENEnv(t)
		t.Setenv("OASTSGEN_RUNTIME", "config")
		stdout, _, err := execute(t, "", "generate", "--stdout", "--runtime", "global", input)
		require.NoError(t, err)
		assert.NotContains(t, stdout, "ClientConfig")
	})
}

func TestGenerate_Errors(t *testing.T) {
	clearOASTSGENEnv(t)
	input := testutil.WriteTempFile(t, "petstore.yaml", testutil.PetstoreYAML)
	text := testutil.WriteTempFile(t, "petstore.txt", testutil.PetstoreYAML)

	tests := []struct {
		name    string
		args    []string
		wantErr string
	}{
		{"no args", []string{"generate"}, "accepts between 1 and 2 arg(s)"},
		{"no output", []string{"generate", input}, "an output file is required"},
		{"output and stdout", []string{"generate", "--stdout", input, "out.ts"}, "cannot use both"},
		{"overwrite input", []string{"generate", input, input}, "would overwrite input file"},
		{"unknown runtime", []string{"generate", "--runtime", "deno", "--stdout", input}, "unknown runtime"},
		{"bad extension", []string{"generate", "--stdout", text}, "unsupported file extension"},
		{"missing file", []string{"generate", "--stdout", filepath.Join(t.TempDir(), "nope.yaml")}, "generating client"},
		{"bad concurrency", []string{"generate", "--concurrency", "0", "--stdout", input}, "concurrency"},
		{"missing config file", []string{"--config", filepath.Join(t.TempDir(), "nope.yaml"), "generate", "--stdout", input}, "reading config file"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := execute(t, "", tt.args...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestGenerate_IssuesWriteNothing(t *testing.T) {
	clearOASTSGENEnv(t)
	input := testutil.WriteTempFile(t, "broken.yaml", brokenYAML)
	output := filepath.Join(t.TempDir(), "api.ts")

	stdout, stderr, err := execute(t, "", "generate", input, output)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "generation failed with 1 issue(s)")
	assert.Empty(t, stdout)
	assert.Contains(t, stderr, "Issues (1):")
	assert.Contains(t, stderr, "Error in get /a: field `operationId` is required, but may be substituted with `summary`")
	assert.NoFileExists(t, output)
}

func TestGenerate_RejectsSymlinkOutput(t *testing.T) {
	clearOASTSGENEnv(t)
	input := testutil.WriteTempFile(t, "petstore.yaml", testutil.PetstoreYAML)
	dir := t.TempDir()
	target := filepath.Join(dir, "target.ts")
	require.NoError(t, os.WriteFile(target, nil, 0o644))
	link := filepath.Join(dir, "link.ts")
	if err := os.Symlink(target, link); err != nil {
		t.Skipf("symlinks unavailable: %v", err)
	}

	_, _, err := execute(t, "", "generate", input, link)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "refusing to write to symlink")
}

func TestGenerate_Verbose(t *testing.T) {
	clearOASTSGENEnv(t)
	input := testutil.WriteTempFile(t, "petstore.yaml", testutil.PetstoreYAML)

	_, stderr, err := execute(t, "", "generate", "--stdout", input)
	require.NoError(t, err)
	assert.NotContains(t, stderr, "document loaded")

	_, stderr, err = execute(t, "", "generate", "-v", "--stdout", input)
	require.NoError(t, err)
	assert.Contains(t, stderr, "document loaded")
	assert.Contains(t, stderr, "client generated")
}

func TestInspect_Text(t *testing.T) {
	clearOASTSGENEnv(t)
	input := testutil.WriteTempFile(t, "petstore.yaml", testutil.PetstoreYAML)

	stdout, _, err := execute(t, "", "inspect", input)
	require.NoError(t, err)
	assert.Contains(t, stdout, "Types (2):")
	assert.Contains(t, stdout, "Security Schemes (1):\n  ApiKey: header X-Api-Key (default)\n")
	assert.Contains(t, stdout, "Routes (3):")
	assert.Contains(t, stdout, "  listPets GET /pets\n")
	assert.Contains(t, stdout, "    query limit: ( number | undefined )\n")
	assert.Contains(t, stdout, "    body application/json: Pet\n")
	assert.Contains(t, stdout, "    responses: default, 200\n")
	assert.NotContains(t, stdout, "Issues")
}

func TestInspect_Structured(t *testing.T) {
	clearOASTSGENEnv(t)
	input := testutil.WriteTempFile(t, "petstore.yaml", testutil.PetstoreYAML)

	t.Run("json", func(t *testing.T) {
		stdout, _, err := execute(t, "", "inspect", "--format", "json", input)
		require.NoError(t, err)
		var s generator.Summary
		require.NoError(t, json.Unmarshal([]byte(stdout), &s))
		assert.True(t, s.Success)
		require.Len(t, s.Routes, 3)
		assert.Equal(t, "createAPet", s.Routes[1].Name)
	})

	t.Run("yaml", func(t *testing.T) {
		t.Setenv("OASTSGEN_FORMAT", "yaml")
		stdout, _, err := execute(t, "", "inspect", input)
		require.NoError(t, err)
		var s generator.Summary
		require.NoError(t, yaml.Unmarshal([]byte(stdout), &s))
		require.Len(t, s.Types, 2)
		assert.Equal(t, "Pet", s.Types[0].Name)
	})
}

func TestInspect_Issues(t *testing.T) {
	clearOASTSGENEnv(t)
	input := testutil.WriteTempFile(t, "broken.yaml", brokenYAML)

	stdout, _, err := execute(t, "", "inspect", input)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "document has 1 issue(s)")
	assert.Contains(t, stdout, "Issues (1):")
}

func TestInspect_InvalidFormat(t *testing.T) {
	clearOASTSGENEnv(t)
	_, _, err := execute(t, "", "inspect", "--format", "xml", "api.yaml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid format 'xml'")
}

func TestVersion(t *testing.T) {
	stdout, _, err := execute(t, "", "version")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(stdout, "oastsgen "))

	stdout, _, err = execute(t, "", "version", "--full")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Go Version:")
}
