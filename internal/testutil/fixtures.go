// Package testutil provides test utilities and fixtures for unit tests.
package testutil

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/getkin/kin-openapi/openapi3"
	"golang.org/x/tools/txtar"

	"github.com/erraggy/oastsgen/internal/sourceorder"
)

// PetstoreYAML is a small document exercising schemas, parameters, bodies,
// responses and header API-key security.
const PetstoreYAML = `openapi: "3.0.3"
info:
  title: Pet Store
  version: "1.0.0"
security:
  - ApiKey: []
paths:
  /pets:
    get:
      operationId: listPets
      description: "  List all pets.  "
      parameters:
        - name: limit
          in: query
          schema:
            type: integer
        - name: tags
          in: query
          schema:
            type: array
            items:
              type: string
      responses:
        "200":
          description: A list of pets
          content:
            application/json:
              schema:
                type: array
                items:
                  $ref: "#/components/schemas/Pet"
        default:
          description: Unexpected error
          content:
            application/json:
              schema:
                $ref: "#/components/schemas/Error"
    post:
      summary: Create a pet
      requestBody:
        content:
          application/json:
            schema:
              $ref: "#/components/schemas/Pet"
      responses:
        "201":
          description: Created
  /pets/{petId}:
    parameters:
      - name: petId
        in: path
        required: true
        schema:
          type: string
    get:
      operationId: showPetById
      parameters:
        - name: X-Request-Id
          in: header
          required: true
          schema:
            type: string
      responses:
        "200":
          description: The pet
          content:
            application/json:
              schema:
                $ref: "#/components/schemas/Pet"
components:
  securitySchemes:
    ApiKey:
      type: apiKey
      in: header
      name: X-Api-Key
  schemas:
    Pet:
      type: object
      required:
        - id
        - name
      properties:
        id:
          type: integer
        name:
          type: string
        status:
          type: string
          enum: [available, pending, sold]
    Error:
      type: object
      required: [code]
      properties:
        code:
          type: integer
        message:
          type: string
`

// LoadYAML loads an OpenAPI document from src and indexes its key order.
func LoadYAML(t *testing.T, src string) (*openapi3.T, *sourceorder.Index) {
	t.Helper()

	loader := openapi3.NewLoader()
	doc, err := loader.LoadFromData([]byte(src))
	if err != nil {
		t.Fatalf("Failed to load document: %v", err)
	}
	ix, err := sourceorder.Parse([]byte(src))
	if err != nil {
		t.Fatalf("Failed to index document: %v", err)
	}
	return doc, ix
}

// WriteTempFile writes content to name inside a temporary directory.
// Returns the path to the file.
// The file is automatically cleaned up when the test completes (via t.TempDir).
func WriteTempFile(t *testing.T, name, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatalf("Failed to write temporary file: %v", err)
	}
	return path
}

// Golden is one txtar fixture: an input document and the expected outputs.
type Golden struct {
	Name  string
	Files map[string]string
}

// File returns the content of the named archive member with surrounding
// whitespace removed.
func (g Golden) File(name string) (string, bool) {
	content, ok := g.Files[name]
	return strings.TrimSpace(content), ok
}

// LoadGoldens parses every .txtar archive in dir.
func LoadGoldens(t *testing.T, dir string) []Golden {
	t.Helper()

	paths, err := filepath.Glob(filepath.Join(dir, "*.txtar"))
	if err != nil {
		t.Fatalf("Failed to list fixtures: %v", err)
	}
	goldens := make([]Golden, 0, len(paths))
	for _, path := range paths {
		ar, err := txtar.ParseFile(path)
		if err != nil {
			t.Fatalf("Failed to parse %s: %v", path, err)
		}
		g := Golden{
			Name:  strings.TrimSuffix(filepath.Base(path), ".txtar"),
			Files: make(map[string]string, len(ar.Files)),
		}
		for _, f := range ar.Files {
			g.Files[f.Name] = string(f.Data)
		}
		goldens = append(goldens, g)
	}
	return goldens
}
