package generator

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"

	"github.com/erraggy/oastsgen/internal/sourceorder"
	"github.com/erraggy/oastsgen/oaserrors"
)

// supportedExtensions lists the accepted input file extensions.
var supportedExtensions = map[string]bool{
	".json": true,
	".yaml": true,
	".yml":  true,
}

// IsSupportedExtension reports whether path names a .json, .yaml or .yml file.
func IsSupportedExtension(path string) bool {
	return supportedExtensions[strings.ToLower(filepath.Ext(path))]
}

type input struct {
	name  string
	size  int64
	doc   *openapi3.T
	order *sourceorder.Index
}

func load(cfg *generateConfig) (*input, error) {
	switch {
	case cfg.parsed != nil:
		return &input{name: nameOr(cfg.sourceName, "<document>"), doc: cfg.parsed}, nil
	case cfg.filePath != nil:
		path := *cfg.filePath
		name := nameOr(cfg.sourceName, path)
		if !IsSupportedExtension(path) {
			return nil, &oaserrors.LoadError{
				Source:  name,
				Message: fmt.Sprintf("unsupported file extension %q (want .json, .yaml or .yml)", filepath.Ext(path)),
			}
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, &oaserrors.LoadError{Source: name, Cause: err}
		}
		return decode(name, data, cfg.logger)
	default:
		return decode(nameOr(cfg.sourceName, "<bytes>"), cfg.data, cfg.logger)
	}
}

// decode parses data with kin-openapi and indexes its key order. A document
// whose order cannot be indexed is still usable; its keys are sorted instead.
func decode(name string, data []byte, log Logger) (*input, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, &oaserrors.LoadError{Source: name, Message: "empty document"}
	}

	loader := openapi3.NewLoader()
	loader.IsExternalRefsAllowed = false
	doc, err := loader.LoadFromData(data)
	if err != nil {
		return nil, &oaserrors.LoadError{Source: name, Message: "invalid OpenAPI document", Cause: err}
	}
	if err := checkVersion(doc.OpenAPI); err != nil {
		return nil, &oaserrors.LoadError{Source: name, Message: err.Error()}
	}

	order, err := sourceorder.Parse(data)
	if err != nil {
		log.Warn("declaration order unavailable, falling back to sorted keys", "source", name, "error", err)
		order = nil
	}

	return &input{
		name:  name,
		size:  int64(len(data)),
		doc:   doc,
		order: order,
	}, nil
}

func checkVersion(v string) error {
	switch {
	case v == "":
		return fmt.Errorf("missing `openapi` version field")
	case strings.HasPrefix(v, "3."):
		return nil
	default:
		return fmt.Errorf("unsupported OpenAPI version %q (want 3.x)", v)
	}
}

func nameOr(name, fallback string) string {
	if name != "" {
		return name
	}
	return fallback
}
