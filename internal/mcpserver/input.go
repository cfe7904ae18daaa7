package mcpserver

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/erraggy/oastsgen"
	"github.com/erraggy/oastsgen/generator"
)

// specInput represents the three ways a document can be provided to a tool.
// Exactly one of File, URL, or Content must be set.
type specInput struct {
	File    string `json:"file,omitempty"    jsonschema:"Path to an OpenAPI 3 document on disk (.json, .yaml or .yml)"`
	URL     string `json:"url,omitempty"     jsonschema:"http or https URL to fetch an OpenAPI 3 document from"`
	Content string `json:"content,omitempty" jsonschema:"Inline OpenAPI 3 document content (JSON or YAML)"`
}

// options returns the generator options that load the document.
func (s specInput) options(ctx context.Context) ([]generator.Option, error) {
	count := 0
	for _, v := range []string{s.File, s.URL, s.Content} {
		if v != "" {
			count++
		}
	}
	if count != 1 {
		return nil, fmt.Errorf("exactly one of file, url, or content must be provided (got %d)", count)
	}

	switch {
	case s.File != "":
		return []generator.Option{generator.WithFilePath(s.File)}, nil
	case s.URL != "":
		data, err := fetch(ctx, s.URL)
		if err != nil {
			return nil, err
		}
		return []generator.Option{generator.WithBytes(data), generator.WithSourceName(s.URL)}, nil
	default:
		if int64(len(s.Content)) > cfg.MaxInputSize {
			return nil, fmt.Errorf("inline content size %d bytes exceeds maximum %d bytes; use file input instead, or set OASTSGEN_MCP_MAX_INPUT_SIZE to increase",
				len(s.Content), cfg.MaxInputSize)
		}
		return []generator.Option{generator.WithBytes([]byte(s.Content)), generator.WithSourceName("<content>")}, nil
	}
}

// fetch downloads the document at rawURL, up to cfg.MaxInputSize bytes.
func fetch(ctx context.Context, rawURL string) ([]byte, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return nil, fmt.Errorf("invalid url: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("unsupported url scheme %q (want http or https)", u.Scheme)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("User-Agent", oastsgen.UserAgent())
	req.Header.Set("Accept", "application/json, application/yaml;q=0.9, */*;q=0.5")

	resp, err := httpClient().Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching %s: %w", u.Redacted(), err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("fetching %s: unexpected status %s", u.Redacted(), resp.Status)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, cfg.MaxInputSize+1))
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", u.Redacted(), err)
	}
	if int64(len(data)) > cfg.MaxInputSize {
		return nil, fmt.Errorf("document at %s exceeds maximum %d bytes", u.Redacted(), cfg.MaxInputSize)
	}
	return data, nil
}
