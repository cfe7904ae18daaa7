package generator

import (
	"fmt"
	"time"

	"github.com/getkin/kin-openapi/openapi3"

	"github.com/erraggy/oastsgen/emitter"
	"github.com/erraggy/oastsgen/extractor"
	"github.com/erraggy/oastsgen/internal/issues"
	"github.com/erraggy/oastsgen/ir"
	"github.com/erraggy/oastsgen/oaserrors"
)

// Issue is a single diagnostic raised while extracting the document.
type Issue = issues.Issue

// Logger is the structured logger used by the pipeline.
type Logger = extractor.Logger

// GenerateResult contains the results of generating a client from an OpenAPI document
type GenerateResult struct {
	// SourceName identifies the input in messages (file path, or the name set by WithSourceName)
	SourceName string
	// SourceSize is the size of the raw input in bytes (0 for a pre-parsed document)
	SourceSize int64
	// Content is the generated TypeScript source. Empty unless Success is true.
	Content string
	// Document is the extracted intermediate representation, partial when Success is false
	Document *ir.Document
	// Issues lists every diagnostic in the order it was raised
	Issues []Issue
	// Success is true when extraction raised no issues
	Success bool
	// TypeCount is the number of emitted type declarations
	TypeCount int
	// SchemeCount is the number of registered security schemes
	SchemeCount int
	// RouteCount is the number of extracted routes
	RouteCount int
	// DroppedRoutes is the number of operations that produced no route
	DroppedRoutes int
	// LoadTime is the time taken to load the source data
	LoadTime time.Duration
	// ExtractTime is the time taken to build the intermediate representation
	ExtractTime time.Duration
	// EmitTime is the time taken to render the client
	EmitTime time.Duration
}

// HasIssues returns true if any diagnostic was raised
func (r *GenerateResult) HasIssues() bool {
	return len(r.Issues) > 0
}

// IssueStrings renders every issue with Issue.String.
func (r *GenerateResult) IssueStrings() []string {
	out := make([]string, len(r.Issues))
	for i, issue := range r.Issues {
		out[i] = issue.String()
	}
	return out
}

// Err returns an *oaserrors.ExtractionError when the run was not
// successful, nil otherwise.
func (r *GenerateResult) Err() error {
	if r.Success {
		return nil
	}
	return &oaserrors.ExtractionError{Source: r.SourceName, Issues: r.IssueStrings()}
}

// Option is a function that configures a generate operation
type Option func(*generateConfig) error

// generateConfig holds configuration for a generate operation
type generateConfig struct {
	// Input source (exactly one must be set)
	filePath *string
	data     []byte
	parsed   *openapi3.T

	sourceName  string
	runtime     emitter.Runtime
	concurrency int
	logger      Logger
}

// GenerateWithOptions generates a client using functional options.
// This provides a flexible, extensible API that combines input source selection
// and configuration in a single function call.
//
// The returned error is reserved for invalid options and unloadable input;
// diagnostics about the document are reported on the result.
//
// Example:
//
//	result, err := generator.GenerateWithOptions(
//	    generator.WithFilePath("openapi.yaml"),
//	    generator.WithConcurrency(4),
//	)
func GenerateWithOptions(opts ...Option) (*GenerateResult, error) {
	cfg, err := applyOptions(opts...)
	if err != nil {
		return nil, fmt.Errorf("generator: invalid options: %w", err)
	}
	log := cfg.logger

	start := time.Now()
	in, err := load(cfg)
	if err != nil {
		return nil, fmt.Errorf("generator: %w", err)
	}
	result := &GenerateResult{
		SourceName: in.name,
		SourceSize: in.size,
		LoadTime:   time.Since(start),
	}
	log.Debug("document loaded", "source", in.name, "bytes", in.size, "ordered", in.order != nil)

	start = time.Now()
	extracted, err := extractor.Extract(in.doc,
		extractor.WithLogger(log.With("source", in.name)),
		extractor.WithConcurrency(cfg.concurrency),
		extractor.WithSourceOrder(in.order),
	)
	if err != nil {
		return nil, fmt.Errorf("generator: %w", err)
	}
	result.ExtractTime = time.Since(start)
	result.Document = extracted.Document
	result.Issues = extracted.Issues
	result.Success = extracted.Success
	result.TypeCount = extracted.TypeCount
	result.SchemeCount = extracted.SchemeCount
	result.RouteCount = extracted.RouteCount
	result.DroppedRoutes = extracted.DroppedRoutes

	if !result.Success {
		log.Warn("extraction raised issues", "source", in.name, "issues", len(result.Issues))
		return result, nil
	}

	start = time.Now()
	result.Content = emitter.Emit(extracted.Document, emitter.WithRuntime(cfg.runtime))
	result.EmitTime = time.Since(start)
	log.Info("client generated",
		"source", in.name,
		"routes", result.RouteCount,
		"types", result.TypeCount,
		"bytes", len(result.Content))

	return result, nil
}

// Generate is a convenience wrapper for GenerateWithOptions(WithFilePath(path)).
func Generate(path string) (*GenerateResult, error) {
	return GenerateWithOptions(WithFilePath(path))
}

// applyOptions applies option functions and validates configuration
func applyOptions(opts ...Option) (*generateConfig, error) {
	cfg := &generateConfig{
		runtime:     emitter.RuntimeGlobal,
		concurrency: 1,
		logger:      extractor.NopLogger{},
	}

	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}

	// Validate exactly one input source is specified
	sourceCount := 0
	if cfg.filePath != nil {
		sourceCount++
	}
	if cfg.data != nil {
		sourceCount++
	}
	if cfg.parsed != nil {
		sourceCount++
	}

	if sourceCount == 0 {
		return nil, &oaserrors.ConfigError{
			Option:  "input",
			Message: "use WithFilePath, WithBytes or WithDocument",
			Cause:   oaserrors.ErrNoInput,
		}
	}
	if sourceCount > 1 {
		return nil, &oaserrors.ConfigError{Option: "input", Message: "must specify exactly one input source"}
	}

	return cfg, nil
}

// WithFilePath specifies a .json, .yaml or .yml file as the input source
func WithFilePath(path string) Option {
	return func(cfg *generateConfig) error {
		if path == "" {
			return &oaserrors.ConfigError{Option: "filePath", Message: "cannot be empty"}
		}
		cfg.filePath = &path
		return nil
	}
}

// WithBytes specifies raw JSON or YAML document text as the input source
func WithBytes(data []byte) Option {
	return func(cfg *generateConfig) error {
		if data == nil {
			data = []byte{}
		}
		cfg.data = data
		return nil
	}
}

// WithDocument specifies an already decoded document as the input source.
// Declaration order cannot be recovered, so names, paths and status codes
// are sorted.
func WithDocument(doc *openapi3.T) Option {
	return func(cfg *generateConfig) error {
		if doc == nil {
			return &oaserrors.ConfigError{Option: "document", Message: "cannot be nil"}
		}
		cfg.parsed = doc
		return nil
	}
}

// WithSourceName sets the name used for the input in logs and errors.
// Default: the file path, or "<bytes>" / "<document>"
func WithSourceName(name string) Option {
	return func(cfg *generateConfig) error {
		cfg.sourceName = name
		return nil
	}
}

// WithRuntime selects the emitted runtime style
// Default: emitter.RuntimeGlobal
func WithRuntime(r emitter.Runtime) Option {
	return func(cfg *generateConfig) error {
		if r != emitter.RuntimeGlobal && r != emitter.RuntimeConfig {
			return &oaserrors.ConfigError{Option: "runtime", Value: r}
		}
		cfg.runtime = r
		return nil
	}
}

// WithConcurrency sets how many routes are extracted in parallel
// Default: 1
func WithConcurrency(n int) Option {
	return func(cfg *generateConfig) error {
		if n < 1 {
			return &oaserrors.ConfigError{Option: "concurrency", Value: n, Message: "must be at least 1"}
		}
		cfg.concurrency = n
		return nil
	}
}

// WithLogger sets the structured logger for the pipeline
// Default: extractor.NopLogger
func WithLogger(l Logger) Option {
	return func(cfg *generateConfig) error {
		if l == nil {
			return &oaserrors.ConfigError{Option: "logger", Message: "cannot be nil"}
		}
		cfg.logger = l
		return nil
	}
}
