package extractor

import (
	"errors"
	"fmt"

	"github.com/erraggy/oastsgen/internal/issues"
	"github.com/erraggy/oastsgen/internal/sourceorder"
	"github.com/erraggy/oastsgen/ir"
	"github.com/getkin/kin-openapi/openapi3"
	"golang.org/x/sync/errgroup"
)

// ErrNilDocument is returned when Extract is called without a document.
var ErrNilDocument = errors.New("extractor: nil document")

// Result contains the intermediate representation and every issue found
// while building it.
type Result struct {
	// Document is the extracted representation. It is partial when Success is false.
	Document *ir.Document
	// Issues lists the diagnostics in the order they were raised
	Issues []issues.Issue
	// Success is true when no issues were raised
	Success bool
	// TypeCount is the number of registered types
	TypeCount int
	// SchemeCount is the number of registered security schemes
	SchemeCount int
	// RouteCount is the number of extracted routes
	RouteCount int
	// DroppedRoutes is the number of operations that produced no route
	DroppedRoutes int
}

type config struct {
	logger      Logger
	concurrency int
	order       *sourceorder.Index
}

// Option is a function that configures an extraction run.
type Option func(*config) error

// WithLogger sets the logger used during extraction.
func WithLogger(l Logger) Option {
	return func(cfg *config) error {
		if l == nil {
			return fmt.Errorf("extractor: logger cannot be nil")
		}
		cfg.logger = l
		return nil
	}
}

// WithConcurrency sets how many routes are extracted in parallel.
// Output is identical for every value.
func WithConcurrency(n int) Option {
	return func(cfg *config) error {
		if n < 1 {
			return fmt.Errorf("extractor: concurrency must be at least 1, got %d", n)
		}
		cfg.concurrency = n
		return nil
	}
}

// WithSourceOrder supplies the raw-text index used to keep declaration order.
// Without it, names and paths are sorted.
func WithSourceOrder(ix *sourceorder.Index) Option {
	return func(cfg *config) error {
		cfg.order = ix
		return nil
	}
}

// Extract resolves doc into the intermediate representation.
//
// Reusable schemas and security schemes are registered first, in declaration
// order. Routes are then extracted against the frozen registries. Issues never
// abort the run; the returned error is reserved for unusable input.
func Extract(doc *openapi3.T, opts ...Option) (*Result, error) {
	if doc == nil {
		return nil, ErrNilDocument
	}
	cfg := &config{logger: NopLogger{}, concurrency: 1}
	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}

	out := ir.NewDocument()
	diag := issues.NewCollector()

	var components openapi3.Components
	if doc.Components != nil {
		components = *doc.Components
	}

	types := &resolver{
		schemas:    components.Schemas,
		order:      cfg.order,
		diag:       diag,
		types:      out.Types,
		inProgress: make(map[string]bool),
		logger:     cfg.logger,
	}
	security := &securityResolver{
		schemes:  out.Schemes,
		declared: make(map[string]bool),
		order:    cfg.order,
		logger:   cfg.logger,
	}

	registerComponents(types, security, components, diag)
	out.Security = security.resolve(doc.Security, location{"security"}, diag)

	jobs := collectRoutes(doc, cfg.order)
	routes, dropped := extractRoutes(jobs, types, security, out.Security, diag, cfg.concurrency)
	out.Routes = routes

	cfg.logger.Info("extraction complete",
		"types", out.Types.Len(),
		"schemes", out.Schemes.Len(),
		"routes", len(routes),
		"dropped", dropped,
		"issues", diag.Len())

	return &Result{
		Document:      out,
		Issues:        diag.Issues(),
		Success:       diag.Len() == 0,
		TypeCount:     out.Types.Len(),
		SchemeCount:   out.Schemes.Len(),
		RouteCount:    len(routes),
		DroppedRoutes: dropped,
	}, nil
}

// registerComponents is the only phase allowed to add registry entries.
func registerComponents(types *resolver, security *securityResolver, components openapi3.Components, diag *issues.Collector) {
	pop := diag.Push("components")
	defer pop()

	types.canInsert = true
	for _, name := range ordered(types.order, components.Schemas, location{"components", "schemas"}, nil) {
		if !types.types.Has(name) {
			types.define(name)
		}
	}
	types.canInsert = false

	security.registerAll(components.SecuritySchemes, diag)
}

// collectRoutes lists every operation by path then method.
func collectRoutes(doc *openapi3.T, order *sourceorder.Index) []routeJob {
	if doc.Paths == nil {
		return nil
	}
	paths := doc.Paths.Map()
	var jobs []routeJob
	for _, path := range ordered(order, paths, location{"paths"}, nil) {
		item := paths[path]
		if item == nil {
			continue
		}
		ops := make(map[string]*openapi3.Operation)
		for key, op := range item.Operations() {
			if m, ok := ir.ParseMethod(key); ok && op != nil {
				ops[m.String()] = op
			}
		}
		for _, key := range ordered(order, ops, location{"paths", path}, methodLess) {
			m, _ := ir.ParseMethod(key)
			jobs = append(jobs, routeJob{
				path:   path,
				method: m,
				item:   item,
				op:     ops[key],
				at:     location{"paths", path, key},
			})
		}
	}
	return jobs
}

func methodLess(a, b string) bool {
	ma, _ := ir.ParseMethod(a)
	mb, _ := ir.ParseMethod(b)
	return ma < mb
}

// extractRoutes runs every job, in parallel when concurrency allows, and
// merges routes and issues back in job order. A route whose name was already
// taken is dropped with a duplicate-keys issue.
func extractRoutes(jobs []routeJob, types *resolver, security *securityResolver, fallback *ir.Security, diag *issues.Collector, concurrency int) ([]ir.Route, int) {
	type outcome struct {
		route ir.Route
		ok    bool
		diag  *issues.Collector
	}
	results := make([]outcome, len(jobs))

	run := func(i int) {
		local := diag.Fork()
		x := &routeExtractor{
			types:    types.withCollector(local),
			security: security,
			fallback: fallback,
			diag:     local,
		}
		route, ok := x.extract(jobs[i])
		results[i] = outcome{route: route, ok: ok, diag: local}
	}

	if concurrency <= 1 || len(jobs) < 2 {
		for i := range jobs {
			run(i)
		}
	} else {
		var g errgroup.Group
		g.SetLimit(concurrency)
		for i := range jobs {
			g.Go(func() error {
				run(i)
				return nil
			})
		}
		_ = g.Wait()
	}

	var routes []ir.Route
	names := make(map[string]bool)
	dropped := 0
	for i, res := range results {
		diag.Merge(res.diag)
		if !res.ok {
			dropped++
			types.logger.Debug("dropped route", KeyMethod, jobs[i].method.String(), KeyPath, jobs[i].path)
			continue
		}
		if names[res.route.Name] {
			pop := diag.Push(fmt.Sprintf("%s %s", jobs[i].method, jobs[i].path))
			diag.DuplicateKeys([]string{res.route.Name})
			pop()
			dropped++
			continue
		}
		names[res.route.Name] = true
		routes = append(routes, res.route)
	}
	return routes, dropped
}
