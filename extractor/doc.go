// Package extractor resolves a parsed OpenAPI 3 document into the client
// intermediate representation defined by package ir.
//
// # Quick Start
//
//	loader := openapi3.NewLoader()
//	doc, err := loader.LoadFromFile("api.yaml")
//	if err != nil {
//		log.Fatal(err)
//	}
//	result, err := extractor.Extract(doc)
//	if err != nil {
//		log.Fatal(err)
//	}
//	if !result.Success {
//		for _, issue := range result.Issues {
//			fmt.Fprintln(os.Stderr, issue)
//		}
//	}
//
// # Phases
//
// Component schemas are resolved first, in declaration order, and registered
// under their names; the first registration of a name wins. Header API-key
// security schemes are registered next. Routes are extracted last, one per
// (path, method), against the now read-only registries; WithConcurrency runs
// that phase in parallel without changing the output.
//
// # Issues
//
// Problems are recorded as issues scoped by a dotted path such as
// "get /widgets.parameters.id" and never stop the run. A failing parameter
// drops its whole route; a failing property, request entry or response entry
// drops only itself. Result.Success is true only when no issue was raised.
//
// # Declaration order
//
// kin-openapi keeps mappings in Go maps. Pass WithSourceOrder with an index
// built from the raw document to keep the order in which schemas, properties,
// paths, methods, content types and status codes were written; otherwise they
// are sorted.
package extractor
