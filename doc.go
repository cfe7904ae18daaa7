// Package oastsgen generates dependency-free TypeScript HTTP clients from
// OpenAPI 3 documents.
//
// A run has three stages, each in its own package:
//
//   - extractor: resolves component schemas, security schemes and
//     operations into an intermediate representation (package ir),
//     collecting diagnostics instead of stopping at the first problem
//   - emitter: renders the representation as TypeScript: type
//     declarations, a runtime init function, then one async function per route
//   - generator: loads the document from a file, bytes or an already
//     parsed *openapi3.T and drives the other two
//
// # Quick Start
//
//	result, err := generator.GenerateWithOptions(
//		generator.WithFilePath("openapi.yaml"),
//		generator.WithRuntime(emitter.RuntimeGlobal),
//	)
//	if err != nil {
//		log.Fatal(err)
//	}
//	if !result.Success {
//		for _, issue := range result.Issues {
//			fmt.Fprintln(os.Stderr, issue)
//		}
//		os.Exit(1)
//	}
//	if err := result.WriteFile("client.ts"); err != nil {
//		log.Fatal(err)
//	}
//
// # Diagnostics
//
// Every problem found in the document is reported as an issue of the form
//
//	Error in components.Pet: field `items` is required
//
// optionally followed by the operation it belongs to. A document with any
// issue produces no output.
//
// # Command line
//
// The oastsgen binary wraps the generator:
//
//	oastsgen generate openapi.yaml client.ts
//	oastsgen inspect openapi.yaml --format yaml
//	oastsgen mcp
package oastsgen
