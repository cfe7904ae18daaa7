// Package generator turns an OpenAPI 3 document into a TypeScript client.
//
// The pipeline has three stages, each timed on the result:
//
//  1. Load: the document is decoded with kin-openapi and, when raw text is
//     available, indexed so declaration order survives decoding.
//  2. Extract: reusable schemas and security schemes are registered, then
//     every operation becomes a route (see package extractor).
//  3. Emit: the intermediate representation is rendered (see package emitter).
//
// Diagnostics never abort the pipeline. A run with any issue has Success set
// to false, carries no Content, and refuses to write a file.
//
// # Usage
//
//	result, err := generator.GenerateWithOptions(
//	    generator.WithFilePath("openapi.yaml"),
//	    generator.WithRuntime(emitter.RuntimeConfig),
//	)
//	if err != nil {
//	    return err
//	}
//	for _, issue := range result.Issues {
//	    fmt.Fprintln(os.Stderr, issue)
//	}
//	if err := result.WriteFile("client.ts"); err != nil {
//	    return err
//	}
package generator
