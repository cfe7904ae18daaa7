// Package oaserrors provides structured error types for oastsgen.
//
// Import path: github.com/erraggy/oastsgen/oaserrors
//
// Diagnostics about the document itself (unsupported constructs, unresolved
// references) are reported as issues on the generation result. The types in
// this package cover the failures around them: input that cannot be loaded,
// invalid options, and a run whose issues prevented any output.
//
// # Error Types
//
//   - [LoadError]: the input could not be read or parsed
//   - [ExtractionError]: diagnostics were raised, no client was generated
//   - [ConfigError]: invalid options or a missing input source
//
// # Sentinel Errors
//
//   - [ErrLoad]: Matches any [LoadError]
//   - [ErrExtraction]: Matches any [ExtractionError]
//   - [ErrConfig]: Matches any [ConfigError]
//   - [ErrNoInput]: Matches a [ConfigError] caused by a missing input
//
// # Usage Examples
//
//	result, err := generator.GenerateWithOptions(generator.WithFilePath("api.yaml"))
//	if errors.Is(err, oaserrors.ErrLoad) {
//	    // unreadable or malformed input
//	}
//
//	if err := result.WriteFile("client.ts"); err != nil {
//	    var extErr *oaserrors.ExtractionError
//	    if errors.As(err, &extErr) {
//	        for _, issue := range extErr.Issues {
//	            fmt.Println(issue)
//	        }
//	    }
//	}
package oaserrors
