// Package naming provides the case conversion and identifier rules used when
// turning OpenAPI names into TypeScript names.
//
// Functions include SummaryToCamelCase for deriving route names from operation
// summaries, and IsIdentifier, ToIdentifier and ToTypeName for keeping emitted
// bindings valid.
//
// As an internal package, these functions are not part of the public API
// and may change without notice.
package naming
