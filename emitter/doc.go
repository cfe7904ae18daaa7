// Package emitter renders an ir.Document as a TypeScript client module.
//
// Rendering is a single depth-first pass that appends tokens to a buffer.
// Every token is followed by one space when the buffer is flattened, so the
// output is deterministic but not pretty-printed; run a formatter over the
// result if it is meant for humans.
//
// A module contains, in order:
//
//   - one `export type` declaration per registered type
//   - the runtime initialization (`init`) built from the security schemes
//   - one exported async function per route
//
// # Runtime styles
//
// RuntimeGlobal keeps the base URL and auth headers in module-level bindings
// that init assigns. RuntimeConfig emits a ClientConfig interface instead:
// init returns a config value and every route takes it as its first
// argument.
//
//	src := emitter.Emit(doc, emitter.WithRuntime(emitter.RuntimeConfig))
package emitter
