// Package ir defines the intermediate representation produced by the
// extractor and consumed by the emitter.
//
// A Document holds the ordered list of routes, the registry of named types,
// the registry of security schemes and the optional document-wide security
// requirement. Documents are built once and never mutated afterward.
//
// # Types
//
// Type is a closed union implemented by Any, Number, String, Boolean, Enum,
// Array, Object, Union and Optional. A TypeRef points either at an inline
// Type or at a name in the Types registry:
//
//	pet := ir.Inline(ir.Object{Fields: []ir.Field{
//		{Name: "id", Type: ir.Inline(ir.Number{})},
//		{Name: "tag", Type: ir.MakeOptional(ir.Inline(ir.String{}))},
//	}})
//	list := ir.Inline(ir.Array{Elem: ir.Named("Pet")})
//
// Switches over Type use a default branch that panics, so a new node kind
// fails loudly instead of being skipped.
package ir
