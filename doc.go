// Package oasref provides reference resolution for OpenAPI Specification (OAS) documents.
//
// OpenAPI documents may declare any reusable object either inline or as a $ref
// pointer into the document's components section. oasref lets callers treat
// both forms uniformly: the spec package models documents with a generic
// ReferenceOr container, and the resolver package performs the single
// dereference step that turns a pointer into the component it names.
//
// # Overview
//
// The library consists of three primary packages:
//
//   - spec: the OAS 3.x document model, including the ReferenceOr container
//   - resolver: schema reference parsing and per-kind resolution
//   - oaserrors: structured error types for resolution failures
//
// # Quick Start
//
// Load a document and resolve a reference:
//
//	doc, err := spec.LoadFile("openapi.yaml")
//	if err != nil {
//		log.Fatal(err)
//	}
//	ref := spec.NewReference[spec.Schema]("#/components/schemas/Pet")
//	pet, err := resolver.ResolveSchema(ref, doc)
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Println(pet.Type)
//
// Resolution is a single hop: a components entry that is itself a reference
// is rejected rather than followed. Schema references additionally support
// pointing at a named property of a named schema, for example
// #/components/schemas/Account/properties/name.
//
// # Error Handling
//
// All resolution failures are returned as *oaserrors.ResolveError values that
// carry the original pointer and enough context to render a precise message.
// Use errors.Is with the oaserrors sentinels to distinguish failure kinds:
//
//	if errors.Is(err, oaserrors.ErrChainedRef) {
//		// the referenced entry was itself a $ref
//	}
package oasref
