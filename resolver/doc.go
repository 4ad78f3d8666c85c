// Package resolver performs single-hop $ref resolution against an OpenAPI document.
//
// Each resolve operation takes a ReferenceOr container and the document that
// owns it, and returns a pointer into the document (never a copy). Inline
// items are returned immediately without touching the document. Reference
// variants are parsed, looked up in the appropriate components dictionary,
// and required to name an inline definition: an entry that is itself a
// reference fails with oaserrors.ErrChainedRef rather than being followed.
//
// Schema references support one extra shape, a pointer to a named property
// of a named schema:
//
//	#/components/schemas/Account/properties/name
//
// The property's own container is resolved with one more application of the
// same contract, so a property may itself be a reference to another schema,
// but never a chain beyond that.
//
// Resolution never mutates the document. Results borrow from it, so the
// document must outlive anything returned here. Concurrent resolution over a
// shared document is safe as long as no goroutine mutates it.
package resolver
