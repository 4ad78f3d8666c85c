// Package oaserrors provides structured error types for oasref.
//
// These error types enable programmatic error handling via errors.Is() and
// errors.As(), allowing callers to distinguish between the different ways a
// $ref can fail to resolve.
//
// # Error Taxonomy
//
//   - ErrMalformedRef: the pointer string does not match any recognized shape
//   - ErrMissingComponents: the document has no components section
//   - ErrUnknownName: the parsed name is absent from the relevant dictionary
//   - ErrChainedRef: the entry found is itself a reference (chains are forbidden)
//   - ErrSchemaShape: a property pointer targets a schema without that property
//
// Every failure is a *ResolveError carrying the original pointer, the
// component group, and the offending name, so callers can render a precise
// message without re-parsing anything.
//
// # Usage with errors.Is
//
//	schema, err := resolver.ResolveSchema(ref, doc)
//	if err != nil {
//	    if errors.Is(err, oaserrors.ErrChainedRef) {
//	        // the components entry pointed at another reference
//	    }
//	}
package oaserrors

import (
	"errors"
)

// Sentinel errors for use with errors.Is().
// These allow quick checks without type assertions.
var (
	// ErrResolve indicates any reference resolution failure.
	ErrResolve = errors.New("resolve error")

	// ErrMalformedRef indicates a reference string that could not be parsed.
	ErrMalformedRef = errors.New("malformed reference")

	// ErrMissingComponents indicates the document has no components section.
	ErrMissingComponents = errors.New("no components in spec")

	// ErrUnknownName indicates the referenced name is not defined.
	ErrUnknownName = errors.New("unknown component name")

	// ErrChainedRef indicates the referenced entry is itself a reference.
	ErrChainedRef = errors.New("chained reference")

	// ErrSchemaShape indicates a property reference into a schema that
	// lacks a properties dictionary or the named property.
	ErrSchemaShape = errors.New("schema shape mismatch")
)

// ResolveError represents a failure to resolve a $ref against a document.
// Exactly one sentinel from this package is recorded in Kind; Is() matches
// both that sentinel and ErrResolve.
type ResolveError struct {
	// Ref is the original reference string that failed to resolve
	Ref string
	// Group is the component group being resolved: "schemas", "parameters",
	// "responses", or "requestBodies"
	Group string
	// Name is the component (or property) name involved, when known
	Name string
	// TargetRef is the reference the entry pointed at, for chained references
	TargetRef string
	// Kind is the sentinel classifying this failure (ErrMalformedRef etc.)
	Kind error
	// Message provides additional context about the failure
	Message string
	// Cause is the underlying error, if any
	Cause error
}

// Error returns a human-readable error message.
func (e *ResolveError) Error() string {
	msg := "resolve error"
	if e.Kind != nil {
		msg = e.Kind.Error()
	}
	if e.Ref != "" {
		msg += ": " + e.Ref
	}
	if e.TargetRef != "" {
		msg += " refers to " + e.TargetRef
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *ResolveError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error. Every ResolveError matches
// ErrResolve; the specific sentinel stored in Kind also matches.
func (e *ResolveError) Is(target error) bool {
	if target == ErrResolve {
		return true
	}
	return e.Kind != nil && target == e.Kind
}

// Malformed creates a ResolveError for an unparseable reference string.
func Malformed(ref, group, message string) *ResolveError {
	return &ResolveError{Ref: ref, Group: group, Kind: ErrMalformedRef, Message: message}
}

// MissingComponents creates a ResolveError for a document without a
// components section.
func MissingComponents(ref, group string) *ResolveError {
	return &ResolveError{Ref: ref, Group: group, Kind: ErrMissingComponents}
}

// UnknownName creates a ResolveError for a name absent from its dictionary.
func UnknownName(ref, group, name string) *ResolveError {
	return &ResolveError{
		Ref:     ref,
		Group:   group,
		Name:    name,
		Kind:    ErrUnknownName,
		Message: "not found in OpenAPI spec",
	}
}

// Chained creates a ResolveError for an entry that is itself a reference.
func Chained(ref, group, targetRef string) *ResolveError {
	return &ResolveError{
		Ref:       ref,
		Group:     group,
		TargetRef: targetRef,
		Kind:      ErrChainedRef,
		Message:   "references must refer directly to the definition; chains are not permitted",
	}
}

// SchemaShape creates a ResolveError for a property reference into a schema
// that cannot satisfy it.
func SchemaShape(ref, schema, message string) *ResolveError {
	return &ResolveError{
		Ref:     ref,
		Group:   "schemas",
		Name:    schema,
		Kind:    ErrSchemaShape,
		Message: message,
	}
}
