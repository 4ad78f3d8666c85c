package resolver

import (
	"fmt"

	"github.com/erraggy/oasref/oaserrors"
	"github.com/erraggy/oasref/spec"
)

// ResolveSchema returns the schema a container holds or points at.
// Inline items are returned as-is without consulting the document. A
// reference is parsed as a SchemaReference and looked up in the document's
// schema dictionary; the entry found there must be an inline definition.
// For the property shape, the named property's own container is resolved
// with one more application of the same contract.
func ResolveSchema(ref *spec.ReferenceOr[spec.Schema], doc *spec.Document) (*spec.Schema, error) {
	if !ref.IsReference() {
		return ref.ItemValue(), nil
	}
	original := ref.RefString()

	parsed, err := ParseSchemaReference(original)
	if err != nil {
		return nil, err
	}

	schema, err := lookupSchema(original, parsed.Schema, doc)
	if err != nil {
		return nil, err
	}
	if !parsed.IsProperty() {
		return schema, nil
	}

	props := schema.PropertySchemas()
	if props == nil {
		return nil, oaserrors.SchemaShape(original, parsed.Schema,
			fmt.Sprintf("tried to resolve reference %s, but %s is not an object with properties", original, parsed.Schema))
	}
	property, ok := props[parsed.Property]
	if !ok || property == nil {
		return nil, oaserrors.SchemaShape(original, parsed.Schema,
			fmt.Sprintf("schema %s lacks property %s", parsed.Schema, parsed.Property))
	}
	// One further hop at most: the recursive call rejects a chained property
	// the same way the top-level lookup does.
	return ResolveSchema(property, doc)
}

// ResolveParameter returns the parameter a container holds or points at.
func ResolveParameter(ref *spec.ReferenceOr[spec.Parameter], doc *spec.Document) (*spec.Parameter, error) {
	if !ref.IsReference() {
		return ref.ItemValue(), nil
	}
	return resolveComponent(ref.RefString(), groupParameters, doc,
		func(c *spec.Components) map[string]*spec.ReferenceOr[spec.Parameter] { return c.Parameters })
}

// ResolveResponse returns the response a container holds or points at.
func ResolveResponse(ref *spec.ReferenceOr[spec.Response], doc *spec.Document) (*spec.Response, error) {
	if !ref.IsReference() {
		return ref.ItemValue(), nil
	}
	return resolveComponent(ref.RefString(), groupResponses, doc,
		func(c *spec.Components) map[string]*spec.ReferenceOr[spec.Response] { return c.Responses })
}

// ResolveRequestBody returns the request body a container holds or points at.
func ResolveRequestBody(ref *spec.ReferenceOr[spec.RequestBody], doc *spec.Document) (*spec.RequestBody, error) {
	if !ref.IsReference() {
		return ref.ItemValue(), nil
	}
	return resolveComponent(ref.RefString(), groupRequestBodies, doc,
		func(c *spec.Components) map[string]*spec.ReferenceOr[spec.RequestBody] { return c.RequestBodies })
}

// lookupSchema finds a named schema through the document's top-level schema
// accessor and requires it to be an inline definition.
func lookupSchema(reference, name string, doc *spec.Document) (*spec.Schema, error) {
	entry, ok := doc.Schemas()[name]
	if !ok || entry == nil {
		return nil, oaserrors.UnknownName(reference, groupSchemas, name)
	}
	if entry.IsReference() {
		return nil, oaserrors.Chained(reference, groupSchemas, entry.RefString())
	}
	return entry.ItemValue(), nil
}

// resolveComponent is the shared single-hop lookup for the flat component
// kinds: parse the name, require a components section, find the entry, and
// reject a chained reference.
func resolveComponent[T any](reference, group string, doc *spec.Document,
	dict func(*spec.Components) map[string]*spec.ReferenceOr[T]) (*T, error) {
	name, err := componentName(reference, group)
	if err != nil {
		return nil, err
	}
	if !doc.HasComponents() {
		return nil, oaserrors.MissingComponents(reference, group)
	}
	entry, ok := dict(doc.Components)[name]
	if !ok || entry == nil {
		return nil, oaserrors.UnknownName(reference, group, name)
	}
	if entry.IsReference() {
		return nil, oaserrors.Chained(reference, group, entry.RefString())
	}
	return entry.ItemValue(), nil
}
