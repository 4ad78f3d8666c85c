// Package spec models OpenAPI Specification 3.x documents for reference resolution.
//
// Any reusable object in an OAS document may be declared inline or referenced
// via a $ref pointer into the components section. The generic ReferenceOr
// container captures that choice as a closed two-variant value: either a
// pointer string or a concrete item. Model types carry ReferenceOr fields
// everywhere the format allows a $ref, so documents round-trip through YAML
// and JSON without losing the distinction.
//
// # Quick Start
//
// Load a document from a file:
//
//	doc, err := spec.LoadFile("openapi.yaml")
//	if err != nil {
//		log.Fatal(err)
//	}
//	for name, schema := range doc.Schemas() {
//		fmt.Println(name, schema.IsReference())
//	}
//
// Construct containers directly:
//
//	inline := spec.NewItem(spec.Schema{Type: "string"})
//	byRef := spec.NewSchemaReference("Pet") // #/components/schemas/Pet
//
// The package performs no resolution itself; see the resolver package for
// turning a reference into the component it names.
package spec
