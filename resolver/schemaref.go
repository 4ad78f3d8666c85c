package resolver

import (
	"fmt"
	"strings"

	"github.com/erraggy/oasref/oaserrors"
)

// SchemaReference is the structured form of a schema-scoped $ref.
// Two shapes exist: a named schema, or a named property of a named schema.
// Property is empty for the schema-only shape.
//
//	#/components/schemas/Account
//	#/components/schemas/Account/properties/name
type SchemaReference struct {
	Schema   string
	Property string
}

// IsProperty reports whether the reference addresses a schema property.
func (r SchemaReference) IsProperty() bool {
	return r.Property != ""
}

// String renders the canonical slash-delimited pointer for the reference.
// Parsing the result yields the same value back.
func (r SchemaReference) String() string {
	if r.Property != "" {
		return fmt.Sprintf("#/components/schemas/%s/properties/%s", r.Schema, r.Property)
	}
	return fmt.Sprintf("#/components/schemas/%s", r.Schema)
}

// ParseSchemaReference parses a schema-scoped $ref string. Only the two
// fixed shapes are accepted; anything else (wrong segment counts, wrong
// literal segments, empty names from stray slashes) fails with
// oaserrors.ErrMalformedRef echoing the input.
func ParseSchemaReference(reference string) (SchemaReference, error) {
	segments := strings.Split(reference, "/")
	switch {
	case len(segments) == 4 && isSchemaPrefix(segments) && segments[3] != "":
		return SchemaReference{Schema: segments[3]}, nil
	case len(segments) == 6 && isSchemaPrefix(segments) && segments[3] != "" &&
		segments[4] == "properties" && segments[5] != "":
		return SchemaReference{Schema: segments[3], Property: segments[5]}, nil
	}
	return SchemaReference{}, oaserrors.Malformed(reference, groupSchemas,
		"cannot be parsed as a schema reference")
}

func isSchemaPrefix(segments []string) bool {
	return segments[0] == "#" && segments[1] == "components" && segments[2] == "schemas"
}
