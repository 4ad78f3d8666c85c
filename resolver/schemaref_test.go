package resolver

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/erraggy/oasref/oaserrors"
)

func TestParseSchemaReference(t *testing.T) {
	t.Run("schema shape", func(t *testing.T) {
		ref, err := ParseSchemaReference("#/components/schemas/Pet")
		require.NoError(t, err)
		assert.Equal(t, SchemaReference{Schema: "Pet"}, ref)
		assert.False(t, ref.IsProperty())
	})

	t.Run("property shape", func(t *testing.T) {
		ref, err := ParseSchemaReference("#/components/schemas/Account/properties/name")
		require.NoError(t, err)
		assert.Equal(t, SchemaReference{Schema: "Account", Property: "name"}, ref)
		assert.True(t, ref.IsProperty())
	})

	t.Run("rejects malformed references", func(t *testing.T) {
		cases := []string{
			"",
			"Pet",
			"#/components/schemas",
			"#/components/schemas/",
			"#/components/schemas/Pet/",
			"#/components/schemas/Pet/properties",
			"#/components/schemas/Pet/properties/",
			"#/components/schemas//properties/name",
			"#/components/schemas/Pet/items/0",
			"#/components/schemas/Pet/properties/name/extra",
			"#/components/parameters/Limit",
			"#/components/requestBodies/Foo",
			"#/definitions/Pet",
			"/components/schemas/Pet",
			"##/components/schemas/Pet",
		}
		for _, reference := range cases {
			t.Run(reference, func(t *testing.T) {
				_, err := ParseSchemaReference(reference)
				require.Error(t, err)
				assert.ErrorIs(t, err, oaserrors.ErrMalformedRef)
				assert.ErrorIs(t, err, oaserrors.ErrResolve)
				assert.ErrorContains(t, err, reference)
			})
		}
	})
}

func TestSchemaReferenceString(t *testing.T) {
	assert.Equal(t, "#/components/schemas/Pet",
		SchemaReference{Schema: "Pet"}.String())
	assert.Equal(t, "#/components/schemas/Account/properties/name",
		SchemaReference{Schema: "Account", Property: "name"}.String())
}

// Formatting then parsing any well-formed SchemaReference must yield the same
// value, and formatting is a fixpoint of the round trip.
func TestSchemaReferenceRoundTrip(t *testing.T) {
	nameGen := rapid.StringMatching(`[A-Za-z_][A-Za-z0-9_.-]{0,24}`)
	rapid.Check(t, func(t *rapid.T) {
		ref := SchemaReference{Schema: nameGen.Draw(t, "schema")}
		if rapid.Bool().Draw(t, "withProperty") {
			ref.Property = nameGen.Draw(t, "property")
		}

		rendered := ref.String()
		parsed, err := ParseSchemaReference(rendered)
		if err != nil {
			t.Fatalf("failed to parse %q: %v", rendered, err)
		}
		if parsed != ref {
			t.Fatalf("round trip changed %+v into %+v", ref, parsed)
		}
		if parsed.String() != rendered {
			t.Fatalf("second render %q differs from first %q", parsed.String(), rendered)
		}
	})
}

func TestComponentName(t *testing.T) {
	t.Run("extracts flat names", func(t *testing.T) {
		cases := []struct {
			reference string
			group     string
			want      string
		}{
			{"#/components/parameters/Limit", groupParameters, "Limit"},
			{"#/components/responses/NotFound", groupResponses, "NotFound"},
			{"#/components/requestBodies/Foo", groupRequestBodies, "Foo"},
			{"#/components/schemas/Pet", groupSchemas, "Pet"},
		}
		for _, tc := range cases {
			name, err := componentName(tc.reference, tc.group)
			require.NoError(t, err)
			assert.Equal(t, tc.want, name)
		}
	})

	t.Run("rejects wrong group and shape", func(t *testing.T) {
		cases := []struct {
			reference string
			group     string
		}{
			{"#/components/requestBodies/Foo", groupParameters},
			{"#/components/parameters/Limit/deep", groupParameters},
			{"#/components/responses/", groupResponses},
			{"NotAReference", groupResponses},
			{"", groupSchemas},
		}
		for _, tc := range cases {
			_, err := componentName(tc.reference, tc.group)
			require.Error(t, err, "reference %q group %q", tc.reference, tc.group)
			assert.ErrorIs(t, err, oaserrors.ErrMalformedRef)

			var resolveErr *oaserrors.ResolveError
			require.True(t, errors.As(err, &resolveErr))
			assert.Equal(t, tc.group, resolveErr.Group)
		}
	})

	// A request-body pointer parses as a flat name but never as a
	// SchemaReference; the two parsers cover disjoint shapes.
	t.Run("request body name is not a schema reference", func(t *testing.T) {
		name, err := componentName("#/components/requestBodies/Foo", groupRequestBodies)
		require.NoError(t, err)
		assert.Equal(t, "Foo", name)

		_, err = ParseSchemaReference("#/components/requestBodies/Foo")
		assert.ErrorIs(t, err, oaserrors.ErrMalformedRef)
	})
}
