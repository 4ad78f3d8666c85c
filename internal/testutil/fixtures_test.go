package testutil

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erraggy/oasref/spec"
)

func TestNewSimpleDocument(t *testing.T) {
	doc := NewSimpleDocument()
	require.NotNil(t, doc)
	assert.Equal(t, "3.0.3", doc.OpenAPI)
	assert.Equal(t, "Test API", doc.Info.Title)
	assert.Nil(t, doc.Components)
}

func TestNewPetstoreDocument(t *testing.T) {
	doc := NewPetstoreDocument()
	require.NotNil(t, doc.Components)

	assert.Contains(t, doc.Schemas(), "Pet")
	assert.Contains(t, doc.Schemas(), "Pets")
	assert.Contains(t, doc.Components.Parameters, "Limit")
	assert.Contains(t, doc.Components.Responses, "NotFound")
	assert.Contains(t, doc.Components.RequestBodies, "PetBody")

	pet := doc.Schemas()["Pet"].ItemValue()
	require.NotNil(t, pet)
	assert.Contains(t, pet.Properties, "name")
}

func TestWriteTempYAML(t *testing.T) {
	path := WriteTempYAML(t, NewPetstoreDocument())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "openapi: 3.0.3")

	doc, err := spec.LoadFile(path)
	require.NoError(t, err)
	assert.Contains(t, doc.Schemas(), "Pet")
}
