// Package testutil provides test utilities and fixtures for unit tests.
package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"go.yaml.in/yaml/v4"

	"github.com/erraggy/oasref/spec"
)

// NewSimpleDocument creates a minimal OAS 3.x document for testing.
// Contains only required fields: openapi, info, paths.
func NewSimpleDocument() *spec.Document {
	return &spec.Document{
		OpenAPI: "3.0.3",
		Info: &spec.Info{
			Title:   "Test API",
			Version: "1.0.0",
		},
		Paths: make(map[string]*spec.PathItem),
	}
}

// NewPetstoreDocument creates a document with components exercising every
// reference kind: schemas (including an object schema with properties),
// parameters, responses, and request bodies.
func NewPetstoreDocument() *spec.Document {
	doc := NewSimpleDocument()
	doc.Paths = map[string]*spec.PathItem{
		"/pets": {
			Get: &spec.Operation{
				Summary:     "List pets",
				OperationID: "listPets",
				Parameters: []*spec.ReferenceOr[spec.Parameter]{
					spec.NewReference[spec.Parameter]("#/components/parameters/Limit"),
				},
				Responses: map[string]*spec.ReferenceOr[spec.Response]{
					"404": spec.NewReference[spec.Response]("#/components/responses/NotFound"),
				},
			},
			Post: &spec.Operation{
				Summary:     "Create a pet",
				OperationID: "createPet",
				RequestBody: spec.NewReference[spec.RequestBody]("#/components/requestBodies/PetBody"),
			},
		},
	}
	doc.Components = &spec.Components{
		Schemas: map[string]*spec.ReferenceOr[spec.Schema]{
			"Pet": spec.NewItem(spec.Schema{
				Type:     "object",
				Required: []string{"id", "name"},
				Properties: map[string]*spec.ReferenceOr[spec.Schema]{
					"id":   spec.NewItem(spec.Schema{Type: "integer", Format: "int64"}),
					"name": spec.NewItem(spec.Schema{Type: "string"}),
					"tag":  spec.NewItem(spec.Schema{Type: "string"}),
				},
			}),
			"Pets": spec.NewItem(spec.Schema{
				Type:  "array",
				Items: spec.NewSchemaReference("Pet"),
			}),
			"Error": spec.NewItem(spec.Schema{
				Type: "object",
				Properties: map[string]*spec.ReferenceOr[spec.Schema]{
					"code":    spec.NewItem(spec.Schema{Type: "integer"}),
					"message": spec.NewItem(spec.Schema{Type: "string"}),
				},
			}),
		},
		Parameters: map[string]*spec.ReferenceOr[spec.Parameter]{
			"Limit": spec.NewItem(spec.Parameter{
				Name:   "limit",
				In:     "query",
				Schema: spec.NewItem(spec.Schema{Type: "integer", Format: "int32"}),
			}),
		},
		Responses: map[string]*spec.ReferenceOr[spec.Response]{
			"NotFound": spec.NewItem(spec.Response{
				Description: "The requested resource was not found",
				Content: map[string]*spec.MediaType{
					"application/json": {Schema: spec.NewSchemaReference("Error")},
				},
			}),
		},
		RequestBodies: map[string]*spec.ReferenceOr[spec.RequestBody]{
			"PetBody": spec.NewItem(spec.RequestBody{
				Description: "Pet to add",
				Required:    true,
				Content: map[string]*spec.MediaType{
					"application/json": {Schema: spec.NewSchemaReference("Pet")},
				},
			}),
		},
	}
	return doc
}

// WriteTempYAML marshals a document to YAML and writes it to a temporary file.
// Returns the path to the temporary file.
// The file is automatically cleaned up when the test completes (via t.TempDir).
func WriteTempYAML(t *testing.T, doc any) string {
	t.Helper()

	data, err := yaml.Marshal(doc)
	if err != nil {
		t.Fatalf("failed to marshal document: %v", err)
	}

	path := filepath.Join(t.TempDir(), "openapi.yaml")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("failed to write %s: %v", path, err)
	}
	return path
}
