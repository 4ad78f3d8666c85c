package spec

// Document represents an OpenAPI Specification 3.x document.
// Reference: https://spec.openapis.org/oas/v3.0.0.html
type Document struct {
	OpenAPI      string               `yaml:"openapi" json:"openapi"` // Required: "3.0.x"
	Info         *Info                `yaml:"info" json:"info"`       // Required
	Servers      []*Server            `yaml:"servers,omitempty" json:"servers,omitempty"`
	Paths        map[string]*PathItem `yaml:"paths,omitempty" json:"paths,omitempty"`
	Components   *Components          `yaml:"components,omitempty" json:"components,omitempty"`
	Tags         []*Tag               `yaml:"tags,omitempty" json:"tags,omitempty"`
	ExternalDocs *ExternalDocs        `yaml:"externalDocs,omitempty" json:"externalDocs,omitempty"`

	// Extra captures specification extensions (fields starting with "x-")
	Extra map[string]any `yaml:",inline" json:"-"`
}

// Components holds reusable objects for different aspects of the OAS (OAS 3.0+)
type Components struct {
	Schemas       map[string]*ReferenceOr[Schema]      `yaml:"schemas,omitempty" json:"schemas,omitempty"`
	Responses     map[string]*ReferenceOr[Response]    `yaml:"responses,omitempty" json:"responses,omitempty"`
	Parameters    map[string]*ReferenceOr[Parameter]   `yaml:"parameters,omitempty" json:"parameters,omitempty"`
	Examples      map[string]*ReferenceOr[Example]     `yaml:"examples,omitempty" json:"examples,omitempty"`
	RequestBodies map[string]*ReferenceOr[RequestBody] `yaml:"requestBodies,omitempty" json:"requestBodies,omitempty"`
	Headers       map[string]*ReferenceOr[Header]      `yaml:"headers,omitempty" json:"headers,omitempty"`

	// Extra captures specification extensions (fields starting with "x-")
	Extra map[string]any `yaml:",inline" json:"-"`
}

// Schemas returns the document's full name-to-schema dictionary.
// OAS 3.x keeps all named schemas under components; the accessor guards a
// missing components section so callers can query by name without nil checks.
func (d *Document) Schemas() map[string]*ReferenceOr[Schema] {
	if d == nil || d.Components == nil {
		return nil
	}
	return d.Components.Schemas
}

// HasComponents reports whether the document declares a components section.
func (d *Document) HasComponents() bool {
	return d != nil && d.Components != nil
}
