package spec

// PathItem describes the operations available on a single path
type PathItem struct {
	Summary     string `yaml:"summary,omitempty" json:"summary,omitempty"`
	Description string `yaml:"description,omitempty" json:"description,omitempty"`

	Get     *Operation `yaml:"get,omitempty" json:"get,omitempty"`
	Put     *Operation `yaml:"put,omitempty" json:"put,omitempty"`
	Post    *Operation `yaml:"post,omitempty" json:"post,omitempty"`
	Delete  *Operation `yaml:"delete,omitempty" json:"delete,omitempty"`
	Options *Operation `yaml:"options,omitempty" json:"options,omitempty"`
	Head    *Operation `yaml:"head,omitempty" json:"head,omitempty"`
	Patch   *Operation `yaml:"patch,omitempty" json:"patch,omitempty"`
	Trace   *Operation `yaml:"trace,omitempty" json:"trace,omitempty"`

	Servers    []*Server                  `yaml:"servers,omitempty" json:"servers,omitempty"`
	Parameters []*ReferenceOr[Parameter]  `yaml:"parameters,omitempty" json:"parameters,omitempty"`

	// Extra captures specification extensions (fields starting with "x-")
	Extra map[string]any `yaml:",inline" json:"-"`
}

// Operation describes a single API operation on a path
type Operation struct {
	Tags        []string                  `yaml:"tags,omitempty" json:"tags,omitempty"`
	Summary     string                    `yaml:"summary,omitempty" json:"summary,omitempty"`
	Description string                    `yaml:"description,omitempty" json:"description,omitempty"`
	OperationID string                    `yaml:"operationId,omitempty" json:"operationId,omitempty"`
	Parameters  []*ReferenceOr[Parameter] `yaml:"parameters,omitempty" json:"parameters,omitempty"`
	RequestBody *ReferenceOr[RequestBody] `yaml:"requestBody,omitempty" json:"requestBody,omitempty"`
	Responses   map[string]*ReferenceOr[Response] `yaml:"responses,omitempty" json:"responses,omitempty"`
	Deprecated  bool                      `yaml:"deprecated,omitempty" json:"deprecated,omitempty"`

	// Extra captures specification extensions (fields starting with "x-")
	Extra map[string]any `yaml:",inline" json:"-"`
}

// Parameter describes a single operation parameter
type Parameter struct {
	Name        string `yaml:"name,omitempty" json:"name,omitempty"`
	In          string `yaml:"in,omitempty" json:"in,omitempty"` // "query", "header", "path", "cookie"
	Description string `yaml:"description,omitempty" json:"description,omitempty"`
	Required    bool   `yaml:"required,omitempty" json:"required,omitempty"`
	Deprecated  bool   `yaml:"deprecated,omitempty" json:"deprecated,omitempty"`

	Style   string               `yaml:"style,omitempty" json:"style,omitempty"`
	Explode *bool                `yaml:"explode,omitempty" json:"explode,omitempty"`
	Schema  *ReferenceOr[Schema] `yaml:"schema,omitempty" json:"schema,omitempty"`
	Example any                  `yaml:"example,omitempty" json:"example,omitempty"`
	Content map[string]*MediaType `yaml:"content,omitempty" json:"content,omitempty"`

	// Extra captures specification extensions (fields starting with "x-")
	Extra map[string]any `yaml:",inline" json:"-"`
}

// RequestBody describes a single request body (OAS 3.0+)
type RequestBody struct {
	Description string                `yaml:"description,omitempty" json:"description,omitempty"`
	Content     map[string]*MediaType `yaml:"content,omitempty" json:"content,omitempty"`
	Required    bool                  `yaml:"required,omitempty" json:"required,omitempty"`
	// Extra captures specification extensions (fields starting with "x-")
	Extra map[string]any `yaml:",inline" json:"-"`
}

// Response describes a single response from an API operation
type Response struct {
	Description string                           `yaml:"description,omitempty" json:"description,omitempty"`
	Headers     map[string]*ReferenceOr[Header]  `yaml:"headers,omitempty" json:"headers,omitempty"`
	Content     map[string]*MediaType            `yaml:"content,omitempty" json:"content,omitempty"`
	// Extra captures specification extensions (fields starting with "x-")
	Extra map[string]any `yaml:",inline" json:"-"`
}

// MediaType provides schema and examples for a media type
type MediaType struct {
	Schema   *ReferenceOr[Schema]             `yaml:"schema,omitempty" json:"schema,omitempty"`
	Example  any                              `yaml:"example,omitempty" json:"example,omitempty"`
	Examples map[string]*ReferenceOr[Example] `yaml:"examples,omitempty" json:"examples,omitempty"`
	// Extra captures specification extensions (fields starting with "x-")
	Extra map[string]any `yaml:",inline" json:"-"`
}

// Header represents a header object (OAS 3.0+)
type Header struct {
	Description string               `yaml:"description,omitempty" json:"description,omitempty"`
	Required    bool                 `yaml:"required,omitempty" json:"required,omitempty"`
	Deprecated  bool                 `yaml:"deprecated,omitempty" json:"deprecated,omitempty"`
	Schema      *ReferenceOr[Schema] `yaml:"schema,omitempty" json:"schema,omitempty"`
	// Extra captures specification extensions (fields starting with "x-")
	Extra map[string]any `yaml:",inline" json:"-"`
}

// Example represents an example object (OAS 3.0+)
type Example struct {
	Summary       string `yaml:"summary,omitempty" json:"summary,omitempty"`
	Description   string `yaml:"description,omitempty" json:"description,omitempty"`
	Value         any    `yaml:"value,omitempty" json:"value,omitempty"`
	ExternalValue string `yaml:"externalValue,omitempty" json:"externalValue,omitempty"`
	// Extra captures specification extensions (fields starting with "x-")
	Extra map[string]any `yaml:",inline" json:"-"`
}
