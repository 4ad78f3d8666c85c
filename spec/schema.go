package spec

import "reflect"

// Schema represents a JSON Schema as used by OAS 3.0 documents.
// Every position that may hold a nested schema is a ReferenceOr, since the
// format allows $ref anywhere a schema is expected.
type Schema struct {
	// Metadata
	Title       string `yaml:"title,omitempty" json:"title,omitempty"`
	Description string `yaml:"description,omitempty" json:"description,omitempty"`
	Default     any    `yaml:"default,omitempty" json:"default,omitempty"`

	// Type validation
	Type   string `yaml:"type,omitempty" json:"type,omitempty"`
	Format string `yaml:"format,omitempty" json:"format,omitempty"`
	Enum   []any  `yaml:"enum,omitempty" json:"enum,omitempty"`

	// Numeric validation
	MultipleOf       *float64 `yaml:"multipleOf,omitempty" json:"multipleOf,omitempty"`
	Maximum          *float64 `yaml:"maximum,omitempty" json:"maximum,omitempty"`
	ExclusiveMaximum bool     `yaml:"exclusiveMaximum,omitempty" json:"exclusiveMaximum,omitempty"`
	Minimum          *float64 `yaml:"minimum,omitempty" json:"minimum,omitempty"`
	ExclusiveMinimum bool     `yaml:"exclusiveMinimum,omitempty" json:"exclusiveMinimum,omitempty"`

	// String validation
	MaxLength *int   `yaml:"maxLength,omitempty" json:"maxLength,omitempty"`
	MinLength *int   `yaml:"minLength,omitempty" json:"minLength,omitempty"`
	Pattern   string `yaml:"pattern,omitempty" json:"pattern,omitempty"`

	// Array validation
	Items       *ReferenceOr[Schema] `yaml:"items,omitempty" json:"items,omitempty"`
	MaxItems    *int                 `yaml:"maxItems,omitempty" json:"maxItems,omitempty"`
	MinItems    *int                 `yaml:"minItems,omitempty" json:"minItems,omitempty"`
	UniqueItems bool                 `yaml:"uniqueItems,omitempty" json:"uniqueItems,omitempty"`

	// Object validation
	Properties           map[string]*ReferenceOr[Schema] `yaml:"properties,omitempty" json:"properties,omitempty"`
	Required             []string                        `yaml:"required,omitempty" json:"required,omitempty"`
	AdditionalProperties *ReferenceOr[Schema]            `yaml:"additionalProperties,omitempty" json:"additionalProperties,omitempty"`
	MaxProperties        *int                            `yaml:"maxProperties,omitempty" json:"maxProperties,omitempty"`
	MinProperties        *int                            `yaml:"minProperties,omitempty" json:"minProperties,omitempty"`

	// Schema composition
	AllOf []*ReferenceOr[Schema] `yaml:"allOf,omitempty" json:"allOf,omitempty"`
	AnyOf []*ReferenceOr[Schema] `yaml:"anyOf,omitempty" json:"anyOf,omitempty"`
	OneOf []*ReferenceOr[Schema] `yaml:"oneOf,omitempty" json:"oneOf,omitempty"`
	Not   *ReferenceOr[Schema]   `yaml:"not,omitempty" json:"not,omitempty"`

	// OAS specific extensions
	Nullable      bool           `yaml:"nullable,omitempty" json:"nullable,omitempty"`
	Discriminator *Discriminator `yaml:"discriminator,omitempty" json:"discriminator,omitempty"`
	ReadOnly      bool           `yaml:"readOnly,omitempty" json:"readOnly,omitempty"`
	WriteOnly     bool           `yaml:"writeOnly,omitempty" json:"writeOnly,omitempty"`
	Example       any            `yaml:"example,omitempty" json:"example,omitempty"`
	Deprecated    bool           `yaml:"deprecated,omitempty" json:"deprecated,omitempty"`
	ExternalDocs  *ExternalDocs  `yaml:"externalDocs,omitempty" json:"externalDocs,omitempty"`

	// Extra captures specification extensions (fields starting with "x-")
	Extra map[string]any `yaml:",inline" json:"-"`
}

// Discriminator represents a discriminator for polymorphism (OAS 3.0+)
type Discriminator struct {
	PropertyName string            `yaml:"propertyName" json:"propertyName"`
	Mapping      map[string]string `yaml:"mapping,omitempty" json:"mapping,omitempty"`
	Extra        map[string]any    `yaml:",inline" json:"-"`
}

// IsEmpty reports whether the schema declares no constraints, metadata, or
// extensions at all.
func (s *Schema) IsEmpty() bool {
	if s == nil {
		return true
	}
	return s.Title == "" && s.Description == "" && s.Default == nil &&
		s.Type == "" && s.Format == "" && len(s.Enum) == 0 &&
		s.MultipleOf == nil && s.Maximum == nil && !s.ExclusiveMaximum &&
		s.Minimum == nil && !s.ExclusiveMinimum &&
		s.MaxLength == nil && s.MinLength == nil && s.Pattern == "" &&
		s.Items == nil && s.MaxItems == nil && s.MinItems == nil && !s.UniqueItems &&
		len(s.Properties) == 0 && len(s.Required) == 0 && s.AdditionalProperties == nil &&
		s.MaxProperties == nil && s.MinProperties == nil &&
		len(s.AllOf) == 0 && len(s.AnyOf) == 0 && len(s.OneOf) == 0 && s.Not == nil &&
		!s.Nullable && s.Discriminator == nil && !s.ReadOnly && !s.WriteOnly &&
		s.Example == nil && !s.Deprecated && s.ExternalDocs == nil &&
		len(s.Extra) == 0
}

// Equals reports deep structural equality with another schema. Nil schemas
// equal each other and any empty schema.
func (s *Schema) Equals(other *Schema) bool {
	if s == nil || other == nil {
		return s.IsEmpty() && other.IsEmpty()
	}
	return reflect.DeepEqual(*s, *other)
}

// PropertySchemas returns the schema's property dictionary, or nil when the
// schema declares none.
func (s *Schema) PropertySchemas() map[string]*ReferenceOr[Schema] {
	if s == nil || len(s.Properties) == 0 {
		return nil
	}
	return s.Properties
}
