package spec

import (
	"go.yaml.in/yaml/v4"
)

// refOnly is the wire shape of the reference variant.
type refOnly struct {
	Ref string `yaml:"$ref" json:"$ref"`
}

// MarshalYAML implements custom YAML marshaling for ReferenceOr. The
// reference variant serializes as a single-key {"$ref": ...} mapping; the
// item variant serializes as the item itself with no variant tag.
func (r ReferenceOr[T]) MarshalYAML() (any, error) {
	if r.Ref != "" {
		return refOnly{Ref: r.Ref}, nil
	}
	if r.Item == nil {
		var zero T
		return zero, nil
	}
	return *r.Item, nil
}

// UnmarshalYAML implements custom YAML unmarshaling for ReferenceOr. The
// variant is selected structurally: a mapping containing a "$ref" key decodes
// as the reference variant (sibling keys such as summary are permitted and
// ignored); any other node decodes as an inline item.
func (r *ReferenceOr[T]) UnmarshalYAML(value *yaml.Node) error {
	if ref, ok := yamlRefKey(value); ok {
		r.Ref = ref
		r.Item = nil
		return nil
	}

	var item T
	if err := value.Decode(&item); err != nil {
		return err
	}
	r.Ref = ""
	r.Item = &item
	return nil
}

// yamlRefKey returns the value of a top-level "$ref" key in a mapping node.
func yamlRefKey(value *yaml.Node) (string, bool) {
	if value == nil {
		return "", false
	}
	if value.Kind == yaml.AliasNode && value.Alias != nil {
		return yamlRefKey(value.Alias)
	}
	if value.Kind != yaml.MappingNode {
		return "", false
	}
	for i := 0; i+1 < len(value.Content); i += 2 {
		if value.Content[i].Value == "$ref" {
			return value.Content[i+1].Value, true
		}
	}
	return "", false
}
