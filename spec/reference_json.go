package spec

import (
	"encoding/json"
)

// MarshalJSON implements custom JSON marshaling for ReferenceOr. The
// reference variant serializes as {"$ref": ...}; the item variant serializes
// as the item itself with no variant tag.
func (r ReferenceOr[T]) MarshalJSON() ([]byte, error) {
	if r.Ref != "" {
		return json.Marshal(refOnly{Ref: r.Ref})
	}
	if r.Item == nil {
		var zero T
		return json.Marshal(zero)
	}
	return json.Marshal(r.Item)
}

// UnmarshalJSON implements custom JSON unmarshaling for ReferenceOr. An
// object containing a "$ref" key decodes as the reference variant; anything
// else decodes as an inline item.
func (r *ReferenceOr[T]) UnmarshalJSON(data []byte) error {
	var probe map[string]json.RawMessage
	if err := json.Unmarshal(data, &probe); err == nil {
		if raw, ok := probe["$ref"]; ok {
			var ref string
			if err := json.Unmarshal(raw, &ref); err != nil {
				return err
			}
			r.Ref = ref
			r.Item = nil
			return nil
		}
	}

	var item T
	if err := json.Unmarshal(data, &item); err != nil {
		return err
	}
	r.Ref = ""
	r.Item = &item
	return nil
}
