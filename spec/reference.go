package spec

import (
	"fmt"
	"reflect"
)

// ReferenceOr holds either an inline item of type T or a $ref pointer to a
// component defined elsewhere in the same document. The variant is selected
// by Ref: a non-empty Ref is the reference variant and Item is ignored; an
// empty Ref is the item variant.
//
// The zero value is the item variant with no allocated item, which model code
// treats as an empty inline value.
type ReferenceOr[T any] struct {
	// Ref is the reference string, e.g. "#/components/schemas/Pet".
	// Empty for inline items.
	Ref string `yaml:"$ref,omitempty" json:"$ref,omitempty"`

	// Item is the inline value when Ref is empty.
	Item *T `yaml:"-" json:"-"`
}

// NewReference creates the reference variant from a raw pointer string.
func NewReference[T any](ref string) *ReferenceOr[T] {
	return &ReferenceOr[T]{Ref: ref}
}

// NewItem creates the item variant holding an inline value.
func NewItem[T any](item T) *ReferenceOr[T] {
	return &ReferenceOr[T]{Item: &item}
}

// NewSchemaReference creates a reference to a named component schema,
// producing the canonical "#/components/schemas/<name>" pointer.
func NewSchemaReference(name string) *ReferenceOr[Schema] {
	return &ReferenceOr[Schema]{Ref: fmt.Sprintf("#/components/schemas/%s", name)}
}

// IsReference reports whether this is the reference variant.
func (r *ReferenceOr[T]) IsReference() bool {
	return r != nil && r.Ref != ""
}

// RefString returns the raw pointer text for the reference variant, or the
// empty string for inline items.
func (r *ReferenceOr[T]) RefString() string {
	if r == nil {
		return ""
	}
	return r.Ref
}

// ItemValue returns the contained item when this is the item variant, or nil
// for the reference variant. The returned pointer shares storage with the
// container, so callers may mutate through it. Absence of an item is not an
// error; resolving a reference requires the owning document (see the
// resolver package).
func (r *ReferenceOr[T]) ItemValue() *T {
	if r == nil || r.Ref != "" {
		return nil
	}
	return r.Item
}

// Value returns a copy of the contained item and true when this is the item
// variant with an allocated item, or the zero value and false otherwise.
func (r *ReferenceOr[T]) Value() (T, bool) {
	if it := r.ItemValue(); it != nil {
		return *it, true
	}
	var zero T
	return zero, false
}

// Equals reports structural equality: both reference variants with equal
// pointer strings, or both item variants with deeply equal items. Nil
// containers equal each other and the zero value.
func (r *ReferenceOr[T]) Equals(other *ReferenceOr[T]) bool {
	if r == nil || other == nil {
		return refIsZero(r) && refIsZero(other)
	}
	if r.Ref != other.Ref {
		return false
	}
	if r.Ref != "" {
		return true
	}
	switch {
	case r.Item == nil && other.Item == nil:
		return true
	case r.Item == nil || other.Item == nil:
		return false
	}
	return reflect.DeepEqual(*r.Item, *other.Item)
}

func refIsZero[T any](r *ReferenceOr[T]) bool {
	return r == nil || (r.Ref == "" && r.Item == nil)
}

// MapItem converts the contained type, preserving the variant. The mapping
// function is only called for the item variant with an allocated item.
func MapItem[T, U any](r *ReferenceOr[T], f func(T) U) *ReferenceOr[U] {
	if r == nil {
		return nil
	}
	if r.Ref != "" {
		return &ReferenceOr[U]{Ref: r.Ref}
	}
	if r.Item == nil {
		return &ReferenceOr[U]{}
	}
	mapped := f(*r.Item)
	return &ReferenceOr[U]{Item: &mapped}
}

// Boxed wraps the contained type in one level of pointer indirection,
// preserving the variant. Useful where a recursive document shape needs a
// heap-indirected item.
func Boxed[T any](r *ReferenceOr[T]) *ReferenceOr[*T] {
	return MapItem(r, func(item T) *T { return &item })
}

// Unboxed removes one level of pointer indirection by copying the pointed-to
// item, preserving the variant. A boxed item that is nil becomes an empty
// item variant.
func Unboxed[T any](r *ReferenceOr[*T]) *ReferenceOr[T] {
	if r == nil {
		return nil
	}
	if r.Ref != "" {
		return &ReferenceOr[T]{Ref: r.Ref}
	}
	if r.Item == nil || *r.Item == nil {
		return &ReferenceOr[T]{}
	}
	item := **r.Item
	return &ReferenceOr[T]{Item: &item}
}

// IsEmptySchemaRef reports whether r is an inline schema with no constraints.
// A reference variant is never empty: a pointer always denotes something,
// even if unresolved at this point.
func IsEmptySchemaRef(r *ReferenceOr[Schema]) bool {
	if r == nil {
		return true
	}
	if r.Ref != "" {
		return false
	}
	if r.Item == nil {
		return true
	}
	return r.Item.IsEmpty()
}
