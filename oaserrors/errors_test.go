package oaserrors

import (
	"errors"
	"testing"
)

func TestResolveErrorMessage(t *testing.T) {
	t.Run("malformed reference", func(t *testing.T) {
		err := Malformed("#/bad/ref", "schemas", "cannot be parsed as SchemaReference")
		want := "malformed reference: #/bad/ref: cannot be parsed as SchemaReference"
		if err.Error() != want {
			t.Errorf("unexpected error message: %s", err.Error())
		}
	})

	t.Run("missing components", func(t *testing.T) {
		err := MissingComponents("#/components/parameters/Page", "parameters")
		want := "no components in spec: #/components/parameters/Page"
		if err.Error() != want {
			t.Errorf("unexpected error message: %s", err.Error())
		}
	})

	t.Run("unknown name", func(t *testing.T) {
		err := UnknownName("#/components/schemas/Missing", "schemas", "Missing")
		want := "unknown component name: #/components/schemas/Missing: not found in OpenAPI spec"
		if err.Error() != want {
			t.Errorf("unexpected error message: %s", err.Error())
		}
	})

	t.Run("chained reference names both pointers", func(t *testing.T) {
		err := Chained("#/components/schemas/A", "schemas", "#/components/schemas/B")
		want := "chained reference: #/components/schemas/A refers to #/components/schemas/B: " +
			"references must refer directly to the definition; chains are not permitted"
		if err.Error() != want {
			t.Errorf("unexpected error message: %s", err.Error())
		}
	})

	t.Run("zero value", func(t *testing.T) {
		err := &ResolveError{}
		if err.Error() != "resolve error" {
			t.Errorf("unexpected error message: %s", err.Error())
		}
	})

	t.Run("cause appended", func(t *testing.T) {
		cause := errors.New("underlying")
		err := &ResolveError{Ref: "#/x", Kind: ErrMalformedRef, Cause: cause}
		if err.Error() != "malformed reference: #/x: underlying" {
			t.Errorf("unexpected error message: %s", err.Error())
		}
	})
}

func TestResolveErrorIs(t *testing.T) {
	tests := []struct {
		name    string
		err     *ResolveError
		matches []error
		misses  []error
	}{
		{
			name:    "malformed",
			err:     Malformed("#/x", "schemas", "nope"),
			matches: []error{ErrResolve, ErrMalformedRef},
			misses:  []error{ErrChainedRef, ErrUnknownName, ErrMissingComponents, ErrSchemaShape},
		},
		{
			name:    "missing components",
			err:     MissingComponents("#/components/responses/NotFound", "responses"),
			matches: []error{ErrResolve, ErrMissingComponents},
			misses:  []error{ErrMalformedRef, ErrUnknownName},
		},
		{
			name:    "unknown name",
			err:     UnknownName("#/components/requestBodies/Foo", "requestBodies", "Foo"),
			matches: []error{ErrResolve, ErrUnknownName},
			misses:  []error{ErrChainedRef},
		},
		{
			name:    "chained",
			err:     Chained("#/components/schemas/A", "schemas", "#/components/schemas/B"),
			matches: []error{ErrResolve, ErrChainedRef},
			misses:  []error{ErrSchemaShape},
		},
		{
			name:    "schema shape",
			err:     SchemaShape("#/components/schemas/A/properties/b", "A", "is not an object with properties"),
			matches: []error{ErrResolve, ErrSchemaShape},
			misses:  []error{ErrUnknownName},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, target := range tt.matches {
				if !errors.Is(tt.err, target) {
					t.Errorf("expected %v to match %v", tt.err, target)
				}
			}
			for _, target := range tt.misses {
				if errors.Is(tt.err, target) {
					t.Errorf("expected %v not to match %v", tt.err, target)
				}
			}
		})
	}
}

func TestResolveErrorUnwrap(t *testing.T) {
	t.Run("returns cause", func(t *testing.T) {
		cause := errors.New("underlying")
		err := &ResolveError{Cause: cause}
		//nolint:errorlint // testing pointer identity
		if unwrapped := err.Unwrap(); unwrapped != cause {
			t.Error("Unwrap should return cause")
		}
	})

	t.Run("returns nil when no cause", func(t *testing.T) {
		err := &ResolveError{Kind: ErrUnknownName}
		if err.Unwrap() != nil {
			t.Error("Unwrap should return nil when no cause")
		}
	})

	t.Run("errors.Is reaches wrapped cause", func(t *testing.T) {
		cause := errors.New("underlying")
		err := &ResolveError{Kind: ErrMalformedRef, Cause: cause}
		if !errors.Is(err, cause) {
			t.Error("errors.Is should find the wrapped cause")
		}
	})
}

func TestResolveErrorAs(t *testing.T) {
	var target *ResolveError
	err := error(UnknownName("#/components/schemas/Pet", "schemas", "Pet"))
	if !errors.As(err, &target) {
		t.Fatal("errors.As should match *ResolveError")
	}
	if target.Name != "Pet" || target.Group != "schemas" {
		t.Errorf("unexpected fields: %+v", target)
	}
}
