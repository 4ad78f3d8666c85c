package spec

import (
	"fmt"
	"os"

	"go.yaml.in/yaml/v4"
)

// Load parses an OpenAPI document from YAML or JSON bytes.
// JSON is a subset of YAML, so a single decoder handles both formats.
func Load(data []byte) (*Document, error) {
	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse OpenAPI document: %w", err)
	}
	return &doc, nil
}

// LoadFile reads and parses an OpenAPI document from a file path.
func LoadFile(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	doc, err := Load(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return doc, nil
}
