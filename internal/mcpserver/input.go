package mcpserver

import (
	"fmt"

	"github.com/erraggy/oasref/spec"
)

// specInput represents the two ways an OAS spec can be provided to a tool.
// Exactly one of File or Content must be set.
type specInput struct {
	File    string `json:"file,omitempty"    jsonschema:"Path to an OAS file on disk"`
	Content string `json:"content,omitempty" jsonschema:"Inline OAS document content (JSON or YAML)"`
}

// resolve loads the document from whichever source the input carries.
func (s specInput) resolve() (*spec.Document, error) {
	switch {
	case s.File != "" && s.Content != "":
		return nil, fmt.Errorf("provide exactly one of file or content, not both")
	case s.File != "":
		return spec.LoadFile(s.File)
	case s.Content != "":
		return spec.Load([]byte(s.Content))
	default:
		return nil, fmt.Errorf("provide one of file or content")
	}
}
