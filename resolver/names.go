package resolver

import (
	"strings"

	"github.com/erraggy/oasref/oaserrors"
)

// Component group names as they appear in $ref paths.
const (
	groupSchemas       = "schemas"
	groupParameters    = "parameters"
	groupResponses     = "responses"
	groupRequestBodies = "requestBodies"
)

// componentName extracts the trailing name from a flat component reference.
// The head before the last slash must be exactly "#/components/<group>";
// parameters, responses and request bodies are only ever addressed by flat
// name, never by sub-path, so this is deliberately simpler than
// ParseSchemaReference.
func componentName(reference, group string) (string, error) {
	idx := strings.LastIndex(reference, "/")
	if idx < 0 {
		return "", oaserrors.Malformed(reference, group, "invalid "+group+" reference")
	}
	head, name := reference[:idx], reference[idx+1:]
	if head != "#/components/"+group || name == "" {
		return "", oaserrors.Malformed(reference, group, "invalid "+group+" reference")
	}
	return name, nil
}
