package mcpserver

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/erraggy/oasref/spec"
)

type listComponentsInput struct {
	Spec  specInput `json:"spec"            jsonschema:"The OAS document to inspect"`
	Group string    `json:"group,omitempty" jsonschema:"Narrow to one component group: schemas, parameters, responses, or requestBodies"`
}

// componentEntry describes one named component. Target is non-empty when the
// entry is itself a reference rather than an inline definition.
type componentEntry struct {
	Name   string `json:"name"`
	Target string `json:"target,omitempty"`
}

type componentGroup struct {
	Group   string           `json:"group"`
	Count   int              `json:"count"`
	Entries []componentEntry `json:"entries,omitempty"`
}

type listComponentsOutput struct {
	Total  int              `json:"total"`
	Groups []componentGroup `json:"groups,omitempty"`
}

var componentGroups = []string{"schemas", "parameters", "responses", "requestBodies"}

func handleListComponents(_ context.Context, _ *mcp.CallToolRequest, input listComponentsInput) (*mcp.CallToolResult, listComponentsOutput, error) {
	if input.Group != "" && !slicesContainsFold(componentGroups, input.Group) {
		return errResult(fmt.Errorf("invalid group %q; valid groups: %s",
			input.Group, strings.Join(componentGroups, ", "))), listComponentsOutput{}, nil
	}

	doc, err := input.Spec.resolve()
	if err != nil {
		return errResult(err), listComponentsOutput{}, nil
	}

	output := listComponentsOutput{}
	if !doc.HasComponents() {
		return nil, output, nil
	}

	for _, group := range componentGroups {
		if input.Group != "" && !strings.EqualFold(input.Group, group) {
			continue
		}
		entries := collectGroup(doc.Components, group)
		if len(entries) == 0 {
			continue
		}
		output.Groups = append(output.Groups, componentGroup{
			Group:   group,
			Count:   len(entries),
			Entries: entries,
		})
		output.Total += len(entries)
	}
	return nil, output, nil
}

func collectGroup(c *spec.Components, group string) []componentEntry {
	switch group {
	case "schemas":
		return entriesOf(c.Schemas)
	case "parameters":
		return entriesOf(c.Parameters)
	case "responses":
		return entriesOf(c.Responses)
	case "requestBodies":
		return entriesOf(c.RequestBodies)
	}
	return nil
}

// entriesOf flattens one component dictionary into sorted entries.
func entriesOf[T any](dict map[string]*spec.ReferenceOr[T]) []componentEntry {
	entries := makeSlice[componentEntry](len(dict))
	for name, ref := range dict {
		entry := componentEntry{Name: name}
		if ref.IsReference() {
			entry.Target = ref.RefString()
		}
		entries = append(entries, entry)
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Name < entries[j].Name })
	return entries
}

func slicesContainsFold(haystack []string, needle string) bool {
	for _, s := range haystack {
		if strings.EqualFold(s, needle) {
			return true
		}
	}
	return false
}
