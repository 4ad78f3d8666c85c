package mcpserver

import (
	"context"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/erraggy/oasref/oaserrors"
	"github.com/erraggy/oasref/resolver"
	"github.com/erraggy/oasref/spec"
)

type resolveRefInput struct {
	Spec specInput `json:"spec" jsonschema:"The OAS document to resolve against"`
	Ref  string    `json:"ref"  jsonschema:"The $ref pointer to resolve, e.g. #/components/schemas/Pet"`
}

type resolveRefOutput struct {
	Ref      string `json:"ref"`
	Group    string `json:"group"`
	Name     string `json:"name"`
	Property string `json:"property,omitempty"`
	Resolved any    `json:"resolved"`
}

func handleResolveRef(_ context.Context, _ *mcp.CallToolRequest, input resolveRefInput) (*mcp.CallToolResult, resolveRefOutput, error) {
	doc, err := input.Spec.resolve()
	if err != nil {
		return errResult(err), resolveRefOutput{}, nil
	}

	output := resolveRefOutput{Ref: input.Ref}
	switch {
	case strings.HasPrefix(input.Ref, "#/components/schemas/"):
		parsed, err := resolver.ParseSchemaReference(input.Ref)
		if err != nil {
			return errResult(err), resolveRefOutput{}, nil
		}
		output.Group = "schemas"
		output.Name = parsed.Schema
		output.Property = parsed.Property

		schema, err := resolver.ResolveSchema(spec.NewReference[spec.Schema](input.Ref), doc)
		if err != nil {
			return errResult(err), resolveRefOutput{}, nil
		}
		output.Resolved = schema

	case strings.HasPrefix(input.Ref, "#/components/parameters/"):
		output.Group = "parameters"
		output.Name = trailingName(input.Ref)
		param, err := resolver.ResolveParameter(spec.NewReference[spec.Parameter](input.Ref), doc)
		if err != nil {
			return errResult(err), resolveRefOutput{}, nil
		}
		output.Resolved = param

	case strings.HasPrefix(input.Ref, "#/components/responses/"):
		output.Group = "responses"
		output.Name = trailingName(input.Ref)
		resp, err := resolver.ResolveResponse(spec.NewReference[spec.Response](input.Ref), doc)
		if err != nil {
			return errResult(err), resolveRefOutput{}, nil
		}
		output.Resolved = resp

	case strings.HasPrefix(input.Ref, "#/components/requestBodies/"):
		output.Group = "requestBodies"
		output.Name = trailingName(input.Ref)
		body, err := resolver.ResolveRequestBody(spec.NewReference[spec.RequestBody](input.Ref), doc)
		if err != nil {
			return errResult(err), resolveRefOutput{}, nil
		}
		output.Resolved = body

	default:
		return errResult(oaserrors.Malformed(input.Ref, "",
			"reference must target one of the schemas, parameters, responses, or requestBodies component groups")), resolveRefOutput{}, nil
	}

	return nil, output, nil
}

func trailingName(ref string) string {
	return ref[strings.LastIndex(ref, "/")+1:]
}
