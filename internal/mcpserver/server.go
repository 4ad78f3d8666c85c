// Package mcpserver implements an MCP (Model Context Protocol) server
// that exposes oasref capabilities as MCP tools over stdio.
package mcpserver

import (
	"context"
	"regexp"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/erraggy/oasref"
)

const serverInstructions = `oasref MCP server — resolves $ref pointers and lists reusable components in OpenAPI 3.x specs.

Tools:
- resolve_ref: follow a single $ref (schema, parameter, response, or request body) to its definition. Schema refs may address a property directly (#/components/schemas/Name/properties/field). Chained references are rejected.
- list_components: enumerate the named components a spec defines, optionally narrowed to one group.

Provide specs by file path or inline content.`

// Run starts the MCP server over stdio and blocks until the client disconnects
// or the context is cancelled.
func Run(ctx context.Context) error {
	server := mcp.NewServer(
		&mcp.Implementation{Name: "oasref", Version: oasref.Version()},
		&mcp.ServerOptions{
			Instructions: serverInstructions,
		},
	)
	registerAllTools(server)
	return server.Run(ctx, &mcp.StdioTransport{})
}

func registerAllTools(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "resolve_ref",
		Description: "Resolve a $ref pointer against an OpenAPI Specification document. Supports the schemas, parameters, responses, and requestBodies component groups; schema refs may additionally address a named property. Returns the resolved definition. Fails on malformed pointers, unknown names, and chained references.",
	}, handleResolveRef)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "list_components",
		Description: "List the named components defined in an OpenAPI Specification document, grouped by component group (schemas, parameters, responses, requestBodies). Use group to narrow to a single group. Entries that are themselves references report their target.",
	}, handleListComponents)
}

// sanitizeError strips absolute filesystem paths from error messages
// to prevent leaking internal directory structure to MCP clients.
var pathPattern = regexp.MustCompile(`(?:/(?:home|tmp|var|Users|etc|opt|usr|private|root|mnt|srv|run|snap|nix)[a-zA-Z0-9._/-]*)`)

func sanitizeError(err error) string {
	if err == nil {
		return ""
	}
	return pathPattern.ReplaceAllString(err.Error(), "<path>")
}

// errResult creates an MCP error result from an error.
func errResult(err error) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		IsError: true,
		Content: []mcp.Content{&mcp.TextContent{Text: sanitizeError(err)}},
	}
}

// makeSlice returns nil when n is 0 (preserving omitempty JSON semantics),
// otherwise returns make([]T, 0, n) for pre-allocated appending.
func makeSlice[T any](n int) []T {
	if n == 0 {
		return nil
	}
	return make([]T, 0, n)
}
