package main

import (
	"fmt"
	"os"

	"github.com/erraggy/oasref"
	"github.com/erraggy/oasref/cmd/oasref/commands"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]

	switch command {
	case "version", "-v", "--version":
		fmt.Printf("oasref v%s\n", oasref.Version())
	case "help", "-h", "--help":
		printUsage()
	case "resolve":
		if err := commands.HandleResolve(os.Args[2:]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "components":
		if err := commands.HandleComponents(os.Args[2:]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "mcp":
		if err := commands.HandleMCP(os.Args[2:]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		if suggestion := suggestCommand(command); suggestion != "" {
			fmt.Fprintf(os.Stderr, "Did you mean '%s'?\n", suggestion)
		}
		fmt.Fprintln(os.Stderr)
		printUsage()
		os.Exit(1)
	}
}

var knownCommands = []string{"resolve", "components", "mcp", "version", "help"}

// suggestCommand returns the closest known command within edit distance 2,
// or "" when nothing is close enough to be a plausible typo.
func suggestCommand(input string) string {
	best := ""
	bestDistance := 3
	for _, candidate := range knownCommands {
		if d := editDistance(input, candidate); d < bestDistance {
			best = candidate
			bestDistance = d
		}
	}
	return best
}

func editDistance(a, b string) int {
	prev := make([]int, len(b)+1)
	curr := make([]int, len(b)+1)
	for j := range prev {
		prev[j] = j
	}
	for i := 1; i <= len(a); i++ {
		curr[0] = i
		for j := 1; j <= len(b); j++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}
			curr[j] = min(prev[j]+1, min(curr[j-1]+1, prev[j-1]+cost))
		}
		prev, curr = curr, prev
	}
	return prev[len(b)]
}

func printUsage() {
	fmt.Println(`oasref - OpenAPI Reference Resolution Tools

Usage:
  oasref <command> [options]

Commands:
  resolve     Resolve a $ref pointer against an OpenAPI specification
  components  List the named components an OpenAPI specification defines
  mcp         Run as an MCP server over stdio
  version     Show version information
  help        Show this help message

Examples:
  oasref resolve openapi.yaml '#/components/schemas/Pet'
  oasref resolve --format json openapi.yaml '#/components/schemas/Pet/properties/id'
  oasref components openapi.yaml
  oasref components --group schemas --format yaml openapi.yaml
  cat openapi.yaml | oasref resolve - '#/components/responses/NotFound'

Run 'oasref <command> --help' for more information on a command.`)
}
