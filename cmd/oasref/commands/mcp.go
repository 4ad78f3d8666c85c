package commands

import (
	"context"
	"errors"
	"flag"
	"os"
	"os/signal"

	"github.com/erraggy/oasref/internal/mcpserver"
)

// HandleMCP implements the mcp command: it runs the MCP server over stdio
// until the client disconnects or the process is interrupted.
func HandleMCP(args []string) error {
	fs := flag.NewFlagSet("mcp", flag.ContinueOnError)
	fs.Usage = func() {
		output := fs.Output()
		Writef(output, "Usage: oasref mcp\n\n")
		Writef(output, "Run oasref as an MCP (Model Context Protocol) server over stdio.\n\n")
		Writef(output, "Tools exposed:\n")
		Writef(output, "  resolve_ref       Resolve a $ref pointer to its definition\n")
		Writef(output, "  list_components   List the named components a spec defines\n")
	}
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	return mcpserver.Run(ctx)
}
