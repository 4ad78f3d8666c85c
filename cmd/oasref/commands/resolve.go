package commands

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/erraggy/oasref/resolver"
	"github.com/erraggy/oasref/spec"
)

// ResolveFlags contains flags for the resolve command
type ResolveFlags struct {
	Format string
	Quiet  bool
}

// SetupResolveFlags creates and configures a FlagSet for the resolve command.
// Returns the FlagSet and a ResolveFlags struct with bound flag variables.
func SetupResolveFlags() (*flag.FlagSet, *ResolveFlags) {
	fs := flag.NewFlagSet("resolve", flag.ContinueOnError)
	flags := &ResolveFlags{}

	fs.StringVar(&flags.Format, "format", FormatYAML, "output format: yaml or json")
	fs.BoolVar(&flags.Quiet, "q", false, "quiet mode: only output the resolved definition, no diagnostic messages")
	fs.BoolVar(&flags.Quiet, "quiet", false, "quiet mode: only output the resolved definition, no diagnostic messages")

	fs.Usage = func() {
		output := fs.Output()
		Writef(output, "Usage: oasref resolve [flags] <file|-> <ref>\n\n")
		Writef(output, "Resolve a $ref pointer against an OpenAPI specification and output the definition it targets.\n\n")
		Writef(output, "Supported reference shapes:\n")
		Writef(output, "  #/components/schemas/<name>\n")
		Writef(output, "  #/components/schemas/<name>/properties/<property>\n")
		Writef(output, "  #/components/parameters/<name>\n")
		Writef(output, "  #/components/responses/<name>\n")
		Writef(output, "  #/components/requestBodies/<name>\n\n")
		Writef(output, "Flags:\n")
		fs.PrintDefaults()
		Writef(output, "\nExamples:\n")
		Writef(output, "  oasref resolve openapi.yaml '#/components/schemas/Pet'\n")
		Writef(output, "  oasref resolve --format json openapi.yaml '#/components/schemas/Pet/properties/id'\n")
		Writef(output, "  cat openapi.yaml | oasref resolve -q - '#/components/responses/NotFound'\n")
		Writef(output, "\nExit Codes:\n")
		Writef(output, "  0    Reference resolved\n")
		Writef(output, "  1    Resolution failed (malformed pointer, unknown name, or chained reference)\n")
	}

	return fs, flags
}

// HandleResolve implements the resolve command.
func HandleResolve(args []string) error {
	fs, flags := SetupResolveFlags()

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	if fs.NArg() != 2 {
		fs.Usage()
		return fmt.Errorf("resolve command requires a file path and a reference")
	}
	if flags.Format == FormatText {
		flags.Format = FormatYAML
	}
	if err := ValidateOutputFormat(flags.Format); err != nil {
		return err
	}

	specPath, reference := fs.Arg(0), fs.Arg(1)

	doc, err := LoadSpec(specPath)
	if err != nil {
		return err
	}

	group, resolved, err := resolveReference(doc, reference)
	if err != nil {
		return err
	}

	if !flags.Quiet {
		OutputSpecHeader(specPath, doc.OpenAPI)
		Writef(os.Stderr, "Reference: %s\n", reference)
		Writef(os.Stderr, "Group: %s\n\n", group)
	}
	return OutputStructured(resolved, flags.Format)
}

// resolveReference dispatches a $ref to the resolver for its component group.
func resolveReference(doc *spec.Document, reference string) (group string, resolved any, err error) {
	switch {
	case strings.HasPrefix(reference, "#/components/schemas/"):
		schema, err := resolver.ResolveSchema(spec.NewReference[spec.Schema](reference), doc)
		return "schemas", schema, err
	case strings.HasPrefix(reference, "#/components/parameters/"):
		param, err := resolver.ResolveParameter(spec.NewReference[spec.Parameter](reference), doc)
		return "parameters", param, err
	case strings.HasPrefix(reference, "#/components/responses/"):
		resp, err := resolver.ResolveResponse(spec.NewReference[spec.Response](reference), doc)
		return "responses", resp, err
	case strings.HasPrefix(reference, "#/components/requestBodies/"):
		body, err := resolver.ResolveRequestBody(spec.NewReference[spec.RequestBody](reference), doc)
		return "requestBodies", body, err
	}
	return "", nil, fmt.Errorf(
		"unsupported reference %s: must target one of the schemas, parameters, responses, or requestBodies component groups", reference)
}
