package commands

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/erraggy/oasref/spec"
)

// ComponentsFlags contains flags for the components command
type ComponentsFlags struct {
	Group  string
	Format string
	Quiet  bool
}

// componentGroupNames lists the component groups the command reports, in
// display order.
var componentGroupNames = []string{"schemas", "parameters", "responses", "requestBodies"}

// SetupComponentsFlags creates and configures a FlagSet for the components command.
// Returns the FlagSet and a ComponentsFlags struct with bound flag variables.
func SetupComponentsFlags() (*flag.FlagSet, *ComponentsFlags) {
	fs := flag.NewFlagSet("components", flag.ContinueOnError)
	flags := &ComponentsFlags{}

	fs.StringVar(&flags.Group, "group", "", "narrow to one component group: schemas, parameters, responses, or requestBodies")
	fs.StringVar(&flags.Format, "format", FormatText, "output format: text, json, or yaml")
	fs.BoolVar(&flags.Quiet, "q", false, "quiet mode: only output the listing, no diagnostic messages")
	fs.BoolVar(&flags.Quiet, "quiet", false, "quiet mode: only output the listing, no diagnostic messages")

	fs.Usage = func() {
		output := fs.Output()
		Writef(output, "Usage: oasref components [flags] <file|->\n\n")
		Writef(output, "List the named components an OpenAPI specification defines, grouped by component group.\n\n")
		Writef(output, "Flags:\n")
		fs.PrintDefaults()
		Writef(output, "\nExamples:\n")
		Writef(output, "  oasref components openapi.yaml\n")
		Writef(output, "  oasref components --group schemas openapi.yaml\n")
		Writef(output, "  oasref components --format json openapi.yaml\n")
		Writef(output, "  cat openapi.yaml | oasref components -q -\n")
	}

	return fs, flags
}

// componentListing is the structured output of the components command.
type componentListing struct {
	Group   string            `json:"group"              yaml:"group"`
	Count   int               `json:"count"              yaml:"count"`
	Names   []string          `json:"names,omitempty"    yaml:"names,omitempty"`
	Targets map[string]string `json:"targets,omitempty"  yaml:"targets,omitempty"`
}

// HandleComponents implements the components command.
func HandleComponents(args []string) error {
	fs, flags := SetupComponentsFlags()

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	if fs.NArg() != 1 {
		fs.Usage()
		return fmt.Errorf("components command requires exactly one file path")
	}
	if err := ValidateOutputFormat(flags.Format); err != nil {
		return err
	}
	if flags.Group != "" && !containsFold(componentGroupNames, flags.Group) {
		return fmt.Errorf("invalid group '%s'. Valid groups: %s", flags.Group, strings.Join(componentGroupNames, ", "))
	}

	specPath := fs.Arg(0)
	doc, err := LoadSpec(specPath)
	if err != nil {
		return err
	}

	if !flags.Quiet {
		OutputSpecHeader(specPath, doc.OpenAPI)
		Writef(os.Stderr, "\n")
	}

	listings := collectListings(doc, flags.Group)

	if flags.Format != FormatText {
		return OutputStructured(listings, flags.Format)
	}

	if len(listings) == 0 {
		fmt.Println("No components defined")
		return nil
	}
	for _, listing := range listings {
		fmt.Printf("%s (%d):\n", GroupHeading(listing.Group), listing.Count)
		for _, name := range listing.Names {
			if target, ok := listing.Targets[name]; ok {
				fmt.Printf("  %s -> %s\n", name, target)
				continue
			}
			fmt.Printf("  %s\n", name)
		}
		fmt.Println()
	}
	return nil
}

func collectListings(doc *spec.Document, onlyGroup string) []componentListing {
	if !doc.HasComponents() {
		return nil
	}
	var listings []componentListing
	for _, group := range componentGroupNames {
		if onlyGroup != "" && !strings.EqualFold(onlyGroup, group) {
			continue
		}
		var listing componentListing
		switch group {
		case "schemas":
			listing = listingOf(group, doc.Components.Schemas)
		case "parameters":
			listing = listingOf(group, doc.Components.Parameters)
		case "responses":
			listing = listingOf(group, doc.Components.Responses)
		case "requestBodies":
			listing = listingOf(group, doc.Components.RequestBodies)
		}
		if listing.Count == 0 {
			continue
		}
		listings = append(listings, listing)
	}
	return listings
}

// listingOf flattens one component dictionary into a sorted listing. Entries
// that are themselves references record their target.
func listingOf[T any](group string, dict map[string]*spec.ReferenceOr[T]) componentListing {
	listing := componentListing{Group: group, Count: len(dict)}
	for name, ref := range dict {
		listing.Names = append(listing.Names, name)
		if ref.IsReference() {
			if listing.Targets == nil {
				listing.Targets = make(map[string]string)
			}
			listing.Targets[name] = ref.RefString()
		}
	}
	sort.Strings(listing.Names)
	return listing
}

func containsFold(haystack []string, needle string) bool {
	for _, s := range haystack {
		if strings.EqualFold(s, needle) {
			return true
		}
	}
	return false
}
