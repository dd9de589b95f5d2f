package scaffold

import (
	"embed"
	"io/fs"
	"sort"
	"strings"

	"github.com/cockroachdb/errors"

	errUtils "github.com/agentx-labs/new-component/internal/errors"
)

// Placeholder is the literal token replaced by the component name.
const Placeholder = "COMPONENT_NAME"

//go:embed templates
var templateFS embed.FS

// Templates returns the embedded template tree. Set directories sit at its
// root.
func Templates() fs.FS {
	sub, err := fs.Sub(templateFS, "templates")
	if err != nil {
		// fs.Sub only fails on an invalid path literal.
		panic(err)
	}
	return sub
}

// Descriptor describes one generated file.
type Descriptor struct {
	Source      string                   // template path inside the set directory
	Destination func(name string) string // file name inside the component directory
	Format      bool                     // pass through the formatter before writing
	Label       string                   // progress line printed once written
}

// TemplateSet is a named, ordered list of descriptors.
type TemplateSet struct {
	Name        string
	Description string
	Dir         string
	Files       []Descriptor
}

// named returns a Destination producing <name><suffix>.
func named(suffix string) func(string) string {
	return func(name string) string { return name + suffix }
}

// fixed returns a Destination that ignores the name.
func fixed(file string) func(string) string {
	return func(string) string { return file }
}

var sets = map[string]TemplateSet{
	"react": {
		Name:        "react",
		Description: "React component with prop types, docs and an index re-export",
		Dir:         "react",
		Files: []Descriptor{
			{Source: "component.js", Destination: named(".js"), Format: true, Label: "Component created."},
			{Source: "component.data.js", Destination: named(".data.js"), Format: true, Label: "Data created."},
			{Source: "component.md", Destination: named(".md"), Label: "Doc created."},
			{Source: "index.js", Destination: fixed("index.js"), Format: true, Label: "Index created."},
		},
	},
	"react-styled": {
		Name:        "react-styled",
		Description: "React component with a styled-components stylesheet",
		Dir:         "react-styled",
		Files: []Descriptor{
			{Source: "component.js", Destination: named(".js"), Format: true, Label: "Component created."},
			{Source: "component.styles.js", Destination: named(".styles.js"), Format: true, Label: "Styles created."},
			{Source: "component.data.js", Destination: named(".data.js"), Format: true, Label: "Data created."},
			{Source: "component.md", Destination: named(".md"), Label: "Doc created."},
			{Source: "index.js", Destination: fixed("index.js"), Format: true, Label: "Index created."},
		},
	},
}

// DefaultSet is used when no template set is configured.
const DefaultSet = "react"

// Lookup returns the template set with the given name.
func Lookup(name string) (TemplateSet, error) {
	if name == "" {
		name = DefaultSet
	}
	set, ok := sets[name]
	if !ok {
		return TemplateSet{}, errUtils.UserError(
			errors.Wrapf(errUtils.ErrUnknownTemplateSet, "%q", name),
			"available template sets: "+strings.Join(SetNames(), ", "))
	}
	return set, nil
}

// SetNames returns the names of all template sets, sorted.
func SetNames() []string {
	names := make([]string, 0, len(sets))
	for n := range sets {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Sets returns all template sets sorted by name.
func Sets() []TemplateSet {
	out := make([]TemplateSet, 0, len(sets))
	for _, n := range SetNames() {
		out = append(out, sets[n])
	}
	return out
}
