package cli

import (
	"path/filepath"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	"github.com/agentx-labs/new-component/internal/branding"
	"github.com/agentx-labs/new-component/internal/config"
	errUtils "github.com/agentx-labs/new-component/internal/errors"
	"github.com/agentx-labs/new-component/internal/format"
	"github.com/agentx-labs/new-component/internal/logger"
	"github.com/agentx-labs/new-component/internal/reporter"
	"github.com/agentx-labs/new-component/internal/scaffold"
)

// createOptions holds the flags of the root command.
type createOptions struct {
	dir       string
	template  string
	formatter string
}

// create runs one scaffolding: resolve settings, report the intro, check
// preconditions, then render the template set.
func (a *app) create(cmd *cobra.Command, args []string, opts *createOptions) error {
	cfg := config.Resolve(a.locations)
	settings := cfg.FormatSettings()
	if cmd.Flags().Changed("formatter") {
		settings.Engine = format.Engine(strings.ToLower(opts.formatter))
	}
	prettify := format.New(settings)
	logger.Debug("resolved configuration", "sources", cfg.Sources, "formatter", settings.Engine)

	var name string
	if len(args) > 0 {
		name = args[0]
	}
	dir := cfg.Dir
	if cmd.Flags().Changed("dir") {
		dir = opts.dir
	}
	tmpl := cfg.Template
	if cmd.Flags().Changed("template") {
		tmpl = opts.template
	}

	rc := scaffold.RunContext{Name: name, ParentDir: dir}
	rep := reporter.New(a.out, a.errOut)
	rep.Intro(name, rc.ComponentDir(), tmpl)

	if err := validateName(name); err != nil {
		return err
	}
	set, err := scaffold.Lookup(tmpl)
	if err != nil {
		return err
	}

	g := scaffold.New(
		scaffold.WithFs(a.fs),
		scaffold.WithFormatter(prettify),
		scaffold.WithProgress(rep.ItemCompleted),
	)
	if err := g.Preflight(rc); err != nil {
		return err
	}

	result, err := g.Generate(set, rc)
	if err != nil {
		logger.Debug("generation aborted", "state", result.State, "written", result.Files)
		return errUtils.Reported(err)
	}

	rep.Conclusion(result.ComponentDir, len(result.Files))
	return nil
}

// validateName rejects names that would not yield a single new directory
// directly under the parent.
func validateName(name string) error {
	if name == "" {
		return errUtils.UserError(errUtils.ErrMissingName,
			"Specify a name for your component, like this: "+branding.CLIName()+" <name>")
	}
	if name == "." || name == ".." || strings.ContainsAny(name, `/\`) || filepath.Base(name) != name {
		return errUtils.UserError(
			errors.Wrapf(errUtils.ErrInvalidName, "%q", name),
			"The name becomes a single directory; leave out path separators and relative segments.")
	}
	return nil
}
