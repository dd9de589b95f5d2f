package cli

import (
	"io"
	"os"
	"strings"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/agentx-labs/new-component/internal/branding"
	"github.com/agentx-labs/new-component/internal/config"
	"github.com/agentx-labs/new-component/internal/format"
	"github.com/agentx-labs/new-component/internal/logger"
	"github.com/agentx-labs/new-component/internal/reporter"
	"github.com/agentx-labs/new-component/internal/version"
)

var (
	buildVersion string
	buildCommit  string
	buildDate    string
)

// subcommands holds the constructors registered by each command file's init.
var subcommands []func(*app) *cobra.Command

// app carries the process-level dependencies shared by every command.
type app struct {
	locations config.Locations
	fs        afero.Fs
	out       io.Writer
	errOut    io.Writer
	verbose   bool
}

func newApp() *app {
	return &app{
		locations: config.DefaultLocations(),
		fs:        afero.NewOsFs(),
		out:       os.Stdout,
		errOut:    os.Stderr,
	}
}

func newRootCmd(a *app) *cobra.Command {
	opts := &createOptions{}

	cmd := &cobra.Command{
		Use:   branding.CLIName() + " <componentName>",
		Short: branding.Description(),
		Long: branding.DisplayName() + ` creates a component directory from a packaged template set.

The parent directory defaults to "` + config.DefaultDir + `" and can be overridden in
` + branding.ConfigFile() + `.json (or .yaml) in your home directory or in the
project, by ` + branding.EnvVar("dir") + `, or with --dir.`,
		Example: `  ` + branding.CLIName() + ` Button
  ` + branding.CLIName() + ` Button --dir src/shared/components
  ` + branding.CLIName() + ` Card -t react-styled --formatter esbuild`,
		Version:       version.Display(buildVersion),
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := os.Getenv(branding.EnvVar("log_level"))
			if a.verbose {
				level = "debug"
			}
			if err := logger.Setup(a.errOut, level); err != nil {
				logger.Warn("falling back to default log level", "err", err)
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.create(cmd, args, opts)
		},
	}

	cmd.SetVersionTemplate(branding.CLIName() + " {{.Version}}\n")

	f := cmd.Flags()
	f.StringVarP(&opts.dir, "dir", "d", "", `Path to the "components" directory (default from config: "`+config.DefaultDir+`")`)
	f.StringVarP(&opts.template, "template", "t", "", "Template set to render (see 'templates')")
	f.StringVar(&opts.formatter, "formatter", "", "Formatter engine: "+engineList())
	cmd.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "Log diagnostics to stderr")

	for _, newCmd := range subcommands {
		cmd.AddCommand(newCmd(a))
	}
	return cmd
}

func engineList() string {
	names := make([]string, 0, len(format.Engines()))
	for _, e := range format.Engines() {
		names = append(names, string(e))
	}
	return strings.Join(names, ", ")
}

// execute runs the command tree with args and prints any returned error.
func (a *app) execute(args []string) error {
	cmd := newRootCmd(a)
	cmd.SetArgs(args)
	cmd.SetOut(a.out)
	cmd.SetErr(a.errOut)

	ran, err := cmd.ExecuteC()
	if err != nil {
		rep := reporter.New(a.out, a.errOut)
		if ran == nil || !ran.HasParent() {
			rep.Error(err)
		} else {
			rep.CommandError(ran.Name(), err)
		}
	}
	return err
}

// Execute runs the root command with build info injected via ldflags.
func Execute(version, commit, date string) error {
	buildVersion = version
	buildCommit = commit
	buildDate = date
	return newApp().execute(os.Args[1:])
}
