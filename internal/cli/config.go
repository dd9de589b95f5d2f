package cli

import (
	"fmt"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
	"go.yaml.in/yaml/v3"

	"github.com/agentx-labs/new-component/internal/config"
)

func init() {
	subcommands = append(subcommands, newConfigCmd)
}

func newConfigCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Print the resolved configuration",
		Long: `Print the configuration a run would use after merging the built-in
defaults, the user and project override files, and environment variables.
Flags given on the command line are not included.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Resolve(a.locations)

			if len(cfg.Sources) == 0 {
				fmt.Fprintln(a.out, "# sources: built-in defaults")
			}
			for _, src := range cfg.Sources {
				fmt.Fprintf(a.out, "# source: %s\n", src)
			}

			out, err := yaml.Marshal(cfg)
			if err != nil {
				return errors.Wrap(err, "marshaling config")
			}
			_, err = a.out.Write(out)
			return err
		},
	}
}
