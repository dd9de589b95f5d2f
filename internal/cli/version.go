package cli

import (
	"encoding/json"
	"fmt"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	"github.com/agentx-labs/new-component/internal/branding"
	"github.com/agentx-labs/new-component/internal/version"
)

func init() {
	subcommands = append(subcommands, newVersionCmd)
}

func newVersionCmd(a *app) *cobra.Command {
	var (
		versionShort bool
		versionJSON  bool
	)

	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			v := version.Display(buildVersion)

			if versionShort {
				fmt.Fprintln(a.out, v)
				return nil
			}

			if versionJSON {
				info := map[string]any{
					"version": v,
					"release": version.IsRelease(buildVersion),
					"commit":  buildCommit,
					"date":    buildDate,
				}
				out, err := json.MarshalIndent(info, "", "  ")
				if err != nil {
					return errors.Wrap(err, "marshaling version info")
				}
				fmt.Fprintln(a.out, string(out))
				return nil
			}

			fmt.Fprintf(a.out, "%s version %s (commit: %s, built: %s)\n", branding.CLIName(), v, buildCommit, buildDate)
			return nil
		},
	}

	cmd.Flags().BoolVar(&versionShort, "short", false, "Print version number only")
	cmd.Flags().BoolVar(&versionJSON, "json", false, "Print version info as JSON")
	return cmd
}
