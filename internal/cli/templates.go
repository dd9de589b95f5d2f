package cli

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/agentx-labs/new-component/internal/scaffold"
)

func init() {
	subcommands = append(subcommands, newTemplatesCmd)
}

func newTemplatesCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "templates",
		Short: "List the packaged template sets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
			for _, set := range scaffold.Sets() {
				files := make([]string, 0, len(set.Files))
				for _, d := range set.Files {
					files = append(files, d.Destination("<Name>"))
				}
				marker := ""
				if set.Name == scaffold.DefaultSet {
					marker = " (default)"
				}
				fmt.Fprintf(w, "%s%s\t%s\n", set.Name, marker, set.Description)
				fmt.Fprintf(w, "\t%s\n", strings.Join(files, ", "))
			}
			return w.Flush()
		},
	}
}
