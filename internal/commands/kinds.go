package commands

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/Dunsteer/ngrx-essentials-generator/scaffold"
)

func newKindsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "kinds",
		Short: "List the file kinds generate can emit",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "KIND\tFILE")
			for _, k := range scaffold.AllKinds() {
				fmt.Fprintf(w, "%s\t%s\n", k, k.Filename("{name}"))
			}
			return w.Flush()
		},
	}
}
