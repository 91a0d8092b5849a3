package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"pkg.jsn.cam/swapstage/pkg/executors"
)

func newExecutorsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "executors",
		Short: "List available executors",
		RunE: func(cmd *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			for _, name := range executors.ListExecutors() {
				desc, err := executors.GetDescription(name)
				if err != nil {
					return err
				}
				fmt.Fprintf(w, "%s\t%s\n", name, desc)
			}
			return w.Flush()
		},
	}
}
