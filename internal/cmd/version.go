package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"pkg.jsn.cam/swapstage/pkg/stage"
)

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the stage version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), stage.Version)
		},
	}
}
