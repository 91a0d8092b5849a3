package cmd

import (
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// newRunsCommand inspects a bbolt store written by `run --output bbolt`.
func newRunsCommand() *cobra.Command {
	var storePath string

	var cmd = &cobra.Command{
		Use:   "runs",
		Short: "Inspect stored runs",
	}
	cmd.PersistentFlags().StringVarP(&storePath, "store", "s", "", "bbolt store path")
	cmd.MarkPersistentFlagRequired("store")

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List stored runs",
		RunE: func(cmd *cobra.Command, args []string) error {
			sink, err := openSink(storePath, zap.NewNop())
			if err != nil {
				return err
			}
			defer sink.Close()

			runs, err := sink.Runs()
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tEXECUTOR\tRECORDS\tCREATED")
			for _, r := range runs {
				fmt.Fprintf(w, "%s\t%s\t%d\t%s\n", r.ID, r.Executor, r.Records, r.CreatedAt.Format(time.RFC3339))
			}
			return w.Flush()
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "show RUN_ID",
		Short: "Print the records of a run",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sink, err := openSink(storePath, zap.NewNop())
			if err != nil {
				return err
			}
			defer sink.Close()

			kvs, err := sink.Records(args[0])
			if err != nil {
				return err
			}
			for _, kv := range kvs {
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", kv.Key, kv.Value)
			}
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "delete RUN_ID",
		Short: "Delete a stored run",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sink, err := openSink(storePath, zap.NewNop())
			if err != nil {
				return err
			}
			defer sink.Close()

			return sink.DeleteRun(args[0])
		},
	})

	return cmd
}
