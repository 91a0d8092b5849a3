package cmd

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"
	"pkg.jsn.cam/swapstage/internal/generator"
)

func newGenCommand() *cobra.Command {
	var (
		outputPath string
		count      int64
		userCount  int
		skew       float64
		seed       uint64
	)

	var cmd = &cobra.Command{
		Use:       "gen EXECUTOR",
		Short:     "Generate sample input for an executor",
		Args:      cobra.ExactArgs(1),
		ValidArgs: generator.List(),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := generator.Get(args[0], generator.Options{UserCount: userCount, Skew: skew})
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("count") {
				count = g.DefaultCount()
			}
			if !cmd.Flags().Changed("seed") {
				seed = uint64(time.Now().UnixNano())
			}

			var w io.Writer = cmd.OutOrStdout()
			if outputPath != "-" {
				if err := os.MkdirAll(filepath.Dir(outputPath), 0755); err != nil {
					return err
				}
				f, err := os.Create(outputPath)
				if err != nil {
					return fmt.Errorf("create output: %w", err)
				}
				defer f.Close()
				w = f
			}

			return generator.Write(w, g, count, seed)
		},
	}

	cmd.Flags().StringVarP(&outputPath, "output", "o", "-", "output file, or - for stdout")
	cmd.Flags().Int64VarP(&count, "count", "n", 0, "number of lines (default: generator default)")
	cmd.Flags().IntVar(&userCount, "users", 100, "number of distinct users")
	cmd.Flags().Float64Var(&skew, "skew", 0, "fraction of lines sharing one activity (0-1)")
	cmd.Flags().Uint64Var(&seed, "seed", 0, "random seed (default: time based)")

	return cmd
}
