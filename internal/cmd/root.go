package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func NewRootCommand() *cobra.Command {
	var cmd = &cobra.Command{
		Use:   "swapstage",
		Short: "Swap the key and value of every input record",
		Long: `swapstage runs a record-swapping map stage over key/value lines,
shuffles the swapped records by key and writes them to stdout or a bbolt store.`,
		SilenceUsage: true,
	}

	cmd.AddCommand(newRunCommand())
	cmd.AddCommand(newExecutorsCommand())
	cmd.AddCommand(newRunsCommand())
	cmd.AddCommand(newGenCommand())
	cmd.AddCommand(newVersionCommand())

	return cmd
}

// Execute is called by main.main().
func Execute() {
	cmd := NewRootCommand()
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newLogger(level string) (*zap.Logger, error) {
	lvl, err := zap.ParseAtomicLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}

	cfg := zap.NewDevelopmentConfig()
	cfg.Level = lvl
	return cfg.Build()
}
