package cmd

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"pkg.jsn.cam/swapstage/internal/config"
	"pkg.jsn.cam/swapstage/pkg/executor"
	"pkg.jsn.cam/swapstage/pkg/executors"
	"pkg.jsn.cam/swapstage/pkg/storage"
)

func newRunCommand() *cobra.Command {
	var (
		configPath   string
		inputPath    string
		executorName string
		outputType   string
		outputPath   string
	)

	var cmd = &cobra.Command{
		Use:   "run",
		Short: "Run the stage over an input file",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Default()
			if configPath != "" {
				var err error
				if cfg, err = config.NewFromFile(configPath); err != nil {
					return err
				}
			}
			if cmd.Flags().Changed("executor") {
				cfg.Stage.Executor = executorName
			}
			if cmd.Flags().Changed("output") {
				cfg.Output.Type = outputType
			}
			if cmd.Flags().Changed("output-path") {
				cfg.Output.Path = outputPath
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			logger, err := newLogger(cfg.Logger.Level)
			if err != nil {
				return err
			}
			defer logger.Sync()
			l := logger.Named("swapstage.run")

			worker, err := executors.Lookup(cfg.Stage.Executor, cfg.Stage.Separator)
			if err != nil {
				return err
			}

			var in io.Reader = cmd.InOrStdin()
			if inputPath != "-" {
				f, err := os.Open(inputPath)
				if err != nil {
					return fmt.Errorf("open input: %w", err)
				}
				defer f.Close()
				in = f
			}

			result, err := executor.Run(cmd.Context(), worker, in, executor.Options{
				ChunkSize:   cfg.Stage.ChunkSize,
				Parallelism: cfg.Stage.Parallelism,
				Partitions:  cfg.Stage.Partitions,
				Logger:      l,
			})
			if err != nil {
				return err
			}

			switch cfg.Output.Type {
			case config.OutputBbolt:
				sink, err := openSink(cfg.Output.Path, l)
				if err != nil {
					return err
				}
				defer sink.Close()

				if err := sink.Write(result.RunID, cfg.Stage.Executor, result.Records); err != nil {
					return fmt.Errorf("store output: %w", err)
				}
				fmt.Fprintln(cmd.OutOrStdout(), result.RunID)
			default:
				w := bufio.NewWriter(cmd.OutOrStdout())
				for _, kv := range result.Records {
					fmt.Fprintf(w, "%s%s%s\n", kv.Key, cfg.Stage.Separator, kv.Value)
				}
				if err := w.Flush(); err != nil {
					return err
				}
			}

			l.Info("done",
				zap.String("run_id", result.RunID),
				zap.Int("lines", result.Lines),
				zap.Int("records", len(result.Records)),
			)
			return nil
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "path to YAML config file")
	cmd.Flags().StringVarP(&inputPath, "input", "i", "-", "input file, or - for stdin")
	cmd.Flags().StringVarP(&executorName, "executor", "e", "", "executor name (overrides config)")
	cmd.Flags().StringVarP(&outputType, "output", "o", "", "output type: stdout or bbolt (overrides config)")
	cmd.Flags().StringVar(&outputPath, "output-path", "", "bbolt file path (overrides config)")

	return cmd
}

func openSink(path string, logger *zap.Logger) (*storage.Sink, error) {
	backend, err := storage.NewBboltBackend(path)
	if err != nil {
		return nil, err
	}

	sink, err := storage.NewSink(backend, storage.WithLogger(logger))
	if err != nil {
		backend.Close()
		return nil, err
	}
	return sink, nil
}
