package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
	"pkg.jsn.cam/swapstage/pkg/executor"
	"pkg.jsn.cam/swapstage/pkg/executors"
	"pkg.jsn.cam/swapstage/pkg/stage"
)

const (
	OutputStdout = "stdout"
	OutputBbolt  = "bbolt"
)

type Logger struct {
	Level string `yaml:"level"`
}

type Stage struct {
	Executor    string `yaml:"executor"`
	Separator   string `yaml:"separator"`
	ChunkSize   int    `yaml:"chunk_size"`
	Parallelism int    `yaml:"parallelism"`
	Partitions  int    `yaml:"partitions"`
}

type Output struct {
	Type string `yaml:"type"`
	Path string `yaml:"path"`
}

type Config struct {
	Logger Logger `yaml:"logger"`
	Stage  Stage  `yaml:"stage"`
	Output Output `yaml:"output"`
}

func Default() *Config {
	return &Config{
		Logger: Logger{Level: "info"},
		Stage: Stage{
			Executor:    "activityswap",
			Separator:   stage.DefaultSeparator,
			ChunkSize:   executor.DefaultChunkSize,
			Parallelism: executor.DefaultParallelism,
			Partitions:  executor.DefaultPartitions,
		},
		Output: Output{Type: OutputStdout},
	}
}

// NewFromFile reads a YAML config. Fields left out of the file keep their
// Default values.
func NewFromFile(fpath string) (*Config, error) {
	bs, err := os.ReadFile(fpath)
	if err != nil {
		return nil, err
	}

	cfg := Default()
	if err := yaml.Unmarshal(bs, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", fpath, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", fpath, err)
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	var errs []error

	if !executors.IsValidExecutor(c.Stage.Executor) {
		errs = append(errs, fmt.Errorf("%w: %q", stage.ErrUnknownExecutor, c.Stage.Executor))
	}
	if c.Stage.Separator == "" {
		errs = append(errs, errors.New("stage.separator must not be empty"))
	}
	if c.Stage.ChunkSize <= 0 {
		errs = append(errs, executor.ErrInvalidChunkSize)
	}
	if c.Stage.Parallelism <= 0 {
		errs = append(errs, executor.ErrInvalidParallelism)
	}
	if c.Stage.Partitions <= 0 {
		errs = append(errs, executor.ErrInvalidPartitions)
	}

	switch c.Output.Type {
	case OutputStdout:
	case OutputBbolt:
		if c.Output.Path == "" {
			errs = append(errs, errors.New("output.path is required for bbolt output"))
		}
	default:
		errs = append(errs, fmt.Errorf("unsupported output type: %q", c.Output.Type))
	}

	return errors.Join(errs...)
}
