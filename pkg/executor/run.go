package executor

import (
	"context"
	"fmt"
	"io"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"pkg.jsn.cam/swapstage/pkg/stage"
)

const (
	DefaultChunkSize   = 1000
	DefaultParallelism = 4
	DefaultPartitions  = 4
)

type Options struct {
	ChunkSize   int
	Parallelism int
	Partitions  int
	Logger      *zap.Logger
}

func (o Options) withDefaults() Options {
	if o.ChunkSize == 0 {
		o.ChunkSize = DefaultChunkSize
	}
	if o.Parallelism == 0 {
		o.Parallelism = DefaultParallelism
	}
	if o.Partitions == 0 {
		o.Partitions = DefaultPartitions
	}
	if o.Logger == nil {
		o.Logger = zap.NewNop()
	}
	return o
}

// Result summarises one run.
type Result struct {
	RunID     string
	Chunks    int
	Lines     int
	MapOutput int
	Records   []stage.KeyValue
}

// Run executes worker over every line of r. Records come back grouped by
// partition, then sorted by key and value within a partition.
func Run(ctx context.Context, worker stage.Worker, r io.Reader, opts Options) (*Result, error) {
	opts = opts.withDefaults()
	if opts.Partitions < 0 {
		return nil, ErrInvalidPartitions
	}
	if opts.ChunkSize < 0 {
		return nil, ErrInvalidChunkSize
	}
	if opts.Parallelism < 0 {
		return nil, ErrInvalidParallelism
	}

	runID := uuid.NewString()
	l := opts.Logger.With(zap.String("run_id", runID))
	l.Info("starting run",
		zap.String("executor", worker.Description()),
		zap.Int("chunk_size", opts.ChunkSize),
		zap.Int("parallelism", opts.Parallelism),
		zap.Int("partitions", opts.Partitions),
	)

	chunks := make(chan []string, opts.Parallelism)
	var mapped *MapOutput

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if err := Chunk(gctx, r, opts.ChunkSize, chunks); err != nil {
			return fmt.Errorf("%w: %w", ErrChunking, err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		mapped, err = MapPhase(gctx, chunks, worker, opts.Parallelism)
		return err
	})
	if err := g.Wait(); err != nil {
		l.Error("map phase failed", zap.Error(err))
		return nil, err
	}

	l.Info("map phase complete",
		zap.Int("chunks", mapped.Chunks),
		zap.Int("lines", mapped.Lines),
		zap.Int("emitted", len(mapped.Records)),
	)

	partitioned := PartitionMapOutput(mapped.Records, opts.Partitions)

	result := &Result{
		RunID:     runID,
		Chunks:    mapped.Chunks,
		Lines:     mapped.Lines,
		MapOutput: len(mapped.Records),
	}
	for p := range opts.Partitions {
		kvs, ok := partitioned[p]
		if !ok {
			continue
		}

		grouped := ShuffleAndGroup(kvs)
		reduced, err := ReducePhase(grouped, worker)
		if err != nil {
			l.Error("reduce phase failed", zap.Int("partition", p), zap.Error(err))
			return nil, err
		}

		l.Debug("partition reduced",
			zap.Int("partition", p),
			zap.Int("keys", len(grouped)),
			zap.Int("records", len(reduced)),
		)
		result.Records = append(result.Records, reduced...)
	}

	l.Info("run complete", zap.Int("records", len(result.Records)))
	return result, nil
}
