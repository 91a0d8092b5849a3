package textswap

import (
	"fmt"
	"strings"

	"pkg.jsn.cam/swapstage/pkg/record"
	"pkg.jsn.cam/swapstage/pkg/stage"
	"pkg.jsn.cam/swapstage/pkg/swap"
)

// TextSwapWorker swaps arbitrary string keys and values.
// Input format: "key<TAB>value" per line. Only the first separator splits.
type TextSwapWorker struct {
	Separator string
}

func (w TextSwapWorker) Map(chunk []string, emit stage.Emitter) error {
	sep := w.Separator
	if sep == "" {
		sep = stage.DefaultSeparator
	}

	for i, line := range chunk {
		if line == "" {
			continue
		}

		key, value, ok := strings.Cut(line, sep)
		if !ok {
			return fmt.Errorf("line %d: %w: missing separator %q in %q", i+1, stage.ErrMalformedRecord, sep, line)
		}

		out := swap.SwapRecord(record.New(key, value))
		emit(stage.KeyValue{Key: out.Key, Value: out.Value})
	}

	return nil
}

// Reduce emits every value unchanged.
func (w TextSwapWorker) Reduce(key string, values []string, emit stage.Emitter) error {
	for _, v := range values {
		emit(stage.KeyValue{Key: key, Value: v})
	}
	return nil
}

func (w TextSwapWorker) Description() string {
	return "Swaps string key/value pairs (format: key<TAB>value)"
}

func (w TextSwapWorker) WithSeparator(sep string) stage.Worker {
	w.Separator = sep
	return w
}
