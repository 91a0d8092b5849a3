package activityswap

import (
	"fmt"
	"strings"

	"pkg.jsn.cam/swapstage/pkg/record"
	"pkg.jsn.cam/swapstage/pkg/stage"
	"pkg.jsn.cam/swapstage/pkg/swap"
)

// ActivitySwapWorker swaps integer (key, value) pairs.
// Input format: "key<TAB>value" per line, both base-10 int32 (e.g., "17\t3").
type ActivitySwapWorker struct {
	Separator string
}

// Map decodes each line, swaps it and emits the result. A line that does not
// decode stops the chunk with an error; nothing is skipped or coerced.
func (w ActivitySwapWorker) Map(chunk []string, emit stage.Emitter) error {
	sep := w.separator()
	for i, line := range chunk {
		if line == "" {
			continue
		}

		r, err := decode(line, sep)
		if err != nil {
			return fmt.Errorf("line %d: %w", i+1, err)
		}

		out := swap.SwapRecord(r)
		emit(stage.KeyValue{Key: record.FormatInt32(out.Key), Value: record.FormatInt32(out.Value)})
	}

	return nil
}

// Reduce is the identity: every value is emitted under its key.
func (w ActivitySwapWorker) Reduce(key string, values []string, emit stage.Emitter) error {
	for _, v := range values {
		emit(stage.KeyValue{Key: key, Value: v})
	}
	return nil
}

func (w ActivitySwapWorker) Description() string {
	return "Swaps int32 key/value pairs (format: key<TAB>value)"
}

func (w ActivitySwapWorker) WithSeparator(sep string) stage.Worker {
	w.Separator = sep
	return w
}

func (w ActivitySwapWorker) separator() string {
	if w.Separator == "" {
		return stage.DefaultSeparator
	}
	return w.Separator
}

func decode(line, sep string) (record.Record[int32, int32], error) {
	rawKey, rawValue, ok := strings.Cut(line, sep)
	if !ok {
		return record.Record[int32, int32]{}, fmt.Errorf("%w: missing separator %q in %q", stage.ErrMalformedRecord, sep, line)
	}

	key, err := record.ParseInt32("key", rawKey)
	if err != nil {
		return record.Record[int32, int32]{}, err
	}
	value, err := record.ParseInt32("value", rawValue)
	if err != nil {
		return record.Record[int32, int32]{}, err
	}

	return record.New(key, value), nil
}
