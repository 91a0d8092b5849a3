// Package executor runs a stage.Worker in-process: it chunks input lines,
// maps chunks on a pool of goroutines, partitions and shuffles the map output
// by key, then reduces each key group.
package executor

import (
	"bufio"
	"context"
	"io"
)

// Chunk reads r line by line and sends groups of up to chunkSize lines on out.
// out is always closed before Chunk returns.
func Chunk(ctx context.Context, r io.Reader, chunkSize int, out chan<- []string) error {
	defer close(out)

	if chunkSize <= 0 {
		return ErrInvalidChunkSize
	}

	send := func(chunk []string) error {
		select {
		case out <- chunk:
			return nil
		case <-ctx.Done():
			return ctx.Err()
		}
	}

	scanner := bufio.NewScanner(r)
	chunk := make([]string, 0, chunkSize)
	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return err
		}

		chunk = append(chunk, scanner.Text())
		if len(chunk) >= chunkSize {
			if err := send(chunk); err != nil {
				return err
			}
			chunk = make([]string, 0, chunkSize)
		}
	}
	if err := scanner.Err(); err != nil {
		return err
	}

	if len(chunk) > 0 {
		return send(chunk)
	}
	return nil
}
