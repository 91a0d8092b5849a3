package executor

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChunk(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name           string
		content        string
		chunkSize      int
		wantChunks     int
		wantTotalLines int
	}{
		{"empty input", "", 10, 0, 0},
		{"single line", "1\t2", 10, 1, 1},
		{"trailing newline", "1\t2\n3\t4\n", 10, 1, 2},
		{"exact multiple", "a\nb\nc\nd\n", 2, 2, 4},
		{"remainder", "a\nb\nc\nd\ne", 2, 3, 5},
		{"chunk of one", "a\nb\nc", 1, 3, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			out := make(chan []string, 10)
			errCh := make(chan error, 1)
			go func() {
				errCh <- Chunk(context.Background(), strings.NewReader(tt.content), tt.chunkSize, out)
			}()

			var chunks [][]string
			for chunk := range out {
				assert.LessOrEqual(t, len(chunk), tt.chunkSize)
				chunks = append(chunks, chunk)
			}
			require.NoError(t, <-errCh)

			totalLines := 0
			for _, chunk := range chunks {
				totalLines += len(chunk)
			}
			assert.Len(t, chunks, tt.wantChunks)
			assert.Equal(t, tt.wantTotalLines, totalLines)
		})
	}
}

func TestChunk_InvalidChunkSize(t *testing.T) {
	t.Parallel()

	out := make(chan []string, 1)
	err := Chunk(context.Background(), strings.NewReader("a"), 0, out)
	assert.ErrorIs(t, err, ErrInvalidChunkSize)

	_, ok := <-out
	assert.False(t, ok, "channel should be closed")
}

// TestChunk_ContextCancellation verifies Chunk respects context cancellation
func TestChunk_ContextCancellation(t *testing.T) {
	t.Parallel()

	input := strings.Repeat("this is a test line with some content\n", 10000)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	out := make(chan []string, 10)
	err := Chunk(ctx, strings.NewReader(input), 1, out)
	assert.ErrorIs(t, err, context.Canceled)

	_, ok := <-out
	assert.False(t, ok, "channel should be closed after cancellation")
}

// A consumer that stops reading must not leave Chunk blocked.
func TestChunk_BlockedSendUnblocksOnCancel(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	out := make(chan []string)
	errCh := make(chan error, 1)
	go func() {
		errCh <- Chunk(ctx, strings.NewReader("a\nb\nc\n"), 1, out)
	}()

	<-out
	cancel()
	assert.ErrorIs(t, <-errCh, context.Canceled)
}
