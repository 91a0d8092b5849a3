package textswap

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pkg.jsn.cam/swapstage/pkg/stage"
)

func TestTextSwapWorker_Map(t *testing.T) {
	t.Parallel()

	var out []stage.KeyValue
	err := TextSwapWorker{}.Map([]string{"user\tlogin", "a\tb\tc", "\tempty-key"}, func(kv stage.KeyValue) {
		out = append(out, kv)
	})
	require.NoError(t, err)
	assert.Equal(t, []stage.KeyValue{
		{Key: "login", Value: "user"},
		{Key: "b\tc", Value: "a"},
		{Key: "empty-key", Value: ""},
	}, out)
}

func TestTextSwapWorker_MissingSeparator(t *testing.T) {
	t.Parallel()

	err := TextSwapWorker{Separator: "|"}.Map([]string{"a|b", "nope"}, func(stage.KeyValue) {})
	assert.ErrorIs(t, err, stage.ErrMalformedRecord)
}
