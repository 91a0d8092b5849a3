package record

import (
	"errors"
	"math"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseInt32(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   string
		want    int32
		wantErr error
	}{
		{"zero", "0", 0, nil},
		{"positive", "42", 42, nil},
		{"negative", "-7", -7, nil},
		{"explicit plus", "+5", 5, nil},
		{"max", "2147483647", math.MaxInt32, nil},
		{"min", "-2147483648", math.MinInt32, nil},
		{"overflow", "2147483648", 0, strconv.ErrRange},
		{"underflow", "-2147483649", 0, strconv.ErrRange},
		{"empty", "", 0, strconv.ErrSyntax},
		{"float", "1.5", 0, strconv.ErrSyntax},
		{"word", "abc", 0, strconv.ErrSyntax},
		{"padded", " 1", 0, strconv.ErrSyntax},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := ParseInt32("key", tt.input)
			if tt.wantErr == nil {
				require.NoError(t, err)
				assert.Equal(t, tt.want, got)
				return
			}

			require.Error(t, err)
			assert.ErrorIs(t, err, ErrTypeMismatch)
			assert.ErrorIs(t, err, tt.wantErr)

			var mismatch *TypeMismatchError
			require.True(t, errors.As(err, &mismatch))
			assert.Equal(t, "key", mismatch.Field)
			assert.Equal(t, "int32", mismatch.Want)
			assert.Equal(t, tt.input, mismatch.Got)
		})
	}
}

func TestFormatInt32_RoundTrip(t *testing.T) {
	t.Parallel()

	for _, n := range []int32{math.MinInt32, -1, 0, 1, math.MaxInt32} {
		got, err := ParseInt32("value", FormatInt32(n))
		require.NoError(t, err)
		assert.Equal(t, n, got)
	}
}

func TestTypeMismatchError_Message(t *testing.T) {
	t.Parallel()

	_, err := ParseInt32("value", "x")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `value "x" is not a valid int32`)
}
