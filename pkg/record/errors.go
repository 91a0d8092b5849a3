package record

import (
	"errors"
	"fmt"
	"strconv"
)

// ErrTypeMismatch is returned when a serialized key or value does not decode
// to the declared type.
var ErrTypeMismatch = errors.New("type mismatch")

// TypeMismatchError describes which field failed to decode and why.
type TypeMismatchError struct {
	Field string // "key" or "value"
	Want  string // declared type, e.g. "int32"
	Got   string // raw input
	Err   error
}

func (e *TypeMismatchError) Error() string {
	msg := fmt.Sprintf("type mismatch: %s %q is not a valid %s", e.Field, e.Got, e.Want)
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *TypeMismatchError) Is(target error) bool {
	return target == ErrTypeMismatch
}

func (e *TypeMismatchError) Unwrap() error {
	return e.Err
}

// ParseInt32 decodes a base-10 32-bit signed integer. Out of range input is an
// error, never truncated.
func ParseInt32(field, text string) (int32, error) {
	n, err := strconv.ParseInt(text, 10, 32)
	if err != nil {
		var numErr *strconv.NumError
		if errors.As(err, &numErr) {
			err = numErr.Err
		}
		return 0, &TypeMismatchError{Field: field, Want: "int32", Got: text, Err: err}
	}
	return int32(n), nil
}

// FormatInt32 encodes n the way ParseInt32 expects to read it.
func FormatInt32(n int32) string {
	return strconv.FormatInt(int64(n), 10)
}
