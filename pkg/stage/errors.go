package stage

import "errors"

// Sentinel errors for common error conditions
var (
	// Executor-related errors
	ErrInvalidExecutor = errors.New("invalid executor specified")
	ErrUnknownExecutor = errors.New("unknown executor")

	// Input errors
	ErrMalformedRecord = errors.New("malformed record")

	// Version/compatibility errors
	ErrIncompatibleVersion = errors.New("incompatible version")

	// Storage errors
	ErrBucketNotFound = errors.New("bucket not found")
	ErrRunNotFound    = errors.New("run not found")
)
