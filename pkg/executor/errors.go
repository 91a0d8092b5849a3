package executor

import "errors"

var (
	ErrInvalidChunkSize   = errors.New("invalid chunk size")
	ErrInvalidParallelism = errors.New("invalid parallelism")
	ErrInvalidPartitions  = errors.New("invalid partition count")
	ErrChunking           = errors.New("error during chunking phase")
	ErrMap                = errors.New("error during map phase")
	ErrReduce             = errors.New("error during reduce phase")
)
