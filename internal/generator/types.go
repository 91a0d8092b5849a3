// Package generator writes sample input for the executors.
package generator

import (
	"io"
	"math/rand/v2"
)

// Generator produces input lines for one executor.
type Generator interface {
	// Init sets a per-instance random source.
	Init(r *rand.Rand)

	WriteLine(w io.Writer) error

	Description() string

	// DefaultCount is the suggested number of lines.
	DefaultCount() int64
}
