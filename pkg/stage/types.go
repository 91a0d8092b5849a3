// Package stage defines the contract between a map/reduce host and the
// executors it runs.
package stage

// KeyValue is the serialized form of a record as the host moves it between
// phases.
type KeyValue struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// Emitter receives records produced by Map or Reduce.
type Emitter func(KeyValue)

type Worker interface {
	// Map transforms every line of chunk and emits the results.
	Map(chunk []string, emit Emitter) error
	// Reduce is called once per distinct key after the shuffle.
	Reduce(key string, values []string, emit Emitter) error
	Description() string
}

// DelimitedWorker is an optional interface for workers that parse
// "key<sep>value" lines. WithSeparator returns a copy using sep.
type DelimitedWorker interface {
	Worker
	WithSeparator(sep string) Worker
}

// DefaultSeparator splits key from value on input lines.
const DefaultSeparator = "\t"
