// Package record defines the key/value pair that flows between pipeline stages.
package record

// Record is an ordered (key, value) pair. It is a plain value: stages build new
// records instead of modifying the ones they receive.
type Record[K, V any] struct {
	Key   K `json:"key"`
	Value V `json:"value"`
}

// New builds a Record from a key and a value.
func New[K, V any](key K, value V) Record[K, V] {
	return Record[K, V]{Key: key, Value: value}
}
