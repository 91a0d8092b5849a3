// Package swap exchanges the key and value of a record.
//
// Every function here is pure: no state, no I/O, no logging. They can be called
// from any number of goroutines at once.
package swap

import "pkg.jsn.cam/swapstage/pkg/record"

// Swap returns (value, key).
func Swap[K, V any](key K, value V) (V, K) {
	return value, key
}

// SwapRecord builds a new record whose key is r.Value and whose value is r.Key.
// Applying it twice yields r again.
func SwapRecord[K, V any](r record.Record[K, V]) record.Record[V, K] {
	k, v := Swap(r.Key, r.Value)
	return record.New(k, v)
}

// Swapper is the map-stage form of SwapRecord. The zero value is ready to use.
type Swapper[K, V any] struct{}

// Map emits exactly one swapped record for r. The emit callback is owned by
// the caller; Swapper never retains it.
func (Swapper[K, V]) Map(r record.Record[K, V], emit func(record.Record[V, K])) {
	emit(SwapRecord(r))
}

// MapAll swaps every record of in, preserving order and length.
func MapAll[K, V any](in []record.Record[K, V]) []record.Record[V, K] {
	out := make([]record.Record[V, K], 0, len(in))
	for _, r := range in {
		out = append(out, SwapRecord(r))
	}
	return out
}
