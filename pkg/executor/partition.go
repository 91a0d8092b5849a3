package executor

import (
	"cmp"
	"hash/fnv"
	"slices"

	"pkg.jsn.cam/swapstage/pkg/stage"
)

// PartitionKey computes the partition for a key using FNV-1a hash
func PartitionKey(key string, numPartitions int) int {
	h := fnv.New32a()
	h.Write([]byte(key))

	return int(h.Sum32() % uint32(numPartitions))
}

// PartitionMapOutput groups key-value pairs by partition
func PartitionMapOutput(kvs []stage.KeyValue, numPartitions int) map[int][]stage.KeyValue {
	partitioned := make(map[int][]stage.KeyValue)

	for _, kv := range kvs {
		partition := PartitionKey(kv.Key, numPartitions)
		partitioned[partition] = append(partitioned[partition], kv)
	}

	return partitioned
}

// ShuffleAndGroup sorts key-value pairs by key, then value, and groups by key.
// kvs is sorted in place.
func ShuffleAndGroup(kvs []stage.KeyValue) map[string][]string {
	slices.SortFunc(kvs, func(a, b stage.KeyValue) int {
		if c := cmp.Compare(a.Key, b.Key); c != 0 {
			return c
		}
		return cmp.Compare(a.Value, b.Value)
	})

	grouped := make(map[string][]string)
	for _, kv := range kvs {
		grouped[kv.Key] = append(grouped[kv.Key], kv.Value)
	}

	return grouped
}
