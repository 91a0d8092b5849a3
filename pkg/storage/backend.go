// Package storage persists the records a run emits.
package storage

// Backend is a bucketed key-value store. Keys and values are raw bytes; the
// Sink decides the encoding.
type Backend interface {
	CreateBucket(name []byte) error
	DeleteBucket(name []byte) error
	BucketExists(name []byte) (bool, error)

	Put(bucket, key, value []byte) error
	Get(bucket, key []byte) ([]byte, error)

	// ForEach visits a bucket in ascending key order.
	ForEach(bucket []byte, fn func(k, v []byte) error) error

	// Update runs fn in a read-write transaction.
	Update(fn func(tx Transaction) error) error

	Close() error
}

type Transaction interface {
	CreateBucket(name []byte) error
	// Bucket returns nil if the bucket does not exist.
	Bucket(name []byte) Bucket
}

type Bucket interface {
	Put(key, value []byte) error
	Get(key []byte) []byte
	Delete(key []byte) error
}
