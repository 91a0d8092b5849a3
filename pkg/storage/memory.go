package storage

import (
	"fmt"
	"slices"
	"sync"

	"pkg.jsn.cam/swapstage/pkg/stage"
)

// MemoryBackend implements Backend with in-memory maps. Nothing survives Close.
type MemoryBackend struct {
	buckets map[string]map[string][]byte
	mu      sync.RWMutex
}

func NewMemoryBackend() *MemoryBackend {
	return &MemoryBackend{
		buckets: make(map[string]map[string][]byte),
	}
}

func (m *MemoryBackend) CreateBucket(name []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.buckets[string(name)]; !exists {
		m.buckets[string(name)] = make(map[string][]byte)
	}
	return nil
}

func (m *MemoryBackend) DeleteBucket(name []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.buckets, string(name))
	return nil
}

func (m *MemoryBackend) BucketExists(name []byte) (bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	_, exists := m.buckets[string(name)]
	return exists, nil
}

func (m *MemoryBackend) Put(bucket, key, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	bkt, exists := m.buckets[string(bucket)]
	if !exists {
		return fmt.Errorf("%w: %s", stage.ErrBucketNotFound, bucket)
	}

	bkt[string(key)] = append([]byte(nil), value...)
	return nil
}

func (m *MemoryBackend) Get(bucket, key []byte) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	bkt, exists := m.buckets[string(bucket)]
	if !exists {
		return nil, fmt.Errorf("%w: %s", stage.ErrBucketNotFound, bucket)
	}

	value, exists := bkt[string(key)]
	if !exists {
		return nil, nil
	}
	return append([]byte(nil), value...), nil
}

// ForEach iterates over a snapshot taken under the read lock, so fn may
// write to the backend.
func (m *MemoryBackend) ForEach(bucket []byte, fn func(k, v []byte) error) error {
	m.mu.RLock()
	bkt, exists := m.buckets[string(bucket)]
	if !exists {
		m.mu.RUnlock()
		return fmt.Errorf("%w: %s", stage.ErrBucketNotFound, bucket)
	}
	keys := make([]string, 0, len(bkt))
	snapshot := make(map[string][]byte, len(bkt))
	for k, v := range bkt {
		keys = append(keys, k)
		snapshot[k] = v
	}
	m.mu.RUnlock()

	slices.Sort(keys)
	for _, k := range keys {
		if err := fn([]byte(k), snapshot[k]); err != nil {
			return err
		}
	}
	return nil
}

// Update runs fn directly; writes are visible immediately and are not
// rolled back if fn fails.
func (m *MemoryBackend) Update(fn func(tx Transaction) error) error {
	return fn(memoryTransaction{backend: m})
}

func (m *MemoryBackend) Close() error {
	return nil
}

type memoryTransaction struct {
	backend *MemoryBackend
}

func (t memoryTransaction) CreateBucket(name []byte) error {
	return t.backend.CreateBucket(name)
}

func (t memoryTransaction) Bucket(name []byte) Bucket {
	if exists, _ := t.backend.BucketExists(name); !exists {
		return nil
	}
	return memoryBucket{backend: t.backend, name: name}
}

type memoryBucket struct {
	backend *MemoryBackend
	name    []byte
}

func (b memoryBucket) Put(key, value []byte) error {
	return b.backend.Put(b.name, key, value)
}

func (b memoryBucket) Get(key []byte) []byte {
	value, _ := b.backend.Get(b.name, key)
	return value
}

func (b memoryBucket) Delete(key []byte) error {
	b.backend.mu.Lock()
	defer b.backend.mu.Unlock()

	if bkt, exists := b.backend.buckets[string(b.name)]; exists {
		delete(bkt, string(key))
	}
	return nil
}
