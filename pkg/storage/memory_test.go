package storage

import "testing"

func newTestMemory(t *testing.T) Backend {
	return NewMemoryBackend()
}

func TestMemoryBackend(t *testing.T) {
	backendTestSuite(t, newTestMemory)
}
