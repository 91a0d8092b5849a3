package storage

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func newTestBbolt(t *testing.T) Backend {
	t.Helper()

	backend, err := NewBboltBackend(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { backend.Close() })
	return backend
}

func TestBboltBackend(t *testing.T) {
	backendTestSuite(t, newTestBbolt)
}
