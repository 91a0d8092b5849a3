package storage

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pkg.jsn.cam/swapstage/pkg/stage"
)

// backendTestSuite runs the same checks against any Backend implementation.
func backendTestSuite(t *testing.T, newBackend func(t *testing.T) Backend) {
	t.Run("CreateBucket", func(t *testing.T) {
		backend := newBackend(t)

		require.NoError(t, backend.CreateBucket([]byte("test")))
		exists, err := backend.BucketExists([]byte("test"))
		require.NoError(t, err)
		assert.True(t, exists)

		assert.NoError(t, backend.CreateBucket([]byte("test")), "CreateBucket should be idempotent")
	})

	t.Run("DeleteBucket", func(t *testing.T) {
		backend := newBackend(t)

		require.NoError(t, backend.CreateBucket([]byte("test")))
		require.NoError(t, backend.DeleteBucket([]byte("test")))

		exists, err := backend.BucketExists([]byte("test"))
		require.NoError(t, err)
		assert.False(t, exists)

		assert.NoError(t, backend.DeleteBucket([]byte("test")), "DeleteBucket should be idempotent")
	})

	t.Run("PutAndGet", func(t *testing.T) {
		backend := newBackend(t)
		require.NoError(t, backend.CreateBucket([]byte("test")))

		require.NoError(t, backend.Put([]byte("test"), []byte("42"), []byte("1")))
		got, err := backend.Get([]byte("test"), []byte("42"))
		require.NoError(t, err)
		assert.Equal(t, []byte("1"), got)

		got, err = backend.Get([]byte("test"), []byte("nonexistent"))
		require.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("MissingBucket", func(t *testing.T) {
		backend := newBackend(t)

		err := backend.Put([]byte("missing"), []byte("k"), []byte("v"))
		assert.ErrorIs(t, err, stage.ErrBucketNotFound)

		_, err = backend.Get([]byte("missing"), []byte("k"))
		assert.ErrorIs(t, err, stage.ErrBucketNotFound)

		err = backend.ForEach([]byte("missing"), func(k, v []byte) error { return nil })
		assert.ErrorIs(t, err, stage.ErrBucketNotFound)
	})

	t.Run("ForEachOrdered", func(t *testing.T) {
		backend := newBackend(t)
		require.NoError(t, backend.CreateBucket([]byte("test")))

		for _, k := range []string{"c", "a", "b"} {
			require.NoError(t, backend.Put([]byte("test"), []byte(k), []byte("v"+k)))
		}

		var keys []string
		err := backend.ForEach([]byte("test"), func(k, v []byte) error {
			keys = append(keys, string(k))
			assert.Equal(t, "v"+string(k), string(v))
			return nil
		})
		require.NoError(t, err)
		assert.Equal(t, []string{"a", "b", "c"}, keys)
	})

	t.Run("Transactions", func(t *testing.T) {
		backend := newBackend(t)

		err := backend.Update(func(tx Transaction) error {
			assert.Nil(t, tx.Bucket([]byte("test")))
			if err := tx.CreateBucket([]byte("test")); err != nil {
				return err
			}
			b := tx.Bucket([]byte("test"))
			require.NotNil(t, b)
			if err := b.Put([]byte("key1"), []byte("value1")); err != nil {
				return err
			}
			if err := b.Put([]byte("key2"), []byte("value2")); err != nil {
				return err
			}
			assert.Equal(t, []byte("value1"), b.Get([]byte("key1")))
			return b.Delete([]byte("key2"))
		})
		require.NoError(t, err)

		got, err := backend.Get([]byte("test"), []byte("key1"))
		require.NoError(t, err)
		assert.Equal(t, []byte("value1"), got)

		got, err = backend.Get([]byte("test"), []byte("key2"))
		require.NoError(t, err)
		assert.Nil(t, got)
	})
}
