package iocache

import (
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/arshaad-deriv/lingostat/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStoreLifecycle(t *testing.T) {
	t.Run("single setup", func(t *testing.T) {
		tmpDir := t.TempDir()
		t.Setenv("HOME", tmpDir)
		initOnce = sync.Once{}  // Reset for test
		closeOnce = sync.Once{} // Reset for test

		err := InitStores(schema.SQLiteBackend, filepath.Join(tmpDir, "cache.db"), schema.SQLiteBackend, filepath.Join(tmpDir, "history.db"))
		assert.NoError(t, err, "Failed to initialize persistence")

		assert.NotNil(t, Manager, "Manager should not be nil")
		assert.NotNil(t, Manager.GetLoaderStore(), "Loader store should not be nil")
		assert.NotNil(t, Manager.GetHistoryStore(), "History store should not be nil")

		CloseStores()
	})

	t.Run("idempotent setup", func(t *testing.T) {
		tmpDir := t.TempDir()
		initOnce = sync.Once{}  // Reset for test
		closeOnce = sync.Once{} // Reset for test

		cacheDB := filepath.Join(tmpDir, "cache.db")
		err1 := InitStores(schema.SQLiteBackend, cacheDB, "", "")
		err2 := InitStores(schema.SQLiteBackend, cacheDB, "", "")

		assert.NoError(t, err1, "First init should not fail")
		assert.NoError(t, err2, "Second init should not fail")

		// Multiple closes should be safe (sync.Once)
		CloseStores()
		CloseStores()
	})

	t.Run("none backend", func(t *testing.T) {
		initOnce = sync.Once{}  // Reset for test
		closeOnce = sync.Once{} // Reset for test

		err := InitStores(schema.NoneBackend, "", schema.NoneBackend, "")
		assert.NoError(t, err, "Failed to initialize persistence with none backend")
		assert.NotNil(t, Manager.GetLoaderStore(), "Loader store should not be nil")

		CloseStores()
	})
}

func TestCacheStoreRoundTrip(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "cache.db")
	store, err := NewCacheStore("test_cache", schema.SQLiteBackend, dbPath)
	require.NoError(t, err)
	defer func() { _ = store.Close() }()

	now := time.Now().Unix()
	require.NoError(t, store.Set("key1", []byte("value1"), 1, now))

	value, version, ts, err := store.Get("key1")
	require.NoError(t, err)
	assert.Equal(t, []byte("value1"), value)
	assert.Equal(t, 1, version)
	assert.Equal(t, now, ts)

	// Overwrite with a new version
	require.NoError(t, store.Set("key1", []byte("value2"), 2, now+1))
	value, version, _, err = store.Get("key1")
	require.NoError(t, err)
	assert.Equal(t, []byte("value2"), value)
	assert.Equal(t, 2, version)

	// Missing key errors
	_, _, _, err = store.Get("missing")
	assert.Error(t, err)
}

func TestCacheStoreNoneBackend(t *testing.T) {
	store, err := NewCacheStore("test_table", schema.NoneBackend, "")
	require.NoError(t, err, "Failed to create none backend store")

	// Get returns error (no data)
	_, _, _, err = store.Get("test_key")
	assert.Error(t, err, "Expected error from Get on none backend")

	// Set is no-op (no error)
	err = store.Set("test_key", []byte("test_value"), 1, 123456789)
	assert.NoError(t, err, "Set should not error on none backend")

	// Still no data after Set
	_, _, _, err = store.Get("test_key")
	assert.Error(t, err, "Expected error from Get after Set on none backend")

	status, err := store.GetStatus()
	assert.NoError(t, err)
	assert.False(t, status.Connected)

	assert.NoError(t, store.Close())
}

func TestCacheStoreStatus(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "cache.db")
	store, err := NewCacheStore("test_cache", schema.SQLiteBackend, dbPath)
	require.NoError(t, err)
	defer func() { _ = store.Close() }()

	status, err := store.GetStatus()
	require.NoError(t, err)
	assert.True(t, status.Connected)
	assert.Zero(t, status.TotalEntries)

	now := time.Now().Unix()
	require.NoError(t, store.Set("a", []byte("1"), 1, now-100))
	require.NoError(t, store.Set("b", []byte("2"), 1, now))

	status, err = store.GetStatus()
	require.NoError(t, err)
	assert.Equal(t, 2, status.TotalEntries)
	assert.Equal(t, time.Unix(now, 0), status.LastEntryTime)
	assert.Equal(t, time.Unix(now-100, 0), status.OldestEntryTime)
}

func TestNewCacheStoreRejectsBadTableName(t *testing.T) {
	_, err := NewCacheStore("bad name; DROP TABLE", schema.SQLiteBackend, ":memory:")
	assert.Error(t, err)
}

func TestClearCacheSQLite(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "cache.db")
	store, err := NewCacheStore("test_cache", schema.SQLiteBackend, dbPath)
	require.NoError(t, err)
	require.NoError(t, store.Close())

	assert.NoError(t, ClearCache(schema.SQLiteBackend, dbPath, ""))
	// Clearing a missing file is fine
	assert.NoError(t, ClearCache(schema.SQLiteBackend, dbPath, ""))
	// Empty path is not
	assert.Error(t, ClearCache(schema.SQLiteBackend, "", ""))
	// None backend is a no-op
	assert.NoError(t, ClearCache(schema.NoneBackend, "", ""))
}
