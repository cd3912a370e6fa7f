// Package contract provides configuration, interfaces and shared utilities
// for the lingostat CLI's internal architecture.
package contract

import (
	"time"

	"github.com/arshaad-deriv/lingostat/schema"
)

// CacheManager defines the interface for managing the persistence stores.
// This allows the storage layer to be mocked for testing.
type CacheManager interface {
	GetLoaderStore() CacheStore
	GetHistoryStore() HistoryStore
}

// CacheStore defines the interface for loader-result cache storage.
// This allows mocking the store for testing.
type CacheStore interface {
	Get(key string) ([]byte, int, int64, error)
	Set(key string, value []byte, version int, timestamp int64) error
	GetStatus() (schema.CacheStatus, error)
	Close() error
}

// HistoryStore defines the interface for tracking pipeline runs.
type HistoryStore interface {
	// BeginRun creates a new run row and returns its unique ID
	BeginRun(startTime time.Time, directory string, configParams map[string]any) (int64, error)

	// EndRun updates the run row with completion data
	EndRun(runID int64, endTime time.Time, filesFound, recordsLoaded, warnings int) error

	// GetStatus returns status information about the history store
	GetStatus() (schema.HistoryStatus, error)

	// GetAllRuns retrieves every recorded run for export
	GetAllRuns() ([]schema.RunRecord, error)

	// Close closes the underlying connection
	Close() error
}
