package schema

import "time"

// CacheStatus represents the status of the loader cache store.
type CacheStatus struct {
	Backend         string    `json:"backend"`
	Connected       bool      `json:"connected"`
	TotalEntries    int       `json:"total_entries"`
	LastEntryTime   time.Time `json:"last_entry_time"`
	OldestEntryTime time.Time `json:"oldest_entry_time"`
	TableSizeBytes  int64     `json:"table_size_bytes"`
}

// HistoryStatus represents the status of the run-history store.
type HistoryStatus struct {
	Backend            string    `json:"backend"`
	Connected          bool      `json:"connected"`
	TotalRuns          int       `json:"total_runs"`
	LastRunID          int64     `json:"last_run_id"`
	LastRunTime        time.Time `json:"last_run_time"`
	OldestRunTime      time.Time `json:"oldest_run_time"`
	TotalRecordsLoaded int       `json:"total_records_loaded"`
}

// RunRecord represents a row from the lingostat_runs history table.
type RunRecord struct {
	RunID         int64
	StartTime     time.Time
	EndTime       *time.Time
	RunDurationMs *int32
	Directory     string
	FilesFound    int32
	RecordsLoaded int32
	Warnings      int32
	ConfigParams  *string
}
