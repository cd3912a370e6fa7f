// Package parquet provides data structures and functions for exporting
// translation statistics to Parquet files using github.com/parquet-go/parquet-go.
package parquet

import (
	"fmt"
	"os"
	"time"

	"github.com/arshaad-deriv/lingostat/schema"
	"github.com/parquet-go/parquet-go"
)

// Run represents a single pipeline run with metadata.
// This struct maps to the lingostat_runs database table.
type Run struct {
	// RunID is the unique identifier for this run
	RunID int64 `parquet:"run_id,snappy"`

	// StartTime is when the run began (stored as TIMESTAMP with nanosecond precision)
	StartTime time.Time `parquet:"start_time,snappy"`

	// EndTime is when the run completed (nullable)
	EndTime *time.Time `parquet:"end_time,optional,snappy"`

	// RunDurationMs is the duration of the run in milliseconds (nullable)
	RunDurationMs *int32 `parquet:"run_duration_ms,optional,snappy"`

	// Directory is the export directory that was scanned
	Directory string `parquet:"directory,snappy"`

	// FilesFound is the number of export files discovered
	FilesFound int32 `parquet:"files_found,snappy"`

	// RecordsLoaded is the number of records produced by the loader
	RecordsLoaded int32 `parquet:"records_loaded,snappy"`

	// Warnings is the number of files skipped with a parse warning
	Warnings int32 `parquet:"warnings,snappy"`

	// ConfigParams contains the JSON-encoded configuration parameters (nullable)
	ConfigParams *string `parquet:"config_params,optional,snappy"`
}

// RecordRow is the Parquet projection of one cumulative statistics record.
type RecordRow struct {
	Project             string  `parquet:"project,snappy"`
	Language            string  `parquet:"language,snappy"`
	LanguageCode        string  `parquet:"language_code,snappy"`
	Method              string  `parquet:"method,snappy"`
	TotalStrings        int32   `parquet:"total_strings,snappy"`
	ApprovedWithoutEdit int32   `parquet:"approved_without_edit,snappy"`
	PostEditedMinor     int32   `parquet:"post_edited_0_5,snappy"`
	PostEditedModerate  int32   `parquet:"post_edited_6_10,snappy"`
	PostEditedMajor     int32   `parquet:"post_edited_11_15,snappy"`
	PostEditedOther     int32   `parquet:"post_edited_other,snappy"`
	WeightedUnits       float64 `parquet:"weighted_units,snappy"`
	ApprovalRate        float64 `parquet:"approval_rate,snappy"`
	InterventionRate    float64 `parquet:"intervention_rate,snappy"`
	CriticalEditRate    float64 `parquet:"critical_edit_rate,snappy"`
	MinorEditRate       float64 `parquet:"minor_edit_rate,snappy"`
	QualityScore        float64 `parquet:"quality_score,snappy"`
	RiskScore           float64 `parquet:"risk_score,snappy"`
}

// TemporalRow is the Parquet projection of one date-indexed activity row.
type TemporalRow struct {
	Date                time.Time `parquet:"date,snappy"`
	Project             string    `parquet:"project,snappy"`
	Language            string    `parquet:"language,snappy"`
	Method              string    `parquet:"method,snappy"`
	ApprovedWithoutEdit int32     `parquet:"approved_without_edit,snappy"`
	TotalStrings        int32     `parquet:"total_strings,snappy"`
	ApprovalRate        float64   `parquet:"approval_rate,snappy"`
	InterventionRate    float64   `parquet:"intervention_rate,snappy"`
	CriticalEdits       int32     `parquet:"critical_edits,snappy"`
}

// writeParquet writes any row slice to a Parquet file using struct schema
// inference from the row type's tags.
func writeParquet[T any](data []T, outputPath string) error {
	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() { _ = file.Close() }()

	writer := parquet.NewGenericWriter[T](file)

	if _, err := writer.Write(data); err != nil {
		_ = writer.Close()
		return fmt.Errorf("failed to write data to parquet file: %w", err)
	}
	if err := writer.Close(); err != nil {
		return fmt.Errorf("failed to finalize parquet file: %w", err)
	}
	return nil
}

// WriteRunsParquet writes a slice of Run structs to a Parquet file.
func WriteRunsParquet(data []Run, outputPath string) error {
	return writeParquet(data, outputPath)
}

// WriteRecordsParquet writes a slice of RecordRow structs to a Parquet file.
func WriteRecordsParquet(data []RecordRow, outputPath string) error {
	return writeParquet(data, outputPath)
}

// WriteTimeseriesParquet writes a slice of TemporalRow structs to a Parquet file.
func WriteTimeseriesParquet(data []TemporalRow, outputPath string) error {
	return writeParquet(data, outputPath)
}

// ConvertRunRecords converts schema.RunRecord to Run for Parquet export.
func ConvertRunRecords(records []schema.RunRecord) []Run {
	result := make([]Run, len(records))
	for i, record := range records {
		result[i] = Run{
			RunID:         record.RunID,
			StartTime:     record.StartTime,
			EndTime:       record.EndTime,
			RunDurationMs: record.RunDurationMs,
			Directory:     record.Directory,
			FilesFound:    record.FilesFound,
			RecordsLoaded: record.RecordsLoaded,
			Warnings:      record.Warnings,
			ConfigParams:  record.ConfigParams,
		}
	}
	return result
}

// ConvertRecords converts schema.Record to RecordRow for Parquet export.
func ConvertRecords(records []schema.Record) []RecordRow {
	result := make([]RecordRow, len(records))
	for i, r := range records {
		result[i] = RecordRow{
			Project:             r.Project,
			Language:            r.Language,
			LanguageCode:        r.LanguageCode,
			Method:              string(r.Method),
			TotalStrings:        int32(r.TotalStrings),
			ApprovedWithoutEdit: int32(r.ApprovedWithoutEdit),
			PostEditedMinor:     int32(r.PostEditedMinor),
			PostEditedModerate:  int32(r.PostEditedModerate),
			PostEditedMajor:     int32(r.PostEditedMajor),
			PostEditedOther:     int32(r.PostEditedOther),
			WeightedUnits:       r.WeightedUnits,
			ApprovalRate:        r.ApprovalRate,
			InterventionRate:    r.HumanInterventionRate,
			CriticalEditRate:    r.CriticalEditRate,
			MinorEditRate:       r.MinorEditRate,
			QualityScore:        r.QualityScore,
			RiskScore:           r.RiskScore,
		}
	}
	return result
}

// ConvertTemporalRecords converts schema.TemporalRecord to TemporalRow for Parquet export.
func ConvertTemporalRecords(records []schema.TemporalRecord) []TemporalRow {
	result := make([]TemporalRow, len(records))
	for i, r := range records {
		result[i] = TemporalRow{
			Date:                r.Date,
			Project:             r.Project,
			Language:            r.Language,
			Method:              string(r.Method),
			ApprovedWithoutEdit: int32(r.ApprovedWithoutEdit),
			TotalStrings:        int32(r.TotalStrings),
			ApprovalRate:        r.ApprovalRate,
			InterventionRate:    r.InterventionRate,
			CriticalEdits:       int32(r.CriticalEdits),
		}
	}
	return result
}
