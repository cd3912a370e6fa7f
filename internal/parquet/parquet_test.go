package parquet

import (
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/arshaad-deriv/lingostat/schema"
	"github.com/parquet-go/parquet-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunStructTags(t *testing.T) {
	// Verify struct tags are properly defined for parquet schema inference
	sch := parquet.SchemaOf(new(Run))
	require.NotNil(t, sch)

	expectedColumns := []string{
		"run_id",
		"start_time",
		"end_time",
		"run_duration_ms",
		"directory",
		"files_found",
		"records_loaded",
		"warnings",
		"config_params",
	}

	for _, colName := range expectedColumns {
		col, ok := sch.Lookup(colName)
		require.True(t, ok, "Column %s should exist in schema", colName)
		require.NotNil(t, col, "Column %s should not be nil", colName)
	}
}

func TestRecordRowStructTags(t *testing.T) {
	sch := parquet.SchemaOf(new(RecordRow))
	require.NotNil(t, sch)

	expectedColumns := []string{
		"project",
		"language",
		"language_code",
		"method",
		"total_strings",
		"approved_without_edit",
		"post_edited_0_5",
		"post_edited_6_10",
		"post_edited_11_15",
		"post_edited_other",
		"approval_rate",
		"intervention_rate",
		"critical_edit_rate",
		"quality_score",
		"risk_score",
	}

	for _, colName := range expectedColumns {
		col, ok := sch.Lookup(colName)
		require.True(t, ok, "Column %s should exist in schema", colName)
		require.NotNil(t, col, "Column %s should not be nil", colName)
	}
}

func TestWriteRunsParquet(t *testing.T) {
	tmpDir := t.TempDir()
	outputPath := filepath.Join(tmpDir, "runs.parquet")

	now := time.Now()
	endTime := now.Add(2 * time.Second)
	durationMs := int32(2000)
	config := `{"output":"text","limit":25}`

	data := []Run{
		{
			RunID:         1,
			StartTime:     now,
			EndTime:       &endTime,
			RunDurationMs: &durationMs,
			Directory:     "/data/exports",
			FilesFound:    4,
			RecordsLoaded: 12,
			Warnings:      1,
			ConfigParams:  &config,
		},
		// Interrupted run, nullable fields stay nil
		{
			RunID:     2,
			StartTime: now,
			Directory: "/data/exports",
		},
	}

	err := WriteRunsParquet(data, outputPath)
	require.NoError(t, err, "Writing Parquet file should not produce error")

	info, err := os.Stat(outputPath)
	require.NoError(t, err, "Output file should exist")
	assert.Greater(t, info.Size(), int64(0), "Output file should not be empty")

	// Read back and verify data
	file, err := os.Open(outputPath)
	require.NoError(t, err, "Should be able to open output file")
	defer file.Close()

	reader := parquet.NewGenericReader[Run](file)
	defer reader.Close()

	readData := make([]Run, reader.NumRows())
	n, err := reader.Read(readData)
	if err != nil && err != io.EOF {
		require.NoError(t, err, "Should be able to read data")
	}
	assert.Equal(t, len(data), n, "Should read all records")

	assert.Equal(t, data[0].RunID, readData[0].RunID)
	assert.Equal(t, data[0].Directory, readData[0].Directory)
	assert.Equal(t, data[0].RecordsLoaded, readData[0].RecordsLoaded)
	require.NotNil(t, readData[0].EndTime)
	assert.WithinDuration(t, endTime, *readData[0].EndTime, time.Nanosecond)
	require.NotNil(t, readData[0].RunDurationMs)
	assert.Equal(t, durationMs, *readData[0].RunDurationMs)
	require.NotNil(t, readData[0].ConfigParams)
	assert.Equal(t, config, *readData[0].ConfigParams)

	assert.Nil(t, readData[1].EndTime, "Interrupted run should have nil EndTime")
	assert.Nil(t, readData[1].RunDurationMs)
	assert.Nil(t, readData[1].ConfigParams)
}

func TestWriteRecordsParquetRoundTrip(t *testing.T) {
	tmpDir := t.TempDir()
	outputPath := filepath.Join(tmpDir, "records.parquet")

	records := []schema.Record{
		{
			Project:             "web",
			Language:            "German",
			LanguageCode:        "de",
			Method:              schema.AIMethod,
			TotalStrings:        100,
			ApprovedWithoutEdit: 80,
			PostEditedMinor:     10,
			PostEditedModerate:  5,
			PostEditedMajor:     3,
			PostEditedOther:     2,
			ApprovalRate:        80.0,
			QualityScore:        96.65,
			RiskScore:           17.0,
		},
	}

	err := WriteRecordsParquet(ConvertRecords(records), outputPath)
	require.NoError(t, err)

	file, err := os.Open(outputPath)
	require.NoError(t, err)
	defer file.Close()

	reader := parquet.NewGenericReader[RecordRow](file)
	defer reader.Close()

	readData := make([]RecordRow, reader.NumRows())
	n, err := reader.Read(readData)
	if err != nil && err != io.EOF {
		require.NoError(t, err)
	}
	require.Equal(t, 1, n)

	assert.Equal(t, "web", readData[0].Project)
	assert.Equal(t, "AI", readData[0].Method)
	assert.Equal(t, int32(100), readData[0].TotalStrings)
	assert.InDelta(t, 96.65, readData[0].QualityScore, 0.001)
	assert.InDelta(t, 17.0, readData[0].RiskScore, 0.001)
}

func TestWriteTimeseriesParquetRoundTrip(t *testing.T) {
	tmpDir := t.TempDir()
	outputPath := filepath.Join(tmpDir, "timeseries.parquet")

	date := time.Date(2025, 1, 6, 0, 0, 0, 0, time.UTC)
	rows := []schema.TemporalRecord{
		{
			Date:                date,
			Project:             "web",
			Language:            "German",
			Method:              schema.AIMethod,
			ApprovedWithoutEdit: 40,
			TotalStrings:        50,
			ApprovalRate:        80.0,
			CriticalEdits:       2,
		},
	}

	err := WriteTimeseriesParquet(ConvertTemporalRecords(rows), outputPath)
	require.NoError(t, err)

	file, err := os.Open(outputPath)
	require.NoError(t, err)
	defer file.Close()

	reader := parquet.NewGenericReader[TemporalRow](file)
	defer reader.Close()

	readData := make([]TemporalRow, reader.NumRows())
	n, err := reader.Read(readData)
	if err != nil && err != io.EOF {
		require.NoError(t, err)
	}
	require.Equal(t, 1, n)

	assert.WithinDuration(t, date, readData[0].Date, time.Nanosecond)
	assert.Equal(t, int32(50), readData[0].TotalStrings)
	assert.Equal(t, int32(2), readData[0].CriticalEdits)
}

func TestWriteRunsParquetEmptyData(t *testing.T) {
	tmpDir := t.TempDir()
	outputPath := filepath.Join(tmpDir, "empty_runs.parquet")

	err := WriteRunsParquet([]Run{}, outputPath)
	require.NoError(t, err, "Writing empty data should not produce error")

	info, err := os.Stat(outputPath)
	require.NoError(t, err, "Output file should exist")
	assert.Greater(t, info.Size(), int64(0), "Output file should contain schema even if empty")
}

func TestWriteRunsParquetInvalidPath(t *testing.T) {
	err := WriteRunsParquet([]Run{}, "/nonexistent/directory/output.parquet")
	require.Error(t, err, "Writing to invalid path should produce error")
}

func TestConvertRunRecords(t *testing.T) {
	now := time.Now()
	endTime := now.Add(time.Second)
	durationMs := int32(1000)
	config := `{"limit":25}`

	records := []schema.RunRecord{
		{
			RunID:         7,
			StartTime:     now,
			EndTime:       &endTime,
			RunDurationMs: &durationMs,
			Directory:     "/data/exports",
			FilesFound:    3,
			RecordsLoaded: 9,
			Warnings:      0,
			ConfigParams:  &config,
		},
	}

	runs := ConvertRunRecords(records)
	require.Len(t, runs, 1)
	assert.Equal(t, int64(7), runs[0].RunID)
	assert.Equal(t, int32(9), runs[0].RecordsLoaded)
	assert.Equal(t, &endTime, runs[0].EndTime)
	assert.Equal(t, &config, runs[0].ConfigParams)
}
