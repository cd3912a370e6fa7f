package core

import (
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/arshaad-deriv/lingostat/internal/contract"
	"github.com/arshaad-deriv/lingostat/internal/outwriter"
	"github.com/arshaad-deriv/lingostat/schema"
)

// GetRecordsResults loads the statistics exports and returns the primary
// record table, ranked by volume and truncated to the result limit.
func GetRecordsResults(cfg *contract.Config, mgr contract.CacheManager) ([]schema.Record, error) {
	records, err := runPipeline(cfg, mgr, time.Now())
	if err != nil {
		return nil, err
	}
	return rankRecords(records, cfg.ResultLimit), nil
}

// GetSummaryResults loads the statistics exports and returns the executive
// rollup.
func GetSummaryResults(cfg *contract.Config, mgr contract.CacheManager) (*schema.SummaryReport, error) {
	records, err := runPipeline(cfg, mgr, time.Now())
	if err != nil {
		return nil, err
	}
	return BuildSummary(records), nil
}

// GetLanguagesResults loads the statistics exports and returns the
// per-language difficulty ranking.
func GetLanguagesResults(cfg *contract.Config, mgr contract.CacheManager) ([]schema.LanguageSummary, error) {
	records, err := runPipeline(cfg, mgr, time.Now())
	if err != nil {
		return nil, err
	}
	summaries := BuildLanguageSummaries(records)
	if len(summaries) > cfg.ResultLimit {
		summaries = summaries[:cfg.ResultLimit]
	}
	return summaries, nil
}

// GetRiskResults loads the statistics exports and returns the flagged
// combinations with the review impact estimate.
func GetRiskResults(cfg *contract.Config, mgr contract.CacheManager) (*schema.RiskReport, error) {
	records, err := runPipeline(cfg, mgr, time.Now())
	if err != nil {
		return nil, err
	}
	report := BuildRiskReport(records)
	if len(report.Entries) > cfg.ResultLimit {
		report.Entries = report.Entries[:cfg.ResultLimit]
	}
	return report, nil
}

// GetTimeseriesResults loads the statistics exports and returns the
// date-indexed table with the fitted quality trend.
func GetTimeseriesResults(cfg *contract.Config, mgr contract.CacheManager) ([]schema.TemporalRecord, *schema.TrendReport, error) {
	records, err := runPipeline(cfg, mgr, time.Now())
	if err != nil {
		return nil, nil, err
	}
	temporal := ExtractTemporal(records)
	if len(temporal) == 0 {
		return nil, nil, ErrNoData
	}
	return temporal, BuildTrendReport(temporal), nil
}

// ExecuteRecords loads the statistics exports and prints the primary record
// table, ranked by volume. It serves as the main entry point for the
// 'records' command.
func ExecuteRecords(cfg *contract.Config, mgr contract.CacheManager) error {
	start := time.Now()
	ranked, err := GetRecordsResults(cfg, mgr)
	if err != nil {
		return reportIfNoData(cfg, err)
	}
	return outwriter.PrintRecords(ranked, cfg, time.Since(start))
}

// ExecuteSummary prints the executive rollup: corpus totals, per-method
// comparison, benchmark bands and severity tier totals.
func ExecuteSummary(cfg *contract.Config, mgr contract.CacheManager) error {
	start := time.Now()
	report, err := GetSummaryResults(cfg, mgr)
	if err != nil {
		return reportIfNoData(cfg, err)
	}
	return outwriter.PrintSummary(report, cfg, time.Since(start))
}

// ExecuteLanguages prints the per-language difficulty ranking.
func ExecuteLanguages(cfg *contract.Config, mgr contract.CacheManager) error {
	start := time.Now()
	summaries, err := GetLanguagesResults(cfg, mgr)
	if err != nil {
		return reportIfNoData(cfg, err)
	}
	return outwriter.PrintLanguages(summaries, cfg, time.Since(start))
}

// ExecuteRisk prints the high-risk combinations and the review impact
// estimate.
func ExecuteRisk(cfg *contract.Config, mgr contract.CacheManager) error {
	start := time.Now()
	report, err := GetRiskResults(cfg, mgr)
	if err != nil {
		return reportIfNoData(cfg, err)
	}
	return outwriter.PrintRisk(report, cfg, time.Since(start))
}

// ExecuteTimeseries prints the date-indexed table and the fitted quality
// trend. It serves as the main entry point for the 'timeseries' command.
func ExecuteTimeseries(cfg *contract.Config, mgr contract.CacheManager) error {
	start := time.Now()
	temporal, report, err := GetTimeseriesResults(cfg, mgr)
	if err != nil {
		return reportIfNoData(cfg, err)
	}
	return outwriter.PrintTimeseries(temporal, report, cfg, time.Since(start))
}

// ExecuteMetrics displays the formal definitions of all derived metrics.
// This is a static display that does not require any input data.
func ExecuteMetrics(cfg *contract.Config, _ contract.CacheManager) error {
	return outwriter.PrintMetricsDefinitions(cfg)
}

// reportIfNoData turns the empty-result sentinel into a friendly notice and a
// clean exit. Every other error passes through.
func reportIfNoData(cfg *contract.Config, err error) error {
	if errors.Is(err, ErrNoData) {
		fmt.Printf("No data available in %s\n", cfg.Dir)
		return nil
	}
	return err
}

// runPipeline loads records through the cache, applies the configured
// filters and records the run in the history store.
func runPipeline(cfg *contract.Config, mgr contract.CacheManager, start time.Time) ([]schema.Record, error) {
	result, err := cachedLoadDirectory(cfg, mgr)
	if err != nil {
		return nil, err
	}

	for _, w := range result.Warnings {
		contract.LogWarn("skipping "+w.File, errors.New(w.Reason))
	}

	recordRun(cfg, mgr, start, result)

	if result.Empty() {
		return nil, ErrNoData
	}

	records := FilterRecords(result.Records, cfg)
	if len(records) == 0 {
		return nil, ErrNoData
	}
	return records, nil
}

// recordRun writes one row of run history. History failures never fail the
// run itself.
func recordRun(cfg *contract.Config, mgr contract.CacheManager, start time.Time, result *schema.LoadResult) {
	history := mgr.GetHistoryStore()
	if history == nil {
		return
	}

	params := map[string]any{
		"output":    string(cfg.Output),
		"limit":     cfg.ResultLimit,
		"projects":  cfg.Projects,
		"languages": cfg.Languages,
		"methods":   cfg.Methods,
	}
	runID, err := history.BeginRun(start, cfg.Dir, params)
	if err != nil {
		return
	}
	_ = history.EndRun(runID, time.Now(), result.FilesFound, len(result.Records), len(result.Warnings))
}

// rankRecords orders records by total string volume and truncates to the
// result limit. Ties break on project, language and method for stable
// output.
func rankRecords(records []schema.Record, limit int) []schema.Record {
	ranked := make([]schema.Record, len(records))
	copy(ranked, records)
	sort.SliceStable(ranked, func(i, j int) bool {
		a, b := &ranked[i], &ranked[j]
		if a.TotalStrings != b.TotalStrings {
			return a.TotalStrings > b.TotalStrings
		}
		if a.Project != b.Project {
			return a.Project < b.Project
		}
		if a.Language != b.Language {
			return a.Language < b.Language
		}
		return a.Method < b.Method
	})
	if len(ranked) > limit {
		ranked = ranked[:limit]
	}
	return ranked
}
