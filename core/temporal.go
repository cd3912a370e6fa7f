package core

import (
	"sort"
	"time"

	"github.com/arshaad-deriv/lingostat/internal/contract"
	"github.com/arshaad-deriv/lingostat/schema"
)

// ExtractTemporal walks the per-day statistics attached to each record and
// produces a flat date-indexed table. Days with an unparseable key or a zero
// string total are skipped. Output is ordered by date, then project,
// language and method for stable rendering.
func ExtractTemporal(records []schema.Record) []schema.TemporalRecord {
	var out []schema.TemporalRecord
	for i := range records {
		r := &records[i]
		for key, stats := range r.Temporal {
			date, err := time.Parse(contract.DateFormat, key)
			if err != nil {
				continue
			}
			total := stats.Total()
			if total == 0 {
				continue
			}
			out = append(out, schema.TemporalRecord{
				Date:                date,
				Project:             r.Project,
				Language:            r.Language,
				Method:              r.Method,
				ApprovedWithoutEdit: stats.ApprovedWithoutEdit,
				TotalStrings:        total,
				ApprovalRate:        schema.Rate(float64(stats.ApprovedWithoutEdit), float64(total)),
				InterventionRate:    schema.Rate(float64(stats.PostEdited.Sum()), float64(total)),
				CriticalEdits:       stats.PostEdited.Other,
			})
		}
	}

	sort.Slice(out, func(i, j int) bool {
		a, b := &out[i], &out[j]
		if !a.Date.Equal(b.Date) {
			return a.Date.Before(b.Date)
		}
		if a.Project != b.Project {
			return a.Project < b.Project
		}
		if a.Language != b.Language {
			return a.Language < b.Language
		}
		return a.Method < b.Method
	})
	return out
}
