package schema

import "time"

// DailyPoint is a day-level rollup of the temporal table across all records.
type DailyPoint struct {
	Date                 time.Time `json:"date"`
	TotalStrings         int       `json:"total_strings"`
	MeanApprovalRate     float64   `json:"mean_approval_rate"`
	MeanInterventionRate float64   `json:"mean_intervention_rate"`
	CriticalEdits        int       `json:"critical_edits"`
}

// WeekdayAverage is the mean approval rate for one day of the week.
type WeekdayAverage struct {
	Weekday          time.Weekday `json:"-"`
	Name             string       `json:"weekday"`
	Days             int          `json:"days"`
	MeanApprovalRate float64      `json:"mean_approval_rate"`
}

// TrendReport summarizes quality movement over the temporal table. Slope is
// the least-squares fit of mean daily approval rate against day index.
type TrendReport struct {
	Days      []DailyPoint     `json:"days"`
	SpanDays  int              `json:"span_days"`
	Slope     float64          `json:"slope"`
	Direction TrendDirection   `json:"direction"`
	Weekdays  []WeekdayAverage `json:"weekdays,omitempty"`
}
