package core

import (
	"sort"
	"time"

	"github.com/arshaad-deriv/lingostat/schema"
)

// BuildTrendReport rolls the temporal table up by calendar day and fits a
// least-squares line through the mean daily approval rate. With a single day
// of data the direction is stable and the slope zero. Weekday averages are
// ordered Monday through Sunday.
func BuildTrendReport(temporal []schema.TemporalRecord) *schema.TrendReport {
	report := &schema.TrendReport{}
	if len(temporal) == 0 {
		report.Direction = schema.StableTrend
		return report
	}

	type dayAgg struct {
		totalStrings  int
		criticalEdits int
		approval      []float64
		intervention  []float64
	}
	byDay := make(map[time.Time]*dayAgg)
	for i := range temporal {
		tr := &temporal[i]
		day := tr.Date
		agg, ok := byDay[day]
		if !ok {
			agg = &dayAgg{}
			byDay[day] = agg
		}
		agg.totalStrings += tr.TotalStrings
		agg.criticalEdits += tr.CriticalEdits
		agg.approval = append(agg.approval, tr.ApprovalRate)
		agg.intervention = append(agg.intervention, tr.InterventionRate)
	}

	days := make([]time.Time, 0, len(byDay))
	for day := range byDay {
		days = append(days, day)
	}
	sort.Slice(days, func(i, j int) bool { return days[i].Before(days[j]) })

	for _, day := range days {
		agg := byDay[day]
		report.Days = append(report.Days, schema.DailyPoint{
			Date:                 day,
			TotalStrings:         agg.totalStrings,
			MeanApprovalRate:     schema.Mean(agg.approval),
			MeanInterventionRate: schema.Mean(agg.intervention),
			CriticalEdits:        agg.criticalEdits,
		})
	}
	report.SpanDays = len(report.Days)

	if len(report.Days) > 1 {
		rates := make([]float64, len(report.Days))
		for i, d := range report.Days {
			rates[i] = d.MeanApprovalRate
		}
		report.Slope = fitSlope(rates)
		if report.Slope > 0 {
			report.Direction = schema.ImprovingTrend
		} else {
			report.Direction = schema.DecliningTrend
		}
	} else {
		report.Direction = schema.StableTrend
	}

	report.Weekdays = weekdayAverages(report.Days)
	return report
}

// fitSlope returns the slope of the least-squares line through (i, values[i]).
func fitSlope(values []float64) float64 {
	n := float64(len(values))
	if n < 2 {
		return 0
	}
	var sumX, sumY, sumXY, sumXX float64
	for i, y := range values {
		x := float64(i)
		sumX += x
		sumY += y
		sumXY += x * y
		sumXX += x * x
	}
	denom := n*sumXX - sumX*sumX
	if denom == 0 {
		return 0
	}
	return (n*sumXY - sumX*sumY) / denom
}

func weekdayAverages(days []schema.DailyPoint) []schema.WeekdayAverage {
	byWeekday := make(map[time.Weekday][]float64)
	for _, d := range days {
		wd := d.Date.Weekday()
		byWeekday[wd] = append(byWeekday[wd], d.MeanApprovalRate)
	}

	// Monday-first ordering for the report.
	order := []time.Weekday{
		time.Monday, time.Tuesday, time.Wednesday, time.Thursday,
		time.Friday, time.Saturday, time.Sunday,
	}
	var out []schema.WeekdayAverage
	for _, wd := range order {
		rates := byWeekday[wd]
		if len(rates) == 0 {
			continue
		}
		out = append(out, schema.WeekdayAverage{
			Weekday:          wd,
			Name:             wd.String(),
			Days:             len(rates),
			MeanApprovalRate: schema.Mean(rates),
		})
	}
	return out
}
