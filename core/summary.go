package core

import (
	"sort"

	"github.com/arshaad-deriv/lingostat/schema"
)

// BuildSummary rolls the record table up into the executive report: corpus
// totals, per-method comparison, benchmark band shares and tier totals.
func BuildSummary(records []schema.Record) *schema.SummaryReport {
	report := &schema.SummaryReport{TotalRecords: len(records)}

	projects := make(map[string]struct{})
	languages := make(map[string]struct{})
	var interventionRates, criticalRates []float64

	byMethod := make(map[schema.Method][]*schema.Record)
	bandCounts := make(map[schema.QualityBand]int)
	tierCounts := make(map[schema.SeverityTier]int64)

	for i := range records {
		r := &records[i]
		projects[r.Project] = struct{}{}
		languages[r.Language] = struct{}{}
		report.TotalStrings += int64(r.TotalStrings)
		interventionRates = append(interventionRates, r.HumanInterventionRate)
		criticalRates = append(criticalRates, r.CriticalEditRate)

		byMethod[r.Method] = append(byMethod[r.Method], r)
		bandCounts[schema.BandForApprovalRate(r.ApprovalRate)]++
		for _, tier := range schema.AllTiers {
			tierCounts[tier] += int64(r.Tier(tier))
		}
	}

	report.Projects = len(projects)
	report.Languages = len(languages)
	report.MeanInterventionRate = schema.Mean(interventionRates)
	report.MeanCriticalRate = schema.Mean(criticalRates)

	for _, method := range schema.AllMethods {
		group := byMethod[method]
		if len(group) == 0 {
			continue
		}
		report.Methods = append(report.Methods, summarizeMethod(method, group))
	}

	for _, band := range schema.AllBands {
		count := bandCounts[band]
		report.Bands = append(report.Bands, schema.BandShare{
			Band:    band,
			Records: count,
			Share:   schema.Rate(float64(count), float64(len(records))),
		})
	}

	for _, tier := range schema.AllTiers {
		report.Tiers = append(report.Tiers, schema.TierTotal{
			Tier:  tier,
			Label: schema.TierDisplayName(tier),
			Count: tierCounts[tier],
		})
	}

	if len(report.Methods) >= 2 {
		best, worst := report.Methods[0], report.Methods[0]
		for _, ms := range report.Methods[1:] {
			if ms.MeanApprovalRate > best.MeanApprovalRate {
				best = ms
			}
			if ms.MeanApprovalRate < worst.MeanApprovalRate {
				worst = ms
			}
		}
		report.BestMethod = best.Method
		report.WorstMethod = worst.Method
		report.ApprovalGap = best.MeanApprovalRate - worst.MeanApprovalRate
	}

	return report
}

func summarizeMethod(method schema.Method, group []*schema.Record) schema.MethodSummary {
	ms := schema.MethodSummary{Method: method, Records: len(group)}
	var approval, intervention, critical, quality []float64
	for _, r := range group {
		ms.TotalStrings += int64(r.TotalStrings)
		ms.WeightedUnits += r.WeightedUnits
		approval = append(approval, r.ApprovalRate)
		intervention = append(intervention, r.HumanInterventionRate)
		critical = append(critical, r.CriticalEditRate)
		quality = append(quality, r.QualityScore)
	}
	ms.MeanApprovalRate = schema.Mean(approval)
	ms.MeanInterventionRate = schema.Mean(intervention)
	ms.MeanCriticalRate = schema.Mean(critical)
	ms.MeanQualityScore = schema.Mean(quality)
	return ms
}

// BuildLanguageSummaries aggregates records per target language and sorts by
// descending difficulty, so the hardest languages lead the report.
func BuildLanguageSummaries(records []schema.Record) []schema.LanguageSummary {
	type bucket struct {
		code                             string
		records                          int
		totalStrings                     int64
		approval, intervention, critical []float64
	}
	byLanguage := make(map[string]*bucket)
	var order []string

	for i := range records {
		r := &records[i]
		b, ok := byLanguage[r.Language]
		if !ok {
			b = &bucket{code: r.LanguageCode}
			byLanguage[r.Language] = b
			order = append(order, r.Language)
		}
		b.records++
		b.totalStrings += int64(r.TotalStrings)
		b.approval = append(b.approval, r.ApprovalRate)
		b.intervention = append(b.intervention, r.HumanInterventionRate)
		b.critical = append(b.critical, r.CriticalEditRate)
	}

	summaries := make([]schema.LanguageSummary, 0, len(order))
	for _, lang := range order {
		b := byLanguage[lang]
		intervention := schema.Mean(b.intervention)
		critical := schema.Mean(b.critical)
		summaries = append(summaries, schema.LanguageSummary{
			Language:             lang,
			Code:                 b.code,
			Records:              b.records,
			TotalStrings:         b.totalStrings,
			MeanApprovalRate:     schema.Mean(b.approval),
			MeanInterventionRate: intervention,
			MeanCriticalRate:     critical,
			DifficultyScore:      intervention + 2*critical,
		})
	}

	sort.SliceStable(summaries, func(i, j int) bool {
		if summaries[i].DifficultyScore != summaries[j].DifficultyScore {
			return summaries[i].DifficultyScore > summaries[j].DifficultyScore
		}
		return summaries[i].Language < summaries[j].Language
	})
	return summaries
}
