package sim

import "covsim/internal/model"

// Summarize computes the headline numbers for a daily series.
func Summarize(cfg model.Config, daily []model.DailyPoint) model.SummaryStats {
	stats := model.SummaryStats{TotalDays: cfg.TotalDays()}
	if len(daily) == 0 {
		return stats
	}

	var coverageSum float64
	for _, p := range daily {
		if p.Purchase > 0 {
			stats.PurchaseCount++
		}
		coverageSum += p.Coverage
		if p.Coverage > stats.PeakCoverage {
			stats.PeakCoverage = p.Coverage
			stats.PeakCoverageDay = p.Day
		}
	}

	last := daily[len(daily)-1]
	stats.TotalPurchased = last.Cumulative
	stats.FinalCoverage = last.Coverage
	stats.ActivePremiums = last.Coverage * (cfg.CostPct / 100)
	stats.MeanCoverage = coverageSum / float64(len(daily))

	return stats
}
