package sim

import "covsim/internal/model"

// AggregateMonths folds the daily series into cfg.Months buckets of 30 days.
// Bucket i (0-based) covers days i*30+1 through (i+1)*30; day 0 folds into
// the first bucket so the bootstrap purchase is not lost. Purchases are
// summed per bucket while cumulative premiums and coverage take the value
// at the bucket's last day (a snapshot, not an average).
func AggregateMonths(cfg model.Config, daily []model.DailyPoint) []model.MonthlyPoint {
	months := make([]model.MonthlyPoint, cfg.Months)
	for i := range months {
		months[i].Month = i + 1
	}

	for _, p := range daily {
		idx := 0
		if p.Day > 0 {
			idx = (p.Day - 1) / model.DaysPerMonth
		}
		if idx >= len(months) {
			idx = len(months) - 1
		}
		months[idx].Purchases += p.Purchase
		// Points arrive in day order, so the last write for a bucket is
		// its last-day snapshot.
		months[idx].Cumulative = p.Cumulative
		months[idx].Coverage = p.Coverage
	}

	return months
}
