package model

// DailyPoint is one day of the simulated series.
type DailyPoint struct {
	Day       int     // 0-based day index
	Purchase  float64 // premium purchased on this day (bootstrap included on day 0)
	Cumulative float64 // running total of all purchases through this day
	Coverage  float64 // active premiums divided by the cost fraction
}

// MonthlyPoint is a 30-day bucket of the daily series. Purchases are
// summed over the bucket; Cumulative and Coverage are the values at the
// bucket's last day, not averages.
type MonthlyPoint struct {
	Month      int     // 1-based month index
	Purchases  float64 // sum of purchases in the bucket
	Cumulative float64 // cumulative premiums at the last day of the bucket
	Coverage   float64 // coverage at the last day of the bucket
}

// SummaryStats holds the headline numbers derived from a daily series.
type SummaryStats struct {
	TotalDays       int
	PurchaseCount   int     // days with a nonzero purchase, day 0 included
	TotalPurchased  float64 // equals Cumulative at the final day
	ActivePremiums  float64 // unexpired premiums at the final day
	FinalCoverage   float64
	PeakCoverage    float64
	PeakCoverageDay int
	MeanCoverage    float64
}
