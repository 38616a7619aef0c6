package sim

import (
	"math"
	"testing"

	"covsim/internal/model"
)

func TestSummarize(t *testing.T) {
	cfg := workedExampleConfig()
	daily := Simulate(cfg)
	stats := Summarize(cfg, daily)

	if stats.TotalDays != 360 {
		t.Fatalf("TotalDays = %d, want 360", stats.TotalDays)
	}
	if stats.PurchaseCount != 12 {
		t.Fatalf("PurchaseCount = %d, want 12", stats.PurchaseCount)
	}
	if stats.TotalPurchased != 600_000 {
		t.Fatalf("TotalPurchased = %.0f, want 600000", stats.TotalPurchased)
	}

	// With cadence 30 and policy 90 the steady state holds three active
	// purchases; peak and final coverage are both 150000/0.08.
	if math.Abs(stats.PeakCoverage-1_875_000) > 1e-6 {
		t.Fatalf("PeakCoverage = %.2f, want 1875000", stats.PeakCoverage)
	}
	if math.Abs(stats.FinalCoverage-1_875_000) > 1e-6 {
		t.Fatalf("FinalCoverage = %.2f, want 1875000", stats.FinalCoverage)
	}
	if math.Abs(stats.ActivePremiums-150_000) > 1e-6 {
		t.Fatalf("ActivePremiums = %.2f, want 150000", stats.ActivePremiums)
	}
	if stats.PeakCoverageDay != 90 {
		t.Fatalf("PeakCoverageDay = %d, want 90 (first day with three active purchases)", stats.PeakCoverageDay)
	}
	if stats.MeanCoverage <= 0 || stats.MeanCoverage > stats.PeakCoverage {
		t.Fatalf("MeanCoverage = %.2f out of (0, peak]", stats.MeanCoverage)
	}
}

func TestSummarizeEmptySeries(t *testing.T) {
	cfg := model.Config{Months: 12, CadenceDays: 30, PolicyDays: 90, CostPct: 8}
	stats := Summarize(cfg, nil)

	if stats.PurchaseCount != 0 || stats.TotalPurchased != 0 || stats.PeakCoverage != 0 {
		t.Fatalf("empty series produced nonzero stats: %+v", stats)
	}
}
