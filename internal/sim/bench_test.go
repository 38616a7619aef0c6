package sim

import (
	"testing"

	"covsim/internal/model"
)

func BenchmarkSimulate(b *testing.B) {
	cfg := model.Config{
		Months:      60,
		Premium:     50000,
		CadenceDays: 1,
		PolicyDays:  365,
		Bootstrap:   100000,
		CostPct:     8,
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		daily := Simulate(cfg)
		_ = daily
	}
}

func BenchmarkFullRecompute(b *testing.B) {
	// Worst case for the dashboard: longest horizon, daily purchases,
	// recompute of the whole series plus both aggregations.
	cfg := model.Config{
		Months:      60,
		Premium:     50000,
		CadenceDays: 1,
		PolicyDays:  365,
		Bootstrap:   100000,
		CostPct:     8,
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		daily := Simulate(cfg)
		months := AggregateMonths(cfg, daily)
		stats := Summarize(cfg, daily)
		_, _ = months, stats
	}
}
