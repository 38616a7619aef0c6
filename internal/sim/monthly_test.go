package sim

import (
	"math"
	"testing"

	"covsim/internal/model"
)

func TestAggregateMonthsBucketCount(t *testing.T) {
	cfg := workedExampleConfig()
	daily := Simulate(cfg)
	months := AggregateMonths(cfg, daily)

	if len(months) != cfg.Months {
		t.Fatalf("bucket count = %d, want %d", len(months), cfg.Months)
	}
	for i, m := range months {
		if m.Month != i+1 {
			t.Fatalf("bucket %d has Month = %d", i, m.Month)
		}
	}
}

func TestAggregateMonthsPurchaseSums(t *testing.T) {
	cfg := workedExampleConfig()
	daily := Simulate(cfg)
	months := AggregateMonths(cfg, daily)

	// One purchase per 30-day bucket with cadence 30.
	for _, m := range months {
		if m.Purchases != 50_000 {
			t.Fatalf("month %d purchases = %.0f, want 50000", m.Month, m.Purchases)
		}
	}

	var total float64
	for _, m := range months {
		total += m.Purchases
	}
	if total != daily[len(daily)-1].Cumulative {
		t.Fatalf("bucket purchase total %.0f != final cumulative %.0f", total, daily[len(daily)-1].Cumulative)
	}
}

func TestAggregateMonthsSnapshots(t *testing.T) {
	cfg := model.Config{
		Months:      12,
		Premium:     40_000,
		CadenceDays: 20,
		PolicyDays:  50,
		Bootstrap:   10_000,
		CostPct:     4,
	}
	daily := Simulate(cfg)
	months := AggregateMonths(cfg, daily)

	// Snapshot semantics: bucket i reports the values at day (i+1)*30.
	for i, m := range months {
		lastDay := (i + 1) * model.DaysPerMonth
		snap := daily[lastDay]
		if math.Abs(m.Cumulative-snap.Cumulative) > floatTol {
			t.Fatalf("month %d cumulative = %.2f, want day %d value %.2f", m.Month, m.Cumulative, lastDay, snap.Cumulative)
		}
		if math.Abs(m.Coverage-snap.Coverage) > floatTol {
			t.Fatalf("month %d coverage = %.2f, want day %d value %.2f", m.Month, m.Coverage, lastDay, snap.Coverage)
		}
	}
}

func TestAggregateMonthsBootstrapInFirstBucket(t *testing.T) {
	cfg := model.Config{
		Months:      12,
		Premium:     50_000,
		CadenceDays: 365, // no recurring purchases inside the horizon
		PolicyDays:  90,
		Bootstrap:   80_000,
		CostPct:     8,
	}
	daily := Simulate(cfg)
	months := AggregateMonths(cfg, daily)

	if months[0].Purchases != 80_000 {
		t.Fatalf("month 1 purchases = %.0f, want bootstrap 80000", months[0].Purchases)
	}
	for _, m := range months[1:] {
		if m.Purchases != 0 {
			t.Fatalf("month %d purchases = %.0f, want 0", m.Month, m.Purchases)
		}
	}
}
