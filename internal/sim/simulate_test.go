package sim

import (
	"math"
	"testing"

	"covsim/internal/model"
)

const floatTol = 1e-9

func workedExampleConfig() model.Config {
	return model.Config{
		Months:      12,
		Premium:     50_000,
		CadenceDays: 30,
		PolicyDays:  90,
		Bootstrap:   0,
		CostPct:     8,
	}
}

func TestSimulateLength(t *testing.T) {
	cfg := workedExampleConfig()
	daily := Simulate(cfg)

	want := cfg.TotalDays() + 1
	if len(daily) != want {
		t.Fatalf("series length = %d, want %d", len(daily), want)
	}
	for i, p := range daily {
		if p.Day != i {
			t.Fatalf("point %d has Day = %d", i, p.Day)
		}
	}
}

func TestSimulateWorkedExample(t *testing.T) {
	daily := Simulate(workedExampleConfig())

	// First purchase on day 30: 50000 purchased, coverage 50000/0.08.
	d30 := daily[30]
	if d30.Purchase != 50_000 {
		t.Fatalf("day 30 purchase = %.0f, want 50000", d30.Purchase)
	}
	if d30.Cumulative != 50_000 {
		t.Fatalf("day 30 cumulative = %.0f, want 50000", d30.Cumulative)
	}
	if math.Abs(d30.Coverage-625_000) > floatTol {
		t.Fatalf("day 30 coverage = %.2f, want 625000", d30.Coverage)
	}

	// Day 120: the day-30 purchase is aged exactly 90 and has expired,
	// leaving days 60, 90, 120 active (150000 premiums).
	d120 := daily[120]
	if d120.Purchase != 50_000 {
		t.Fatalf("day 120 purchase = %.0f, want 50000", d120.Purchase)
	}
	if math.Abs(d120.Coverage-1_875_000) > 1e-6 {
		t.Fatalf("day 120 coverage = %.2f, want 1875000", d120.Coverage)
	}

	// Day 119: the day-30 purchase is aged 89 and still counts.
	d119 := daily[119]
	if math.Abs(d119.Coverage-1_875_000) > 1e-6 {
		t.Fatalf("day 119 coverage = %.2f, want 1875000 (days 30,60,90 active)", d119.Coverage)
	}
}

func TestSimulateCumulativeMonotonic(t *testing.T) {
	configs := []model.Config{
		workedExampleConfig(),
		{Months: 24, Premium: 1_000, CadenceDays: 7, PolicyDays: 14, Bootstrap: 250_000, CostPct: 1},
		{Months: 60, Premium: 500_000, CadenceDays: 365, PolicyDays: 365, Bootstrap: 0, CostPct: 30},
	}

	for _, cfg := range configs {
		daily := Simulate(cfg)
		for i := 1; i < len(daily); i++ {
			if daily[i].Cumulative < daily[i-1].Cumulative {
				t.Fatalf("config %+v: cumulative decreased at day %d: %.2f -> %.2f",
					cfg, daily[i].Day, daily[i-1].Cumulative, daily[i].Cumulative)
			}
		}
	}
}

func TestSimulateFinalCumulative(t *testing.T) {
	cfg := model.Config{
		Months:      18,
		Premium:     20_000,
		CadenceDays: 45,
		PolicyDays:  120,
		Bootstrap:   75_000,
		CostPct:     5,
	}
	daily := Simulate(cfg)

	purchaseDays := cfg.TotalDays() / cfg.CadenceDays
	want := cfg.Bootstrap + cfg.Premium*float64(purchaseDays)

	got := daily[len(daily)-1].Cumulative
	if math.Abs(got-want) > floatTol {
		t.Fatalf("final cumulative = %.2f, want %.2f (%d purchase days + bootstrap)", got, want, purchaseDays)
	}
}

func TestSimulateCoverageInvariant(t *testing.T) {
	// coverage * (CostPct/100) must reproduce the rolling active-premium
	// total, reconstructed here independently from the purchase log.
	cfg := model.Config{
		Months:      14,
		Premium:     33_000,
		CadenceDays: 11,
		PolicyDays:  40,
		Bootstrap:   12_500,
		CostPct:     13,
	}
	daily := Simulate(cfg)

	for _, p := range daily {
		var active float64
		for _, q := range daily[:p.Day+1] {
			if q.Purchase > 0 && p.Day-q.Day < cfg.PolicyDays {
				active += q.Purchase
			}
		}
		got := p.Coverage * (cfg.CostPct / 100)
		if math.Abs(got-active) > 1e-6 {
			t.Fatalf("day %d: coverage*pct = %.4f, want active %.4f", p.Day, got, active)
		}
	}
}

func TestSimulateNoExpiry(t *testing.T) {
	// PolicyDays beyond the horizon: nothing ever expires, so final
	// coverage equals cumulative / (CostPct/100).
	cfg := model.Config{
		Months:      12,
		Premium:     10_000,
		CadenceDays: 30,
		PolicyDays:  365,
		Bootstrap:   5_000,
		CostPct:     10,
	}
	if cfg.PolicyDays < cfg.TotalDays()+1 {
		t.Fatalf("test setup: PolicyDays %d does not cover horizon %d", cfg.PolicyDays, cfg.TotalDays())
	}

	daily := Simulate(cfg)
	last := daily[len(daily)-1]

	want := last.Cumulative / (cfg.CostPct / 100)
	if math.Abs(last.Coverage-want) > 1e-6 {
		t.Fatalf("final coverage = %.2f, want %.2f", last.Coverage, want)
	}
}

func TestSimulateZeroCostPct(t *testing.T) {
	cfg := workedExampleConfig()
	cfg.CostPct = 0 // out of documented range; division guard still applies

	daily := Simulate(cfg)
	for _, p := range daily {
		if p.Coverage != 0 {
			t.Fatalf("day %d coverage = %.2f, want 0 with zero cost pct", p.Day, p.Coverage)
		}
	}
}

func TestSimulateCadenceBeyondHorizon(t *testing.T) {
	cfg := model.Config{
		Months:      12,
		Premium:     50_000,
		CadenceDays: 365, // horizon is 360 days, so no purchase ever fires
		PolicyDays:  90,
		Bootstrap:   0,
		CostPct:     8,
	}
	daily := Simulate(cfg)

	for _, p := range daily {
		if p.Purchase != 0 || p.Cumulative != 0 || p.Coverage != 0 {
			t.Fatalf("day %d: expected all-zero point, got %+v", p.Day, p)
		}
	}
}

func TestSimulateBootstrapOnly(t *testing.T) {
	cfg := model.Config{
		Months:      12,
		Premium:     50_000,
		CadenceDays: 365,
		PolicyDays:  60,
		Bootstrap:   100_000,
		CostPct:     8,
	}
	daily := Simulate(cfg)

	if daily[0].Purchase != 100_000 {
		t.Fatalf("day 0 purchase = %.0f, want bootstrap 100000", daily[0].Purchase)
	}
	if math.Abs(daily[0].Coverage-1_250_000) > floatTol {
		t.Fatalf("day 0 coverage = %.2f, want 1250000", daily[0].Coverage)
	}

	// Bootstrap expires at age 60; coverage drops to zero and stays there.
	if daily[59].Coverage == 0 {
		t.Fatal("day 59 coverage = 0, bootstrap expired one day early")
	}
	if daily[60].Coverage != 0 {
		t.Fatalf("day 60 coverage = %.2f, want 0 after bootstrap expiry", daily[60].Coverage)
	}
	last := daily[len(daily)-1]
	if last.Cumulative != 100_000 {
		t.Fatalf("final cumulative = %.0f, want 100000", last.Cumulative)
	}
}

func TestSimulateDocumentationRatio(t *testing.T) {
	// The documented rule of thumb: 800000 active premiums at 8 percent
	// cost means 10,000,000 coverage. Reached here with bootstrap 300000
	// plus purchases on days 30..300 at policy duration long enough to
	// keep everything active.
	cfg := model.Config{
		Months:      12,
		Premium:     50_000,
		CadenceDays: 30,
		PolicyDays:  365,
		Bootstrap:   300_000,
		CostPct:     8,
	}
	daily := Simulate(cfg)

	d300 := daily[300]
	if d300.Cumulative != 800_000 {
		t.Fatalf("day 300 cumulative = %.0f, want 800000", d300.Cumulative)
	}
	if math.Abs(d300.Coverage-10_000_000) > 1e-6 {
		t.Fatalf("day 300 coverage = %.2f, want 10000000", d300.Coverage)
	}
}

func TestSimulateDeterministic(t *testing.T) {
	cfg := model.Config{
		Months:      37,
		Premium:     123_456,
		CadenceDays: 13,
		PolicyDays:  91,
		Bootstrap:   7_890,
		CostPct:     17.5,
	}

	a := Simulate(cfg)
	b := Simulate(cfg)

	if len(a) != len(b) {
		t.Fatalf("lengths differ: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("day %d differs between runs: %+v vs %+v", i, a[i], b[i])
		}
	}
}
