package model

import (
	"errors"
	"math"
	"testing"
)

func TestValidateAcceptsDefaults(t *testing.T) {
	if err := DefaultConfig().Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
}

func TestValidateBounds(t *testing.T) {
	base := DefaultConfig()

	cases := []struct {
		name   string
		mutate func(*Config)
		field  string
	}{
		{"months low", func(c *Config) { c.Months = 11 }, "months"},
		{"months high", func(c *Config) { c.Months = 61 }, "months"},
		{"premium low", func(c *Config) { c.Premium = 999 }, "premium"},
		{"premium high", func(c *Config) { c.Premium = 500_001 }, "premium"},
		{"premium nan", func(c *Config) { c.Premium = math.NaN() }, "premium"},
		{"cadence low", func(c *Config) { c.CadenceDays = 0 }, "cadence_days"},
		{"cadence high", func(c *Config) { c.CadenceDays = 366 }, "cadence_days"},
		{"policy low", func(c *Config) { c.PolicyDays = 0 }, "policy_days"},
		{"policy high", func(c *Config) { c.PolicyDays = 366 }, "policy_days"},
		{"bootstrap negative", func(c *Config) { c.Bootstrap = -1 }, "bootstrap"},
		{"bootstrap inf", func(c *Config) { c.Bootstrap = math.Inf(1) }, "bootstrap"},
		{"cost pct low", func(c *Config) { c.CostPct = 0.5 }, "cost_pct"},
		{"cost pct high", func(c *Config) { c.CostPct = 31 }, "cost_pct"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := base
			tc.mutate(&cfg)

			err := cfg.Validate()
			if err == nil {
				t.Fatalf("Validate accepted %+v", cfg)
			}
			var ice *InvalidConfigError
			if !errors.As(err, &ice) {
				t.Fatalf("error type = %T, want *InvalidConfigError", err)
			}
			if ice.Field != tc.field {
				t.Fatalf("error field = %q, want %q", ice.Field, tc.field)
			}
		})
	}
}

func TestClampForcesRanges(t *testing.T) {
	cfg := Config{
		Months:      200,
		Premium:     math.Inf(1),
		CadenceDays: -5,
		PolicyDays:  1_000,
		Bootstrap:   math.NaN(),
		CostPct:     0,
	}
	got := cfg.Clamp()

	if got.Months != MaxMonths {
		t.Fatalf("Months = %d, want %d", got.Months, MaxMonths)
	}
	if got.Premium != MinPremium {
		t.Fatalf("Premium = %g, want %g (non-finite forced to minimum)", got.Premium, MinPremium)
	}
	if got.CadenceDays != MinCadenceDays {
		t.Fatalf("CadenceDays = %d, want %d", got.CadenceDays, MinCadenceDays)
	}
	if got.PolicyDays != MaxPolicyDays {
		t.Fatalf("PolicyDays = %d, want %d", got.PolicyDays, MaxPolicyDays)
	}
	if got.Bootstrap != MinBootstrap {
		t.Fatalf("Bootstrap = %g, want %g", got.Bootstrap, MinBootstrap)
	}
	if got.CostPct != MinCostPct {
		t.Fatalf("CostPct = %g, want %g", got.CostPct, MinCostPct)
	}

	if err := got.Validate(); err != nil {
		t.Fatalf("clamped config still invalid: %v", err)
	}
}

func TestClampPreservesValid(t *testing.T) {
	cfg := DefaultConfig()
	if got := cfg.Clamp(); got != cfg {
		t.Fatalf("Clamp changed a valid config: %+v -> %+v", cfg, got)
	}
}

func TestTotalDays(t *testing.T) {
	cfg := Config{Months: 12}
	if got := cfg.TotalDays(); got != 360 {
		t.Fatalf("TotalDays = %d, want 360", got)
	}
}
