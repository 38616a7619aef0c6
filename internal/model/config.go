// Package model defines the simulation input and output types.
package model

import (
	"fmt"
	"math"
)

// Parameter bounds. These mirror the ranges the input surfaces enforce;
// the simulator itself assumes a config inside them.
const (
	MinMonths      = 12
	MaxMonths      = 60
	MinPremium     = 1_000.0
	MaxPremium     = 500_000.0
	MinCadenceDays = 1
	MaxCadenceDays = 365
	MinPolicyDays  = 1
	MaxPolicyDays  = 365
	MinBootstrap   = 0.0
	MaxBootstrap   = 500_000.0
	MinCostPct     = 1.0
	MaxCostPct     = 30.0
)

// DaysPerMonth is the fixed bucket size used for both the simulation
// horizon and monthly aggregation. Calendar months are never consulted.
const DaysPerMonth = 30

// Config holds the simulation parameters. A Config is treated as
// immutable input: all derived data is recomputed from scratch whenever
// any field changes.
type Config struct {
	Months      int     // simulation horizon in 30-day months
	Premium     float64 // amount of each recurring premium purchase
	CadenceDays int     // days between recurring purchases
	PolicyDays  int     // validity window of a single purchase
	Bootstrap   float64 // one-time purchase on day 0
	CostPct     float64 // premium cost as a percent of coverage
}

// DefaultConfig returns the parameter set the UI starts from.
func DefaultConfig() Config {
	return Config{
		Months:      12,
		Premium:     50_000,
		CadenceDays: 30,
		PolicyDays:  90,
		Bootstrap:   0,
		CostPct:     8,
	}
}

// TotalDays returns the last simulated day. The daily series has
// TotalDays+1 points, day 0 through TotalDays inclusive.
func (c Config) TotalDays() int {
	return c.Months * DaysPerMonth
}

// InvalidConfigError reports a config field outside its documented range.
type InvalidConfigError struct {
	Field  string
	Reason string
}

func (e *InvalidConfigError) Error() string {
	return fmt.Sprintf("invalid config: %s %s", e.Field, e.Reason)
}

// Validate checks every field against its documented range. Non-finite
// floats are rejected. Returns an *InvalidConfigError naming the first
// offending field, or nil.
func (c Config) Validate() error {
	if c.Months < MinMonths || c.Months > MaxMonths {
		return &InvalidConfigError{"months", fmt.Sprintf("must be in [%d,%d], got %d", MinMonths, MaxMonths, c.Months)}
	}
	if err := checkRange("premium", c.Premium, MinPremium, MaxPremium); err != nil {
		return err
	}
	if c.CadenceDays < MinCadenceDays || c.CadenceDays > MaxCadenceDays {
		return &InvalidConfigError{"cadence_days", fmt.Sprintf("must be in [%d,%d], got %d", MinCadenceDays, MaxCadenceDays, c.CadenceDays)}
	}
	if c.PolicyDays < MinPolicyDays || c.PolicyDays > MaxPolicyDays {
		return &InvalidConfigError{"policy_days", fmt.Sprintf("must be in [%d,%d], got %d", MinPolicyDays, MaxPolicyDays, c.PolicyDays)}
	}
	if err := checkRange("bootstrap", c.Bootstrap, MinBootstrap, MaxBootstrap); err != nil {
		return err
	}
	if err := checkRange("cost_pct", c.CostPct, MinCostPct, MaxCostPct); err != nil {
		return err
	}
	return nil
}

func checkRange(field string, v, lo, hi float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return &InvalidConfigError{field, "must be finite"}
	}
	if v < lo || v > hi {
		return &InvalidConfigError{field, fmt.Sprintf("must be in [%g,%g], got %g", lo, hi, v)}
	}
	return nil
}

// Clamp returns a copy with every field forced into its documented range.
// Non-finite floats are forced to the range minimum. This is the behavior
// of the interactive input surfaces; Validate is the strict alternative
// used when loading stored scenarios.
func (c Config) Clamp() Config {
	c.Months = clampInt(c.Months, MinMonths, MaxMonths)
	c.Premium = clampFloat(c.Premium, MinPremium, MaxPremium)
	c.CadenceDays = clampInt(c.CadenceDays, MinCadenceDays, MaxCadenceDays)
	c.PolicyDays = clampInt(c.PolicyDays, MinPolicyDays, MaxPolicyDays)
	c.Bootstrap = clampFloat(c.Bootstrap, MinBootstrap, MaxBootstrap)
	c.CostPct = clampFloat(c.CostPct, MinCostPct, MaxCostPct)
	return c
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func clampFloat(v, lo, hi float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
