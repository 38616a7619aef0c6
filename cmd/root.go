// Package cmd implements the covsim CLI commands.
package cmd

import (
	"fmt"
	"os"

	"covsim/internal/cli"
	"covsim/internal/config"
	"covsim/internal/model"
	"covsim/internal/sim"
	"covsim/internal/store"

	"github.com/spf13/cobra"
)

var (
	flagMonths    int
	flagPremium   float64
	flagCadence   int
	flagPolicy    int
	flagBootstrap float64
	flagCostPct   float64
	flagScenario  string
)

// appConfig is loaded once at startup; flag defaults come from it.
var appConfig config.Config

var rootCmd = &cobra.Command{
	Use:   "covsim",
	Short: "Insurance coverage simulator",
	Long: "Simulate recurring insurance-premium purchases day by day and the\n" +
		"time-varying coverage funded by unexpired premiums.",
}

// Execute is the main entry point called from main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.RunE = runSummary

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "  Config unreadable, using defaults: %v\n", err)
		cfg = config.DefaultConfig()
	}
	appConfig = cfg
	defaults := cfg.SimConfig()

	pf := rootCmd.PersistentFlags()
	pf.IntVarP(&flagMonths, "months", "M", defaults.Months, "Simulation horizon in 30-day months (12-60)")
	pf.Float64VarP(&flagPremium, "premium", "P", defaults.Premium, "Recurring premium purchase amount (1000-500000)")
	pf.IntVarP(&flagCadence, "cadence", "c", defaults.CadenceDays, "Days between purchases (1-365)")
	pf.IntVarP(&flagPolicy, "policy-days", "p", defaults.PolicyDays, "Validity window of a purchase in days (1-365)")
	pf.Float64VarP(&flagBootstrap, "bootstrap", "b", defaults.Bootstrap, "One-time day-zero purchase (0-500000)")
	pf.Float64VarP(&flagCostPct, "cost-pct", "k", defaults.CostPct, "Premium cost as percent of coverage (1-30)")
	pf.StringVarP(&flagScenario, "scenario", "s", "", "Load parameters from a saved scenario")
}

// buildConfig assembles the simulation config for this invocation:
// config-file defaults, then the saved scenario if requested, then any
// explicitly set flags on top. The result is clamped to the documented
// ranges rather than rejected, like the interactive surfaces.
func buildConfig() (model.Config, error) {
	cfg := appConfig.SimConfig()

	if flagScenario != "" {
		s, err := store.Open(config.ScenarioDBPath())
		if err != nil {
			return model.Config{}, err
		}
		defer s.Close()

		sc, err := s.Get(flagScenario)
		if err != nil {
			return model.Config{}, err
		}
		cfg = sc.Config()
	}

	pf := rootCmd.PersistentFlags()
	if pf.Changed("months") {
		cfg.Months = flagMonths
	}
	if pf.Changed("premium") {
		cfg.Premium = flagPremium
	}
	if pf.Changed("cadence") {
		cfg.CadenceDays = flagCadence
	}
	if pf.Changed("policy-days") {
		cfg.PolicyDays = flagPolicy
	}
	if pf.Changed("bootstrap") {
		cfg.Bootstrap = flagBootstrap
	}
	if pf.Changed("cost-pct") {
		cfg.CostPct = flagCostPct
	}

	return cfg.Clamp(), nil
}

func runSummary(_ *cobra.Command, _ []string) error {
	cfg, err := buildConfig()
	if err != nil {
		return err
	}

	daily := sim.Simulate(cfg)
	months := sim.AggregateMonths(cfg, daily)
	stats := sim.Summarize(cfg, daily)

	fmt.Println()
	fmt.Println(cli.RenderTitle(fmt.Sprintf("COVERAGE SIMULATION  %d months", cfg.Months)))
	fmt.Println()

	fmt.Print(cli.RenderTable(cli.Table{
		Title:   "Parameters",
		Headers: []string{"Parameter", "Value"},
		Rows: [][]string{
			{"Premium", cli.FormatAmount(cfg.Premium)},
			{"Cadence", fmt.Sprintf("every %d days", cfg.CadenceDays)},
			{"Policy duration", fmt.Sprintf("%d days", cfg.PolicyDays)},
			{"Bootstrap", cli.FormatAmount(cfg.Bootstrap)},
			{"Premium cost", cli.FormatPercent(cfg.CostPct)},
		},
	}))
	fmt.Println()

	fmt.Print(cli.RenderTable(cli.Table{
		Title:   "Results",
		Headers: []string{"Metric", "Value"},
		Rows: [][]string{
			{"Total purchased", cli.FormatAmount(stats.TotalPurchased)},
			{"Purchases", cli.FormatNumber(int64(stats.PurchaseCount))},
			{"Final coverage", cli.FormatAmount(stats.FinalCoverage)},
			{"Peak coverage", fmt.Sprintf("%s (day %d)", cli.FormatAmount(stats.PeakCoverage), stats.PeakCoverageDay)},
			{"Mean coverage", cli.FormatAmount(stats.MeanCoverage)},
			{"Active premiums", cli.FormatAmount(stats.ActivePremiums)},
		},
	}))
	fmt.Println()

	coverage := make([]float64, len(months))
	for i, m := range months {
		coverage[i] = m.Coverage
	}
	fmt.Printf("  Coverage by month\n  %s\n\n", cli.RenderSparkline(coverage))

	return nil
}
