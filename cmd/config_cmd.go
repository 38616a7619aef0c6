package cmd

import (
	"fmt"

	"covsim/internal/config"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show current configuration",
	RunE:  runConfig,
}

func init() {
	rootCmd.AddCommand(configCmd)
}

func runConfig(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	fmt.Printf("  Config file: %s\n", config.ConfigPath())
	if config.Exists() {
		fmt.Println("  Status: loaded")
	} else {
		fmt.Println("  Status: using defaults (no config file)")
	}
	fmt.Println()

	fmt.Println("  [Simulation defaults]")
	fmt.Printf("    Months:          %d\n", cfg.Simulation.Months)
	fmt.Printf("    Premium:         %.0f\n", cfg.Simulation.Premium)
	fmt.Printf("    Cadence days:    %d\n", cfg.Simulation.CadenceDays)
	fmt.Printf("    Policy days:     %d\n", cfg.Simulation.PolicyDays)
	fmt.Printf("    Bootstrap:       %.0f\n", cfg.Simulation.Bootstrap)
	fmt.Printf("    Cost percent:    %.1f\n", cfg.Simulation.CostPct)
	fmt.Println()

	fmt.Println("  [Appearance]")
	fmt.Printf("    Theme: %s\n", cfg.Appearance.Theme)
	fmt.Println()

	fmt.Printf("  Scenario database: %s\n", config.ScenarioDBPath())

	return nil
}
