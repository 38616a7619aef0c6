package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"covsim/internal/config"
	"covsim/internal/model"

	"github.com/spf13/cobra"
)

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "First-time setup wizard",
	RunE:  runSetup,
}

func init() {
	rootCmd.AddCommand(setupCmd)
}

func runSetup(_ *cobra.Command, _ []string) error {
	reader := bufio.NewReader(os.Stdin)

	// Load existing config or defaults
	cfg, _ := config.Load()
	sim := cfg.SimConfig()

	fmt.Println()
	fmt.Println("  Welcome to covsim!")
	fmt.Println()
	fmt.Println("  Default simulation parameters (Enter keeps the current value):")
	fmt.Println()

	sim.Months = promptInt(reader, fmt.Sprintf("Months (%d-%d)", model.MinMonths, model.MaxMonths), sim.Months)
	sim.Premium = promptFloat(reader, fmt.Sprintf("Premium (%.0f-%.0f)", model.MinPremium, model.MaxPremium), sim.Premium)
	sim.CadenceDays = promptInt(reader, fmt.Sprintf("Cadence days (%d-%d)", model.MinCadenceDays, model.MaxCadenceDays), sim.CadenceDays)
	sim.PolicyDays = promptInt(reader, fmt.Sprintf("Policy days (%d-%d)", model.MinPolicyDays, model.MaxPolicyDays), sim.PolicyDays)
	sim.Bootstrap = promptFloat(reader, fmt.Sprintf("Bootstrap (%.0f-%.0f)", model.MinBootstrap, model.MaxBootstrap), sim.Bootstrap)
	sim.CostPct = promptFloat(reader, fmt.Sprintf("Cost percent (%.0f-%.0f)", model.MinCostPct, model.MaxCostPct), sim.CostPct)

	cfg.SetSimConfig(sim.Clamp())

	fmt.Println()
	fmt.Println("  Color theme")
	fmt.Println("     (1) Flexoki Dark [default]")
	fmt.Println("     (2) Catppuccin Mocha")
	fmt.Println("     (3) Tokyo Night")
	fmt.Println("     (4) Terminal (ANSI 16)")
	fmt.Print("     > ")
	themeChoice, _ := reader.ReadString('\n')
	switch strings.TrimSpace(themeChoice) {
	case "2":
		cfg.Appearance.Theme = "catppuccin-mocha"
	case "3":
		cfg.Appearance.Theme = "tokyo-night"
	case "4":
		cfg.Appearance.Theme = "terminal"
	default:
		cfg.Appearance.Theme = "flexoki-dark"
	}

	if err := config.Save(cfg); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}

	fmt.Println()
	fmt.Printf("  Saved to %s\n", config.ConfigPath())
	fmt.Println("  Run `covsim setup` anytime to reconfigure.")
	fmt.Println()

	return nil
}

func promptInt(reader *bufio.Reader, label string, current int) int {
	fmt.Printf("  %s [%d]\n     > ", label, current)
	line, _ := reader.ReadString('\n')
	line = strings.TrimSpace(line)
	if line == "" {
		return current
	}
	v, err := strconv.Atoi(line)
	if err != nil {
		fmt.Printf("     Not a number, keeping %d\n", current)
		return current
	}
	return v
}

func promptFloat(reader *bufio.Reader, label string, current float64) float64 {
	fmt.Printf("  %s [%.0f]\n     > ", label, current)
	line, _ := reader.ReadString('\n')
	line = strings.TrimSpace(line)
	if line == "" {
		return current
	}
	v, err := strconv.ParseFloat(line, 64)
	if err != nil {
		fmt.Printf("     Not a number, keeping %.0f\n", current)
		return current
	}
	return v
}
