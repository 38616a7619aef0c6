package cmd

import (
	"fmt"
	"strconv"

	"covsim/internal/cli"
	"covsim/internal/sim"

	"github.com/spf13/cobra"
)

var flagEvery int

var dailyCmd = &cobra.Command{
	Use:   "daily",
	Short: "Daily purchase and coverage table",
	RunE:  runDaily,
}

func init() {
	dailyCmd.Flags().IntVarP(&flagEvery, "every", "e", 30, "Show every Nth day (1 for the full series)")
	rootCmd.AddCommand(dailyCmd)
}

func runDaily(_ *cobra.Command, _ []string) error {
	cfg, err := buildConfig()
	if err != nil {
		return err
	}
	every := flagEvery
	if every < 1 {
		every = 1
	}

	daily := sim.Simulate(cfg)

	fmt.Println()
	fmt.Println(cli.RenderTitle(fmt.Sprintf("DAILY SERIES  %d days", cfg.TotalDays())))
	fmt.Println()

	rows := make([][]string, 0, len(daily)/every+2)
	for _, p := range daily {
		// Always include day 0, sampled days, and the final day.
		if p.Day%every != 0 && p.Day != cfg.TotalDays() {
			continue
		}
		rows = append(rows, []string{
			strconv.Itoa(p.Day),
			cli.FormatAmount(p.Purchase),
			cli.FormatAmount(p.Cumulative),
			cli.FormatAmount(p.Coverage),
		})
	}

	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"Day", "Purchase", "Cumulative", "Coverage"},
		Rows:    rows,
	}))

	if every > 1 {
		fmt.Printf("\n  Showing every %d days. Use --every 1 for the full series.\n", every)
	}

	return nil
}
