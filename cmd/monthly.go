package cmd

import (
	"fmt"

	"covsim/internal/cli"
	"covsim/internal/sim"

	"github.com/spf13/cobra"
)

var monthlyCmd = &cobra.Command{
	Use:   "monthly",
	Short: "Monthly aggregation table",
	Long: "Groups the daily series into 30-day buckets: purchases are summed,\n" +
		"cumulative premiums and coverage are the last-day snapshot.",
	RunE: runMonthly,
}

func init() {
	rootCmd.AddCommand(monthlyCmd)
}

func runMonthly(_ *cobra.Command, _ []string) error {
	cfg, err := buildConfig()
	if err != nil {
		return err
	}

	daily := sim.Simulate(cfg)
	months := sim.AggregateMonths(cfg, daily)

	fmt.Println()
	fmt.Println(cli.RenderTitle(fmt.Sprintf("MONTHLY SERIES  %d months", cfg.Months)))
	fmt.Println()

	rows := make([][]string, 0, len(months))
	for _, m := range months {
		rows = append(rows, []string{
			cli.MonthLabel(m.Month),
			cli.FormatAmount(m.Purchases),
			cli.FormatAmount(m.Cumulative),
			cli.FormatAmount(m.Coverage),
		})
	}

	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"Month", "Purchases", "Cumulative", "Coverage"},
		Rows:    rows,
	}))

	return nil
}
