package cmd

import (
	"fmt"

	"covsim/internal/cli"
	"covsim/internal/sim"

	"github.com/spf13/cobra"
)

var flagChartPurchases bool

var chartCmd = &cobra.Command{
	Use:   "chart",
	Short: "Bar chart of monthly coverage",
	RunE:  runChart,
}

func init() {
	chartCmd.Flags().BoolVar(&flagChartPurchases, "purchases", false, "Chart monthly purchases instead of coverage")
	rootCmd.AddCommand(chartCmd)
}

func runChart(_ *cobra.Command, _ []string) error {
	cfg, err := buildConfig()
	if err != nil {
		return err
	}

	daily := sim.Simulate(cfg)
	months := sim.AggregateMonths(cfg, daily)

	title := "Coverage by month"
	values := make([]float64, len(months))
	for i, m := range months {
		values[i] = m.Coverage
	}
	if flagChartPurchases {
		title = "Purchases by month"
		for i, m := range months {
			values[i] = m.Purchases
		}
	}

	peak := 0.0
	for _, v := range values {
		if v > peak {
			peak = v
		}
	}

	fmt.Println()
	fmt.Printf("  %s\n\n", title)

	labelW := len(cli.MonthLabel(cfg.Months))
	for i, v := range values {
		fmt.Println(cli.RenderHorizontalBar(cli.MonthLabel(months[i].Month), v, peak, labelW, 50))
	}
	fmt.Println()

	return nil
}
