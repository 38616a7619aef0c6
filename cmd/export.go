package cmd

import (
	"fmt"
	"os"

	"covsim/internal/export"
	"covsim/internal/sim"

	"github.com/spf13/cobra"
)

var (
	flagExportMonthly bool
	flagExportOut     string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the series as CSV",
	RunE:  runExport,
}

func init() {
	exportCmd.Flags().BoolVar(&flagExportMonthly, "monthly", false, "Export monthly buckets instead of the daily series")
	exportCmd.Flags().StringVarP(&flagExportOut, "out", "o", "", "Output file (default stdout)")
	rootCmd.AddCommand(exportCmd)
}

func runExport(_ *cobra.Command, _ []string) error {
	cfg, err := buildConfig()
	if err != nil {
		return err
	}

	out := os.Stdout
	if flagExportOut != "" {
		f, err := os.Create(flagExportOut)
		if err != nil {
			return fmt.Errorf("creating %s: %w", flagExportOut, err)
		}
		defer f.Close()
		out = f
	}

	daily := sim.Simulate(cfg)

	if flagExportMonthly {
		if err := export.WriteMonthlyCSV(out, sim.AggregateMonths(cfg, daily)); err != nil {
			return err
		}
	} else {
		if err := export.WriteDailyCSV(out, daily); err != nil {
			return err
		}
	}

	if flagExportOut != "" {
		fmt.Fprintf(os.Stderr, "  Wrote %s\n", flagExportOut)
	}
	return nil
}
