// Package export writes simulation series to CSV.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"covsim/internal/cli"
	"covsim/internal/model"
)

// WriteDailyCSV writes the daily series with a header row. Amounts keep
// two decimals so spreadsheet totals reconcile with the simulator.
func WriteDailyCSV(w io.Writer, daily []model.DailyPoint) error {
	cw := csv.NewWriter(w)

	if err := cw.Write([]string{"day", "purchase", "cumulative_premiums", "coverage"}); err != nil {
		return fmt.Errorf("writing csv header: %w", err)
	}

	for _, p := range daily {
		record := []string{
			strconv.Itoa(p.Day),
			formatValue(p.Purchase),
			formatValue(p.Cumulative),
			formatValue(p.Coverage),
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("writing day %d: %w", p.Day, err)
		}
	}

	cw.Flush()
	return cw.Error()
}

// WriteMonthlyCSV writes the monthly buckets with a header row.
func WriteMonthlyCSV(w io.Writer, months []model.MonthlyPoint) error {
	cw := csv.NewWriter(w)

	if err := cw.Write([]string{"month", "label", "purchases", "cumulative_premiums", "coverage"}); err != nil {
		return fmt.Errorf("writing csv header: %w", err)
	}

	for _, m := range months {
		record := []string{
			strconv.Itoa(m.Month),
			cli.MonthLabel(m.Month),
			formatValue(m.Purchases),
			formatValue(m.Cumulative),
			formatValue(m.Coverage),
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("writing month %d: %w", m.Month, err)
		}
	}

	cw.Flush()
	return cw.Error()
}

func formatValue(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}
