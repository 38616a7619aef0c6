package export

import (
	"encoding/csv"
	"strings"
	"testing"

	"covsim/internal/model"
	"covsim/internal/sim"
)

func TestWriteDailyCSV(t *testing.T) {
	cfg := model.DefaultConfig()
	daily := sim.Simulate(cfg)

	var b strings.Builder
	if err := WriteDailyCSV(&b, daily); err != nil {
		t.Fatalf("WriteDailyCSV: %v", err)
	}

	records, err := csv.NewReader(strings.NewReader(b.String())).ReadAll()
	if err != nil {
		t.Fatalf("re-reading csv: %v", err)
	}

	if len(records) != len(daily)+1 {
		t.Fatalf("record count = %d, want %d", len(records), len(daily)+1)
	}
	wantHeader := []string{"day", "purchase", "cumulative_premiums", "coverage"}
	for i, h := range wantHeader {
		if records[0][i] != h {
			t.Fatalf("header[%d] = %q, want %q", i, records[0][i], h)
		}
	}

	// Day 30 row: first purchase with the default parameters.
	row := records[31]
	if row[0] != "30" || row[1] != "50000.00" || row[2] != "50000.00" || row[3] != "625000.00" {
		t.Fatalf("day 30 row = %v", row)
	}
}

func TestWriteMonthlyCSV(t *testing.T) {
	cfg := model.DefaultConfig()
	daily := sim.Simulate(cfg)
	months := sim.AggregateMonths(cfg, daily)

	var b strings.Builder
	if err := WriteMonthlyCSV(&b, months); err != nil {
		t.Fatalf("WriteMonthlyCSV: %v", err)
	}

	records, err := csv.NewReader(strings.NewReader(b.String())).ReadAll()
	if err != nil {
		t.Fatalf("re-reading csv: %v", err)
	}

	if len(records) != cfg.Months+1 {
		t.Fatalf("record count = %d, want %d", len(records), cfg.Months+1)
	}
	if records[1][0] != "1" || records[1][1] != "M1" {
		t.Fatalf("month 1 row = %v", records[1])
	}
	if records[1][2] != "50000.00" {
		t.Fatalf("month 1 purchases = %q, want 50000.00", records[1][2])
	}
}
