package cli

import (
	"math"
	"testing"
)

func TestFormatNumber(t *testing.T) {
	cases := []struct {
		in   int64
		want string
	}{
		{0, "0"},
		{999, "999"},
		{1_000, "1,000"},
		{50_000, "50,000"},
		{1_234_567, "1,234,567"},
		{-1_234_567, "-1,234,567"},
	}
	for _, tc := range cases {
		if got := FormatNumber(tc.in); got != tc.want {
			t.Fatalf("FormatNumber(%d) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestFormatCompact(t *testing.T) {
	cases := []struct {
		in   float64
		want string
	}{
		{0, "0"},
		{999, "999"},
		{1_250, "1.2K"},
		{1_875_000, "1.9M"},
		{10_000_000, "10.0M"},
		{2_500_000_000, "2.5B"},
	}
	for _, tc := range cases {
		if got := FormatCompact(tc.in); got != tc.want {
			t.Fatalf("FormatCompact(%g) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestFormatAmount(t *testing.T) {
	if got := FormatAmount(1_234_567.4); got != "1,234,567" {
		t.Fatalf("FormatAmount = %q, want 1,234,567", got)
	}
	if got := FormatAmount(math.NaN()); got != "-" {
		t.Fatalf("FormatAmount(NaN) = %q, want -", got)
	}
}

func TestMonthLabel(t *testing.T) {
	if got := MonthLabel(1); got != "M1" {
		t.Fatalf("MonthLabel(1) = %q, want M1", got)
	}
	if got := MonthLabel(60); got != "M60" {
		t.Fatalf("MonthLabel(60) = %q, want M60", got)
	}
}

func TestRenderSparklineBounds(t *testing.T) {
	if got := RenderSparkline(nil); got != "" {
		t.Fatalf("empty sparkline = %q, want empty", got)
	}

	// All-zero input must not divide by zero.
	got := RenderSparkline([]float64{0, 0, 0})
	if len([]rune(got)) != 3 {
		t.Fatalf("sparkline rune count = %d, want 3", len([]rune(got)))
	}
}
