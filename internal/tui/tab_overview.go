package tui

import (
	"fmt"
	"strings"

	"covsim/internal/cli"
	"covsim/internal/tui/components"
	"covsim/internal/tui/theme"
)

func (a App) renderOverviewTab(cw int) string {
	t := theme.Active
	stats := a.stats
	var b strings.Builder

	// Row 1: Metric cards
	cards := []struct{ Label, Value, Detail string }{
		{"Coverage", cli.FormatCompact(stats.FinalCoverage), "at day " + fmt.Sprint(stats.TotalDays)},
		{"Peak", cli.FormatCompact(stats.PeakCoverage), fmt.Sprintf("day %d", stats.PeakCoverageDay)},
		{"Purchased", cli.FormatCompact(stats.TotalPurchased), fmt.Sprintf("%d purchases", stats.PurchaseCount)},
		{"Active", cli.FormatCompact(stats.ActivePremiums), "unexpired premiums"},
	}
	b.WriteString(components.MetricCardRow(cards, cw))
	b.WriteString("\n")

	// Row 2: Monthly coverage chart
	coverage := make([]float64, len(a.months))
	labels := make([]string, len(a.months))
	for i, m := range a.months {
		coverage[i] = m.Coverage
		labels[i] = cli.MonthLabel(m.Month)
	}
	chartH := a.contentHeight() - 12
	if chartH < 6 {
		chartH = 6
	}
	if chartH > 12 {
		chartH = 12
	}
	b.WriteString(components.ContentCard(
		fmt.Sprintf("Coverage by month (%d months)", a.cfg.Months),
		components.BarChart(coverage, labels, t.Blue, components.CardInnerWidth(cw), chartH),
		cw,
	))
	b.WriteString("\n")

	// Row 3: Purchases sparkline
	purchases := make([]float64, len(a.months))
	for i, m := range a.months {
		purchases[i] = m.Purchases
	}
	b.WriteString(components.ContentCard(
		"Purchases by month",
		components.Sparkline(purchases, t.Green),
		cw,
	))

	return b.String()
}
