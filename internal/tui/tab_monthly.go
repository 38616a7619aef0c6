package tui

import (
	"fmt"
	"strings"

	"covsim/internal/cli"
	"covsim/internal/tui/components"
	"covsim/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

func (a App) renderMonthlyTab(cw int) string {
	t := theme.Active
	var b strings.Builder

	purchases := make([]float64, len(a.months))
	labels := make([]string, len(a.months))
	for i, m := range a.months {
		purchases[i] = m.Purchases
		labels[i] = cli.MonthLabel(m.Month)
	}
	b.WriteString(components.ContentCard(
		"Purchases by month",
		components.BarChart(purchases, labels, t.Green, components.CardInnerWidth(cw), 6),
		cw,
	))
	b.WriteString("\n")

	headerStyle := lipgloss.NewStyle().Foreground(t.Accent).Bold(true)
	rowStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)

	b.WriteString(headerStyle.Render(fmt.Sprintf("  %6s  %14s  %14s  %16s", "Month", "Purchases", "Cumulative", "Coverage")))
	b.WriteString("\n")

	// The table is bounded (at most 60 buckets); show what fits.
	rows := a.contentHeight() - 10
	if rows < 3 {
		rows = 3
	}
	for i, m := range a.months {
		if i >= rows {
			dim := lipgloss.NewStyle().Foreground(t.TextDim)
			b.WriteString(dim.Render(fmt.Sprintf("  … %d more months, see `covsim monthly`", len(a.months)-i)))
			b.WriteString("\n")
			break
		}
		b.WriteString(rowStyle.Render(fmt.Sprintf("  %6s  %14s  %14s  %16s",
			cli.MonthLabel(m.Month),
			cli.FormatAmount(m.Purchases),
			cli.FormatAmount(m.Cumulative),
			cli.FormatAmount(m.Coverage),
		)))
		b.WriteString("\n")
	}

	return b.String()
}
