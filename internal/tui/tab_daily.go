package tui

import (
	"fmt"
	"strings"

	"covsim/internal/cli"
	"covsim/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

func (a *App) updateDailyKeys(key string) (bool, App) {
	last := len(a.daily) - 1
	half := a.contentHeight() / 2
	if half < 1 {
		half = 1
	}

	switch key {
	case "j", "down":
		a.dailyScroll++
	case "k", "up":
		a.dailyScroll--
	case "ctrl+d":
		a.dailyScroll += half
	case "ctrl+u":
		a.dailyScroll -= half
	case "g":
		a.dailyScroll = 0
	case "G":
		a.dailyScroll = last
	default:
		return false, *a
	}

	if a.dailyScroll > last {
		a.dailyScroll = last
	}
	if a.dailyScroll < 0 {
		a.dailyScroll = 0
	}
	return true, *a
}

func (a App) renderDailyTab(cw int) string {
	t := theme.Active
	var b strings.Builder

	headerStyle := lipgloss.NewStyle().Foreground(t.Accent).Bold(true)
	rowStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)
	purchaseStyle := lipgloss.NewStyle().Foreground(t.Green)
	dimStyle := lipgloss.NewStyle().Foreground(t.TextDim)

	rows := a.contentHeight() - 2
	if rows < 3 {
		rows = 3
	}
	start := a.dailyScroll
	end := start + rows
	if end > len(a.daily) {
		end = len(a.daily)
	}

	b.WriteString(headerStyle.Render(fmt.Sprintf("  %6s  %14s  %14s  %16s", "Day", "Purchase", "Cumulative", "Coverage")))
	b.WriteString("\n")

	for _, p := range a.daily[start:end] {
		line := fmt.Sprintf("  %6d  %14s  %14s  %16s",
			p.Day,
			cli.FormatAmount(p.Purchase),
			cli.FormatAmount(p.Cumulative),
			cli.FormatAmount(p.Coverage),
		)
		if p.Purchase > 0 {
			b.WriteString(purchaseStyle.Render(line))
		} else {
			b.WriteString(rowStyle.Render(line))
		}
		b.WriteString("\n")
	}

	b.WriteString(dimStyle.Render(fmt.Sprintf("  days %d-%d of %d  (j/k scroll, g/G jump)", start, end-1, len(a.daily))))

	return b.String()
}
