package tui

import (
	"fmt"
	"strings"

	"covsim/internal/cli"
	"covsim/internal/config"
	"covsim/internal/store"
	"covsim/internal/tui/theme"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// scenariosState tracks the saved-scenario tab. The list is loaded lazily
// on first visit and refreshed after every save or delete.
type scenariosState struct {
	items  []store.Scenario
	cursor int
	naming bool
	input  textinput.Model
	status string
	loaded bool
}

func (a *App) loadScenarios() {
	a.scen.loaded = true
	st, err := store.Open(config.ScenarioDBPath())
	if err != nil {
		a.scen.status = fmt.Sprintf("Store unavailable: %v", err)
		a.scen.items = nil
		return
	}
	defer st.Close()

	items, err := st.List()
	if err != nil {
		a.scen.status = fmt.Sprintf("List failed: %v", err)
		a.scen.items = nil
		return
	}

	a.scen.items = items
	if a.scen.cursor >= len(items) {
		a.scen.cursor = len(items) - 1
	}
	if a.scen.cursor < 0 {
		a.scen.cursor = 0
	}
}

func (a *App) updateScenarioKeys(key string) (bool, App) {
	switch key {
	case "j", "down":
		if a.scen.cursor < len(a.scen.items)-1 {
			a.scen.cursor++
		}
	case "k", "up":
		if a.scen.cursor > 0 {
			a.scen.cursor--
		}
	case "enter":
		if a.scen.cursor < len(a.scen.items) {
			sc := a.scen.items[a.scen.cursor]
			a.cfg = sc.Config().Clamp()
			a.recompute()
			a.scen.status = fmt.Sprintf("Loaded %q", sc.Name)
		}
	case "n":
		ti := textinput.New()
		ti.CharLimit = 40
		ti.Width = 24
		ti.Placeholder = "scenario name"
		ti.Focus()
		a.scen.input = ti
		a.scen.naming = true
		a.scen.status = ""
	case "x":
		if a.scen.cursor < len(a.scen.items) {
			a.deleteScenario(a.scen.items[a.scen.cursor].Name)
		}
	case "r":
		a.loadScenarios()
		a.scen.status = "Reloaded"
	default:
		return false, *a
	}
	return true, *a
}

func (a App) updateScenarioNaming(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		a.saveScenario(strings.TrimSpace(a.scen.input.Value()))
		a.scen.naming = false
		return a, nil
	case "esc":
		a.scen.naming = false
		return a, nil
	}

	var cmd tea.Cmd
	a.scen.input, cmd = a.scen.input.Update(msg)
	return a, cmd
}

func (a *App) saveScenario(name string) {
	if name == "" {
		a.scen.status = "Name cannot be empty"
		return
	}

	st, err := store.Open(config.ScenarioDBPath())
	if err != nil {
		a.scen.status = fmt.Sprintf("Store unavailable: %v", err)
		return
	}
	defer st.Close()

	if err := st.Save(name, a.cfg); err != nil {
		a.scen.status = fmt.Sprintf("Save failed: %v", err)
		return
	}

	a.loadScenarios()
	a.scen.status = fmt.Sprintf("Saved %q", name)
}

func (a *App) deleteScenario(name string) {
	st, err := store.Open(config.ScenarioDBPath())
	if err != nil {
		a.scen.status = fmt.Sprintf("Store unavailable: %v", err)
		return
	}
	defer st.Close()

	if err := st.Delete(name); err != nil {
		a.scen.status = fmt.Sprintf("Delete failed: %v", err)
		return
	}

	a.loadScenarios()
	a.scen.status = fmt.Sprintf("Deleted %q", name)
}

func (a App) renderScenariosTab(cw int) string {
	t := theme.Active
	var b strings.Builder

	dimStyle := lipgloss.NewStyle().Foreground(t.TextDim)
	mutedStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	rowStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)
	cursorStyle := lipgloss.NewStyle().Foreground(t.Accent).Bold(true)
	statusStyle := lipgloss.NewStyle().Foreground(t.Orange)

	if a.scen.naming {
		b.WriteString(mutedStyle.Render("  Save current parameters as: "))
		b.WriteString(a.scen.input.View())
		b.WriteString("\n\n")
		b.WriteString(dimStyle.Render("  enter save · esc cancel"))
		if a.scen.status != "" {
			b.WriteString("\n  ")
			b.WriteString(statusStyle.Render(a.scen.status))
		}
		return b.String()
	}

	if len(a.scen.items) == 0 {
		b.WriteString(dimStyle.Render("  No saved scenarios."))
		b.WriteString("\n\n")
		b.WriteString(dimStyle.Render("  n save current parameters · r reload"))
		if a.scen.status != "" {
			b.WriteString("\n  ")
			b.WriteString(statusStyle.Render(a.scen.status))
		}
		return b.String()
	}

	header := fmt.Sprintf("  %-24s %6s %12s %8s %8s %7s", "Name", "Months", "Premium", "Cadence", "Policy", "Cost%")
	b.WriteString(mutedStyle.Render(header))
	b.WriteString("\n")

	for i, sc := range a.scen.items {
		line := fmt.Sprintf("%-24s %6d %12s %8d %8d %6.1f%%",
			truncateName(sc.Name, 24), sc.Months, cli.FormatAmount(sc.Premium),
			sc.CadenceDays, sc.PolicyDays, sc.CostPct)
		if i == a.scen.cursor {
			b.WriteString(cursorStyle.Render("> " + line))
		} else {
			b.WriteString(rowStyle.Render("  " + line))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(dimStyle.Render("  j/k move · enter load · n new · x delete · r reload"))

	if a.scen.status != "" {
		b.WriteString("\n  ")
		b.WriteString(statusStyle.Render(a.scen.status))
	}

	return b.String()
}

func truncateName(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-1] + "…"
}
