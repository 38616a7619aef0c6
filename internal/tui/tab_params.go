package tui

import (
	"fmt"
	"strconv"
	"strings"

	"covsim/internal/cli"
	"covsim/internal/config"
	"covsim/internal/model"
	"covsim/internal/tui/theme"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const (
	paramMonths = iota
	paramPremium
	paramCadence
	paramPolicy
	paramBootstrap
	paramCostPct
	paramCount // sentinel
)

// paramsState tracks the parameters tab state.
type paramsState struct {
	cursor  int
	editing bool
	input   textinput.Model
	status  string
}

func newParamsState() paramsState {
	return paramsState{}
}

func newParamInput() textinput.Model {
	ti := textinput.New()
	ti.CharLimit = 12
	ti.Width = 14
	return ti
}

// paramLabel and paramValue describe one row of the parameter list.
func paramLabel(idx int) string {
	switch idx {
	case paramMonths:
		return fmt.Sprintf("Months (%d-%d)", model.MinMonths, model.MaxMonths)
	case paramPremium:
		return fmt.Sprintf("Premium (%.0f-%.0f)", model.MinPremium, model.MaxPremium)
	case paramCadence:
		return fmt.Sprintf("Cadence days (%d-%d)", model.MinCadenceDays, model.MaxCadenceDays)
	case paramPolicy:
		return fmt.Sprintf("Policy days (%d-%d)", model.MinPolicyDays, model.MaxPolicyDays)
	case paramBootstrap:
		return fmt.Sprintf("Bootstrap (%.0f-%.0f)", model.MinBootstrap, model.MaxBootstrap)
	case paramCostPct:
		return fmt.Sprintf("Cost percent (%.0f-%.0f)", model.MinCostPct, model.MaxCostPct)
	}
	return ""
}

func (a App) paramValue(idx int) string {
	switch idx {
	case paramMonths:
		return strconv.Itoa(a.cfg.Months)
	case paramPremium:
		return cli.FormatAmount(a.cfg.Premium)
	case paramCadence:
		return strconv.Itoa(a.cfg.CadenceDays)
	case paramPolicy:
		return strconv.Itoa(a.cfg.PolicyDays)
	case paramBootstrap:
		return cli.FormatAmount(a.cfg.Bootstrap)
	case paramCostPct:
		return fmt.Sprintf("%.1f", a.cfg.CostPct)
	}
	return ""
}

// rawParamValue returns the editable (unformatted) value for idx.
func (a App) rawParamValue(idx int) string {
	switch idx {
	case paramMonths:
		return strconv.Itoa(a.cfg.Months)
	case paramPremium:
		return strconv.FormatFloat(a.cfg.Premium, 'f', -1, 64)
	case paramCadence:
		return strconv.Itoa(a.cfg.CadenceDays)
	case paramPolicy:
		return strconv.Itoa(a.cfg.PolicyDays)
	case paramBootstrap:
		return strconv.FormatFloat(a.cfg.Bootstrap, 'f', -1, 64)
	case paramCostPct:
		return strconv.FormatFloat(a.cfg.CostPct, 'f', -1, 64)
	}
	return ""
}

func (a *App) updateParamsKeys(key string) (bool, App) {
	switch key {
	case "j", "down":
		if a.params.cursor < paramCount-1 {
			a.params.cursor++
		}
	case "k", "up":
		if a.params.cursor > 0 {
			a.params.cursor--
		}
	case "enter":
		ti := newParamInput()
		ti.SetValue(a.rawParamValue(a.params.cursor))
		ti.Focus()
		a.params.input = ti
		a.params.editing = true
		a.params.status = ""
	case "w":
		cfg := loadConfigOrDefault()
		cfg.SetSimConfig(a.cfg)
		if err := config.Save(cfg); err != nil {
			a.params.status = fmt.Sprintf("Save failed: %v", err)
		} else {
			a.params.status = "Saved as defaults"
		}
	default:
		return false, *a
	}
	return true, *a
}

func (a App) updateParamsInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		a.applyParamEdit()
		a.params.editing = false
		return a, nil
	case "esc":
		a.params.editing = false
		return a, nil
	}

	var cmd tea.Cmd
	a.params.input, cmd = a.params.input.Update(msg)
	return a, cmd
}

// applyParamEdit parses the edited value, clamps the resulting config
// to the documented ranges, and recomputes the whole series.
func (a *App) applyParamEdit() {
	raw := strings.TrimSpace(a.params.input.Value())
	if raw == "" {
		return
	}

	cfg := a.cfg
	switch a.params.cursor {
	case paramMonths, paramCadence, paramPolicy:
		v, err := strconv.Atoi(raw)
		if err != nil {
			a.params.status = fmt.Sprintf("Not a whole number: %q", raw)
			return
		}
		switch a.params.cursor {
		case paramMonths:
			cfg.Months = v
		case paramCadence:
			cfg.CadenceDays = v
		case paramPolicy:
			cfg.PolicyDays = v
		}
	default:
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			a.params.status = fmt.Sprintf("Not a number: %q", raw)
			return
		}
		switch a.params.cursor {
		case paramPremium:
			cfg.Premium = v
		case paramBootstrap:
			cfg.Bootstrap = v
		case paramCostPct:
			cfg.CostPct = v
		}
	}

	clamped := cfg.Clamp()
	if clamped != cfg {
		a.params.status = "Value clamped to range"
	} else {
		a.params.status = ""
	}

	a.cfg = clamped
	a.recompute()
}

func (a App) renderParamsTab(cw int) string {
	t := theme.Active
	var b strings.Builder

	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	valueStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Bold(true)
	cursorStyle := lipgloss.NewStyle().Foreground(t.Accent).Bold(true)
	dimStyle := lipgloss.NewStyle().Foreground(t.TextDim)
	statusStyle := lipgloss.NewStyle().Foreground(t.Orange)

	b.WriteString(dimStyle.Render("  Any change recomputes the full series."))
	b.WriteString("\n\n")

	for i := 0; i < paramCount; i++ {
		marker := "  "
		label := labelStyle.Render(fmt.Sprintf("%-28s", paramLabel(i)))
		if i == a.params.cursor {
			marker = cursorStyle.Render("> ")
			label = cursorStyle.Render(fmt.Sprintf("%-28s", paramLabel(i)))
		}

		b.WriteString("  ")
		b.WriteString(marker)
		b.WriteString(label)

		if a.params.editing && i == a.params.cursor {
			b.WriteString(a.params.input.View())
		} else {
			b.WriteString(valueStyle.Render(a.paramValue(i)))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	if a.params.editing {
		b.WriteString(dimStyle.Render("  enter apply · esc cancel"))
	} else {
		b.WriteString(dimStyle.Render("  j/k move · enter edit · w save as defaults"))
	}

	if a.params.status != "" {
		b.WriteString("\n  ")
		b.WriteString(statusStyle.Render(a.params.status))
	}

	return b.String()
}

// loadConfigOrDefault loads the config file, returning defaults on error
// so the dashboard never fails on a corrupt file.
func loadConfigOrDefault() config.Config {
	cfg, err := config.Load()
	if err != nil {
		return config.DefaultConfig()
	}
	return cfg
}
