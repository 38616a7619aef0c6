// Package tui provides the interactive Bubble Tea dashboard for covsim.
package tui

import (
	"fmt"
	"strings"

	"covsim/internal/cli"
	"covsim/internal/config"
	"covsim/internal/model"
	"covsim/internal/sim"
	"covsim/internal/tui/components"
	"covsim/internal/tui/theme"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

const (
	tabOverview = iota
	tabDaily
	tabMonthly
	tabParams
	tabScenarios
)

const (
	minTerminalWidth = 70
	maxContentWidth  = 160

	// Approximate header + tab bar + status bar height, used to size
	// scrollable content areas.
	chromeHeight = 6
)

// App is the root Bubble Tea model.
type App struct {
	// Simulation state. Everything below cfg is recomputed from scratch
	// whenever cfg changes.
	cfg    model.Config
	daily  []model.DailyPoint
	months []model.MonthlyPoint
	stats  model.SummaryStats

	// UI state
	width     int
	height    int
	activeTab int
	showHelp  bool
	statusMsg string

	// Per-tab state
	dailyScroll int
	params      paramsState
	scen        scenariosState

	// First-run setup (huh form)
	setupForm *huh.Form
	setupVals setupValues
	needSetup bool
}

// NewApp creates the dashboard model seeded with cfg.
func NewApp(cfg model.Config) App {
	a := App{
		cfg:       cfg.Clamp(),
		needSetup: !config.Exists(),
		params:    newParamsState(),
	}
	a.recompute()

	if a.needSetup {
		a.setupVals = setupValuesFrom(a.cfg)
		a.setupForm = newSetupForm(&a.setupVals)
	}

	return a
}

// Init implements tea.Model.
func (a App) Init() tea.Cmd {
	if a.setupForm != nil {
		return a.setupForm.Init()
	}
	return nil
}

// recompute rebuilds the whole dataset from the current config. The
// simulation is linear in the day count (at most 1801 points), so a full
// recompute on every parameter change is cheap.
func (a *App) recompute() {
	a.daily = sim.Simulate(a.cfg)
	a.months = sim.AggregateMonths(a.cfg, a.daily)
	a.stats = sim.Summarize(a.cfg, a.daily)

	if a.dailyScroll > len(a.daily)-1 {
		a.dailyScroll = len(a.daily) - 1
	}
	if a.dailyScroll < 0 {
		a.dailyScroll = 0
	}
}

// Update implements tea.Model.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		if a.setupForm != nil {
			a.setupForm = a.setupForm.WithWidth(msg.Width).WithHeight(msg.Height)
		}
		return a, nil

	case tea.KeyMsg:
		key := msg.String()

		// Global: quit
		if key == "ctrl+c" {
			return a, tea.Quit
		}

		// First-run setup form intercepts all keys
		if a.needSetup && a.setupForm != nil {
			return a.updateSetupForm(msg)
		}

		// Text inputs intercept all keys when active
		if a.activeTab == tabParams && a.params.editing {
			return a.updateParamsInput(msg)
		}
		if a.activeTab == tabScenarios && a.scen.naming {
			return a.updateScenarioNaming(msg)
		}

		// Help toggle / dismiss
		if key == "?" {
			a.showHelp = !a.showHelp
			return a, nil
		}
		if a.showHelp {
			a.showHelp = false
			return a, nil
		}

		// Tab-local keybindings first; they may shadow tab shortcuts.
		switch a.activeTab {
		case tabDaily:
			if handled, next := a.updateDailyKeys(key); handled {
				return next, nil
			}
		case tabParams:
			if handled, next := a.updateParamsKeys(key); handled {
				return next, nil
			}
		case tabScenarios:
			if handled, next := a.updateScenarioKeys(key); handled {
				return next, nil
			}
		}

		if key == "q" {
			return a, tea.Quit
		}

		// Tab navigation
		switch key {
		case "left":
			a.activeTab = (a.activeTab - 1 + len(components.Tabs)) % len(components.Tabs)
		case "right":
			a.activeTab = (a.activeTab + 1) % len(components.Tabs)
		default:
			if len(key) == 1 {
				if idx := components.TabIdxByKey(rune(key[0])); idx >= 0 {
					a.switchTab(idx)
				}
			}
		}
		return a, nil
	}

	// Forward unhandled messages to the setup form (cursor blinks, etc.)
	if a.needSetup && a.setupForm != nil {
		return a.updateSetupForm(msg)
	}

	return a, nil
}

func (a *App) switchTab(idx int) {
	a.activeTab = idx
	a.statusMsg = ""
	if idx == tabScenarios && !a.scen.loaded {
		a.loadScenarios()
	}
}

func (a App) contentWidth() int {
	cw := a.width
	if cw > maxContentWidth {
		cw = maxContentWidth
	}
	return cw
}

// contentHeight is the number of rows available to tab content.
func (a App) contentHeight() int {
	h := a.height - chromeHeight
	if h < 5 {
		h = 5
	}
	return h
}

// View implements tea.Model.
func (a App) View() string {
	if a.width == 0 {
		return ""
	}

	if a.width < minTerminalWidth {
		return fmt.Sprintf(
			"\n  Terminal too narrow (%d cols)\n\n  covsim needs at least %d columns.\n",
			a.width, minTerminalWidth,
		)
	}

	if a.needSetup && a.setupForm != nil {
		return a.setupForm.View()
	}

	if a.showHelp {
		return a.viewHelp()
	}

	return a.viewMain()
}

func (a App) viewMain() string {
	t := theme.Active
	var b strings.Builder

	titleStyle := lipgloss.NewStyle().Foreground(t.AccentBright).Bold(true)
	paramStyle := lipgloss.NewStyle().Foreground(t.TextMuted)

	b.WriteString(" ")
	b.WriteString(titleStyle.Render("◈ covsim"))
	b.WriteString(paramStyle.Render(fmt.Sprintf(
		"  %dmo · premium %s every %dd · policy %dd · cost %s",
		a.cfg.Months,
		cli.FormatCompact(a.cfg.Premium),
		a.cfg.CadenceDays,
		a.cfg.PolicyDays,
		cli.FormatPercent(a.cfg.CostPct),
	)))
	b.WriteString("\n")
	b.WriteString(components.RenderTabBar(a.activeTab))
	b.WriteString("\n\n")

	switch a.activeTab {
	case tabOverview:
		b.WriteString(a.renderOverviewTab(a.contentWidth()))
	case tabDaily:
		b.WriteString(a.renderDailyTab(a.contentWidth()))
	case tabMonthly:
		b.WriteString(a.renderMonthlyTab(a.contentWidth()))
	case tabParams:
		b.WriteString(a.renderParamsTab(a.contentWidth()))
	case tabScenarios:
		b.WriteString(a.renderScenariosTab(a.contentWidth()))
	}

	b.WriteString("\n")
	b.WriteString(components.RenderStatusBar(a.width, a.statusMsg))

	return b.String()
}

func (a App) viewHelp() string {
	t := theme.Active

	keyStyle := lipgloss.NewStyle().Foreground(t.Accent).Bold(true)
	descStyle := lipgloss.NewStyle().Foreground(t.TextMuted)

	row := func(key, desc string) string {
		return fmt.Sprintf("  %s  %s\n", keyStyle.Render(fmt.Sprintf("%-11s", key)), descStyle.Render(desc))
	}

	var b strings.Builder
	b.WriteString("\n  Keyboard\n\n")
	b.WriteString(row("o d m p s", "switch tab"))
	b.WriteString(row("left/right", "cycle tabs"))
	b.WriteString(row("j/k", "move / scroll"))
	b.WriteString(row("g/G", "jump to start / end"))
	b.WriteString(row("ctrl+d/u", "half-page scroll (daily tab)"))
	b.WriteString(row("enter", "edit parameter / load scenario"))
	b.WriteString(row("w", "save parameters as defaults (parameters tab)"))
	b.WriteString(row("n", "save current parameters as scenario (scenarios tab)"))
	b.WriteString(row("x", "delete scenario (scenarios tab)"))
	b.WriteString(row("r", "reload scenario list (scenarios tab)"))
	b.WriteString(row("?", "toggle help"))
	b.WriteString(row("q", "quit"))
	b.WriteString("\n  Press any key to close.\n")
	return b.String()
}
