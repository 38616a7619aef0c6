package tui

import (
	"fmt"
	"strconv"
	"strings"

	"covsim/internal/config"
	"covsim/internal/model"
	"covsim/internal/tui/theme"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
)

// setupValues holds the raw first-run form inputs. Everything is a string
// so huh can bind directly; parsing happens once the form completes.
type setupValues struct {
	months    string
	premium   string
	cadence   string
	policy    string
	bootstrap string
	costPct   string
	theme     string
}

func setupValuesFrom(cfg model.Config) setupValues {
	return setupValues{
		months:    strconv.Itoa(cfg.Months),
		premium:   strconv.FormatFloat(cfg.Premium, 'f', -1, 64),
		cadence:   strconv.Itoa(cfg.CadenceDays),
		policy:    strconv.Itoa(cfg.PolicyDays),
		bootstrap: strconv.FormatFloat(cfg.Bootstrap, 'f', -1, 64),
		costPct:   strconv.FormatFloat(cfg.CostPct, 'f', -1, 64),
		theme:     theme.Active.Name,
	}
}

func validateInt(min, max int) func(string) error {
	return func(s string) error {
		v, err := strconv.Atoi(strings.TrimSpace(s))
		if err != nil {
			return fmt.Errorf("enter a whole number")
		}
		if v < min || v > max {
			return fmt.Errorf("must be between %d and %d", min, max)
		}
		return nil
	}
}

func validateFloat(min, max float64) func(string) error {
	return func(s string) error {
		v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
		if err != nil {
			return fmt.Errorf("enter a number")
		}
		if v < min || v > max {
			return fmt.Errorf("must be between %.0f and %.0f", min, max)
		}
		return nil
	}
}

func newSetupForm(vals *setupValues) *huh.Form {
	themeNames := make([]string, len(theme.All))
	for i, th := range theme.All {
		themeNames[i] = th.Name
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Horizon (months)").
				Description(fmt.Sprintf("%d-%d, each month counts as 30 days", model.MinMonths, model.MaxMonths)).
				Value(&vals.months).
				Validate(validateInt(model.MinMonths, model.MaxMonths)),
			huh.NewInput().
				Title("Premium per purchase").
				Description(fmt.Sprintf("%.0f-%.0f", model.MinPremium, model.MaxPremium)).
				Value(&vals.premium).
				Validate(validateFloat(model.MinPremium, model.MaxPremium)),
			huh.NewInput().
				Title("Purchase cadence (days)").
				Description(fmt.Sprintf("%d-%d", model.MinCadenceDays, model.MaxCadenceDays)).
				Value(&vals.cadence).
				Validate(validateInt(model.MinCadenceDays, model.MaxCadenceDays)),
			huh.NewInput().
				Title("Policy duration (days)").
				Description(fmt.Sprintf("%d-%d", model.MinPolicyDays, model.MaxPolicyDays)).
				Value(&vals.policy).
				Validate(validateInt(model.MinPolicyDays, model.MaxPolicyDays)),
			huh.NewInput().
				Title("Bootstrap premium").
				Description(fmt.Sprintf("%.0f-%.0f, one-off purchase on day 0", model.MinBootstrap, model.MaxBootstrap)).
				Value(&vals.bootstrap).
				Validate(validateFloat(model.MinBootstrap, model.MaxBootstrap)),
			huh.NewInput().
				Title("Cost percent").
				Description(fmt.Sprintf("%.0f-%.0f, premium as a percentage of coverage", model.MinCostPct, model.MaxCostPct)).
				Value(&vals.costPct).
				Validate(validateFloat(model.MinCostPct, model.MaxCostPct)),
		),
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Color theme").
				Options(huh.NewOptions(themeNames...)...).
				Value(&vals.theme),
		),
	)
}

func (a App) updateSetupForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	form, cmd := a.setupForm.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		a.setupForm = f
	}

	if a.setupForm.State == huh.StateCompleted {
		a.applySetup()
		a.needSetup = false
		a.setupForm = nil
		return a, nil
	}

	if a.setupForm.State == huh.StateAborted {
		a.needSetup = false
		a.setupForm = nil
		return a, nil
	}

	return a, cmd
}

// applySetup parses the completed form, saves the result as defaults,
// and recomputes the series. Values passed form validation, so parse
// errors only happen if a field was left untouched and invalid; Clamp
// covers that case.
func (a *App) applySetup() {
	cfg := a.cfg
	if v, err := strconv.Atoi(strings.TrimSpace(a.setupVals.months)); err == nil {
		cfg.Months = v
	}
	if v, err := strconv.ParseFloat(strings.TrimSpace(a.setupVals.premium), 64); err == nil {
		cfg.Premium = v
	}
	if v, err := strconv.Atoi(strings.TrimSpace(a.setupVals.cadence)); err == nil {
		cfg.CadenceDays = v
	}
	if v, err := strconv.Atoi(strings.TrimSpace(a.setupVals.policy)); err == nil {
		cfg.PolicyDays = v
	}
	if v, err := strconv.ParseFloat(strings.TrimSpace(a.setupVals.bootstrap), 64); err == nil {
		cfg.Bootstrap = v
	}
	if v, err := strconv.ParseFloat(strings.TrimSpace(a.setupVals.costPct), 64); err == nil {
		cfg.CostPct = v
	}

	a.cfg = cfg.Clamp()
	a.recompute()

	fileCfg := loadConfigOrDefault()
	fileCfg.SetSimConfig(a.cfg)
	if a.setupVals.theme != "" {
		fileCfg.Appearance.Theme = a.setupVals.theme
		theme.SetActive(a.setupVals.theme)
	}
	if err := config.Save(fileCfg); err != nil {
		a.statusMsg = fmt.Sprintf("Could not save config: %v", err)
	} else {
		a.statusMsg = "Defaults saved"
	}
}
