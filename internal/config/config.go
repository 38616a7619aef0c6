// Package config loads and saves the covsim configuration file.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"covsim/internal/model"

	"github.com/BurntSushi/toml"
)

// Config holds all covsim configuration.
type Config struct {
	Simulation SimulationConfig `toml:"simulation"`
	Appearance AppearanceConfig `toml:"appearance"`
}

// SimulationConfig holds the default simulation parameters. These seed
// the CLI flags and the dashboard; flags override per invocation.
type SimulationConfig struct {
	Months      int     `toml:"months"`
	Premium     float64 `toml:"premium"`
	CadenceDays int     `toml:"cadence_days"`
	PolicyDays  int     `toml:"policy_days"`
	Bootstrap   float64 `toml:"bootstrap"`
	CostPct     float64 `toml:"cost_pct"`
}

// AppearanceConfig holds theme settings.
type AppearanceConfig struct {
	Theme string `toml:"theme"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	sim := model.DefaultConfig()
	return Config{
		Simulation: SimulationConfig{
			Months:      sim.Months,
			Premium:     sim.Premium,
			CadenceDays: sim.CadenceDays,
			PolicyDays:  sim.PolicyDays,
			Bootstrap:   sim.Bootstrap,
			CostPct:     sim.CostPct,
		},
		Appearance: AppearanceConfig{
			Theme: "flexoki-dark",
		},
	}
}

// SimConfig converts the stored defaults into a simulation config,
// clamped to the documented ranges in case the file was hand-edited.
func (c Config) SimConfig() model.Config {
	return model.Config{
		Months:      c.Simulation.Months,
		Premium:     c.Simulation.Premium,
		CadenceDays: c.Simulation.CadenceDays,
		PolicyDays:  c.Simulation.PolicyDays,
		Bootstrap:   c.Simulation.Bootstrap,
		CostPct:     c.Simulation.CostPct,
	}.Clamp()
}

// SetSimConfig stores a simulation config as the new defaults.
func (c *Config) SetSimConfig(sim model.Config) {
	c.Simulation = SimulationConfig{
		Months:      sim.Months,
		Premium:     sim.Premium,
		CadenceDays: sim.CadenceDays,
		PolicyDays:  sim.PolicyDays,
		Bootstrap:   sim.Bootstrap,
		CostPct:     sim.CostPct,
	}
}

// ConfigDir returns the XDG-compliant config directory.
func ConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "covsim")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "covsim")
}

// ConfigPath returns the full path to the config file.
func ConfigPath() string {
	return filepath.Join(ConfigDir(), "config.toml")
}

// DataDir returns the XDG-compliant data directory for the scenario store.
func DataDir() string {
	if xdg := os.Getenv("XDG_DATA_HOME"); xdg != "" {
		return filepath.Join(xdg, "covsim")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".local", "share", "covsim")
}

// ScenarioDBPath returns the full path to the scenario database.
func ScenarioDBPath() string {
	return filepath.Join(DataDir(), "scenarios.db")
}

// Load reads the config file, returning defaults if it doesn't exist.
func Load() (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(ConfigPath())
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config: %w", err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config: %w", err)
	}

	return cfg, nil
}

// Save writes the config to disk.
func Save(cfg Config) error {
	dir := ConfigDir()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}

	f, err := os.OpenFile(ConfigPath(), os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return fmt.Errorf("creating config file: %w", err)
	}
	defer f.Close()

	enc := toml.NewEncoder(f)
	return enc.Encode(cfg)
}

// Exists returns true if a config file exists on disk.
func Exists() bool {
	_, err := os.Stat(ConfigPath())
	return err == nil
}
