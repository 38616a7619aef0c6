package config

import (
	"os"
	"path/filepath"
	"testing"
)

// withTempConfigHome points XDG_CONFIG_HOME at a temp dir for the test.
func withTempConfigHome(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	return dir
}

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	withTempConfigHome(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Simulation.Months != 12 || cfg.Simulation.Premium != 50_000 {
		t.Fatalf("unexpected defaults: %+v", cfg.Simulation)
	}
	if cfg.Appearance.Theme != "flexoki-dark" {
		t.Fatalf("default theme = %q", cfg.Appearance.Theme)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	withTempConfigHome(t)

	cfg := DefaultConfig()
	cfg.Simulation.Premium = 75_000
	cfg.Simulation.CadenceDays = 14
	cfg.Appearance.Theme = "terminal"

	if err := Save(cfg); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if !Exists() {
		t.Fatal("Exists() = false after Save")
	}

	loaded, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if loaded.Simulation.Premium != 75_000 {
		t.Fatalf("Premium = %g, want 75000", loaded.Simulation.Premium)
	}
	if loaded.Simulation.CadenceDays != 14 {
		t.Fatalf("CadenceDays = %d, want 14", loaded.Simulation.CadenceDays)
	}
	if loaded.Appearance.Theme != "terminal" {
		t.Fatalf("Theme = %q, want terminal", loaded.Appearance.Theme)
	}
}

func TestLoadMalformedFile(t *testing.T) {
	dir := withTempConfigHome(t)

	path := filepath.Join(dir, "covsim", "config.toml")
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte("not = [valid"), 0o600); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(); err == nil {
		t.Fatal("Load accepted malformed TOML")
	}
}

func TestSimConfigClampsHandEditedValues(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Simulation.Months = 500
	cfg.Simulation.CostPct = 0

	sim := cfg.SimConfig()
	if err := sim.Validate(); err != nil {
		t.Fatalf("SimConfig returned invalid config: %v", err)
	}
	if sim.Months != 60 {
		t.Fatalf("Months = %d, want clamped 60", sim.Months)
	}
	if sim.CostPct != 1 {
		t.Fatalf("CostPct = %g, want clamped 1", sim.CostPct)
	}
}
