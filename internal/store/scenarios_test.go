package store

import (
	"errors"
	"path/filepath"
	"testing"

	"covsim/internal/model"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "scenarios.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestSaveGetRoundTrip(t *testing.T) {
	s := openTestStore(t)

	cfg := model.Config{
		Months:      24,
		Premium:     75_000,
		CadenceDays: 14,
		PolicyDays:  120,
		Bootstrap:   10_000,
		CostPct:     6.5,
	}
	if err := s.Save("aggressive", cfg); err != nil {
		t.Fatalf("Save: %v", err)
	}

	got, err := s.Get("aggressive")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.Config() != cfg {
		t.Fatalf("round trip mismatch: got %+v, want %+v", got.Config(), cfg)
	}
	if got.CreatedAt.IsZero() || got.UpdatedAt.IsZero() {
		t.Fatalf("timestamps not set: %+v", got)
	}
}

func TestSaveUpsert(t *testing.T) {
	s := openTestStore(t)

	cfg := model.DefaultConfig()
	if err := s.Save("base", cfg); err != nil {
		t.Fatalf("first Save: %v", err)
	}

	cfg.Premium = 120_000
	if err := s.Save("base", cfg); err != nil {
		t.Fatalf("second Save: %v", err)
	}

	got, err := s.Get("base")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.Premium != 120_000 {
		t.Fatalf("Premium = %g after upsert, want 120000", got.Premium)
	}

	list, err := s.List()
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(list) != 1 {
		t.Fatalf("List returned %d scenarios after upsert, want 1", len(list))
	}
}

func TestSaveRejectsInvalid(t *testing.T) {
	s := openTestStore(t)

	cfg := model.DefaultConfig()
	cfg.CostPct = 99
	if err := s.Save("broken", cfg); err == nil {
		t.Fatal("Save accepted out-of-range config")
	}

	var ice *model.InvalidConfigError
	if err := s.Save("broken", cfg); !errors.As(err, &ice) {
		t.Fatalf("error does not wrap InvalidConfigError: %v", err)
	}

	if err := s.Save("  ", model.DefaultConfig()); err == nil {
		t.Fatal("Save accepted blank name")
	}
}

func TestListAndDelete(t *testing.T) {
	s := openTestStore(t)

	for _, name := range []string{"a", "b", "c"} {
		if err := s.Save(name, model.DefaultConfig()); err != nil {
			t.Fatalf("Save %q: %v", name, err)
		}
	}

	list, err := s.List()
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(list) != 3 {
		t.Fatalf("List returned %d scenarios, want 3", len(list))
	}

	if err := s.Delete("b"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := s.Get("b"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("Get after delete: %v, want ErrNotFound", err)
	}

	if err := s.Delete("missing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("Delete missing: %v, want ErrNotFound", err)
	}
}

func TestGetMissing(t *testing.T) {
	s := openTestStore(t)
	if _, err := s.Get("nope"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("Get missing: %v, want ErrNotFound", err)
	}
}
