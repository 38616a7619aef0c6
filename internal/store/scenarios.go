// Package store persists named parameter sets in a SQLite database.
package store

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"covsim/internal/model"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite" // register sqlite driver
)

// ErrNotFound is returned when a named scenario does not exist.
var ErrNotFound = errors.New("scenario not found")

// Scenario is a stored parameter set.
type Scenario struct {
	Name        string    `db:"name"`
	Months      int       `db:"months"`
	Premium     float64   `db:"premium"`
	CadenceDays int       `db:"cadence_days"`
	PolicyDays  int       `db:"policy_days"`
	Bootstrap   float64   `db:"bootstrap"`
	CostPct     float64   `db:"cost_pct"`
	CreatedAt   time.Time `db:"-"`
	UpdatedAt   time.Time `db:"-"`
}

// Config converts the scenario back into simulation parameters.
func (s Scenario) Config() model.Config {
	return model.Config{
		Months:      s.Months,
		Premium:     s.Premium,
		CadenceDays: s.CadenceDays,
		PolicyDays:  s.PolicyDays,
		Bootstrap:   s.Bootstrap,
		CostPct:     s.CostPct,
	}
}

// Store provides SQLite-backed scenario persistence.
type Store struct {
	db *sqlx.DB
}

// Open opens or creates the scenario database at the given path.
func Open(dbPath string) (*Store, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("creating data dir: %w", err)
	}

	db, err := sqlx.Open("sqlite", dbPath+"?_pragma=journal_mode(wal)&_pragma=synchronous(normal)")
	if err != nil {
		return nil, fmt.Errorf("opening scenario db: %w", err)
	}

	if _, err := db.Exec(schemaSQL); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	return &Store{db: db}, nil
}

// Close closes the database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Save upserts a scenario by name. The config must pass validation;
// stored scenarios are the one input path that does not clamp, so a
// scenario read back later is known-good.
func (s *Store) Save(name string, cfg model.Config) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errors.New("scenario name must not be empty")
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("scenario %q: %w", name, err)
	}

	now := time.Now().UTC().Format(time.RFC3339)
	_, err := s.db.Exec(`INSERT INTO scenarios
		(name, months, premium, cadence_days, policy_days, bootstrap, cost_pct, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(name) DO UPDATE SET
			months = excluded.months,
			premium = excluded.premium,
			cadence_days = excluded.cadence_days,
			policy_days = excluded.policy_days,
			bootstrap = excluded.bootstrap,
			cost_pct = excluded.cost_pct,
			updated_at = excluded.updated_at`,
		name, cfg.Months, cfg.Premium, cfg.CadenceDays, cfg.PolicyDays,
		cfg.Bootstrap, cfg.CostPct, now, now,
	)
	if err != nil {
		return fmt.Errorf("saving scenario %q: %w", name, err)
	}
	return nil
}

// Get returns the named scenario, or ErrNotFound.
func (s *Store) Get(name string) (Scenario, error) {
	var row scenarioRow
	err := s.db.Get(&row, `SELECT name, months, premium, cadence_days, policy_days,
		bootstrap, cost_pct, created_at, updated_at
		FROM scenarios WHERE name = ?`, name)
	if errors.Is(err, sql.ErrNoRows) {
		return Scenario{}, fmt.Errorf("%q: %w", name, ErrNotFound)
	}
	if err != nil {
		return Scenario{}, fmt.Errorf("loading scenario %q: %w", name, err)
	}
	return row.scenario(), nil
}

// List returns all scenarios, most recently updated first.
func (s *Store) List() ([]Scenario, error) {
	var rows []scenarioRow
	err := s.db.Select(&rows, `SELECT name, months, premium, cadence_days, policy_days,
		bootstrap, cost_pct, created_at, updated_at
		FROM scenarios ORDER BY updated_at DESC, name ASC`)
	if err != nil {
		return nil, fmt.Errorf("listing scenarios: %w", err)
	}

	scenarios := make([]Scenario, 0, len(rows))
	for _, r := range rows {
		scenarios = append(scenarios, r.scenario())
	}
	return scenarios, nil
}

// Delete removes the named scenario. Deleting a missing scenario
// returns ErrNotFound.
func (s *Store) Delete(name string) error {
	res, err := s.db.Exec("DELETE FROM scenarios WHERE name = ?", name)
	if err != nil {
		return fmt.Errorf("deleting scenario %q: %w", name, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("%q: %w", name, ErrNotFound)
	}
	return nil
}

// scenarioRow maps the raw table, with timestamps as RFC3339 text.
type scenarioRow struct {
	Name        string  `db:"name"`
	Months      int     `db:"months"`
	Premium     float64 `db:"premium"`
	CadenceDays int     `db:"cadence_days"`
	PolicyDays  int     `db:"policy_days"`
	Bootstrap   float64 `db:"bootstrap"`
	CostPct     float64 `db:"cost_pct"`
	CreatedAt   string  `db:"created_at"`
	UpdatedAt   string  `db:"updated_at"`
}

func (r scenarioRow) scenario() Scenario {
	created, _ := time.Parse(time.RFC3339, r.CreatedAt)
	updated, _ := time.Parse(time.RFC3339, r.UpdatedAt)
	return Scenario{
		Name:        r.Name,
		Months:      r.Months,
		Premium:     r.Premium,
		CadenceDays: r.CadenceDays,
		PolicyDays:  r.PolicyDays,
		Bootstrap:   r.Bootstrap,
		CostPct:     r.CostPct,
		CreatedAt:   created,
		UpdatedAt:   updated,
	}
}
