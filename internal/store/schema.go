package store

const schemaSQL = `
CREATE TABLE IF NOT EXISTS scenarios (
    name          TEXT PRIMARY KEY,
    months        INTEGER NOT NULL,
    premium       REAL NOT NULL,
    cadence_days  INTEGER NOT NULL,
    policy_days   INTEGER NOT NULL,
    bootstrap     REAL NOT NULL,
    cost_pct      REAL NOT NULL,
    created_at    TEXT NOT NULL,
    updated_at    TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_scenarios_updated ON scenarios(updated_at);
`
