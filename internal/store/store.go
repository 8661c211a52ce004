// Package store persists run summaries in SQLite so runs can be listed and
// re-scored after the fact.
package store

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	_ "modernc.org/sqlite"

	"github.com/danielpatrickdp/thermobench/go-engine/internal/score"
)

// #region schema
const schema = `
CREATE TABLE IF NOT EXISTS runs (
	run_id        TEXT PRIMARY KEY,
	fluid         TEXT NOT NULL,
	surrogate     TEXT NOT NULL,
	grid_spec     TEXT NOT NULL,
	core_ratio    REAL,
	plus_ratio    REAL,
	composite     REAL,
	summary_json  TEXT NOT NULL,
	created_at    TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS check_results (
	id            INTEGER PRIMARY KEY AUTOINCREMENT,
	run_id        TEXT NOT NULL,
	check_id      TEXT NOT NULL,
	supported     INTEGER NOT NULL,
	passed        INTEGER,
	severity      TEXT NOT NULL,
	metric        REAL,
	near_spinodal INTEGER NOT NULL,
	note          TEXT,
	FOREIGN KEY (run_id) REFERENCES runs(run_id)
);
`

// #endregion schema

// #region store-struct
// Store manages run history in SQLite.
type Store struct {
	db *sql.DB
}

// RunHead is the listing view of a stored run.
type RunHead struct {
	RunID     string
	Fluid     string
	Surrogate string
	GridSpec  string
	Composite *float64
	CreatedAt time.Time
}

// #endregion store-struct

// #region constructor
// NewStore opens a SQLite database and runs migrations.
func NewStore(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		return nil, fmt.Errorf("pragma: %w", err)
	}
	if _, err := db.Exec("PRAGMA foreign_keys=ON"); err != nil {
		return nil, fmt.Errorf("pragma fk: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return &Store{db: db}, nil
}

// NewStoreWithDB wraps an already-open database. The caller keeps ownership
// of the connection.
func NewStoreWithDB(db *sql.DB) *Store {
	return &Store{db: db}
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// DB returns the underlying *sql.DB for ad-hoc queries.
func (s *Store) DB() *sql.DB {
	return s.db
}

// #endregion constructor

// #region save-run
// SaveRun inserts a summary and its per-check rows atomically. The JSON blob
// is authoritative; the columns exist for listing and SQL-side filtering.
func (s *Store) SaveRun(sum score.Summary) error {
	raw, err := json.Marshal(sum)
	if err != nil {
		return fmt.Errorf("marshal summary: %w", err)
	}

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.Exec(
		`INSERT INTO runs (run_id, fluid, surrogate, grid_spec, core_ratio, plus_ratio, composite, summary_json, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		sum.RunID, sum.Fluid, sum.Surrogate, sum.GridSpec,
		nullFloat(sum.CoreRatio), nullFloat(sum.PlusRatio), nullFloat(sum.Composite),
		string(raw), sum.CreatedAt.Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("insert run: %w", err)
	}

	for _, res := range sum.Checks {
		var passedPtr interface{}
		if res.Passed != nil {
			passedPtr = boolInt(*res.Passed)
		}
		_, err = tx.Exec(
			`INSERT INTO check_results (run_id, check_id, supported, passed, severity, metric, near_spinodal, note)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
			sum.RunID, string(res.ID), boolInt(res.Supported), passedPtr,
			string(res.Severity), nullFloat(res.Metric), boolInt(res.NearSpinodal), res.Note,
		)
		if err != nil {
			return fmt.Errorf("insert check %s: %w", res.ID, err)
		}
	}

	return tx.Commit()
}

// #endregion save-run

// #region get-run
// GetRun retrieves a stored summary by run ID.
func (s *Store) GetRun(runID string) (score.Summary, error) {
	var raw string
	err := s.db.QueryRow(
		`SELECT summary_json FROM runs WHERE run_id = ?`, runID,
	).Scan(&raw)
	if err != nil {
		return score.Summary{}, fmt.Errorf("get run %s: %w", runID, err)
	}

	var sum score.Summary
	if err := json.Unmarshal([]byte(raw), &sum); err != nil {
		return score.Summary{}, fmt.Errorf("unmarshal summary: %w", err)
	}
	return sum, nil
}

// LastRun retrieves the most recently stored summary.
func (s *Store) LastRun() (score.Summary, error) {
	var runID string
	err := s.db.QueryRow(
		`SELECT run_id FROM runs ORDER BY created_at DESC LIMIT 1`,
	).Scan(&runID)
	if err != nil {
		return score.Summary{}, fmt.Errorf("last run: %w", err)
	}
	return s.GetRun(runID)
}

// #endregion get-run

// #region list-runs
// ListRuns returns the most recent runs, newest first.
func (s *Store) ListRuns(limit int) ([]RunHead, error) {
	rows, err := s.db.Query(
		`SELECT run_id, fluid, surrogate, grid_spec, composite, created_at
		 FROM runs ORDER BY created_at DESC LIMIT ?`, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("list runs: %w", err)
	}
	defer rows.Close()

	var heads []RunHead
	for rows.Next() {
		var h RunHead
		var composite sql.NullFloat64
		var createdStr string

		if err := rows.Scan(&h.RunID, &h.Fluid, &h.Surrogate, &h.GridSpec, &composite, &createdStr); err != nil {
			return nil, fmt.Errorf("scan row: %w", err)
		}
		if composite.Valid {
			c := composite.Float64
			h.Composite = &c
		}
		h.CreatedAt, _ = time.Parse(time.RFC3339Nano, createdStr)
		heads = append(heads, h)
	}
	return heads, rows.Err()
}

// #endregion list-runs

// #region sql-helpers
func nullFloat(v *float64) interface{} {
	if v == nil {
		return nil
	}
	return *v
}

func boolInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

// #endregion sql-helpers
