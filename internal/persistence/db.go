// Package persistence provides the SQLite-backed, append-only store of run
// summaries.
package persistence

import (
	"fmt"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"

	"github.com/talgya/lifeform/internal/stats"
)

// DB wraps a SQLite connection holding the run-summary history.
type DB struct {
	conn *sqlx.DB
}

// Open opens or creates a SQLite database at the given path.
func Open(path string) (*DB, error) {
	conn, err := sqlx.Open("sqlite", path+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}

	db := &DB{conn: conn}
	if err := db.migrate(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	return db, nil
}

// Close closes the database connection.
func (db *DB) Close() error {
	return db.conn.Close()
}

func (db *DB) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS runs (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		world_name TEXT NOT NULL,
		run_id TEXT NOT NULL,
		epochs INTEGER NOT NULL,
		total_entities INTEGER NOT NULL,
		total_alive_at_conclusion INTEGER NOT NULL,
		total_struggling INTEGER NOT NULL,
		total_thriving INTEGER NOT NULL,
		total_deaths INTEGER NOT NULL,
		total_births INTEGER NOT NULL,
		total_disasters INTEGER NOT NULL,
		total_mutations INTEGER NOT NULL,
		max_entities INTEGER NOT NULL
	);`

	_, err := db.conn.Exec(schema)
	return err
}

// AppendRun appends one run summary. The store is append-only: summaries
// are never updated or deleted.
func (db *DB) AppendRun(s stats.Summary) error {
	_, err := db.conn.NamedExec(`
		INSERT INTO runs (
			world_name, run_id, epochs, total_entities,
			total_alive_at_conclusion, total_struggling, total_thriving,
			total_deaths, total_births, total_disasters, total_mutations,
			max_entities
		) VALUES (
			:world_name, :run_id, :epochs, :total_entities,
			:total_alive_at_conclusion, :total_struggling, :total_thriving,
			:total_deaths, :total_births, :total_disasters, :total_mutations,
			:max_entities
		)`, s)
	if err != nil {
		return fmt.Errorf("append run: %w", err)
	}
	return nil
}

// LastRuns returns the most recent n run summaries, newest first.
func (db *DB) LastRuns(n int) ([]stats.Summary, error) {
	var runs []stats.Summary
	err := db.conn.Select(&runs,
		`SELECT * FROM runs ORDER BY id DESC LIMIT ?`, n)
	if err != nil {
		return nil, fmt.Errorf("load runs: %w", err)
	}
	return runs, nil
}

// RunsForWorld returns every stored summary for one world, oldest first.
func (db *DB) RunsForWorld(worldName string) ([]stats.Summary, error) {
	var runs []stats.Summary
	err := db.conn.Select(&runs,
		`SELECT * FROM runs WHERE world_name = ? ORDER BY id ASC`, worldName)
	if err != nil {
		return nil, fmt.Errorf("load runs for world: %w", err)
	}
	return runs, nil
}
