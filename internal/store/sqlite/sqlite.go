// Package sqlite implements the store interfaces using SQLite as the backend.
//
// WHY SQLITE FOR A CLIENT?
// The browser version of this app keeps its session and registration cache in
// localStorage. A terminal client needs the same durable, zero-infrastructure
// local state, and an embedded database is the Go-native answer: one file on
// disk, no server to run, ":memory:" for tests.
//
// WHY modernc.org/sqlite INSTEAD OF github.com/mattn/go-sqlite3?
// mattn/go-sqlite3 uses CGo, which needs a C compiler and makes
// cross-compilation painful. modernc.org/sqlite is a pure Go translation of
// SQLite — works everywhere Go works, which matters for a client binary that
// users build themselves.
package sqlite

import (
	"database/sql"
	"fmt"

	// Side-effect import: registers the "sqlite" driver with database/sql.
	_ "modernc.org/sqlite"
)

// DB wraps a sql.DB connection pool and provides the store methods.
type DB struct {
	conn *sql.DB
}

// New opens (or creates) the local database at dbPath and runs migrations.
// Use ":memory:" for an in-memory database that lives until Close.
func New(dbPath string) (*DB, error) {
	conn, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("sqlite: opening database: %w", err)
	}

	// Ping forces a real connection so a bad path or permissions problem
	// surfaces here instead of on the first query.
	if err := conn.Ping(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("sqlite: pinging database: %w", err)
	}

	// WAL keeps reads from blocking behind the synchronous writes that
	// RecordRegistration does for durability.
	if _, err := conn.Exec("PRAGMA journal_mode=WAL"); err != nil {
		conn.Close()
		return nil, fmt.Errorf("sqlite: setting WAL mode: %w", err)
	}

	if _, err := conn.Exec("PRAGMA foreign_keys=ON"); err != nil {
		conn.Close()
		return nil, fmt.Errorf("sqlite: enabling foreign keys: %w", err)
	}

	db := &DB{conn: conn}

	if err := db.migrate(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("sqlite: running migrations: %w", err)
	}

	return db, nil
}

// Close closes the database connection pool.
func (db *DB) Close() error {
	return db.conn.Close()
}

// migrate creates the local tables. CREATE TABLE IF NOT EXISTS keeps this
// safe to run on every start.
func (db *DB) migrate() error {
	// The session table is a single-row table: the fixed id=1 plays the role
	// of localStorage's fixed session key, and the UPSERT in Establish keeps
	// it that way.
	_, err := db.conn.Exec(`
		CREATE TABLE IF NOT EXISTS session (
			id           INTEGER PRIMARY KEY CHECK (id = 1),
			email        TEXT NOT NULL,
			display_name TEXT NOT NULL,
			updated_at   DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
		);
	`)
	if err != nil {
		return fmt.Errorf("creating session table: %w", err)
	}

	// One row per (user, event) registration. The composite primary key is
	// what makes RecordRegistration's INSERT OR IGNORE idempotent.
	_, err = db.conn.Exec(`
		CREATE TABLE IF NOT EXISTS registrations (
			email      TEXT NOT NULL,
			event_id   TEXT NOT NULL,
			created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
			PRIMARY KEY (email, event_id)
		);
		CREATE INDEX IF NOT EXISTS idx_registrations_email ON registrations(email);
	`)
	if err != nil {
		return fmt.Errorf("creating registrations table: %w", err)
	}

	return nil
}
