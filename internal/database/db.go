package database

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"
)

// DB wraps sql.DB with additional methods
type DB struct {
	*sql.DB
}

// New creates a new database connection
func New(path string) (*DB, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("database open failed: %w", err)
	}

	// Enable WAL mode for better concurrent access
	db.Exec("PRAGMA journal_mode=WAL")
	db.Exec("PRAGMA synchronous=NORMAL")

	return &DB{db}, nil
}

// InitSchema creates all necessary tables
func (db *DB) InitSchema() error {
	schema := `
    CREATE TABLE IF NOT EXISTS scans (
        id INTEGER PRIMARY KEY AUTOINCREMENT,
        started_at DATETIME NOT NULL,
        platform TEXT NOT NULL,
        network_count INTEGER NOT NULL,
        created_at DATETIME DEFAULT CURRENT_TIMESTAMP
    );

    CREATE TABLE IF NOT EXISTS observations (
        id INTEGER PRIMARY KEY AUTOINCREMENT,
        scan_id INTEGER NOT NULL REFERENCES scans(id),
        ssid TEXT NOT NULL,
        bssid TEXT,
        signal_dbm INTEGER NOT NULL,
        signal_percent INTEGER,
        freq_mhz INTEGER,
        channel INTEGER,
        band TEXT,
        mode TEXT,
        rate TEXT,
        security TEXT,
        connected BOOLEAN NOT NULL,
        seen_at DATETIME NOT NULL
    );

    CREATE INDEX IF NOT EXISTS idx_observations_seen ON observations(seen_at);
    CREATE INDEX IF NOT EXISTS idx_observations_ssid_seen ON observations(ssid, seen_at);

    CREATE TABLE IF NOT EXISTS monitor_samples (
        id INTEGER PRIMARY KEY AUTOINCREMENT,
        taken_at DATETIME NOT NULL,
        ssid TEXT NOT NULL,
        found BOOLEAN NOT NULL,
        signal_dbm INTEGER,
        freq_mhz INTEGER,
        channel INTEGER,
        band TEXT,
        gateway_rtt_ms REAL
    );

    CREATE INDEX IF NOT EXISTS idx_samples_ssid_taken ON monitor_samples(ssid, taken_at);
    `

	if _, err := db.Exec(schema); err != nil {
		return fmt.Errorf("schema creation failed: %w", err)
	}

	return nil
}
