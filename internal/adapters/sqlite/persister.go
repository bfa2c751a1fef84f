// Package sqlite persists the vault snapshot in a single-file SQLite
// database: one JSON blob in the snapshots table under a fixed key.
package sqlite

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"promptvault/internal/domain"
	"promptvault/internal/ports"

	_ "modernc.org/sqlite"
)

const (
	schemaVersion = "1"

	// snapshotKey is the fixed well-known key the full dataset lives under.
	snapshotKey = "vault"
)

// Persister implements ports.Persister on a SQLite file.
type Persister struct {
	db     *sql.DB
	dbPath string
	log    *slog.Logger
}

var _ ports.Persister = (*Persister)(nil)

// Open creates or opens the database at dbPath and ensures the schema.
func Open(dbPath string, log *slog.Logger) (*Persister, error) {
	// Expand ~ in path
	if len(dbPath) > 0 && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("failed to get home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath+"?_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	_, err = db.Exec(`
		PRAGMA synchronous = NORMAL;
		PRAGMA busy_timeout = 5000;

		CREATE TABLE IF NOT EXISTS snapshots (
			key TEXT PRIMARY KEY,
			payload TEXT NOT NULL,
			updated_at INTEGER NOT NULL
		);
		CREATE TABLE IF NOT EXISTS meta (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL
		);
		INSERT OR REPLACE INTO meta (key, value) VALUES ('schema_version', '` + schemaVersion + `');
	`)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to setup database: %w", err)
	}

	return &Persister{db: db, dbPath: dbPath, log: log}, nil
}

// Save overwrites the stored snapshot in one upsert.
func (p *Persister) Save(data domain.VaultData) error {
	payload, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("failed to encode snapshot: %w", err)
	}

	_, err = p.db.Exec(`
		INSERT INTO snapshots (key, payload, updated_at)
		VALUES (?, ?, unixepoch('subsec') * 1000)
		ON CONFLICT(key) DO UPDATE SET
			payload = excluded.payload,
			updated_at = excluded.updated_at
	`, snapshotKey, string(payload))
	if err != nil {
		return fmt.Errorf("failed to write snapshot: %w", err)
	}
	return nil
}

// Load reads back the last saved snapshot. Absent or unreadable state
// falls back to the seed dataset; only infrastructure errors propagate.
func (p *Persister) Load() (domain.VaultData, error) {
	var payload string
	err := p.db.QueryRow(
		"SELECT payload FROM snapshots WHERE key = ?", snapshotKey,
	).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.SeedData(), nil
	}
	if err != nil {
		return domain.VaultData{}, fmt.Errorf("failed to read snapshot: %w", err)
	}

	var data domain.VaultData
	if err := json.Unmarshal([]byte(payload), &data); err != nil || !data.HasCollections() {
		p.log.Warn("stored snapshot is unreadable, falling back to seed data",
			"path", p.dbPath, "error", err)
		return domain.SeedData(), nil
	}
	return data, nil
}

// Close closes the database connection.
func (p *Persister) Close() error {
	if p.db != nil {
		return p.db.Close()
	}
	return nil
}
