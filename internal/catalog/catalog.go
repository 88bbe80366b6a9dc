// Package catalog provides SQLite-based persistence for decoded level
// metadata. Uses the pure-Go modernc.org/sqlite driver to avoid CGO
// dependencies.
package catalog

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/vovakirdan/lrconv/internal/level"
)

// Store manages the SQLite database connection for the level catalog.
type Store struct {
	db *sql.DB
}

// Entry is one catalogued level.
type Entry struct {
	ID          int64
	Name        string
	DisplayName string
	Encoding    string
	ByteSize    int
	Enemies     int
	ExitLadders int
	Respawns    int
	Gold        int
	Overlaps    int
	CreatedAt   time.Time
}

// EntryFromLevel builds a catalog entry from a decode result.
func EntryFromLevel(d *level.DecodedLevel, displayName string, byteSize int) Entry {
	return Entry{
		Name:        d.Name,
		DisplayName: displayName,
		Encoding:    d.Header.Encoding.String(),
		ByteSize:    byteSize,
		Enemies:     len(d.Header.Enemies),
		ExitLadders: len(d.Header.ExitLadders),
		Respawns:    len(d.Header.Respawns),
		Gold:        d.Grid.CountTile(level.TileGold),
		Overlaps:    len(d.Overlaps),
	}
}

// Open creates or opens a catalog database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("catalog: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("catalog: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("catalog: cannot open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("catalog: cannot connect to database: %w", err)
	}

	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("catalog: migration failed: %w", err)
	}
	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS levels (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			name TEXT NOT NULL UNIQUE,
			display_name TEXT NOT NULL,
			encoding TEXT NOT NULL,
			byte_size INTEGER NOT NULL,
			enemies INTEGER NOT NULL,
			exit_ladders INTEGER NOT NULL,
			respawns INTEGER NOT NULL,
			gold INTEGER NOT NULL,
			overlaps INTEGER NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_levels_encoding ON levels(encoding);
	`
	_, err := s.db.Exec(schema)
	return err
}

// Save inserts or replaces a level entry, keyed by its source array name.
func (s *Store) Save(e Entry) (int64, error) {
	res, err := s.db.Exec(`
		INSERT INTO levels (name, display_name, encoding, byte_size,
			enemies, exit_ladders, respawns, gold, overlaps)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(name) DO UPDATE SET
			display_name = excluded.display_name,
			encoding = excluded.encoding,
			byte_size = excluded.byte_size,
			enemies = excluded.enemies,
			exit_ladders = excluded.exit_ladders,
			respawns = excluded.respawns,
			gold = excluded.gold,
			overlaps = excluded.overlaps`,
		e.Name, e.DisplayName, e.Encoding, e.ByteSize,
		e.Enemies, e.ExitLadders, e.Respawns, e.Gold, e.Overlaps)
	if err != nil {
		return 0, fmt.Errorf("catalog: saving %s: %w", e.Name, err)
	}
	return res.LastInsertId()
}

const entryColumns = `id, name, display_name, encoding, byte_size,
	enemies, exit_ladders, respawns, gold, overlaps, created_at`

// Levels returns every catalogued level ordered by name.
func (s *Store) Levels() ([]Entry, error) {
	rows, err := s.db.Query(`SELECT ` + entryColumns + ` FROM levels ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("catalog: listing levels: %w", err)
	}
	defer rows.Close()
	return scanEntries(rows)
}

// ByEncoding returns the catalogued levels using the given body encoding.
func (s *Store) ByEncoding(encoding string) ([]Entry, error) {
	rows, err := s.db.Query(`SELECT `+entryColumns+` FROM levels WHERE encoding = ? ORDER BY name`, encoding)
	if err != nil {
		return nil, fmt.Errorf("catalog: listing by encoding: %w", err)
	}
	defer rows.Close()
	return scanEntries(rows)
}

// ByName returns a single level entry, or sql.ErrNoRows if absent.
func (s *Store) ByName(name string) (Entry, error) {
	row := s.db.QueryRow(`SELECT `+entryColumns+` FROM levels WHERE name = ?`, name)
	var e Entry
	err := row.Scan(&e.ID, &e.Name, &e.DisplayName, &e.Encoding, &e.ByteSize,
		&e.Enemies, &e.ExitLadders, &e.Respawns, &e.Gold, &e.Overlaps, &e.CreatedAt)
	if err != nil {
		return Entry{}, err
	}
	return e, nil
}

// Count returns the number of catalogued levels.
func (s *Store) Count() (int, error) {
	var n int
	if err := s.db.QueryRow(`SELECT COUNT(*) FROM levels`).Scan(&n); err != nil {
		return 0, fmt.Errorf("catalog: counting levels: %w", err)
	}
	return n, nil
}

func scanEntries(rows *sql.Rows) ([]Entry, error) {
	var entries []Entry
	for rows.Next() {
		var e Entry
		if err := rows.Scan(&e.ID, &e.Name, &e.DisplayName, &e.Encoding, &e.ByteSize,
			&e.Enemies, &e.ExitLadders, &e.Respawns, &e.Gold, &e.Overlaps, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("catalog: scanning row: %w", err)
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}
