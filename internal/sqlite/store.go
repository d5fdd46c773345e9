// Package sqlite implements the SQLite-backed record store for Platboard.
// Each record key holds one JSON document; Get and Set are single SQL
// statements, so a read never observes a partial write.
package sqlite

import (
	"database/sql"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"sync"

	_ "modernc.org/sqlite"

	"github.com/mesh-intelligence/platboard/pkg/types"
)

// DBFileName is the database file created inside the data directory.
const DBFileName = "platboard.db"

// schemaSQL defines the records table.
const schemaSQL = `
CREATE TABLE IF NOT EXISTS records (
	key   TEXT PRIMARY KEY,
	value TEXT NOT NULL
);
`

// Store implements types.RecordStore over a single SQLite database.
type Store struct {
	mu       sync.RWMutex
	attached bool
	config   types.Config
	db       *sql.DB
}

// NewStore creates a new store instance. The store is not attached; call
// Attach with a Config to open the database.
func NewStore() *Store {
	return &Store{}
}

// Attach opens the database inside config.DataDir, creating the directory
// and schema as needed. Returns ErrAlreadyAttached on a second call.
func (s *Store) Attach(config types.Config) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.attached {
		return types.ErrAlreadyAttached
	}

	if err := config.Validate(); err != nil {
		return err
	}

	dataDir := config.DataDir
	if dataDir == "" {
		dataDir = "."
	}
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return err
	}

	db, err := sql.Open("sqlite", filepath.Join(dataDir, DBFileName))
	if err != nil {
		return err
	}
	if _, err := db.Exec(schemaSQL); err != nil {
		db.Close()
		return err
	}

	s.db = db
	s.config = config
	s.attached = true
	return nil
}

// Detach closes the database. Idempotent; after Detach, Get and Set return
// ErrStoreDetached.
func (s *Store) Detach() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.attached {
		return nil
	}

	if s.db != nil {
		if err := s.db.Close(); err != nil {
			return err
		}
		s.db = nil
	}

	s.attached = false
	return nil
}

// Get unmarshals the document stored under key into out. An absent key or
// an unparsable document leaves out at the caller-supplied default and
// returns nil.
func (s *Store) Get(key string, out any) error {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.attached {
		return types.ErrStoreDetached
	}

	var raw string
	err := s.db.QueryRow("SELECT value FROM records WHERE key = ?", key).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return nil
	}
	if err != nil {
		return err
	}

	if err := json.Unmarshal([]byte(raw), out); err != nil {
		// Unparsable document: the caller keeps its default.
		return nil
	}
	return nil
}

// Set serializes value and writes it under key in one upsert statement.
func (s *Store) Set(key string, value any) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.attached {
		return types.ErrStoreDetached
	}

	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}

	_, err = s.db.Exec(
		"INSERT INTO records (key, value) VALUES (?, ?) ON CONFLICT(key) DO UPDATE SET value = excluded.value",
		key, string(raw))
	return err
}
