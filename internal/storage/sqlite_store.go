package storage

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"

	"github.com/julianstephens/stillday/internal/logger"
)

// SQLiteStore persists each key as a JSON blob row in a single kv table.
type SQLiteStore struct {
	path string
	db   *sql.DB
	subscribers
}

func NewSQLiteStore(path string) *SQLiteStore {
	return &SQLiteStore{
		path: path,
	}
}

func (s *SQLiteStore) Init() error {
	// Create config directory if it doesn't exist
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	s.db = db

	return s.ensureSchema()
}

func (s *SQLiteStore) Load() error {
	if s.db != nil {
		return nil
	}

	if _, err := os.Stat(s.path); os.IsNotExist(err) {
		return fmt.Errorf("storage not initialized, run 'stillday init' first")
	}

	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	s.db = db

	return s.ensureSchema()
}

func (s *SQLiteStore) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

func (s *SQLiteStore) ensureSchema() error {
	_, err := s.db.Exec(`CREATE TABLE IF NOT EXISTS kv (
		key TEXT PRIMARY KEY,
		value TEXT NOT NULL
	)`)
	if err != nil {
		return fmt.Errorf("failed to create kv table: %w", err)
	}
	return nil
}

func (s *SQLiteStore) Read(key string, out any) bool {
	if s.db == nil {
		return false
	}

	var raw string
	err := s.db.QueryRow("SELECT value FROM kv WHERE key = ?", key).Scan(&raw)
	if err != nil {
		if err != sql.ErrNoRows {
			logger.Warn("Failed to read stored value, using default", "key", key, "error", err)
		}
		return false
	}

	if err := json.Unmarshal([]byte(raw), out); err != nil {
		logger.Warn("Stored value is not decodable, using default", "key", key, "error", err)
		return false
	}
	return true
}

func (s *SQLiteStore) Write(key string, v any) error {
	if s.db == nil {
		return fmt.Errorf("storage not loaded")
	}

	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to serialize value for %q: %w", key, err)
	}

	_, err = s.db.Exec(
		"INSERT INTO kv (key, value) VALUES (?, ?) ON CONFLICT(key) DO UPDATE SET value = excluded.value",
		key, string(raw),
	)
	if err != nil {
		return fmt.Errorf("failed to write storage: %w", err)
	}

	s.notify(key)
	return nil
}

func (s *SQLiteStore) Subscribe(key string, fn func()) {
	s.subscribe(key, fn)
}

func (s *SQLiteStore) GetConfigPath() string {
	return s.path
}
