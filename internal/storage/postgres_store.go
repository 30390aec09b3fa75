package storage

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	_ "github.com/lib/pq"

	"github.com/julianstephens/stillday/internal/logger"
)

// PostgresStore persists each key as a JSON blob row in a single kv
// table, for users who keep their planner on a shared database host.
// The connection string must not embed a password; use the OS keyring
// (stillday config set-dsn), environment, or .pgpass instead.
type PostgresStore struct {
	connStr string
	db      *sql.DB
	subscribers
}

func NewPostgresStore(connStr string) *PostgresStore {
	return &PostgresStore{
		connStr: connStr,
	}
}

// HasEmbeddedCredentials reports whether a URL-style connection string
// carries a password in its userinfo section.
func HasEmbeddedCredentials(connStr string) bool {
	if !strings.HasPrefix(connStr, "postgres://") && !strings.HasPrefix(connStr, "postgresql://") {
		return false
	}
	u, err := url.Parse(connStr)
	if err != nil {
		return false
	}
	if u.User == nil {
		return false
	}
	_, hasPassword := u.User.Password()
	return hasPassword
}

func (s *PostgresStore) open() error {
	db, err := sql.Open("postgres", s.connStr)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	s.db = db
	return nil
}

func (s *PostgresStore) Init() error {
	if err := s.open(); err != nil {
		return err
	}
	return s.ensureSchema()
}

func (s *PostgresStore) Load() error {
	if s.db != nil {
		return nil
	}
	if err := s.open(); err != nil {
		return err
	}
	return s.ensureSchema()
}

func (s *PostgresStore) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

func (s *PostgresStore) ensureSchema() error {
	_, err := s.db.Exec(`CREATE TABLE IF NOT EXISTS kv (
		key TEXT PRIMARY KEY,
		value JSONB NOT NULL
	)`)
	if err != nil {
		return fmt.Errorf("failed to create kv table: %w", err)
	}
	return nil
}

func (s *PostgresStore) Read(key string, out any) bool {
	if s.db == nil {
		return false
	}

	var raw []byte
	err := s.db.QueryRow("SELECT value FROM kv WHERE key = $1", key).Scan(&raw)
	if err != nil {
		if err != sql.ErrNoRows {
			logger.Warn("Failed to read stored value, using default", "key", key, "error", err)
		}
		return false
	}

	if err := json.Unmarshal(raw, out); err != nil {
		logger.Warn("Stored value is not decodable, using default", "key", key, "error", err)
		return false
	}
	return true
}

func (s *PostgresStore) Write(key string, v any) error {
	if s.db == nil {
		return fmt.Errorf("storage not loaded")
	}

	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to serialize value for %q: %w", key, err)
	}

	_, err = s.db.Exec(
		"INSERT INTO kv (key, value) VALUES ($1, $2) ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value",
		key, raw,
	)
	if err != nil {
		return fmt.Errorf("failed to write storage: %w", err)
	}

	s.notify(key)
	return nil
}

func (s *PostgresStore) Subscribe(key string, fn func()) {
	s.subscribe(key, fn)
}

func (s *PostgresStore) GetConfigPath() string {
	return s.connStr
}
