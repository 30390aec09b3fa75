package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/julianstephens/stillday/internal/logger"
)

// JSONStore persists all keys in a single indented JSON file keyed by
// storage key. Every write rewrites the whole file.
type JSONStore struct {
	path string
	data map[string]json.RawMessage
	subscribers
}

func NewJSONStore(configPath string) *JSONStore {
	return &JSONStore{
		path: configPath,
	}
}

func (s *JSONStore) Init() error {
	// Create config directory if it doesn't exist
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	// Check if file already exists
	if _, err := os.Stat(s.path); err == nil {
		return fmt.Errorf("storage already initialized at %s", s.path)
	}

	s.data = make(map[string]json.RawMessage)
	return s.save()
}

func (s *JSONStore) Load() error {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("storage not initialized, run 'stillday init' first")
		}
		return fmt.Errorf("failed to read storage: %w", err)
	}

	s.data = make(map[string]json.RawMessage)
	if err := json.Unmarshal(raw, &s.data); err != nil {
		// Corrupt file: fall back to an empty store rather than failing.
		// The in-memory state is authoritative for the session.
		logger.Warn("Storage file is corrupt, starting from empty state", "path", s.path, "error", err)
		s.data = make(map[string]json.RawMessage)
	}

	return nil
}

func (s *JSONStore) Close() error {
	return nil
}

func (s *JSONStore) save() error {
	raw, err := json.MarshalIndent(s.data, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize storage: %w", err)
	}

	if err := os.WriteFile(s.path, raw, 0600); err != nil {
		return fmt.Errorf("failed to write storage: %w", err)
	}

	return nil
}

func (s *JSONStore) Read(key string, out any) bool {
	raw, ok := s.data[key]
	if !ok {
		return false
	}
	if err := json.Unmarshal(raw, out); err != nil {
		logger.Warn("Stored value is not decodable, using default", "key", key, "error", err)
		return false
	}
	return true
}

func (s *JSONStore) Write(key string, v any) error {
	if s.data == nil {
		return fmt.Errorf("storage not loaded")
	}

	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to serialize value for %q: %w", key, err)
	}

	s.data[key] = raw
	if err := s.save(); err != nil {
		return err
	}

	s.notify(key)
	return nil
}

func (s *JSONStore) Subscribe(key string, fn func()) {
	s.subscribe(key, fn)
}

func (s *JSONStore) GetConfigPath() string {
	return s.path
}
