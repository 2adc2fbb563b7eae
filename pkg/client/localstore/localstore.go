// Package localstore is a small file-backed key-value store used by the API
// client as its local cache. Values are JSON-serialized under a fixed key
// prefix, all keys living in a single JSON file on disk.
package localstore

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// Prefix scopes every key this store owns.
const Prefix = "learnhub:"

// Well-known cache keys.
const (
	KeyUser        = Prefix + "user"
	KeyCourses     = Prefix + "courses"
	KeyEnrollments = Prefix + "enrollments"
	KeyProgress    = Prefix + "progress"
	KeyReminders   = Prefix + "reminders"
	KeySettings    = Prefix + "settings"
)

// Store persists JSON values in a single file, guarded by a mutex.
type Store struct {
	mu   sync.Mutex
	path string
}

// New creates a store backed by the given file. The parent directory is
// created if missing; the file itself is created on first Save.
func New(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("creating local store directory: %w", err)
	}
	return &Store{path: path}, nil
}

// Save serializes a value under the given key.
func (s *Store) Save(key string, value any) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := s.read()
	if err != nil {
		return err
	}
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("marshaling value for %s: %w", key, err)
	}
	data[key] = raw
	return s.write(data)
}

// Load deserializes the value stored under key into out. The second return
// is false when the key is absent.
func (s *Store) Load(key string, out any) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := s.read()
	if err != nil {
		return false, err
	}
	raw, ok := data[key]
	if !ok {
		return false, nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return false, fmt.Errorf("unmarshaling value for %s: %w", key, err)
	}
	return true, nil
}

// Remove deletes a single key. Removing an absent key is a no-op.
func (s *Store) Remove(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := s.read()
	if err != nil {
		return err
	}
	if _, ok := data[key]; !ok {
		return nil
	}
	delete(data, key)
	return s.write(data)
}

// Clear deletes every key under the store's prefix.
func (s *Store) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := s.read()
	if err != nil {
		return err
	}
	for key := range data {
		if strings.HasPrefix(key, Prefix) {
			delete(data, key)
		}
	}
	return s.write(data)
}

func (s *Store) read() (map[string]json.RawMessage, error) {
	raw, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return map[string]json.RawMessage{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading local store: %w", err)
	}
	data := map[string]json.RawMessage{}
	if len(raw) == 0 {
		return data, nil
	}
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil, fmt.Errorf("parsing local store: %w", err)
	}
	return data, nil
}

func (s *Store) write(data map[string]json.RawMessage) error {
	raw, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("serializing local store: %w", err)
	}
	if err := os.WriteFile(s.path, raw, 0o644); err != nil {
		return fmt.Errorf("writing local store: %w", err)
	}
	return nil
}
