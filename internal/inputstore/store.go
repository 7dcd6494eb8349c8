// Package inputstore persists values the user has entered for content
// variables, so repeated runs reuse earlier answers instead of asking
// again. The store is a flat JSON object of name→value pairs.
package inputstore

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Store holds the variable values backing one input-store file.
type Store struct {
	path   string
	values map[string]string
}

// DefaultPath is where the store lives when neither the --input-store
// flag nor STRUCTKIT_INPUT_STORE is set.
func DefaultPath() string {
	return filepath.Join(os.TempDir(), "structkit", "input.json")
}

// New returns an empty store that will be written to path on Save.
func New(path string) *Store {
	return &Store{path: path, values: make(map[string]string)}
}

// Load reads the store at path. A missing file is not an error: it
// yields an empty store that will be created on first Save.
func Load(path string) (*Store, error) {
	s := &Store{path: path, values: make(map[string]string)}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return s, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read input store: %w", err)
	}

	if err := json.Unmarshal(data, &s.values); err != nil {
		return nil, fmt.Errorf("failed to parse input store %s: %w", path, err)
	}
	return s, nil
}

// Get returns the stored value for name.
func (s *Store) Get(name string) (string, bool) {
	v, ok := s.values[name]
	return v, ok
}

// Set records a value for name. Call Save to persist it.
func (s *Store) Set(name, value string) {
	s.values[name] = value
}

// Values returns a copy of all stored pairs.
func (s *Store) Values() map[string]string {
	out := make(map[string]string, len(s.values))
	for k, v := range s.values {
		out[k] = v
	}
	return out
}

// Save writes the store back to disk, creating parent directories as
// needed.
func (s *Store) Save() error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return fmt.Errorf("failed to create input store directory: %w", err)
	}

	data, err := json.MarshalIndent(s.values, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal input store: %w", err)
	}
	return os.WriteFile(s.path, data, 0644)
}
