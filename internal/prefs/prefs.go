// Package prefs is a small key/value preference store persisted as a JSON
// file next to the project, in the same spirit as the editor's other dotfile
// preferences. Values survive editor restarts.
package prefs

import (
	"encoding/json"
	"os"

	"github.com/charmbracelet/log"
)

// DefaultPath is the store used by the editor itself.
const DefaultPath = ".glide_prefs.json"

// Store is a JSON-file-backed preference store. Every write persists
// immediately; reads are served from memory after the first load.
type Store struct {
	path   string
	values map[string]any
	loaded bool
}

func Open(path string) *Store {
	return &Store{path: path}
}

func (s *Store) load() {
	if s.loaded {
		return
	}
	s.loaded = true
	s.values = make(map[string]any)

	data, err := os.ReadFile(s.path)
	if err != nil {
		return // No prefs file yet, that's fine
	}
	if err := json.Unmarshal(data, &s.values); err != nil {
		log.Warn("failed to parse prefs file, starting fresh", "path", s.path, "error", err)
		s.values = make(map[string]any)
	}
}

func (s *Store) save() {
	data, err := json.MarshalIndent(s.values, "", "  ")
	if err != nil {
		log.Error("failed to marshal prefs", "error", err)
		return
	}
	if err := os.WriteFile(s.path, data, 0644); err != nil {
		log.Error("failed to save prefs", "path", s.path, "error", err)
	}
}

// GetBool returns the stored value for key, or false if absent or not a bool.
func (s *Store) GetBool(key string) bool {
	s.load()
	v, ok := s.values[key].(bool)
	return ok && v
}

// SetBool stores a bool under key and persists the store.
func (s *Store) SetBool(key string, value bool) {
	s.load()
	s.values[key] = value
	s.save()
}

// Delete removes key from the store. Intended for test support and for
// resetting one-time prompts.
func (s *Store) Delete(key string) {
	s.load()
	if _, ok := s.values[key]; !ok {
		return
	}
	delete(s.values, key)
	s.save()
}

// Keys returns all stored keys, for diagnostic listings.
func (s *Store) Keys() []string {
	s.load()
	keys := make([]string, 0, len(s.values))
	for k := range s.values {
		keys = append(keys, k)
	}
	return keys
}

// Get returns the raw stored value for key.
func (s *Store) Get(key string) (any, bool) {
	s.load()
	v, ok := s.values[key]
	return v, ok
}
