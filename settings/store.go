// Package settings holds the player's persistent preferences: effect
// intensities and key bindings.
package settings

import (
	"strconv"
	"sync"
)

// Store is a flat key/value settings store. Getters return def when the key
// is unset or holds a value of another type.
type Store interface {
	GetFloat(key string, def float64) float64
	SetFloat(key string, v float64)
	GetInt(key string, def int) int
	SetInt(key string, v int)
	GetString(key, def string) string
	SetString(key, v string)
	Save() error
}

// MemoryStore keeps settings in memory only. Save is a no-op.
type MemoryStore struct {
	mu     sync.RWMutex
	values map[string]string
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{values: make(map[string]string)}
}

func (s *MemoryStore) get(key string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.values[key]
	return v, ok
}

func (s *MemoryStore) set(key, v string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[key] = v
}

func (s *MemoryStore) GetFloat(key string, def float64) float64 {
	raw, ok := s.get(key)
	if !ok {
		return def
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return def
	}
	return v
}

func (s *MemoryStore) SetFloat(key string, v float64) {
	s.set(key, strconv.FormatFloat(v, 'g', -1, 64))
}

func (s *MemoryStore) GetInt(key string, def int) int {
	raw, ok := s.get(key)
	if !ok {
		return def
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return def
	}
	return v
}

func (s *MemoryStore) SetInt(key string, v int) {
	s.set(key, strconv.Itoa(v))
}

func (s *MemoryStore) GetString(key, def string) string {
	if raw, ok := s.get(key); ok {
		return raw
	}
	return def
}

func (s *MemoryStore) SetString(key, v string) {
	s.set(key, v)
}

func (s *MemoryStore) Save() error { return nil }

// snapshot copies the current values.
func (s *MemoryStore) snapshot() map[string]string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make(map[string]string, len(s.values))
	for k, v := range s.values {
		out[k] = v
	}
	return out
}

func (s *MemoryStore) replace(values map[string]string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values = values
}
