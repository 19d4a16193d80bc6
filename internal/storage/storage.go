package storage

import "sync"

// Keys written by the panel. Values are always plain strings.
const (
	KeyDarkMode         = "darkMode"
	KeyLoggedIn         = "loggedIn"
	KeyUsername         = "username"
	KeyUserRole         = "userRole"
	KeySidebarCollapsed = "sidebarCollapsed"
)

// LocalStorage is a flat string key/value store scoped to one browser.
type LocalStorage interface {
	Get(key string) (string, bool)
	Set(key, value string)
	Clear()
}

// GetOr returns the stored value for key, or fallback when it is absent.
func GetOr(s LocalStorage, key, fallback string) string {
	if v, ok := s.Get(key); ok {
		return v
	}
	return fallback
}

// Memory is a map-backed LocalStorage.
type Memory struct {
	mu     sync.RWMutex
	values map[string]string
}

func NewMemory() *Memory {
	return &Memory{values: make(map[string]string)}
}

func (m *Memory) Get(key string) (string, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.values[key]
	return v, ok
}

func (m *Memory) Set(key, value string) {
	m.mu.Lock()
	m.values[key] = value
	m.mu.Unlock()
}

func (m *Memory) Clear() {
	m.mu.Lock()
	m.values = make(map[string]string)
	m.mu.Unlock()
}

func (m *Memory) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.values)
}
