// Package navigation abstracts "where the user is" so the transport layer can
// suppress the 401 redirect on public auth screens, and so the composition
// root can react to session invalidation by navigating to the login route.
package navigation

import "sync"

// Navigator tracks the current route.
type Navigator interface {
	Current() string
	Go(path string)
}

// Memory is a thread-safe in-process Navigator used by the terminal client
// and by tests.
type Memory struct {
	mu      sync.RWMutex
	current string
	history []string
}

var _ Navigator = (*Memory)(nil)

// NewMemory starts at path, or the root when path is empty.
func NewMemory(path string) *Memory {
	if path == "" {
		path = "/"
	}
	return &Memory{current: path, history: []string{path}}
}

func (m *Memory) Current() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.current
}

func (m *Memory) Go(path string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.current = path
	m.history = append(m.history, path)
}

// History returns every visited path in order, for assertions in tests.
func (m *Memory) History() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]string, len(m.history))
	copy(out, m.history)
	return out
}
