package session

import (
	"fmt"
	"sync"
)

// Registry manages session states in memory, keyed by an externally supplied
// session id. Sessions are created lazily on first use and torn down
// explicitly by the caller; nothing is persisted across restarts.
type Registry struct {
	sessions map[string]*State
	mu       sync.RWMutex
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		sessions: make(map[string]*State),
	}
}

// GetOrCreate returns the state for the given id, creating it on first use.
func (r *Registry) GetOrCreate(sessionID string) *State {
	r.mu.RLock()
	if s, ok := r.sessions[sessionID]; ok {
		r.mu.RUnlock()
		return s
	}
	r.mu.RUnlock()

	r.mu.Lock()
	defer r.mu.Unlock()
	if s, ok := r.sessions[sessionID]; ok {
		return s
	}
	s := New(sessionID)
	r.sessions[sessionID] = s
	return s
}

// Get retrieves a session by id.
func (r *Registry) Get(sessionID string) (*State, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	s, ok := r.sessions[sessionID]
	if !ok {
		return nil, fmt.Errorf("session not found: %s", sessionID)
	}
	return s, nil
}

// Reset clears a session's observations while keeping cross-task memory.
func (r *Registry) Reset(sessionID string) error {
	s, err := r.Get(sessionID)
	if err != nil {
		return err
	}
	s.Reset()
	return nil
}

// Delete removes a session entirely.
func (r *Registry) Delete(sessionID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.sessions[sessionID]; !ok {
		return fmt.Errorf("session not found: %s", sessionID)
	}
	delete(r.sessions, sessionID)
	return nil
}

// IDs returns the ids of all live sessions.
func (r *Registry) IDs() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ids := make([]string, 0, len(r.sessions))
	for id := range r.sessions {
		ids = append(ids, id)
	}
	return ids
}
