// Package session keeps the in-memory map from session id to user id.
package session

import (
	"sync"

	"github.com/google/uuid"
)

// Registry is process-local; restarting the server logs everyone out.
type Registry struct {
	mu       sync.RWMutex
	sessions map[string]string
}

func NewRegistry() *Registry {
	return &Registry{sessions: make(map[string]string)}
}

// Create opens a session for userID and returns its id.
func (r *Registry) Create(userID string) string {
	id := uuid.NewString()
	r.mu.Lock()
	r.sessions[id] = userID
	r.mu.Unlock()
	return id
}

// Resolve returns the user id bound to a session.
func (r *Registry) Resolve(id string) (string, bool) {
	if id == "" {
		return "", false
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	userID, ok := r.sessions[id]
	return userID, ok
}

// Destroy is a no-op for unknown ids.
func (r *Registry) Destroy(id string) {
	r.mu.Lock()
	delete(r.sessions, id)
	r.mu.Unlock()
}

func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.sessions)
}
