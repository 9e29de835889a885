// internal/store/memory.go
//
// In-memory registry of live game sessions.
// Used by the driver to keep several independent sessions around (e.g. the
// simulate command), each with its own table and RNG.
//
// Characteristics:
//   - Stores *session.Session objects keyed by ID in a map.
//   - Concurrency-safe via RWMutex (concurrent reads allowed, writes exclusive).
//   - State is lost when the process exits; nothing is written to disk.
//   - Missing IDs return ErrNotFound.

package store

import (
	"context"
	"errors"
	"sort"
	"sync"

	"github.com/google/uuid"

	"github.com/robalobadob/setgame/internal/session"
)

// ErrNotFound is returned for unknown session IDs.
var ErrNotFound = errors.New("session not found")

// Store defines the registry interface for game sessions.
type Store interface {
	// Save adds or replaces a session.
	Save(ctx context.Context, s *session.Session) error

	// Get retrieves a session by ID.
	Get(ctx context.Context, id string) (*session.Session, error)

	// Delete drops a session. Deleting an unknown ID returns ErrNotFound.
	Delete(ctx context.Context, id string) error

	// List returns all sessions ordered by ID.
	List(ctx context.Context) ([]*session.Session, error)
}

// memory is an in-memory map-based Store implementation.
type memory struct {
	mu       sync.RWMutex                // guards sessions map
	sessions map[string]*session.Session // keyed by Session.ID
}

// NewMemoryStore constructs a new in-memory Store.
func NewMemoryStore() Store {
	return &memory{sessions: make(map[string]*session.Session)}
}

// NewID returns a fresh session identifier.
func NewID() string { return uuid.NewString() }

func (m *memory) Save(ctx context.Context, s *session.Session) error {
	if s == nil || s.ID == "" {
		return errors.New("store: session without ID")
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions[s.ID] = s
	return nil
}

func (m *memory) Get(ctx context.Context, id string) (*session.Session, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if s, ok := m.sessions[id]; ok {
		return s, nil
	}
	return nil, ErrNotFound
}

func (m *memory) Delete(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.sessions[id]; !ok {
		return ErrNotFound
	}
	delete(m.sessions, id)
	return nil
}

func (m *memory) List(ctx context.Context) ([]*session.Session, error) {
	m.mu.RLock()
	out := make([]*session.Session, 0, len(m.sessions))
	for _, s := range m.sessions {
		out = append(out, s)
	}
	m.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}
