package session

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/MKhiriev/go-gate-keeper/internal/secret"
)

// memoryServer keeps sessions in process memory. It backs single-binary
// deployments and tests; multi-instance deployments use the Redis server.
type memoryServer struct {
	mu       sync.Mutex
	sessions map[string]*memoryEntry
	source   secret.TokenSource
	ttl      time.Duration
	now      func() time.Time
}

type memoryEntry struct {
	values   map[string]string
	deadline time.Time
}

// NewMemoryServer returns an in-process [Server]. Sessions idle longer than
// ttl stop resolving; ttl zero means sessions never expire.
func NewMemoryServer(source secret.TokenSource, ttl time.Duration) Server {
	return &memoryServer{
		sessions: make(map[string]*memoryEntry),
		source:   source,
		ttl:      ttl,
		now:      time.Now,
	}
}

// Open implements [Server].
func (s *memoryServer) Open(_ context.Context, id string) (Store, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if id != "" {
		if entry, ok := s.sessions[id]; ok {
			if s.live(entry) {
				entry.deadline = s.deadline()
				return &memoryStore{server: s, id: id}, nil
			}
			delete(s.sessions, id)
		}
	}

	fresh, err := s.source.SessionID()
	if err != nil {
		return nil, fmt.Errorf("error generating session id: %w", err)
	}

	s.sessions[fresh] = &memoryEntry{
		values:   make(map[string]string),
		deadline: s.deadline(),
	}

	return &memoryStore{server: s, id: fresh}, nil
}

func (s *memoryServer) live(entry *memoryEntry) bool {
	return s.ttl == 0 || entry.deadline.After(s.now())
}

func (s *memoryServer) deadline() time.Time {
	if s.ttl == 0 {
		return time.Time{}
	}
	return s.now().Add(s.ttl)
}

// memoryStore is a handle into the server's session map. All operations
// take the server lock.
type memoryStore struct {
	server *memoryServer
	id     string
}

func (m *memoryStore) ID() string {
	return m.id
}

func (m *memoryStore) Get(_ context.Context, key string) (string, bool, error) {
	m.server.mu.Lock()
	defer m.server.mu.Unlock()

	entry, ok := m.server.sessions[m.id]
	if !ok {
		return "", false, nil
	}

	value, ok := entry.values[key]
	return value, ok, nil
}

func (m *memoryStore) Set(_ context.Context, key, value string) error {
	m.server.mu.Lock()
	defer m.server.mu.Unlock()

	entry, ok := m.server.sessions[m.id]
	if !ok {
		entry = &memoryEntry{values: make(map[string]string), deadline: m.server.deadline()}
		m.server.sessions[m.id] = entry
	}
	entry.values[key] = value

	return nil
}

func (m *memoryStore) Delete(_ context.Context, key string) error {
	m.server.mu.Lock()
	defer m.server.mu.Unlock()

	if entry, ok := m.server.sessions[m.id]; ok {
		delete(entry.values, key)
	}

	return nil
}

func (m *memoryStore) RegenerateID(_ context.Context) error {
	fresh, err := m.server.source.SessionID()
	if err != nil {
		return fmt.Errorf("error generating session id: %w", err)
	}

	m.server.mu.Lock()
	defer m.server.mu.Unlock()

	entry, ok := m.server.sessions[m.id]
	if !ok {
		entry = &memoryEntry{values: make(map[string]string), deadline: m.server.deadline()}
	}
	delete(m.server.sessions, m.id)
	m.server.sessions[fresh] = entry
	m.id = fresh

	return nil
}

func (m *memoryStore) Destroy(_ context.Context) error {
	m.server.mu.Lock()
	defer m.server.mu.Unlock()

	delete(m.server.sessions, m.id)

	return nil
}
