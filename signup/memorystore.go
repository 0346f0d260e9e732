package signup

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"
)

var _ SessionStore = &MemoryStore{}

// MemoryStore keeps sessions in process. Good for local runs and a single
// instance; use the dynamo store when more than one instance serves traffic.
type MemoryStore struct {
	mu       sync.Mutex
	sessions map[uuid.UUID]Session
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		sessions: map[uuid.UUID]Session{},
	}
}

func (m *MemoryStore) CreateSession(ctx context.Context, session Session) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.sessions[session.ID]; ok {
		return NewSessionAlreadyExistsError(fmt.Sprintf("Session with ID %q already exists", session.ID), nil)
	}
	if session.Version != 1 {
		return NewVersionConflictError(fmt.Sprintf("New session must have version 1, got %d", session.Version), nil)
	}

	m.sessions[session.ID] = session
	return nil
}

func (m *MemoryStore) GetSession(ctx context.Context, id uuid.UUID) (Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	session, ok := m.sessions[id]
	if !ok {
		return Session{}, NewSessionDoesNotExistError(fmt.Sprintf("Session with ID %q not found", id), nil)
	}
	return session, nil
}

func (m *MemoryStore) UpdateSession(ctx context.Context, session Session) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.checkVersion(session); err != nil {
		return err
	}

	m.sessions[session.ID] = session
	return nil
}

func (m *MemoryStore) DeleteSession(ctx context.Context, session Session) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.checkVersion(session); err != nil {
		return err
	}

	delete(m.sessions, session.ID)
	return nil
}

func (m *MemoryStore) checkVersion(session Session) error {
	existing, ok := m.sessions[session.ID]
	if !ok {
		return NewSessionDoesNotExistError(fmt.Sprintf("Session with ID %q not found", session.ID), nil)
	}
	if existing.Version != session.Version-1 {
		return NewVersionConflictError(fmt.Sprintf("Session %q is at version %d, expected %d", session.ID, existing.Version, session.Version-1), nil)
	}
	return nil
}
