package memory

import (
	"context"
	"sync"

	"doorstep/internal/domain/entity"
	"doorstep/internal/domain/repository"
	"doorstep/internal/errors"

	"github.com/google/uuid"
)

// sessionRepository implements repository.SessionRepository. Every session
// has its own lock so dispatches on one session do not block the others.
type sessionRepository struct {
	mu       sync.RWMutex
	sessions map[uuid.UUID]*sessionSlot
}

type sessionSlot struct {
	mu      sync.Mutex
	session *entity.Session
}

// NewSessionRepository exposes the store's session collection.
func NewSessionRepository(store *Store) repository.SessionRepository {
	return store.Sessions
}

func newSessionRepository() *sessionRepository {
	return &sessionRepository{sessions: make(map[uuid.UUID]*sessionSlot)}
}

// CreateSession stores a new session.
func (repo *sessionRepository) CreateSession(_ context.Context, session *entity.Session) error {
	if session == nil || session.ID == uuid.Nil {
		return errors.New("session id is required")
	}

	repo.mu.Lock()
	defer repo.mu.Unlock()

	if _, exists := repo.sessions[session.ID]; exists {
		return errors.Errorf("session %s already exists", session.ID)
	}
	repo.sessions[session.ID] = &sessionSlot{session: session.Clone()}

	return nil
}

// FindSessionByID retrieves a copy of a session.
func (repo *sessionRepository) FindSessionByID(_ context.Context, id uuid.UUID) (*entity.Session, error) {
	slot, ok := repo.slot(id)
	if !ok {
		return nil, repository.ErrSessionNotFound
	}

	slot.mu.Lock()
	defer slot.mu.Unlock()

	return slot.session.Clone(), nil
}

// UpdateSession runs fn under the session's lock and stores the result.
func (repo *sessionRepository) UpdateSession(_ context.Context, id uuid.UUID, fn repository.SessionMutator) (*entity.Session, error) {
	slot, ok := repo.slot(id)
	if !ok {
		return nil, repository.ErrSessionNotFound
	}

	slot.mu.Lock()
	defer slot.mu.Unlock()

	next, err := fn(slot.session.Clone())
	if err != nil {
		return nil, err
	}
	if next == nil {
		return slot.session.Clone(), nil
	}
	next.ID = slot.session.ID
	slot.session = next.Clone()

	return next, nil
}

func (repo *sessionRepository) slot(id uuid.UUID) (*sessionSlot, bool) {
	repo.mu.RLock()
	defer repo.mu.RUnlock()

	slot, ok := repo.sessions[id]

	return slot, ok
}

func (repo *sessionRepository) count() int {
	repo.mu.RLock()
	defer repo.mu.RUnlock()

	return len(repo.sessions)
}
