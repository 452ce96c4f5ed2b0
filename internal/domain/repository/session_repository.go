package repository

import (
	"context"

	"doorstep/internal/domain/entity"
	"doorstep/internal/errors"

	"github.com/google/uuid"
)

// ErrSessionNotFound is returned when a wizard session does not exist.
var ErrSessionNotFound = errors.New("wizard session not found")

// SessionMutator computes the next state of a session. Returning an error
// leaves the stored session unchanged.
type SessionMutator func(current *entity.Session) (*entity.Session, error)

// SessionRepository stores transient wizard sessions.
type SessionRepository interface {
	// CreateSession stores a new session.
	CreateSession(ctx context.Context, session *entity.Session) error

	// FindSessionByID retrieves a copy of a session.
	// Returns ErrSessionNotFound if it does not exist.
	FindSessionByID(ctx context.Context, id uuid.UUID) (*entity.Session, error)

	// UpdateSession runs fn on a copy of the session while holding the
	// session's lock and stores its result. Updates to one session are
	// serialized.
	UpdateSession(ctx context.Context, id uuid.UUID, fn SessionMutator) (*entity.Session, error)
}
