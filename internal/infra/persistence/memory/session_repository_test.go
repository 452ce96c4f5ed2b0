package memory

import (
	"context"
	"sync"
	"testing"
	"time"

	"doorstep/internal/domain/entity"
	"doorstep/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionRepository_CreateAndFind(t *testing.T) {
	repo := newSessionRepository()
	ctx := context.Background()
	sess := entity.NewSession(time.Now())

	require.NoError(t, repo.CreateSession(ctx, sess))
	assert.Error(t, repo.CreateSession(ctx, sess), "duplicate ids are rejected")

	found, err := repo.FindSessionByID(ctx, sess.ID)
	require.NoError(t, err)
	assert.Equal(t, sess.ID, found.ID)

	_, err = repo.FindSessionByID(ctx, uuid.New())
	assert.ErrorIs(t, err, repository.ErrSessionNotFound)
}

func TestSessionRepository_UpdateErrorLeavesSession(t *testing.T) {
	repo := newSessionRepository()
	ctx := context.Background()
	sess := entity.NewSession(time.Now())
	require.NoError(t, repo.CreateSession(ctx, sess))

	boom := errors.New("boom")
	_, err := repo.UpdateSession(ctx, sess.ID, func(current *entity.Session) (*entity.Session, error) {
		current.SearchQuery = "changed"

		return nil, boom
	})
	require.ErrorIs(t, err, boom)

	found, err := repo.FindSessionByID(ctx, sess.ID)
	require.NoError(t, err)
	assert.Empty(t, found.SearchQuery)
}

func TestSessionRepository_UpdatesAreSerialized(t *testing.T) {
	repo := newSessionRepository()
	ctx := context.Background()
	sess := entity.NewSession(time.Now())
	require.NoError(t, repo.CreateSession(ctx, sess))

	const n = 50
	var wg sync.WaitGroup
	for range n {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := repo.UpdateSession(ctx, sess.ID, func(current *entity.Session) (*entity.Session, error) {
				current.GeocodeToken++

				return current, nil
			})
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	found, err := repo.FindSessionByID(ctx, sess.ID)
	require.NoError(t, err)
	assert.Equal(t, uint64(n), found.GeocodeToken)
}

func TestSessionRepository_UpdateUnknown(t *testing.T) {
	repo := newSessionRepository()

	_, err := repo.UpdateSession(context.Background(), uuid.New(), func(current *entity.Session) (*entity.Session, error) {
		return current, nil
	})
	assert.ErrorIs(t, err, repository.ErrSessionNotFound)
}
