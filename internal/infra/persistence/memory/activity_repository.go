package memory

import (
	"context"
	"sync"

	"doorstep/config"
	"doorstep/internal/domain/entity"
	"doorstep/internal/domain/repository"
	"doorstep/internal/errors"
)

// activityRepository keeps the most recent activities in a ring. Message
// ids are remembered while their activity is still in the ring.
type activityRepository struct {
	mu    sync.Mutex
	ring  []*entity.Activity
	next  int
	full  bool
	known map[string]struct{}
}

// NewActivityRepository creates the bounded activity feed of the event worker.
func NewActivityRepository(cfg *config.Config) repository.ActivityRepository {
	return newActivityRepository(cfg.Worker.History)
}

func newActivityRepository(capacity int) *activityRepository {
	if capacity <= 0 {
		capacity = 1
	}

	return &activityRepository{
		ring:  make([]*entity.Activity, capacity),
		known: make(map[string]struct{}, capacity),
	}
}

// RecordActivity appends the activity, evicting the oldest one when full.
func (repo *activityRepository) RecordActivity(_ context.Context, activity *entity.Activity) (bool, error) {
	if activity == nil || activity.MessageID == "" {
		return false, errors.New("activity message id is required")
	}

	repo.mu.Lock()
	defer repo.mu.Unlock()

	if _, seen := repo.known[activity.MessageID]; seen {
		return false, nil
	}

	if evicted := repo.ring[repo.next]; evicted != nil {
		delete(repo.known, evicted.MessageID)
	}
	stored := *activity
	repo.ring[repo.next] = &stored
	repo.known[activity.MessageID] = struct{}{}

	repo.next++
	if repo.next == len(repo.ring) {
		repo.next = 0
		repo.full = true
	}

	return true, nil
}

// ListActivity walks the ring from newest to oldest.
func (repo *activityRepository) ListActivity(_ context.Context, filter repository.ActivityFilter) ([]*entity.Activity, error) {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	size := repo.next
	if repo.full {
		size = len(repo.ring)
	}

	out := make([]*entity.Activity, 0, min(size, max(filter.Limit, 0)))
	for i := range size {
		idx := (repo.next - 1 - i + len(repo.ring)) % len(repo.ring)
		activity := repo.ring[idx]
		if filter.RecordID != "" && activity.RecordID != filter.RecordID {
			continue
		}
		if filter.Kind != "" && activity.Kind != filter.Kind {
			continue
		}

		copied := *activity
		out = append(out, &copied)
		if filter.Limit > 0 && len(out) == filter.Limit {
			break
		}
	}

	return out, nil
}
