package repository

import (
	"context"

	"doorstep/internal/domain/entity"
)

// ActivityFilter narrows the activity feed. Zero values match everything.
type ActivityFilter struct {
	RecordID string
	Kind     string
	Limit    int
}

// ActivityRepository keeps the wizard events received by the worker.
type ActivityRepository interface {
	// RecordActivity stores the activity. It reports false when an activity
	// with the same message id was already stored.
	RecordActivity(ctx context.Context, activity *entity.Activity) (bool, error)

	// ListActivity returns matching activities, newest first.
	ListActivity(ctx context.Context, filter ActivityFilter) ([]*entity.Activity, error)
}
