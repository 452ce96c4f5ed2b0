package usecase

import (
	"context"

	"doorstep/internal/domain/entity"
	"doorstep/internal/domain/service"
)

// ActivityQuery selects part of the activity feed. Zero values match all.
type ActivityQuery struct {
	RecordID string
	Kind     string
	Limit    int
}

// ActivityFeed is the recent activity with a per-kind tally of the items.
type ActivityFeed struct {
	Items  []*entity.Activity `json:"items"`
	Counts map[string]int     `json:"counts"`
}

// ActivityUsecase consumes published wizard events.
type ActivityUsecase interface {
	// RecordWizardEvent stores a received event. It reports false when the
	// message was already recorded.
	RecordWizardEvent(ctx context.Context, messageID string, event *service.WizardEvent) (bool, error)

	// RecentActivity returns recorded events, newest first
	RecentActivity(ctx context.Context, query ActivityQuery) (*ActivityFeed, error)
}
