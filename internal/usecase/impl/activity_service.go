package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "doorstep/internal/delivery/context"
	"doorstep/internal/domain/entity"
	domainerrors "doorstep/internal/domain/errors"
	"doorstep/internal/domain/repository"
	"doorstep/internal/domain/service"
	"doorstep/internal/domain/wizard"
	"doorstep/internal/usecase"

	"go.uber.org/fx"
)

const (
	defaultActivityLimit = 50
	maxActivityLimit     = 500
)

// activityService implements the ActivityUsecase interface.
type activityService struct {
	activityRepo repository.ActivityRepository
	logger       *slog.Logger
	now          func() time.Time
}

// ActivityServiceParams holds dependencies for ActivityService, injected by Fx.
type ActivityServiceParams struct {
	fx.In

	ActivityRepo repository.ActivityRepository
	Logger       *slog.Logger
}

// NewActivityService creates a new activity service instance
func NewActivityService(params ActivityServiceParams) usecase.ActivityUsecase {
	return &activityService{
		activityRepo: params.ActivityRepo,
		logger:       params.Logger,
		now:          time.Now,
	}
}

func (srv *activityService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// RecordWizardEvent validates and stores one received event.
func (srv *activityService) RecordWizardEvent(ctx context.Context, messageID string, event *service.WizardEvent) (bool, error) {
	if err := validateWizardEvent(messageID, event); err != nil {
		return false, err
	}

	recorded, err := srv.activityRepo.RecordActivity(ctx, &entity.Activity{
		MessageID:  messageID,
		RequestID:  event.RequestID,
		SessionID:  event.SessionID,
		RecordID:   event.RecordID,
		Kind:       event.Kind,
		Step:       event.Step,
		Scenario:   event.Scenario,
		OccurredAt: event.OccurredAt,
		ReceivedAt: srv.now().UTC(),
	})
	if err != nil {
		return false, domainerrors.ErrActivityUnavailable.WrapMessage(err.Error())
	}

	if !recorded {
		srv.log(ctx).Info("Duplicate wizard event dropped", slog.String("message_id", messageID))

		return false, nil
	}

	srv.log(ctx).Info("Wizard event recorded",
		slog.String("message_id", messageID),
		slog.String("kind", event.Kind),
		slog.String("address_id", event.RecordID),
	)

	return true, nil
}

// RecentActivity lists the feed and tallies it by kind.
func (srv *activityService) RecentActivity(ctx context.Context, query usecase.ActivityQuery) (*usecase.ActivityFeed, error) {
	limit := query.Limit
	if limit <= 0 {
		limit = defaultActivityLimit
	}
	limit = min(limit, maxActivityLimit)

	items, err := srv.activityRepo.ListActivity(ctx, repository.ActivityFilter{
		RecordID: query.RecordID,
		Kind:     query.Kind,
		Limit:    limit,
	})
	if err != nil {
		return nil, domainerrors.ErrActivityUnavailable.WrapMessage(err.Error())
	}

	counts := make(map[string]int)
	for _, item := range items {
		counts[item.Kind]++
	}

	return &usecase.ActivityFeed{Items: items, Counts: counts}, nil
}

func validateWizardEvent(messageID string, event *service.WizardEvent) error {
	switch {
	case event == nil:
		return domainerrors.ErrInvalidWizardEvent.WithDetails("event payload is empty")
	case messageID == "":
		return domainerrors.ErrInvalidWizardEvent.WithDetails("message id is required")
	case event.RecordID == "":
		return domainerrors.ErrInvalidWizardEvent.WithDetails("record_id is required")
	}

	switch wizard.SignalKind(event.Kind) {
	case wizard.SignalStepCompleted, wizard.SignalScenarioCompleted,
		wizard.SignalWizardCompleted, wizard.SignalElevatorPrompt:
		return nil
	default:
		return domainerrors.ErrInvalidWizardEvent.WithDetails("unknown kind " + event.Kind)
	}
}
