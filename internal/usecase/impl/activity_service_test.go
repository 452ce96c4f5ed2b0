package impl

import (
	"context"
	"testing"
	"time"

	"doorstep/internal/domain/entity"
	domainerrors "doorstep/internal/domain/errors"
	"doorstep/internal/domain/repository"
	"doorstep/internal/domain/service"
	"doorstep/internal/errors"
	mockRepo "doorstep/internal/mocks/repository"
	"doorstep/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestActivityService(t *testing.T) (*activityService, *mockRepo.MockActivityRepository) {
	activityRepo := mockRepo.NewMockActivityRepository(t)

	srv := NewActivityService(ActivityServiceParams{
		ActivityRepo: activityRepo,
		Logger:       newDiscardLogger(),
	}).(*activityService)
	srv.now = func() time.Time { return time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC) }

	return srv, activityRepo
}

func stepEvent() *service.WizardEvent {
	return &service.WizardEvent{
		RequestID:  "req-1",
		SessionID:  "sess-1",
		RecordID:   "2",
		Kind:       "step-completed",
		Step:       "validation",
		OccurredAt: time.Date(2024, 5, 1, 11, 59, 0, 0, time.UTC),
	}
}

func TestActivityService_RecordWizardEvent(t *testing.T) {
	srv, activityRepo := createTestActivityService(t)

	activityRepo.EXPECT().
		RecordActivity(mock.Anything, mock.MatchedBy(func(a *entity.Activity) bool {
			return a.MessageID == "m1" && a.RecordID == "2" && a.Step == "validation" &&
				a.ReceivedAt.Equal(time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC))
		})).
		Return(true, nil)

	recorded, err := srv.RecordWizardEvent(context.Background(), "m1", stepEvent())

	require.NoError(t, err)
	assert.True(t, recorded)
}

func TestActivityService_RecordWizardEvent_Duplicate(t *testing.T) {
	srv, activityRepo := createTestActivityService(t)

	activityRepo.EXPECT().RecordActivity(mock.Anything, mock.Anything).Return(false, nil)

	recorded, err := srv.RecordWizardEvent(context.Background(), "m1", stepEvent())

	require.NoError(t, err)
	assert.False(t, recorded)
}

func TestActivityService_RecordWizardEvent_Invalid(t *testing.T) {
	srv, _ := createTestActivityService(t)

	unknownKind := stepEvent()
	unknownKind.Kind = "teleported"
	noRecord := stepEvent()
	noRecord.RecordID = ""

	tests := []struct {
		name      string
		messageID string
		event     *service.WizardEvent
	}{
		{name: "nil event", messageID: "m1", event: nil},
		{name: "no message id", messageID: "", event: stepEvent()},
		{name: "no record", messageID: "m1", event: noRecord},
		{name: "unknown kind", messageID: "m1", event: unknownKind},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := srv.RecordWizardEvent(context.Background(), tt.messageID, tt.event)

			appErr, ok := errors.AsType[domainerrors.AppError](err)
			require.True(t, ok)
			assert.Equal(t, "INVALID_WIZARD_EVENT", appErr.ErrorCode())
		})
	}
}

func TestActivityService_RecordWizardEvent_StoreFailure(t *testing.T) {
	srv, activityRepo := createTestActivityService(t)

	activityRepo.EXPECT().RecordActivity(mock.Anything, mock.Anything).Return(false, errors.New("disk full"))

	_, err := srv.RecordWizardEvent(context.Background(), "m1", stepEvent())

	appErr, ok := errors.AsType[domainerrors.AppError](err)
	require.True(t, ok)
	assert.Equal(t, 503, appErr.HTTPCode())
}

func TestActivityService_RecentActivity(t *testing.T) {
	srv, activityRepo := createTestActivityService(t)

	activityRepo.EXPECT().
		ListActivity(mock.Anything, repository.ActivityFilter{RecordID: "2", Limit: defaultActivityLimit}).
		Return([]*entity.Activity{
			{MessageID: "m3", RecordID: "2", Kind: "wizard-completed"},
			{MessageID: "m2", RecordID: "2", Kind: "step-completed"},
			{MessageID: "m1", RecordID: "2", Kind: "step-completed"},
		}, nil)

	feed, err := srv.RecentActivity(context.Background(), usecase.ActivityQuery{RecordID: "2"})

	require.NoError(t, err)
	assert.Len(t, feed.Items, 3)
	assert.Equal(t, map[string]int{"step-completed": 2, "wizard-completed": 1}, feed.Counts)
}

func TestActivityService_RecentActivity_ClampsLimit(t *testing.T) {
	srv, activityRepo := createTestActivityService(t)

	activityRepo.EXPECT().
		ListActivity(mock.Anything, repository.ActivityFilter{Limit: maxActivityLimit}).
		Return(nil, nil)

	feed, err := srv.RecentActivity(context.Background(), usecase.ActivityQuery{Limit: 10_000})

	require.NoError(t, err)
	assert.Empty(t, feed.Items)
	assert.Empty(t, feed.Counts)
}
