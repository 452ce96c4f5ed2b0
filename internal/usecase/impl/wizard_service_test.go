package impl

import (
	"context"
	"testing"
	"time"

	"doorstep/config"
	"doorstep/internal/domain/constants"
	"doorstep/internal/domain/entity"
	domainerrors "doorstep/internal/domain/errors"
	"doorstep/internal/domain/repository"
	"doorstep/internal/domain/service"
	"doorstep/internal/domain/wizard"
	"doorstep/internal/errors"
	"doorstep/internal/infra/persistence/memory"
	mockService "doorstep/internal/mocks/service"
	"doorstep/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

const (
	losAngeles = "456 Oak Ave, Los Angeles, CA 90001"
	chicago    = "789 Pine Road, Chicago, IL 60601"
	houston    = "321 Elm Street, Houston, TX 77001"
)

// wizardServiceFixtures runs the wizard service against the seeded in-memory
// store with a mocked geocoder and publisher.
type wizardServiceFixtures struct {
	service   usecase.WizardUsecase
	addresses repository.AddressRepository
	sessions  repository.SessionRepository
	geocoder  *mockService.MockGeocoder
	publisher *mockService.MockEventPublisher
}

func createTestWizardService(t *testing.T, cfg *config.Config) wizardServiceFixtures {
	logger := newDiscardLogger()
	policy := wizard.DefaultPolicy()
	store := memory.New(memory.Params{
		Lifecycle: fxtest.NewLifecycle(t),
		Policy:    policy,
		Logger:    logger,
	})

	fixtures := wizardServiceFixtures{
		addresses: memory.NewAddressRepository(store),
		sessions:  memory.NewSessionRepository(store),
		geocoder:  mockService.NewMockGeocoder(t),
		publisher: mockService.NewMockEventPublisher(t),
	}
	fixtures.service = NewWizardService(WizardServiceParams{
		AddressRepo: fixtures.addresses,
		SessionRepo: fixtures.sessions,
		Geocoder:    fixtures.geocoder,
		Publisher:   fixtures.publisher,
		Policy:      policy,
		Config:      cfg,
		Logger:      logger,
	})

	// Runs before the mock expectation checks registered above.
	t.Cleanup(func() {
		_ = fixtures.service.Shutdown(context.Background())
	})

	return fixtures
}

func (f wizardServiceFixtures) start(t *testing.T) uuid.UUID {
	t.Helper()

	view, err := f.service.StartSession(context.Background())
	require.NoError(t, err)

	return view.Session.ID
}

func (f wizardServiceFixtures) dispatch(t *testing.T, id uuid.UUID, ev wizard.Event) *usecase.DispatchResult {
	t.Helper()

	res, err := f.service.Dispatch(context.Background(), id, ev)
	require.NoError(t, err)

	return res
}

// waitForLookup blocks until the session has no geocoding in flight.
func (f wizardServiceFixtures) waitForLookup(t *testing.T, id uuid.UUID) *entity.Session {
	t.Helper()

	var sess *entity.Session
	require.Eventually(t, func() bool {
		var err error
		sess, err = f.sessions.FindSessionByID(context.Background(), id)

		return err == nil && !sess.Geocoding
	}, time.Second, 5*time.Millisecond)

	return sess
}

func (f wizardServiceFixtures) ignoreLookups() {
	f.geocoder.EXPECT().Resolve(mock.Anything, mock.Anything).
		Return(service.GeocodeResult{Source: constants.GeocodeSourceNone}).Maybe()
}

func TestWizardService_StartSession(t *testing.T) {
	f := createTestWizardService(t, nil)

	view, err := f.service.StartSession(context.Background())
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, view.Session.ID)
	assert.Empty(t, view.Session.SelectedID)
	assert.Nil(t, view.Record)
	assert.Equal(t, 4, view.Total)
	assert.Equal(t, wizard.IntentNone, view.ClickIntent)

	got, err := f.service.GetSession(context.Background(), view.Session.ID)
	require.NoError(t, err)
	assert.Equal(t, view.Session.ID, got.Session.ID)
}

func TestWizardService_UnknownSession(t *testing.T) {
	f := createTestWizardService(t, nil)
	id := uuid.New()

	_, err := f.service.GetSession(context.Background(), id)
	appErr, ok := errors.AsType[domainerrors.AppError](err)
	require.True(t, ok)
	assert.Equal(t, "SESSION_NOT_FOUND", appErr.ErrorCode())

	_, err = f.service.Dispatch(context.Background(), id, wizard.BackToList{})
	appErr, ok = errors.AsType[domainerrors.AppError](err)
	require.True(t, ok)
	assert.Equal(t, "SESSION_NOT_FOUND", appErr.ErrorCode())
}

func TestWizardService_SelectGeocodesAndCaches(t *testing.T) {
	f := createTestWizardService(t, nil)
	ctx := context.Background()
	oslo := entity.LatLng{Lat: 59.9139, Lng: 10.7522}

	f.geocoder.EXPECT().Resolve(mock.Anything, losAngeles).
		Return(service.GeocodeResult{Position: &oslo, Source: constants.GeocodeSourceFallback}).Once()

	id := f.start(t)
	res := f.dispatch(t, id, wizard.SelectRecord{RecordID: "2"})
	assert.False(t, res.Ignored)
	assert.Empty(t, res.Signals)
	assert.Equal(t, "2", res.View.Record.ID)
	assert.Equal(t, 2, res.View.Position)
	assert.Equal(t, wizard.StepValidation, res.View.Gate.Active)

	sess := f.waitForLookup(t, id)
	require.NotNil(t, sess.MapCenter)
	assert.Equal(t, oslo, *sess.MapCenter)
	assert.Equal(t, constants.GeocodeSourceFallback, sess.GeocodeSource)

	rec, err := f.addresses.FindAddressByID(ctx, "2")
	require.NoError(t, err)
	require.NotNil(t, rec.Coordinates)
	assert.Equal(t, oslo, *rec.Coordinates)

	// Cached coordinates skip the second lookup; Once() above would fail otherwise.
	f.dispatch(t, id, wizard.BackToList{})
	res = f.dispatch(t, id, wizard.SelectRecord{RecordID: "2"})
	assert.False(t, res.View.Session.Geocoding)
	assert.Equal(t, oslo, *res.View.Session.MapCenter)
	assert.Empty(t, res.View.Session.GeocodeSource, "cached coordinates need no lookup")
}

func TestWizardService_SupersededLookupIsDropped(t *testing.T) {
	f := createTestWizardService(t, nil)
	ctx := context.Background()
	chicagoPos := entity.LatLng{Lat: 41.8781, Lng: -87.6298}

	f.geocoder.EXPECT().Resolve(mock.Anything, losAngeles).
		RunAndReturn(func(ctx context.Context, _ string) service.GeocodeResult {
			<-ctx.Done()

			return service.GeocodeResult{Position: &entity.LatLng{Lat: 1, Lng: 1}, Source: constants.GeocodeSourceFallback}
		}).Once()
	f.geocoder.EXPECT().Resolve(mock.Anything, chicago).
		Return(service.GeocodeResult{Position: &chicagoPos, Source: constants.GeocodeSourceNominatim}).Once()

	id := f.start(t)
	f.dispatch(t, id, wizard.SelectRecord{RecordID: "2"})
	f.dispatch(t, id, wizard.SelectRecord{RecordID: "3"})

	sess := f.waitForLookup(t, id)
	require.NoError(t, f.service.Shutdown(ctx))

	assert.Equal(t, "3", sess.SelectedID)
	require.NotNil(t, sess.MapCenter)
	assert.Equal(t, chicagoPos, *sess.MapCenter)

	la, err := f.addresses.FindAddressByID(ctx, "2")
	require.NoError(t, err)
	assert.Nil(t, la.Coordinates)
}

func TestWizardService_SlowLookupFallsBackAfterTimeout(t *testing.T) {
	cfg := &config.Config{Geocoding: &config.GeocodingConfig{Timeout: 20 * time.Millisecond}}
	f := createTestWizardService(t, cfg)
	fallback := entity.LatLng{Lat: 59.9139, Lng: 10.7522}

	f.geocoder.EXPECT().Resolve(mock.Anything, losAngeles).
		RunAndReturn(func(ctx context.Context, _ string) service.GeocodeResult {
			<-ctx.Done()

			return service.GeocodeResult{Position: &fallback, Source: constants.GeocodeSourceFallback}
		}).Once()

	id := f.start(t)
	f.dispatch(t, id, wizard.SelectRecord{RecordID: "2"})

	sess := f.waitForLookup(t, id)
	require.NotNil(t, sess.MapCenter)
	assert.Equal(t, fallback, *sess.MapCenter)
}

func TestWizardService_DrawPathPublishesSignal(t *testing.T) {
	f := createTestWizardService(t, nil)
	f.ignoreLookups()

	id := f.start(t)
	f.publisher.EXPECT().
		PublishWizardEvent(mock.Anything, mock.MatchedBy(func(e *service.WizardEvent) bool {
			return e.Kind == string(wizard.SignalScenarioCompleted) &&
				e.Scenario == "Door to taxi" &&
				e.RecordID == "3" &&
				e.SessionID == id.String() &&
				e.Step == ""
		})).
		Return(nil).Once()

	f.dispatch(t, id, wizard.SelectRecord{RecordID: "3"})
	f.waitForLookup(t, id)

	res := f.dispatch(t, id, wizard.SelectScenario{Scenario: "Door to taxi"})
	require.False(t, res.Ignored)
	assert.Equal(t, wizard.IntentAddPathPoint, res.View.ClickIntent)
	assert.Equal(t, wizard.StepPaths, res.View.Gate.Active)

	f.dispatch(t, id, wizard.MapClick{Point: entity.LatLng{Lat: 41.8783, Lng: -87.6296}, Panel: entity.MapPanelSatellite})
	res = f.dispatch(t, id, wizard.FinishPath{})

	require.Len(t, res.Signals, 1)
	assert.Equal(t, wizard.Signal{Kind: wizard.SignalScenarioCompleted, RecordID: "3", Scenario: "Door to taxi"}, res.Signals[0])
	assert.Equal(t, []entity.LatLng{
		{Lat: 41.8781, Lng: -87.6298},
		{Lat: 41.8783, Lng: -87.6296},
	}, res.View.Record.ScenarioPaths["Door to taxi"])
	assert.Equal(t, 2, res.View.Progress.StepsCompleted)
	assert.Empty(t, res.View.Session.ActiveScenario)
}

func TestWizardService_PublishFailureDoesNotFailDispatch(t *testing.T) {
	f := createTestWizardService(t, nil)
	f.ignoreLookups()
	f.publisher.EXPECT().PublishWizardEvent(mock.Anything, mock.Anything).Return(errors.New("topic gone"))

	id := f.start(t)
	f.dispatch(t, id, wizard.SelectRecord{RecordID: "2"})
	f.waitForLookup(t, id)

	res := f.dispatch(t, id, wizard.ChooseAddress{Address: "456 Oak Avenue, Los Angeles, CA 90001"})
	require.NotEmpty(t, res.Signals)
	assert.Equal(t, wizard.Signal{Kind: wizard.SignalStepCompleted, RecordID: "2", Step: wizard.StepValidation}, res.Signals[0])
	assert.Equal(t, entity.WizardStatusInProgress, res.View.Record.WizardStatus)
}

func TestWizardService_IgnoredEvent(t *testing.T) {
	f := createTestWizardService(t, nil)
	f.ignoreLookups()

	id := f.start(t)
	res := f.dispatch(t, id, wizard.ConfirmDoor{})

	assert.True(t, res.Ignored)
	assert.NotNil(t, res.Signals)
	assert.Empty(t, res.Signals)
}

func TestWizardService_Navigate(t *testing.T) {
	f := createTestWizardService(t, nil)
	f.ignoreLookups()
	ctx := context.Background()

	id := f.start(t)

	_, err := f.service.Navigate(ctx, id, wizard.DirectionNext)
	require.ErrorIs(t, err, domainerrors.ErrNoSelection)

	f.dispatch(t, id, wizard.SelectRecord{RecordID: "4"})
	f.waitForLookup(t, id)

	res, err := f.service.Navigate(ctx, id, wizard.DirectionNext)
	require.NoError(t, err)
	assert.Equal(t, "1", res.View.Record.ID)
	assert.Equal(t, 1, res.View.Position)
	assert.Equal(t, 4, res.View.Total)

	f.waitForLookup(t, id)
	res, err = f.service.Navigate(ctx, id, wizard.DirectionPrev)
	require.NoError(t, err)
	assert.Equal(t, "4", res.View.Record.ID)
}

func TestWizardService_LookupCarriesAddressPreference(t *testing.T) {
	f := createTestWizardService(t, nil)

	f.geocoder.EXPECT().Resolve(mock.Anything, houston).
		Return(service.GeocodeResult{Source: constants.GeocodeSourceNone}).Once()

	id := f.start(t)
	f.dispatch(t, id, wizard.SelectRecord{RecordID: "4"})

	sess := f.waitForLookup(t, id)
	assert.Nil(t, sess.MapCenter)
}

// staleAddressRepository serves one record from a snapshot taken earlier, the
// way a session sees a record read just before another session's commit.
type staleAddressRepository struct {
	repository.AddressRepository
	stale *entity.AddressRecord
}

func (r staleAddressRepository) FindAddressByID(ctx context.Context, id string) (*entity.AddressRecord, error) {
	if id == r.stale.ID {
		return r.stale.Clone(), nil
	}

	return r.AddressRepository.FindAddressByID(ctx, id)
}

func TestWizardService_RacingSessionsSignalOnce(t *testing.T) {
	f := createTestWizardService(t, nil)
	f.ignoreLookups()
	ctx := context.Background()

	var published []*service.WizardEvent
	f.publisher.EXPECT().PublishWizardEvent(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, e *service.WizardEvent) error {
			published = append(published, e)

			return nil
		}).Maybe()

	door := entity.LatLng{Lat: 41.8781, Lng: -87.6298}
	scenarios := entity.DefaultScenarios
	last := scenarios[len(scenarios)-1]
	for i, s := range scenarios[:len(scenarios)-1] {
		_, _, ok := f.addresses.UpdateAddress(ctx, "3", &entity.AddressPatch{
			ScenarioPaths: map[entity.Scenario][]entity.LatLng{s: {door, {Lat: 41.879 + float64(i)/1000, Lng: -87.63}}},
		})
		require.True(t, ok)
	}

	first, second := f.start(t), f.start(t)
	for _, id := range []uuid.UUID{first, second} {
		f.dispatch(t, id, wizard.SelectRecord{RecordID: "3"})
		f.waitForLookup(t, id)
		f.dispatch(t, id, wizard.SelectScenario{Scenario: last})
		f.dispatch(t, id, wizard.MapClick{Point: entity.LatLng{Lat: 41.8785, Lng: -87.6292}, Panel: entity.MapPanelSatellite})
	}

	snapshot, err := f.addresses.FindAddressByID(ctx, "3")
	require.NoError(t, err)

	res := f.dispatch(t, first, wizard.FinishPath{})
	assert.Contains(t, res.Signals, wizard.Signal{Kind: wizard.SignalStepCompleted, RecordID: "3", Step: wizard.StepPaths})
	assert.Contains(t, res.Signals, wizard.Signal{Kind: wizard.SignalScenarioCompleted, RecordID: "3", Scenario: last})

	racing := NewWizardService(WizardServiceParams{
		AddressRepo: staleAddressRepository{AddressRepository: f.addresses, stale: snapshot},
		SessionRepo: f.sessions,
		Geocoder:    f.geocoder,
		Publisher:   f.publisher,
		Policy:      wizard.DefaultPolicy(),
		Logger:      newDiscardLogger(),
	})
	t.Cleanup(func() {
		_ = racing.Shutdown(context.Background())
	})

	res, err = racing.Dispatch(ctx, second, wizard.FinishPath{})
	require.NoError(t, err)
	require.False(t, res.Ignored)
	assert.Empty(t, res.Signals, "the path step already completed in the store")

	stepEvents := 0
	for _, e := range published {
		if e.Kind == string(wizard.SignalStepCompleted) && e.Step == wizard.StepPaths.String() {
			stepEvents++
		}
	}
	assert.Equal(t, 1, stepEvents)

	rec, err := f.addresses.FindAddressByID(ctx, "3")
	require.NoError(t, err)
	assert.Len(t, rec.ScenarioPaths, len(scenarios))
}
