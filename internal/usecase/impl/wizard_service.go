package impl

import (
	"context"
	"log/slog"
	"slices"
	"sync"
	"time"

	"doorstep/config"
	deliverycontext "doorstep/internal/delivery/context"
	"doorstep/internal/domain/entity"
	domainerrors "doorstep/internal/domain/errors"
	"doorstep/internal/domain/repository"
	"doorstep/internal/domain/service"
	"doorstep/internal/domain/wizard"
	"doorstep/internal/errors"
	"doorstep/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

const defaultLookupTimeout = 10 * time.Second

// wizardService implements the WizardUsecase interface. It owns the geocoding
// lookups started by the reducer: at most one per session is in flight.
type wizardService struct {
	addressRepo   repository.AddressRepository
	sessionRepo   repository.SessionRepository
	geocoder      service.Geocoder
	publisher     service.EventPublisher
	policy        wizard.Policy
	lookupTimeout time.Duration
	logger        *slog.Logger
	now           func() time.Time

	baseCtx context.Context //nolint:containedctx
	stop    context.CancelFunc
	mu      sync.Mutex
	lookups map[uuid.UUID]*pendingLookup
	wg      sync.WaitGroup
}

type pendingLookup struct {
	cancel context.CancelFunc
}

// WizardServiceParams holds dependencies for WizardService, injected by Fx.
type WizardServiceParams struct {
	fx.In

	Lc          fx.Lifecycle `optional:"true"`
	AddressRepo repository.AddressRepository
	SessionRepo repository.SessionRepository
	Geocoder    service.Geocoder
	Publisher   service.EventPublisher
	Policy      wizard.Policy
	Config      *config.Config `optional:"true"`
	Logger      *slog.Logger
}

// NewWizardService creates a new wizard service instance
func NewWizardService(params WizardServiceParams) usecase.WizardUsecase {
	timeout := defaultLookupTimeout
	if params.Config != nil && params.Config.Geocoding != nil && params.Config.Geocoding.Timeout > 0 {
		timeout = params.Config.Geocoding.Timeout
	}

	baseCtx, stop := context.WithCancel(context.Background())
	srv := &wizardService{
		addressRepo:   params.AddressRepo,
		sessionRepo:   params.SessionRepo,
		geocoder:      params.Geocoder,
		publisher:     params.Publisher,
		policy:        params.Policy,
		lookupTimeout: timeout,
		logger:        params.Logger,
		now:           time.Now,
		baseCtx:       baseCtx,
		stop:          stop,
		lookups:       make(map[uuid.UUID]*pendingLookup),
	}

	if params.Lc != nil {
		params.Lc.Append(fx.Hook{
			OnStop: srv.Shutdown,
		})
	}

	return srv
}

func (srv *wizardService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// StartSession creates a session showing the list view.
func (srv *wizardService) StartSession(ctx context.Context) (*usecase.SessionView, error) {
	sess := entity.NewSession(srv.now())
	if err := srv.sessionRepo.CreateSession(ctx, sess); err != nil {
		return nil, errors.Wrap(err, "failed to create session")
	}

	srv.log(ctx).Info("Wizard session started", slog.String("session_id", sess.ID.String()))

	return srv.buildView(ctx, sess)
}

// GetSession returns the current view of a session.
func (srv *wizardService) GetSession(ctx context.Context, id uuid.UUID) (*usecase.SessionView, error) {
	sess, err := srv.sessionRepo.FindSessionByID(ctx, id)
	if err != nil {
		return nil, sessionError(err, id)
	}

	return srv.buildView(ctx, sess)
}

// Dispatch runs ev through the reducer under the session lock, writes the
// resulting patch to the record store and starts any requested lookup.
// Completion signals come from the store's own before and after records, so
// sessions racing on one record report each transition once.
func (srv *wizardService) Dispatch(ctx context.Context, id uuid.UUID, ev wizard.Event) (*usecase.DispatchResult, error) {
	var (
		transition wizard.Transition
		signals    []wizard.Signal
	)

	sess, err := srv.sessionRepo.UpdateSession(ctx, id, func(current *entity.Session) (*entity.Session, error) {
		rec, err := srv.targetRecord(ctx, wizard.TargetRecordID(current, ev))
		if err != nil {
			return nil, err
		}

		transition = wizard.Reduce(current, rec, ev, srv.policy)
		if transition.Ignored {
			return nil, nil
		}

		signals = transition.Prompts
		if transition.Patch != nil {
			before, after, ok := srv.addressRepo.UpdateAddress(ctx, transition.RecordID, transition.Patch)
			if ok {
				signals = append(wizard.CompletionSignals(before, after, srv.policy), transition.Prompts...)
			} else {
				srv.log(ctx).Warn("Address disappeared during dispatch",
					slog.String("address_id", transition.RecordID),
				)
			}
		}

		if transition.Session.GeocodeToken != current.GeocodeToken {
			srv.cancelLookup(id)
		}
		if transition.Lookup != nil {
			srv.startLookup(ctx, id, *transition.Lookup)
		}

		transition.Session.UpdatedAt = srv.now()

		return transition.Session, nil
	})
	if err != nil {
		return nil, sessionError(err, id)
	}

	if transition.Ignored {
		srv.log(ctx).Debug("Wizard event ignored",
			slog.String("session_id", id.String()),
			slog.String("event", ev.Kind()),
		)
	}

	srv.publishSignals(ctx, id, signals)

	view, err := srv.buildView(ctx, sess)
	if err != nil {
		return nil, err
	}

	if signals == nil {
		signals = []wizard.Signal{}
	}

	return &usecase.DispatchResult{
		View:    view,
		Signals: signals,
		Ignored: transition.Ignored,
	}, nil
}

// Navigate selects the neighbour of the current record.
func (srv *wizardService) Navigate(ctx context.Context, id uuid.UUID, dir wizard.Direction) (*usecase.DispatchResult, error) {
	sess, err := srv.sessionRepo.FindSessionByID(ctx, id)
	if err != nil {
		return nil, sessionError(err, id)
	}
	if sess.SelectedID == "" {
		return nil, domainerrors.ErrNoSelection
	}

	ids, err := srv.recordIDs(ctx)
	if err != nil {
		return nil, err
	}

	next, ok := wizard.Neighbor(ids, sess.SelectedID, dir)
	if !ok {
		return nil, domainerrors.ErrNoSelection.WrapMessage("selected record is gone")
	}

	return srv.Dispatch(ctx, id, wizard.SelectRecord{RecordID: next})
}

// Shutdown cancels every pending lookup and waits for the goroutines.
func (srv *wizardService) Shutdown(ctx context.Context) error {
	srv.stop()

	done := make(chan struct{})
	go func() {
		srv.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return errors.Wrap(ctx.Err(), "waiting for geocoding lookups")
	}
}

func (srv *wizardService) targetRecord(ctx context.Context, id string) (*entity.AddressRecord, error) {
	if id == "" {
		return nil, nil //nolint:nilnil
	}

	rec, err := srv.addressRepo.FindAddressByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrAddressNotFound) {
			return nil, nil //nolint:nilnil
		}

		return nil, errors.Wrap(err, "failed to find address by ID")
	}

	return rec, nil
}

// startLookup resolves req in the background and feeds the result back as a
// GeocodeResolved event. The lookup outlives the request that started it but
// keeps its logger.
func (srv *wizardService) startLookup(ctx context.Context, sessionID uuid.UUID, req wizard.LookupRequest) {
	logger := srv.log(ctx).With(
		slog.String("session_id", sessionID.String()),
		slog.String("address_id", req.RecordID),
	)

	lookupCtx, cancel := context.WithTimeout(srv.baseCtx, srv.lookupTimeout)
	lookupCtx = deliverycontext.Carry(lookupCtx, ctx, logger)

	pending := &pendingLookup{cancel: cancel}
	srv.mu.Lock()
	if prev, ok := srv.lookups[sessionID]; ok {
		prev.cancel()
	}
	srv.lookups[sessionID] = pending
	srv.mu.Unlock()

	srv.wg.Add(1)
	go func() {
		defer srv.wg.Done()
		defer srv.finishLookup(sessionID, pending)

		result := srv.geocoder.Resolve(lookupCtx, req.Address)
		if errors.Is(lookupCtx.Err(), context.Canceled) {
			logger.Debug("Geocoding lookup superseded")

			return
		}

		resolved := wizard.GeocodeResolved{
			RecordID: req.RecordID,
			Token:    req.Token,
			Position: result.Position,
			Source:   result.Source,
		}
		if _, err := srv.Dispatch(context.WithoutCancel(lookupCtx), sessionID, resolved); err != nil {
			logger.Warn("Failed to apply geocoding result", slog.Any("error", err))

			return
		}

		logger.Debug("Geocoding lookup applied", slog.String("source", result.Source))
	}()
}

func (srv *wizardService) cancelLookup(sessionID uuid.UUID) {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	if prev, ok := srv.lookups[sessionID]; ok {
		prev.cancel()
		delete(srv.lookups, sessionID)
	}
}

func (srv *wizardService) finishLookup(sessionID uuid.UUID, pending *pendingLookup) {
	srv.mu.Lock()
	if srv.lookups[sessionID] == pending {
		delete(srv.lookups, sessionID)
	}
	srv.mu.Unlock()

	pending.cancel()
}

// publishSignals forwards reducer signals to the event publisher. Publishing
// is best effort; failures are logged.
func (srv *wizardService) publishSignals(ctx context.Context, sessionID uuid.UUID, signals []wizard.Signal) {
	for _, sig := range signals {
		event := &service.WizardEvent{
			RequestID:  deliverycontext.GetRequestIDFromContext(ctx),
			SessionID:  sessionID.String(),
			RecordID:   sig.RecordID,
			Kind:       string(sig.Kind),
			Scenario:   string(sig.Scenario),
			OccurredAt: srv.now(),
		}
		if sig.Step != wizard.StepNone {
			event.Step = sig.Step.String()
		}

		if err := srv.publisher.PublishWizardEvent(ctx, event); err != nil {
			srv.log(ctx).Warn("Failed to publish wizard event",
				slog.String("kind", event.Kind),
				slog.String("address_id", event.RecordID),
				slog.Any("error", err),
			)
		}
	}
}

func (srv *wizardService) recordIDs(ctx context.Context) ([]string, error) {
	records, err := srv.addressRepo.ListAddresses(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list addresses")
	}

	ids := make([]string, 0, len(records))
	for _, rec := range records {
		ids = append(ids, rec.ID)
	}

	return ids, nil
}

func (srv *wizardService) buildView(ctx context.Context, sess *entity.Session) (*usecase.SessionView, error) {
	ids, err := srv.recordIDs(ctx)
	if err != nil {
		return nil, err
	}

	view := &usecase.SessionView{
		Session: sess,
		Total:   len(ids),
	}
	if sess.SelectedID == "" {
		return view, nil
	}

	rec, err := srv.targetRecord(ctx, sess.SelectedID)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return view, nil
	}

	progress := wizard.Derive(rec, srv.policy)
	gate := wizard.Evaluate(rec, wizard.FlagsOf(sess), srv.policy)
	view.Record = rec
	view.Progress = &progress
	view.Label = progress.Label()
	view.Gate = &gate
	view.ClickIntent = wizard.ResolveClick(rec, sess, srv.policy)
	view.Position = slices.Index(ids, rec.ID) + 1

	return view, nil
}

func sessionError(err error, id uuid.UUID) error {
	if errors.Is(err, repository.ErrSessionNotFound) {
		return domainerrors.ErrSessionNotFound.WrapMessage("session " + id.String())
	}

	return errors.Wrap(err, "failed to update session")
}
