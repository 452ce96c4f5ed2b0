// Package memory contains the in-process implementation of the persistence
// layer. Records are seeded at start and live for the lifetime of the service.
package memory

import (
	"context"
	"log/slog"

	"doorstep/internal/domain/wizard"

	"go.uber.org/fx"
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Policy wizard.Policy
	Logger *slog.Logger
}

// Store bundles the record and session collections.
type Store struct {
	Addresses *addressRepository
	Sessions  *sessionRepository
}

// New creates the seeded in-memory store.
func New(params Params) *Store {
	store := &Store{
		Addresses: newAddressRepository(SeedRecords(), params.Policy, params.Logger),
		Sessions:  newSessionRepository(),
	}

	params.Append(fx.Hook{
		OnStart: func(context.Context) error {
			params.Logger.Info("In-memory store ready",
				slog.Int("records", store.Addresses.count()),
				slog.Int("scenarios", len(params.Policy.Scenarios)),
			)

			return nil
		},
		OnStop: func(context.Context) error {
			params.Logger.Info("Discarding wizard sessions", slog.Int("sessions", store.Sessions.count()))

			return nil
		},
	})

	return store
}
