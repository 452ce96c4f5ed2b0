package usecase

import (
	"context"

	"doorstep/internal/domain/entity"
	"doorstep/internal/domain/wizard"

	"github.com/google/uuid"
)

// SessionView is everything a client needs to render the wizard.
type SessionView struct {
	Session     *entity.Session       `json:"session"`
	Record      *entity.AddressRecord `json:"record,omitempty"` // Nil while the list view is shown.
	Progress    *wizard.Progress      `json:"progress,omitempty"`
	Label       string                `json:"label,omitempty"`
	Gate        *wizard.Gate          `json:"gate,omitempty"`
	ClickIntent wizard.ClickIntent    `json:"click_intent"`
	Position    int                   `json:"position,omitempty"` // 1-based index of the record, for "n of total".
	Total       int                   `json:"total"`
}

// DispatchResult is the view after an event and the signals it raised.
// Signals are delivered exactly once.
type DispatchResult struct {
	View    *SessionView    `json:"view"`
	Signals []wizard.Signal `json:"signals"`
	Ignored bool            `json:"ignored"`
}

// WizardUsecase defines the interface for driving wizard sessions
type WizardUsecase interface {
	// StartSession creates a session showing the list view
	StartSession(ctx context.Context) (*SessionView, error)

	// GetSession returns the current view of a session
	GetSession(ctx context.Context, id uuid.UUID) (*SessionView, error)

	// Dispatch runs one event through the reducer and applies its effects
	Dispatch(ctx context.Context, id uuid.UUID, ev wizard.Event) (*DispatchResult, error)

	// Navigate selects the previous or next record, wrapping around
	Navigate(ctx context.Context, id uuid.UUID, dir wizard.Direction) (*DispatchResult, error)

	// Shutdown cancels pending lookups and waits for them to finish
	Shutdown(ctx context.Context) error
}
