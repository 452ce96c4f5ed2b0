package service

import (
	"context"
	"time"
)

// WizardEvent is a one-shot wizard signal published for downstream consumers.
type WizardEvent struct {
	RequestID  string    `json:"request_id,omitempty"` // For distributed tracing
	SessionID  string    `json:"session_id"`
	RecordID   string    `json:"record_id"`
	Kind       string    `json:"kind"`
	Step       string    `json:"step,omitempty"`
	Scenario   string    `json:"scenario,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishWizardEvent publishes a wizard signal
	PublishWizardEvent(ctx context.Context, event *WizardEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
