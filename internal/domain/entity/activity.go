package entity

import "time"

// Activity is one wizard event as received by the event worker.
type Activity struct {
	MessageID  string    `json:"message_id"` // Broker message id, unique per delivery attempt chain.
	RequestID  string    `json:"request_id,omitempty"`
	SessionID  string    `json:"session_id,omitempty"`
	RecordID   string    `json:"record_id"`
	Kind       string    `json:"kind"`
	Step       string    `json:"step,omitempty"`
	Scenario   string    `json:"scenario,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
	ReceivedAt time.Time `json:"received_at"`
}
