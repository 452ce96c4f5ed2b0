package wizard

import (
	"doorstep/internal/domain/entity"
)

// SignalKind names a one-shot notification emitted by the reducer.
type SignalKind string

const (
	// SignalStepCompleted fires once when a step goes from incomplete to complete.
	SignalStepCompleted SignalKind = "step-completed"
	// SignalScenarioCompleted fires once when a scenario path is first recorded.
	SignalScenarioCompleted SignalKind = "scenario-completed"
	// SignalWizardCompleted fires once when the record reaches completed.
	SignalWizardCompleted SignalKind = "wizard-completed"
	// SignalElevatorPrompt asks the view to show the elevator question.
	SignalElevatorPrompt SignalKind = "elevator-prompt"
)

// Signal is an edge-triggered event. It is delivered once and never
// reconstructed from state.
type Signal struct {
	Kind     SignalKind      `json:"kind"`
	RecordID string          `json:"record_id"`
	Step     Step            `json:"step,omitzero"`
	Scenario entity.Scenario `json:"scenario,omitempty"`
}

// CompletionSignals compares the completion predicates before and after a
// mutation and reports every false to true transition.
func CompletionSignals(before, after *entity.AddressRecord, policy Policy) []Signal {
	var signals []Signal

	for _, s := range policy.Scenarios {
		if !before.HasPath(s) && after.HasPath(s) {
			signals = append(signals, Signal{Kind: SignalScenarioCompleted, RecordID: after.ID, Scenario: s})
		}
	}

	for _, step := range Steps {
		if !policy.Completed(before, step) && policy.Completed(after, step) {
			signals = append(signals, Signal{Kind: SignalStepCompleted, RecordID: after.ID, Step: step})
		}
	}

	if Derive(before, policy).Status != entity.WizardStatusCompleted &&
		Derive(after, policy).Status == entity.WizardStatusCompleted {
		signals = append(signals, Signal{Kind: SignalWizardCompleted, RecordID: after.ID})
	}

	return signals
}
