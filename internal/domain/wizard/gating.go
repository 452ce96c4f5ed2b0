package wizard

import (
	"doorstep/internal/domain/entity"
)

// UIFlags are the transient selections that influence the active step.
type UIFlags struct {
	ActiveScenario    entity.Scenario
	EditingDoor       bool
	ValidationFocused bool
}

// FlagsOf extracts the gating flags from a session.
func FlagsOf(sess *entity.Session) UIFlags {
	if sess == nil {
		return UIFlags{}
	}

	return UIFlags{
		ActiveScenario:    sess.ActiveScenario,
		EditingDoor:       sess.EditingDoor,
		ValidationFocused: sess.ValidationFocused,
	}
}

// StepState is the rendering contract for one step.
type StepState struct {
	Step      Step `json:"step"`
	Enabled   bool `json:"enabled"`
	Completed bool `json:"completed"`
	Active    bool `json:"active"`
}

// ScenarioState is the rendering contract for one scenario row of the
// draw-path step.
type ScenarioState struct {
	Scenario entity.Scenario `json:"scenario"`
	HasPath  bool            `json:"has_path"`
	Active   bool            `json:"active"`
	Enabled  bool            `json:"enabled"`
}

// Gate is the full gating decision for a record.
type Gate struct {
	Active    Step            `json:"active"`
	Steps     []StepState     `json:"steps"`
	Scenarios []ScenarioState `json:"scenarios"`
}

// Step returns the state of a single step.
func (g Gate) Step(step Step) StepState {
	for _, st := range g.Steps {
		if st.Step == step {
			return st
		}
	}

	return StepState{Step: step}
}

// ActiveStep picks the single highlighted step. The first matching rule wins.
func ActiveStep(rec *entity.AddressRecord, ui UIFlags, policy Policy) Step {
	if rec == nil {
		return StepNone
	}

	if !policy.Completed(rec, StepValidation) || ui.ValidationFocused {
		return StepValidation
	}
	if rec.DoorPosition == nil || ui.EditingDoor {
		return StepDoor
	}
	allPaths := policy.AllPaths(rec)
	if ui.ActiveScenario != "" || !allPaths {
		return StepPaths
	}
	if !rec.ParkingSpotSet {
		return StepParking
	}

	return StepNone
}

// Evaluate computes enabled, completed and active state for every step.
func Evaluate(rec *entity.AddressRecord, ui UIFlags, policy Policy) Gate {
	active := ActiveStep(rec, ui, policy)
	gate := Gate{
		Active:    active,
		Steps:     make([]StepState, 0, len(Steps)),
		Scenarios: make([]ScenarioState, 0, len(policy.Scenarios)),
	}

	for _, step := range Steps {
		gate.Steps = append(gate.Steps, StepState{
			Step:      step,
			Enabled:   policy.Enabled(rec, step),
			Completed: policy.Completed(rec, step),
			Active:    step == active,
		})
	}

	pathsEnabled := policy.Enabled(rec, StepPaths)
	for _, s := range policy.Scenarios {
		gate.Scenarios = append(gate.Scenarios, ScenarioState{
			Scenario: s,
			HasPath:  rec != nil && rec.HasPath(s),
			Active:   ui.ActiveScenario == s,
			Enabled:  pathsEnabled,
		})
	}

	return gate
}
