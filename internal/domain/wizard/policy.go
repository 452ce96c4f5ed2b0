// Package wizard holds the pure logic of the four-step address wizard:
// progress derivation, step gating, map click resolution and the session
// reducer. Nothing in this package performs I/O or reads the clock.
package wizard

import (
	"slices"

	"doorstep/internal/domain/entity"
	"doorstep/internal/errors"
)

// Step is one of the fixed, ordered wizard steps.
type Step int

const (
	StepNone Step = iota
	StepValidation
	StepDoor
	StepPaths
	StepParking
)

// Steps lists the wizard steps in order.
//
//nolint:gochecknoglobals
var Steps = []Step{StepValidation, StepDoor, StepPaths, StepParking}

func (s Step) String() string {
	switch s {
	case StepValidation:
		return "validation"
	case StepDoor:
		return "place-door"
	case StepPaths:
		return "draw-path"
	case StepParking:
		return "parking-spot"
	default:
		return "none"
	}
}

// MarshalText renders the step by name in JSON payloads.
func (s Step) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText parses a step name. "none" maps to StepNone.
func (s *Step) UnmarshalText(text []byte) error {
	name := string(text)
	for _, step := range append([]Step{StepNone}, Steps...) {
		if step.String() == name {
			*s = step

			return nil
		}
	}

	return errors.Errorf("unknown wizard step %q", name)
}

// Policy carries the knobs of the canonical step set.
type Policy struct {
	// Scenarios is the set of tags that must each have a path for the
	// draw-path step to be complete.
	Scenarios []entity.Scenario
	// AskElevator makes door confirmation wait for the elevator answer.
	AskElevator bool
}

// NewPolicy builds a policy, falling back to the default scenarios.
func NewPolicy(scenarios []entity.Scenario, askElevator bool) Policy {
	if len(scenarios) == 0 {
		scenarios = entity.DefaultScenarios
	}

	return Policy{
		Scenarios:   slices.Clone(scenarios),
		AskElevator: askElevator,
	}
}

// DefaultPolicy is the policy used when nothing is configured.
func DefaultPolicy() Policy {
	return NewPolicy(nil, true)
}

// HasScenario reports whether s is one of the configured scenario tags.
func (p Policy) HasScenario(s entity.Scenario) bool {
	return slices.Contains(p.Scenarios, s)
}

// AllPaths reports whether every configured scenario has a path.
func (p Policy) AllPaths(rec *entity.AddressRecord) bool {
	for _, s := range p.Scenarios {
		if !rec.HasPath(s) {
			return false
		}
	}

	return true
}

// Completed evaluates the completion predicate of a single step.
func (p Policy) Completed(rec *entity.AddressRecord, step Step) bool {
	if rec == nil {
		return false
	}

	switch step {
	case StepValidation:
		return rec.IsValidated()
	case StepDoor:
		return rec.DoorPosition != nil
	case StepPaths:
		return rec.DoorPosition != nil && p.AllPaths(rec)
	case StepParking:
		return rec.ParkingSpotSet
	default:
		return false
	}
}

// Enabled reports whether the step may be worked on.
func (p Policy) Enabled(rec *entity.AddressRecord, step Step) bool {
	if rec == nil {
		return false
	}

	switch step {
	case StepValidation:
		return true
	case StepDoor:
		return p.Completed(rec, StepValidation)
	case StepPaths:
		return rec.DoorPosition != nil
	case StepParking:
		return p.Completed(rec, StepPaths)
	default:
		return false
	}
}
