// Package entity contains the core business objects of the project.
package entity

import (
	"maps"
	"slices"
)

// AddressRecord is one street address under review by the wizard.
// WizardStatus and StepsCompleted are a derived cache: only the record store
// writes them, from the progress deriver, in the same update as the mutation.
type AddressRecord struct {
	ID                string                `json:"id"`                          // Stable identifier for the record's lifetime.
	GivenAddress      string                `json:"given_address"`               // Free text as originally supplied. Never modified.
	SelectedAddress   *string               `json:"selected_address,omitempty"`  // Candidate chosen in the validation step.
	ValidatedAddress  *string               `json:"validated_address,omitempty"` // Confirmed address text.
	Coordinates       *LatLng               `json:"coordinates,omitempty"`       // Cached geocoding result.
	DoorPosition      *LatLng               `json:"door_position,omitempty"`     // User-placed entrance point.
	HasElevator       *bool                 `json:"has_elevator,omitempty"`      // Answered when the door is confirmed.
	SelectedScenarios []Scenario            `json:"selected_scenarios"`          // Scenarios the user opted into. Informational only.
	ScenarioPaths     map[Scenario][]LatLng `json:"scenario_paths,omitempty"`    // Door-anchored path per scenario.
	ParkingSpotSet    bool                  `json:"parking_spot_set"`            // Parking step done.
	ParkingPosition   *LatLng               `json:"parking_position,omitempty"`  // Where the parking spot was placed.
	WizardStatus      WizardStatus          `json:"wizard_status"`
	StepsCompleted    int                   `json:"steps_completed"`
}

// IsValidated reports whether the validation step has a value.
func (r *AddressRecord) IsValidated() bool {
	return nonEmpty(r.ValidatedAddress) || nonEmpty(r.SelectedAddress)
}

// HasPath reports whether the scenario has a non-empty path.
func (r *AddressRecord) HasPath(s Scenario) bool {
	return len(r.ScenarioPaths[s]) > 0
}

// LookupAddress returns the text that should be geocoded for the record,
// preferring the validated text, then the selected one, then the given one.
func (r *AddressRecord) LookupAddress() string {
	if nonEmpty(r.ValidatedAddress) {
		return *r.ValidatedAddress
	}
	if nonEmpty(r.SelectedAddress) {
		return *r.SelectedAddress
	}

	return r.GivenAddress
}

// Clone returns a deep copy so a stored record is never shared with callers.
func (r *AddressRecord) Clone() *AddressRecord {
	if r == nil {
		return nil
	}

	c := *r
	c.SelectedAddress = clonePtr(r.SelectedAddress)
	c.ValidatedAddress = clonePtr(r.ValidatedAddress)
	c.Coordinates = clonePtr(r.Coordinates)
	c.DoorPosition = clonePtr(r.DoorPosition)
	c.HasElevator = clonePtr(r.HasElevator)
	c.ParkingPosition = clonePtr(r.ParkingPosition)
	c.SelectedScenarios = slices.Clone(r.SelectedScenarios)
	if r.ScenarioPaths != nil {
		c.ScenarioPaths = make(map[Scenario][]LatLng, len(r.ScenarioPaths))
		for s, path := range r.ScenarioPaths {
			c.ScenarioPaths[s] = slices.Clone(path)
		}
	}

	return &c
}

// PathScenarios returns the scenarios that currently carry a path, sorted.
func (r *AddressRecord) PathScenarios() []Scenario {
	return slices.Sorted(maps.Keys(r.ScenarioPaths))
}

func nonEmpty(s *string) bool {
	return s != nil && *s != ""
}

func clonePtr[T any](p *T) *T {
	if p == nil {
		return nil
	}
	v := *p

	return &v
}
