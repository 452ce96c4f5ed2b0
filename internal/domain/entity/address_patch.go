package entity

import (
	"slices"
)

// AddressPatch is a partial update of an AddressRecord. Nil fields are left
// untouched. Derived fields are not part of the patch.
type AddressPatch struct {
	SelectedAddress  *string `json:"selected_address,omitempty"`
	ValidatedAddress *string `json:"validated_address,omitempty"`
	// ClearValidation removes both address choices before the other fields apply.
	ClearValidation   bool                  `json:"clear_validation,omitempty"`
	Coordinates       *LatLng               `json:"coordinates,omitempty"`
	DoorPosition      *LatLng               `json:"door_position,omitempty"`
	HasElevator       *bool                 `json:"has_elevator,omitempty"`
	SelectedScenarios []Scenario            `json:"selected_scenarios,omitempty"`
	// ScenarioPaths is merged per scenario. An empty path removes the scenario.
	ScenarioPaths   map[Scenario][]LatLng `json:"scenario_paths,omitempty"`
	ParkingSpotSet  *bool                 `json:"parking_spot_set,omitempty"`
	ParkingPosition *LatLng               `json:"parking_position,omitempty"`
}

// IsEmpty reports whether applying the patch would change nothing.
func (p *AddressPatch) IsEmpty() bool {
	return p == nil || (p.SelectedAddress == nil &&
		p.ValidatedAddress == nil &&
		!p.ClearValidation &&
		p.Coordinates == nil &&
		p.DoorPosition == nil &&
		p.HasElevator == nil &&
		p.SelectedScenarios == nil &&
		p.ScenarioPaths == nil &&
		p.ParkingSpotSet == nil &&
		p.ParkingPosition == nil)
}

// Apply returns a copy of rec with the patch merged in. The receiver record is
// never modified. Paths are anchored at the door and dropped when there is no
// door. Derived fields are copied unchanged; the caller re-derives them.
func (p *AddressPatch) Apply(rec *AddressRecord) *AddressRecord {
	out := rec.Clone()
	if p == nil {
		return out
	}

	if p.ClearValidation {
		out.SelectedAddress = nil
		out.ValidatedAddress = nil
	}
	if p.SelectedAddress != nil {
		out.SelectedAddress = normalizeText(p.SelectedAddress)
	}
	if p.ValidatedAddress != nil {
		out.ValidatedAddress = normalizeText(p.ValidatedAddress)
	}
	if p.Coordinates != nil {
		out.Coordinates = clonePtr(p.Coordinates)
	}
	if p.DoorPosition != nil {
		out.DoorPosition = clonePtr(p.DoorPosition)
	}
	if p.HasElevator != nil {
		out.HasElevator = clonePtr(p.HasElevator)
	}
	if p.SelectedScenarios != nil {
		out.SelectedScenarios = dedupe(p.SelectedScenarios)
	}
	if p.ParkingSpotSet != nil {
		out.ParkingSpotSet = *p.ParkingSpotSet
	}
	if p.ParkingPosition != nil {
		out.ParkingPosition = clonePtr(p.ParkingPosition)
	}

	for s, path := range p.ScenarioPaths {
		if len(path) == 0 {
			delete(out.ScenarioPaths, s)

			continue
		}
		if out.DoorPosition == nil {
			continue
		}
		if out.ScenarioPaths == nil {
			out.ScenarioPaths = make(map[Scenario][]LatLng)
		}
		out.ScenarioPaths[s] = anchorPath(*out.DoorPosition, path)
	}

	if out.DoorPosition == nil || len(out.ScenarioPaths) == 0 {
		out.ScenarioPaths = nil
	}

	return out
}

// anchorPath makes the door the first point of the path.
func anchorPath(door LatLng, path []LatLng) []LatLng {
	if path[0] == door {
		return slices.Clone(path)
	}

	return append([]LatLng{door}, path...)
}

func normalizeText(s *string) *string {
	if *s == "" {
		return nil
	}
	v := *s

	return &v
}

func dedupe(in []Scenario) []Scenario {
	out := make([]Scenario, 0, len(in))
	for _, s := range in {
		if !slices.Contains(out, s) {
			out = append(out, s)
		}
	}

	return out
}
