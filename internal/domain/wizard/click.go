package wizard

import (
	"doorstep/internal/domain/entity"
	"doorstep/internal/errors"
)

// ClickIntent is what a map click means for the current record and session.
type ClickIntent int

const (
	IntentNone ClickIntent = iota
	IntentPlaceDoor
	IntentAddPathPoint
	IntentSetParking
)

func (i ClickIntent) String() string {
	switch i {
	case IntentPlaceDoor:
		return "place-door"
	case IntentAddPathPoint:
		return "add-path-point"
	case IntentSetParking:
		return "set-parking"
	default:
		return "none"
	}
}

// MarshalText renders the intent by name in JSON payloads.
func (i ClickIntent) MarshalText() ([]byte, error) {
	return []byte(i.String()), nil
}

func (i *ClickIntent) UnmarshalText(text []byte) error {
	for _, intent := range []ClickIntent{IntentNone, IntentPlaceDoor, IntentAddPathPoint, IntentSetParking} {
		if intent.String() == string(text) {
			*i = intent

			return nil
		}
	}

	return errors.Errorf("unknown click intent %q", text)
}

// ResolveClick decides what a click on any of the synchronized map panels
// does. The panel never changes the outcome.
func ResolveClick(rec *entity.AddressRecord, sess *entity.Session, policy Policy) ClickIntent {
	if rec == nil || sess == nil || sess.AwaitingElevator {
		return IntentNone
	}
	if !policy.Enabled(rec, StepDoor) {
		return IntentNone
	}
	if rec.DoorPosition == nil || sess.EditingDoor {
		return IntentPlaceDoor
	}
	if sess.ActiveScenario != "" && policy.HasScenario(sess.ActiveScenario) {
		return IntentAddPathPoint
	}
	if policy.Enabled(rec, StepParking) && !rec.ParkingSpotSet {
		return IntentSetParking
	}

	return IntentNone
}
