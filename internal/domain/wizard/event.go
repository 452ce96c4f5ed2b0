package wizard

import (
	"doorstep/internal/domain/entity"
)

// Event is an input to Reduce.
type Event interface {
	Kind() string
}

// Event kinds, as accepted on the wire.
const (
	KindSelectRecord            = "select-record"
	KindBackToList              = "back-to-list"
	KindSetSearch               = "set-search"
	KindFocusValidation         = "focus-validation"
	KindChooseAddress           = "choose-address"
	KindToggleDoorEdit          = "toggle-door-edit"
	KindMapClick                = "map-click"
	KindMoveDoor                = "move-door"
	KindConfirmDoor             = "confirm-door"
	KindAnswerElevator          = "answer-elevator"
	KindCancelDoor              = "cancel-door"
	KindSelectScenario          = "select-scenario"
	KindUndoPathPoint           = "undo-path-point"
	KindFinishPath              = "finish-path"
	KindToggleScenarioSelection = "toggle-scenario-selection"
	KindGeocodeResolved         = "geocode-resolved"
)

type (
	// SelectRecord opens a record in the wizard.
	SelectRecord struct{ RecordID string }
	// BackToList closes the wizard.
	BackToList struct{}
	// SetSearch filters the address list.
	SetSearch struct{ Query string }
	// FocusValidation tracks focus on the validation input.
	FocusValidation struct{ Focused bool }
	// ChooseAddress picks a validation candidate. Empty clears the choice.
	ChooseAddress struct{ Address string }
	// ToggleDoorEdit enters or leaves door-edit mode.
	ToggleDoorEdit struct{}
	// MapClick is a click on one of the map panels.
	MapClick struct {
		Point entity.LatLng
		Panel entity.MapPanel
	}
	// MoveDoor is the end of a drag of the pending door marker.
	MoveDoor struct{ Point entity.LatLng }
	// ConfirmDoor accepts the pending door position.
	ConfirmDoor struct{}
	// AnswerElevator answers the elevator question and finalizes the door.
	AnswerElevator struct{ HasElevator bool }
	// CancelDoor discards the pending door position.
	CancelDoor struct{}
	// SelectScenario starts (or stops) drawing the path of a scenario.
	SelectScenario struct{ Scenario entity.Scenario }
	// UndoPathPoint removes the last drawn point.
	UndoPathPoint struct{}
	// FinishPath records the drawn path on the record.
	FinishPath struct{}
	// ToggleScenarioSelection flips a scenario in the record's selection list.
	ToggleScenarioSelection struct{ Scenario entity.Scenario }
	// GeocodeResolved delivers a lookup result requested for RecordID.
	// Source names where Position came from and is shown on the session.
	GeocodeResolved struct {
		RecordID string
		Token    uint64
		Position *entity.LatLng
		Source   string
	}
)

func (SelectRecord) Kind() string            { return KindSelectRecord }
func (BackToList) Kind() string              { return KindBackToList }
func (SetSearch) Kind() string               { return KindSetSearch }
func (FocusValidation) Kind() string         { return KindFocusValidation }
func (ChooseAddress) Kind() string           { return KindChooseAddress }
func (ToggleDoorEdit) Kind() string          { return KindToggleDoorEdit }
func (MapClick) Kind() string                { return KindMapClick }
func (MoveDoor) Kind() string                { return KindMoveDoor }
func (ConfirmDoor) Kind() string             { return KindConfirmDoor }
func (AnswerElevator) Kind() string          { return KindAnswerElevator }
func (CancelDoor) Kind() string              { return KindCancelDoor }
func (SelectScenario) Kind() string          { return KindSelectScenario }
func (UndoPathPoint) Kind() string           { return KindUndoPathPoint }
func (FinishPath) Kind() string              { return KindFinishPath }
func (ToggleScenarioSelection) Kind() string { return KindToggleScenarioSelection }
func (GeocodeResolved) Kind() string         { return KindGeocodeResolved }

// TargetRecordID returns the id of the record an event operates on.
func TargetRecordID(sess *entity.Session, ev Event) string {
	switch e := ev.(type) {
	case SelectRecord:
		return e.RecordID
	case GeocodeResolved:
		return e.RecordID
	default:
		if sess == nil {
			return ""
		}

		return sess.SelectedID
	}
}
