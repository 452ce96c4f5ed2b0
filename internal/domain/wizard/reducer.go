package wizard

import (
	"slices"

	"doorstep/internal/domain/entity"
)

// LookupRequest asks the caller to geocode Address for RecordID and feed the
// result back as a GeocodeResolved event carrying Token.
type LookupRequest struct {
	RecordID string
	Address  string
	Token    uint64
}

// Transition is the outcome of one reducer step.
type Transition struct {
	Session *entity.Session
	// RecordID is the record Patch applies to.
	RecordID string
	Patch    *entity.AddressPatch
	// Signals holds the completion signals of Patch applied to the record
	// passed to Reduce, followed by Prompts.
	Signals []Signal
	// Prompts are the signals that do not depend on record completion.
	Prompts []Signal
	Lookup  *LookupRequest
	// Ignored is set when the event was not allowed in the current state.
	Ignored bool
}

// Reduce applies ev to the session and the record it targets (see
// TargetRecordID). rec may be nil when the target does not exist. Neither
// argument is modified; the returned session is a fresh copy.
func Reduce(sess *entity.Session, rec *entity.AddressRecord, ev Event, policy Policy) Transition {
	r := reduction{
		sess:   sess.Clone(),
		rec:    rec,
		policy: policy,
	}
	if r.sess == nil {
		r.sess = &entity.Session{}
	}

	r.apply(ev)

	t := Transition{
		Session: r.sess,
		Prompts: r.signals,
		Lookup:  r.lookup,
		Ignored: r.ignored,
	}
	if r.patch.IsEmpty() || rec == nil {
		t.Signals = r.signals

		return t
	}

	t.RecordID = rec.ID
	t.Patch = r.patch
	t.Signals = append(CompletionSignals(rec, r.patch.Apply(rec), policy), r.signals...)

	return t
}

type reduction struct {
	sess    *entity.Session
	rec     *entity.AddressRecord
	policy  Policy
	patch   *entity.AddressPatch
	signals []Signal
	lookup  *LookupRequest
	ignored bool
}

//nolint:cyclop
func (r *reduction) apply(ev Event) {
	switch e := ev.(type) {
	case SelectRecord:
		r.selectRecord()
	case BackToList:
		r.sess.ResetSelection()
		r.sess.GeocodeToken++
	case SetSearch:
		r.sess.SearchQuery = e.Query
	case FocusValidation:
		if !r.selected() {
			r.ignored = true

			return
		}
		r.sess.ValidationFocused = e.Focused
	case ChooseAddress:
		r.chooseAddress(e.Address)
	case ToggleDoorEdit:
		r.toggleDoorEdit()
	case MapClick:
		r.mapClick(e.Point)
	case MoveDoor:
		if !r.selected() || (r.sess.PendingDoor == nil && !r.sess.EditingDoor) || r.sess.AwaitingElevator {
			r.ignored = true

			return
		}
		r.sess.PendingDoor = &e.Point
	case ConfirmDoor:
		r.confirmDoor()
	case AnswerElevator:
		if !r.selected() || !r.sess.AwaitingElevator || r.sess.PendingDoor == nil {
			r.ignored = true

			return
		}
		r.finalizeDoor(&e.HasElevator)
	case CancelDoor:
		r.sess.PendingDoor = nil
		r.sess.AwaitingElevator = false
		r.sess.EditingDoor = false
	case SelectScenario:
		r.selectScenario(e.Scenario)
	case UndoPathPoint:
		if r.sess.ActiveScenario == "" || len(r.sess.PathBuffer) <= 1 {
			r.ignored = true

			return
		}
		r.sess.PathBuffer = r.sess.PathBuffer[:len(r.sess.PathBuffer)-1]
	case FinishPath:
		r.finishPath()
	case ToggleScenarioSelection:
		r.toggleScenarioSelection(e.Scenario)
	case GeocodeResolved:
		r.geocodeResolved(e)
	default:
		r.ignored = true
	}
}

// selected reports whether the session has the target record open.
func (r *reduction) selected() bool {
	return r.rec != nil && r.sess.SelectedID == r.rec.ID
}

func (r *reduction) selectRecord() {
	if r.rec == nil {
		r.ignored = true

		return
	}

	r.sess.ResetSelection()
	r.sess.SelectedID = r.rec.ID
	r.sess.GeocodeToken++

	if r.rec.Coordinates != nil {
		center := *r.rec.Coordinates
		r.sess.MapCenter = &center

		return
	}

	r.sess.Geocoding = true
	r.lookup = &LookupRequest{
		RecordID: r.rec.ID,
		Address:  r.rec.LookupAddress(),
		Token:    r.sess.GeocodeToken,
	}
}

func (r *reduction) chooseAddress(address string) {
	if !r.selected() {
		r.ignored = true

		return
	}

	if address == "" {
		r.patch = &entity.AddressPatch{ClearValidation: true}

		return
	}

	r.patch = &entity.AddressPatch{
		SelectedAddress:  &address,
		ValidatedAddress: &address,
	}
}

func (r *reduction) toggleDoorEdit() {
	if !r.selected() || !r.policy.Enabled(r.rec, StepDoor) {
		r.ignored = true

		return
	}

	if r.sess.EditingDoor {
		r.sess.EditingDoor = false
		r.sess.PendingDoor = nil
		r.sess.AwaitingElevator = false

		return
	}

	r.sess.EditingDoor = true
	r.sess.ActiveScenario = ""
	r.sess.PathBuffer = nil
	r.sess.PendingDoor = r.bestKnownDoor()
}

// bestKnownDoor is the tentative door used when door-edit mode starts.
func (r *reduction) bestKnownDoor() *entity.LatLng {
	for _, p := range []*entity.LatLng{r.rec.DoorPosition, r.sess.MapCenter, r.rec.Coordinates} {
		if p != nil {
			v := *p

			return &v
		}
	}

	return nil
}

func (r *reduction) mapClick(point entity.LatLng) {
	if !r.selected() {
		r.ignored = true

		return
	}

	switch ResolveClick(r.rec, r.sess, r.policy) {
	case IntentPlaceDoor:
		r.sess.PendingDoor = &point
	case IntentAddPathPoint:
		if len(r.sess.PathBuffer) == 0 {
			r.sess.PathBuffer = []entity.LatLng{*r.rec.DoorPosition}
		}
		r.sess.PathBuffer = append(r.sess.PathBuffer, point)
	case IntentSetParking:
		set := true
		r.patch = &entity.AddressPatch{
			ParkingSpotSet:  &set,
			ParkingPosition: &point,
		}
	default:
		r.ignored = true
	}
}

func (r *reduction) confirmDoor() {
	if !r.selected() || r.sess.PendingDoor == nil || r.sess.AwaitingElevator {
		r.ignored = true

		return
	}

	if r.policy.AskElevator {
		r.sess.AwaitingElevator = true
		r.signals = append(r.signals, Signal{Kind: SignalElevatorPrompt, RecordID: r.rec.ID})

		return
	}

	r.finalizeDoor(nil)
}

func (r *reduction) finalizeDoor(hasElevator *bool) {
	door := *r.sess.PendingDoor
	r.patch = &entity.AddressPatch{
		DoorPosition: &door,
		HasElevator:  hasElevator,
	}
	r.sess.PendingDoor = nil
	r.sess.AwaitingElevator = false
	r.sess.EditingDoor = false
}

func (r *reduction) selectScenario(s entity.Scenario) {
	if s == "" || s == r.sess.ActiveScenario {
		if r.sess.ActiveScenario == "" {
			r.ignored = true

			return
		}
		r.sess.ActiveScenario = ""
		r.sess.PathBuffer = nil

		return
	}

	if !r.selected() || !r.policy.HasScenario(s) || !r.policy.Enabled(r.rec, StepPaths) {
		r.ignored = true

		return
	}

	r.sess.EditingDoor = false
	r.sess.PendingDoor = nil
	r.sess.AwaitingElevator = false
	r.sess.ActiveScenario = s
	r.sess.PathBuffer = []entity.LatLng{*r.rec.DoorPosition}
}

func (r *reduction) finishPath() {
	if !r.selected() || r.sess.ActiveScenario == "" || len(r.sess.PathBuffer) < 2 {
		r.ignored = true

		return
	}

	r.patch = &entity.AddressPatch{
		ScenarioPaths: map[entity.Scenario][]entity.LatLng{
			r.sess.ActiveScenario: slices.Clone(r.sess.PathBuffer),
		},
	}
	r.sess.ActiveScenario = ""
	r.sess.PathBuffer = nil
}

func (r *reduction) toggleScenarioSelection(s entity.Scenario) {
	if !r.selected() || !r.policy.HasScenario(s) {
		r.ignored = true

		return
	}

	current := r.rec.SelectedScenarios
	var next []entity.Scenario
	if slices.Contains(current, s) {
		next = slices.DeleteFunc(slices.Clone(current), func(c entity.Scenario) bool { return c == s })
	} else {
		next = append(slices.Clone(current), s)
	}
	if next == nil {
		next = []entity.Scenario{}
	}

	r.patch = &entity.AddressPatch{SelectedScenarios: next}
}

func (r *reduction) geocodeResolved(e GeocodeResolved) {
	current := r.sess.SelectedID == e.RecordID && r.sess.GeocodeToken == e.Token
	if current {
		r.sess.Geocoding = false
		r.sess.GeocodeSource = e.Source
		if e.Position != nil {
			center := *e.Position
			r.sess.MapCenter = &center
		}
	}

	if r.rec == nil || e.Position == nil || r.rec.Coordinates != nil {
		r.ignored = !current

		return
	}

	position := *e.Position
	r.patch = &entity.AddressPatch{Coordinates: &position}
}
