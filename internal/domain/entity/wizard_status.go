package entity

// WizardStatus is the derived completion state of an address record.
type WizardStatus string

const (
	// WizardStatusNotStarted means no step is complete.
	WizardStatusNotStarted WizardStatus = "not-started"
	// WizardStatusInProgress means some but not all steps are complete.
	WizardStatusInProgress WizardStatus = "in-progress"
	// WizardStatusCompleted means every step is complete.
	WizardStatusCompleted WizardStatus = "completed"
)

// String returns the string representation of the WizardStatus.
func (s WizardStatus) String() string {
	return string(s)
}

// IsValid checks if the WizardStatus is a valid value.
func (s WizardStatus) IsValid() bool {
	switch s {
	case WizardStatusNotStarted, WizardStatusInProgress, WizardStatusCompleted:
		return true
	default:
		return false
	}
}

// Scenario is a named transport mode/direction that needs a drawn path.
type Scenario string

// DefaultScenarios are the scenario tags used when none are configured.
//
//nolint:gochecknoglobals
var DefaultScenarios = []Scenario{
	"Door to taxi",
	"car/truck to Door",
	"bicycle to Door",
	"ambulance to Door",
}

// MapPanel identifies which of the synchronized map panels received a click.
type MapPanel string

const (
	MapPanelOutline   MapPanel = "outline"
	MapPanelSatellite MapPanel = "satellite"
	MapPanelStreet    MapPanel = "street"
)

// IsValid checks if the MapPanel is a valid value.
func (p MapPanel) IsValid() bool {
	switch p {
	case MapPanelOutline, MapPanelSatellite, MapPanelStreet:
		return true
	default:
		return false
	}
}
