package entity

import (
	"slices"
	"time"

	"github.com/google/uuid"
)

// Session holds the transient wizard state of one client. It is never
// written onto a record and is discarded when the service stops.
type Session struct {
	ID                uuid.UUID `json:"id"`
	SelectedID        string    `json:"selected_id,omitempty"`     // Empty while the list view is shown.
	ActiveScenario    Scenario  `json:"active_scenario,omitempty"` // Scenario whose path is being drawn.
	EditingDoor       bool      `json:"editing_door"`
	PendingDoor       *LatLng   `json:"pending_door,omitempty"` // Unconfirmed door position.
	AwaitingElevator  bool      `json:"awaiting_elevator"`      // Door confirmed, elevator question open.
	PathBuffer        []LatLng  `json:"path_buffer,omitempty"`  // In-progress path, starts at the door.
	SearchQuery       string    `json:"search_query,omitempty"`
	ValidationFocused bool      `json:"validation_focused"`
	MapCenter         *LatLng   `json:"map_center,omitempty"` // Last resolved coordinates for the selection.
	Geocoding         bool      `json:"geocoding"`
	GeocodeSource     string    `json:"geocode_source,omitempty"` // Origin of MapCenter when a lookup set it.
	GeocodeToken      uint64    `json:"-"` // Bumped on every lookup; stale results carry an older token.
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

// NewSession returns an empty session showing the list view.
func NewSession(now time.Time) *Session {
	return &Session{
		ID:        uuid.New(),
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Clone returns a deep copy of the session.
func (s *Session) Clone() *Session {
	if s == nil {
		return nil
	}

	c := *s
	c.PendingDoor = clonePtr(s.PendingDoor)
	c.MapCenter = clonePtr(s.MapCenter)
	c.PathBuffer = slices.Clone(s.PathBuffer)

	return &c
}

// ResetSelection drops everything tied to the selected record.
func (s *Session) ResetSelection() {
	s.SelectedID = ""
	s.ActiveScenario = ""
	s.EditingDoor = false
	s.PendingDoor = nil
	s.AwaitingElevator = false
	s.PathBuffer = nil
	s.ValidationFocused = false
	s.MapCenter = nil
	s.Geocoding = false
	s.GeocodeSource = ""
}
