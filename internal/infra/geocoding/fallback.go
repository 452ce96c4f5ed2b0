package geocoding

import (
	"strings"

	"doorstep/config"
	"doorstep/internal/domain/entity"
)

type fallbackEntry struct {
	match    string
	position entity.LatLng
}

// FallbackTable answers lookups offline. Entries are tried in order with a
// case-sensitive substring match.
type FallbackTable struct {
	entries []fallbackEntry
	def     *entity.LatLng
}

// NewFallbackTable builds a table from configuration. A nil def means an
// unmatched address yields no coordinates.
func NewFallbackTable(entries []config.FallbackEntry, def *config.Coordinate) *FallbackTable {
	table := &FallbackTable{entries: make([]fallbackEntry, 0, len(entries))}
	for _, e := range entries {
		if e.Match == "" {
			continue
		}
		table.entries = append(table.entries, fallbackEntry{
			match:    e.Match,
			position: entity.LatLng{Lat: e.Lat, Lng: e.Lng},
		})
	}
	if def != nil {
		table.def = &entity.LatLng{Lat: def.Lat, Lng: def.Lng}
	}

	return table
}

// Lookup returns the first matching entry, else the default.
func (t *FallbackTable) Lookup(address string) *entity.LatLng {
	for _, e := range t.entries {
		if strings.Contains(address, e.match) {
			position := e.position

			return &position
		}
	}
	if t.def == nil {
		return nil
	}
	def := *t.def

	return &def
}
