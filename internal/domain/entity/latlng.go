package entity

import (
	"github.com/paulmach/orb"
)

// LatLng is a WGS84 coordinate in decimal degrees.
type LatLng struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Valid reports whether the coordinate lies within WGS84 bounds. NaN and
// infinite components are out of bounds.
func (p LatLng) Valid() bool {
	return p.Lat >= -90 && p.Lat <= 90 && p.Lng >= -180 && p.Lng <= 180
}

// Point converts the coordinate to an orb point (x = longitude, y = latitude).
func (p LatLng) Point() orb.Point {
	return orb.Point{p.Lng, p.Lat}
}

// LatLngFromPoint is the inverse of LatLng.Point.
func LatLngFromPoint(pt orb.Point) LatLng {
	return LatLng{Lat: pt.Lat(), Lng: pt.Lon()}
}

// LineString converts an ordered path to an orb line string.
func LineString(path []LatLng) orb.LineString {
	ls := make(orb.LineString, 0, len(path))
	for _, p := range path {
		ls = append(ls, p.Point())
	}

	return ls
}
