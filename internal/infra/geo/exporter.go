// Package geo renders address records as GeoJSON for the map panels.
package geo

import (
	"math"

	"doorstep/internal/domain/entity"
	"doorstep/internal/domain/service"

	"github.com/golang/geo/s2"
	orbgeo "github.com/paulmach/orb/geo"
	"github.com/paulmach/orb/geojson"
)

const (
	// EarthRadiusMeters is the mean earth radius used for distances.
	EarthRadiusMeters = 6371000.0

	// parkingOffsetDegrees places an unknown parking spot next to the door.
	parkingOffsetDegrees = 0.0005
)

// Feature kinds written to the "kind" property.
const (
	KindGeocode = "geocode"
	KindDoor    = "door"
	KindParking = "parking"
	KindPath    = "path"
)

type exporter struct{}

// NewExporter creates the GeoJSON exporter.
func NewExporter() service.GeoExporter {
	return exporter{}
}

// FeatureCollection returns geocode, door, parking and path features in that
// order, with the collection bbox covering all of them.
func (exporter) FeatureCollection(rec *entity.AddressRecord) *geojson.FeatureCollection {
	fc := geojson.NewFeatureCollection()
	if rec == nil {
		return fc
	}

	fc.ExtraMembers = geojson.Properties{
		"record_id":       rec.ID,
		"wizard_status":   rec.WizardStatus.String(),
		"steps_completed": rec.StepsCompleted,
	}

	if rec.Coordinates != nil {
		f := geojson.NewFeature(rec.Coordinates.Point())
		f.Properties["kind"] = KindGeocode
		f.Properties["address"] = rec.LookupAddress()
		fc.Append(f)
	}

	if rec.DoorPosition != nil {
		f := geojson.NewFeature(rec.DoorPosition.Point())
		f.Properties["kind"] = KindDoor
		if rec.HasElevator != nil {
			f.Properties["has_elevator"] = *rec.HasElevator
		}
		if rec.Coordinates != nil {
			f.Properties["offset_m"] = round(Distance(*rec.Coordinates, *rec.DoorPosition))
		}
		fc.Append(f)
	}

	if parking, approximate := parkingPoint(rec); parking != nil {
		f := geojson.NewFeature(parking.Point())
		f.Properties["kind"] = KindParking
		f.Properties["approximate"] = approximate
		fc.Append(f)
	}

	for _, s := range rec.PathScenarios() {
		path := rec.ScenarioPaths[s]
		if len(path) == 0 {
			continue
		}
		line := entity.LineString(path)
		f := geojson.NewFeature(line)
		f.Properties["kind"] = KindPath
		f.Properties["scenario"] = string(s)
		f.Properties["points"] = len(path)
		f.Properties["length_m"] = round(orbgeo.LengthHaversine(line))
		fc.Append(f)
	}

	if len(fc.Features) > 0 {
		bound := fc.Features[0].Geometry.Bound()
		for _, f := range fc.Features[1:] {
			bound = bound.Union(f.Geometry.Bound())
		}
		fc.BBox = geojson.NewBBox(bound)
	}

	return fc
}

// parkingPoint returns the recorded parking position, or a point next to the
// door when the step is done but no position was captured.
func parkingPoint(rec *entity.AddressRecord) (*entity.LatLng, bool) {
	if rec.ParkingPosition != nil {
		p := *rec.ParkingPosition

		return &p, false
	}
	if rec.ParkingSpotSet && rec.DoorPosition != nil {
		return &entity.LatLng{
			Lat: rec.DoorPosition.Lat + parkingOffsetDegrees,
			Lng: rec.DoorPosition.Lng + parkingOffsetDegrees,
		}, true
	}

	return nil, false
}

// Distance returns the great-circle distance between two points in meters.
func Distance(a, b entity.LatLng) float64 {
	return s2.LatLngFromDegrees(a.Lat, a.Lng).Distance(s2.LatLngFromDegrees(b.Lat, b.Lng)).Radians() * EarthRadiusMeters
}

func round(meters float64) float64 {
	return math.Round(meters*10) / 10
}
