package service

import (
	"doorstep/internal/domain/entity"

	"github.com/paulmach/orb/geojson"
)

// GeoExporter renders an address record as map features.
type GeoExporter interface {
	// FeatureCollection returns the door, parking spot and scenario paths of
	// the record. Missing parts are omitted.
	FeatureCollection(rec *entity.AddressRecord) *geojson.FeatureCollection
}
