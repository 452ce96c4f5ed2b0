// Package service declares the ports the usecases need from infrastructure.
package service

import (
	"context"

	"doorstep/internal/domain/entity"
)

// GeocodeResult is the outcome of resolving an address.
type GeocodeResult struct {
	Position *entity.LatLng `json:"position,omitempty"` // Nil when nothing matched.
	Source   string         `json:"source"`             // One of the constants.GeocodeSource values.
}

// Geocoder resolves free-text addresses to coordinates.
type Geocoder interface {
	// Resolve never fails. Lookup errors are logged and answered from the
	// fallback table.
	Resolve(ctx context.Context, address string) GeocodeResult
}
