package usecase

import (
	"context"

	"doorstep/internal/domain/entity"
	"doorstep/internal/domain/wizard"

	"github.com/paulmach/orb/geojson"
)

// AddressView is a record together with the values derived from it.
type AddressView struct {
	Record   *entity.AddressRecord `json:"record"`
	Progress wizard.Progress       `json:"progress"`
	Label    string                `json:"label"`
	Gate     *wizard.Gate          `json:"gate,omitempty"`
}

// AddressList is the filtered list view and the summary over all records.
type AddressList struct {
	Addresses []*AddressView `json:"addresses"`
	Summary   wizard.Summary `json:"summary"`
}

// Candidate is a suggested validated address.
type Candidate struct {
	Address  string `json:"address"`
	Distance int    `json:"distance"` // Edit distance to the query, 0 without a query.
}

// AddressUsecase defines the interface for reviewing address records
type AddressUsecase interface {
	// ListAddresses returns the records whose given or validated address
	// contains query, ignoring case. The summary always covers every record.
	ListAddresses(ctx context.Context, query string) (*AddressList, error)

	// GetAddress returns one record with its progress and step gate
	GetAddress(ctx context.Context, id string) (*AddressView, error)

	// UpdateAddress merges a partial update into a record. It returns nil
	// without an error when the id is unknown.
	UpdateAddress(ctx context.Context, id string, patch *entity.AddressPatch) (*AddressView, error)

	// ValidationCandidates suggests validated addresses for a record, closest
	// to query first
	ValidationCandidates(ctx context.Context, id, query string) ([]Candidate, error)

	// ExportGeoJSON renders the record as a FeatureCollection
	ExportGeoJSON(ctx context.Context, id string) (*geojson.FeatureCollection, error)

	// GenerateQRCode returns a PNG QR code and the link it encodes
	GenerateQRCode(ctx context.Context, id string) ([]byte, string, error)
}
