package config

import (
	"strings"
	"time"
)

const (
	defaultGeocodingEndpoint  = "https://nominatim.openstreetmap.org/search"
	defaultGeocodingUserAgent = "ManagerDataEntryApp/1.0"
	defaultGeocodingTimeout   = 10 * time.Second
	defaultQRCodeSize         = 256
	defaultQRCodeLevel        = "M"
	defaultWorkerPort         = 8081
	defaultWorkerHistory      = 500
)

// DefaultFallback is the offline lookup table used when none is configured.
func DefaultFallback() []FallbackEntry {
	return []FallbackEntry{
		{Match: "Karl Johans gate", Lat: 59.9139, Lng: 10.7522},
		{Match: "Storgata", Lat: 59.9153, Lng: 10.7525},
		{Match: "Aker Brygge", Lat: 59.9097, Lng: 10.7238},
		{Match: "Frognerveien", Lat: 59.9244, Lng: 10.6996},
		{Match: "Oslo", Lat: 59.9139, Lng: 10.7522},
	}
}

// DefaultCoordinate is central Oslo.
func DefaultCoordinate() Coordinate {
	return Coordinate{Lat: 59.9139, Lng: 10.7522}
}

// applyDefaults fills in every optional section so consumers never nil-check.
func applyDefaults(cfg *Config) {
	if strings.TrimSpace(cfg.HTTP.MaxRequestBodySize) == "" {
		cfg.HTTP.MaxRequestBodySize = defaultMaxRequestBodySize
	}

	if cfg.Geocoding == nil {
		cfg.Geocoding = &GeocodingConfig{Enabled: true}
	}
	geo := cfg.Geocoding
	if geo.Endpoint == "" {
		geo.Endpoint = defaultGeocodingEndpoint
	}
	if geo.UserAgent == "" {
		geo.UserAgent = defaultGeocodingUserAgent
	}
	if geo.Timeout <= 0 {
		geo.Timeout = defaultGeocodingTimeout
	}
	if geo.Fallback == nil {
		geo.Fallback = DefaultFallback()
	}
	if geo.Default == nil && !geo.NoDefault {
		def := DefaultCoordinate()
		geo.Default = &def
	}

	if cfg.Wizard == nil {
		cfg.Wizard = &WizardConfig{}
	}
	if cfg.Wizard.AskElevator == nil {
		ask := true
		cfg.Wizard.AskElevator = &ask
	}

	if cfg.QRCode == nil {
		cfg.QRCode = &QRCodeConfig{}
	}
	if cfg.QRCode.Size <= 0 {
		cfg.QRCode.Size = defaultQRCodeSize
	}
	if cfg.QRCode.ErrorCorrectionLevel == "" {
		cfg.QRCode.ErrorCorrectionLevel = defaultQRCodeLevel
	}

	if cfg.Worker == nil {
		cfg.Worker = &WorkerConfig{}
	}
	if cfg.Worker.Port <= 0 {
		cfg.Worker.Port = defaultWorkerPort
	}
	if cfg.Worker.History <= 0 {
		cfg.Worker.History = defaultWorkerHistory
	}
}
