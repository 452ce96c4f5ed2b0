// Package constants holds string constants shared across layers.
package constants

const (
	// EnvDevelop is the env value used for local development.
	EnvDevelop = "develop"

	// PubSubProviderLocal pushes events to a local HTTP endpoint.
	PubSubProviderLocal = "local"
	// PubSubProviderGoogle publishes events to Google Cloud Pub/Sub.
	PubSubProviderGoogle = "google"

	// GeocodeSourceNominatim marks coordinates returned by the geocoding service.
	GeocodeSourceNominatim = "nominatim"
	// GeocodeSourceFallback marks coordinates taken from the static fallback table.
	GeocodeSourceFallback = "fallback"
	// GeocodeSourceNone marks a lookup that produced nothing.
	GeocodeSourceNone = "none"
)
