// Package geocoding resolves address text to coordinates with a Nominatim
// search endpoint and an ordered offline fallback table.
package geocoding

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"doorstep/internal/domain/entity"
	"doorstep/internal/errors"
)

// ErrNoResult is returned when the service answered with an empty list.
var ErrNoResult = errors.New("geocoding returned no result")

// maxResponseBytes caps how much of a search response is read.
const maxResponseBytes = 1 << 20

// NominatimClient performs the single search GET against a Nominatim
// compatible endpoint.
type NominatimClient struct {
	endpoint   string
	userAgent  string
	httpClient *http.Client
}

type searchResult struct {
	Lat         string `json:"lat"`
	Lon         string `json:"lon"`
	DisplayName string `json:"display_name"`
}

// NewNominatimClient creates a client. The timeout bounds each request.
func NewNominatimClient(endpoint, userAgent string, timeout time.Duration) *NominatimClient {
	return &NominatimClient{
		endpoint:  endpoint,
		userAgent: userAgent,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// Search returns the coordinates of the best match for address.
func (c *NominatimClient) Search(ctx context.Context, address string) (*entity.LatLng, error) {
	endpoint, err := url.Parse(c.endpoint)
	if err != nil {
		return nil, errors.Wrap(err, "parse geocoding endpoint")
	}
	query := endpoint.Query()
	query.Set("format", "json")
	query.Set("q", address)
	query.Set("limit", "1")
	endpoint.RawQuery = query.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), nil)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, errors.Errorf("geocoding returned status %d", resp.StatusCode)
	}

	var results []searchResult
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxResponseBytes)).Decode(&results); err != nil {
		return nil, errors.Wrap(err, "decode geocoding response")
	}
	if len(results) == 0 {
		return nil, ErrNoResult
	}

	lat, err := strconv.ParseFloat(results[0].Lat, 64)
	if err != nil {
		return nil, errors.Wrapf(err, "parse latitude %q", results[0].Lat)
	}
	lng, err := strconv.ParseFloat(results[0].Lon, 64)
	if err != nil {
		return nil, errors.Wrapf(err, "parse longitude %q", results[0].Lon)
	}

	position := entity.LatLng{Lat: lat, Lng: lng}
	if !position.Valid() {
		return nil, errors.Errorf("geocoding returned invalid coordinates %q, %q", results[0].Lat, results[0].Lon)
	}

	return &position, nil
}
