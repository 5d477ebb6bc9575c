package geocode

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/rovira-studio/atelier/internal/models"
)

// Client queries a Nominatim-style geocoding endpoint for the best match of
// a free-text address.
type Client struct {
	Endpoint   string
	UserAgent  string
	httpClient *http.Client
}

// NewClient creates a geocoding client. Nominatim's usage policy requires an
// identifying User-Agent.
func NewClient(endpoint, userAgent string) *Client {
	return &Client{
		Endpoint:  endpoint,
		UserAgent: userAgent,
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
	}
}

// Lookup resolves query to its best-match coordinate. found is false when
// the service returns an empty result set; err covers network and protocol
// failures.
func (c *Client) Lookup(ctx context.Context, query string) (pt models.GeoPoint, found bool, err error) {
	u := fmt.Sprintf("%s?q=%s&format=json&limit=1", c.Endpoint, url.QueryEscape(query))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return pt, false, fmt.Errorf("failed to create geocode request: %w", err)
	}
	req.Header.Set("User-Agent", c.UserAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return pt, false, fmt.Errorf("geocode request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return pt, false, fmt.Errorf("geocoder returned status %d", resp.StatusCode)
	}

	// Nominatim encodes coordinates as strings
	var results []struct {
		Lat string `json:"lat"`
		Lon string `json:"lon"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&results); err != nil {
		return pt, false, fmt.Errorf("failed to decode geocode response: %w", err)
	}

	if len(results) == 0 {
		return pt, false, nil
	}

	lat, err := strconv.ParseFloat(results[0].Lat, 64)
	if err != nil {
		return pt, false, fmt.Errorf("invalid latitude %q: %w", results[0].Lat, err)
	}
	lon, err := strconv.ParseFloat(results[0].Lon, 64)
	if err != nil {
		return pt, false, fmt.Errorf("invalid longitude %q: %w", results[0].Lon, err)
	}

	return models.GeoPoint{Lat: lat, Lon: lon}, true, nil
}
