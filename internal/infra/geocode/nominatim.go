package geocode

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"

	"folio-api/internal/pkg/config"
	"folio-api/internal/pkg/errs"
)

// Result is one geocoding hit, reduced to what the location picker
// shows.
type Result struct {
	DisplayName string `json:"display_name"`
	Lat         string `json:"lat"`
	Lon         string `json:"lon"`
}

// Client talks to a Nominatim-compatible endpoint. Nominatim's usage
// policy requires an identifying User-Agent.
type Client struct {
	baseURL   string
	userAgent string
	http      *http.Client
}

func NewClient(cfg config.GeocodeConfig) *Client {
	return &Client{
		baseURL:   cfg.BaseURL,
		userAgent: cfg.UserAgent,
		http:      &http.Client{Timeout: cfg.Timeout},
	}
}

// Search does a free-text forward lookup, capped at five hits.
func (c *Client) Search(ctx context.Context, query string) ([]Result, error) {
	q := url.Values{}
	q.Set("q", query)
	q.Set("format", "json")
	q.Set("limit", "5")

	var results []Result
	if err := c.getJSON(ctx, "/search", q, &results); err != nil {
		return nil, err
	}
	return results, nil
}

// Reverse resolves coordinates to a display name.
func (c *Client) Reverse(ctx context.Context, lat, lon string) (Result, error) {
	q := url.Values{}
	q.Set("lat", lat)
	q.Set("lon", lon)
	q.Set("format", "json")

	var result Result
	if err := c.getJSON(ctx, "/reverse", q, &result); err != nil {
		return Result{}, err
	}
	return result, nil
}

func (c *Client) getJSON(ctx context.Context, path string, q url.Values, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path+"?"+q.Encode(), nil)
	if err != nil {
		return errs.Wrap(err, "failed to build geocode request")
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.http.Do(req)
	if err != nil {
		return errs.Wrap(err, "geocode request failed")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return errs.New("geocode endpoint returned " + resp.Status)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return errs.Wrap(err, "failed to decode geocode response")
	}
	return nil
}
