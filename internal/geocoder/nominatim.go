// Package geocoder wraps the Nominatim reverse-geocoding API. Lookups
// are advisory: callers receive a Result whose failure variant carries
// no placement, never an error to propagate.
package geocoder

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"go.uber.org/zap"
)

// Placement is the administrative location derived from a coordinate.
type Placement struct {
	Division string `json:"division"`
	District string `json:"district"`
	Upazila  string `json:"upazila"`
}

// Result distinguishes a usable placement from a failed lookup.
// Callers must check Found before using Placement.
type Result struct {
	Placement Placement `json:"placement"`
	Found     bool      `json:"found"`
}

type Client struct {
	baseURL   string
	userAgent string
	client    *http.Client
}

func NewClient(baseURL, userAgent string) *Client {
	return &Client{
		baseURL:   strings.TrimSuffix(baseURL, "/"),
		userAgent: userAgent,
		client:    http.DefaultClient,
	}
}

type reverseResponse struct {
	Address struct {
		State         string `json:"state"`
		StateDistrict string `json:"state_district"`
		District      string `json:"district"`
		County        string `json:"county"`
		City          string `json:"city"`
		Suburb        string `json:"suburb"`
		Town          string `json:"town"`
		Village       string `json:"village"`
	} `json:"address"`
}

// Reverse looks up the administrative placement of a coordinate. Any
// failure (network, non-2xx, undecodable body) yields Result{Found: false};
// failures are logged at debug level and otherwise swallowed.
func (c *Client) Reverse(ctx context.Context, lat, lng float64) Result {
	endpoint := fmt.Sprintf("%s/reverse?format=jsonv2&lat=%s&lon=%s",
		c.baseURL,
		url.QueryEscape(fmt.Sprintf("%f", lat)),
		url.QueryEscape(fmt.Sprintf("%f", lng)),
	)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		zap.L().Debug("geocoder request build failed", zap.Error(err))

		return Result{}
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.client.Do(req)
	if err != nil {
		zap.L().Debug("geocoder request failed", zap.Error(err))

		return Result{}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		zap.L().Debug("geocoder returned non-200", zap.Int("status", resp.StatusCode))

		return Result{}
	}

	var body reverseResponse
	if err = json.NewDecoder(resp.Body).Decode(&body); err != nil {
		zap.L().Debug("geocoder response decode failed", zap.Error(err))

		return Result{}
	}

	placement := Placement{
		Division: normalizeRegion(body.Address.State, " Division"),
		District: firstNonEmpty(
			normalizeRegion(body.Address.StateDistrict, " District"),
			normalizeRegion(body.Address.District, " District"),
			normalizeRegion(body.Address.County, " District"),
			body.Address.City,
		),
		Upazila: firstNonEmpty(body.Address.Suburb, body.Address.Town, body.Address.Village),
	}

	if placement == (Placement{}) {
		return Result{}
	}

	return Result{Placement: placement, Found: true}
}

func normalizeRegion(name, suffix string) string {
	return strings.TrimSpace(strings.TrimSuffix(name, suffix))
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}

	return ""
}
