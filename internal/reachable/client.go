package reachable

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"tripplanner-api/internal/models"

	geojson "github.com/paulmach/go.geojson"
	"github.com/rs/zerolog"
)

// Request asks for the travelshed around an origin.
type Request struct {
	From    [2]float64 // lat, lon
	When    time.Time
	Minutes int
	Params  url.Values // extra routing parameters passed through (mode, wheelchair, ...)
}

// Result is the travelshed polygon and the destinations that fall inside it.
type Result struct {
	Isochrone *geojson.FeatureCollection
	Matched   []models.Destination
}

type response struct {
	Matched   []matched       `json:"matched"`
	Isochrone json.RawMessage `json:"isochrone"`
}

type matched struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Address     string `json:"address"`
	City        string `json:"city"`
	State       string `json:"state"`
	Zip         string `json:"zip"`
	WebsiteURL  string `json:"website_url"`
	Image       string `json:"image"`
	Point       struct {
		Coordinates []float64 `json:"coordinates"`
	} `json:"point"`
}

// Client calls the reachability endpoint.
type Client struct {
	endpoint string
	http     *http.Client
	loc      *time.Location
	logger   zerolog.Logger
}

// New creates a client for the endpoint URL. Dates are formatted in loc.
func New(endpoint string, httpClient *http.Client, loc *time.Location, logger zerolog.Logger) *Client {
	if loc == nil {
		loc = time.Local
	}
	return &Client{endpoint: endpoint, http: httpClient, loc: loc, logger: logger}
}

// Fetch returns the travelshed and matched destinations for req.
func (c *Client) Fetch(ctx context.Context, req Request) (*Result, error) {
	q := url.Values{}
	for k, v := range req.Params {
		q[k] = v
	}
	when := req.When.In(c.loc)
	q.Set("time", when.Format("03:04pm"))
	q.Set("date", when.Format("2006/01/02"))
	q.Set("cutoffSec", strconv.Itoa(req.Minutes*60))
	q.Set("fromPlace", strconv.FormatFloat(req.From[0], 'f', -1, 64)+","+strconv.FormatFloat(req.From[1], 'f', -1, 64))

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint+"?"+q.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("reachable: failed to build request: %w", err)
	}
	httpReq.Header.Set("Accept", "application/json")
	httpReq.Header.Set("Cache-Control", "no-cache")

	resp, err := c.http.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("reachable: request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return nil, fmt.Errorf("reachable: endpoint %d: %s", resp.StatusCode, string(b))
	}

	var body response
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("reachable: failed to decode response: %w", err)
	}

	result := &Result{
		Isochrone: geojson.NewFeatureCollection(),
		Matched:   make([]models.Destination, 0, len(body.Matched)),
	}
	if len(body.Isochrone) > 0 && string(body.Isochrone) != "null" {
		fc, err := geojson.UnmarshalFeatureCollection(body.Isochrone)
		if err != nil {
			return nil, fmt.Errorf("reachable: failed to decode isochrone: %w", err)
		}
		result.Isochrone = fc
	}

	for _, m := range body.Matched {
		d := models.Destination{
			ID:          m.ID,
			Name:        m.Name,
			Description: m.Description,
			Address:     m.Address,
			City:        m.City,
			State:       m.State,
			Zip:         m.Zip,
			WebsiteURL:  m.WebsiteURL,
			ImageURL:    m.Image,
			Published:   true,
		}
		if len(m.Point.Coordinates) >= 2 {
			d.Longitude, d.Latitude = m.Point.Coordinates[0], m.Point.Coordinates[1]
		}
		result.Matched = append(result.Matched, d)
	}

	c.logger.Debug().Int("matched", len(result.Matched)).Msg("travelshed fetched")
	return result, nil
}
