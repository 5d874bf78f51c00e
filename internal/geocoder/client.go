package geocoder

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"tripplanner-api/internal/models"

	"github.com/bluele/gcache"
	"github.com/rs/zerolog"
)

// extentBuffer is the half-width, in degrees, of the box put around a reverse match.
const extentBuffer = 0.005

type reverseResponse struct {
	Address *struct {
		MatchAddr string `json:"Match_addr"`
		Address   string `json:"Address"`
		City      string `json:"City"`
		Region    string `json:"Region"`
		Postal    string `json:"Postal"`
	} `json:"address"`
	Location struct {
		X float64 `json:"x"`
		Y float64 `json:"y"`
	} `json:"location"`
	Error *struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// Client performs reverse geocoding against an ArcGIS-style GeocodeServer and caches
// the answers by rounded coordinate.
type Client struct {
	baseURL string
	http    *http.Client
	cache   gcache.Cache
	logger  zerolog.Logger
}

// New creates a reverse geocoding client caching up to cacheSize results for ttl.
func New(baseURL string, httpClient *http.Client, cacheSize int, ttl time.Duration, logger zerolog.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    httpClient,
		cache: gcache.New(cacheSize).
			LRU().
			Expiration(ttl).
			Build(),
		logger: logger,
	}
}

// ReverseGeocode returns the street address nearest to lat/lon, or nil when the
// geocoder has no match.
func (c *Client) ReverseGeocode(ctx context.Context, lat, lon float64) (*models.Location, error) {
	key := makeCacheKey(lat, lon)
	if cached, err := c.cache.Get(key); err == nil {
		if loc, ok := cached.(*models.Location); ok {
			c.logger.Debug().Str("key", key).Msg("reverse geocode cache hit")
			return loc, nil
		}
	}

	q := url.Values{}
	q.Set("location", strconv.FormatFloat(lon, 'f', -1, 64)+","+strconv.FormatFloat(lat, 'f', -1, 64))
	q.Set("outSR", "4326")
	q.Set("f", "json")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/reverseGeocode?"+q.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("geocoder: failed to build request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("geocoder: request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return nil, fmt.Errorf("geocoder: reverse endpoint %d: %s", resp.StatusCode, string(b))
	}

	var body reverseResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("geocoder: failed to decode response: %w", err)
	}

	if body.Error != nil || body.Address == nil || body.Address.MatchAddr == "" {
		if body.Error != nil {
			c.logger.Debug().Int("code", body.Error.Code).Str("message", body.Error.Message).Msg("no reverse geocode match")
		}
		return nil, nil
	}

	x, y := body.Location.X, body.Location.Y
	if x == 0 && y == 0 {
		x, y = lon, lat
	}
	loc := &models.Location{
		Name: body.Address.MatchAddr,
		Extent: &models.Extent{
			XMax: x + extentBuffer,
			XMin: x - extentBuffer,
			YMax: y + extentBuffer,
			YMin: y - extentBuffer,
		},
		Feature: models.Feature{
			Attributes: models.Attributes{
				City:   body.Address.City,
				Postal: body.Address.Postal,
				Region: body.Address.Region,
				StAddr: body.Address.Address,
			},
			Geometry: models.Point{X: x, Y: y},
		},
	}

	if err := c.cache.Set(key, loc); err != nil {
		c.logger.Warn().Err(err).Str("key", key).Msg("failed to cache reverse geocode")
	}
	return loc, nil
}

// quantizeCoord rounds coordinates to 4 decimal places (~11m precision) for cache key generation
func quantizeCoord(coord float64) float64 {
	return math.Round(coord*10000) / 10000
}

func makeCacheKey(lat, lon float64) string {
	return fmt.Sprintf("%.4f,%.4f", quantizeCoord(lat), quantizeCoord(lon))
}
