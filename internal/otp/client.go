package otp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"tripplanner-api/internal/models"

	"github.com/rs/zerolog"
	"github.com/twpayne/go-polyline"
)

// PlanError is the error object OpenTripPlanner returns in place of a plan.
type PlanError struct {
	ID      int    `json:"id"`
	Msg     string `json:"msg"`
	Message string `json:"message"`
}

func (e *PlanError) Error() string {
	if e.Msg != "" {
		return e.Msg
	}
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("otp: plan error %d", e.ID)
}

// ErrNoItineraries is returned when the backend answers with an empty plan.
var ErrNoItineraries = errors.New("otp: no itineraries returned")

// Triangle weights bike routing between safety, flatness and speed.
type Triangle struct {
	Safety float64 `json:"triangleSafetyFactor"`
	Slope  float64 `json:"triangleSlopeFactor"`
	Time   float64 `json:"triangleTimeFactor"`
}

// Options are passed to the plan endpoint as-is.
type Options struct {
	Mode            string    `json:"mode"`
	ArriveBy        bool      `json:"arriveBy"`
	MaxWalkDistance *float64  `json:"maxWalkDistance,omitempty"`
	Wheelchair      *bool     `json:"wheelchair,omitempty"`
	Optimize        string    `json:"optimize,omitempty"`
	Triangle        *Triangle `json:"triangle,omitempty"`
}

// Query encodes the options as plan endpoint parameters.
func (o Options) Query() url.Values {
	q := url.Values{}
	q.Set("mode", o.Mode)
	q.Set("arriveBy", strconv.FormatBool(o.ArriveBy))
	if o.MaxWalkDistance != nil {
		q.Set("maxWalkDistance", strconv.FormatFloat(*o.MaxWalkDistance, 'f', -1, 64))
	}
	if o.Wheelchair != nil {
		q.Set("wheelchair", strconv.FormatBool(*o.Wheelchair))
	}
	if o.Optimize != "" {
		q.Set("optimize", o.Optimize)
	}
	if o.Triangle != nil {
		q.Set("triangleSafetyFactor", strconv.FormatFloat(o.Triangle.Safety, 'f', -1, 64))
		q.Set("triangleSlopeFactor", strconv.FormatFloat(o.Triangle.Slope, 'f', -1, 64))
		q.Set("triangleTimeFactor", strconv.FormatFloat(o.Triangle.Time, 'f', -1, 64))
	}
	return q
}

// PlanRequest is a single trip-planning query.
type PlanRequest struct {
	From    [2]float64 // lat, lon
	To      [2]float64 // lat, lon
	When    time.Time
	Options Options
}

// Client talks to the OpenTripPlanner REST API.
type Client struct {
	baseURL string
	router  string
	http    *http.Client
	loc     *time.Location
	logger  zerolog.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithLocation sets the time zone used for request dates and returned times.
func WithLocation(loc *time.Location) Option {
	return func(c *Client) { c.loc = loc }
}

// New creates an OpenTripPlanner client for baseURL (e.g. http://host/otp).
func New(baseURL, router string, httpClient *http.Client, logger zerolog.Logger, opts ...Option) *Client {
	if router == "" {
		router = "default"
	}
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		router:  router,
		http:    httpClient,
		loc:     time.Local,
		logger:  logger,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Plan requests itineraries between two points.
func (c *Client) Plan(ctx context.Context, req PlanRequest) ([]models.Itinerary, error) {
	q := req.Options.Query()
	q.Set("fromPlace", formatPlace(req.From))
	q.Set("toPlace", formatPlace(req.To))
	when := req.When.In(c.loc)
	q.Set("date", when.Format("01-02-2006"))
	q.Set("time", when.Format("3:04pm"))

	endpoint := fmt.Sprintf("%s/routers/%s/plan?%s", c.baseURL, url.PathEscape(c.router), q.Encode())
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("otp: failed to build request: %w", err)
	}
	httpReq.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.http.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("otp: plan request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return nil, fmt.Errorf("otp: plan endpoint %d: %s", resp.StatusCode, string(b))
	}

	var body planResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("otp: failed to decode plan: %w", err)
	}
	if body.Error != nil {
		c.logger.Debug().Int("id", body.Error.ID).Str("msg", body.Error.Msg).Msg("plan returned error")
		return nil, body.Error
	}
	if body.Plan == nil || len(body.Plan.Itineraries) == 0 {
		return nil, ErrNoItineraries
	}

	itineraries := make([]models.Itinerary, 0, len(body.Plan.Itineraries))
	for i, raw := range body.Plan.Itineraries {
		it, err := c.convert(i, raw)
		if err != nil {
			return nil, err
		}
		itineraries = append(itineraries, it)
	}

	c.logger.Debug().
		Int("itineraries", len(itineraries)).
		Dur("elapsed", time.Since(start)).
		Msg("plan OK")
	return itineraries, nil
}

func (c *Client) convert(id int, raw itinerary) (models.Itinerary, error) {
	it := models.Itinerary{
		ID:        id,
		Duration:  raw.Duration,
		StartTime: c.millis(raw.StartTime),
		EndTime:   c.millis(raw.EndTime),
		Transfers: raw.Transfers,
		Modes:     []string{},
		Legs:      make([]models.Leg, 0, len(raw.Legs)),
	}

	seen := make(map[string]bool)
	for _, l := range raw.Legs {
		points, err := decodePoints(l.LegGeometry.Points)
		if err != nil {
			return models.Itinerary{}, fmt.Errorf("otp: failed to decode leg geometry: %w", err)
		}

		route := l.RouteShortName
		if route == "" {
			route = l.Route
		}

		steps := make([]models.Step, 0, len(l.Steps))
		for _, s := range l.Steps {
			steps = append(steps, models.Step{
				RelativeDirection: s.RelativeDirection,
				StreetName:        s.StreetName,
				Distance:          s.Distance,
				Lat:               s.Lat,
				Lon:               s.Lon,
			})
		}

		it.Legs = append(it.Legs, models.Leg{
			Mode:      l.Mode,
			Route:     route,
			From:      models.Place{Name: l.From.Name, Lat: l.From.Lat, Lon: l.From.Lon},
			To:        models.Place{Name: l.To.Name, Lat: l.To.Lat, Lon: l.To.Lon},
			Distance:  l.Distance,
			Duration:  l.Duration,
			StartTime: c.millis(l.StartTime),
			EndTime:   c.millis(l.EndTime),
			Points:    points,
			Steps:     steps,
		})

		it.Distance += l.Distance
		if !seen[l.Mode] {
			seen[l.Mode] = true
			it.Modes = append(it.Modes, l.Mode)
		}

		it.Bounds = it.Bounds.Extend(l.From.Lat, l.From.Lon).Extend(l.To.Lat, l.To.Lon)
		for _, p := range points {
			it.Bounds = it.Bounds.Extend(p[1], p[0])
		}
	}
	it.Via = via(it.Legs)

	return it, nil
}

func (c *Client) millis(ms int64) time.Time {
	if ms == 0 {
		return time.Time{}
	}
	return time.UnixMilli(ms).In(c.loc)
}

// via names the longest leg: its route for transit, else its longest street.
func via(legs []models.Leg) string {
	var longest *models.Leg
	for i := range legs {
		if longest == nil || legs[i].Distance > longest.Distance {
			longest = &legs[i]
		}
	}
	if longest == nil {
		return ""
	}
	if longest.Route != "" {
		return longest.Route
	}

	var street string
	var dist float64
	for _, s := range longest.Steps {
		if s.StreetName != "" && s.Distance > dist {
			street, dist = s.StreetName, s.Distance
		}
	}
	if street != "" {
		return street
	}
	return longest.To.Name
}

// decodePoints decodes an encoded polyline into [lon, lat] pairs.
func decodePoints(encoded string) ([][2]float64, error) {
	if encoded == "" {
		return [][2]float64{}, nil
	}
	coords, _, err := polyline.DecodeCoords([]byte(encoded))
	if err != nil {
		return nil, err
	}
	points := make([][2]float64, 0, len(coords))
	for _, c := range coords {
		points = append(points, [2]float64{c[1], c[0]})
	}
	return points, nil
}

func formatPlace(p [2]float64) string {
	return strconv.FormatFloat(p[0], 'f', -1, 64) + "," + strconv.FormatFloat(p[1], 'f', -1, 64)
}
