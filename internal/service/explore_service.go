package service

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"time"

	"tripplanner-api/internal/events"
	"tripplanner-api/internal/models"
	"tripplanner-api/internal/preferences"
	"tripplanner-api/internal/reachable"
	"tripplanner-api/internal/requests"

	geojson "github.com/paulmach/go.geojson"
	"github.com/rs/zerolog"
)

// Reacher computes travelsheds
type Reacher interface {
	Fetch(ctx context.Context, req reachable.Request) (*reachable.Result, error)
}

// ExploreInput asks what can be reached from an origin within a time budget. A nil
// origin falls back to the stored origin, then to the default location.
type ExploreInput struct {
	Origin  *[2]float64 `json:"origin"` // lat, lon
	When    time.Time   `json:"when"`
	Minutes int         `json:"minutes"`
	Mode    string      `json:"mode"`
}

// ExploreResult is the travelshed and the destinations inside it.
type ExploreResult struct {
	Origin    [2]float64                 `json:"origin"`
	Isochrone *geojson.FeatureCollection `json:"isochrone"`
	Matched   []models.Destination       `json:"matched"`
	Layers    *geojson.FeatureCollection `json:"layers"`
}

// ExploreService drives the explore view.
type ExploreService struct {
	sessions      SessionStore
	views         MapViews
	reacher       Reacher
	tracker       *requests.Tracker
	emitter       emitter
	logger        zerolog.Logger
	defaultOrigin models.Location
	now           func() time.Time
}

// NewExploreService creates a new explore service. defaultOrigin is used when neither
// the request nor the session has an origin.
func NewExploreService(
	sessions SessionStore,
	views MapViews,
	reacher Reacher,
	tracker *requests.Tracker,
	publisher events.Publisher,
	defaultOrigin models.Location,
	logger zerolog.Logger,
) *ExploreService {
	return &ExploreService{
		sessions:      sessions,
		views:         views,
		reacher:       reacher,
		tracker:       tracker,
		emitter:       newEmitter(publisher, logger),
		logger:        logger,
		defaultOrigin: defaultOrigin,
		now:           time.Now,
	}
}

// FetchIsochrone replaces the session's travelshed and matched destinations.
func (s *ExploreService) FetchIsochrone(ctx context.Context, session string, in ExploreInput) (*ExploreResult, error) {
	store, err := s.sessions.Get(ctx, session)
	if err != nil {
		return nil, fmt.Errorf("service: failed to load session: %w", err)
	}
	settings, err := store.Settings()
	if err != nil {
		return nil, fmt.Errorf("service: failed to read preferences: %w", err)
	}

	minutes := in.Minutes
	if minutes == 0 {
		minutes = settings.ExploreTime
	}
	if minutes <= 0 {
		return nil, fmt.Errorf("%w: minutes must be positive", ErrInvalidInput)
	}
	mode := firstNonEmpty(in.Mode, settings.Mode)

	origin, err := s.origin(in, settings)
	if err != nil {
		return nil, err
	}

	for name, v := range map[preferences.Name]any{
		preferences.Method:      preferences.MethodExplore,
		preferences.ExploreTime: minutes,
		preferences.Mode:        mode,
	} {
		if err := store.Set(name, v); err != nil {
			return nil, fmt.Errorf("service: failed to store %s: %w", name, err)
		}
	}

	view := s.views.Get(session)
	view.ClearDiscoverPlaces()

	reqCtx, ticket, err := s.tracker.Begin(ctx, requests.Key{Session: session, View: requests.ViewExplore})
	if err != nil {
		if errors.Is(err, requests.ErrSuperseded) {
			return nil, ErrStale
		}
		return nil, fmt.Errorf("service: failed to start travelshed request: %w", err)
	}
	defer ticket.Done()

	when := in.When
	if when.IsZero() {
		when = s.now()
	}
	params := url.Values{}
	params.Set("mode", mode)
	if settings.Wheelchair {
		params.Set("wheelchair", strconv.FormatBool(true))
	}

	result, err := s.reacher.Fetch(reqCtx, reachable.Request{
		From:    origin,
		When:    when,
		Minutes: minutes,
		Params:  params,
	})

	// the user moved on; do not draw over whatever they are looking at now
	if !ticket.Current() || !showing(store, preferences.MethodExplore) {
		return nil, ErrStale
	}
	if err != nil {
		return nil, fmt.Errorf("%w: travelshed: %w", ErrUpstream, err)
	}

	view.SetIsochrone(result.Isochrone)
	view.SetDestinations(result.Matched)
	s.emitter.emit(events.IsochroneFetched, session, map[string]any{"minutes": minutes, "matched": len(result.Matched)})

	return &ExploreResult{
		Origin:    origin,
		Isochrone: result.Isochrone,
		Matched:   result.Matched,
		Layers:    view.Layers(),
	}, nil
}

// SelectPlace records a clicked destination card so the explore view can open on it.
func (s *ExploreService) SelectPlace(ctx context.Context, session string, placeID int, mode string, exploreTime int) error {
	if placeID <= 0 {
		return fmt.Errorf("%w: invalid place id %d", ErrInvalidInput, placeID)
	}
	store, err := s.sessions.Get(ctx, session)
	if err != nil {
		return fmt.Errorf("service: failed to load session: %w", err)
	}

	values := map[preferences.Name]any{
		preferences.Method:  preferences.MethodExplore,
		preferences.PlaceID: placeID,
	}
	if mode != "" {
		values[preferences.Mode] = mode
	}
	if exploreTime > 0 {
		values[preferences.ExploreTime] = exploreTime
	}
	for name, v := range values {
		if err := store.Set(name, v); err != nil {
			return fmt.Errorf("service: failed to store %s: %w", name, err)
		}
	}

	s.views.Get(session).HighlightDestination(placeID)
	s.emitter.emit(events.PlaceSelected, session, map[string]any{"place": placeID})
	return nil
}

func (s *ExploreService) origin(in ExploreInput, settings preferences.Settings) ([2]float64, error) {
	if in.Origin != nil {
		if err := validateCoordinates(in.Origin[0], in.Origin[1]); err != nil {
			return [2]float64{}, err
		}
		return *in.Origin, nil
	}
	if settings.Origin.HasGeometry() {
		return settings.Origin.LatLng(), nil
	}
	s.logger.Debug().Msg("no origin for travelshed, using default location")
	return s.defaultOrigin.LatLng(), nil
}
