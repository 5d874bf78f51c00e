package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"tripplanner-api/internal/events"
	"tripplanner-api/internal/itinerary"
	"tripplanner-api/internal/mapview"
	"tripplanner-api/internal/models"
	"tripplanner-api/internal/otp"
	"tripplanner-api/internal/preferences"
	"tripplanner-api/internal/requests"

	geojson "github.com/paulmach/go.geojson"
	"github.com/rs/zerolog"
)

// ErrItineraryNotFound is returned when an itinerary ID is not on the session's map.
var ErrItineraryNotFound = errors.New("service: itinerary not found")

// DepartAt values.
const (
	DepartAtTime     = "departAt"
	DepartAtArriveBy = "arriveBy"
)

// boundsPadding is the margin put around the first itinerary when fitting the map.
const boundsPadding = 0.1

// SessionStore looks up a session's preferences
type SessionStore interface {
	Get(ctx context.Context, id string) (*preferences.Store, error)
}

// MapViews hands out the per-session map state
type MapViews interface {
	Get(session string) *mapview.View
}

// TripPlanner is the routing backend
type TripPlanner interface {
	Plan(ctx context.Context, req otp.PlanRequest) ([]models.Itinerary, error)
}

// DestinationFinder loads a destination by ID, returning nil when there is none
type DestinationFinder interface {
	FindDestination(ctx context.Context, id int) (*models.Destination, error)
}

// DirectionsInput is what the directions form submits. Unset endpoints fall back to
// the stored preferences.
type DirectionsInput struct {
	Origin       *models.Location `json:"origin"`
	Destination  *models.Location `json:"destination"`
	When         time.Time        `json:"when"`
	DepartAt     string           `json:"departAt"`
	Mode         string           `json:"mode"`
	BikeTriangle string           `json:"bikeTriangle"`
	MaxWalk      *float64         `json:"maxWalk"`
	Wheelchair   bool             `json:"wheelchair"`
}

// DirectionsResult is a planned trip, ready to show.
type DirectionsResult struct {
	Origin          models.Location            `json:"origin"`
	OriginText      string                     `json:"originText"`
	Destination     models.Location            `json:"destination"`
	DestinationText string                     `json:"destinationText"`
	Itineraries     []itinerary.Summary        `json:"itineraries"`
	Layers          *geojson.FeatureCollection `json:"layers"`
	Fit             mapview.Fit                `json:"fit"`
}

// ItineraryDetail is a single itinerary with its turn-by-turn legs.
type ItineraryDetail struct {
	Summary   itinerary.Summary          `json:"summary"`
	Itinerary models.Itinerary           `json:"itinerary"`
	Layers    *geojson.FeatureCollection `json:"layers"`
}

// RestoreResult is the state a client rebuilds its directions form from.
type RestoreResult struct {
	Settings   preferences.Settings `json:"settings"`
	Directions *DirectionsResult    `json:"directions,omitempty"`
	Error      string               `json:"error,omitempty"`
}

// DirectionsService drives the directions sidebar: it collects input, plans trips
// and keeps the session's map in step with the results.
type DirectionsService struct {
	sessions     SessionStore
	views        MapViews
	planner      TripPlanner
	geocoder     ReverseGeocoder
	destinations DestinationFinder
	tracker      *requests.Tracker
	emitter      emitter
	logger       zerolog.Logger
	now          func() time.Time
}

// NewDirectionsService creates a new directions service
func NewDirectionsService(
	sessions SessionStore,
	views MapViews,
	planner TripPlanner,
	geocoder ReverseGeocoder,
	destinations DestinationFinder,
	tracker *requests.Tracker,
	publisher events.Publisher,
	logger zerolog.Logger,
) *DirectionsService {
	return &DirectionsService{
		sessions:     sessions,
		views:        views,
		planner:      planner,
		geocoder:     geocoder,
		destinations: destinations,
		tracker:      tracker,
		emitter:      newEmitter(publisher, logger),
		logger:       logger,
		now:          time.Now,
	}
}

// PlanTrip stores any endpoints given in the input, then plans between the session's
// origin and destination.
func (s *DirectionsService) PlanTrip(ctx context.Context, session string, in DirectionsInput) (*DirectionsResult, error) {
	store, err := s.store(ctx, session)
	if err != nil {
		return nil, err
	}

	for _, endpoint := range []struct {
		name preferences.Name
		loc  *models.Location
	}{
		{preferences.Origin, in.Origin},
		{preferences.Destination, in.Destination},
	} {
		if endpoint.loc == nil {
			continue
		}
		if !endpoint.loc.HasGeometry() {
			return nil, fmt.Errorf("%w: %s has no coordinates", ErrInvalidInput, endpoint.name)
		}
		if err := store.SetLocation(endpoint.name, *endpoint.loc, ""); err != nil {
			return nil, fmt.Errorf("service: failed to store %s: %w", endpoint.name, err)
		}
	}

	settings, err := store.Settings()
	if err != nil {
		return nil, fmt.Errorf("service: failed to read preferences: %w", err)
	}
	return s.plan(ctx, session, store, settings, in)
}

// MoveOriginDestination moves a trip endpoint to the street address nearest a point
// dropped on the map, then plans again.
func (s *DirectionsService) MoveOriginDestination(ctx context.Context, session, key string, lat, lon float64) (*DirectionsResult, error) {
	name, err := locationKey(key)
	if err != nil {
		return nil, err
	}
	if err := validateCoordinates(lat, lon); err != nil {
		return nil, err
	}

	store, err := s.store(ctx, session)
	if err != nil {
		return nil, err
	}

	kind := events.OriginMoved
	if name == preferences.Destination {
		kind = events.DestinationMoved
	}
	s.emitter.emit(kind, session, map[string]any{"lat": lat, "lon": lon})

	s.views.Get(session).ClearItineraries()

	loc, err := s.geocoder.ReverseGeocode(ctx, lat, lon)
	if err != nil {
		return nil, fmt.Errorf("%w: reverse geocode: %w", ErrUpstream, err)
	}
	if loc == nil {
		store.ClearLocation(name)
		return nil, &PlanFailedError{Message: itinerary.NoAddressMessage}
	}

	if err := store.SetLocation(name, *loc, loc.Name); err != nil {
		return nil, fmt.Errorf("service: failed to store %s: %w", name, err)
	}
	return s.replan(ctx, session, store)
}

// SetDestination plans from the stored origin to a curated destination, as when a
// destination popup's directions link is clicked.
func (s *DirectionsService) SetDestination(ctx context.Context, session string, destinationID int) (*DirectionsResult, error) {
	store, err := s.store(ctx, session)
	if err != nil {
		return nil, err
	}

	dest, err := s.destinations.FindDestination(ctx, destinationID)
	if err != nil {
		return nil, fmt.Errorf("service: failed to find destination: %w", err)
	}
	if dest == nil {
		return nil, ErrDestinationNotFound
	}

	if err := store.SetLocation(preferences.Destination, dest.Location(), dest.Address); err != nil {
		return nil, fmt.Errorf("service: failed to store destination: %w", err)
	}
	s.emitter.emit(events.DestinationPopupClick, session, map[string]any{"destination": dest.ID})

	return s.replan(ctx, session, store)
}

// SelectLocation stores a typeahead pick for origin or destination and plans again.
func (s *DirectionsService) SelectLocation(ctx context.Context, session, key string, loc models.Location) (*DirectionsResult, error) {
	name, err := locationKey(key)
	if err != nil {
		return nil, err
	}
	if !loc.HasGeometry() {
		return nil, fmt.Errorf("%w: %s has no coordinates", ErrInvalidInput, name)
	}

	store, err := s.store(ctx, session)
	if err != nil {
		return nil, err
	}

	if err := store.SetLocation(name, loc, loc.Name); err != nil {
		return nil, fmt.Errorf("service: failed to store %s: %w", name, err)
	}
	s.views.Get(session).ClearItineraries()
	s.emitter.emit(events.TypeaheadSelected, session, map[string]any{"key": key, "name": loc.Name})

	return s.replan(ctx, session, store)
}

// ClearLocation forgets origin or destination after the typeahead was cleared.
func (s *DirectionsService) ClearLocation(ctx context.Context, session, key string) error {
	name, err := locationKey(key)
	if err != nil {
		return err
	}

	store, err := s.store(ctx, session)
	if err != nil {
		return err
	}

	s.views.Get(session).ClearItineraries()
	store.ClearLocation(name)
	s.emitter.emit(events.TypeaheadCleared, session, map[string]any{"key": key})
	return nil
}

// ClearDirections removes the endpoint markers and every plotted itinerary.
func (s *DirectionsService) ClearDirections(ctx context.Context, session string) error {
	if _, err := s.store(ctx, session); err != nil {
		return err
	}

	view := s.views.Get(session)
	view.SetOriginDestinationMarkers(nil, nil)
	view.ClearItineraries()
	return nil
}

// SelectItinerary shows only the clicked itinerary and returns its directions.
func (s *DirectionsService) SelectItinerary(ctx context.Context, session string, id int) (*ItineraryDetail, error) {
	if _, err := s.store(ctx, session); err != nil {
		return nil, err
	}

	view := s.views.Get(session)
	if !view.ShowOnly(id) {
		return nil, ErrItineraryNotFound
	}
	it, _ := view.Itinerary(id)
	s.emitter.emit(events.ItineraryClicked, session, map[string]any{"itinerary": id})

	return &ItineraryDetail{
		Summary:   itinerary.Summaries([]models.Itinerary{it})[0],
		Itinerary: it,
		Layers:    view.Layers(),
	}, nil
}

// HoverItinerary highlights an itinerary without hiding the others.
func (s *DirectionsService) HoverItinerary(ctx context.Context, session string, id int) (*geojson.FeatureCollection, error) {
	if _, err := s.store(ctx, session); err != nil {
		return nil, err
	}

	view := s.views.Get(session)
	if !view.Highlight(id) {
		return nil, ErrItineraryNotFound
	}
	s.emitter.emit(events.ItineraryHover, session, map[string]any{"itinerary": id})
	return view.Layers(), nil
}

// BackToItineraries leaves the directions list and shows every itinerary again, keeping
// the current one highlighted.
func (s *DirectionsService) BackToItineraries(ctx context.Context, session string) ([]itinerary.Summary, *geojson.FeatureCollection, error) {
	if _, err := s.store(ctx, session); err != nil {
		return nil, nil, err
	}

	view := s.views.Get(session)
	view.ShowItineraries(true)
	s.emitter.emit(events.DirectionsBack, session, nil)
	return itinerary.Summaries(view.Itineraries()), view.Layers(), nil
}

// Itineraries returns the itineraries currently on the session's map.
func (s *DirectionsService) Itineraries(ctx context.Context, session string) ([]models.Itinerary, error) {
	if _, err := s.store(ctx, session); err != nil {
		return nil, err
	}
	return s.views.Get(session).Itineraries(), nil
}

// Restore rebuilds the directions view from stored preferences when a page loads: if
// the session was last on directions with both endpoints set, the trip is planned
// again, otherwise the directions are cleared.
func (s *DirectionsService) Restore(ctx context.Context, session string) (*RestoreResult, error) {
	store, err := s.store(ctx, session)
	if err != nil {
		return nil, err
	}

	settings, err := store.Settings()
	if err != nil {
		return nil, fmt.Errorf("service: failed to read preferences: %w", err)
	}
	result := &RestoreResult{Settings: settings}

	if settings.Method != preferences.MethodDirections {
		return result, nil
	}
	if !settings.HasDirections() {
		return result, s.ClearDirections(ctx, session)
	}

	directions, err := s.plan(ctx, session, store, settings, inputFromSettings(settings))
	var failed *PlanFailedError
	switch {
	case errors.As(err, &failed):
		result.Error = failed.Message
	case err != nil:
		return nil, err
	default:
		result.Directions = directions
	}

	if result.Settings, err = store.Settings(); err != nil {
		return nil, fmt.Errorf("service: failed to read preferences: %w", err)
	}
	return result, nil
}

func (s *DirectionsService) replan(ctx context.Context, session string, store *preferences.Store) (*DirectionsResult, error) {
	settings, err := store.Settings()
	if err != nil {
		return nil, fmt.Errorf("service: failed to read preferences: %w", err)
	}
	return s.plan(ctx, session, store, settings, inputFromSettings(settings))
}

func (s *DirectionsService) plan(ctx context.Context, session string, store *preferences.Store, settings preferences.Settings, in DirectionsInput) (*DirectionsResult, error) {
	var missing []string
	if !settings.Origin.HasGeometry() {
		missing = append(missing, string(preferences.Origin))
	}
	if !settings.Destination.HasGeometry() {
		missing = append(missing, string(preferences.Destination))
	}
	if len(missing) > 0 {
		return nil, &MissingInputError{Fields: missing}
	}

	if in.DepartAt != "" && in.DepartAt != DepartAtTime && in.DepartAt != DepartAtArriveBy {
		return nil, fmt.Errorf("%w: departAt must be %q or %q", ErrInvalidInput, DepartAtTime, DepartAtArriveBy)
	}
	trip := TripOptions{
		Mode:         firstNonEmpty(in.Mode, settings.Mode),
		ArriveBy:     in.DepartAt == DepartAtArriveBy,
		BikeTriangle: firstNonEmpty(in.BikeTriangle, settings.BikeTriangle),
		MaxWalk:      in.MaxWalk,
		Wheelchair:   in.Wheelchair,
	}
	opts, err := BuildPlanOptions(trip)
	if err != nil {
		return nil, err
	}
	if err := savePlanPreferences(store, trip); err != nil {
		return nil, err
	}

	reqCtx, ticket, err := s.tracker.Begin(ctx, requests.Key{Session: session, View: requests.ViewDirections})
	if err != nil {
		if errors.Is(err, requests.ErrSuperseded) {
			return nil, ErrStale
		}
		return nil, fmt.Errorf("service: failed to start trip request: %w", err)
	}
	defer ticket.Done()

	when := in.When
	if when.IsZero() {
		when = s.now()
	}
	origin, destination := *settings.Origin, *settings.Destination

	itineraries, err := s.planner.Plan(reqCtx, otp.PlanRequest{
		From:    origin.LatLng(),
		To:      destination.LatLng(),
		When:    when,
		Options: opts,
	})

	// a newer request or a switch to another view owns the map now
	if !ticket.Current() || !showing(store, preferences.MethodDirections) {
		return nil, ErrStale
	}

	view := s.views.Get(session)
	list := itinerary.Dedupe(itineraries)
	if err != nil || len(list) == 0 {
		view.ClearItineraries()
		msg := itinerary.ErrorMessage(planErrorMessage(err))
		s.logger.Warn().Err(err).Str("session", session).Str("mode", trip.Mode).Msg("trip planning failed")
		s.emitter.emit(events.TripPlanFailed, session, map[string]any{"message": msg})
		return nil, &PlanFailedError{Message: msg, Err: planFailureCause(err)}
	}

	view.ClearItineraries()
	for i, it := range list {
		view.PlotItinerary(it, i == 0)
	}
	from, to := origin.LatLng(), destination.LatLng()
	view.SetOriginDestinationMarkers(&from, &to)
	fit := view.FitBounds(list[0].Bounds.Pad(boundsPadding))

	s.logger.Debug().Str("session", session).Int("itineraries", len(list)).Int("returned", len(itineraries)).Msg("trip planned")
	s.emitter.emit(events.TripPlanned, session, map[string]any{"itineraries": len(list), "mode": trip.Mode})

	return &DirectionsResult{
		Origin:          origin,
		OriginText:      settings.OriginText,
		Destination:     destination,
		DestinationText: settings.DestinationText,
		Itineraries:     itinerary.Summaries(list),
		Layers:          view.Layers(),
		Fit:             fit,
	}, nil
}

func (s *DirectionsService) store(ctx context.Context, session string) (*preferences.Store, error) {
	store, err := s.sessions.Get(ctx, session)
	if err != nil {
		return nil, fmt.Errorf("service: failed to load session: %w", err)
	}
	return store, nil
}

// savePlanPreferences remembers the options a trip was planned with.
func savePlanPreferences(store *preferences.Store, trip TripOptions) error {
	values := map[preferences.Name]any{
		preferences.Method:   preferences.MethodDirections,
		preferences.Mode:     trip.Mode,
		preferences.ArriveBy: trip.ArriveBy,
	}
	if trip.IsBike() {
		values[preferences.BikeTriangle] = trip.BikeTriangle
	} else {
		if trip.MaxWalk != nil {
			values[preferences.MaxWalk] = *trip.MaxWalk
		} else {
			store.Clear(preferences.MaxWalk)
		}
		values[preferences.Wheelchair] = trip.Wheelchair
	}

	for name, v := range values {
		if err := store.Set(name, v); err != nil {
			return fmt.Errorf("service: failed to store %s: %w", name, err)
		}
	}
	return nil
}

func inputFromSettings(settings preferences.Settings) DirectionsInput {
	in := DirectionsInput{
		Mode:         settings.Mode,
		BikeTriangle: settings.BikeTriangle,
		Wheelchair:   settings.Wheelchair,
		DepartAt:     DepartAtTime,
	}
	if settings.ArriveBy {
		in.DepartAt = DepartAtArriveBy
	}
	if settings.MaxWalk > 0 {
		maxWalk := settings.MaxWalk
		in.MaxWalk = &maxWalk
	}
	return in
}

func planErrorMessage(err error) string {
	var planErr *otp.PlanError
	if errors.As(err, &planErr) {
		if planErr.Msg != "" {
			return planErr.Msg
		}
		return planErr.Message
	}
	return ""
}

// planFailureCause marks errors that never reached the planner's answer, such as
// connection failures, as upstream errors. Plan errors and empty plans are answers.
func planFailureCause(err error) error {
	var planErr *otp.PlanError
	if err == nil || errors.As(err, &planErr) || errors.Is(err, otp.ErrNoItineraries) {
		return err
	}
	return fmt.Errorf("%w: plan: %w", ErrUpstream, err)
}

func locationKey(key string) (preferences.Name, error) {
	name := preferences.Name(key)
	if name != preferences.Origin && name != preferences.Destination {
		return "", fmt.Errorf("%w: unrecognized location key %q", ErrInvalidInput, key)
	}
	return name, nil
}

func showing(store *preferences.Store, method string) bool {
	var current string
	if err := store.Get(preferences.Method, &current); err != nil {
		return false
	}
	return current == method
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
