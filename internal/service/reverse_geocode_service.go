package service

import (
	"context"
	"fmt"

	"tripplanner-api/internal/events"
	"tripplanner-api/internal/models"
	"tripplanner-api/internal/preferences"

	"github.com/rs/zerolog"
)

// ReverseGeocoder finds the street address nearest a point. It returns nil when the
// geocoder has no match.
type ReverseGeocoder interface {
	ReverseGeocode(ctx context.Context, lat, lon float64) (*models.Location, error)
}

// ReverseGeoCodeService contains the business logic for reverse geocoding operations
type ReverseGeoCodeService struct {
	geocoder ReverseGeocoder
	sessions SessionStore
	views    MapViews
	emitter  emitter
}

// NewReverseGeoCodeService creates a new reverse geo code service
func NewReverseGeoCodeService(geocoder ReverseGeocoder, sessions SessionStore, views MapViews, publisher events.Publisher, logger zerolog.Logger) *ReverseGeoCodeService {
	return &ReverseGeoCodeService{
		geocoder: geocoder,
		sessions: sessions,
		views:    views,
		emitter:  newEmitter(publisher, logger),
	}
}

// ReverseGeocode finds the nearest street address to the given coordinates
func (s *ReverseGeoCodeService) ReverseGeocode(ctx context.Context, lat, lon float64) (*models.Location, error) {
	if err := validateCoordinates(lat, lon); err != nil {
		return nil, err
	}

	location, err := s.geocoder.ReverseGeocode(ctx, lat, lon)
	if err != nil {
		return nil, fmt.Errorf("%w: reverse geocode: %w", ErrUpstream, err)
	}

	return location, nil
}

// Locate marks the user's position on the session's map, looks up its address and
// stores the result as the trip origin. The marker stays even when no address is
// found, in which case the origin is left alone.
func (s *ReverseGeoCodeService) Locate(ctx context.Context, session string, lat, lon float64) (*models.Location, error) {
	if err := validateCoordinates(lat, lon); err != nil {
		return nil, err
	}
	store, err := s.sessions.Get(ctx, session)
	if err != nil {
		return nil, fmt.Errorf("service: failed to load session: %w", err)
	}

	s.views.Get(session).SetGeocodeMarker(&[2]float64{lat, lon})
	s.emitter.emit(events.CurrentLocationClick, session, map[string]any{"lat": lat, "lon": lon})

	location, err := s.ReverseGeocode(ctx, lat, lon)
	if err != nil || location == nil {
		return location, err
	}

	if err := store.SetLocation(preferences.Origin, *location, location.Name); err != nil {
		return nil, fmt.Errorf("service: failed to store origin: %w", err)
	}
	return location, nil
}

func validateCoordinates(lat, lon float64) error {
	if lat < -90 || lat > 90 {
		return fmt.Errorf("%w: invalid latitude: %f", ErrInvalidInput, lat)
	}
	if lon < -180 || lon > 180 {
		return fmt.Errorf("%w: invalid longitude: %f", ErrInvalidInput, lon)
	}
	return nil
}
