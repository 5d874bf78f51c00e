package service

import (
	"context"
	"fmt"

	"tripplanner-api/internal/mapview"

	geojson "github.com/paulmach/go.geojson"
)

// MapState is what a client needs to redraw a session's map.
type MapState struct {
	Layers *geojson.FeatureCollection `json:"layers"`
	Fit    *mapview.Fit               `json:"fit,omitempty"`
}

// MapService exposes the map catalogue and per-session map state.
type MapService struct {
	sessions SessionStore
	views    MapViews
	catalog  mapview.Catalog
}

// NewMapService creates a new map service
func NewMapService(sessions SessionStore, views MapViews, catalog mapview.Catalog) *MapService {
	return &MapService{sessions: sessions, views: views, catalog: catalog}
}

// Catalog returns the basemaps, overlays and initial view.
func (s *MapService) Catalog() mapview.Catalog {
	return s.catalog
}

// State returns the layers and last fitted bounds of a session's map.
func (s *MapService) State(ctx context.Context, session string) (*MapState, error) {
	if _, err := s.sessions.Get(ctx, session); err != nil {
		return nil, fmt.Errorf("service: failed to load session: %w", err)
	}

	view := s.views.Get(session)
	return &MapState{Layers: view.Layers(), Fit: view.Fit()}, nil
}
