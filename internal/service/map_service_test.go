package service

import (
	"context"
	"testing"
	"time"

	"tripplanner-api/internal/mapview"
	"tripplanner-api/internal/models"
	"tripplanner-api/internal/preferences"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMapService_State(t *testing.T) {
	sessions := preferences.NewSessions(10, time.Hour, preferences.DefaultValues(preferences.CityHall), nil, zerolog.Nop())
	views := mapview.NewViews(10, time.Hour)
	service := NewMapService(sessions, views, mapview.DefaultCatalog())

	assert.Equal(t, mapview.DefaultCatalog(), service.Catalog())

	id, _, err := sessions.Create(context.Background())
	require.NoError(t, err)

	state, err := service.State(context.Background(), id)
	require.NoError(t, err)
	assert.Empty(t, state.Layers.Features)
	assert.Nil(t, state.Fit)

	view := views.Get(id)
	view.SetGeocodeMarker(&[2]float64{39.95, -75.16})
	view.FitBounds(models.Bounds{South: 39.9, West: -75.2, North: 40.0, East: -75.1})

	state, err = service.State(context.Background(), id)
	require.NoError(t, err)
	assert.Len(t, state.Layers.Features, 1)
	require.NotNil(t, state.Fit)
	assert.Equal(t, 40.0, state.Fit.Bounds.North)

	_, err = service.State(context.Background(), "6f9619ff-8b86-4d01-b42d-00cf4fc964ff")
	assert.ErrorIs(t, err, preferences.ErrSessionNotFound)
}
