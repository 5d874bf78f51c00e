package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"tripplanner-api/internal/events"
	"tripplanner-api/internal/mapview"
	"tripplanner-api/internal/models"
	"tripplanner-api/internal/preferences"
	"tripplanner-api/internal/reachable"
	"tripplanner-api/internal/requests"

	geojson "github.com/paulmach/go.geojson"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockReacher is a mock implementation of the Reacher interface
type MockReacher struct {
	mock.Mock
}

func (m *MockReacher) Fetch(ctx context.Context, req reachable.Request) (*reachable.Result, error) {
	args := m.Called(ctx, req)
	result, _ := args.Get(0).(*reachable.Result)
	return result, args.Error(1)
}

func travelshed() *reachable.Result {
	fc := geojson.NewFeatureCollection()
	fc.AddFeature(geojson.NewPolygonFeature([][][]float64{{
		{-75.2, 39.9}, {-75.1, 39.9}, {-75.1, 40.0}, {-75.2, 39.9},
	}}))
	return &reachable.Result{
		Isochrone: fc,
		Matched: []models.Destination{
			{ID: 4, Name: "Fairmount Park", Latitude: 39.98, Longitude: -75.19},
			{ID: 7, Name: "Penn's Landing", Latitude: 39.94, Longitude: -75.14},
		},
	}
}

func newExploreFixture(t *testing.T) (*ExploreService, *MockReacher, *mapview.Views, *recordingPublisher, string, *preferences.Store) {
	t.Helper()

	sessions := preferences.NewSessions(10, time.Hour, preferences.DefaultValues(preferences.CityHall), nil, zerolog.Nop())
	views := mapview.NewViews(10, time.Hour)
	reacher := new(MockReacher)
	publisher := &recordingPublisher{}

	service := NewExploreService(sessions, views, reacher, requests.NewTracker(0), publisher, preferences.CityHall, zerolog.Nop())

	id, store, err := sessions.Create(context.Background())
	require.NoError(t, err)
	return service, reacher, views, publisher, id, store
}

func TestExploreService_FetchIsochrone(t *testing.T) {
	service, reacher, views, publisher, session, store := newExploreFixture(t)
	require.NoError(t, store.Set(preferences.Wheelchair, true))

	when := time.Date(2024, 5, 4, 10, 0, 0, 0, time.UTC)
	var got reachable.Request
	reacher.On("Fetch", mock.Anything, mock.MatchedBy(func(req reachable.Request) bool {
		got = req
		return true
	})).Return(travelshed(), nil)

	result, err := service.FetchIsochrone(context.Background(), session, ExploreInput{
		When:    when,
		Minutes: 45,
		Mode:    "WALK,BUS",
	})
	require.NoError(t, err)

	assert.Equal(t, preferences.CityHall.LatLng(), got.From)
	assert.Equal(t, when, got.When)
	assert.Equal(t, 45, got.Minutes)
	assert.Equal(t, "WALK,BUS", got.Params.Get("mode"))
	assert.Equal(t, "true", got.Params.Get("wheelchair"))

	assert.Len(t, result.Matched, 2)
	// isochrone polygon, two destinations
	assert.Len(t, result.Layers.Features, 3)
	_, ok := views.Get(session).Destination(7)
	assert.True(t, ok)

	settings, err := store.Settings()
	require.NoError(t, err)
	assert.Equal(t, preferences.MethodExplore, settings.Method)
	assert.Equal(t, 45, settings.ExploreTime)
	assert.Equal(t, "WALK,BUS", settings.Mode)

	assert.Equal(t, []events.Kind{events.IsochroneFetched}, publisher.Kinds())
}

func TestExploreService_FetchIsochroneOrigin(t *testing.T) {
	zooOrigin := zoo.LatLng()

	tests := []struct {
		name       string
		input      ExploreInput
		storedZoo  bool
		clearStore bool
		want       [2]float64
	}{
		{name: "request origin wins", input: ExploreInput{Origin: &[2]float64{40.0, -75.3}}, storedZoo: true, want: [2]float64{40.0, -75.3}},
		{name: "stored origin", storedZoo: true, want: zooOrigin},
		{name: "default origin", want: preferences.CityHall.LatLng()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, reacher, _, _, session, store := newExploreFixture(t)
			if tt.storedZoo {
				require.NoError(t, store.SetLocation(preferences.Origin, zoo, ""))
			}
			reacher.On("Fetch", mock.Anything, mock.MatchedBy(func(req reachable.Request) bool {
				return req.From == tt.want && req.Minutes == 20
			})).Return(travelshed(), nil)

			result, err := service.FetchIsochrone(context.Background(), session, tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, result.Origin)
			reacher.AssertExpectations(t)
		})
	}
}

func TestExploreService_FetchIsochroneErrors(t *testing.T) {
	t.Run("invalid minutes", func(t *testing.T) {
		service, reacher, _, _, session, _ := newExploreFixture(t)
		_, err := service.FetchIsochrone(context.Background(), session, ExploreInput{Minutes: -5})
		assert.ErrorIs(t, err, ErrInvalidInput)
		reacher.AssertNotCalled(t, "Fetch", mock.Anything, mock.Anything)
	})

	t.Run("invalid origin", func(t *testing.T) {
		service, _, _, _, session, _ := newExploreFixture(t)
		_, err := service.FetchIsochrone(context.Background(), session, ExploreInput{Origin: &[2]float64{95, 0}})
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("upstream failure keeps the map clear", func(t *testing.T) {
		service, reacher, views, publisher, session, _ := newExploreFixture(t)
		views.Get(session).SetDestinations(travelshed().Matched)
		reacher.On("Fetch", mock.Anything, mock.Anything).Return(nil, errors.New("reachable: endpoint 503"))

		_, err := service.FetchIsochrone(context.Background(), session, ExploreInput{})
		assert.ErrorIs(t, err, ErrUpstream)
		assert.Empty(t, views.Get(session).Layers().Features)
		assert.Empty(t, publisher.Kinds())
	})

	t.Run("switched to directions while fetching", func(t *testing.T) {
		service, reacher, views, _, session, store := newExploreFixture(t)
		reacher.On("Fetch", mock.Anything, mock.Anything).
			Run(func(args mock.Arguments) {
				require.NoError(t, store.Set(preferences.Method, preferences.MethodDirections))
			}).
			Return(travelshed(), nil)

		_, err := service.FetchIsochrone(context.Background(), session, ExploreInput{})
		assert.ErrorIs(t, err, ErrStale)
		assert.Empty(t, views.Get(session).Layers().Features)
	})
}

func TestExploreService_SelectPlace(t *testing.T) {
	service, reacher, views, publisher, session, store := newExploreFixture(t)
	reacher.On("Fetch", mock.Anything, mock.Anything).Return(travelshed(), nil)

	_, err := service.FetchIsochrone(context.Background(), session, ExploreInput{})
	require.NoError(t, err)

	require.NoError(t, service.SelectPlace(context.Background(), session, 7, "BICYCLE", 30))

	settings, err := store.Settings()
	require.NoError(t, err)
	assert.Equal(t, 7, settings.PlaceID)
	assert.Equal(t, "BICYCLE", settings.Mode)
	assert.Equal(t, 30, settings.ExploreTime)

	for _, f := range views.Get(session).Layers().Features {
		if f.Properties["layer"] != mapview.LayerDestination {
			continue
		}
		highlighted, _ := f.PropertyBool("highlighted")
		id, err := f.PropertyInt("id")
		require.NoError(t, err)
		assert.Equal(t, id == 7, highlighted)
	}

	assert.ErrorIs(t, service.SelectPlace(context.Background(), session, 0, "", 0), ErrInvalidInput)
	assert.Equal(t, []events.Kind{events.IsochroneFetched, events.PlaceSelected}, publisher.Kinds())
}
