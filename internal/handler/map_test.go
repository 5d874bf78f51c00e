package handler

import (
	"context"
	"net/http"
	"testing"

	"tripplanner-api/internal/mapview"
	"tripplanner-api/internal/models"
	"tripplanner-api/internal/preferences"
	"tripplanner-api/internal/service"

	"github.com/gin-gonic/gin"
	geojson "github.com/paulmach/go.geojson"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockMapService is a mock implementation of the MapService interface
type MockMapService struct {
	mock.Mock
}

func (m *MockMapService) Catalog() mapview.Catalog {
	return m.Called().Get(0).(mapview.Catalog)
}

func (m *MockMapService) State(ctx context.Context, session string) (*service.MapState, error) {
	args := m.Called(ctx, session)
	state, _ := args.Get(0).(*service.MapState)
	return state, args.Error(1)
}

func TestMapHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)

	mockSvc := new(MockMapService)
	router := gin.New()
	NewMapHandler(mockSvc).RegisterRoutes(&router.RouterGroup)

	catalog := mapview.DefaultCatalog()
	fit := &mapview.Fit{Bounds: models.Bounds{South: 39.9, West: -75.2, North: 40.0, East: -75.1}, Options: mapview.DefaultFitOptions()}
	state := &service.MapState{Layers: geojson.NewFeatureCollection(), Fit: fit}

	mockSvc.On("Catalog").Return(catalog)
	mockSvc.On("State", mock.Anything, "s1").Return(state, nil)
	mockSvc.On("State", mock.Anything, "gone").Return(nil, preferences.ErrSessionNotFound)

	w := serve(router, http.MethodGet, "/map/layers", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assertJSONBody(t, catalog, w)

	w = serve(router, http.MethodGet, "/api/sessions/s1/map", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assertJSONBody(t, state, w)

	w = serve(router, http.MethodGet, "/api/sessions/gone/map", "")
	assert.Equal(t, http.StatusNotFound, w.Code)

	mockSvc.AssertExpectations(t)
}
