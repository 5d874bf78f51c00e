package handler

import (
	"context"
	"net/http"
	"testing"

	"tripplanner-api/internal/models"
	"tripplanner-api/internal/service"

	"github.com/gin-gonic/gin"
	geojson "github.com/paulmach/go.geojson"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockExploreService is a mock implementation of the ExploreService interface
type MockExploreService struct {
	mock.Mock
}

func (m *MockExploreService) FetchIsochrone(ctx context.Context, session string, in service.ExploreInput) (*service.ExploreResult, error) {
	args := m.Called(ctx, session, in)
	result, _ := args.Get(0).(*service.ExploreResult)
	return result, args.Error(1)
}

func (m *MockExploreService) SelectPlace(ctx context.Context, session string, placeID int, mode string, exploreTime int) error {
	return m.Called(ctx, session, placeID, mode, exploreTime).Error(0)
}

func newExploreRouter(svc ExploreService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	NewExploreHandler(svc).RegisterRoutes(&router.RouterGroup)
	return router
}

func TestExploreHandler_FetchIsochrone(t *testing.T) {
	result := &service.ExploreResult{
		Origin:    [2]float64{39.95, -75.16},
		Isochrone: geojson.NewFeatureCollection(),
		Matched:   []models.Destination{{ID: 4, Name: "Fairmount Park"}},
		Layers:    geojson.NewFeatureCollection(),
	}

	tests := []struct {
		name           string
		body           string
		input          service.ExploreInput
		mockError      error
		skipMock       bool
		expectedStatus int
	}{
		{
			name:           "defaults from preferences",
			body:           "",
			input:          service.ExploreInput{},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "explicit options",
			body:           `{"origin": [39.96, -75.17], "minutes": 30, "mode": "BICYCLE"}`,
			input:          service.ExploreInput{Origin: &[2]float64{39.96, -75.17}, Minutes: 30, Mode: "BICYCLE"},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "malformed body",
			body:           `{"minutes": "soon"}`,
			skipMock:       true,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "reachability endpoint down",
			body:           "",
			input:          service.ExploreInput{},
			mockError:      service.ErrUpstream,
			expectedStatus: http.StatusBadGateway,
		},
		{
			name:           "switched views while fetching",
			body:           "",
			input:          service.ExploreInput{},
			mockError:      service.ErrStale,
			expectedStatus: http.StatusConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := new(MockExploreService)
			if !tt.skipMock {
				var res *service.ExploreResult
				if tt.mockError == nil {
					res = result
				}
				mockSvc.On("FetchIsochrone", mock.Anything, "s1", tt.input).Return(res, tt.mockError)
			}

			w := serve(newExploreRouter(mockSvc), http.MethodPost, "/api/sessions/s1/explore", tt.body)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedStatus == http.StatusOK {
				assertJSONBody(t, result, w)
			}
			mockSvc.AssertExpectations(t)
		})
	}
}

func TestExploreHandler_SelectPlace(t *testing.T) {
	mockSvc := new(MockExploreService)
	mockSvc.On("SelectPlace", mock.Anything, "s1", 7, "WALK", 45).Return(nil)
	mockSvc.On("SelectPlace", mock.Anything, "s1", 7, "", 0).Return(nil)
	router := newExploreRouter(mockSvc)

	w := serve(router, http.MethodPost, "/api/sessions/s1/places/7/select", `{"mode": "WALK", "exploreTime": 45}`)
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = serve(router, http.MethodPost, "/api/sessions/s1/places/7/select", "")
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = serve(router, http.MethodPost, "/api/sessions/s1/places/park/select", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	mockSvc.AssertExpectations(t)
}
