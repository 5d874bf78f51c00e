package service

import (
	"context"
	"testing"
	"time"

	"tripplanner-api/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockHomeRepository is a mock implementation of the HomeRepository interface
type MockHomeRepository struct {
	mock.Mock
}

func (m *MockHomeRepository) SearchDestinationsByText(ctx context.Context, query string) ([]models.Destination, error) {
	args := m.Called(ctx, query)
	return args.Get(0).([]models.Destination), args.Error(1)
}

func (m *MockHomeRepository) RandomDestinations(ctx context.Context, limit int) ([]models.Destination, error) {
	args := m.Called(ctx, limit)
	return args.Get(0).([]models.Destination), args.Error(1)
}

func (m *MockHomeRepository) RecentArticles(ctx context.Context, limit int) ([]models.Article, error) {
	args := m.Called(ctx, limit)
	return args.Get(0).([]models.Article), args.Error(1)
}

func TestHomeService_SearchDestinations(t *testing.T) {
	garden := models.Destination{
		ID:        1,
		Name:      "Bartram's Garden",
		Address:   "5400 Lindbergh Blvd",
		City:      "Philadelphia",
		Published: true,
		Latitude:  39.9325,
		Longitude: -75.2125,
	}

	tests := []struct {
		name             string
		query            string
		mockDestinations []models.Destination
		mockError        error
		expected         []models.Destination
		expectError      bool
	}{
		{
			name:        "empty query",
			query:       "  ",
			expectError: true,
		},
		{
			name:             "successful search with results",
			query:            "garden",
			mockDestinations: []models.Destination{garden},
			expected:         []models.Destination{garden},
		},
		{
			name:             "successful search with no results",
			query:            "nonexistent place",
			mockDestinations: []models.Destination{},
			expected:         []models.Destination{},
		},
		{
			name:        "repository error",
			query:       "garden",
			mockError:   assert.AnError,
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Setup
			mockRepo := new(MockHomeRepository)
			service := NewHomeService(mockRepo, "http://localhost:8080")

			if tt.name != "empty query" {
				mockRepo.On("SearchDestinationsByText", mock.Anything, tt.query).Return(tt.mockDestinations, tt.mockError)
			}

			// Execute
			result, err := service.SearchDestinations(context.Background(), tt.query)

			// Assert
			if tt.expectError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expected, result)
			}

			mockRepo.AssertExpectations(t)
		})
	}
}

func TestHomeService_Featured(t *testing.T) {
	mockRepo := new(MockHomeRepository)
	service := NewHomeService(mockRepo, "http://localhost:8080")

	featured := []models.Destination{{ID: 1}, {ID: 2}, {ID: 3}, {ID: 4}}
	mockRepo.On("RandomDestinations", mock.Anything, 4).Return(featured, nil).Once()
	mockRepo.On("RandomDestinations", mock.Anything, 4).Return([]models.Destination(nil), assert.AnError).Once()

	result, err := service.Featured(context.Background())
	require.NoError(t, err)
	assert.Equal(t, featured, result)

	_, err = service.Featured(context.Background())
	assert.ErrorIs(t, err, assert.AnError)
}

func TestHomeService_Articles(t *testing.T) {
	mockRepo := new(MockHomeRepository)
	service := NewHomeService(mockRepo, "https://gophillygo.org/")

	published := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	mockRepo.On("RecentArticles", mock.Anything, 20).Return([]models.Article{
		{ID: 1, Title: "Meet Germantown", Slug: "meet-germantown", ContentType: models.ArticleProfile, PublishDate: published},
		{ID: 2, Title: "Riding the Trails", Slug: "riding-the-trails", ContentType: models.ArticleTips, PublishDate: published},
	}, nil)

	articles, err := service.Articles(context.Background())
	require.NoError(t, err)
	require.Len(t, articles, 2)
	assert.Equal(t, "https://gophillygo.org/learn/meet-germantown", articles[0].URL)
	assert.Equal(t, "https://gophillygo.org/tips/riding-the-trails", articles[1].URL)
}
