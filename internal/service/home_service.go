package service

import (
	"context"
	"fmt"
	"strings"

	"tripplanner-api/internal/models"
)

const (
	featuredCount = 4
	articlesCount = 20
)

// HomeService serves the landing page: featured destinations, recent articles and the
// destination typeahead.
type HomeService struct {
	repo    HomeRepository
	siteURL string
}

// HomeRepository interface for dependency injection
type HomeRepository interface {
	SearchDestinationsByText(ctx context.Context, query string) ([]models.Destination, error)
	RandomDestinations(ctx context.Context, limit int) ([]models.Destination, error)
	RecentArticles(ctx context.Context, limit int) ([]models.Article, error)
}

// NewHomeService creates a new home service. Article URLs are made absolute against
// siteURL.
func NewHomeService(repo HomeRepository, siteURL string) *HomeService {
	return &HomeService{repo: repo, siteURL: strings.TrimRight(siteURL, "/")}
}

// SearchDestinations searches published destinations using full-text search
func (s *HomeService) SearchDestinations(ctx context.Context, query string) ([]models.Destination, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, fmt.Errorf("%w: query cannot be empty", ErrInvalidInput)
	}

	destinations, err := s.repo.SearchDestinationsByText(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("service: failed to search destinations: %w", err)
	}

	return destinations, nil
}

// Featured returns a few published destinations picked at random
func (s *HomeService) Featured(ctx context.Context) ([]models.Destination, error) {
	destinations, err := s.repo.RandomDestinations(ctx, featuredCount)
	if err != nil {
		return nil, fmt.Errorf("service: failed to load featured destinations: %w", err)
	}
	return destinations, nil
}

// Articles returns the most recent published articles with their page URLs
func (s *HomeService) Articles(ctx context.Context) ([]models.Article, error) {
	articles, err := s.repo.RecentArticles(ctx, articlesCount)
	if err != nil {
		return nil, fmt.Errorf("service: failed to load articles: %w", err)
	}

	for i := range articles {
		articles[i].URL = s.articleURL(articles[i])
	}
	return articles, nil
}

// community profiles live under /learn, tips under /tips
func (s *HomeService) articleURL(a models.Article) string {
	section := "learn"
	if a.ContentType == models.ArticleTips {
		section = "tips"
	}
	return fmt.Sprintf("%s/%s/%s", s.siteURL, section, a.Slug)
}
