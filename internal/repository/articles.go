package repository

import (
	"context"
	"fmt"

	"tripplanner-api/internal/models"
)

// RecentArticles returns up to limit published articles, newest first
func (r *Repository) RecentArticles(ctx context.Context, limit int) ([]models.Article, error) {
	sql := `
		SELECT id, title, slug, content_type, wide_image, narrow_image, publish_date
		FROM articles
		WHERE published AND publish_date IS NOT NULL
		ORDER BY publish_date DESC
		LIMIT $1
	`

	rows, err := r.db.Query(ctx, sql, limit)
	if err != nil {
		return nil, fmt.Errorf("repository: failed to execute articles query: %w", err)
	}
	defer rows.Close()

	articles := []models.Article{}
	for rows.Next() {
		var a models.Article
		if err := rows.Scan(&a.ID, &a.Title, &a.Slug, &a.ContentType, &a.WideImage, &a.NarrowImage, &a.PublishDate); err != nil {
			return nil, fmt.Errorf("repository: failed to scan article: %w", err)
		}
		articles = append(articles, a)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repository: error iterating rows: %w", err)
	}

	return articles, nil
}
