package repository

import (
	"context"
	"errors"
	"fmt"

	"tripplanner-api/internal/models"

	"github.com/jackc/pgx/v5"
)

const destinationColumns = `
	id,
	name,
	description,
	address,
	city,
	state,
	zip,
	website_url,
	image_url,
	published,
	ST_Y(geom::geometry) as latitude,
	ST_X(geom::geometry) as longitude
`

// SearchDestinationsByText performs a full-text search on published destinations
func (r *Repository) SearchDestinationsByText(ctx context.Context, query string) ([]models.Destination, error) {
	sql := `
		SELECT` + destinationColumns + `
		FROM destinations
		WHERE published AND search_tsvector @@ plainto_tsquery('english', $1)
		ORDER BY ts_rank(search_tsvector, plainto_tsquery('english', $1)) DESC, name
		LIMIT 10
	`

	rows, err := r.db.Query(ctx, sql, query)
	if err != nil {
		return nil, fmt.Errorf("repository: failed to execute search query: %w", err)
	}
	return collectDestinations(rows)
}

// RandomDestinations returns up to limit published destinations in random order
func (r *Repository) RandomDestinations(ctx context.Context, limit int) ([]models.Destination, error) {
	sql := `
		SELECT` + destinationColumns + `
		FROM destinations
		WHERE published
		ORDER BY random()
		LIMIT $1
	`

	rows, err := r.db.Query(ctx, sql, limit)
	if err != nil {
		return nil, fmt.Errorf("repository: failed to execute featured query: %w", err)
	}
	return collectDestinations(rows)
}

// FindDestination looks up a single published destination. It returns nil when no
// published destination has that ID.
func (r *Repository) FindDestination(ctx context.Context, id int) (*models.Destination, error) {
	sql := `
		SELECT` + destinationColumns + `
		FROM destinations
		WHERE id = $1 AND published
	`

	dest, err := scanDestination(r.db.QueryRow(ctx, sql, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("repository: failed to find destination: %w", err)
	}
	return &dest, nil
}

// InsertDestinations bulk-loads destinations with COPY and returns the number of rows written
func (r *Repository) InsertDestinations(ctx context.Context, destinations []models.Destination) (int64, error) {
	n, err := r.db.CopyFrom(
		ctx,
		pgx.Identifier{"destinations"},
		[]string{"name", "description", "address", "city", "state", "zip", "website_url", "image_url", "published", "geom"},
		pgx.CopyFromSlice(len(destinations), func(i int) ([]interface{}, error) {
			d := destinations[i]
			geom := fmt.Sprintf("SRID=4326;POINT(%f %f)", d.Longitude, d.Latitude) // PostGIS format: lon lat
			return []interface{}{d.Name, d.Description, d.Address, d.City, d.State, d.Zip, d.WebsiteURL, d.ImageURL, d.Published, geom}, nil
		}),
	)
	if err != nil {
		return 0, fmt.Errorf("repository: failed to copy destinations: %w", err)
	}
	return n, nil
}

func collectDestinations(rows pgx.Rows) ([]models.Destination, error) {
	defer rows.Close()

	destinations := []models.Destination{}
	for rows.Next() {
		dest, err := scanDestination(rows)
		if err != nil {
			return nil, fmt.Errorf("repository: failed to scan destination: %w", err)
		}
		destinations = append(destinations, dest)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repository: error iterating rows: %w", err)
	}

	return destinations, nil
}

func scanDestination(row pgx.Row) (models.Destination, error) {
	var d models.Destination
	err := row.Scan(
		&d.ID,
		&d.Name,
		&d.Description,
		&d.Address,
		&d.City,
		&d.State,
		&d.Zip,
		&d.WebsiteURL,
		&d.ImageURL,
		&d.Published,
		&d.Latitude,
		&d.Longitude,
	)
	return d, err
}
