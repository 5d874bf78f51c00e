package main

import (
	"context"
	"encoding/csv"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"tripplanner-api/internal/config"
	"tripplanner-api/internal/models"
	"tripplanner-api/internal/repository"

	"github.com/jackc/pgx/v5/pgxpool"
)

// requiredColumns must appear in the CSV header; any other known column is optional.
var requiredColumns = []string{"name", "latitude", "longitude"}

func main() {
	file := flag.String("file", "", "Path to the destinations CSV file to import")
	flag.Parse()

	if *file == "" {
		fmt.Println("Error: --file flag is required")
		os.Exit(1)
	}

	fmt.Printf("Starting import from file: %s\n", *file)

	f, err := os.Open(*file)
	if err != nil {
		fmt.Printf("Error opening file: %v\n", err)
		os.Exit(1)
	}
	defer f.Close()

	destinations, err := parseDestinations(f)
	if err != nil {
		fmt.Printf("Error parsing CSV: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Parsed %d destinations\n", len(destinations))

	// Load config
	cfg, err := config.LoadConfig("configs")
	if err != nil {
		fmt.Printf("Error loading config: %v\n", err)
		os.Exit(1)
	}

	ctx := context.Background()

	// Connect to DB
	pool, err := pgxpool.New(ctx, cfg.DBSource)
	if err != nil {
		fmt.Printf("Error connecting to database: %v\n", err)
		os.Exit(1)
	}
	defer pool.Close()

	repo := repository.NewRepository(pool)

	// Ensure tables exist
	if err := repo.Migrate(ctx); err != nil {
		fmt.Printf("Error creating tables: %v\n", err)
		os.Exit(1)
	}

	before, err := countDestinations(ctx, pool)
	if err != nil {
		fmt.Printf("Error counting destinations: %v\n", err)
		os.Exit(1)
	}

	// Insert records
	n, err := repo.InsertDestinations(ctx, destinations)
	if err != nil {
		fmt.Printf("Error inserting destinations: %v\n", err)
		os.Exit(1)
	}

	// Verify data
	if err := verifyImport(ctx, pool, before+n); err != nil {
		fmt.Printf("Error verifying import: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Successfully imported %d destinations\n", n)
}

// parseDestinations reads a CSV with a header row. Columns are matched by name, so
// their order does not matter.
func parseDestinations(r io.Reader) ([]models.Destination, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1 // Allow variable number of fields
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read header: %w", err)
	}
	columns := make(map[string]int, len(header))
	for i, name := range header {
		columns[strings.ToLower(strings.TrimSpace(name))] = i
	}
	for _, name := range requiredColumns {
		if _, ok := columns[name]; !ok {
			return nil, fmt.Errorf("missing required column %q", name)
		}
	}

	var destinations []models.Destination
	for line := 2; ; line++ {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read record: %w", err)
		}

		field := func(name string) string {
			i, ok := columns[name]
			if !ok || i >= len(record) {
				return ""
			}
			return strings.TrimSpace(record[i])
		}

		lat, err := strconv.ParseFloat(field("latitude"), 64)
		if err != nil || lat < -90 || lat > 90 {
			return nil, fmt.Errorf("line %d: invalid latitude: %q", line, field("latitude"))
		}
		lon, err := strconv.ParseFloat(field("longitude"), 64)
		if err != nil || lon < -180 || lon > 180 {
			return nil, fmt.Errorf("line %d: invalid longitude: %q", line, field("longitude"))
		}
		name := field("name")
		if name == "" {
			return nil, fmt.Errorf("line %d: name is empty", line)
		}

		published := true
		if v := field("published"); v != "" {
			if published, err = strconv.ParseBool(v); err != nil {
				return nil, fmt.Errorf("line %d: invalid published flag: %q", line, v)
			}
		}

		destinations = append(destinations, models.Destination{
			Name:        name,
			Description: field("description"),
			Address:     field("address"),
			City:        field("city"),
			State:       field("state"),
			Zip:         field("zip"),
			WebsiteURL:  field("website_url"),
			ImageURL:    field("image_url"),
			Published:   published,
			Latitude:    lat,
			Longitude:   lon,
		})
	}

	return destinations, nil
}

func countDestinations(ctx context.Context, pool *pgxpool.Pool) (int64, error) {
	var count int64
	if err := pool.QueryRow(ctx, "SELECT COUNT(*) FROM destinations").Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count records: %w", err)
	}
	return count, nil
}

func verifyImport(ctx context.Context, pool *pgxpool.Pool, expectedCount int64) error {
	count, err := countDestinations(ctx, pool)
	if err != nil {
		return err
	}

	if count != expectedCount {
		return fmt.Errorf("record count mismatch: expected %d, got %d", expectedCount, count)
	}

	// Check a sample geom
	var geom string
	err = pool.QueryRow(ctx, "SELECT ST_AsText(geom) FROM destinations ORDER BY id DESC LIMIT 1").Scan(&geom)
	if err != nil {
		return fmt.Errorf("failed to check geom: %w", err)
	}

	fmt.Printf("Sample geom: %s\n", geom)
	return nil
}
