package repositories

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"treasure-map-service/internal/domain"
)

// Initialize the SQLite database schema.
func InitSchema(db *sql.DB) error {
	return initSchema(db, `
	CREATE TABLE IF NOT EXISTS places (
		place_id INTEGER PRIMARY KEY,
		name TEXT NOT NULL,
		point VARCHAR(24) NOT NULL DEFAULT '0.000000;0.000000',
		entrance VARCHAR(24)
	);
	`, `
	CREATE INDEX IF NOT EXISTS idx_places_name
	ON places(name);
	`)
}

// Initialize the PostgreSQL database schema.
func InitPostgresSchema(db *sql.DB) error {
	return initSchema(db, `
	CREATE TABLE IF NOT EXISTS places (
		place_id BIGSERIAL PRIMARY KEY,
		name TEXT NOT NULL,
		point VARCHAR(24) NOT NULL DEFAULT '0.000000;0.000000',
		entrance VARCHAR(24)
	);
	`, `
	CREATE INDEX IF NOT EXISTS idx_places_name
	ON places(name);
	`)
}

func initSchema(db *sql.DB, statements ...string) error {
	if db == nil {
		return errors.New("init schema: DB is nil")
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("init schema: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	for i, stmt := range statements {
		if _, err := tx.Exec(stmt); err != nil {
			return fmt.Errorf("init schema: exec statement #%d: %w", i+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("init schema: commit tx: %w", err)
	}

	return nil
}

type PlaceSeed struct {
	PlaceID  int             `json:"place_id"`
	Name     string          `json:"name"`
	Point    domain.LatLong  `json:"point"`
	Entrance *domain.LatLong `json:"entrance"`
}

// Read place seeds from a JSON file.
func LoadSeeds(jsonPath string) ([]*domain.Place, error) {
	bytes, err := os.ReadFile(jsonPath)
	if err != nil {
		return nil, fmt.Errorf("seed places: read %q: %w", jsonPath, err)
	}

	var data []PlaceSeed
	if err := json.Unmarshal(bytes, &data); err != nil {
		return nil, fmt.Errorf("seed places: parse json: %w", err)
	}

	places := make([]*domain.Place, 0, len(data))
	for i, item := range data {
		if item.PlaceID <= 0 {
			return nil, fmt.Errorf("seed places: invalid place_id at index %d: %d", i+1, item.PlaceID)
		}

		name := strings.TrimSpace(item.Name)
		if name == "" {
			return nil, fmt.Errorf("seed places: item name at index %d: name cannot be empty", i+1)
		}

		places = append(places, &domain.Place{
			PlaceID:  item.PlaceID,
			Name:     name,
			Point:    item.Point,
			Entrance: item.Entrance,
		})
	}

	return places, nil
}

type placeSaver interface {
	SavePlace(ctx context.Context, place *domain.Place) error
}

// Populate the database with place data from a JSON file.
func SeedFromJSON(ctx context.Context, repo placeSaver, jsonPath string) error {
	places, err := LoadSeeds(jsonPath)
	if err != nil {
		return err
	}

	for _, p := range places {
		if err := repo.SavePlace(ctx, p); err != nil {
			return fmt.Errorf("seed places: save place_id=%d: %w", p.PlaceID, err)
		}
	}

	return nil
}
