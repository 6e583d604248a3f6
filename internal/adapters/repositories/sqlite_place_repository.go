package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"treasure-map-service/internal/domain"
	"treasure-map-service/internal/platform/obs"
)

// SQLite-backed implementation of the PlaceRepository port.
type SqlitePlaceRepository struct{ DB *sql.DB }

func NewSqlitePlaceRepository(db *sql.DB) *SqlitePlaceRepository {
	return &SqlitePlaceRepository{DB: db}
}

// Return all places stored in the database.
func (s *SqlitePlaceRepository) ListPlaces(ctx context.Context) (_ []*domain.Place, err error) {
	defer obs.Time(ctx, "places.sqlite.ListPlaces")(&err)

	if s.DB == nil {
		return nil, errors.New("sqlite place repository: DB is nil")
	}

	query := `
	SELECT
		place_id,
		name,
		point,
		entrance
	FROM places
	ORDER BY place_id;
	`
	rows, err := s.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list places: query places table: %w", err)
	}
	defer rows.Close()

	return scanPlaces(rows)
}

func (s *SqlitePlaceRepository) GetPlace(ctx context.Context, id int) (_ *domain.Place, err error) {
	defer obs.Time(ctx, "places.sqlite.GetPlace")(&err)

	if s.DB == nil {
		return nil, errors.New("sqlite place repository: DB is nil")
	}

	query := `
	SELECT
		place_id,
		name,
		point,
		entrance
	FROM places
	WHERE place_id = ?;
	`
	return scanPlace(s.DB.QueryRowContext(ctx, query, id), id)
}

// Insert a new place or replace an existing one.
func (s *SqlitePlaceRepository) SavePlace(ctx context.Context, p *domain.Place) (err error) {
	defer obs.Time(ctx, "places.sqlite.SavePlace")(&err)

	if s.DB == nil {
		return errors.New("sqlite place repository: DB is nil")
	}
	if p == nil {
		return errors.New("save place: place is nil")
	}
	if err := validatePlace(p); err != nil {
		return err
	}

	entrance := domain.NewNullLatLong(p.Entrance)

	if p.PlaceID == 0 {
		res, err := s.DB.ExecContext(ctx, `
		INSERT INTO places (
			name,
			point,
			entrance
		)
		VALUES (?, ?, ?);
		`, p.Name, p.Point, entrance)
		if err != nil {
			return fmt.Errorf("save place: insert: %w", err)
		}

		id, err := res.LastInsertId()
		if err != nil {
			return fmt.Errorf("save place: last insert id: %w", err)
		}
		p.PlaceID = int(id)
		return nil
	}

	if _, err := s.DB.ExecContext(ctx, `
	INSERT OR REPLACE INTO places (
		place_id,
		name,
		point,
		entrance
	)
	VALUES (?, ?, ?, ?);
	`, p.PlaceID, p.Name, p.Point, entrance); err != nil {
		return fmt.Errorf("save place place_id=%d: %w", p.PlaceID, err)
	}

	return nil
}
