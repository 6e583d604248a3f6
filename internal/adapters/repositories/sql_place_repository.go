package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"treasure-map-service/internal/domain"
	"treasure-map-service/internal/platform/obs"
)

// SQLPlaceRepository is the PostgreSQL-backed PlaceRepository.
type SQLPlaceRepository struct {
	DB *sql.DB
}

func NewSQLPlaceRepository(db *sql.DB) *SQLPlaceRepository {
	return &SQLPlaceRepository{DB: db}
}

func (s *SQLPlaceRepository) ListPlaces(ctx context.Context) (_ []*domain.Place, err error) {
	defer obs.Time(ctx, "places.sql.ListPlaces")(&err)

	if s.DB == nil {
		return nil, errors.New("place repository: db is nil")
	}

	q := `
	SELECT place_id, name, point, entrance
    FROM places
    ORDER BY place_id;
	`

	rows, err := s.DB.QueryContext(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("list places: query places table: %w", err)
	}
	defer rows.Close()

	return scanPlaces(rows)
}

func (s *SQLPlaceRepository) GetPlace(ctx context.Context, id int) (_ *domain.Place, err error) {
	defer obs.Time(ctx, "places.sql.GetPlace")(&err)

	if s.DB == nil {
		return nil, errors.New("place repository: db is nil")
	}

	q := `
	SELECT place_id, name, point, entrance
    FROM places
    WHERE place_id = $1;
	`
	return scanPlace(s.DB.QueryRowContext(ctx, q, id), id)
}

// Insert a place, or update it when PlaceID is set.
func (s *SQLPlaceRepository) SavePlace(ctx context.Context, p *domain.Place) (err error) {
	defer obs.Time(ctx, "places.sql.SavePlace")(&err)

	if s.DB == nil {
		return errors.New("place repository: db is nil")
	}
	if p == nil {
		return errors.New("save place: place is nil")
	}
	if err := validatePlace(p); err != nil {
		return err
	}

	entrance := domain.NewNullLatLong(p.Entrance)

	if p.PlaceID == 0 {
		q := `
		INSERT INTO places (name, point, entrance)
	    VALUES ($1, $2, $3)
		RETURNING place_id;
		`
		if err := s.DB.QueryRowContext(ctx, q, p.Name, p.Point, entrance).Scan(&p.PlaceID); err != nil {
			return fmt.Errorf("save place: insert: %w", err)
		}
		return nil
	}

	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("save place place_id=%d: begin tx: %w", p.PlaceID, err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, upsertPlaceQuery, p.PlaceID, p.Name, p.Point, entrance); err != nil {
		return fmt.Errorf("save place place_id=%d: %w", p.PlaceID, err)
	}

	// Explicit ids do not advance the BIGSERIAL sequence.
	if _, err := tx.ExecContext(ctx, syncPlaceIDSequenceQuery); err != nil {
		return fmt.Errorf("save place place_id=%d: sync id sequence: %w", p.PlaceID, err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("save place place_id=%d: commit tx: %w", p.PlaceID, err)
	}

	return nil
}

const upsertPlaceQuery = `
	INSERT INTO places (place_id, name, point, entrance)
	VALUES ($1, $2, $3, $4)
	ON CONFLICT (place_id) DO UPDATE
	SET name = EXCLUDED.name,
		point = EXCLUDED.point,
		entrance = EXCLUDED.entrance;
	`

const syncPlaceIDSequenceQuery = `
	SELECT setval(
		pg_get_serial_sequence('places', 'place_id'),
		(SELECT COALESCE(MAX(place_id), 1) FROM places)
	);
	`
