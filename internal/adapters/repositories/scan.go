package repositories

import (
	"database/sql"
	"errors"
	"fmt"

	"treasure-map-service/internal/domain"
)

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRow(row rowScanner) (*domain.Place, error) {
	var (
		p        domain.Place
		entrance domain.NullLatLong
	)
	if err := row.Scan(&p.PlaceID, &p.Name, &p.Point, &entrance); err != nil {
		return nil, err
	}
	p.Entrance = entrance.Ptr()
	return &p, nil
}

func scanPlace(row *sql.Row, id int) (*domain.Place, error) {
	p, err := scanRow(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.WrapErrorf(err, domain.ErrNotFound, "place %d", id)
	}
	if err != nil {
		return nil, fmt.Errorf("get place %d: scan row: %w", id, err)
	}
	return p, nil
}

func scanPlaces(rows *sql.Rows) ([]*domain.Place, error) {
	places := make([]*domain.Place, 0, 64)
	for rows.Next() {
		p, err := scanRow(rows)
		if err != nil {
			return nil, fmt.Errorf("list places: scan row: %w", err)
		}
		places = append(places, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list places: row iteration: %w", err)
	}

	return places, nil
}

// validatePlace rejects values the coordinate columns cannot hold.
func validatePlace(p *domain.Place) error {
	if _, err := p.Point.Value(); err != nil {
		return fmt.Errorf("save place: point: %w", err)
	}
	if _, err := domain.NewNullLatLong(p.Entrance).Value(); err != nil {
		return fmt.Errorf("save place: entrance: %w", err)
	}
	return nil
}
