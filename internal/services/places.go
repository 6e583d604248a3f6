package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"treasure-map-service/internal/domain"
	"treasure-map-service/internal/ports"
)

var ErrNameRequired = fmt.Errorf("%w: name is required", domain.ErrParse)

type CreatePlaceRequest struct {
	PlaceID  int
	Name     string
	Point    domain.LatLong
	Entrance *domain.LatLong
}

// CreatePlace stores a new place, or replaces one when PlaceID is set.
func CreatePlace(ctx context.Context, req CreatePlaceRequest, repo ports.PlaceRepository) (*domain.Place, error) {
	if repo == nil {
		return nil, errors.New("create place: repository is nil")
	}

	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, ErrNameRequired
	}

	p := &domain.Place{
		PlaceID:  req.PlaceID,
		Name:     name,
		Point:    req.Point,
		Entrance: req.Entrance,
	}
	if err := repo.SavePlace(ctx, p); err != nil {
		return nil, fmt.Errorf("create place: %w", err)
	}

	return p, nil
}
