package ports

import (
	"context"
	"treasure-map-service/internal/domain"
)

// Port: a boundary for storing and retrieving Place entities.
type PlaceRepository interface {
	// Retrieve all places ordered by id.
	ListPlaces(ctx context.Context) ([]*domain.Place, error)
	// Retrieve one place; domain.ErrNotFound when it does not exist.
	GetPlace(ctx context.Context, id int) (*domain.Place, error)
	// Insert a place, assigning PlaceID when it is zero, or update it otherwise.
	SavePlace(ctx context.Context, place *domain.Place) error
}
