package repositories

import (
	"context"
	"errors"
	"slices"
	"sync"

	"treasure-map-service/internal/domain"
)

// MemoryPlaceRepository keeps places in a map. Used by tests.
type MemoryPlaceRepository struct {
	mu     sync.Mutex
	m      map[int]domain.Place
	nextID int

	// Err, when set, is returned by every call.
	Err error
}

func NewMemoryPlaceRepository(places ...domain.Place) *MemoryPlaceRepository {
	r := &MemoryPlaceRepository{m: make(map[int]domain.Place, len(places))}
	for _, p := range places {
		r.m[p.PlaceID] = p
		r.nextID = max(r.nextID, p.PlaceID)
	}
	return r
}

func (r *MemoryPlaceRepository) ListPlaces(ctx context.Context) ([]*domain.Place, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.Err != nil {
		return nil, r.Err
	}

	ids := make([]int, 0, len(r.m))
	for id := range r.m {
		ids = append(ids, id)
	}
	slices.Sort(ids)

	places := make([]*domain.Place, 0, len(ids))
	for _, id := range ids {
		p := r.m[id]
		places = append(places, &p)
	}
	return places, nil
}

func (r *MemoryPlaceRepository) GetPlace(ctx context.Context, id int) (*domain.Place, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.Err != nil {
		return nil, r.Err
	}

	p, ok := r.m[id]
	if !ok {
		return nil, domain.NewErrorf(domain.ErrNotFound, "place %d", id)
	}
	return &p, nil
}

func (r *MemoryPlaceRepository) SavePlace(ctx context.Context, p *domain.Place) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.Err != nil {
		return r.Err
	}
	if p == nil {
		return errors.New("save place: place is nil")
	}
	if err := validatePlace(p); err != nil {
		return err
	}

	if p.PlaceID == 0 {
		r.nextID++
		p.PlaceID = r.nextID
	}
	r.nextID = max(r.nextID, p.PlaceID)
	r.m[p.PlaceID] = *p
	return nil
}
