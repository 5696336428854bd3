package memory

import (
	"context"
	"sort"

	"github.com/Devpy220/DiscoveryEvents/internal/domain"
)

type ReferenceRepository struct {
	s *Store
}

func (r *ReferenceRepository) ListCategories(ctx context.Context) ([]*domain.Category, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	res := make([]*domain.Category, 0, len(r.s.categories))
	for _, c := range r.s.categories {
		copied := *c
		res = append(res, &copied)
	}
	sort.Slice(res, func(i, j int) bool { return res[i].ID < res[j].ID })
	return res, nil
}

func (r *ReferenceRepository) GetCategory(ctx context.Context, id int64) (*domain.Category, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	c, ok := r.s.categories[id]
	if !ok {
		return nil, domain.ErrCategoryNotFound
	}
	copied := *c
	return &copied, nil
}

func (r *ReferenceRepository) ListCities(ctx context.Context) ([]*domain.City, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	res := make([]*domain.City, 0, len(r.s.cities))
	for _, c := range r.s.cities {
		copied := *c
		res = append(res, &copied)
	}
	sort.Slice(res, func(i, j int) bool { return res[i].ID < res[j].ID })
	return res, nil
}

func (r *ReferenceRepository) GetCity(ctx context.Context, id int64) (*domain.City, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	c, ok := r.s.cities[id]
	if !ok {
		return nil, domain.ErrCityNotFound
	}
	copied := *c
	return &copied, nil
}
