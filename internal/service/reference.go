package service

import (
	"context"

	"github.com/Devpy220/DiscoveryEvents/internal/domain"
	"github.com/Devpy220/DiscoveryEvents/internal/service/ports"
)

// ReferenceService is a read-only passthrough over the seeded lookup
// tables.
type ReferenceService struct {
	repo ports.ReferenceRepo
}

func NewReferenceService(repo ports.ReferenceRepo) *ReferenceService {
	return &ReferenceService{repo: repo}
}

func (s *ReferenceService) ListCategories(ctx context.Context) ([]*domain.Category, error) {
	return s.repo.ListCategories(ctx)
}

func (s *ReferenceService) GetCategory(ctx context.Context, id int64) (*domain.Category, error) {
	return s.repo.GetCategory(ctx, id)
}

func (s *ReferenceService) ListCities(ctx context.Context) ([]*domain.City, error) {
	return s.repo.ListCities(ctx)
}

func (s *ReferenceService) GetCity(ctx context.Context, id int64) (*domain.City, error) {
	return s.repo.GetCity(ctx, id)
}
