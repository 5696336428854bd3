package ports

import (
	"context"

	"github.com/Devpy220/DiscoveryEvents/internal/domain"
)

type ReferenceRepo interface {
	ListCategories(ctx context.Context) ([]*domain.Category, error)
	GetCategory(ctx context.Context, id int64) (*domain.Category, error)
	ListCities(ctx context.Context) ([]*domain.City, error)
	GetCity(ctx context.Context, id int64) (*domain.City, error)
}
