package ports

import (
	"context"

	"github.com/Devpy220/DiscoveryEvents/internal/domain"
)

type EventRepo interface {
	Create(ctx context.Context, e *domain.Event) error
	GetByID(ctx context.Context, id int64) (*domain.Event, error)
	List(ctx context.Context) ([]*domain.Event, error)
	ListByCategory(ctx context.Context, categoryID int64) ([]*domain.Event, error)
	ListByCity(ctx context.Context, city string) ([]*domain.Event, error)
}
