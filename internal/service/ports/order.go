package ports

import (
	"context"

	"github.com/Devpy220/DiscoveryEvents/internal/domain"
)

type OrderRepo interface {
	// Create persists the order and decrements the batch availability as
	// one atomic step: either both land or neither does. It fails with
	// InsufficientInventoryError when the batch no longer covers
	// o.Quantity.
	Create(ctx context.Context, o *domain.Order, batchID int64) error
	GetByID(ctx context.Context, id int64) (*domain.Order, error)
	ListByBuyer(ctx context.Context, buyerID int64) ([]*domain.Order, error)
}
