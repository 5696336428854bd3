package memory

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/Devpy220/DiscoveryEvents/internal/domain"
)

type OrderRepository struct {
	s *Store
}

// Create runs the availability decrement and the order append under one
// lock hold, the memory-store equivalent of the Postgres transaction.
func (r *OrderRepository) Create(ctx context.Context, o *domain.Order, batchID int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, err := r.s.decrementLocked(batchID, o.Quantity); err != nil {
		return err
	}

	r.s.orderID++
	o.ID = r.s.orderID
	if o.CreatedAt.IsZero() {
		o.CreatedAt = time.Now().UTC()
	}
	stored := *o
	r.s.orders[o.ID] = &stored
	return nil
}

func (r *OrderRepository) GetByID(ctx context.Context, id int64) (*domain.Order, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	o, ok := r.s.orders[id]
	if !ok {
		return nil, domain.ErrOrderNotFound
	}
	copied := *o
	return &copied, nil
}

func (r *OrderRepository) ListByBuyer(ctx context.Context, buyerID int64) ([]*domain.Order, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	res := make([]*domain.Order, 0)
	for _, o := range r.s.orders {
		if o.BuyerID == buyerID {
			copied := *o
			res = append(res, &copied)
		}
	}
	sort.Slice(res, func(i, j int) bool { return res[i].ID > res[j].ID })
	return res, nil
}

// decrementLocked expects the caller to hold the write lock.
func (s *Store) decrementLocked(batchID int64, quantity int) (*domain.TicketBatch, error) {
	if quantity < 1 {
		return nil, fmt.Errorf("%w: quantity must be positive", domain.ErrValidation)
	}
	b, ok := s.ticketBatches[batchID]
	if !ok {
		return nil, domain.ErrTicketBatchNotFound
	}
	if b.Available < quantity {
		return nil, &domain.InsufficientInventoryError{Available: b.Available}
	}
	b.Available -= quantity
	copied := *b
	return &copied, nil
}
