package memory

import (
	"context"
	"sort"
	"time"

	"github.com/Devpy220/DiscoveryEvents/internal/domain"
)

type TicketRepository struct {
	s *Store
}

func (r *TicketRepository) CreateCategory(ctx context.Context, c *domain.TicketCategory) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	r.s.ticketCategoryID++
	c.ID = r.s.ticketCategoryID
	stored := *c
	r.s.ticketCategories[c.ID] = &stored
	return nil
}

func (r *TicketRepository) GetCategory(ctx context.Context, id int64) (*domain.TicketCategory, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	c, ok := r.s.ticketCategories[id]
	if !ok {
		return nil, domain.ErrTicketCategoryNotFound
	}
	copied := *c
	return &copied, nil
}

func (r *TicketRepository) ListCategories(ctx context.Context) ([]*domain.TicketCategory, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return r.collectCategories(func(*domain.TicketCategory) bool { return true }), nil
}

func (r *TicketRepository) ListCategoriesByEvent(ctx context.Context, eventID int64) ([]*domain.TicketCategory, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return r.collectCategories(func(c *domain.TicketCategory) bool { return c.EventID == eventID }), nil
}

func (r *TicketRepository) CreateBatch(ctx context.Context, b *domain.TicketBatch) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	r.s.ticketBatchID++
	b.ID = r.s.ticketBatchID
	if b.CreatedAt.IsZero() {
		b.CreatedAt = time.Now().UTC()
	}
	stored := *b
	r.s.ticketBatches[b.ID] = &stored
	return nil
}

func (r *TicketRepository) GetBatch(ctx context.Context, id int64) (*domain.TicketBatch, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	b, ok := r.s.ticketBatches[id]
	if !ok {
		return nil, domain.ErrTicketBatchNotFound
	}
	copied := *b
	return &copied, nil
}

func (r *TicketRepository) ListBatches(ctx context.Context) ([]*domain.TicketBatch, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return r.collectBatches(func(*domain.TicketBatch) bool { return true }), nil
}

func (r *TicketRepository) ListBatchesByEvent(ctx context.Context, eventID int64) ([]*domain.TicketBatch, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return r.collectBatches(func(b *domain.TicketBatch) bool { return b.EventID == eventID }), nil
}

func (r *TicketRepository) ListBatchesByCategory(ctx context.Context, categoryID int64) ([]*domain.TicketBatch, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return r.collectBatches(func(b *domain.TicketBatch) bool { return b.CategoryID == categoryID }), nil
}

// DecrementAvailability holds the write lock across the check and the
// subtraction, so two concurrent purchases can never both consume the
// same last units.
func (r *TicketRepository) DecrementAvailability(ctx context.Context, batchID int64, quantity int) (*domain.TicketBatch, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return r.s.decrementLocked(batchID, quantity)
}

func (r *TicketRepository) DeactivateExpiredBatches(ctx context.Context, now time.Time) ([]*domain.TicketBatch, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	var res []*domain.TicketBatch
	for _, b := range r.s.ticketBatches {
		if b.Active && b.EndDate != nil && b.EndDate.Before(now) {
			b.Active = false
			copied := *b
			res = append(res, &copied)
		}
	}
	sort.Slice(res, func(i, j int) bool { return res[i].ID < res[j].ID })
	return res, nil
}

func (r *TicketRepository) CreateTicket(ctx context.Context, t *domain.Ticket) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	r.s.ticketID++
	t.ID = r.s.ticketID
	if t.CreatedAt.IsZero() {
		t.CreatedAt = time.Now().UTC()
	}
	stored := *t
	r.s.tickets[t.ID] = &stored
	return nil
}

func (r *TicketRepository) GetTicket(ctx context.Context, id int64) (*domain.Ticket, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	t, ok := r.s.tickets[id]
	if !ok {
		return nil, domain.ErrTicketNotFound
	}
	copied := *t
	return &copied, nil
}

func (r *TicketRepository) ListTickets(ctx context.Context) ([]*domain.Ticket, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return r.collectTickets(func(*domain.Ticket) bool { return true }), nil
}

func (r *TicketRepository) ListTicketsByEvent(ctx context.Context, eventID int64) ([]*domain.Ticket, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return r.collectTickets(func(t *domain.Ticket) bool { return t.EventID == eventID }), nil
}

func (r *TicketRepository) ListTicketsBySeller(ctx context.Context, sellerID int64) ([]*domain.Ticket, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return r.collectTickets(func(t *domain.Ticket) bool { return t.SellerID == sellerID }), nil
}

func (r *TicketRepository) collectCategories(keep func(*domain.TicketCategory) bool) []*domain.TicketCategory {
	res := make([]*domain.TicketCategory, 0, len(r.s.ticketCategories))
	for _, c := range r.s.ticketCategories {
		if keep(c) {
			copied := *c
			res = append(res, &copied)
		}
	}
	sort.Slice(res, func(i, j int) bool { return res[i].ID < res[j].ID })
	return res
}

func (r *TicketRepository) collectBatches(keep func(*domain.TicketBatch) bool) []*domain.TicketBatch {
	res := make([]*domain.TicketBatch, 0, len(r.s.ticketBatches))
	for _, b := range r.s.ticketBatches {
		if keep(b) {
			copied := *b
			res = append(res, &copied)
		}
	}
	sort.Slice(res, func(i, j int) bool { return res[i].ID < res[j].ID })
	return res
}

func (r *TicketRepository) collectTickets(keep func(*domain.Ticket) bool) []*domain.Ticket {
	res := make([]*domain.Ticket, 0, len(r.s.tickets))
	for _, t := range r.s.tickets {
		if keep(t) {
			copied := *t
			res = append(res, &copied)
		}
	}
	sort.Slice(res, func(i, j int) bool { return res[i].ID < res[j].ID })
	return res
}
