package memory

import (
	"context"
	"sort"
	"strings"

	"github.com/Devpy220/DiscoveryEvents/internal/domain"
)

type EventRepository struct {
	s *Store
}

func (r *EventRepository) Create(ctx context.Context, e *domain.Event) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if e.MediaType == "" {
		e.MediaType = domain.MediaTypeImage
	}
	r.s.eventID++
	e.ID = r.s.eventID
	stored := *e
	r.s.events[e.ID] = &stored
	return nil
}

func (r *EventRepository) GetByID(ctx context.Context, id int64) (*domain.Event, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	e, ok := r.s.events[id]
	if !ok {
		return nil, domain.ErrEventNotFound
	}
	copied := *e
	return &copied, nil
}

func (r *EventRepository) List(ctx context.Context) ([]*domain.Event, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return r.collect(func(*domain.Event) bool { return true }), nil
}

func (r *EventRepository) ListByCategory(ctx context.Context, categoryID int64) ([]*domain.Event, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return r.collect(func(e *domain.Event) bool { return e.CategoryID == categoryID }), nil
}

func (r *EventRepository) ListByCity(ctx context.Context, city string) ([]*domain.Event, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return r.collect(func(e *domain.Event) bool { return strings.EqualFold(e.City, city) }), nil
}

// collect expects the caller to hold at least the read lock.
func (r *EventRepository) collect(keep func(*domain.Event) bool) []*domain.Event {
	res := make([]*domain.Event, 0, len(r.s.events))
	for _, e := range r.s.events {
		if keep(e) {
			copied := *e
			res = append(res, &copied)
		}
	}
	sort.Slice(res, func(i, j int) bool { return res[i].ID < res[j].ID })
	return res
}
