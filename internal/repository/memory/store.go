// Package memory holds the map-backed store used in tests and for
// running the service without Postgres. A single mutex guards every
// entity map; at this scale contention on one lock is cheaper than
// per-batch coordination.
package memory

import (
	"sync"

	"github.com/Devpy220/DiscoveryEvents/internal/domain"
)

type Store struct {
	mu sync.RWMutex

	users            map[int64]*domain.User
	categories       map[int64]*domain.Category
	cities           map[int64]*domain.City
	events           map[int64]*domain.Event
	ticketCategories map[int64]*domain.TicketCategory
	ticketBatches    map[int64]*domain.TicketBatch
	tickets          map[int64]*domain.Ticket
	orders           map[int64]*domain.Order

	userID           int64
	categoryID       int64
	cityID           int64
	eventID          int64
	ticketCategoryID int64
	ticketBatchID    int64
	ticketID         int64
	orderID          int64
}

// Per-entity views let one Store back every ports interface while the
// method sets keep the same names as the Postgres repositories.
func (s *Store) Users() *UserRepository           { return &UserRepository{s: s} }
func (s *Store) Reference() *ReferenceRepository  { return &ReferenceRepository{s: s} }
func (s *Store) Events() *EventRepository         { return &EventRepository{s: s} }
func (s *Store) Tickets() *TicketRepository       { return &TicketRepository{s: s} }
func (s *Store) Orders() *OrderRepository         { return &OrderRepository{s: s} }

func NewStore() *Store {
	return &Store{
		users:            make(map[int64]*domain.User),
		categories:       make(map[int64]*domain.Category),
		cities:           make(map[int64]*domain.City),
		events:           make(map[int64]*domain.Event),
		ticketCategories: make(map[int64]*domain.TicketCategory),
		ticketBatches:    make(map[int64]*domain.TicketBatch),
		tickets:          make(map[int64]*domain.Ticket),
		orders:           make(map[int64]*domain.Order),
	}
}

// Seed loads the same reference rows the Postgres migrations insert.
func (s *Store) Seed() {
	categories := []*domain.Category{
		{Name: "Música", Icon: "Music", Color: "primary", EventCount: 428},
		{Name: "Esportes", Icon: "ActivitySquare", Color: "secondary", EventCount: 215},
		{Name: "Cinema", Icon: "Film", Color: "accent", EventCount: 187},
		{Name: "Stand-up", Icon: "Mic2", Color: "success", EventCount: 143},
		{Name: "Teatro", Icon: "Theater", Color: "warning", EventCount: 106},
		{Name: "Outros", Icon: "MoreHorizontal", Color: "gray", EventCount: 92},
	}
	cities := []*domain.City{
		{Name: "Rio de Janeiro", Image: "https://images.unsplash.com/photo-1483729558449-99ef09a8c325", EventCount: 246},
		{Name: "São Paulo", Image: "https://images.unsplash.com/photo-1578002171197-b59e1f8c5ccf", EventCount: 312},
		{Name: "Belo Horizonte", Image: "https://images.unsplash.com/photo-1564500601744-b4caa58f7e79", EventCount: 174},
		{Name: "Salvador", Image: "https://images.unsplash.com/photo-1586904616934-593919871db4", EventCount: 156},
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for _, c := range categories {
		s.categoryID++
		c.ID = s.categoryID
		s.categories[c.ID] = c
	}
	for _, c := range cities {
		s.cityID++
		c.ID = s.cityID
		s.cities[c.ID] = c
	}
}
