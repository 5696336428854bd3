package memory

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Devpy220/DiscoveryEvents/internal/domain"
)

func seedBatch(t *testing.T, s *Store, available int) *domain.TicketBatch {
	t.Helper()
	ctx := context.Background()

	user := &domain.User{Username: "seller", Password: "x", Email: "seller@example.com", FullName: "Seller"}
	require.NoError(t, s.Users().Create(ctx, user))

	event := &domain.Event{
		Title:        "Show",
		Description:  "desc",
		CategoryID:   1,
		City:         "Rio de Janeiro",
		Street:       "Rua A",
		Number:       "1",
		Venue:        "Arena",
		StartDate:    time.Now().Add(24 * time.Hour),
		SellerID:     user.ID,
		TotalTickets: available,
	}
	require.NoError(t, s.Events().Create(ctx, event))

	category := &domain.TicketCategory{EventID: event.ID, Name: "Pista"}
	require.NoError(t, s.Tickets().CreateCategory(ctx, category))

	batch := &domain.TicketBatch{
		EventID:    event.ID,
		CategoryID: category.ID,
		SellerID:   user.ID,
		Name:       "Lote 1",
		Price:      decimal.RequireFromString("19.99"),
		Quantity:   available,
		Available:  available,
		Active:     true,
	}
	require.NoError(t, s.Tickets().CreateBatch(ctx, batch))
	return batch
}

func TestStore_Seed(t *testing.T) {
	s := NewStore()
	s.Seed()

	categories, err := s.Reference().ListCategories(context.Background())
	require.NoError(t, err)
	assert.Len(t, categories, 6)

	cities, err := s.Reference().ListCities(context.Background())
	require.NoError(t, err)
	assert.Len(t, cities, 4)
}

func TestUserRepository_UniqueUsernameAndEmail(t *testing.T) {
	s := NewStore()
	ctx := context.Background()

	first := &domain.User{Username: "alice", Password: "x", Email: "alice@example.com", FullName: "Alice"}
	require.NoError(t, s.Users().Create(ctx, first))

	err := s.Users().Create(ctx, &domain.User{Username: "alice", Password: "x", Email: "other@example.com", FullName: "A"})
	assert.ErrorIs(t, err, domain.ErrUsernameTaken)

	err = s.Users().Create(ctx, &domain.User{Username: "bob", Password: "x", Email: "alice@example.com", FullName: "B"})
	assert.ErrorIs(t, err, domain.ErrEmailTaken)
}

func TestTicketRepository_DecrementAvailability(t *testing.T) {
	s := NewStore()
	batch := seedBatch(t, s, 10)
	ctx := context.Background()

	updated, err := s.Tickets().DecrementAvailability(ctx, batch.ID, 4)
	require.NoError(t, err)
	assert.Equal(t, 6, updated.Available)

	_, err = s.Tickets().DecrementAvailability(ctx, batch.ID, 7)
	require.Error(t, err)

	var insufficient *domain.InsufficientInventoryError
	require.ErrorAs(t, err, &insufficient)
	assert.Equal(t, 6, insufficient.Available)

	// the failed attempt must not have consumed anything
	got, err := s.Tickets().GetBatch(ctx, batch.ID)
	require.NoError(t, err)
	assert.Equal(t, 6, got.Available)
}

func TestTicketRepository_DecrementAvailability_UnknownBatch(t *testing.T) {
	s := NewStore()

	_, err := s.Tickets().DecrementAvailability(context.Background(), 42, 1)

	assert.ErrorIs(t, err, domain.ErrTicketBatchNotFound)
}

func TestTicketRepository_DeactivateExpiredBatches(t *testing.T) {
	s := NewStore()
	batch := seedBatch(t, s, 10)
	ctx := context.Background()

	past := time.Now().Add(-time.Hour)
	expired := &domain.TicketBatch{
		EventID:    batch.EventID,
		CategoryID: batch.CategoryID,
		SellerID:   batch.SellerID,
		Name:       "Lote esgotado",
		Price:      decimal.RequireFromString("9.99"),
		Quantity:   10,
		Available:  10,
		EndDate:    &past,
		Active:     true,
	}
	require.NoError(t, s.Tickets().CreateBatch(ctx, expired))

	deactivated, err := s.Tickets().DeactivateExpiredBatches(ctx, time.Now())
	require.NoError(t, err)
	require.Len(t, deactivated, 1)
	assert.Equal(t, expired.ID, deactivated[0].ID)
	assert.False(t, deactivated[0].Active)

	// the open-ended batch stays active
	got, err := s.Tickets().GetBatch(ctx, batch.ID)
	require.NoError(t, err)
	assert.True(t, got.Active)

	// a second sweep finds nothing new
	again, err := s.Tickets().DeactivateExpiredBatches(ctx, time.Now())
	require.NoError(t, err)
	assert.Empty(t, again)
}

func TestOrderRepository_Create_DecrementsAtomically(t *testing.T) {
	s := NewStore()
	batch := seedBatch(t, s, 10)
	ctx := context.Background()

	ticket := &domain.Ticket{EventID: batch.EventID, BatchID: batch.ID, SellerID: batch.SellerID, Price: batch.Price}
	require.NoError(t, s.Tickets().CreateTicket(ctx, ticket))

	order := &domain.Order{
		BuyerID:    1,
		TicketID:   ticket.ID,
		Quantity:   3,
		TotalPrice: batch.Price.Mul(decimal.NewFromInt(3)),
		Status:     domain.OrderStatusCompleted,
	}
	require.NoError(t, s.Orders().Create(ctx, order, batch.ID))
	assert.NotZero(t, order.ID)
	assert.False(t, order.CreatedAt.IsZero())

	got, err := s.Tickets().GetBatch(ctx, batch.ID)
	require.NoError(t, err)
	assert.Equal(t, 7, got.Available)

	// a failing order leaves the counter untouched
	tooMany := &domain.Order{BuyerID: 1, TicketID: ticket.ID, Quantity: 8, Status: domain.OrderStatusCompleted}
	err = s.Orders().Create(ctx, tooMany, batch.ID)
	assert.ErrorIs(t, err, domain.ErrInsufficientInventory)

	got, err = s.Tickets().GetBatch(ctx, batch.ID)
	require.NoError(t, err)
	assert.Equal(t, 7, got.Available)
}

// Many buyers racing for limited stock must never drive the counter
// below zero, and exactly Available units may be sold in total.
func TestOrderRepository_Create_NoOversellUnderContention(t *testing.T) {
	const (
		stock  = 30
		buyers = 100
	)

	s := NewStore()
	batch := seedBatch(t, s, stock)
	ctx := context.Background()

	ticket := &domain.Ticket{EventID: batch.EventID, BatchID: batch.ID, SellerID: batch.SellerID, Price: batch.Price}
	require.NoError(t, s.Tickets().CreateTicket(ctx, ticket))

	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		succeeded int
	)
	for i := 0; i < buyers; i++ {
		wg.Add(1)
		go func(buyerID int64) {
			defer wg.Done()
			order := &domain.Order{
				BuyerID:    buyerID,
				TicketID:   ticket.ID,
				Quantity:   1,
				TotalPrice: batch.Price,
				Status:     domain.OrderStatusCompleted,
			}
			if err := s.Orders().Create(ctx, order, batch.ID); err == nil {
				mu.Lock()
				succeeded++
				mu.Unlock()
			}
		}(int64(i + 1))
	}
	wg.Wait()

	assert.Equal(t, stock, succeeded)

	got, err := s.Tickets().GetBatch(ctx, batch.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, got.Available)
}

func TestOrderRepository_ListByBuyer(t *testing.T) {
	s := NewStore()
	batch := seedBatch(t, s, 10)
	ctx := context.Background()

	ticket := &domain.Ticket{EventID: batch.EventID, BatchID: batch.ID, SellerID: batch.SellerID, Price: batch.Price}
	require.NoError(t, s.Tickets().CreateTicket(ctx, ticket))

	for i := 0; i < 3; i++ {
		order := &domain.Order{BuyerID: 1, TicketID: ticket.ID, Quantity: 1, TotalPrice: batch.Price, Status: domain.OrderStatusCompleted}
		require.NoError(t, s.Orders().Create(ctx, order, batch.ID))
	}
	other := &domain.Order{BuyerID: 2, TicketID: ticket.ID, Quantity: 1, TotalPrice: batch.Price, Status: domain.OrderStatusCompleted}
	require.NoError(t, s.Orders().Create(ctx, other, batch.ID))

	orders, err := s.Orders().ListByBuyer(ctx, 1)
	require.NoError(t, err)
	assert.Len(t, orders, 3)

	// newest first
	assert.Greater(t, orders[0].ID, orders[1].ID)
}

func TestEventRepository_Filters(t *testing.T) {
	s := NewStore()
	ctx := context.Background()

	user := &domain.User{Username: "seller", Password: "x", Email: "s@example.com", FullName: "S"}
	require.NoError(t, s.Users().Create(ctx, user))

	mk := func(categoryID int64, city string) {
		e := &domain.Event{
			Title: "E", Description: "d", CategoryID: categoryID, City: city,
			Street: "r", Number: "1", Venue: "v",
			StartDate: time.Now().Add(time.Hour), SellerID: user.ID, TotalTickets: 10,
		}
		require.NoError(t, s.Events().Create(ctx, e))
	}
	mk(1, "Rio de Janeiro")
	mk(1, "São Paulo")
	mk(2, "Rio de Janeiro")

	byCategory, err := s.Events().ListByCategory(ctx, 1)
	require.NoError(t, err)
	assert.Len(t, byCategory, 2)

	byCity, err := s.Events().ListByCity(ctx, "Rio de Janeiro")
	require.NoError(t, err)
	assert.Len(t, byCity, 2)

	all, err := s.Events().List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

// Mutating a returned value must not leak into the store.
func TestStore_CopyOnRead(t *testing.T) {
	s := NewStore()
	batch := seedBatch(t, s, 10)
	ctx := context.Background()

	got, err := s.Tickets().GetBatch(ctx, batch.ID)
	require.NoError(t, err)
	got.Available = 0

	again, err := s.Tickets().GetBatch(ctx, batch.ID)
	require.NoError(t, err)
	assert.Equal(t, 10, again.Available)
}
