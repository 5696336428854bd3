// Package storetest holds the storage contract shared by the in-memory
// and Postgres backends. Each backend's test package runs the same
// suite, so behavior cannot drift between the two.
package storetest

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Devpy220/DiscoveryEvents/internal/domain"
	"github.com/Devpy220/DiscoveryEvents/internal/service/ports"
)

// Backend is one storage implementation under test.
type Backend struct {
	Users   ports.UserRepo
	Events  ports.EventRepo
	Tickets ports.TicketRepo
	Orders  ports.OrderRepo
}

// Run executes the contract against a fresh backend per subtest. The
// suite only appends rows, so backends pointing at a shared database
// stay usable between runs.
func Run(t *testing.T, open func(t *testing.T) Backend) {
	t.Run("DecrementAvailability", func(t *testing.T) { testDecrement(t, open(t)) })
	t.Run("DecrementUnknownBatch", func(t *testing.T) { testDecrementUnknown(t, open(t)) })
	t.Run("IdempotentRead", func(t *testing.T) { testIdempotentRead(t, open(t)) })
	t.Run("OrderCreateAtomic", func(t *testing.T) { testOrderCreateAtomic(t, open(t)) })
	t.Run("NoOversellUnderConcurrency", func(t *testing.T) { testNoOversell(t, open(t)) })
	t.Run("AvailabilityConservation", func(t *testing.T) { testConservation(t, open(t)) })
}

type fixture struct {
	seller *domain.User
	event  *domain.Event
	batch  *domain.TicketBatch
	ticket *domain.Ticket
}

func seed(t *testing.T, b Backend, quantity int) fixture {
	t.Helper()
	ctx := context.Background()
	suffix := fmt.Sprintf("%d_%d", time.Now().UnixNano(), quantity)

	seller := &domain.User{
		Username: "seller_" + suffix,
		Password: "x",
		Email:    "seller_" + suffix + "@example.com",
		FullName: "Seller",
	}
	require.NoError(t, b.Users.Create(ctx, seller))

	event := &domain.Event{
		Title:        "Contract show",
		Description:  "d",
		CategoryID:   1,
		City:         "Rio de Janeiro",
		Street:       "Rua A",
		Number:       "1",
		Venue:        "Arena",
		StartDate:    time.Now().Add(24 * time.Hour).UTC(),
		SellerID:     seller.ID,
		TotalTickets: quantity,
	}
	require.NoError(t, b.Events.Create(ctx, event))

	category := &domain.TicketCategory{EventID: event.ID, Name: "Pista"}
	require.NoError(t, b.Tickets.CreateCategory(ctx, category))

	batch := &domain.TicketBatch{
		EventID:    event.ID,
		CategoryID: category.ID,
		SellerID:   seller.ID,
		Name:       "Lote 1",
		Price:      decimal.RequireFromString("19.99"),
		Quantity:   quantity,
		Available:  quantity,
		Active:     true,
	}
	require.NoError(t, b.Tickets.CreateBatch(ctx, batch))

	ticket := &domain.Ticket{EventID: event.ID, BatchID: batch.ID, SellerID: seller.ID, Price: batch.Price}
	require.NoError(t, b.Tickets.CreateTicket(ctx, ticket))

	return fixture{seller: seller, event: event, batch: batch, ticket: ticket}
}

func testDecrement(t *testing.T, b Backend) {
	ctx := context.Background()
	f := seed(t, b, 10)

	updated, err := b.Tickets.DecrementAvailability(ctx, f.batch.ID, 3)
	require.NoError(t, err)
	assert.Equal(t, 7, updated.Available)

	// asking for more than remains fails and reports the counter
	_, err = b.Tickets.DecrementAvailability(ctx, f.batch.ID, 8)
	var insufficient *domain.InsufficientInventoryError
	require.ErrorAs(t, err, &insufficient)
	assert.Equal(t, 7, insufficient.Available)

	got, err := b.Tickets.GetBatch(ctx, f.batch.ID)
	require.NoError(t, err)
	assert.Equal(t, 7, got.Available)
}

func testDecrementUnknown(t *testing.T, b Backend) {
	_, err := b.Tickets.DecrementAvailability(context.Background(), 999999999, 1)
	assert.ErrorIs(t, err, domain.ErrTicketBatchNotFound)
}

func testIdempotentRead(t *testing.T, b Backend) {
	ctx := context.Background()
	f := seed(t, b, 10)

	first, err := b.Tickets.GetBatch(ctx, f.batch.ID)
	require.NoError(t, err)
	second, err := b.Tickets.GetBatch(ctx, f.batch.ID)
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, first.Available, second.Available)
	assert.True(t, first.Price.Equal(second.Price))
}

func testOrderCreateAtomic(t *testing.T, b Backend) {
	ctx := context.Background()
	f := seed(t, b, 10)

	order := &domain.Order{
		BuyerID:    f.seller.ID,
		TicketID:   f.ticket.ID,
		Quantity:   3,
		TotalPrice: f.batch.Price.Mul(decimal.NewFromInt(3)),
		Status:     domain.OrderStatusCompleted,
	}
	require.NoError(t, b.Orders.Create(ctx, order, f.batch.ID))
	assert.NotZero(t, order.ID)

	got, err := b.Tickets.GetBatch(ctx, f.batch.ID)
	require.NoError(t, err)
	assert.Equal(t, 7, got.Available)

	// a rejected order leaves both the counter and the order log alone
	rejected := &domain.Order{
		BuyerID:    f.seller.ID,
		TicketID:   f.ticket.ID,
		Quantity:   8,
		TotalPrice: f.batch.Price.Mul(decimal.NewFromInt(8)),
		Status:     domain.OrderStatusCompleted,
	}
	err = b.Orders.Create(ctx, rejected, f.batch.ID)
	assert.ErrorIs(t, err, domain.ErrInsufficientInventory)

	got, err = b.Tickets.GetBatch(ctx, f.batch.ID)
	require.NoError(t, err)
	assert.Equal(t, 7, got.Available)
}

func testNoOversell(t *testing.T, b Backend) {
	const (
		stock  = 20
		buyers = 60
	)

	ctx := context.Background()
	f := seed(t, b, stock)

	var (
		wg           sync.WaitGroup
		mu           sync.Mutex
		succeeded    int
		insufficient int
	)
	for i := 0; i < buyers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			order := &domain.Order{
				BuyerID:    f.seller.ID,
				TicketID:   f.ticket.ID,
				Quantity:   1,
				TotalPrice: f.batch.Price,
				Status:     domain.OrderStatusCompleted,
			}
			err := b.Orders.Create(ctx, order, f.batch.ID)
			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				succeeded++
			case errors.Is(err, domain.ErrInsufficientInventory):
				insufficient++
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, stock, succeeded)
	assert.Equal(t, buyers-stock, insufficient)

	got, err := b.Tickets.GetBatch(ctx, f.batch.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, got.Available)
}

func testConservation(t *testing.T, b Backend) {
	ctx := context.Background()
	f := seed(t, b, 10)

	sold := 0
	for _, quantity := range []int{3, 2, 4} {
		order := &domain.Order{
			BuyerID:    f.seller.ID,
			TicketID:   f.ticket.ID,
			Quantity:   quantity,
			TotalPrice: f.batch.Price.Mul(decimal.NewFromInt(int64(quantity))),
			Status:     domain.OrderStatusCompleted,
		}
		require.NoError(t, b.Orders.Create(ctx, order, f.batch.ID))
		sold += quantity
	}

	got, err := b.Tickets.GetBatch(ctx, f.batch.ID)
	require.NoError(t, err)
	assert.Equal(t, f.batch.Quantity, got.Available+sold)
}

