package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/Devpy220/DiscoveryEvents/internal/domain"
	"github.com/Devpy220/DiscoveryEvents/internal/service/ports/mocks"
)

type orderMocks struct {
	orderRepo  *mocks.MockOrderRepo
	ticketRepo *mocks.MockTicketRepo
	eventRepo  *mocks.MockEventRepo
	userRepo   *mocks.MockUserRepo
	notifier   *mocks.MockOrderNotifier
}

func newOrderService(t *testing.T) (*OrderService, orderMocks) {
	m := orderMocks{
		orderRepo:  mocks.NewMockOrderRepo(t),
		ticketRepo: mocks.NewMockTicketRepo(t),
		eventRepo:  mocks.NewMockEventRepo(t),
		userRepo:   mocks.NewMockUserRepo(t),
		notifier:   mocks.NewMockOrderNotifier(t),
	}
	svc := NewOrderService(m.orderRepo, m.ticketRepo, m.eventRepo, m.userRepo, m.notifier, newTestLogger(t))
	return svc, m
}

func testTicketAndBatch(price string, available int) (*domain.Ticket, *domain.TicketBatch) {
	ticket := &domain.Ticket{
		ID:       10,
		EventID:  1,
		BatchID:  5,
		SellerID: 2,
		Price:    decimal.RequireFromString(price),
	}
	batch := &domain.TicketBatch{
		ID:         5,
		EventID:    1,
		CategoryID: 3,
		SellerID:   2,
		Name:       "Lote 1",
		Price:      decimal.RequireFromString(price),
		Quantity:   100,
		Available:  available,
		Active:     true,
	}
	return ticket, batch
}

func TestOrderService_Place_Success(t *testing.T) {
	svc, m := newOrderService(t)

	ticket, batch := testTicketAndBatch("19.99", 50)
	buyer := &domain.User{ID: 7, Username: "alice", Email: "alice@example.com"}
	event := &domain.Event{ID: 1, Title: "Rock in Rio", StartDate: time.Now().Add(48 * time.Hour)}

	m.ticketRepo.EXPECT().GetTicket(mock.Anything, int64(10)).Return(ticket, nil)
	m.ticketRepo.EXPECT().GetBatch(mock.Anything, int64(5)).Return(batch, nil)
	m.orderRepo.EXPECT().Create(mock.Anything, mock.Anything, int64(5)).Return(nil)
	m.userRepo.EXPECT().GetByID(mock.Anything, int64(7)).Return(buyer, nil)
	m.eventRepo.EXPECT().GetByID(mock.Anything, int64(1)).Return(event, nil)
	m.ticketRepo.EXPECT().GetCategory(mock.Anything, int64(3)).Return(&domain.TicketCategory{ID: 3, Name: "VIP"}, nil)
	m.notifier.EXPECT().NotifyOrderConfirmed(mock.Anything, buyer, mock.Anything).Return()

	order, err := svc.Place(context.Background(), 7, 10, 3)

	require.NoError(t, err)
	assert.Equal(t, int64(7), order.BuyerID)
	assert.Equal(t, int64(10), order.TicketID)
	assert.Equal(t, 3, order.Quantity)
	assert.Equal(t, domain.OrderStatusCompleted, order.Status)
	// 19.99 * 3 must be exact, not 59.969999...
	assert.Equal(t, "59.97", order.TotalPrice.StringFixed(2))

	time.Sleep(50 * time.Millisecond) // goroutine notify
}

func TestOrderService_Place_InvalidQuantity(t *testing.T) {
	svc, _ := newOrderService(t)

	for _, quantity := range []int{0, -1, -100} {
		_, err := svc.Place(context.Background(), 7, 10, quantity)

		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrValidation)
	}
}

func TestOrderService_Place_TicketNotFound(t *testing.T) {
	svc, m := newOrderService(t)

	m.ticketRepo.EXPECT().GetTicket(mock.Anything, int64(99)).Return(nil, domain.ErrTicketNotFound)

	_, err := svc.Place(context.Background(), 7, 99, 1)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrTicketNotFound)
}

func TestOrderService_Place_BatchNotFound(t *testing.T) {
	svc, m := newOrderService(t)

	ticket, _ := testTicketAndBatch("10.00", 50)

	m.ticketRepo.EXPECT().GetTicket(mock.Anything, int64(10)).Return(ticket, nil)
	m.ticketRepo.EXPECT().GetBatch(mock.Anything, int64(5)).Return(nil, domain.ErrTicketBatchNotFound)

	_, err := svc.Place(context.Background(), 7, 10, 1)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrTicketBatchNotFound)
}

func TestOrderService_Place_InsufficientInventory(t *testing.T) {
	svc, m := newOrderService(t)

	ticket, batch := testTicketAndBatch("10.00", 2)

	m.ticketRepo.EXPECT().GetTicket(mock.Anything, int64(10)).Return(ticket, nil)
	m.ticketRepo.EXPECT().GetBatch(mock.Anything, int64(5)).Return(batch, nil)

	_, err := svc.Place(context.Background(), 7, 10, 5)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInsufficientInventory)

	var insufficient *domain.InsufficientInventoryError
	require.ErrorAs(t, err, &insufficient)
	assert.Equal(t, 2, insufficient.Available)
}

// The pre-check passes but another buyer wins the decrement inside the
// repository; the order must fail with the same error and nothing is
// notified.
func TestOrderService_Place_LosesRaceInRepository(t *testing.T) {
	svc, m := newOrderService(t)

	ticket, batch := testTicketAndBatch("10.00", 5)

	m.ticketRepo.EXPECT().GetTicket(mock.Anything, int64(10)).Return(ticket, nil)
	m.ticketRepo.EXPECT().GetBatch(mock.Anything, int64(5)).Return(batch, nil)
	m.orderRepo.EXPECT().Create(mock.Anything, mock.Anything, int64(5)).
		Return(&domain.InsufficientInventoryError{Available: 1})

	_, err := svc.Place(context.Background(), 7, 10, 5)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInsufficientInventory)
}

// Notification lookups failing after commit must not fail the order.
func TestOrderService_Place_NotificationFailureIsolated(t *testing.T) {
	svc, m := newOrderService(t)

	ticket, batch := testTicketAndBatch("25.50", 50)

	m.ticketRepo.EXPECT().GetTicket(mock.Anything, int64(10)).Return(ticket, nil)
	m.ticketRepo.EXPECT().GetBatch(mock.Anything, int64(5)).Return(batch, nil)
	m.orderRepo.EXPECT().Create(mock.Anything, mock.Anything, int64(5)).Return(nil)
	m.userRepo.EXPECT().GetByID(mock.Anything, int64(7)).Return(nil, errors.New("user store down"))

	order, err := svc.Place(context.Background(), 7, 10, 2)

	require.NoError(t, err)
	assert.Equal(t, "51.00", order.TotalPrice.StringFixed(2))
}

func TestOrderService_GetByID(t *testing.T) {
	svc, m := newOrderService(t)

	expected := &domain.Order{ID: 42, BuyerID: 7}
	m.orderRepo.EXPECT().GetByID(mock.Anything, int64(42)).Return(expected, nil)

	order, err := svc.GetByID(context.Background(), 42)

	require.NoError(t, err)
	assert.Equal(t, expected, order)
}

func TestOrderService_ListByBuyer(t *testing.T) {
	svc, m := newOrderService(t)

	orders := []*domain.Order{{ID: 1, BuyerID: 7}, {ID: 2, BuyerID: 7}}
	m.orderRepo.EXPECT().ListByBuyer(mock.Anything, int64(7)).Return(orders, nil)

	got, err := svc.ListByBuyer(context.Background(), 7)

	require.NoError(t, err)
	assert.Len(t, got, 2)
}
