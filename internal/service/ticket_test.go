package service

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/Devpy220/DiscoveryEvents/internal/domain"
	"github.com/Devpy220/DiscoveryEvents/internal/service/ports/mocks"
)

func newTicketService(t *testing.T) (*TicketService, *mocks.MockTicketRepo, *mocks.MockEventRepo) {
	repo := mocks.NewMockTicketRepo(t)
	eventRepo := mocks.NewMockEventRepo(t)
	return NewTicketService(repo, eventRepo, newTestLogger(t)), repo, eventRepo
}

func TestTicketService_CreateCategory_OwnerOnly(t *testing.T) {
	svc, _, eventRepo := newTicketService(t)

	eventRepo.EXPECT().GetByID(mock.Anything, int64(1)).Return(&domain.Event{ID: 1, SellerID: 7}, nil)

	_, err := svc.CreateCategory(context.Background(), domain.CreateTicketCategoryInput{
		EventID: 1,
		Name:    "VIP",
	}, 99)

	assert.ErrorIs(t, err, domain.ErrNotOwner)
}

func TestTicketService_CreateCategory_Success(t *testing.T) {
	svc, repo, eventRepo := newTicketService(t)

	eventRepo.EXPECT().GetByID(mock.Anything, int64(1)).Return(&domain.Event{ID: 1, SellerID: 7}, nil)
	repo.EXPECT().CreateCategory(mock.Anything, mock.Anything).Run(func(ctx context.Context, c *domain.TicketCategory) {
		c.ID = 3
	}).Return(nil)

	category, err := svc.CreateCategory(context.Background(), domain.CreateTicketCategoryInput{
		EventID: 1,
		Name:    "VIP",
	}, 7)

	require.NoError(t, err)
	assert.Equal(t, int64(3), category.ID)
	assert.Equal(t, int64(1), category.EventID)
}

func TestTicketService_CreateBatch_Success(t *testing.T) {
	svc, repo, eventRepo := newTicketService(t)

	repo.EXPECT().GetCategory(mock.Anything, int64(3)).Return(&domain.TicketCategory{ID: 3, EventID: 1}, nil)
	eventRepo.EXPECT().GetByID(mock.Anything, int64(1)).Return(&domain.Event{ID: 1, SellerID: 7}, nil)
	repo.EXPECT().CreateBatch(mock.Anything, mock.Anything).Return(nil)

	batch, err := svc.CreateBatch(context.Background(), domain.CreateTicketBatchInput{
		EventID:    1,
		CategoryID: 3,
		Name:       "Lote 1",
		Price:      decimal.RequireFromString("49.90"),
		Quantity:   200,
	}, 7)

	require.NoError(t, err)
	assert.Equal(t, 200, batch.Quantity)
	assert.Equal(t, 200, batch.Available)
	assert.True(t, batch.Active)
	assert.Equal(t, int64(7), batch.SellerID)
}

func TestTicketService_CreateBatch_CategoryOfAnotherEvent(t *testing.T) {
	svc, repo, _ := newTicketService(t)

	repo.EXPECT().GetCategory(mock.Anything, int64(3)).Return(&domain.TicketCategory{ID: 3, EventID: 2}, nil)

	_, err := svc.CreateBatch(context.Background(), domain.CreateTicketBatchInput{
		EventID:    1,
		CategoryID: 3,
		Name:       "Lote 1",
		Price:      decimal.RequireFromString("49.90"),
		Quantity:   200,
	}, 7)

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestTicketService_CreateBatch_NegativePrice(t *testing.T) {
	svc, _, _ := newTicketService(t)

	_, err := svc.CreateBatch(context.Background(), domain.CreateTicketBatchInput{
		EventID:    1,
		CategoryID: 3,
		Name:       "Lote 1",
		Price:      decimal.RequireFromString("-1.00"),
		Quantity:   10,
	}, 7)

	assert.ErrorIs(t, err, domain.ErrValidation)
}

// The ticket must carry the batch price at creation time, and creating
// it must not touch batch availability.
func TestTicketService_CreateTicket_SnapshotsPrice(t *testing.T) {
	svc, repo, eventRepo := newTicketService(t)

	batch := &domain.TicketBatch{
		ID:        5,
		EventID:   1,
		SellerID:  7,
		Price:     decimal.RequireFromString("19.99"),
		Quantity:  100,
		Available: 100,
		Active:    true,
	}

	repo.EXPECT().GetBatch(mock.Anything, int64(5)).Return(batch, nil)
	eventRepo.EXPECT().GetByID(mock.Anything, int64(1)).Return(&domain.Event{ID: 1, SellerID: 7}, nil)
	repo.EXPECT().CreateTicket(mock.Anything, mock.Anything).Return(nil)

	ticket, err := svc.CreateTicket(context.Background(), domain.CreateTicketInput{BatchID: 5}, 7)

	require.NoError(t, err)
	assert.True(t, ticket.Price.Equal(batch.Price))
	assert.Equal(t, int64(1), ticket.EventID)
	assert.Equal(t, 100, batch.Available)
}

func TestTicketService_CreateTicket_NotOwner(t *testing.T) {
	svc, repo, eventRepo := newTicketService(t)

	repo.EXPECT().GetBatch(mock.Anything, int64(5)).Return(&domain.TicketBatch{ID: 5, EventID: 1}, nil)
	eventRepo.EXPECT().GetByID(mock.Anything, int64(1)).Return(&domain.Event{ID: 1, SellerID: 7}, nil)

	_, err := svc.CreateTicket(context.Background(), domain.CreateTicketInput{BatchID: 5}, 42)

	assert.ErrorIs(t, err, domain.ErrNotOwner)
}

func TestTicketService_DeactivateExpired(t *testing.T) {
	svc, repo, _ := newTicketService(t)

	expired := []*domain.TicketBatch{{ID: 5, EventID: 1, Name: "Lote 1"}}
	repo.EXPECT().DeactivateExpiredBatches(mock.Anything, mock.AnythingOfType("time.Time")).Return(expired, nil)

	got, err := svc.DeactivateExpired(context.Background())

	require.NoError(t, err)
	assert.Len(t, got, 1)
}
