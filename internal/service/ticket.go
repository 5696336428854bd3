package service

import (
	"context"
	"fmt"
	"time"

	"github.com/wb-go/wbf/logger"

	"github.com/Devpy220/DiscoveryEvents/internal/domain"
	"github.com/Devpy220/DiscoveryEvents/internal/metrics"
	"github.com/Devpy220/DiscoveryEvents/internal/service/ports"
)

type TicketService struct {
	repo      ports.TicketRepo
	eventRepo ports.EventRepo
	logger    logger.Logger
}

func NewTicketService(repo ports.TicketRepo, eventRepo ports.EventRepo, logger logger.Logger) *TicketService {
	return &TicketService{
		repo:      repo,
		eventRepo: eventRepo,
		logger:    logger,
	}
}

func (s *TicketService) CreateCategory(ctx context.Context, input domain.CreateTicketCategoryInput, sellerID int64) (*domain.TicketCategory, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	event, err := s.eventRepo.GetByID(ctx, input.EventID)
	if err != nil {
		return nil, fmt.Errorf("check event: %w", err)
	}
	if event.SellerID != sellerID {
		return nil, domain.ErrNotOwner
	}

	category := &domain.TicketCategory{
		EventID:     input.EventID,
		Name:        input.Name,
		Description: input.Description,
	}
	if err = s.repo.CreateCategory(ctx, category); err != nil {
		return nil, fmt.Errorf("create ticket category: %w", err)
	}

	return category, nil
}

func (s *TicketService) GetCategory(ctx context.Context, id int64) (*domain.TicketCategory, error) {
	return s.repo.GetCategory(ctx, id)
}

func (s *TicketService) ListCategories(ctx context.Context) ([]*domain.TicketCategory, error) {
	return s.repo.ListCategories(ctx)
}

func (s *TicketService) ListCategoriesByEvent(ctx context.Context, eventID int64) ([]*domain.TicketCategory, error) {
	return s.repo.ListCategoriesByEvent(ctx, eventID)
}

// CreateBatch seeds available with the full quantity and derives the
// seller from the owning event; client-supplied seller ids are never
// trusted.
func (s *TicketService) CreateBatch(ctx context.Context, input domain.CreateTicketBatchInput, sellerID int64) (*domain.TicketBatch, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	category, err := s.repo.GetCategory(ctx, input.CategoryID)
	if err != nil {
		return nil, fmt.Errorf("check ticket category: %w", err)
	}
	if category.EventID != input.EventID {
		return nil, fmt.Errorf("%w: ticket category belongs to another event", domain.ErrValidation)
	}

	event, err := s.eventRepo.GetByID(ctx, input.EventID)
	if err != nil {
		return nil, fmt.Errorf("check event: %w", err)
	}
	if event.SellerID != sellerID {
		return nil, domain.ErrNotOwner
	}

	batch := &domain.TicketBatch{
		EventID:    input.EventID,
		CategoryID: input.CategoryID,
		SellerID:   event.SellerID,
		Name:       input.Name,
		Price:      input.Price,
		Quantity:   input.Quantity,
		Available:  input.Quantity,
		StartDate:  input.StartDate,
		EndDate:    input.EndDate,
		Active:     true,
	}
	if err = s.repo.CreateBatch(ctx, batch); err != nil {
		return nil, fmt.Errorf("create ticket batch: %w", err)
	}

	s.logger.Info("ticket batch created",
		logger.Int64("batch_id", batch.ID),
		logger.Int64("event_id", batch.EventID),
		logger.Int("quantity", batch.Quantity),
	)

	return batch, nil
}

func (s *TicketService) GetBatch(ctx context.Context, id int64) (*domain.TicketBatch, error) {
	return s.repo.GetBatch(ctx, id)
}

func (s *TicketService) ListBatches(ctx context.Context) ([]*domain.TicketBatch, error) {
	return s.repo.ListBatches(ctx)
}

func (s *TicketService) ListBatchesByEvent(ctx context.Context, eventID int64) ([]*domain.TicketBatch, error) {
	return s.repo.ListBatchesByEvent(ctx, eventID)
}

func (s *TicketService) ListBatchesByCategory(ctx context.Context, categoryID int64) ([]*domain.TicketBatch, error) {
	return s.repo.ListBatchesByCategory(ctx, categoryID)
}

// CreateTicket snapshots the batch price into the ticket so later batch
// price changes never touch already-listed tickets.
func (s *TicketService) CreateTicket(ctx context.Context, input domain.CreateTicketInput, sellerID int64) (*domain.Ticket, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	batch, err := s.repo.GetBatch(ctx, input.BatchID)
	if err != nil {
		return nil, fmt.Errorf("check ticket batch: %w", err)
	}

	event, err := s.eventRepo.GetByID(ctx, batch.EventID)
	if err != nil {
		return nil, fmt.Errorf("check event: %w", err)
	}
	if event.SellerID != sellerID {
		return nil, domain.ErrNotOwner
	}

	ticket := &domain.Ticket{
		EventID:  batch.EventID,
		BatchID:  batch.ID,
		SellerID: event.SellerID,
		Price:    batch.Price,
	}
	if err = s.repo.CreateTicket(ctx, ticket); err != nil {
		return nil, fmt.Errorf("create ticket: %w", err)
	}

	metrics.TicketsIssued.Inc()

	return ticket, nil
}

func (s *TicketService) GetTicket(ctx context.Context, id int64) (*domain.Ticket, error) {
	return s.repo.GetTicket(ctx, id)
}

func (s *TicketService) ListTickets(ctx context.Context) ([]*domain.Ticket, error) {
	return s.repo.ListTickets(ctx)
}

func (s *TicketService) ListTicketsByEvent(ctx context.Context, eventID int64) ([]*domain.Ticket, error) {
	return s.repo.ListTicketsByEvent(ctx, eventID)
}

func (s *TicketService) ListTicketsBySeller(ctx context.Context, sellerID int64) ([]*domain.Ticket, error) {
	return s.repo.ListTicketsBySeller(ctx, sellerID)
}

// DeactivateExpired is driven by the scheduler.
func (s *TicketService) DeactivateExpired(ctx context.Context) ([]*domain.TicketBatch, error) {
	expired, err := s.repo.DeactivateExpiredBatches(ctx, time.Now().UTC())
	if err != nil {
		return nil, fmt.Errorf("deactivate expired batches: %w", err)
	}

	if len(expired) > 0 {
		s.logger.Info("expired ticket batches deactivated",
			logger.Int("count", len(expired)),
		)
	}

	return expired, nil
}
