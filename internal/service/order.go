package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/wb-go/wbf/logger"

	"github.com/Devpy220/DiscoveryEvents/internal/domain"
	"github.com/Devpy220/DiscoveryEvents/internal/metrics"
	"github.com/Devpy220/DiscoveryEvents/internal/service/ports"
)

type OrderService struct {
	orderRepo  ports.OrderRepo
	ticketRepo ports.TicketRepo
	eventRepo  ports.EventRepo
	userRepo   ports.UserRepo
	notifier   ports.OrderNotifier
	logger     logger.Logger
}

func NewOrderService(
	orderRepo ports.OrderRepo,
	ticketRepo ports.TicketRepo,
	eventRepo ports.EventRepo,
	userRepo ports.UserRepo,
	notifier ports.OrderNotifier,
	logger logger.Logger,
) *OrderService {
	return &OrderService{
		orderRepo:  orderRepo,
		ticketRepo: ticketRepo,
		eventRepo:  eventRepo,
		userRepo:   userRepo,
		notifier:   notifier,
		logger:     logger,
	}
}

// Place is the purchase transaction. The availability pre-check here is
// optimistic; the authoritative check-and-decrement happens inside
// orderRepo.Create, so a request that loses the race to a concurrent
// purchase fails with the same insufficient-inventory error and no
// order is kept.
func (s *OrderService) Place(ctx context.Context, buyerID, ticketID int64, quantity int) (*domain.Order, error) {
	if quantity < 1 {
		metrics.OrdersRejected.WithLabelValues("invalid_quantity").Inc()
		return nil, fmt.Errorf("%w: quantity must be a positive integer", domain.ErrValidation)
	}

	ticket, err := s.ticketRepo.GetTicket(ctx, ticketID)
	if err != nil {
		if errors.Is(err, domain.ErrTicketNotFound) {
			metrics.OrdersRejected.WithLabelValues("ticket_not_found").Inc()
		}
		return nil, fmt.Errorf("check ticket: %w", err)
	}

	batch, err := s.ticketRepo.GetBatch(ctx, ticket.BatchID)
	if err != nil {
		// A ticket pointing at a missing batch is a data-integrity
		// fault; surfaced, never assumed away.
		if errors.Is(err, domain.ErrTicketBatchNotFound) {
			metrics.OrdersRejected.WithLabelValues("batch_not_found").Inc()
		}
		return nil, fmt.Errorf("check ticket batch: %w", err)
	}

	if batch.Available < quantity {
		metrics.OrdersRejected.WithLabelValues("insufficient_inventory").Inc()
		return nil, &domain.InsufficientInventoryError{Available: batch.Available}
	}

	order := &domain.Order{
		BuyerID:    buyerID,
		TicketID:   ticket.ID,
		Quantity:   quantity,
		TotalPrice: ticket.Price.Mul(decimal.NewFromInt(int64(quantity))),
		Status:     domain.OrderStatusCompleted,
	}

	if err = s.orderRepo.Create(ctx, order, batch.ID); err != nil {
		if errors.Is(err, domain.ErrInsufficientInventory) {
			metrics.OrdersRejected.WithLabelValues("insufficient_inventory").Inc()
		}
		return nil, fmt.Errorf("create order: %w", err)
	}

	metrics.OrdersPlaced.Inc()
	s.logger.Info("order placed",
		logger.Int64("order_id", order.ID),
		logger.Int64("buyer_id", buyerID),
		logger.Int64("ticket_id", ticket.ID),
		logger.Int("quantity", quantity),
		logger.String("total_price", order.TotalPrice.StringFixed(2)),
	)

	s.notifyConfirmed(ctx, order, ticket, batch)

	return order, nil
}

// notifyConfirmed hands the confirmation off to the notifier. The order
// is already committed; lookup or delivery problems are logged and
// swallowed.
func (s *OrderService) notifyConfirmed(ctx context.Context, order *domain.Order, ticket *domain.Ticket, batch *domain.TicketBatch) {
	buyer, err := s.userRepo.GetByID(ctx, order.BuyerID)
	if err != nil {
		s.logger.Error("failed to get buyer for order confirmation",
			logger.Int64("order_id", order.ID),
			logger.String("error", err.Error()),
		)
		return
	}

	event, err := s.eventRepo.GetByID(ctx, ticket.EventID)
	if err != nil {
		s.logger.Error("failed to get event for order confirmation",
			logger.Int64("order_id", order.ID),
			logger.String("error", err.Error()),
		)
		return
	}

	ticketType := batch.Name
	if category, err := s.ticketRepo.GetCategory(ctx, batch.CategoryID); err == nil {
		ticketType = category.Name
	}

	conf := &domain.OrderConfirmation{
		OrderID:       order.ID,
		EventName:     event.Title,
		EventDate:     event.StartDate,
		TicketType:    ticketType,
		TicketPrice:   ticket.Price,
		Quantity:      order.Quantity,
		TotalPrice:    order.TotalPrice,
		PurchaseDate:  order.CreatedAt,
		VenueLocation: event.Location(),
	}

	go s.notifier.NotifyOrderConfirmed(context.WithoutCancel(ctx), buyer, conf)
}

func (s *OrderService) GetByID(ctx context.Context, id int64) (*domain.Order, error) {
	return s.orderRepo.GetByID(ctx, id)
}

func (s *OrderService) ListByBuyer(ctx context.Context, buyerID int64) ([]*domain.Order, error) {
	return s.orderRepo.ListByBuyer(ctx, buyerID)
}
