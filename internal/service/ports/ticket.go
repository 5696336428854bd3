package ports

import (
	"context"
	"time"

	"github.com/Devpy220/DiscoveryEvents/internal/domain"
)

type TicketRepo interface {
	CreateCategory(ctx context.Context, c *domain.TicketCategory) error
	GetCategory(ctx context.Context, id int64) (*domain.TicketCategory, error)
	ListCategories(ctx context.Context) ([]*domain.TicketCategory, error)
	ListCategoriesByEvent(ctx context.Context, eventID int64) ([]*domain.TicketCategory, error)

	CreateBatch(ctx context.Context, b *domain.TicketBatch) error
	GetBatch(ctx context.Context, id int64) (*domain.TicketBatch, error)
	ListBatches(ctx context.Context) ([]*domain.TicketBatch, error)
	ListBatchesByEvent(ctx context.Context, eventID int64) ([]*domain.TicketBatch, error)
	ListBatchesByCategory(ctx context.Context, categoryID int64) ([]*domain.TicketBatch, error)

	// DecrementAvailability atomically subtracts quantity from the batch
	// counter. It fails with InsufficientInventoryError when the batch
	// holds fewer units than requested and never drives the counter
	// below zero, regardless of concurrent callers.
	DecrementAvailability(ctx context.Context, batchID int64, quantity int) (*domain.TicketBatch, error)

	// DeactivateExpiredBatches flips Active off on every batch whose
	// sale window ended before now and returns the affected batches.
	DeactivateExpiredBatches(ctx context.Context, now time.Time) ([]*domain.TicketBatch, error)

	CreateTicket(ctx context.Context, t *domain.Ticket) error
	GetTicket(ctx context.Context, id int64) (*domain.Ticket, error)
	ListTickets(ctx context.Context) ([]*domain.Ticket, error)
	ListTicketsByEvent(ctx context.Context, eventID int64) ([]*domain.Ticket, error)
	ListTicketsBySeller(ctx context.Context, sellerID int64) ([]*domain.Ticket, error)
}
