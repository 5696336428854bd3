package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"

	"github.com/Devpy220/DiscoveryEvents/internal/domain"
)

const batchColumns = `id, event_id, category_id, seller_id, name, price,
		quantity, available, start_date, end_date, active, created_at`

type TicketRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewTicketRepo(db *dbpg.DB) *TicketRepository {
	return &TicketRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *TicketRepository) CreateCategory(ctx context.Context, c *domain.TicketCategory) error {
	query := `INSERT INTO ticket_categories (event_id, name, description)
			  VALUES ($1, $2, $3)
			  RETURNING id`
	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, c.EventID, c.Name, c.Description)
	if err != nil {
		return fmt.Errorf("insert ticket category: %w", err)
	}
	if err = row.Scan(&c.ID); err != nil {
		return fmt.Errorf("insert ticket category: %w", err)
	}

	return nil
}

func (r *TicketRepository) GetCategory(ctx context.Context, id int64) (*domain.TicketCategory, error) {
	query := `SELECT id, event_id, name, description
			  FROM ticket_categories
			  WHERE id=$1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get ticket category: %w", err)
	}

	var c domain.TicketCategory
	if err = row.Scan(&c.ID, &c.EventID, &c.Name, &c.Description); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrTicketCategoryNotFound
		}
		return nil, fmt.Errorf("scan ticket category: %w", err)
	}

	return &c, nil
}

func (r *TicketRepository) ListCategories(ctx context.Context) ([]*domain.TicketCategory, error) {
	query := `SELECT id, event_id, name, description
			  FROM ticket_categories
			  ORDER BY id`
	return r.queryCategories(ctx, query)
}

func (r *TicketRepository) ListCategoriesByEvent(ctx context.Context, eventID int64) ([]*domain.TicketCategory, error) {
	query := `SELECT id, event_id, name, description
			  FROM ticket_categories
			  WHERE event_id=$1
			  ORDER BY id`
	return r.queryCategories(ctx, query, eventID)
}

func (r *TicketRepository) CreateBatch(ctx context.Context, b *domain.TicketBatch) error {
	query := `INSERT INTO ticket_batches (event_id, category_id, seller_id, name, price,
				quantity, available, start_date, end_date, active, created_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
			  RETURNING id, created_at`
	now := time.Now().UTC()
	row, err := r.db.QueryRowWithRetry(
		ctx, r.strategy, query,
		b.EventID, b.CategoryID, b.SellerID, b.Name, b.Price,
		b.Quantity, b.Available, b.StartDate, b.EndDate, b.Active, now,
	)
	if err != nil {
		return fmt.Errorf("insert ticket batch: %w", err)
	}
	if err = row.Scan(&b.ID, &b.CreatedAt); err != nil {
		return fmt.Errorf("insert ticket batch: %w", err)
	}

	return nil
}

func (r *TicketRepository) GetBatch(ctx context.Context, id int64) (*domain.TicketBatch, error) {
	query := `SELECT ` + batchColumns + `
			  FROM ticket_batches
			  WHERE id=$1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get ticket batch: %w", err)
	}

	var b domain.TicketBatch
	if err = scanBatchRow(row, &b); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrTicketBatchNotFound
		}
		return nil, err
	}

	return &b, nil
}

func (r *TicketRepository) ListBatches(ctx context.Context) ([]*domain.TicketBatch, error) {
	query := `SELECT ` + batchColumns + `
			  FROM ticket_batches
			  ORDER BY id`
	return r.queryBatches(ctx, query)
}

func (r *TicketRepository) ListBatchesByEvent(ctx context.Context, eventID int64) ([]*domain.TicketBatch, error) {
	query := `SELECT ` + batchColumns + `
			  FROM ticket_batches
			  WHERE event_id=$1
			  ORDER BY id`
	return r.queryBatches(ctx, query, eventID)
}

func (r *TicketRepository) ListBatchesByCategory(ctx context.Context, categoryID int64) ([]*domain.TicketBatch, error) {
	query := `SELECT ` + batchColumns + `
			  FROM ticket_batches
			  WHERE category_id=$1
			  ORDER BY id`
	return r.queryBatches(ctx, query, categoryID)
}

// DecrementAvailability pushes the check-and-subtract into a single
// conditional UPDATE, so the database serializes concurrent purchases
// and the counter can never go below zero.
func (r *TicketRepository) DecrementAvailability(ctx context.Context, batchID int64, quantity int) (*domain.TicketBatch, error) {
	if quantity < 1 {
		return nil, fmt.Errorf("%w: quantity must be positive", domain.ErrValidation)
	}

	query := `UPDATE ticket_batches
			  SET available = available - $2
			  WHERE id = $1 AND available >= $2
			  RETURNING ` + batchColumns

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, batchID, quantity)
	if err != nil {
		return nil, fmt.Errorf("decrement availability: %w", err)
	}

	var b domain.TicketBatch
	if err = scanBatchRow(row, &b); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			// Either the batch is missing or the stock ran out; tell
			// the caller which, with the current counter.
			return nil, r.rejectDecrement(ctx, batchID)
		}
		return nil, err
	}

	return &b, nil
}

func (r *TicketRepository) rejectDecrement(ctx context.Context, batchID int64) error {
	row, err := r.db.QueryRowWithRetry(
		ctx, r.strategy,
		`SELECT available FROM ticket_batches WHERE id=$1`, batchID,
	)
	if err != nil {
		return fmt.Errorf("check batch: %w", err)
	}

	var available int
	if err = row.Scan(&available); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.ErrTicketBatchNotFound
		}
		return fmt.Errorf("check batch: %w", err)
	}

	return &domain.InsufficientInventoryError{Available: available}
}

func (r *TicketRepository) DeactivateExpiredBatches(ctx context.Context, now time.Time) ([]*domain.TicketBatch, error) {
	query := `UPDATE ticket_batches
			  SET active = FALSE
			  WHERE active = TRUE AND end_date IS NOT NULL AND end_date < $1
			  RETURNING ` + batchColumns

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, now)
	if err != nil {
		return nil, fmt.Errorf("deactivate expired batches: %w", err)
	}
	defer rows.Close()

	var res []*domain.TicketBatch
	for rows.Next() {
		var b domain.TicketBatch
		if err = scanBatchRow(rows, &b); err != nil {
			return nil, err
		}
		res = append(res, &b)
	}

	return res, rows.Err()
}

func (r *TicketRepository) CreateTicket(ctx context.Context, t *domain.Ticket) error {
	query := `INSERT INTO tickets (event_id, batch_id, seller_id, price, created_at)
			  VALUES ($1, $2, $3, $4, $5)
			  RETURNING id, created_at`
	now := time.Now().UTC()
	row, err := r.db.QueryRowWithRetry(
		ctx, r.strategy, query,
		t.EventID, t.BatchID, t.SellerID, t.Price, now,
	)
	if err != nil {
		return fmt.Errorf("insert ticket: %w", err)
	}
	if err = row.Scan(&t.ID, &t.CreatedAt); err != nil {
		return fmt.Errorf("insert ticket: %w", err)
	}

	return nil
}

func (r *TicketRepository) GetTicket(ctx context.Context, id int64) (*domain.Ticket, error) {
	query := `SELECT id, event_id, batch_id, seller_id, price, created_at
			  FROM tickets
			  WHERE id=$1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get ticket: %w", err)
	}

	var t domain.Ticket
	if err = row.Scan(&t.ID, &t.EventID, &t.BatchID, &t.SellerID, &t.Price, &t.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrTicketNotFound
		}
		return nil, fmt.Errorf("scan ticket: %w", err)
	}

	return &t, nil
}

func (r *TicketRepository) ListTickets(ctx context.Context) ([]*domain.Ticket, error) {
	query := `SELECT id, event_id, batch_id, seller_id, price, created_at
			  FROM tickets
			  ORDER BY id`
	return r.queryTickets(ctx, query)
}

func (r *TicketRepository) ListTicketsByEvent(ctx context.Context, eventID int64) ([]*domain.Ticket, error) {
	query := `SELECT id, event_id, batch_id, seller_id, price, created_at
			  FROM tickets
			  WHERE event_id=$1
			  ORDER BY id`
	return r.queryTickets(ctx, query, eventID)
}

func (r *TicketRepository) ListTicketsBySeller(ctx context.Context, sellerID int64) ([]*domain.Ticket, error) {
	query := `SELECT id, event_id, batch_id, seller_id, price, created_at
			  FROM tickets
			  WHERE seller_id=$1
			  ORDER BY id`
	return r.queryTickets(ctx, query, sellerID)
}

func (r *TicketRepository) queryCategories(ctx context.Context, query string, args ...any) ([]*domain.TicketCategory, error) {
	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list ticket categories: %w", err)
	}
	defer rows.Close()

	var res []*domain.TicketCategory
	for rows.Next() {
		var c domain.TicketCategory
		if err = rows.Scan(&c.ID, &c.EventID, &c.Name, &c.Description); err != nil {
			return nil, fmt.Errorf("scan ticket category: %w", err)
		}
		res = append(res, &c)
	}

	return res, rows.Err()
}

func (r *TicketRepository) queryBatches(ctx context.Context, query string, args ...any) ([]*domain.TicketBatch, error) {
	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list ticket batches: %w", err)
	}
	defer rows.Close()

	var res []*domain.TicketBatch
	for rows.Next() {
		var b domain.TicketBatch
		if err = scanBatchRow(rows, &b); err != nil {
			return nil, err
		}
		res = append(res, &b)
	}

	return res, rows.Err()
}

func (r *TicketRepository) queryTickets(ctx context.Context, query string, args ...any) ([]*domain.Ticket, error) {
	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list tickets: %w", err)
	}
	defer rows.Close()

	var res []*domain.Ticket
	for rows.Next() {
		var t domain.Ticket
		if err = rows.Scan(&t.ID, &t.EventID, &t.BatchID, &t.SellerID, &t.Price, &t.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan ticket: %w", err)
		}
		res = append(res, &t)
	}

	return res, rows.Err()
}

func scanBatchRow(row rowScanner, b *domain.TicketBatch) error {
	if err := row.Scan(
		&b.ID, &b.EventID, &b.CategoryID, &b.SellerID, &b.Name, &b.Price,
		&b.Quantity, &b.Available, &b.StartDate, &b.EndDate, &b.Active, &b.CreatedAt,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return err
		}
		return fmt.Errorf("scan ticket batch: %w", err)
	}
	return nil
}
