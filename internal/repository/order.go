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

type OrderRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewOrderRepo(db *dbpg.DB) *OrderRepository {
	return &OrderRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

// Create decrements the batch counter and inserts the order in one
// transaction. A purchase that loses the availability race rolls back
// without leaving an order behind.
func (r *OrderRepository) Create(ctx context.Context, o *domain.Order, batchID int64) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	decrement := `UPDATE ticket_batches
				  SET available = available - $2
				  WHERE id = $1 AND available >= $2`
	res, err := tx.ExecContext(ctx, decrement, batchID, o.Quantity)
	if err != nil {
		return fmt.Errorf("decrement availability: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("decrement rows affected: %w", err)
	}
	if affected == 0 {
		var available int
		checkQuery := `SELECT available FROM ticket_batches WHERE id=$1`
		if err = tx.QueryRowContext(ctx, checkQuery, batchID).Scan(&available); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return domain.ErrTicketBatchNotFound
			}
			return fmt.Errorf("check batch: %w", err)
		}
		return &domain.InsufficientInventoryError{Available: available}
	}

	insert := `INSERT INTO orders (buyer_id, ticket_id, quantity, total_price, status, created_at)
			   VALUES ($1, $2, $3, $4, $5, $6)
			   RETURNING id, created_at`
	now := time.Now().UTC()
	if err = tx.QueryRowContext(
		ctx, insert,
		o.BuyerID, o.TicketID, o.Quantity, o.TotalPrice, o.Status, now,
	).Scan(&o.ID, &o.CreatedAt); err != nil {
		return fmt.Errorf("insert order: %w", err)
	}

	return tx.Commit()
}

func (r *OrderRepository) GetByID(ctx context.Context, id int64) (*domain.Order, error) {
	query := `SELECT id, buyer_id, ticket_id, quantity, total_price, status, created_at
			  FROM orders
			  WHERE id=$1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get order: %w", err)
	}

	var o domain.Order
	if err = row.Scan(&o.ID, &o.BuyerID, &o.TicketID, &o.Quantity, &o.TotalPrice, &o.Status, &o.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrOrderNotFound
		}
		return nil, fmt.Errorf("scan order: %w", err)
	}

	return &o, nil
}

func (r *OrderRepository) ListByBuyer(ctx context.Context, buyerID int64) ([]*domain.Order, error) {
	query := `SELECT id, buyer_id, ticket_id, quantity, total_price, status, created_at
			  FROM orders
			  WHERE buyer_id=$1
			  ORDER BY created_at DESC`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, buyerID)
	if err != nil {
		return nil, fmt.Errorf("list orders by buyer: %w", err)
	}
	defer rows.Close()

	var res []*domain.Order
	for rows.Next() {
		var o domain.Order
		if err = rows.Scan(&o.ID, &o.BuyerID, &o.TicketID, &o.Quantity, &o.TotalPrice, &o.Status, &o.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan order: %w", err)
		}
		res = append(res, &o)
	}

	return res, rows.Err()
}
