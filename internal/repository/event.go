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

const eventColumns = `id, title, description, image, media_type, category_id,
		city, street, number, venue, complement, start_date, end_date,
		seller_id, total_tickets`

type EventRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewEventRepo(db *dbpg.DB) *EventRepository {
	return &EventRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *EventRepository) Create(ctx context.Context, e *domain.Event) error {
	if e.MediaType == "" {
		e.MediaType = domain.MediaTypeImage
	}

	query := `INSERT INTO events (title, description, image, media_type, category_id,
				city, street, number, venue, complement, start_date, end_date,
				seller_id, total_tickets)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
			  RETURNING id`
	row, err := r.db.QueryRowWithRetry(
		ctx, r.strategy, query,
		e.Title, e.Description, e.Image, e.MediaType, e.CategoryID,
		e.City, e.Street, e.Number, e.Venue, e.Complement,
		e.StartDate, e.EndDate, e.SellerID, e.TotalTickets,
	)
	if err != nil {
		return fmt.Errorf("insert event: %w", err)
	}
	if err = row.Scan(&e.ID); err != nil {
		return fmt.Errorf("insert event: %w", err)
	}

	return nil
}

func (r *EventRepository) GetByID(ctx context.Context, id int64) (*domain.Event, error) {
	query := `SELECT ` + eventColumns + `
			  FROM events
			  WHERE id=$1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get event: %w", err)
	}

	var e domain.Event
	if err = scanEventRow(row, &e); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrEventNotFound
		}
		return nil, err
	}

	return &e, nil
}

func (r *EventRepository) List(ctx context.Context) ([]*domain.Event, error) {
	query := `SELECT ` + eventColumns + `
			  FROM events
			  ORDER BY start_date`
	return r.queryEvents(ctx, query)
}

func (r *EventRepository) ListByCategory(ctx context.Context, categoryID int64) ([]*domain.Event, error) {
	query := `SELECT ` + eventColumns + `
			  FROM events
			  WHERE category_id=$1
			  ORDER BY start_date`
	return r.queryEvents(ctx, query, categoryID)
}

func (r *EventRepository) ListByCity(ctx context.Context, city string) ([]*domain.Event, error) {
	query := `SELECT ` + eventColumns + `
			  FROM events
			  WHERE lower(city)=lower($1)
			  ORDER BY start_date`
	return r.queryEvents(ctx, query, city)
}

func (r *EventRepository) queryEvents(ctx context.Context, query string, args ...any) ([]*domain.Event, error) {
	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	defer rows.Close()

	var res []*domain.Event
	for rows.Next() {
		var e domain.Event
		if err = scanEventRow(rows, &e); err != nil {
			return nil, err
		}
		res = append(res, &e)
	}

	return res, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanEventRow(row rowScanner, e *domain.Event) error {
	if err := row.Scan(
		&e.ID, &e.Title, &e.Description, &e.Image, &e.MediaType, &e.CategoryID,
		&e.City, &e.Street, &e.Number, &e.Venue, &e.Complement,
		&e.StartDate, &e.EndDate, &e.SellerID, &e.TotalTickets,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return err
		}
		return fmt.Errorf("scan event: %w", err)
	}
	return nil
}
