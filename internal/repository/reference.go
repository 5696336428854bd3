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

// ReferenceRepository serves the categories and cities lookup tables.
// Rows come from the seed migration; there is no write path.
type ReferenceRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewReferenceRepo(db *dbpg.DB) *ReferenceRepository {
	return &ReferenceRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *ReferenceRepository) ListCategories(ctx context.Context) ([]*domain.Category, error) {
	query := `SELECT id, name, icon, color, event_count
			  FROM categories
			  ORDER BY id`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	defer rows.Close()

	var res []*domain.Category
	for rows.Next() {
		var c domain.Category
		if err = rows.Scan(&c.ID, &c.Name, &c.Icon, &c.Color, &c.EventCount); err != nil {
			return nil, fmt.Errorf("scan category: %w", err)
		}
		res = append(res, &c)
	}

	return res, rows.Err()
}

func (r *ReferenceRepository) GetCategory(ctx context.Context, id int64) (*domain.Category, error) {
	query := `SELECT id, name, icon, color, event_count
			  FROM categories
			  WHERE id=$1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get category: %w", err)
	}

	var c domain.Category
	if err = row.Scan(&c.ID, &c.Name, &c.Icon, &c.Color, &c.EventCount); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrCategoryNotFound
		}
		return nil, fmt.Errorf("scan category: %w", err)
	}

	return &c, nil
}

func (r *ReferenceRepository) ListCities(ctx context.Context) ([]*domain.City, error) {
	query := `SELECT id, name, image, event_count
			  FROM cities
			  ORDER BY id`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query)
	if err != nil {
		return nil, fmt.Errorf("list cities: %w", err)
	}
	defer rows.Close()

	var res []*domain.City
	for rows.Next() {
		var c domain.City
		if err = rows.Scan(&c.ID, &c.Name, &c.Image, &c.EventCount); err != nil {
			return nil, fmt.Errorf("scan city: %w", err)
		}
		res = append(res, &c)
	}

	return res, rows.Err()
}

func (r *ReferenceRepository) GetCity(ctx context.Context, id int64) (*domain.City, error) {
	query := `SELECT id, name, image, event_count
			  FROM cities
			  WHERE id=$1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get city: %w", err)
	}

	var c domain.City
	if err = row.Scan(&c.ID, &c.Name, &c.Image, &c.EventCount); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrCityNotFound
		}
		return nil, fmt.Errorf("scan city: %w", err)
	}

	return &c, nil
}
