package domain

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// TicketCategory groups batches of one event into tiers ("VIP",
// "Half-price").
type TicketCategory struct {
	ID          int64   `json:"id"`
	EventID     int64   `json:"event_id"`
	Name        string  `json:"name"`
	Description *string `json:"description,omitempty"`
}

type CreateTicketCategoryInput struct {
	EventID     int64
	Name        string
	Description *string
}

func (in *CreateTicketCategoryInput) Validate() error {
	if in.EventID <= 0 {
		return fmt.Errorf("%w: event_id is required", ErrValidation)
	}
	if in.Name == "" {
		return fmt.Errorf("%w: name is required", ErrValidation)
	}
	return nil
}

// TicketBatch is a time-boxed, priced allocation of tickets within a
// category. Available is the authoritative remaining-stock counter;
// 0 <= Available <= Quantity holds at all times.
type TicketBatch struct {
	ID         int64           `json:"id"`
	EventID    int64           `json:"event_id"`
	CategoryID int64           `json:"category_id"`
	SellerID   int64           `json:"seller_id"`
	Name       string          `json:"name"`
	Price      decimal.Decimal `json:"price"`
	Quantity   int             `json:"quantity"`
	Available  int             `json:"available"`
	StartDate  *time.Time      `json:"start_date,omitempty"`
	EndDate    *time.Time      `json:"end_date,omitempty"`
	Active     bool            `json:"active"`
	CreatedAt  time.Time       `json:"created_at"`
}

type CreateTicketBatchInput struct {
	EventID    int64
	CategoryID int64
	Name       string
	Price      decimal.Decimal
	Quantity   int
	StartDate  *time.Time
	EndDate    *time.Time
}

func (in *CreateTicketBatchInput) Validate() error {
	switch {
	case in.EventID <= 0:
		return fmt.Errorf("%w: event_id is required", ErrValidation)
	case in.CategoryID <= 0:
		return fmt.Errorf("%w: category_id is required", ErrValidation)
	case in.Name == "":
		return fmt.Errorf("%w: name is required", ErrValidation)
	case in.Price.IsNegative():
		return fmt.Errorf("%w: price must not be negative", ErrValidation)
	case in.Quantity <= 0:
		return fmt.Errorf("%w: quantity must be positive", ErrValidation)
	}
	if in.StartDate != nil && in.EndDate != nil && in.EndDate.Before(*in.StartDate) {
		return fmt.Errorf("%w: end_date must not be before start_date", ErrValidation)
	}
	return nil
}

// Ticket is the sellable-unit template tied to a batch, not a physical
// seat. Price is snapshotted from the batch at creation so later batch
// price changes never touch sold tickets.
type Ticket struct {
	ID        int64           `json:"id"`
	EventID   int64           `json:"event_id"`
	BatchID   int64           `json:"batch_id"`
	SellerID  int64           `json:"seller_id"`
	Price     decimal.Decimal `json:"price"`
	CreatedAt time.Time       `json:"created_at"`
}

type CreateTicketInput struct {
	BatchID int64
}

func (in *CreateTicketInput) Validate() error {
	if in.BatchID <= 0 {
		return fmt.Errorf("%w: batch_id is required", ErrValidation)
	}
	return nil
}
