package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type OrderStatus string

// Orders are terminal on creation; there is no pending or cancelled
// state and no refund path.
const OrderStatusCompleted OrderStatus = "completed"

type Order struct {
	ID         int64           `json:"id"`
	BuyerID    int64           `json:"buyer_id"`
	TicketID   int64           `json:"ticket_id"`
	Quantity   int             `json:"quantity"`
	TotalPrice decimal.Decimal `json:"total_price"`
	Status     OrderStatus     `json:"status"`
	CreatedAt  time.Time       `json:"created_at"`
}

// OrderConfirmation carries everything the notifier needs to compose a
// purchase confirmation without going back to the store.
type OrderConfirmation struct {
	OrderID       int64
	EventName     string
	EventDate     time.Time
	TicketType    string
	TicketPrice   decimal.Decimal
	Quantity      int
	TotalPrice    decimal.Decimal
	PurchaseDate  time.Time
	VenueLocation string
}
