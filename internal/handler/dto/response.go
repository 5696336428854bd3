package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/Devpy220/DiscoveryEvents/internal/domain"
)

type UserResponse struct {
	ID             int64   `json:"id"`
	Username       string  `json:"username"`
	Email          string  `json:"email"`
	FullName       string  `json:"fullName"`
	ProfilePicture *string `json:"profile_picture,omitempty"`
	CreatedAt      string  `json:"createdAt"`
}

type EventResponse struct {
	ID           int64   `json:"id"`
	Title        string  `json:"title"`
	Description  string  `json:"description"`
	Image        string  `json:"image"`
	MediaType    string  `json:"mediaType"`
	CategoryID   int64   `json:"categoryId"`
	City         string  `json:"city"`
	Street       string  `json:"street"`
	Number       string  `json:"number"`
	Venue        string  `json:"venue"`
	Complement   *string `json:"complement,omitempty"`
	StartDate    string  `json:"startDate"`
	EndDate      *string `json:"end_date,omitempty"`
	SellerID     int64   `json:"sellerId"`
	TotalTickets int     `json:"totalTickets"`
}

type TicketCategoryResponse struct {
	ID          int64   `json:"id"`
	EventID     int64   `json:"eventId"`
	Name        string  `json:"name"`
	Description *string `json:"description,omitempty"`
}

type TicketBatchResponse struct {
	ID         int64           `json:"id"`
	EventID    int64           `json:"eventId"`
	CategoryID int64           `json:"categoryId"`
	SellerID   int64           `json:"sellerId"`
	Name       string          `json:"name"`
	Price      decimal.Decimal `json:"price"`
	Quantity   int             `json:"quantity"`
	Available  int             `json:"available"`
	StartDate  *string         `json:"start_date,omitempty"`
	EndDate    *string         `json:"end_date,omitempty"`
	Active     bool            `json:"active"`
	CreatedAt  string          `json:"createdAt"`
}

type TicketResponse struct {
	ID        int64           `json:"id"`
	EventID   int64           `json:"eventId"`
	BatchID   int64           `json:"batchId"`
	SellerID  int64           `json:"sellerId"`
	Price     decimal.Decimal `json:"price"`
	CreatedAt string          `json:"createdAt"`
}

type OrderResponse struct {
	ID         int64           `json:"id"`
	BuyerID    int64           `json:"buyerId"`
	TicketID   int64           `json:"ticketId"`
	Quantity   int             `json:"quantity"`
	TotalPrice decimal.Decimal `json:"totalPrice"`
	Status     string          `json:"status"`
	CreatedAt  string          `json:"createdAt"`
}

// ErrorResponse carries the error text; Available is set only on
// insufficient-inventory rejections so the client can offer a reduced
// quantity.
type ErrorResponse struct {
	Error     string `json:"error"`
	Available *int   `json:"available,omitempty"`
}

func ToUserResponse(u *domain.User) UserResponse {
	return UserResponse{
		ID:             u.ID,
		Username:       u.Username,
		Email:          u.Email,
		FullName:       u.FullName,
		ProfilePicture: u.ProfilePicture,
		CreatedAt:      u.CreatedAt.Format(time.RFC3339),
	}
}

func ToEventResponse(e *domain.Event) EventResponse {
	return EventResponse{
		ID:           e.ID,
		Title:        e.Title,
		Description:  e.Description,
		Image:        e.Image,
		MediaType:    e.MediaType,
		CategoryID:   e.CategoryID,
		City:         e.City,
		Street:       e.Street,
		Number:       e.Number,
		Venue:        e.Venue,
		Complement:   e.Complement,
		StartDate:    e.StartDate.Format(time.RFC3339),
		EndDate:      formatTimePtr(e.EndDate),
		SellerID:     e.SellerID,
		TotalTickets: e.TotalTickets,
	}
}

func ToTicketCategoryResponse(c *domain.TicketCategory) TicketCategoryResponse {
	return TicketCategoryResponse{
		ID:          c.ID,
		EventID:     c.EventID,
		Name:        c.Name,
		Description: c.Description,
	}
}

func ToTicketBatchResponse(b *domain.TicketBatch) TicketBatchResponse {
	return TicketBatchResponse{
		ID:         b.ID,
		EventID:    b.EventID,
		CategoryID: b.CategoryID,
		SellerID:   b.SellerID,
		Name:       b.Name,
		Price:      b.Price,
		Quantity:   b.Quantity,
		Available:  b.Available,
		StartDate:  formatTimePtr(b.StartDate),
		EndDate:    formatTimePtr(b.EndDate),
		Active:     b.Active,
		CreatedAt:  b.CreatedAt.Format(time.RFC3339),
	}
}

func ToTicketResponse(t *domain.Ticket) TicketResponse {
	return TicketResponse{
		ID:        t.ID,
		EventID:   t.EventID,
		BatchID:   t.BatchID,
		SellerID:  t.SellerID,
		Price:     t.Price,
		CreatedAt: t.CreatedAt.Format(time.RFC3339),
	}
}

func ToOrderResponse(o *domain.Order) OrderResponse {
	return OrderResponse{
		ID:         o.ID,
		BuyerID:    o.BuyerID,
		TicketID:   o.TicketID,
		Quantity:   o.Quantity,
		TotalPrice: o.TotalPrice,
		Status:     string(o.Status),
		CreatedAt:  o.CreatedAt.Format(time.RFC3339),
	}
}

func formatTimePtr(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(time.RFC3339)
	return &s
}
