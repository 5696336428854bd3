package dto

import "github.com/shopspring/decimal"

type RegisterRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
	Email    string `json:"email" binding:"required"`
	FullName string `json:"fullName" binding:"required"`
}

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type CreateEventRequest struct {
	Title        string  `json:"title" binding:"required"`
	Description  string  `json:"description" binding:"required"`
	Image        string  `json:"image"`
	MediaType    string  `json:"mediaType"`
	CategoryID   int64   `json:"categoryId" binding:"required"`
	City         string  `json:"city" binding:"required"`
	Street       string  `json:"street" binding:"required"`
	Number       string  `json:"number" binding:"required"`
	Venue        string  `json:"venue" binding:"required"`
	Complement   *string `json:"complement"`
	StartDate    string  `json:"startDate" binding:"required"`
	EndDate      *string `json:"endDate"`
	TotalTickets int     `json:"totalTickets" binding:"required,gt=0"`
}

type CreateTicketCategoryRequest struct {
	EventID     int64   `json:"eventId" binding:"required"`
	Name        string  `json:"name" binding:"required"`
	Description *string `json:"description"`
}

type CreateTicketBatchRequest struct {
	EventID    int64           `json:"eventId" binding:"required"`
	CategoryID int64           `json:"categoryId" binding:"required"`
	Name       string          `json:"name" binding:"required"`
	Price      decimal.Decimal `json:"price"`
	Quantity   int             `json:"quantity" binding:"required,gt=0"`
	StartDate  *string         `json:"startDate"`
	EndDate    *string         `json:"endDate"`
}

type CreateTicketRequest struct {
	BatchID int64 `json:"batchId" binding:"required"`
}

type CreateOrderRequest struct {
	TicketID int64 `json:"ticketId" binding:"required"`
	Quantity int   `json:"quantity" binding:"required"`
}
