package handler

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/wb-go/wbf/ginext"

	"github.com/Devpy220/DiscoveryEvents/internal/domain"
	"github.com/Devpy220/DiscoveryEvents/internal/handler/dto"
	"github.com/Devpy220/DiscoveryEvents/internal/session"
)

type AuthSvc interface {
	Register(ctx context.Context, input domain.RegisterUserInput) (*domain.User, error)
	Authenticate(ctx context.Context, username, password string) (*domain.User, error)
	GetByID(ctx context.Context, id int64) (*domain.User, error)
}

type ReferenceSvc interface {
	ListCategories(ctx context.Context) ([]*domain.Category, error)
	GetCategory(ctx context.Context, id int64) (*domain.Category, error)
	ListCities(ctx context.Context) ([]*domain.City, error)
	GetCity(ctx context.Context, id int64) (*domain.City, error)
}

type EventSvc interface {
	Create(ctx context.Context, input domain.CreateEventInput, sellerID int64) (*domain.Event, error)
	GetByID(ctx context.Context, id int64) (*domain.Event, error)
	List(ctx context.Context) ([]*domain.Event, error)
	ListByCategory(ctx context.Context, categoryID int64) ([]*domain.Event, error)
	ListByCity(ctx context.Context, city string) ([]*domain.Event, error)
}

type TicketSvc interface {
	CreateCategory(ctx context.Context, input domain.CreateTicketCategoryInput, sellerID int64) (*domain.TicketCategory, error)
	GetCategory(ctx context.Context, id int64) (*domain.TicketCategory, error)
	ListCategories(ctx context.Context) ([]*domain.TicketCategory, error)
	ListCategoriesByEvent(ctx context.Context, eventID int64) ([]*domain.TicketCategory, error)
	CreateBatch(ctx context.Context, input domain.CreateTicketBatchInput, sellerID int64) (*domain.TicketBatch, error)
	GetBatch(ctx context.Context, id int64) (*domain.TicketBatch, error)
	ListBatches(ctx context.Context) ([]*domain.TicketBatch, error)
	ListBatchesByEvent(ctx context.Context, eventID int64) ([]*domain.TicketBatch, error)
	ListBatchesByCategory(ctx context.Context, categoryID int64) ([]*domain.TicketBatch, error)
	CreateTicket(ctx context.Context, input domain.CreateTicketInput, sellerID int64) (*domain.Ticket, error)
	GetTicket(ctx context.Context, id int64) (*domain.Ticket, error)
	ListTickets(ctx context.Context) ([]*domain.Ticket, error)
	ListTicketsByEvent(ctx context.Context, eventID int64) ([]*domain.Ticket, error)
	ListTicketsBySeller(ctx context.Context, sellerID int64) ([]*domain.Ticket, error)
}

type OrderSvc interface {
	Place(ctx context.Context, buyerID, ticketID int64, quantity int) (*domain.Order, error)
	GetByID(ctx context.Context, id int64) (*domain.Order, error)
	ListByBuyer(ctx context.Context, buyerID int64) ([]*domain.Order, error)
}

type Handler struct {
	authService      AuthSvc
	referenceService ReferenceSvc
	eventService     EventSvc
	ticketService    TicketSvc
	orderService     OrderSvc
	sessions         session.Manager
	cookieMaxAge     time.Duration
}

func NewHandler(
	authService AuthSvc,
	referenceService ReferenceSvc,
	eventService EventSvc,
	ticketService TicketSvc,
	orderService OrderSvc,
	sessions session.Manager,
	cookieMaxAge time.Duration,
) *Handler {
	return &Handler{
		authService:      authService,
		referenceService: referenceService,
		eventService:     eventService,
		ticketService:    ticketService,
		orderService:     orderService,
		sessions:         sessions,
		cookieMaxAge:     cookieMaxAge,
	}
}

func parseID(c *ginext.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid " + name})
		return 0, false
	}
	return id, true
}

func parseQueryID(c *ginext.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Query(name), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid " + name})
		return 0, false
	}
	return id, true
}

// parseOptionalDate parses an RFC3339 date field that may be absent.
// On a malformed value it writes the 400 response itself.
func parseOptionalDate(c *ginext.Context, name string, value *string) (*time.Time, bool) {
	if value == nil || *value == "" {
		return nil, true
	}
	t, err := time.Parse(time.RFC3339, *value)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "invalid " + name + " format, expected RFC3339",
		})
		return nil, false
	}
	return &t, true
}

func (h *Handler) handleError(c *ginext.Context, err error) {
	c.Set("error", err.Error())

	// Insufficient inventory carries the current counter so the buyer
	// can retry with a smaller quantity.
	var insufficient *domain.InsufficientInventoryError
	if errors.As(err, &insufficient) {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error:     err.Error(),
			Available: &insufficient.Available,
		})
		return
	}

	switch {
	case errors.Is(err, domain.ErrUserNotFound),
		errors.Is(err, domain.ErrCategoryNotFound),
		errors.Is(err, domain.ErrCityNotFound),
		errors.Is(err, domain.ErrEventNotFound),
		errors.Is(err, domain.ErrTicketCategoryNotFound),
		errors.Is(err, domain.ErrTicketBatchNotFound),
		errors.Is(err, domain.ErrTicketNotFound),
		errors.Is(err, domain.ErrOrderNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrInsufficientInventory),
		errors.Is(err, domain.ErrValidation),
		errors.Is(err, domain.ErrUsernameTaken),
		errors.Is(err, domain.ErrEmailTaken):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrNotOwner):
		c.JSON(http.StatusForbidden, dto.ErrorResponse{Error: err.Error()})

	default:
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "internal server error"})
	}
}
