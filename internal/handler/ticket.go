package handler

import (
	"net/http"

	"github.com/wb-go/wbf/ginext"

	"github.com/Devpy220/DiscoveryEvents/internal/domain"
	"github.com/Devpy220/DiscoveryEvents/internal/handler/dto"
	"github.com/Devpy220/DiscoveryEvents/internal/middleware"
)

// Ticket categories

func (h *Handler) CreateTicketCategory(c *ginext.Context) {
	sellerID, ok := middleware.CurrentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "unauthorized"})
		return
	}

	var req dto.CreateTicketCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	category, err := h.ticketService.CreateCategory(c.Request.Context(), domain.CreateTicketCategoryInput{
		EventID:     req.EventID,
		Name:        req.Name,
		Description: req.Description,
	}, sellerID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToTicketCategoryResponse(category))
}

func (h *Handler) GetTicketCategory(c *ginext.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	category, err := h.ticketService.GetCategory(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToTicketCategoryResponse(category))
}

func (h *Handler) ListTicketCategories(c *ginext.Context) {
	ctx := c.Request.Context()

	var (
		categories []*domain.TicketCategory
		err        error
	)
	if c.Query("eventId") != "" {
		eventID, ok := parseQueryID(c, "eventId")
		if !ok {
			return
		}
		categories, err = h.ticketService.ListCategoriesByEvent(ctx, eventID)
	} else {
		categories, err = h.ticketService.ListCategories(ctx)
	}
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.TicketCategoryResponse, 0, len(categories))
	for _, cat := range categories {
		resp = append(resp, dto.ToTicketCategoryResponse(cat))
	}

	c.JSON(http.StatusOK, resp)
}

// Ticket batches

func (h *Handler) CreateTicketBatch(c *ginext.Context) {
	sellerID, ok := middleware.CurrentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "unauthorized"})
		return
	}

	var req dto.CreateTicketBatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	startDate, ok := parseOptionalDate(c, "startDate", req.StartDate)
	if !ok {
		return
	}
	endDate, ok := parseOptionalDate(c, "endDate", req.EndDate)
	if !ok {
		return
	}

	batch, err := h.ticketService.CreateBatch(c.Request.Context(), domain.CreateTicketBatchInput{
		EventID:    req.EventID,
		CategoryID: req.CategoryID,
		Name:       req.Name,
		Price:      req.Price,
		Quantity:   req.Quantity,
		StartDate:  startDate,
		EndDate:    endDate,
	}, sellerID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToTicketBatchResponse(batch))
}

func (h *Handler) GetTicketBatch(c *ginext.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	batch, err := h.ticketService.GetBatch(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToTicketBatchResponse(batch))
}

func (h *Handler) ListTicketBatches(c *ginext.Context) {
	ctx := c.Request.Context()

	var (
		batches []*domain.TicketBatch
		err     error
	)
	switch {
	case c.Query("eventId") != "":
		eventID, ok := parseQueryID(c, "eventId")
		if !ok {
			return
		}
		batches, err = h.ticketService.ListBatchesByEvent(ctx, eventID)
	case c.Query("categoryId") != "":
		categoryID, ok := parseQueryID(c, "categoryId")
		if !ok {
			return
		}
		batches, err = h.ticketService.ListBatchesByCategory(ctx, categoryID)
	default:
		batches, err = h.ticketService.ListBatches(ctx)
	}
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.TicketBatchResponse, 0, len(batches))
	for _, b := range batches {
		resp = append(resp, dto.ToTicketBatchResponse(b))
	}

	c.JSON(http.StatusOK, resp)
}

// Tickets

func (h *Handler) CreateTicket(c *ginext.Context) {
	sellerID, ok := middleware.CurrentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "unauthorized"})
		return
	}

	var req dto.CreateTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	ticket, err := h.ticketService.CreateTicket(c.Request.Context(), domain.CreateTicketInput{
		BatchID: req.BatchID,
	}, sellerID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToTicketResponse(ticket))
}

func (h *Handler) GetTicket(c *ginext.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	ticket, err := h.ticketService.GetTicket(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToTicketResponse(ticket))
}

func (h *Handler) ListTickets(c *ginext.Context) {
	ctx := c.Request.Context()

	var (
		tickets []*domain.Ticket
		err     error
	)
	switch {
	case c.Query("eventId") != "":
		eventID, ok := parseQueryID(c, "eventId")
		if !ok {
			return
		}
		tickets, err = h.ticketService.ListTicketsByEvent(ctx, eventID)
	case c.Query("sellerId") != "":
		sellerID, ok := parseQueryID(c, "sellerId")
		if !ok {
			return
		}
		tickets, err = h.ticketService.ListTicketsBySeller(ctx, sellerID)
	default:
		tickets, err = h.ticketService.ListTickets(ctx)
	}
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.TicketResponse, 0, len(tickets))
	for _, t := range tickets {
		resp = append(resp, dto.ToTicketResponse(t))
	}

	c.JSON(http.StatusOK, resp)
}
