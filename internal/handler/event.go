package handler

import (
	"net/http"
	"time"

	"github.com/wb-go/wbf/ginext"

	"github.com/Devpy220/DiscoveryEvents/internal/domain"
	"github.com/Devpy220/DiscoveryEvents/internal/handler/dto"
	"github.com/Devpy220/DiscoveryEvents/internal/middleware"
)

func (h *Handler) CreateEvent(c *ginext.Context) {
	sellerID, ok := middleware.CurrentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "unauthorized"})
		return
	}

	var req dto.CreateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	startDate, err := time.Parse(time.RFC3339, req.StartDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "invalid start_date format, expected RFC3339",
		})
		return
	}

	endDate, ok := parseOptionalDate(c, "endDate", req.EndDate)
	if !ok {
		return
	}

	input := domain.CreateEventInput{
		Title:        req.Title,
		Description:  req.Description,
		Image:        req.Image,
		MediaType:    req.MediaType,
		CategoryID:   req.CategoryID,
		City:         req.City,
		Street:       req.Street,
		Number:       req.Number,
		Venue:        req.Venue,
		Complement:   req.Complement,
		StartDate:    startDate,
		EndDate:      endDate,
		TotalTickets: req.TotalTickets,
	}

	event, err := h.eventService.Create(c.Request.Context(), input, sellerID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToEventResponse(event))
}

func (h *Handler) GetEvent(c *ginext.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	event, err := h.eventService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToEventResponse(event))
}

// ListEvents supports optional category and city filters; without them
// it returns everything.
func (h *Handler) ListEvents(c *ginext.Context) {
	ctx := c.Request.Context()

	var (
		events []*domain.Event
		err    error
	)
	switch {
	case c.Query("categoryId") != "":
		categoryID, ok := parseQueryID(c, "categoryId")
		if !ok {
			return
		}
		events, err = h.eventService.ListByCategory(ctx, categoryID)
	case c.Query("city") != "":
		events, err = h.eventService.ListByCity(ctx, c.Query("city"))
	default:
		events, err = h.eventService.List(ctx)
	}
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.EventResponse, 0, len(events))
	for _, e := range events {
		resp = append(resp, dto.ToEventResponse(e))
	}

	c.JSON(http.StatusOK, resp)
}
