package handler

import (
	"net/http"

	"github.com/wb-go/wbf/ginext"

	"github.com/Devpy220/DiscoveryEvents/internal/domain"
	"github.com/Devpy220/DiscoveryEvents/internal/handler/dto"
	"github.com/Devpy220/DiscoveryEvents/internal/middleware"
)

func (h *Handler) CreateOrder(c *ginext.Context) {
	buyerID, ok := middleware.CurrentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "unauthorized"})
		return
	}

	var req dto.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	order, err := h.orderService.Place(c.Request.Context(), buyerID, req.TicketID, req.Quantity)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToOrderResponse(order))
}

func (h *Handler) GetOrder(c *ginext.Context) {
	buyerID, ok := middleware.CurrentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "unauthorized"})
		return
	}

	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	order, err := h.orderService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}
	if order.BuyerID != buyerID {
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: domain.ErrOrderNotFound.Error()})
		return
	}

	c.JSON(http.StatusOK, dto.ToOrderResponse(order))
}

func (h *Handler) ListMyOrders(c *ginext.Context) {
	buyerID, ok := middleware.CurrentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "unauthorized"})
		return
	}

	orders, err := h.orderService.ListByBuyer(c.Request.Context(), buyerID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.OrderResponse, 0, len(orders))
	for _, o := range orders {
		resp = append(resp, dto.ToOrderResponse(o))
	}

	c.JSON(http.StatusOK, resp)
}
