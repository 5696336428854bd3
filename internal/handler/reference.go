package handler

import (
	"net/http"

	"github.com/wb-go/wbf/ginext"
)

func (h *Handler) ListCategories(c *ginext.Context) {
	categories, err := h.referenceService.ListCategories(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, categories)
}

func (h *Handler) GetCategory(c *ginext.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	category, err := h.referenceService.GetCategory(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, category)
}

func (h *Handler) ListCities(c *ginext.Context) {
	cities, err := h.referenceService.ListCities(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, cities)
}

func (h *Handler) GetCity(c *ginext.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	city, err := h.referenceService.GetCity(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, city)
}
