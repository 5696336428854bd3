package handler

import (
	"net/http"

	"github.com/wb-go/wbf/ginext"

	"github.com/Devpy220/DiscoveryEvents/internal/domain"
	"github.com/Devpy220/DiscoveryEvents/internal/handler/dto"
	"github.com/Devpy220/DiscoveryEvents/internal/middleware"
)

func (h *Handler) Register(c *ginext.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	user, err := h.authService.Register(c.Request.Context(), domain.RegisterUserInput{
		Username: req.Username,
		Password: req.Password,
		Email:    req.Email,
		FullName: req.FullName,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	if err := h.startSession(c, user.ID); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToUserResponse(user))
}

func (h *Handler) Login(c *ginext.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	user, err := h.authService.Authenticate(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		h.handleError(c, err)
		return
	}

	if err := h.startSession(c, user.ID); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToUserResponse(user))
}

func (h *Handler) Logout(c *ginext.Context) {
	if token, err := c.Cookie(middleware.SessionCookie); err == nil && token != "" {
		if err := h.sessions.Destroy(c.Request.Context(), token); err != nil {
			h.handleError(c, err)
			return
		}
	}

	c.SetCookie(middleware.SessionCookie, "", -1, "/", "", false, true)
	c.JSON(http.StatusOK, ginext.H{"status": "logged out"})
}

func (h *Handler) CurrentUser(c *ginext.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "unauthorized"})
		return
	}

	user, err := h.authService.GetByID(c.Request.Context(), userID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToUserResponse(user))
}

func (h *Handler) startSession(c *ginext.Context, userID int64) error {
	token, err := h.sessions.Create(c.Request.Context(), userID)
	if err != nil {
		return err
	}
	c.SetCookie(middleware.SessionCookie, token, int(h.cookieMaxAge.Seconds()), "/", "", false, true)
	return nil
}
