package router

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/wb-go/wbf/ginext"
)

type Handler interface {
	Register(c *ginext.Context)
	Login(c *ginext.Context)
	Logout(c *ginext.Context)
	CurrentUser(c *ginext.Context)

	ListCategories(c *ginext.Context)
	GetCategory(c *ginext.Context)
	ListCities(c *ginext.Context)
	GetCity(c *ginext.Context)

	CreateEvent(c *ginext.Context)
	GetEvent(c *ginext.Context)
	ListEvents(c *ginext.Context)

	CreateTicketCategory(c *ginext.Context)
	GetTicketCategory(c *ginext.Context)
	ListTicketCategories(c *ginext.Context)
	CreateTicketBatch(c *ginext.Context)
	GetTicketBatch(c *ginext.Context)
	ListTicketBatches(c *ginext.Context)
	CreateTicket(c *ginext.Context)
	GetTicket(c *ginext.Context)
	ListTickets(c *ginext.Context)

	CreateOrder(c *ginext.Context)
	GetOrder(c *ginext.Context)
	ListMyOrders(c *ginext.Context)
}

// InitRouter wires all routes. requireAuth guards the mutating and
// per-user endpoints; the session middleware itself comes in through mw.
func InitRouter(mode string, h Handler, requireAuth ginext.HandlerFunc, mw ...ginext.HandlerFunc) *ginext.Engine {
	router := ginext.New(mode)
	router.Use(mw...)

	api := router.Group("/api")
	{
		// Auth
		api.POST("/register", h.Register)
		api.POST("/login", h.Login)
		api.POST("/logout", h.Logout)
		api.GET("/user", requireAuth, h.CurrentUser)

		// Reference data
		api.GET("/categories", h.ListCategories)
		api.GET("/categories/:id", h.GetCategory)
		api.GET("/cities", h.ListCities)
		api.GET("/cities/:id", h.GetCity)

		// Events
		api.POST("/events", requireAuth, h.CreateEvent)
		api.GET("/events", h.ListEvents)
		api.GET("/events/:id", h.GetEvent)

		// Ticket categories
		api.POST("/ticket-categories", requireAuth, h.CreateTicketCategory)
		api.GET("/ticket-categories", h.ListTicketCategories)
		api.GET("/ticket-categories/:id", h.GetTicketCategory)

		// Ticket batches
		api.POST("/ticket-batches", requireAuth, h.CreateTicketBatch)
		api.GET("/ticket-batches", h.ListTicketBatches)
		api.GET("/ticket-batches/:id", h.GetTicketBatch)

		// Tickets
		api.POST("/tickets", requireAuth, h.CreateTicket)
		api.GET("/tickets", h.ListTickets)
		api.GET("/tickets/:id", h.GetTicket)

		// Orders
		api.POST("/orders", requireAuth, h.CreateOrder)
		api.GET("/orders", requireAuth, h.ListMyOrders)
		api.GET("/orders/:id", requireAuth, h.GetOrder)
	}

	router.GET("/health", func(c *ginext.Context) {
		c.JSON(http.StatusOK, ginext.H{"status": "ok"})
	})

	metrics := promhttp.Handler()
	router.GET("/metrics", func(c *ginext.Context) {
		metrics.ServeHTTP(c.Writer, c.Request)
	})

	return router
}
