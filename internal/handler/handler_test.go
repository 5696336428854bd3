package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/ginext"

	"github.com/Devpy220/DiscoveryEvents/internal/domain"
	"github.com/Devpy220/DiscoveryEvents/internal/handler/dto"
	hmocks "github.com/Devpy220/DiscoveryEvents/internal/handler/mocks"
	"github.com/Devpy220/DiscoveryEvents/internal/middleware"
	smocks "github.com/Devpy220/DiscoveryEvents/internal/session/mocks"
)

type handlerMocks struct {
	auth      *hmocks.MockAuthSvc
	reference *hmocks.MockReferenceSvc
	events    *hmocks.MockEventSvc
	tickets   *hmocks.MockTicketSvc
	orders    *hmocks.MockOrderSvc
	sessions  *smocks.MockManager
}

func setupRouter(t *testing.T) (handlerMocks, http.Handler) {
	t.Helper()
	m := handlerMocks{
		auth:      hmocks.NewMockAuthSvc(t),
		reference: hmocks.NewMockReferenceSvc(t),
		events:    hmocks.NewMockEventSvc(t),
		tickets:   hmocks.NewMockTicketSvc(t),
		orders:    hmocks.NewMockOrderSvc(t),
		sessions:  smocks.NewMockManager(t),
	}

	h := NewHandler(m.auth, m.reference, m.events, m.tickets, m.orders, m.sessions, time.Hour)

	r := ginext.New("test")
	r.Use(middleware.Session(m.sessions))

	requireAuth := middleware.RequireAuth()
	api := r.Group("/api")
	{
		api.POST("/register", h.Register)
		api.POST("/login", h.Login)
		api.GET("/user", requireAuth, h.CurrentUser)
		api.GET("/categories", h.ListCategories)
		api.POST("/events", requireAuth, h.CreateEvent)
		api.GET("/events", h.ListEvents)
		api.GET("/events/:id", h.GetEvent)
		api.POST("/ticket-batches", requireAuth, h.CreateTicketBatch)
		api.POST("/orders", requireAuth, h.CreateOrder)
		api.GET("/orders/:id", requireAuth, h.GetOrder)
	}

	return m, r
}

func doJSON(t *testing.T, r http.Handler, method, path string, body any, sessionToken string) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if sessionToken != "" {
		req.AddCookie(&http.Cookie{Name: middleware.SessionCookie, Value: sessionToken})
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

// --- Auth ---

func TestHandler_Register_Success(t *testing.T) {
	m, r := setupRouter(t)

	user := &domain.User{ID: 1, Username: "alice", Email: "alice@example.com", FullName: "Alice", CreatedAt: time.Now()}
	m.auth.EXPECT().Register(mock.Anything, mock.Anything).Return(user, nil)
	m.sessions.EXPECT().Create(mock.Anything, int64(1)).Return("tok-1", nil)

	w := doJSON(t, r, http.MethodPost, "/api/register", dto.RegisterRequest{
		Username: "alice",
		Password: "secret123",
		Email:    "alice@example.com",
		FullName: "Alice",
	}, "")

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.UserResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "alice", resp.Username)

	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, middleware.SessionCookie, cookies[0].Name)
	assert.Equal(t, "tok-1", cookies[0].Value)
}

func TestHandler_Register_UsernameTaken(t *testing.T) {
	m, r := setupRouter(t)

	m.auth.EXPECT().Register(mock.Anything, mock.Anything).Return(nil, domain.ErrUsernameTaken)

	w := doJSON(t, r, http.MethodPost, "/api/register", dto.RegisterRequest{
		Username: "alice",
		Password: "secret123",
		Email:    "alice@example.com",
		FullName: "Alice",
	}, "")

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_Login_InvalidCredentials(t *testing.T) {
	m, r := setupRouter(t)

	m.auth.EXPECT().Authenticate(mock.Anything, "alice", "wrong").Return(nil, domain.ErrInvalidCredentials)

	w := doJSON(t, r, http.MethodPost, "/api/login", dto.LoginRequest{Username: "alice", Password: "wrong"}, "")

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestHandler_CurrentUser_NoSession(t *testing.T) {
	_, r := setupRouter(t)

	w := doJSON(t, r, http.MethodGet, "/api/user", nil, "")

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestHandler_CurrentUser_Success(t *testing.T) {
	m, r := setupRouter(t)

	m.sessions.EXPECT().Resolve(mock.Anything, "tok-1").Return(int64(1), nil)
	m.auth.EXPECT().GetByID(mock.Anything, int64(1)).Return(&domain.User{ID: 1, Username: "alice"}, nil)

	w := doJSON(t, r, http.MethodGet, "/api/user", nil, "tok-1")

	assert.Equal(t, http.StatusOK, w.Code)
}

// --- Events ---

func TestHandler_GetEvent_NotFound(t *testing.T) {
	m, r := setupRouter(t)

	m.events.EXPECT().GetByID(mock.Anything, int64(99)).Return(nil, domain.ErrEventNotFound)

	w := doJSON(t, r, http.MethodGet, "/api/events/99", nil, "")

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandler_GetEvent_BadID(t *testing.T) {
	_, r := setupRouter(t)

	w := doJSON(t, r, http.MethodGet, "/api/events/abc", nil, "")

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_ListEvents_ByCity(t *testing.T) {
	m, r := setupRouter(t)

	events := []*domain.Event{{ID: 1, Title: "Show", City: "Salvador", StartDate: time.Now()}}
	m.events.EXPECT().ListByCity(mock.Anything, "Salvador").Return(events, nil)

	w := doJSON(t, r, http.MethodGet, "/api/events?city=Salvador", nil, "")

	assert.Equal(t, http.StatusOK, w.Code)

	var resp []dto.EventResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp, 1)
	assert.Equal(t, "Salvador", resp[0].City)
}

func TestHandler_CreateEvent_RequiresAuth(t *testing.T) {
	_, r := setupRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/events", dto.CreateEventRequest{}, "")

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

// --- Ticket batches ---

func TestHandler_CreateTicketBatch_NotOwner(t *testing.T) {
	m, r := setupRouter(t)

	m.sessions.EXPECT().Resolve(mock.Anything, "tok-9").Return(int64(9), nil)
	m.tickets.EXPECT().CreateBatch(mock.Anything, mock.Anything, int64(9)).Return(nil, domain.ErrNotOwner)

	w := doJSON(t, r, http.MethodPost, "/api/ticket-batches", dto.CreateTicketBatchRequest{
		EventID:    1,
		CategoryID: 3,
		Name:       "Lote 1",
		Price:      decimal.RequireFromString("49.90"),
		Quantity:   100,
	}, "tok-9")

	assert.Equal(t, http.StatusForbidden, w.Code)
}

// --- Orders ---

func TestHandler_CreateOrder_Success(t *testing.T) {
	m, r := setupRouter(t)

	order := &domain.Order{
		ID:         1,
		BuyerID:    7,
		TicketID:   10,
		Quantity:   3,
		TotalPrice: decimal.RequireFromString("59.97"),
		Status:     domain.OrderStatusCompleted,
		CreatedAt:  time.Now(),
	}

	m.sessions.EXPECT().Resolve(mock.Anything, "tok-7").Return(int64(7), nil)
	m.orders.EXPECT().Place(mock.Anything, int64(7), int64(10), 3).Return(order, nil)

	w := doJSON(t, r, http.MethodPost, "/api/orders", dto.CreateOrderRequest{TicketID: 10, Quantity: 3}, "tok-7")

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.OrderResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "completed", resp.Status)
	assert.Equal(t, "59.97", resp.TotalPrice.StringFixed(2))
}

func TestHandler_CreateOrder_RequiresAuth(t *testing.T) {
	_, r := setupRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/orders", dto.CreateOrderRequest{TicketID: 10, Quantity: 1}, "")

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestHandler_CreateOrder_InsufficientInventory(t *testing.T) {
	m, r := setupRouter(t)

	m.sessions.EXPECT().Resolve(mock.Anything, "tok-7").Return(int64(7), nil)
	m.orders.EXPECT().Place(mock.Anything, int64(7), int64(10), 5).
		Return(nil, &domain.InsufficientInventoryError{Available: 2})

	w := doJSON(t, r, http.MethodPost, "/api/orders", dto.CreateOrderRequest{TicketID: 10, Quantity: 5}, "tok-7")

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotNil(t, resp.Available)
	assert.Equal(t, 2, *resp.Available)
}

func TestHandler_CreateOrder_InvalidBody(t *testing.T) {
	m, r := setupRouter(t)

	m.sessions.EXPECT().Resolve(mock.Anything, "tok-7").Return(int64(7), nil)

	req := httptest.NewRequest(http.MethodPost, "/api/orders", bytes.NewReader([]byte(`{"ticketId":`)))
	req.Header.Set("Content-Type", "application/json")
	req.AddCookie(&http.Cookie{Name: middleware.SessionCookie, Value: "tok-7"})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

// An order that belongs to someone else reads as not found, never as
// forbidden: the endpoint must not confirm the order exists.
func TestHandler_GetOrder_OtherBuyer(t *testing.T) {
	m, r := setupRouter(t)

	m.sessions.EXPECT().Resolve(mock.Anything, "tok-7").Return(int64(7), nil)
	m.orders.EXPECT().GetByID(mock.Anything, int64(3)).Return(&domain.Order{ID: 3, BuyerID: 99}, nil)

	w := doJSON(t, r, http.MethodGet, "/api/orders/3", nil, "tok-7")

	assert.Equal(t, http.StatusNotFound, w.Code)
}

// --- Reference data ---

func TestHandler_ListCategories(t *testing.T) {
	m, r := setupRouter(t)

	categories := []*domain.Category{{ID: 1, Name: "Música", Icon: "Music", Color: "primary"}}
	m.reference.EXPECT().ListCategories(mock.Anything).Return(categories, nil)

	w := doJSON(t, r, http.MethodGet, "/api/categories", nil, "")

	assert.Equal(t, http.StatusOK, w.Code)

	var resp []*domain.Category
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp, 1)
	assert.Equal(t, "Música", resp[0].Name)
}
