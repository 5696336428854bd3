package notification

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/logger"
	gomail "gopkg.in/gomail.v2"

	"github.com/Devpy220/DiscoveryEvents/internal/domain"
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

type captureSender struct {
	messages []*gomail.Message
	err      error
}

func (s *captureSender) DialAndSend(m ...*gomail.Message) error {
	if s.err != nil {
		return s.err
	}
	s.messages = append(s.messages, m...)
	return nil
}

func testConfirmation() *domain.OrderConfirmation {
	return &domain.OrderConfirmation{
		OrderID:       42,
		EventName:     "Rock in Rio",
		EventDate:     time.Date(2026, 9, 19, 20, 0, 0, 0, time.UTC),
		TicketType:    "VIP",
		TicketPrice:   decimal.RequireFromString("19.99"),
		Quantity:      3,
		TotalPrice:    decimal.RequireFromString("59.97"),
		PurchaseDate:  time.Now(),
		VenueLocation: "Cidade do Rock, Av. Salvador Allende, 400, Rio de Janeiro",
	}
}

func TestEmailNotifier_DisabledWithoutHost(t *testing.T) {
	n := NewEmailNotifier(SMTPConfig{}, newTestLogger(t))

	assert.Nil(t, n.sender)

	// must be a no-op, not a panic
	n.NotifyOrderConfirmed(context.Background(), &domain.User{Email: "a@b.c"}, testConfirmation())
	n.NotifyWelcome(context.Background(), &domain.User{Email: "a@b.c"})
}

func TestEmailNotifier_NotifyOrderConfirmed(t *testing.T) {
	sender := &captureSender{}
	n := NewEmailNotifier(SMTPConfig{Host: "smtp.example.com", From: "no-reply@example.com", FromName: "Discovery Events"}, newTestLogger(t))
	n.sender = sender

	buyer := &domain.User{Email: "alice@example.com", FullName: "Alice Souza"}
	n.NotifyOrderConfirmed(context.Background(), buyer, testConfirmation())

	require.Len(t, sender.messages, 1)
	msg := sender.messages[0]
	assert.Contains(t, msg.GetHeader("Subject")[0], "Rock in Rio")
	assert.Contains(t, msg.GetHeader("To")[0], "alice@example.com")
}

func TestEmailNotifier_NotifyWelcome(t *testing.T) {
	sender := &captureSender{}
	n := NewEmailNotifier(SMTPConfig{Host: "smtp.example.com", From: "no-reply@example.com"}, newTestLogger(t))
	n.sender = sender

	n.NotifyWelcome(context.Background(), &domain.User{Email: "bob@example.com", FullName: "Bob"})

	require.Len(t, sender.messages, 1)
}

func TestEmailNotifier_SendFailureIsSwallowed(t *testing.T) {
	sender := &captureSender{err: errors.New("smtp unreachable")}
	n := NewEmailNotifier(SMTPConfig{Host: "smtp.example.com"}, newTestLogger(t))
	n.sender = sender

	// failure is logged, never surfaced
	n.NotifyWelcome(context.Background(), &domain.User{Email: "bob@example.com", FullName: "Bob"})
}

func TestEmailNotifier_SkipsOnCancelledContext(t *testing.T) {
	sender := &captureSender{}
	n := NewEmailNotifier(SMTPConfig{Host: "smtp.example.com"}, newTestLogger(t))
	n.sender = sender

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	n.NotifyWelcome(ctx, &domain.User{Email: "bob@example.com", FullName: "Bob"})

	assert.Empty(t, sender.messages)
}

func TestConfirmationBody_ContainsDetails(t *testing.T) {
	body := confirmationBody("Alice", testConfirmation())

	assert.Contains(t, body, "Rock in Rio")
	assert.Contains(t, body, "59.97")
	assert.Contains(t, body, "#42")
	assert.Contains(t, body, "VIP")
}
