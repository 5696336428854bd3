package notification

import (
	"context"
	"fmt"
	"time"

	"github.com/wb-go/wbf/logger"
	gomail "gopkg.in/gomail.v2"

	"github.com/Devpy220/DiscoveryEvents/internal/domain"
	"github.com/Devpy220/DiscoveryEvents/internal/metrics"
)

type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
	FromName string
}

type mailSender interface {
	DialAndSend(m ...*gomail.Message) error
}

// EmailNotifier delivers confirmation and welcome mail over SMTP. With
// an empty host it degrades to logging, same as running without a
// configured bot token did in earlier revisions.
type EmailNotifier struct {
	sender mailSender
	cfg    SMTPConfig
	logger logger.Logger
}

func NewEmailNotifier(cfg SMTPConfig, logger logger.Logger) *EmailNotifier {
	n := &EmailNotifier{cfg: cfg, logger: logger}
	if cfg.Host == "" {
		logger.Warn("smtp host is empty, email notifications disabled")
		return n
	}
	n.sender = gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password)
	return n
}

func (n *EmailNotifier) NotifyOrderConfirmed(ctx context.Context, buyer *domain.User, conf *domain.OrderConfirmation) {
	subject := fmt.Sprintf("Ticket confirmation - %s", conf.EventName)
	html := confirmationBody(buyer.FullName, conf)
	text := fmt.Sprintf(
		"Your order #%d for %s is confirmed. Date: %s. Venue: %s. Total: %s.",
		conf.OrderID, conf.EventName,
		conf.EventDate.Format("Mon, 02 Jan 2006 15:04"),
		conf.VenueLocation, conf.TotalPrice.StringFixed(2),
	)

	n.send(ctx, "order_confirmation", buyer, subject, html, text)
}

func (n *EmailNotifier) NotifyWelcome(ctx context.Context, user *domain.User) {
	subject := "Welcome to Discovery Event's"
	html := welcomeBody(user.FullName)
	text := fmt.Sprintf(
		"Welcome to Discovery Event's, %s! Browse events, buy tickets and sell your own listings.",
		user.FullName,
	)

	n.send(ctx, "welcome", user, subject, html, text)
}

func (n *EmailNotifier) send(ctx context.Context, kind string, to *domain.User, subject, html, text string) {
	if n.sender == nil {
		n.logger.Debug("email skipped (smtp disabled)",
			logger.String("kind", kind),
			logger.String("to", to.Email),
		)
		return
	}

	if err := ctx.Err(); err != nil {
		n.logger.Debug("email skipped (context cancelled)",
			logger.String("kind", kind),
			logger.String("to", to.Email),
		)
		return
	}

	msg := gomail.NewMessage()
	msg.SetAddressHeader("From", n.cfg.From, n.cfg.FromName)
	msg.SetAddressHeader("To", to.Email, to.FullName)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/plain", text)
	msg.AddAlternative("text/html", html)

	if err := n.sender.DialAndSend(msg); err != nil {
		metrics.EmailsSent.WithLabelValues(kind, "error").Inc()
		n.logger.Error("failed to send email",
			logger.String("kind", kind),
			logger.String("to", to.Email),
			logger.String("error", err.Error()),
		)
		return
	}

	metrics.EmailsSent.WithLabelValues(kind, "ok").Inc()
	n.logger.Info("email sent",
		logger.String("kind", kind),
		logger.String("to", to.Email),
	)
}

func confirmationBody(name string, conf *domain.OrderConfirmation) string {
	eventDate := conf.EventDate.Format("Monday, 02 January 2006 15:04")
	purchaseDate := conf.PurchaseDate.Format("02 January 2006 15:04")

	return fmt.Sprintf(`<html><body>
<h1>Purchase confirmation</h1>
<p>Hello, <strong>%s</strong>!</p>
<p>Your purchase is confirmed. Ticket details:</p>
<div>
  <h2>%s</h2>
  <p><strong>Date and time:</strong> %s</p>
  <p><strong>Venue:</strong> %s</p>
  <p><strong>Ticket type:</strong> %s</p>
  <p><strong>Quantity:</strong> %d</p>
  <p><strong>Unit price:</strong> %s</p>
  <p>
    <strong>Total:</strong> %s<br>
    <strong>Purchase date:</strong> %s<br>
    <strong>Order number:</strong> #%d
  </p>
</div>
<p>Your tickets are always available in the "My tickets" section of your profile.</p>
<p>Thank you for your purchase!<br>Discovery Event's team</p>
<p><small>This is an automated message, please do not reply. &copy; %d Discovery Event's.</small></p>
</body></html>`,
		name, conf.EventName, eventDate, conf.VenueLocation, conf.TicketType,
		conf.Quantity, conf.TicketPrice.StringFixed(2), conf.TotalPrice.StringFixed(2),
		purchaseDate, conf.OrderID, time.Now().Year(),
	)
}

func welcomeBody(name string) string {
	return fmt.Sprintf(`<html><body>
<h1>Welcome to Discovery Event's!</h1>
<p>Hello, <strong>%s</strong>!</p>
<p>We are glad to have you. With Discovery Event's you can:</p>
<ul>
  <li>Find the best events near you</li>
  <li>Buy tickets safely and easily</li>
  <li>Sell your own tickets on the platform</li>
</ul>
<p>Enjoy!<br>Discovery Event's team</p>
<p><small>This is an automated message, please do not reply. &copy; %d Discovery Event's.</small></p>
</body></html>`,
		name, time.Now().Year(),
	)
}
