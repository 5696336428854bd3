package ports

import (
	"context"

	"github.com/Devpy220/DiscoveryEvents/internal/domain"
)

// OrderNotifier is best-effort: implementations log their own failures
// and callers never treat a notification as part of the transaction.
type OrderNotifier interface {
	NotifyOrderConfirmed(ctx context.Context, buyer *domain.User, conf *domain.OrderConfirmation)
	NotifyWelcome(ctx context.Context, user *domain.User)
}
