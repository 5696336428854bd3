package scheduler

import (
	"context"
	"time"

	"github.com/wb-go/wbf/logger"

	"github.com/Devpy220/DiscoveryEvents/internal/domain"
)

type batchSweeper interface {
	DeactivateExpired(ctx context.Context) ([]*domain.TicketBatch, error)
}

// Scheduler periodically deactivates batches whose sale window has
// closed so they stop appearing as purchasable.
type Scheduler struct {
	ticketService batchSweeper
	interval      time.Duration
	logger        logger.Logger
}

func New(
	ticketService batchSweeper,
	interval time.Duration,
	logger logger.Logger,
) *Scheduler {
	return &Scheduler{
		ticketService: ticketService,
		interval:      interval,
		logger:        logger,
	}
}

func (s *Scheduler) Start(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.logger.Info("scheduler started",
		logger.Duration("interval", s.interval),
	)

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("scheduler stopped")
			return
		case <-ticker.C:
			s.tick(ctx)
		}
	}
}

func (s *Scheduler) tick(ctx context.Context) {
	deactivated, err := s.ticketService.DeactivateExpired(ctx)
	if err != nil {
		s.logger.Error("failed to deactivate expired batches",
			logger.String("error", err.Error()),
		)
		return
	}

	for _, b := range deactivated {
		s.logger.Info("ticket batch sale window closed",
			logger.Int64("batch_id", b.ID),
			logger.Int64("event_id", b.EventID),
			logger.String("name", b.Name),
		)
	}
}
