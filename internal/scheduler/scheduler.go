package scheduler

import (
	"context"
	"time"

	"github.com/wb-go/wbf/logger"
)

type sessionSweeper interface {
	SweepExpired(ctx context.Context) (int, error)
}

// Scheduler periodically evicts expired negotiation sessions.
type Scheduler struct {
	sessions sessionSweeper
	interval time.Duration
	logger   logger.Logger
}

func New(
	sessions sessionSweeper,
	interval time.Duration,
	logger logger.Logger,
) *Scheduler {
	return &Scheduler{
		sessions: sessions,
		interval: interval,
		logger:   logger,
	}
}

func (s *Scheduler) Start(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.logger.Info("session sweeper started",
		logger.Duration("interval", s.interval),
	)

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("session sweeper stopped")
			return
		case <-ticker.C:
			s.tick(ctx)
		}
	}
}

func (s *Scheduler) tick(ctx context.Context) {
	removed, err := s.sessions.SweepExpired(ctx)
	if err != nil {
		s.logger.Error("failed to sweep expired sessions",
			logger.String("error", err.Error()),
		)
		return
	}

	if removed > 0 {
		s.logger.Debug("sweep finished", logger.Int("removed", removed))
	}
}
