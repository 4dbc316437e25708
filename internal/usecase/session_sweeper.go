package usecase

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"brrow-engine/internal/pkg/clock"
	"brrow-engine/internal/pkg/config"
)

// IdleExpirer drops sessions nobody has touched for too long and reports how
// many it dropped.
type IdleExpirer interface {
	ExpireIdle() int
}

// SessionSweeper periodically expires idle sessions across the engines.
type SessionSweeper struct {
	clock    clock.Clock
	interval time.Duration
	targets  map[string]IdleExpirer
	logger   *slog.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

func NewSessionSweeper(
	offers OfferSessions,
	uploads UploadSessions,
	countdowns CountdownSessions,
	clk clock.Clock,
	cfg config.Config,
	logger *slog.Logger,
) *SessionSweeper {
	return &SessionSweeper{
		clock:    clk,
		interval: cfg.Session.SweepInterval,
		targets: map[string]IdleExpirer{
			"offer":     offers,
			"upload":    uploads,
			"countdown": countdowns,
		},
		logger: logger,
	}
}

// Start launches the sweep loop. A non-positive interval disables sweeping.
func (s *SessionSweeper) Start() {
	if s.interval <= 0 {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cancel != nil {
		return
	}

	ctx, cancel := context.WithCancel(context.Background())
	s.cancel = cancel
	ticker := s.clock.Ticker(s.interval)

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				s.Sweep()
			}
		}
	}()
}

// Stop ends the sweep loop and waits for a running sweep to finish.
func (s *SessionSweeper) Stop() {
	s.mu.Lock()
	cancel := s.cancel
	s.cancel = nil
	s.mu.Unlock()

	if cancel == nil {
		return
	}
	cancel()
	s.wg.Wait()
}

// Sweep runs one expiry pass and returns the number of sessions dropped.
func (s *SessionSweeper) Sweep() int {
	total := 0
	for kind, target := range s.targets {
		n := target.ExpireIdle()
		if n > 0 {
			s.logger.Info("Expired idle sessions",
				slog.String("kind", kind),
				slog.Int("count", n),
			)
		}
		total += n
	}
	return total
}
