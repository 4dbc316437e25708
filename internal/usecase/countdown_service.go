package usecase

//go:generate mockgen -source=countdown_service.go -destination=../../tests/mock/usecase/mock_countdown_service.go -package=usecasemock

import (
	"context"
	"log/slog"
	"time"

	"brrow-engine/internal/domain/countdown"
	"brrow-engine/internal/pkg/clock"
	"brrow-engine/internal/pkg/config"
	"brrow-engine/internal/pkg/errs"
	"brrow-engine/internal/usecase/shared"

	"github.com/google/uuid"
)

type CountdownSessions interface {
	Start(ctx context.Context, userID, deadline string, purpose countdown.Purpose) (CountdownView, error)
	Get(ctx context.Context, userID string, id uuid.UUID) (CountdownView, error)
	Subscribe(ctx context.Context, userID string, id uuid.UUID) (<-chan countdown.Remaining, func(), error)
	Stop(ctx context.Context, userID string, id uuid.UUID) error
	ExpireIdle() int
	Shutdown()
}

type countdownServiceImpl struct {
	sessions *shared.SessionStore[uuid.UUID, *CountdownEngine]
	clock    clock.Clock
	interval time.Duration
	ttl      time.Duration
	logger   *slog.Logger
}

func NewCountdownService(clk clock.Clock, cfg config.Config, logger *slog.Logger) CountdownSessions {
	return &countdownServiceImpl{
		sessions: shared.NewSessionStore[uuid.UUID, *CountdownEngine](clk),
		clock:    clk,
		interval: cfg.Countdown.TickInterval,
		ttl:      cfg.Session.TTL,
		logger:   logger,
	}
}

// Start parses the deadline once and begins ticking.
func (s *countdownServiceImpl) Start(ctx context.Context, userID, deadline string, purpose countdown.Purpose) (CountdownView, error) {
	if !purpose.IsValid() {
		return CountdownView{}, errs.WithHint(errs.ErrValidation, "purpose must be purchase_verification or meetup")
	}
	at, err := countdown.ParseDeadline(deadline)
	if err != nil {
		return CountdownView{}, errs.Mark(err, errs.ErrValidation)
	}

	id := uuid.New()
	engine := NewCountdownEngine(s.clock, at, purpose, s.logger.With(slog.String("countdown", id.String())))
	if err := engine.Start(s.interval); err != nil {
		return CountdownView{}, err
	}
	s.sessions.Put(userID, id, engine)

	return newCountdownView(id, engine), nil
}

func (s *countdownServiceImpl) Get(ctx context.Context, userID string, id uuid.UUID) (CountdownView, error) {
	engine, err := s.sessions.Get(userID, id)
	if err != nil {
		return CountdownView{}, err
	}
	return newCountdownView(id, engine), nil
}

func (s *countdownServiceImpl) Subscribe(ctx context.Context, userID string, id uuid.UUID) (<-chan countdown.Remaining, func(), error) {
	engine, err := s.sessions.Get(userID, id)
	if err != nil {
		return nil, nil, err
	}
	ch, cancel := engine.Subscribe()
	return ch, cancel, nil
}

func (s *countdownServiceImpl) Stop(ctx context.Context, userID string, id uuid.UUID) error {
	engine, err := s.sessions.Delete(userID, id)
	if err != nil {
		return err
	}
	engine.Stop()
	return nil
}

// ExpireIdle stops countdowns nobody has read or streamed within the session
// TTL.
func (s *countdownServiceImpl) ExpireIdle() int {
	expired := s.sessions.Expire(s.ttl, func(e *CountdownEngine) bool {
		return e.Subscribers() > 0
	})
	for _, engine := range expired {
		engine.Stop()
	}
	return len(expired)
}

func (s *countdownServiceImpl) Shutdown() {
	for _, engine := range s.sessions.Drain() {
		engine.Stop()
	}
}

func newCountdownView(id uuid.UUID, e *CountdownEngine) CountdownView {
	return CountdownView{
		SessionID: id,
		Deadline:  e.Deadline(),
		Purpose:   e.Purpose(),
		Running:   e.Running(),
		Remaining: e.Snapshot(),
	}
}
