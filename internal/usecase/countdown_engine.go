package usecase

import (
	"errors"
	"log/slog"
	"sync"
	"time"

	"brrow-engine/internal/domain/countdown"
	"brrow-engine/internal/pkg/clock"
	"brrow-engine/internal/pkg/errs"

	fbclock "github.com/facebookgo/clock"
)

var ErrInvalidTickInterval = errors.New("tick interval must be positive")

// CountdownEngine recomputes the time left until a fixed deadline once per
// tick and pushes the result to subscribers. Clock adjustments between ticks
// are not compensated.
type CountdownEngine struct {
	mu       sync.Mutex
	clock    clock.Clock
	deadline time.Time
	purpose  countdown.Purpose
	logger   *slog.Logger

	latest  countdown.Remaining
	started bool
	running bool
	ticker  *fbclock.Ticker
	done    chan struct{}
	wg      sync.WaitGroup

	subs    map[int]chan countdown.Remaining
	nextSub int
}

func NewCountdownEngine(clk clock.Clock, deadline time.Time, purpose countdown.Purpose, logger *slog.Logger) *CountdownEngine {
	return &CountdownEngine{
		clock:    clk,
		deadline: deadline,
		purpose:  purpose,
		logger:   logger,
		subs:     make(map[int]chan countdown.Remaining),
	}
}

// Start computes the first tick synchronously, then keeps ticking every
// interval until Stop. Starting a running engine does nothing.
func (e *CountdownEngine) Start(interval time.Duration) error {
	if interval <= 0 {
		return errs.Mark(ErrInvalidTickInterval, errs.ErrValidation)
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	if e.running {
		return nil
	}
	e.publish(countdown.Decompose(e.deadline, e.clock.Now()))

	e.ticker = e.clock.Ticker(interval)
	e.done = make(chan struct{})
	e.running = true
	e.started = true

	e.wg.Add(1)
	go e.run(e.ticker, e.done)
	return nil
}

// Stop halts ticking and closes every subscription. It is safe to call more
// than once.
func (e *CountdownEngine) Stop() {
	e.mu.Lock()
	if !e.running {
		e.mu.Unlock()
		return
	}
	e.running = false
	e.ticker.Stop()
	close(e.done)
	for id, ch := range e.subs {
		close(ch)
		delete(e.subs, id)
	}
	e.mu.Unlock()

	e.wg.Wait()
}

func (e *CountdownEngine) IsExpired() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.latest.Expired
}

func (e *CountdownEngine) Snapshot() countdown.Remaining {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.latest
}

func (e *CountdownEngine) Running() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.running
}

func (e *CountdownEngine) Deadline() time.Time        { return e.deadline }
func (e *CountdownEngine) Purpose() countdown.Purpose { return e.purpose }

// Subscribers counts the open subscriptions.
func (e *CountdownEngine) Subscribers() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return len(e.subs)
}

// Subscribe returns a channel that receives one value per tick, starting with
// the latest one. A slow reader only ever sees the most recent value. The
// channel is closed by Stop or by the returned cancel func.
func (e *CountdownEngine) Subscribe() (<-chan countdown.Remaining, func()) {
	e.mu.Lock()
	defer e.mu.Unlock()

	ch := make(chan countdown.Remaining, 1)
	if !e.running {
		if e.started {
			ch <- e.latest
		}
		close(ch)
		return ch, func() {}
	}

	id := e.nextSub
	e.nextSub++
	e.subs[id] = ch
	ch <- e.latest

	var once sync.Once
	return ch, func() {
		once.Do(func() {
			e.mu.Lock()
			defer e.mu.Unlock()
			if sub, ok := e.subs[id]; ok {
				close(sub)
				delete(e.subs, id)
			}
		})
	}
}

func (e *CountdownEngine) run(ticker *fbclock.Ticker, done <-chan struct{}) {
	defer e.wg.Done()
	for {
		select {
		case <-done:
			return
		case at := <-ticker.C:
			e.tick(at)
		}
	}
}

func (e *CountdownEngine) tick(at time.Time) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.running {
		return
	}
	wasExpired := e.latest.Expired
	e.publish(countdown.Decompose(e.deadline, at))
	if e.latest.Expired && !wasExpired {
		e.logger.Info("Deadline reached",
			slog.String("purpose", e.purpose.String()),
			slog.Time("deadline", e.deadline),
		)
	}
}

// publish must be called with mu held.
func (e *CountdownEngine) publish(r countdown.Remaining) {
	e.latest = r
	for _, ch := range e.subs {
		select {
		case ch <- r:
		default:
			select {
			case <-ch:
			default:
			}
			ch <- r
		}
	}
}
