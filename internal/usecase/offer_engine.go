package usecase

import (
	"context"
	"errors"
	"log/slog"
	"strconv"
	"sync"
	"time"

	"brrow-engine/internal/domain/offer"
	"brrow-engine/internal/infra"
	"brrow-engine/internal/pkg/clock"
	"brrow-engine/internal/pkg/config"
	"brrow-engine/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/singleflight"
)

var (
	ErrEngineClosed = errors.New("offer session is closed")

	errStaleSubmission = errors.New("submission result superseded")
)

const (
	hintPaymentDeclined  = "Your payment method was declined. Please try a different card."
	hintPaymentCancelled = "Payment cancelled. Your offer was not sent."
	hintOfferRejected    = "Failed to send offer"
	hintTransport        = "Network error. Please check your connection and try again."

	reasonPaymentTimeout = "payment_timeout"
)

// OfferEngine drives one offer from draft through submission and payment
// authorization. All state changes happen under mu; the network call does
// not.
type OfferEngine struct {
	mu       sync.Mutex
	id       uuid.UUID
	userID   string
	offer    *offer.Offer
	gateway  OfferGateway
	recorder OfferEventRecorder
	clock    clock.Clock
	cfg      config.OfferConfig
	logger   *slog.Logger

	flights       singleflight.Group
	generation    uint64
	cancelFlight  context.CancelFunc
	awaitingSince time.Time
	closed        bool
}

func NewOfferEngine(
	id uuid.UUID,
	userID string,
	draft *offer.Offer,
	gateway OfferGateway,
	recorder OfferEventRecorder,
	clk clock.Clock,
	cfg config.OfferConfig,
	logger *slog.Logger,
) *OfferEngine {
	return &OfferEngine{
		id:       id,
		userID:   userID,
		offer:    draft,
		gateway:  gateway,
		recorder: recorder,
		clock:    clk,
		cfg:      cfg,
		logger:   logger.With(slog.String("offer_session", id.String())),
	}
}

func (e *OfferEngine) ID() uuid.UUID  { return e.id }
func (e *OfferEngine) UserID() string { return e.userID }

func (e *OfferEngine) View() OfferView {
	e.mu.Lock()
	defer e.mu.Unlock()
	return newOfferView(e.id, e.offer)
}

// SetAmount parses free text into the amount. Unparseable text zeroes the
// amount and still returns the resulting view alongside the error.
func (e *OfferEngine) SetAmount(ctx context.Context, raw string) (OfferView, error) {
	var events []OfferEvent
	defer func() { e.record(ctx, events) }()

	e.mu.Lock()
	defer e.mu.Unlock()

	if err := e.ensureOpen(); err != nil {
		return newOfferView(e.id, e.offer), err
	}
	events = e.expireStalePayment(events)

	from := e.offer.State()
	_, err := e.offer.SetAmount(raw)
	events = e.transition(events, from, nil)
	if err != nil {
		return newOfferView(e.id, e.offer), e.markDomainErr(err)
	}
	return newOfferView(e.id, e.offer), nil
}

// Adjust applies a quick-adjust delta. Out-of-range deltas leave the amount
// untouched.
func (e *OfferEngine) Adjust(ctx context.Context, delta decimal.Decimal) OfferView {
	var events []OfferEvent
	defer func() { e.record(ctx, events) }()

	e.mu.Lock()
	defer e.mu.Unlock()

	if e.closed {
		return newOfferView(e.id, e.offer)
	}
	events = e.expireStalePayment(events)

	from := e.offer.State()
	e.offer.Adjust(delta)
	events = e.transition(events, from, nil)
	return newOfferView(e.id, e.offer)
}

func (e *OfferEngine) SetMessage(ctx context.Context, text string) (OfferView, error) {
	var events []OfferEvent
	defer func() { e.record(ctx, events) }()

	e.mu.Lock()
	defer e.mu.Unlock()

	if err := e.ensureOpen(); err != nil {
		return newOfferView(e.id, e.offer), err
	}
	events = e.expireStalePayment(events)

	from := e.offer.State()
	if err := e.offer.SetMessage(text); err != nil {
		return newOfferView(e.id, e.offer), e.markDomainErr(err)
	}
	events = e.transition(events, from, nil)
	return newOfferView(e.id, e.offer), nil
}

func (e *OfferEngine) CanSubmit(ctx context.Context) bool {
	var events []OfferEvent
	defer func() { e.record(ctx, events) }()

	e.mu.Lock()
	defer e.mu.Unlock()

	if e.closed {
		return false
	}
	events = e.expireStalePayment(events)
	return e.offer.CanSubmit()
}

// Submit creates the offer on the backend and returns the payment
// authorization the caller must present. While a submission is in flight,
// further calls join it; once awaiting payment they return the stored
// authorization without touching the network.
func (e *OfferEngine) Submit(ctx context.Context) (*offer.PaymentAuthorization, error) {
	var events []OfferEvent
	defer func() { e.record(ctx, events) }()

	e.mu.Lock()
	if err := e.ensureOpen(); err != nil {
		e.mu.Unlock()
		return nil, err
	}
	events = e.expireStalePayment(events)

	var ch <-chan singleflight.Result
	switch e.offer.State() {
	case offer.StateAwaitingPayment:
		auth := e.offer.Authorization()
		e.mu.Unlock()
		return auth, nil

	case offer.StateSubmitting:
		ch = e.flights.DoChan(e.flightKey(), func() (any, error) {
			return nil, errStaleSubmission
		})

	default:
		from := e.offer.State()
		if err := e.offer.BeginSubmission(); err != nil {
			e.mu.Unlock()
			return nil, e.markDomainErr(err)
		}
		events = e.transition(events, from, nil)
		ch = e.startFlight(ctx)
	}
	e.mu.Unlock()

	select {
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		auth := res.Val.(offer.PaymentAuthorization)
		return &auth, nil
	case <-ctx.Done():
		return nil, errs.Mark(ctx.Err(), errs.ErrSubmissionCancelled)
	}
}

// startFlight must be called with mu held and the offer in submitting.
func (e *OfferEngine) startFlight(ctx context.Context) <-chan singleflight.Result {
	if e.cancelFlight != nil {
		e.cancelFlight()
	}
	e.generation++
	gen := e.generation

	flightCtx, cancel := context.WithTimeout(ctx, e.cfg.SubmitTimeout)
	e.cancelFlight = cancel

	in := CreateOfferInput{
		ListingID:    e.offer.ListingID(),
		Amount:       e.offer.Amount(),
		Message:      e.offer.Message(),
		DurationDays: e.cfg.DurationDays,
	}

	return e.flights.DoChan(e.flightKey(), func() (any, error) {
		defer cancel()
		auth, err := e.gateway.CreateOffer(flightCtx, in)
		return e.finishFlight(ctx, gen, auth, err)
	})
}

func (e *OfferEngine) finishFlight(ctx context.Context, gen uint64, auth *offer.PaymentAuthorization, callErr error) (any, error) {
	var events []OfferEvent
	defer func() { e.record(ctx, events) }()

	e.mu.Lock()
	defer e.mu.Unlock()

	if gen != e.generation || e.offer.State() != offer.StateSubmitting {
		e.logger.Debug("Dropping stale submission result", slog.Uint64("generation", gen))
		return nil, errs.Mark(errStaleSubmission, errs.ErrSubmissionCancelled)
	}
	e.cancelFlight = nil

	if callErr == nil && auth == nil {
		callErr = infra.Error{Kind: infra.KindMalformedResponse}
	}
	if callErr == nil {
		callErr = e.offer.RequirePayment(*auth)
		if callErr == nil {
			e.awaitingSince = e.clock.Now()
			events = e.transition(events, offer.StateSubmitting, nil)
			return *auth, nil
		}
		callErr = errs.Mark(callErr, errs.ErrTransport)
	}

	err := e.classifySubmitErr(callErr)
	_ = e.offer.AbortSubmission()
	reason := submitFailureReason(err)
	events = e.transition(events, offer.StateSubmitting, &reason)
	return nil, err
}

// ResolvePayment applies the payment sheet's outcome. A cancelled sheet
// returns ErrPaymentCancelled, which callers should treat as benign.
func (e *OfferEngine) ResolvePayment(ctx context.Context, outcome offer.PaymentOutcome) (OfferView, error) {
	var events []OfferEvent
	defer func() { e.record(ctx, events) }()

	e.mu.Lock()
	defer e.mu.Unlock()

	if err := e.ensureOpen(); err != nil {
		return newOfferView(e.id, e.offer), err
	}
	if !outcome.Kind.IsValid() {
		return newOfferView(e.id, e.offer), errs.Mark(offer.ErrInvalidOutcome, errs.ErrValidation)
	}

	from := e.offer.State()
	if err := e.offer.ResolvePayment(outcome); err != nil {
		return newOfferView(e.id, e.offer), e.markDomainErr(err)
	}

	view := newOfferView(e.id, e.offer)
	switch outcome.Kind {
	case offer.OutcomeCancelled:
		reason := string(offer.OutcomeCancelled)
		events = e.transition(events, from, &reason)
		e.logger.Info("Payment sheet cancelled")
		return view, errs.WithHint(errs.Mark(errs.New("payment sheet cancelled"), errs.ErrPaymentCancelled), hintPaymentCancelled)

	case offer.OutcomeFailed:
		reason := outcome.Reason
		events = e.transition(events, from, &reason)
		e.logger.Warn("Payment sheet failed", slog.String("reason", reason))
		hint := reason
		if hint == "" {
			hint = "Payment failed"
		}
		return view, errs.WithHint(errs.Mark(errs.New("payment sheet failed"), errs.ErrPaymentFailed), hint)

	default:
		events = e.transition(events, from, nil)
		return view, nil
	}
}

// ApplyRemoteStatus records the seller's or backend's verdict on a sent offer.
func (e *OfferEngine) ApplyRemoteStatus(ctx context.Context, next offer.State) (OfferView, error) {
	var events []OfferEvent
	defer func() { e.record(ctx, events) }()

	e.mu.Lock()
	defer e.mu.Unlock()

	if err := e.ensureOpen(); err != nil {
		return newOfferView(e.id, e.offer), err
	}

	from := e.offer.State()
	if err := e.offer.ApplyRemoteStatus(next); err != nil {
		return newOfferView(e.id, e.offer), e.markDomainErr(err)
	}
	events = e.transition(events, from, nil)
	return newOfferView(e.id, e.offer), nil
}

// Close cancels any in-flight submission without reporting it. Later calls
// fail with ErrEngineClosed.
func (e *OfferEngine) Close() {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.closed {
		return
	}
	e.closed = true
	e.flights.Forget(e.flightKey())
	e.generation++
	if e.cancelFlight != nil {
		e.cancelFlight()
		e.cancelFlight = nil
	}
	if e.offer.State() == offer.StateSubmitting {
		_ = e.offer.AbortSubmission()
	}
}

func (e *OfferEngine) ensureOpen() error {
	if e.closed {
		return errs.Mark(ErrEngineClosed, errs.ErrSessionNotFound)
	}
	return nil
}

// expireStalePayment treats a payment sheet left open past the payment
// timeout as cancelled.
func (e *OfferEngine) expireStalePayment(events []OfferEvent) []OfferEvent {
	if e.offer.State() != offer.StateAwaitingPayment || e.cfg.PaymentTimeout <= 0 {
		return events
	}
	if e.clock.Now().Sub(e.awaitingSince) < e.cfg.PaymentTimeout {
		return events
	}
	if err := e.offer.ResolvePayment(offer.Cancelled()); err != nil {
		return events
	}
	e.logger.Info("Payment authorization timed out", slog.Duration("timeout", e.cfg.PaymentTimeout))
	reason := reasonPaymentTimeout
	return e.transition(events, offer.StateAwaitingPayment, &reason)
}

func (e *OfferEngine) flightKey() string {
	return "submit-" + strconv.FormatUint(e.generation, 10)
}

func (e *OfferEngine) transition(events []OfferEvent, from offer.State, reason *string) []OfferEvent {
	to := e.offer.State()
	if from == to {
		return events
	}
	var offerID *string
	if id, ok := e.offer.OfferID(); ok {
		offerID = &id
	}
	return append(events, OfferEvent{
		SessionID:  e.id,
		UserID:     e.userID,
		ListingID:  e.offer.ListingID(),
		OfferID:    offerID,
		FromState:  from,
		ToState:    to,
		Amount:     e.offer.Amount().Decimal(),
		Reason:     reason,
		OccurredAt: e.clock.Now(),
	})
}

// record journals events outside the lock. Journal failures never affect
// engine state.
func (e *OfferEngine) record(ctx context.Context, events []OfferEvent) {
	if e.recorder == nil || len(events) == 0 {
		return
	}
	ctx = context.WithoutCancel(ctx)
	for _, ev := range events {
		if err := e.recorder.Record(ctx, ev); err != nil {
			e.logger.Warn("Failed to journal offer event",
				slog.String("from", ev.FromState.String()),
				slog.String("to", ev.ToState.String()),
				slog.Any("error", err),
			)
		}
	}
}

func (e *OfferEngine) markDomainErr(err error) error {
	switch {
	case errors.Is(err, offer.ErrInvalidAmount),
		errors.Is(err, offer.ErrAmountOutOfRange),
		errors.Is(err, offer.ErrInvalidOutcome):
		return errs.Mark(err, errs.ErrValidation)
	case errors.Is(err, offer.ErrSubmissionInFlight),
		errors.Is(err, offer.ErrOfferNotEditable),
		errors.Is(err, offer.ErrNoPendingPayment),
		errors.Is(err, offer.ErrInvalidTransition):
		return errs.Mark(err, errs.ErrInvalidTransition)
	default:
		return err
	}
}

func (e *OfferEngine) classifySubmitErr(err error) error {
	switch {
	case infra.IsKind(err, infra.KindCanceled), errors.Is(err, context.Canceled):
		e.logger.Info("Offer submission cancelled")
		return errs.Mark(err, errs.ErrSubmissionCancelled)

	case infra.IsKind(err, infra.KindPaymentDeclined):
		return errs.WithHint(errs.Mark(err, errs.ErrPaymentMethodDeclined), hintPaymentDeclined)

	case infra.IsKind(err, infra.KindRejected), infra.IsKind(err, infra.KindNotFound):
		hint := infra.UpstreamMessage(err)
		if hint == "" {
			hint = hintOfferRejected
		}
		return errs.WithHint(errs.Mark(err, errs.ErrServerRejected), hint)

	default:
		e.logger.Warn("Offer submission failed", slog.Any("error", err))
		return errs.WithHint(errs.Mark(err, errs.ErrTransport), hintTransport)
	}
}

func submitFailureReason(err error) string {
	switch {
	case errs.Is(err, errs.ErrSubmissionCancelled):
		return "cancelled"
	case errs.Is(err, errs.ErrPaymentMethodDeclined):
		return "payment_method_declined"
	case errs.Is(err, errs.ErrServerRejected):
		return "server_rejected"
	default:
		return "transport"
	}
}
