package usecase

//go:generate mockgen -source=offer_service.go -destination=../../tests/mock/usecase/mock_offer_service.go -package=usecasemock

import (
	"context"
	"log/slog"
	"time"

	"brrow-engine/internal/domain/offer"
	"brrow-engine/internal/infra"
	"brrow-engine/internal/pkg/clock"
	"brrow-engine/internal/pkg/config"
	"brrow-engine/internal/pkg/errs"
	"brrow-engine/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type OfferSessions interface {
	Open(ctx context.Context, userID, listingID string) (OfferView, error)
	Get(ctx context.Context, userID string, id uuid.UUID) (OfferView, error)
	SetAmount(ctx context.Context, userID string, id uuid.UUID, raw string) (OfferView, error)
	Adjust(ctx context.Context, userID string, id uuid.UUID, delta decimal.Decimal) (OfferView, error)
	SetMessage(ctx context.Context, userID string, id uuid.UUID, message string) (OfferView, error)
	Submit(ctx context.Context, userID string, id uuid.UUID) (*offer.PaymentAuthorization, OfferView, error)
	ResolvePayment(ctx context.Context, userID string, id uuid.UUID, outcome offer.PaymentOutcome) (OfferView, error)
	ApplyRemoteStatus(ctx context.Context, userID string, id uuid.UUID, state offer.State) (OfferView, error)
	Events(ctx context.Context, userID string, id uuid.UUID) ([]OfferEvent, error)
	Close(ctx context.Context, userID string, id uuid.UUID) error
	ExpireIdle() int
	Shutdown()
}

type offerServiceImpl struct {
	sessions     *shared.SessionStore[uuid.UUID, *OfferEngine]
	gateway      OfferGateway
	recorder     OfferEventRecorder
	clock        clock.Clock
	cfg          config.OfferConfig
	ttl          time.Duration
	initialRatio decimal.Decimal
	logger       *slog.Logger
}

func NewOfferService(
	gateway OfferGateway,
	recorder OfferEventRecorder,
	clk clock.Clock,
	cfg config.Config,
	logger *slog.Logger,
) (OfferSessions, error) {
	ratio, err := decimal.NewFromString(cfg.Offer.InitialRatio)
	if err != nil || !ratio.IsPositive() || ratio.GreaterThan(decimal.NewFromInt(1)) {
		return nil, errs.New("OFFER_INITIAL_RATIO must be a decimal in (0, 1]")
	}

	return &offerServiceImpl{
		sessions:     shared.NewSessionStore[uuid.UUID, *OfferEngine](clk),
		gateway:      gateway,
		recorder:     recorder,
		clock:        clk,
		cfg:          cfg.Offer,
		ttl:          cfg.Session.TTL,
		initialRatio: ratio,
		logger:       logger,
	}, nil
}

// Open starts an offer session against the listing's current price as the
// backend reports it.
func (s *offerServiceImpl) Open(ctx context.Context, userID, listingID string) (OfferView, error) {
	listing, err := s.gateway.GetListing(ctx, listingID)
	if err != nil {
		switch {
		case infra.IsKind(err, infra.KindNotFound):
			return OfferView{}, errs.Mark(err, errs.ErrListingUnavailable)
		case infra.IsKind(err, infra.KindCanceled):
			return OfferView{}, errs.Mark(err, errs.ErrSubmissionCancelled)
		default:
			return OfferView{}, errs.WithHint(errs.Mark(err, errs.ErrTransport), hintTransport)
		}
	}
	if !listing.Available {
		return OfferView{}, errs.WithHint(errs.ErrListingUnavailable, "This listing is no longer accepting offers.")
	}

	draft, err := offer.NewOffer(listing.ID, listing.Price, s.initialRatio)
	if err != nil {
		return OfferView{}, errs.Mark(err, errs.ErrValidation)
	}

	id := uuid.New()
	engine := NewOfferEngine(id, userID, draft, s.gateway, s.recorder, s.clock, s.cfg, s.logger)
	s.sessions.Put(userID, id, engine)

	s.logger.Info("Offer session opened",
		slog.String("offer_session", id.String()),
		slog.String("listing_id", listing.ID),
		slog.String("price", listing.Price.StringFixed(2)),
	)
	return engine.View(), nil
}

func (s *offerServiceImpl) Get(ctx context.Context, userID string, id uuid.UUID) (OfferView, error) {
	engine, err := s.sessions.Get(userID, id)
	if err != nil {
		return OfferView{}, err
	}
	return engine.View(), nil
}

func (s *offerServiceImpl) SetAmount(ctx context.Context, userID string, id uuid.UUID, raw string) (OfferView, error) {
	engine, err := s.sessions.Get(userID, id)
	if err != nil {
		return OfferView{}, err
	}
	return engine.SetAmount(ctx, raw)
}

func (s *offerServiceImpl) Adjust(ctx context.Context, userID string, id uuid.UUID, delta decimal.Decimal) (OfferView, error) {
	engine, err := s.sessions.Get(userID, id)
	if err != nil {
		return OfferView{}, err
	}
	return engine.Adjust(ctx, delta), nil
}

func (s *offerServiceImpl) SetMessage(ctx context.Context, userID string, id uuid.UUID, message string) (OfferView, error) {
	engine, err := s.sessions.Get(userID, id)
	if err != nil {
		return OfferView{}, err
	}
	return engine.SetMessage(ctx, message)
}

func (s *offerServiceImpl) Submit(ctx context.Context, userID string, id uuid.UUID) (*offer.PaymentAuthorization, OfferView, error) {
	engine, err := s.sessions.Get(userID, id)
	if err != nil {
		return nil, OfferView{}, err
	}
	auth, err := engine.Submit(ctx)
	return auth, engine.View(), err
}

func (s *offerServiceImpl) ResolvePayment(ctx context.Context, userID string, id uuid.UUID, outcome offer.PaymentOutcome) (OfferView, error) {
	engine, err := s.sessions.Get(userID, id)
	if err != nil {
		return OfferView{}, err
	}
	return engine.ResolvePayment(ctx, outcome)
}

func (s *offerServiceImpl) ApplyRemoteStatus(ctx context.Context, userID string, id uuid.UUID, state offer.State) (OfferView, error) {
	engine, err := s.sessions.Get(userID, id)
	if err != nil {
		return OfferView{}, err
	}
	return engine.ApplyRemoteStatus(ctx, state)
}

func (s *offerServiceImpl) Events(ctx context.Context, userID string, id uuid.UUID) ([]OfferEvent, error) {
	if _, err := s.sessions.Get(userID, id); err != nil {
		return nil, err
	}
	if s.recorder == nil {
		return []OfferEvent{}, nil
	}

	events, err := s.recorder.ListBySession(ctx, id)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return events, nil
}

func (s *offerServiceImpl) Close(ctx context.Context, userID string, id uuid.UUID) error {
	engine, err := s.sessions.Delete(userID, id)
	if err != nil {
		return err
	}
	engine.Close()
	return nil
}

// ExpireIdle closes sessions left untouched for longer than the session TTL.
func (s *offerServiceImpl) ExpireIdle() int {
	expired := s.sessions.Expire(s.ttl, nil)
	for _, engine := range expired {
		engine.Close()
	}
	return len(expired)
}

func (s *offerServiceImpl) Shutdown() {
	for _, engine := range s.sessions.Drain() {
		engine.Close()
	}
}
