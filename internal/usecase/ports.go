package usecase

//go:generate mockgen -source=ports.go -destination=../../tests/mock/usecase/mock_ports.go -package=usecasemock

import (
	"context"
	"time"

	"brrow-engine/internal/domain/offer"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Listing is the backend's view of the item an offer is made against.
type Listing struct {
	ID        string
	Title     string
	Price     decimal.Decimal
	Available bool
}

type CreateOfferInput struct {
	ListingID    string
	Amount       offer.Amount
	Message      offer.Message
	DurationDays int
}

type OfferGateway interface {
	GetListing(ctx context.Context, listingID string) (*Listing, error)
	CreateOffer(ctx context.Context, in CreateOfferInput) (*offer.PaymentAuthorization, error)
}

// OfferEvent is one journaled state transition of an offer session.
type OfferEvent struct {
	SessionID  uuid.UUID
	UserID     string
	ListingID  string
	OfferID    *string
	FromState  offer.State
	ToState    offer.State
	Amount     decimal.Decimal
	Reason     *string
	OccurredAt time.Time
}

type OfferEventRecorder interface {
	Record(ctx context.Context, event OfferEvent) error
	ListBySession(ctx context.Context, sessionID uuid.UUID) ([]OfferEvent, error)
}

type UploadRequest struct {
	AssetID     string
	Name        string
	ContentType string
	Data        []byte
}

type UploadResult struct {
	URL      string
	PublicID string
}

// UploadTransport moves the bytes. progress may be called from any goroutine
// with values in [0,1].
type UploadTransport interface {
	Upload(ctx context.Context, req UploadRequest, progress func(float64)) (*UploadResult, error)
}
