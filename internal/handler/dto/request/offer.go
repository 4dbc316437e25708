package request

import (
	"brrow-engine/internal/domain/offer"

	"github.com/shopspring/decimal"
)

type OpenOfferRequest struct {
	ListingID string `json:"listingId" binding:"required"`
}

// SetAmountRequest carries the amount exactly as typed; parsing belongs to
// the engine.
type SetAmountRequest struct {
	Raw string `json:"raw"`
}

type AdjustAmountRequest struct {
	Delta *decimal.Decimal `json:"delta" binding:"required"`
}

type SetMessageRequest struct {
	Message string `json:"message"`
}

type ResolvePaymentRequest struct {
	Outcome string `json:"outcome" binding:"required,oneof=completed cancelled failed"`
	Reason  string `json:"reason" binding:"max=500"`
}

func (r *ResolvePaymentRequest) ToDomain() offer.PaymentOutcome {
	return offer.PaymentOutcome{Kind: offer.OutcomeKind(r.Outcome), Reason: r.Reason}
}

type ApplyStatusRequest struct {
	State string `json:"state" binding:"required,oneof=accepted declined expired"`
}

func (r *ApplyStatusRequest) ToDomain() offer.State {
	return offer.State(r.State)
}
