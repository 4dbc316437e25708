package response

import (
	"brrow-engine/internal/domain/offer"
	"brrow-engine/internal/usecase"
)

type OfferResponse struct {
	SessionID     string  `json:"sessionId"`
	ListingID     string  `json:"listingId"`
	OriginalPrice string  `json:"originalPrice"`
	Amount        string  `json:"amount"`
	Savings       string  `json:"savings"`
	Message       string  `json:"message"`
	State         string  `json:"state"`
	OfferID       *string `json:"offerId,omitempty"`
	CanSubmit     bool    `json:"canSubmit"`
}

func FromOfferView(v usecase.OfferView) *OfferResponse {
	return &OfferResponse{
		SessionID:     v.SessionID.String(),
		ListingID:     v.ListingID,
		OriginalPrice: v.OriginalPrice.StringFixed(2),
		Amount:        v.Amount.StringFixed(2),
		Savings:       v.Savings.StringFixed(2),
		Message:       v.Message,
		State:         v.State.String(),
		OfferID:       v.OfferID,
		CanSubmit:     v.CanSubmit,
	}
}

// PaymentResponse is what the client hands to the payment sheet.
type PaymentResponse struct {
	OfferID                     string `json:"offerId"`
	ClientSecret                string `json:"clientSecret"`
	CustomerID                  string `json:"customerId"`
	CustomerSessionClientSecret string `json:"customerSessionClientSecret"`
}

type SubmitResponse struct {
	Offer   *OfferResponse   `json:"offer"`
	Payment *PaymentResponse `json:"payment,omitempty"`
	Message string           `json:"message,omitempty"`
}

func FromSubmission(auth *offer.PaymentAuthorization, v usecase.OfferView, message string) *SubmitResponse {
	res := &SubmitResponse{Offer: FromOfferView(v), Message: message}
	if auth != nil {
		res.Payment = &PaymentResponse{
			OfferID:                     auth.OfferID,
			ClientSecret:                auth.ClientSecret,
			CustomerID:                  auth.CustomerID,
			CustomerSessionClientSecret: auth.CustomerSessionClientSecret,
		}
	}
	return res
}

type PaymentResultResponse struct {
	Offer     *OfferResponse `json:"offer"`
	Cancelled bool           `json:"cancelled"`
	Message   string         `json:"message,omitempty"`
}

type OfferEventResponse struct {
	FromState  string  `json:"fromState"`
	ToState    string  `json:"toState"`
	Amount     string  `json:"amount"`
	OfferID    *string `json:"offerId,omitempty"`
	Reason     *string `json:"reason,omitempty"`
	OccurredAt int64   `json:"occurredAt"`
}

func FromOfferEvents(events []usecase.OfferEvent) []*OfferEventResponse {
	res := make([]*OfferEventResponse, len(events))
	for i, e := range events {
		res[i] = &OfferEventResponse{
			FromState:  e.FromState.String(),
			ToState:    e.ToState.String(),
			Amount:     e.Amount.StringFixed(2),
			OfferID:    e.OfferID,
			Reason:     e.Reason,
			OccurredAt: e.OccurredAt.Unix(),
		}
	}
	return res
}
