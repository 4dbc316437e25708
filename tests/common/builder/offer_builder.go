//go:build unit || e2e

package builder

import (
	"brrow-engine/internal/domain/offer"

	"github.com/shopspring/decimal"
)

type OfferBuilder struct {
	ListingID     string
	OriginalPrice decimal.Decimal
	InitialRatio  decimal.Decimal
}

func NewOfferBuilder() *OfferBuilder {
	return &OfferBuilder{
		ListingID:     "listing-42",
		OriginalPrice: decimal.NewFromInt(100),
		InitialRatio:  decimal.RequireFromString("0.8"),
	}
}

func (b *OfferBuilder) With(mutate func(*OfferBuilder)) *OfferBuilder {
	mutate(b)
	return b
}

func (b *OfferBuilder) WithPrice(price int64) *OfferBuilder {
	b.OriginalPrice = decimal.NewFromInt(price)
	return b
}

func (b *OfferBuilder) BuildDomain() (*offer.Offer, error) {
	return offer.NewOffer(b.ListingID, b.OriginalPrice, b.InitialRatio)
}

func PaymentAuthorization() offer.PaymentAuthorization {
	return offer.PaymentAuthorization{
		OfferID:                     "101",
		ClientSecret:                "pi_123_secret_456",
		CustomerID:                  "cus_789",
		CustomerSessionClientSecret: "cuss_secret_abc",
	}
}
