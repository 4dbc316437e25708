package offer

import (
	"errors"
	"strings"

	"github.com/shopspring/decimal"
)

var (
	ErrOfferNotEditable   = errors.New("offer is not editable in its current state")
	ErrSubmissionInFlight = errors.New("offer submission already in flight")
	ErrAmountOutOfRange   = errors.New("offer amount must be above zero and at most the listing price")
	ErrInvalidTransition  = errors.New("invalid offer state transition")
	ErrNoPendingPayment   = errors.New("offer is not awaiting payment")
	ErrInvalidOutcome     = errors.New("invalid payment outcome")
)

type Offer struct {
	listingID     string
	originalPrice Amount
	amount        Amount
	message       Message
	state         State
	authorization *PaymentAuthorization
}

// NewOffer opens a draft against a listing. The starting amount is
// originalPrice*initialRatio rounded to cents.
func NewOffer(listingID string, originalPrice, initialRatio decimal.Decimal) (*Offer, error) {
	listingID = strings.TrimSpace(listingID)
	if listingID == "" {
		return nil, ErrInvalidListing
	}
	if !originalPrice.IsPositive() {
		return nil, ErrInvalidOriginalPrice
	}

	price := NewAmount(originalPrice)
	initial := NewAmount(originalPrice.Mul(initialRatio).Round(2))
	if !initial.WithinLimit(price) {
		initial = price
	}

	return &Offer{
		listingID:     listingID,
		originalPrice: price,
		amount:        initial,
		state:         StateDraft,
	}, nil
}

// SetAmount replaces the amount from free text. Unparseable text leaves the
// amount at zero and reports ErrInvalidAmount. Range is not checked here;
// CanSubmit does that.
func (o *Offer) SetAmount(raw string) (Amount, error) {
	if !o.state.IsEditable() {
		return o.amount, ErrOfferNotEditable
	}
	o.reopen()

	parsed, err := ParseAmount(raw)
	if err != nil {
		o.amount = NewAmount(decimal.Zero)
		return o.amount, err
	}
	o.amount = parsed
	return o.amount, nil
}

// Adjust applies delta only when the result stays within (0, originalPrice].
// Out-of-range adjustments leave the amount untouched.
func (o *Offer) Adjust(delta decimal.Decimal) Amount {
	if !o.state.IsEditable() {
		return o.amount
	}

	next := o.amount.Add(delta)
	if next.WithinLimit(o.originalPrice) {
		o.reopen()
		o.amount = next
	}
	return o.amount
}

func (o *Offer) SetMessage(text string) error {
	if !o.state.IsEditable() {
		return ErrOfferNotEditable
	}
	o.reopen()
	o.message = NewMessage(text)
	return nil
}

func (o *Offer) CanSubmit() bool {
	return o.state.IsEditable() && o.amount.WithinLimit(o.originalPrice)
}

func (o *Offer) BeginSubmission() error {
	switch {
	case o.state.IsInFlight():
		return ErrSubmissionInFlight
	case !o.state.IsEditable():
		return ErrOfferNotEditable
	case !o.amount.WithinLimit(o.originalPrice):
		return ErrAmountOutOfRange
	}

	o.state = StateSubmitting
	o.authorization = nil
	return nil
}

func (o *Offer) RequirePayment(auth PaymentAuthorization) error {
	if o.state != StateSubmitting {
		return ErrInvalidTransition
	}
	if err := auth.Validate(); err != nil {
		return err
	}

	o.authorization = &auth
	o.state = StateAwaitingPayment
	return nil
}

// AbortSubmission returns a submitting offer to draft so the user can retry.
func (o *Offer) AbortSubmission() error {
	if o.state != StateSubmitting {
		return ErrInvalidTransition
	}
	o.state = StateDraft
	o.authorization = nil
	return nil
}

func (o *Offer) ResolvePayment(outcome PaymentOutcome) error {
	if o.state != StateAwaitingPayment {
		return ErrNoPendingPayment
	}

	switch outcome.Kind {
	case OutcomeCompleted:
		o.state = StateSent
	case OutcomeCancelled:
		o.state = StateDraft
		o.authorization = nil
	case OutcomeFailed:
		o.state = StateFailed
		o.authorization = nil
	default:
		return ErrInvalidOutcome
	}
	return nil
}

// ApplyRemoteStatus records the seller's or backend's verdict on a sent offer.
func (o *Offer) ApplyRemoteStatus(next State) error {
	if o.state != StateSent || !next.IsTerminal() {
		return ErrInvalidTransition
	}
	o.state = next
	return nil
}

// Savings is what the buyer saves against the listing price, zero unless the
// amount sits strictly between zero and the price.
func (o *Offer) Savings() Amount {
	if o.amount.IsPositive() && o.amount.LessThan(o.originalPrice) {
		return o.originalPrice.Sub(o.amount)
	}
	return NewAmount(decimal.Zero)
}

func (o *Offer) OfferID() (string, bool) {
	if o.authorization == nil {
		return "", false
	}
	return o.authorization.OfferID, true
}

func (o *Offer) Authorization() *PaymentAuthorization {
	if o.authorization == nil {
		return nil
	}
	auth := *o.authorization
	return &auth
}

func (o *Offer) reopen() {
	if o.state == StateFailed {
		o.state = StateDraft
	}
}

func (o *Offer) ListingID() string     { return o.listingID }
func (o *Offer) OriginalPrice() Amount { return o.originalPrice }
func (o *Offer) Amount() Amount        { return o.amount }
func (o *Offer) Message() Message      { return o.message }
func (o *Offer) State() State          { return o.state }
