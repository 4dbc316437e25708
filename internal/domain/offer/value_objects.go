package offer

import (
	"errors"
	"strings"

	"github.com/shopspring/decimal"
)

var (
	ErrInvalidAmount        = errors.New("invalid offer amount")
	ErrInvalidOriginalPrice = errors.New("original price must be positive")
	ErrInvalidListing       = errors.New("listing id is required")
	ErrIncompletePayment    = errors.New("payment authorization is incomplete")
)

type Amount struct {
	value decimal.Decimal
}

func NewAmount(value decimal.Decimal) Amount {
	return Amount{value: value}
}

// ParseAmount keeps digits and the first decimal point of raw and parses the
// rest. Anything that leaves no digits is ErrInvalidAmount.
func ParseAmount(raw string) (Amount, error) {
	var b strings.Builder
	seenPoint := false
	for _, r := range raw {
		switch {
		case r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == '.' && !seenPoint:
			seenPoint = true
			b.WriteRune(r)
		}
	}

	cleaned := strings.TrimSuffix(b.String(), ".")
	if strings.HasPrefix(cleaned, ".") {
		cleaned = "0" + cleaned
	}
	if cleaned == "" {
		return Amount{}, ErrInvalidAmount
	}

	value, err := decimal.NewFromString(cleaned)
	if err != nil {
		return Amount{}, ErrInvalidAmount
	}
	return Amount{value: value}, nil
}

func (a Amount) Decimal() decimal.Decimal {
	return a.value
}

func (a Amount) IsPositive() bool {
	return a.value.IsPositive()
}

func (a Amount) Add(delta decimal.Decimal) Amount {
	return Amount{value: a.value.Add(delta)}
}

func (a Amount) Sub(other Amount) Amount {
	return Amount{value: a.value.Sub(other.value)}
}

func (a Amount) LessThan(other Amount) bool {
	return a.value.LessThan(other.value)
}

func (a Amount) LessThanOrEqual(other Amount) bool {
	return a.value.LessThanOrEqual(other.value)
}

func (a Amount) Equal(other Amount) bool {
	return a.value.Equal(other.value)
}

// WithinLimit reports 0 < a <= limit.
func (a Amount) WithinLimit(limit Amount) bool {
	return a.IsPositive() && a.LessThanOrEqual(limit)
}

func (a Amount) String() string {
	return a.value.StringFixed(2)
}

type Message struct {
	value string
}

func NewMessage(value string) Message {
	return Message{value: strings.TrimSpace(value)}
}

func (m Message) String() string {
	return m.value
}

func (m Message) IsEmpty() bool {
	return m.value == ""
}

// PaymentAuthorization is the hold the backend created for an offer. The
// client secret doubles as the opaque reference correlating the offer to the
// held payment.
type PaymentAuthorization struct {
	OfferID                     string
	ClientSecret                string
	CustomerID                  string
	CustomerSessionClientSecret string
}

func (p PaymentAuthorization) Validate() error {
	if p.OfferID == "" || p.ClientSecret == "" || p.CustomerID == "" || p.CustomerSessionClientSecret == "" {
		return ErrIncompletePayment
	}
	return nil
}
