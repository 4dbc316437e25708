package offerapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"brrow-engine/internal/domain/offer"
	"brrow-engine/internal/infra"
	"brrow-engine/internal/pkg/authctx"
	"brrow-engine/internal/pkg/config"
	"brrow-engine/internal/usecase"

	"github.com/shopspring/decimal"
)

const maxErrorBody = 64 << 10

// Client talks to the Brrow backend's listing and offer endpoints on behalf
// of the caller whose token is in the request context.
type Client struct {
	http    *http.Client
	baseURL string
	logger  *slog.Logger
}

func NewClient(cfg config.Config, logger *slog.Logger) *Client {
	return &Client{
		http:    &http.Client{Timeout: cfg.Backend.RequestTimeout},
		baseURL: strings.TrimRight(cfg.Backend.BaseURL, "/"),
		logger:  logger,
	}
}

type listingEnvelope struct {
	Success bool         `json:"success"`
	Data    *listingData `json:"data"`
	Message string       `json:"message"`
}

type listingData struct {
	ID                 string      `json:"id"`
	Title              string      `json:"title"`
	Price              json.Number `json:"price"`
	IsActive           *bool       `json:"isActive"`
	AvailabilityStatus string      `json:"availabilityStatus"`
}

func (c *Client) GetListing(ctx context.Context, listingID string) (*usecase.Listing, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/listings/"+listingID, nil)
	if err != nil {
		return nil, infra.WrapErr(c.logger, infra.KindTransport, "failed to build listing request", err)
	}

	resp, err := c.do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, c.responseErr(resp)
	}

	var env listingEnvelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return nil, infra.WrapErr(c.logger, infra.KindMalformedResponse, "failed to decode listing", err)
	}
	if !env.Success || env.Data == nil {
		return nil, infra.ResponseErr(c.logger, infra.KindNotFound, resp.StatusCode, env.Message)
	}

	price, err := decimal.NewFromString(env.Data.Price.String())
	if err != nil {
		return nil, infra.WrapErr(c.logger, infra.KindMalformedResponse, "listing price is not a number", err)
	}

	return &usecase.Listing{
		ID:        env.Data.ID,
		Title:     env.Data.Title,
		Price:     price,
		Available: listingAvailable(env.Data),
	}, nil
}

func listingAvailable(d *listingData) bool {
	if d.IsActive != nil && !*d.IsActive {
		return false
	}
	switch strings.ToUpper(d.AvailabilityStatus) {
	case "", "AVAILABLE":
		return true
	default:
		return false
	}
}

type createOfferRequest struct {
	ListingID string      `json:"listingId"`
	Amount    json.Number `json:"amount"`
	Message   *string     `json:"message"`
	Duration  int         `json:"duration"`
}

type createOfferEnvelope struct {
	Data *struct {
		ID                          json.RawMessage `json:"id"`
		ClientSecret                string          `json:"clientSecret"`
		CustomerID                  string          `json:"customerId"`
		CustomerSessionClientSecret string          `json:"customerSessionClientSecret"`
	} `json:"data"`
}

// CreateOffer posts the offer and returns the payment hold the backend
// created for it. Only 201 counts as success.
func (c *Client) CreateOffer(ctx context.Context, in usecase.CreateOfferInput) (*offer.PaymentAuthorization, error) {
	body := createOfferRequest{
		ListingID: in.ListingID,
		Amount:    json.Number(in.Amount.String()),
		Duration:  in.DurationDays,
	}
	if !in.Message.IsEmpty() {
		msg := in.Message.String()
		body.Message = &msg
	}

	payload, err := json.Marshal(body)
	if err != nil {
		return nil, infra.WrapErr(c.logger, infra.KindTransport, "failed to encode offer", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/offers", bytes.NewReader(payload))
	if err != nil {
		return nil, infra.WrapErr(c.logger, infra.KindTransport, "failed to build offer request", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated {
		return nil, c.responseErr(resp)
	}

	var env createOfferEnvelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return nil, infra.WrapErr(c.logger, infra.KindMalformedResponse, "failed to decode offer", err)
	}
	if env.Data == nil {
		return nil, infra.WrapErr(c.logger, infra.KindMalformedResponse, "offer response has no data", nil)
	}

	offerID, err := decodeID(env.Data.ID)
	if err != nil {
		return nil, infra.WrapErr(c.logger, infra.KindMalformedResponse, "offer id is neither number nor string", err)
	}

	auth := &offer.PaymentAuthorization{
		OfferID:                     offerID,
		ClientSecret:                env.Data.ClientSecret,
		CustomerID:                  env.Data.CustomerID,
		CustomerSessionClientSecret: env.Data.CustomerSessionClientSecret,
	}
	if err := auth.Validate(); err != nil {
		return nil, infra.WrapErr(c.logger, infra.KindMalformedResponse, "offer response is incomplete", err)
	}
	return auth, nil
}

func (c *Client) do(req *http.Request) (*http.Response, error) {
	req.Header.Set("Accept", "application/json")
	if token := authctx.Token(req.Context()); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			return nil, infra.WrapErr(c.logger, infra.KindCanceled, "backend request cancelled", err)
		}
		return nil, infra.WrapErr(c.logger, infra.KindTransport, "backend request failed", err)
	}
	return resp, nil
}

type errorBody struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// responseErr turns a non-success response into an infra.Error carrying the
// backend's own error text.
func (c *Client) responseErr(resp *http.Response) error {
	var body errorBody
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	_ = json.Unmarshal(raw, &body)

	message := body.Error
	if message == "" {
		message = body.Message
	}

	switch {
	case resp.StatusCode == http.StatusPaymentRequired:
		return infra.ResponseErr(c.logger, infra.KindPaymentDeclined, resp.StatusCode, message)
	case resp.StatusCode == http.StatusNotFound:
		return infra.ResponseErr(c.logger, infra.KindNotFound, resp.StatusCode, message)
	case resp.StatusCode >= http.StatusInternalServerError && message == "":
		return infra.ResponseErr(c.logger, infra.KindTransport, resp.StatusCode, "")
	default:
		return infra.ResponseErr(c.logger, infra.KindRejected, resp.StatusCode, message)
	}
}

func decodeID(raw json.RawMessage) (string, error) {
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s, nil
	}
	var n json.Number
	if err := json.Unmarshal(raw, &n); err != nil {
		return "", err
	}
	return n.String(), nil
}
