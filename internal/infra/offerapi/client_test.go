//go:build unit

package offerapi_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"brrow-engine/internal/domain/offer"
	"brrow-engine/internal/infra"
	"brrow-engine/internal/infra/offerapi"
	"brrow-engine/internal/pkg/authctx"
	"brrow-engine/internal/pkg/config"
	"brrow-engine/internal/usecase"
	"brrow-engine/tests/common/testutil"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newClient(t *testing.T, handler http.HandlerFunc) *offerapi.Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	cfg := config.NewTestConfig()
	cfg.Backend.BaseURL = srv.URL + "/"
	return offerapi.NewClient(cfg, testutil.DiscardLogger())
}

func offerInput(t *testing.T, amount, message string) usecase.CreateOfferInput {
	t.Helper()
	a, err := offer.ParseAmount(amount)
	require.NoError(t, err)
	return usecase.CreateOfferInput{
		ListingID:    "listing-42",
		Amount:       a,
		Message:      offer.NewMessage(message),
		DurationDays: 1,
	}
}

func TestCreateOffer(t *testing.T) {
	ctx := authctx.WithToken(context.Background(), "token-abc")

	t.Run("created", func(t *testing.T) {
		client := newClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "/api/offers", r.URL.Path)
			assert.Equal(t, "Bearer token-abc", r.Header.Get("Authorization"))

			raw, _ := io.ReadAll(r.Body)
			assert.JSONEq(t, `{"listingId":"listing-42","amount":80.00,"message":"Can pick up today","duration":1}`, string(raw))

			w.WriteHeader(http.StatusCreated)
			_, _ = io.WriteString(w, `{"success":true,"data":{"id":101,"clientSecret":"pi_123_secret_456","customerId":"cus_789","customerSessionClientSecret":"cuss_secret_abc"}}`)
		})

		auth, err := client.CreateOffer(ctx, offerInput(t, "80", "Can pick up today"))
		require.NoError(t, err)
		assert.Equal(t, offer.PaymentAuthorization{
			OfferID:                     "101",
			ClientSecret:                "pi_123_secret_456",
			CustomerID:                  "cus_789",
			CustomerSessionClientSecret: "cuss_secret_abc",
		}, *auth)
	})

	t.Run("empty message is sent as null", func(t *testing.T) {
		client := newClient(t, func(w http.ResponseWriter, r *http.Request) {
			var body map[string]any
			assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			assert.Contains(t, body, "message")
			assert.Nil(t, body["message"])

			w.WriteHeader(http.StatusCreated)
			_, _ = io.WriteString(w, `{"data":{"id":"off_7","clientSecret":"s","customerId":"c","customerSessionClientSecret":"cs"}}`)
		})

		auth, err := client.CreateOffer(ctx, offerInput(t, "80", "   "))
		require.NoError(t, err)
		assert.Equal(t, "off_7", auth.OfferID)
	})

	tests := []struct {
		name        string
		status      int
		body        string
		wantKind    infra.ErrorKind
		wantMessage string
	}{
		{"payment declined", http.StatusPaymentRequired, `{"error":"card_declined"}`, infra.KindPaymentDeclined, "card_declined"},
		{"duplicate offer", http.StatusBadRequest, `{"error":"You already have a pending offer"}`, infra.KindRejected, "You already have a pending offer"},
		{"listing gone", http.StatusNotFound, `{"message":"Listing not found"}`, infra.KindNotFound, "Listing not found"},
		{"server error with text", http.StatusInternalServerError, `{"error":"Stripe unavailable"}`, infra.KindRejected, "Stripe unavailable"},
		{"bare server error", http.StatusBadGateway, `<html>bad gateway</html>`, infra.KindTransport, ""},
		{"200 is not 201", http.StatusOK, `{"success":true}`, infra.KindRejected, ""},
		{"created but incomplete", http.StatusCreated, `{"data":{"id":5,"clientSecret":""}}`, infra.KindMalformedResponse, ""},
		{"created without id", http.StatusCreated, `{"data":{"clientSecret":"s","customerId":"c","customerSessionClientSecret":"cs"}}`, infra.KindMalformedResponse, ""},
		{"created but not json", http.StatusCreated, `ok`, infra.KindMalformedResponse, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newClient(t, func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = io.WriteString(w, tt.body)
			})

			_, err := client.CreateOffer(ctx, offerInput(t, "80", ""))
			require.Error(t, err)
			assert.True(t, infra.IsKind(err, tt.wantKind), "got %v", err)
			assert.Equal(t, tt.wantMessage, infra.UpstreamMessage(err))
		})
	}

	t.Run("cancelled request", func(t *testing.T) {
		release := make(chan struct{})
		client := newClient(t, func(w http.ResponseWriter, r *http.Request) {
			select {
			case <-release:
			case <-r.Context().Done():
			}
		})
		defer close(release)

		cctx, cancel := context.WithCancel(ctx)
		cancel()

		_, err := client.CreateOffer(cctx, offerInput(t, "80", ""))
		assert.True(t, infra.IsKind(err, infra.KindCanceled), "got %v", err)
	})

	t.Run("unreachable backend", func(t *testing.T) {
		cfg := config.NewTestConfig()
		cfg.Backend.BaseURL = "http://127.0.0.1:1"
		client := offerapi.NewClient(cfg, testutil.DiscardLogger())

		_, err := client.CreateOffer(ctx, offerInput(t, "80", ""))
		assert.True(t, infra.IsKind(err, infra.KindTransport), "got %v", err)
	})
}

func TestGetListing(t *testing.T) {
	ctx := context.Background()

	t.Run("available listing", func(t *testing.T) {
		client := newClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/api/listings/listing-42", r.URL.Path)
			assert.Empty(t, r.Header.Get("Authorization"))
			_, _ = io.WriteString(w, `{"success":true,"data":{"id":"listing-42","title":"Camping tent","price":100.5,"isActive":true,"availabilityStatus":"AVAILABLE"}}`)
		})

		listing, err := client.GetListing(ctx, "listing-42")
		require.NoError(t, err)
		assert.Equal(t, "Camping tent", listing.Title)
		assert.True(t, listing.Price.Equal(decimal.RequireFromString("100.5")))
		assert.True(t, listing.Available)
	})

	t.Run("rented listing", func(t *testing.T) {
		client := newClient(t, func(w http.ResponseWriter, _ *http.Request) {
			_, _ = io.WriteString(w, `{"success":true,"data":{"id":"listing-42","price":10,"availabilityStatus":"RENTED"}}`)
		})

		listing, err := client.GetListing(ctx, "listing-42")
		require.NoError(t, err)
		assert.False(t, listing.Available)
	})

	t.Run("not found", func(t *testing.T) {
		client := newClient(t, func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusNotFound)
			_, _ = io.WriteString(w, `{"success":false,"message":"Listing not found"}`)
		})

		_, err := client.GetListing(ctx, "listing-0")
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})

	t.Run("unsuccessful envelope", func(t *testing.T) {
		client := newClient(t, func(w http.ResponseWriter, _ *http.Request) {
			_, _ = io.WriteString(w, `{"success":false,"message":"Listing removed"}`)
		})

		_, err := client.GetListing(ctx, "listing-42")
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
		assert.Equal(t, "Listing removed", infra.UpstreamMessage(err))
	})
}
