//go:build unit

package usecase_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"brrow-engine/internal/domain/offer"
	"brrow-engine/internal/infra"
	"brrow-engine/internal/pkg/clock"
	"brrow-engine/internal/pkg/config"
	"brrow-engine/internal/pkg/errs"
	"brrow-engine/internal/usecase"
	"brrow-engine/tests/common/builder"
	"brrow-engine/tests/common/testutil"
	usecasemock "brrow-engine/tests/mock/usecase"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type offerFixture struct {
	engine   *usecase.OfferEngine
	gateway  *usecasemock.MockOfferGateway
	recorder *usecasemock.MockOfferEventRecorder
	clock    *clock.MockClock
}

func newOfferFixture(t *testing.T, withRecorder bool) *offerFixture {
	t.Helper()
	ctrl := gomock.NewController(t)

	draft, err := builder.NewOfferBuilder().BuildDomain()
	require.NoError(t, err)

	f := &offerFixture{
		gateway: usecasemock.NewMockOfferGateway(ctrl),
		clock:   clock.NewMockClock(time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)),
	}
	var recorder usecase.OfferEventRecorder
	if withRecorder {
		f.recorder = usecasemock.NewMockOfferEventRecorder(ctrl)
		recorder = f.recorder
	}

	cfg := config.NewTestConfig().Offer
	f.engine = usecase.NewOfferEngine(uuid.New(), "user-1", draft, f.gateway, recorder, f.clock, cfg, testutil.DiscardLogger())
	return f
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func submitted(t *testing.T, f *offerFixture) *offer.PaymentAuthorization {
	t.Helper()
	auth := builder.PaymentAuthorization()
	f.gateway.EXPECT().CreateOffer(gomock.Any(), gomock.Any()).Return(&auth, nil)

	got, err := f.engine.Submit(context.Background())
	require.NoError(t, err)
	require.Equal(t, offer.StateAwaitingPayment, f.engine.View().State)
	return got
}

func TestOfferEngineEditing(t *testing.T) {
	ctx := context.Background()

	t.Run("set then adjust with out-of-range rejected", func(t *testing.T) {
		f := newOfferFixture(t, false)

		view, err := f.engine.SetAmount(ctx, "80")
		require.NoError(t, err)
		assert.True(t, view.Amount.Equal(dec("80")))

		assert.True(t, f.engine.Adjust(ctx, dec("-25")).Amount.Equal(dec("55")))
		assert.True(t, f.engine.Adjust(ctx, dec("-60")).Amount.Equal(dec("55")))
	})

	t.Run("unparseable amount is a soft failure", func(t *testing.T) {
		f := newOfferFixture(t, false)

		view, err := f.engine.SetAmount(ctx, "abc")
		assert.True(t, errs.Is(err, errs.ErrValidation))
		assert.True(t, view.Amount.IsZero())
		assert.False(t, view.CanSubmit)
		assert.False(t, f.engine.CanSubmit(ctx))
	})

	t.Run("view reports savings and message", func(t *testing.T) {
		f := newOfferFixture(t, false)

		view, err := f.engine.SetMessage(ctx, "  Can pick up today  ")
		require.NoError(t, err)
		assert.Equal(t, "Can pick up today", view.Message)
		assert.True(t, view.Savings.Equal(dec("20")))
		assert.True(t, view.OriginalPrice.Equal(dec("100")))
		assert.Nil(t, view.OfferID)
	})
}

func TestOfferEngineSubmit(t *testing.T) {
	ctx := context.Background()

	t.Run("success hands back the payment authorization", func(t *testing.T) {
		f := newOfferFixture(t, false)
		want := builder.PaymentAuthorization()

		f.gateway.EXPECT().
			CreateOffer(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, in usecase.CreateOfferInput) (*offer.PaymentAuthorization, error) {
				assert.Equal(t, "listing-42", in.ListingID)
				assert.Equal(t, "80.00", in.Amount.String())
				assert.Equal(t, 1, in.DurationDays)
				assert.True(t, in.Message.IsEmpty())
				return &want, nil
			})

		auth, err := f.engine.Submit(ctx)
		require.NoError(t, err)
		assert.Equal(t, want, *auth)

		view := f.engine.View()
		assert.Equal(t, offer.StateAwaitingPayment, view.State)
		require.NotNil(t, view.OfferID)
		assert.Equal(t, "101", *view.OfferID)
		assert.False(t, view.CanSubmit)
	})

	t.Run("validation failure never reaches the backend", func(t *testing.T) {
		f := newOfferFixture(t, false)
		_, err := f.engine.SetAmount(ctx, "250")
		require.NoError(t, err)

		_, err = f.engine.Submit(ctx)
		assert.True(t, errs.Is(err, errs.ErrValidation))
		assert.Equal(t, offer.StateDraft, f.engine.View().State)
	})

	t.Run("concurrent submits send one request", func(t *testing.T) {
		f := newOfferFixture(t, false)
		want := builder.PaymentAuthorization()
		release := make(chan struct{})

		f.gateway.EXPECT().
			CreateOffer(gomock.Any(), gomock.Any()).
			DoAndReturn(func(context.Context, usecase.CreateOfferInput) (*offer.PaymentAuthorization, error) {
				<-release
				return &want, nil
			}).
			Times(1)

		const callers = 5
		results := make([]*offer.PaymentAuthorization, callers)
		failures := make([]error, callers)
		var wg sync.WaitGroup

		wg.Add(1)
		go func() {
			defer wg.Done()
			results[0], failures[0] = f.engine.Submit(ctx)
		}()
		require.Eventually(t, func() bool {
			return f.engine.View().State == offer.StateSubmitting
		}, time.Second, time.Millisecond)

		for i := 1; i < callers; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				results[i], failures[i] = f.engine.Submit(ctx)
			}()
		}
		assert.False(t, f.engine.CanSubmit(ctx))

		close(release)
		wg.Wait()

		for i := range callers {
			require.NoError(t, failures[i])
			assert.Equal(t, want, *results[i])
		}

		again, err := f.engine.Submit(ctx)
		require.NoError(t, err)
		assert.Equal(t, want, *again)
	})

	t.Run("payment method declined resets to draft", func(t *testing.T) {
		f := newOfferFixture(t, false)
		declined := infra.ResponseErr(testutil.DiscardLogger(), infra.KindPaymentDeclined, 402, "card declined")
		f.gateway.EXPECT().CreateOffer(gomock.Any(), gomock.Any()).Return(nil, declined)

		_, err := f.engine.Submit(ctx)
		require.Error(t, err)
		assert.True(t, errs.Is(err, errs.ErrPaymentMethodDeclined))
		assert.False(t, errs.Is(err, errs.ErrTransport))
		assert.NotEmpty(t, errs.Hint(err))

		view := f.engine.View()
		assert.Equal(t, offer.StateDraft, view.State)
		assert.True(t, view.Amount.Equal(dec("80")))
		assert.True(t, f.engine.CanSubmit(ctx))
	})

	t.Run("server rejection carries the backend message", func(t *testing.T) {
		f := newOfferFixture(t, false)
		rejected := infra.ResponseErr(testutil.DiscardLogger(), infra.KindRejected, 400, "You already have a pending offer on this listing")
		f.gateway.EXPECT().CreateOffer(gomock.Any(), gomock.Any()).Return(nil, rejected)

		_, err := f.engine.Submit(ctx)
		assert.True(t, errs.Is(err, errs.ErrServerRejected))
		assert.Equal(t, "You already have a pending offer on this listing", errs.Hint(err))
		assert.Equal(t, offer.StateDraft, f.engine.View().State)
	})

	t.Run("transport failure is retryable", func(t *testing.T) {
		f := newOfferFixture(t, false)
		netErr := infra.WrapErr(testutil.DiscardLogger(), infra.KindTransport, "dial backend", errs.New("connection refused"))
		f.gateway.EXPECT().CreateOffer(gomock.Any(), gomock.Any()).Return(nil, netErr)

		_, err := f.engine.Submit(ctx)
		assert.True(t, errs.Is(err, errs.ErrTransport))
		assert.True(t, f.engine.CanSubmit(ctx))

		auth := builder.PaymentAuthorization()
		f.gateway.EXPECT().CreateOffer(gomock.Any(), gomock.Any()).Return(&auth, nil)
		_, err = f.engine.Submit(ctx)
		require.NoError(t, err)
	})

	t.Run("incomplete authorization is a transport error", func(t *testing.T) {
		f := newOfferFixture(t, false)
		partial := builder.PaymentAuthorization()
		partial.ClientSecret = ""
		f.gateway.EXPECT().CreateOffer(gomock.Any(), gomock.Any()).Return(&partial, nil)

		_, err := f.engine.Submit(ctx)
		assert.True(t, errs.Is(err, errs.ErrTransport))
		assert.Equal(t, offer.StateDraft, f.engine.View().State)
	})

	t.Run("cancelled request resets silently", func(t *testing.T) {
		f := newOfferFixture(t, false)
		cancelled := infra.WrapErr(testutil.DiscardLogger(), infra.KindCanceled, "request aborted", context.Canceled)
		f.gateway.EXPECT().CreateOffer(gomock.Any(), gomock.Any()).Return(nil, cancelled)

		_, err := f.engine.Submit(ctx)
		assert.True(t, errs.Is(err, errs.ErrSubmissionCancelled))
		assert.False(t, errs.Is(err, errs.ErrTransport))
		assert.Equal(t, offer.StateDraft, f.engine.View().State)
	})

	t.Run("close cancels the in-flight request", func(t *testing.T) {
		f := newOfferFixture(t, false)
		f.gateway.EXPECT().
			CreateOffer(gomock.Any(), gomock.Any()).
			DoAndReturn(func(ctx context.Context, _ usecase.CreateOfferInput) (*offer.PaymentAuthorization, error) {
				<-ctx.Done()
				return nil, infra.WrapErr(testutil.DiscardLogger(), infra.KindCanceled, "request aborted", ctx.Err())
			})

		done := make(chan error, 1)
		go func() {
			_, err := f.engine.Submit(ctx)
			done <- err
		}()
		require.Eventually(t, func() bool {
			return f.engine.View().State == offer.StateSubmitting
		}, time.Second, time.Millisecond)

		f.engine.Close()

		select {
		case err := <-done:
			assert.True(t, errs.Is(err, errs.ErrSubmissionCancelled))
		case <-time.After(time.Second):
			t.Fatal("submit did not return after close")
		}
		assert.Equal(t, offer.StateDraft, f.engine.View().State)

		_, err := f.engine.Submit(ctx)
		assert.True(t, errs.Is(err, errs.ErrSessionNotFound))
	})

	t.Run("caller going away cancels the submission", func(t *testing.T) {
		f := newOfferFixture(t, false)
		f.gateway.EXPECT().
			CreateOffer(gomock.Any(), gomock.Any()).
			DoAndReturn(func(ctx context.Context, _ usecase.CreateOfferInput) (*offer.PaymentAuthorization, error) {
				<-ctx.Done()
				return nil, infra.WrapErr(testutil.DiscardLogger(), infra.KindCanceled, "request aborted", ctx.Err())
			})

		callerCtx, cancel := context.WithCancel(ctx)
		go func() {
			assert.Eventually(t, func() bool {
				return f.engine.View().State == offer.StateSubmitting
			}, time.Second, time.Millisecond)
			cancel()
		}()

		_, err := f.engine.Submit(callerCtx)
		assert.True(t, errs.Is(err, errs.ErrSubmissionCancelled))
		assert.Eventually(t, func() bool {
			return f.engine.View().State == offer.StateDraft
		}, time.Second, time.Millisecond)
	})
}

func TestOfferEngineResolvePayment(t *testing.T) {
	ctx := context.Background()

	t.Run("completed sends the offer", func(t *testing.T) {
		f := newOfferFixture(t, false)
		submitted(t, f)

		view, err := f.engine.ResolvePayment(ctx, offer.Completed())
		require.NoError(t, err)
		assert.Equal(t, offer.StateSent, view.State)
		assert.NotNil(t, view.OfferID)

		view, err = f.engine.ApplyRemoteStatus(ctx, offer.StateAccepted)
		require.NoError(t, err)
		assert.Equal(t, offer.StateAccepted, view.State)
	})

	t.Run("cancelled sheet returns to draft", func(t *testing.T) {
		f := newOfferFixture(t, false)
		submitted(t, f)

		view, err := f.engine.ResolvePayment(ctx, offer.Cancelled())
		assert.True(t, errs.Is(err, errs.ErrPaymentCancelled))
		assert.Equal(t, "Payment cancelled. Your offer was not sent.", errs.Hint(err))
		assert.Equal(t, offer.StateDraft, view.State)
		assert.Nil(t, view.OfferID)
		assert.True(t, view.CanSubmit)
	})

	t.Run("failed sheet reports the reason", func(t *testing.T) {
		f := newOfferFixture(t, false)
		submitted(t, f)

		view, err := f.engine.ResolvePayment(ctx, offer.Failed("Your card has insufficient funds."))
		assert.True(t, errs.Is(err, errs.ErrPaymentFailed))
		assert.Equal(t, "Your card has insufficient funds.", errs.Hint(err))
		assert.Equal(t, offer.StateFailed, view.State)
		assert.True(t, view.CanSubmit)
	})

	t.Run("no pending payment", func(t *testing.T) {
		f := newOfferFixture(t, false)

		_, err := f.engine.ResolvePayment(ctx, offer.Completed())
		assert.True(t, errs.Is(err, errs.ErrInvalidTransition))

		_, err = f.engine.ResolvePayment(ctx, offer.PaymentOutcome{Kind: "maybe"})
		assert.True(t, errs.Is(err, errs.ErrValidation))
	})

	t.Run("abandoned payment sheet times out", func(t *testing.T) {
		f := newOfferFixture(t, false)
		submitted(t, f)

		f.clock.Add(14 * time.Minute)
		assert.False(t, f.engine.CanSubmit(ctx))

		f.clock.Add(2 * time.Minute)
		assert.True(t, f.engine.CanSubmit(ctx))
		assert.Equal(t, offer.StateDraft, f.engine.View().State)

		_, err := f.engine.ResolvePayment(ctx, offer.Completed())
		assert.True(t, errs.Is(err, errs.ErrInvalidTransition))
	})
}

func TestOfferEngineJournal(t *testing.T) {
	ctx := context.Background()

	t.Run("records every transition", func(t *testing.T) {
		f := newOfferFixture(t, true)
		var mu sync.Mutex
		var events []usecase.OfferEvent
		f.recorder.EXPECT().
			Record(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, ev usecase.OfferEvent) error {
				mu.Lock()
				defer mu.Unlock()
				events = append(events, ev)
				return nil
			}).
			Times(3)

		submitted(t, f)
		_, err := f.engine.ResolvePayment(ctx, offer.Completed())
		require.NoError(t, err)

		mu.Lock()
		defer mu.Unlock()
		require.Len(t, events, 3)
		assert.ElementsMatch(t,
			[]offer.State{offer.StateSubmitting, offer.StateAwaitingPayment},
			[]offer.State{events[0].ToState, events[1].ToState})
		assert.Equal(t, offer.StateAwaitingPayment, events[2].FromState)
		assert.Equal(t, offer.StateSent, events[2].ToState)
		assert.Equal(t, "user-1", events[2].UserID)
		require.NotNil(t, events[2].OfferID)
		assert.Equal(t, "101", *events[2].OfferID)
		assert.True(t, events[2].Amount.Equal(dec("80")))
	})

	t.Run("journal failures do not change state", func(t *testing.T) {
		f := newOfferFixture(t, true)
		f.recorder.EXPECT().Record(gomock.Any(), gomock.Any()).Return(errs.New("db down")).AnyTimes()

		submitted(t, f)
		view, err := f.engine.ResolvePayment(ctx, offer.Completed())
		require.NoError(t, err)
		assert.Equal(t, offer.StateSent, view.State)
	})

	t.Run("timeout is journaled with a reason", func(t *testing.T) {
		f := newOfferFixture(t, true)
		var last usecase.OfferEvent
		f.recorder.EXPECT().
			Record(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, ev usecase.OfferEvent) error {
				last = ev
				return nil
			}).
			Times(3)

		submitted(t, f)
		f.clock.Add(time.Hour)
		_ = f.engine.Adjust(ctx, dec("-5"))

		assert.Equal(t, offer.StateAwaitingPayment, last.FromState)
		assert.Equal(t, offer.StateDraft, last.ToState)
		require.NotNil(t, last.Reason)
		assert.Equal(t, "payment_timeout", *last.Reason)
	})
}
