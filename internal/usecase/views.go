package usecase

import (
	"time"

	"brrow-engine/internal/domain/countdown"
	"brrow-engine/internal/domain/offer"
	"brrow-engine/internal/domain/upload"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Views are immutable snapshots handed to the handler layer.

type OfferView struct {
	SessionID     uuid.UUID
	ListingID     string
	OriginalPrice decimal.Decimal
	Amount        decimal.Decimal
	Savings       decimal.Decimal
	Message       string
	State         offer.State
	OfferID       *string
	CanSubmit     bool
}

type TrackerView struct {
	AssetID  string
	Name     string
	Status   upload.Status
	Progress float64
	Reason   string
	Location string
}

type BatchView struct {
	BatchID         uuid.UUID
	Trackers        []TrackerView
	OverallProgress float64
	Summary         upload.Summary
	Settled         bool
	CreatedAt       time.Time
	Retained        []TrackerView
}

type CountdownView struct {
	SessionID uuid.UUID
	Deadline  time.Time
	Purpose   countdown.Purpose
	Running   bool
	Remaining countdown.Remaining
}

func newOfferView(id uuid.UUID, o *offer.Offer) OfferView {
	view := OfferView{
		SessionID:     id,
		ListingID:     o.ListingID(),
		OriginalPrice: o.OriginalPrice().Decimal(),
		Amount:        o.Amount().Decimal(),
		Savings:       o.Savings().Decimal(),
		Message:       o.Message().String(),
		State:         o.State(),
		CanSubmit:     o.CanSubmit(),
	}
	if offerID, ok := o.OfferID(); ok {
		view.OfferID = &offerID
	}
	return view
}

func newTrackerView(tr *upload.Tracker) TrackerView {
	return TrackerView{
		AssetID:  tr.AssetID(),
		Name:     tr.Name(),
		Status:   tr.Status(),
		Progress: tr.Progress(),
		Reason:   tr.Reason(),
		Location: tr.Location(),
	}
}

func newBatchView(b *upload.Batch) BatchView {
	trackers := b.Trackers()
	views := make([]TrackerView, 0, len(trackers))
	for _, tr := range trackers {
		views = append(views, newTrackerView(tr))
	}
	return BatchView{
		BatchID:         b.ID(),
		Trackers:        views,
		OverallProgress: b.OverallProgress(),
		Summary:         b.Summary(),
		Settled:         b.Settled(),
		CreatedAt:       b.CreatedAt(),
	}
}
