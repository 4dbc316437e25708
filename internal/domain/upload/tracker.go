package upload

import (
	"errors"
	"math"
	"strings"
)

var (
	ErrInvalidAssetID     = errors.New("asset id is required")
	ErrInvalidTransition  = errors.New("invalid upload state transition")
	ErrProgressOutOfRange = errors.New("progress must be between 0 and 1")
	ErrProgressRegression = errors.New("progress cannot decrease")
	ErrAlreadyTerminal    = errors.New("upload already reached a terminal state")
)

type Tracker struct {
	assetID  string
	name     string
	status   Status
	progress float64
	reason   string
	location string
}

func NewTracker(ref AssetRef) (*Tracker, error) {
	id := strings.TrimSpace(ref.ID)
	if id == "" {
		return nil, ErrInvalidAssetID
	}
	return &Tracker{
		assetID: id,
		name:    strings.TrimSpace(ref.Name),
		status:  StatusPending,
	}, nil
}

func (t *Tracker) Begin() error {
	if t.status != StatusPending {
		return ErrInvalidTransition
	}
	t.status = StatusUploading
	t.progress = 0
	return nil
}

// ReportProgress records p for an uploading asset. Equal values are accepted;
// lower values and values outside [0,1] are not.
func (t *Tracker) ReportProgress(p float64) error {
	switch {
	case t.status.IsTerminal():
		return ErrAlreadyTerminal
	case t.status != StatusUploading:
		return ErrInvalidTransition
	case math.IsNaN(p) || p < 0 || p > 1:
		return ErrProgressOutOfRange
	case p < t.progress:
		return ErrProgressRegression
	}
	t.progress = p
	return nil
}

// Complete is a no-op on an already completed tracker.
func (t *Tracker) Complete(location string) error {
	switch t.status {
	case StatusCompleted:
		return nil
	case StatusUploading:
		t.status = StatusCompleted
		t.progress = 1
		t.location = strings.TrimSpace(location)
		return nil
	case StatusFailed, StatusCancelled:
		return ErrAlreadyTerminal
	default:
		return ErrInvalidTransition
	}
}

func (t *Tracker) Fail(reason string) error {
	if t.status.IsTerminal() {
		return ErrAlreadyTerminal
	}
	t.status = StatusFailed
	t.reason = strings.TrimSpace(reason)
	return nil
}

// Cancel is a no-op on an already cancelled tracker.
func (t *Tracker) Cancel() error {
	switch {
	case t.status == StatusCancelled:
		return nil
	case t.status.IsTerminal():
		return ErrAlreadyTerminal
	}
	t.status = StatusCancelled
	return nil
}

// EffectiveProgress is the tracker's share of batch progress.
func (t *Tracker) EffectiveProgress() float64 {
	switch t.status {
	case StatusCompleted:
		return 1
	case StatusUploading:
		return t.progress
	default:
		return 0
	}
}

func (t *Tracker) AssetID() string   { return t.assetID }
func (t *Tracker) Name() string      { return t.name }
func (t *Tracker) Status() Status    { return t.status }
func (t *Tracker) Progress() float64 { return t.progress }
func (t *Tracker) Reason() string    { return t.reason }
func (t *Tracker) Location() string  { return t.location }
