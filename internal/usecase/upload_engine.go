package usecase

import (
	"errors"
	"log/slog"
	"sync"

	"brrow-engine/internal/domain/upload"
	"brrow-engine/internal/pkg/clock"
	"brrow-engine/internal/pkg/errs"

	"github.com/google/uuid"
)

// UploadEngine tracks the active batch of one upload screen. Every call is
// scoped by the batch handle StartBatch returned, so callbacks from a
// superseded batch fail instead of touching the new one.
type UploadEngine struct {
	mu         sync.Mutex
	batch      *upload.Batch
	superseded map[uuid.UUID]struct{}
	retained   []*upload.Tracker
	clock      clock.Clock
	logger     *slog.Logger
}

func NewUploadEngine(clk clock.Clock, logger *slog.Logger) *UploadEngine {
	return &UploadEngine{
		superseded: make(map[uuid.UUID]struct{}),
		clock:      clk,
		logger:     logger,
	}
}

// StartBatch replaces the active batch. Completed assets of the old batch are
// kept in Retained; the rest are dropped without signalling their transport.
func (e *UploadEngine) StartBatch(assets []upload.AssetRef) (uuid.UUID, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	id := uuid.New()
	batch, err := upload.NewBatch(id, assets, e.clock.Now())
	if err != nil {
		return uuid.Nil, e.markDomainErr(err)
	}

	if old := e.batch; old != nil {
		e.superseded[old.ID()] = struct{}{}
		e.retained = append(e.retained, old.Completed()...)
		e.logger.Info("Upload batch superseded",
			slog.String("old_batch", old.ID().String()),
			slog.String("new_batch", id.String()),
			slog.Int("retained", len(old.Completed())),
		)
	}
	e.batch = batch
	return id, nil
}

func (e *UploadEngine) BeginUpload(batchID uuid.UUID, assetID string) error {
	return e.withTracker(batchID, assetID, func(tr *upload.Tracker) error {
		return tr.Begin()
	})
}

// ReportProgress records a transport progress callback. Rejected updates
// leave the tracker untouched.
func (e *UploadEngine) ReportProgress(batchID uuid.UUID, assetID string, p float64) error {
	err := e.withTracker(batchID, assetID, func(tr *upload.Tracker) error {
		return tr.ReportProgress(p)
	})
	if err != nil {
		e.logger.Debug("Rejected progress update",
			slog.String("batch", batchID.String()),
			slog.String("asset", assetID),
			slog.Float64("progress", p),
			slog.Any("error", err),
		)
	}
	return err
}

func (e *UploadEngine) Complete(batchID uuid.UUID, assetID, location string) error {
	return e.withTracker(batchID, assetID, func(tr *upload.Tracker) error {
		return tr.Complete(location)
	})
}

func (e *UploadEngine) Fail(batchID uuid.UUID, assetID, reason string) error {
	return e.withTracker(batchID, assetID, func(tr *upload.Tracker) error {
		if err := tr.Fail(reason); err != nil {
			return err
		}
		e.logger.Warn("Upload failed", slog.String("asset", assetID), slog.String("reason", reason))
		return nil
	})
}

func (e *UploadEngine) Cancel(batchID uuid.UUID, assetID string) error {
	return e.withTracker(batchID, assetID, func(tr *upload.Tracker) error {
		return tr.Cancel()
	})
}

// CancelAll cancels every open tracker and returns the ids that were
// uploading. Stopping their transports is the caller's job.
func (e *UploadEngine) CancelAll(batchID uuid.UUID) ([]string, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	batch, err := e.active(batchID)
	if err != nil {
		return nil, err
	}
	return batch.CancelAll(), nil
}

func (e *UploadEngine) OverallProgress(batchID uuid.UUID) (float64, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	batch, err := e.active(batchID)
	if err != nil {
		return 0, err
	}
	return batch.OverallProgress(), nil
}

// RemoveAsset drops the asset at index. An uploading asset must be cancelled
// first. Removing the last asset leaves an empty batch that is settled and
// reports 0 overall progress, since nothing in it was uploaded.
func (e *UploadEngine) RemoveAsset(batchID uuid.UUID, index int) (string, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	batch, err := e.active(batchID)
	if err != nil {
		return "", err
	}
	removed, err := batch.Remove(index)
	if err != nil {
		return "", e.markDomainErr(err)
	}
	return removed.AssetID(), nil
}

// AssetAt returns the tracker view at index of the active batch.
func (e *UploadEngine) AssetAt(batchID uuid.UUID, index int) (TrackerView, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	batch, err := e.active(batchID)
	if err != nil {
		return TrackerView{}, err
	}
	trackers := batch.Trackers()
	if index < 0 || index >= len(trackers) {
		return TrackerView{}, e.markDomainErr(upload.ErrIndexOutOfRange)
	}
	return newTrackerView(trackers[index]), nil
}

func (e *UploadEngine) View(batchID uuid.UUID) (BatchView, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	batch, err := e.active(batchID)
	if err != nil {
		return BatchView{}, err
	}
	view := newBatchView(batch)
	view.Retained = e.retainedViews()
	return view, nil
}

// Retained lists completed assets carried over from superseded batches.
func (e *UploadEngine) Retained() []TrackerView {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.retainedViews()
}

func (e *UploadEngine) retainedViews() []TrackerView {
	out := make([]TrackerView, 0, len(e.retained))
	for _, tr := range e.retained {
		out = append(out, newTrackerView(tr))
	}
	return out
}

// Discard cancels and drops the active batch, returning the ids that were
// uploading.
func (e *UploadEngine) Discard() (uuid.UUID, []string) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.batch == nil {
		return uuid.Nil, nil
	}
	id := e.batch.ID()
	inFlight := e.batch.CancelAll()
	e.superseded[id] = struct{}{}
	e.batch = nil
	return id, inFlight
}

func (e *UploadEngine) withTracker(batchID uuid.UUID, assetID string, fn func(*upload.Tracker) error) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	batch, err := e.active(batchID)
	if err != nil {
		return err
	}
	tr, err := batch.Tracker(assetID)
	if err != nil {
		return e.markDomainErr(err)
	}
	if err := fn(tr); err != nil {
		return e.markDomainErr(err)
	}
	return nil
}

// active must be called with mu held.
func (e *UploadEngine) active(batchID uuid.UUID) (*upload.Batch, error) {
	if e.batch != nil && e.batch.ID() == batchID {
		return e.batch, nil
	}
	if _, ok := e.superseded[batchID]; ok {
		return nil, errs.Mark(upload.ErrBatchSuperseded, errs.ErrBatchSuperseded)
	}
	return nil, errs.ErrSessionNotFound
}

func (e *UploadEngine) markDomainErr(err error) error {
	switch {
	case errors.Is(err, upload.ErrAssetNotFound):
		return errs.Mark(err, errs.ErrAssetNotFound)
	case errors.Is(err, upload.ErrInvalidTransition),
		errors.Is(err, upload.ErrAlreadyTerminal),
		errors.Is(err, upload.ErrAssetUploading),
		errors.Is(err, upload.ErrProgressRegression):
		return errs.Mark(err, errs.ErrInvalidTransition)
	case errors.Is(err, upload.ErrBatchSuperseded):
		return errs.Mark(err, errs.ErrBatchSuperseded)
	default:
		return errs.Mark(err, errs.ErrValidation)
	}
}
