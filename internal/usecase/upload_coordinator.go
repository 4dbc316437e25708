package usecase

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"brrow-engine/internal/domain/upload"
	"brrow-engine/internal/infra"
	"brrow-engine/internal/pkg/errs"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

var errUploadRunning = errors.New("asset upload already running")

// UploadSource is one asset's bytes ready for the transport.
type UploadSource struct {
	AssetID     string
	Name        string
	ContentType string
	Data        []byte
}

type uploadKey struct {
	batchID uuid.UUID
	assetID string
}

// UploadCoordinator runs transport uploads and feeds their callbacks into an
// UploadEngine. It owns the transport cancel funcs the engine never sees.
type UploadCoordinator struct {
	engine        *UploadEngine
	transport     UploadTransport
	maxConcurrent int
	logger        *slog.Logger

	mu       sync.Mutex
	inflight map[uploadKey]context.CancelFunc
}

func NewUploadCoordinator(engine *UploadEngine, transport UploadTransport, maxConcurrent int, logger *slog.Logger) *UploadCoordinator {
	if maxConcurrent < 1 {
		maxConcurrent = 1
	}
	return &UploadCoordinator{
		engine:        engine,
		transport:     transport,
		maxConcurrent: maxConcurrent,
		logger:        logger,
		inflight:      make(map[uploadKey]context.CancelFunc),
	}
}

func (c *UploadCoordinator) Engine() *UploadEngine {
	return c.engine
}

// Upload begins the asset, streams it through the transport and settles the
// tracker with the outcome.
func (c *UploadCoordinator) Upload(ctx context.Context, batchID uuid.UUID, src UploadSource) error {
	// Tracked before Begin so a Cancel racing this call always reaches the
	// transport context.
	key := uploadKey{batchID: batchID, assetID: src.AssetID}
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	if !c.track(key, cancel) {
		return errs.Mark(errUploadRunning, errs.ErrInvalidTransition)
	}
	defer c.untrack(key)

	if err := c.engine.BeginUpload(batchID, src.AssetID); err != nil {
		return err
	}

	result, err := c.transport.Upload(ctx, UploadRequest{
		AssetID:     src.AssetID,
		Name:        src.Name,
		ContentType: src.ContentType,
		Data:        src.Data,
	}, func(p float64) {
		_ = c.engine.ReportProgress(batchID, src.AssetID, p)
	})
	if err == nil && result == nil {
		err = infra.Error{Kind: infra.KindMalformedResponse}
	}

	switch {
	case err == nil:
		cerr := c.engine.Complete(batchID, src.AssetID, result.URL)
		if cerr != nil && settledElsewhere(cerr) {
			// cancelled or superseded while the last bytes were in flight
			return errs.Mark(cerr, errs.ErrUploadCancelled)
		}
		return cerr

	case isCancellation(err):
		if cerr := c.engine.Cancel(batchID, src.AssetID); cerr != nil && !settledElsewhere(cerr) {
			return cerr
		}
		c.logger.Info("Upload cancelled", slog.String("asset", src.AssetID))
		return errs.Mark(err, errs.ErrUploadCancelled)

	default:
		reason := failureReason(err)
		if ferr := c.engine.Fail(batchID, src.AssetID, reason); ferr != nil && !settledElsewhere(ferr) {
			return ferr
		}
		return errs.WithHint(errs.Mark(err, errs.ErrUploadFailure), reason)
	}
}

// UploadAll uploads sources with bounded concurrency. One asset failing does
// not stop the others; only an error from the engine itself is returned.
func (c *UploadCoordinator) UploadAll(ctx context.Context, batchID uuid.UUID, sources []UploadSource) (BatchView, error) {
	// Each asset settles on its own; an error for one never cancels the rest.
	var g errgroup.Group
	g.SetLimit(c.maxConcurrent)
	for _, src := range sources {
		g.Go(func() error {
			err := c.Upload(ctx, batchID, src)
			switch {
			case err == nil:
			case errs.Is(err, errs.ErrUploadFailure), errs.Is(err, errs.ErrUploadCancelled):
				c.logger.Debug("Asset upload settled without a location",
					slog.String("batch_id", batchID.String()),
					slog.String("asset_id", src.AssetID),
					slog.String("error", err.Error()),
				)
			case settledElsewhere(err):
				c.logger.Warn("Asset skipped",
					slog.String("batch_id", batchID.String()),
					slog.String("asset_id", src.AssetID),
					slog.String("error", err.Error()),
				)
			default:
				return err
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return BatchView{}, err
	}
	return c.engine.View(batchID)
}

// Cancel stops the asset's transport, if any, and cancels its tracker.
func (c *UploadCoordinator) Cancel(batchID uuid.UUID, assetID string) error {
	c.stop(uploadKey{batchID: batchID, assetID: assetID})
	return c.engine.Cancel(batchID, assetID)
}

func (c *UploadCoordinator) CancelAll(batchID uuid.UUID) ([]string, error) {
	cancelled, err := c.engine.CancelAll(batchID)
	if err != nil {
		return nil, err
	}
	for _, assetID := range cancelled {
		c.stop(uploadKey{batchID: batchID, assetID: assetID})
	}
	return cancelled, nil
}

// RemoveAsset cancels an uploading asset before removing it.
func (c *UploadCoordinator) RemoveAsset(batchID uuid.UUID, index int) (string, error) {
	tv, err := c.engine.AssetAt(batchID, index)
	if err != nil {
		return "", err
	}
	if tv.Status == upload.StatusUploading {
		if err := c.Cancel(batchID, tv.AssetID); err != nil {
			return "", err
		}
	}
	return c.engine.RemoveAsset(batchID, index)
}

// StartBatch supersedes the active batch and stops the transports of its
// unfinished assets.
func (c *UploadCoordinator) StartBatch(assets []upload.AssetRef) (uuid.UUID, error) {
	id, err := c.engine.StartBatch(assets)
	if err != nil {
		return uuid.Nil, err
	}
	c.stopAllExcept(id)
	return id, nil
}

// Discard cancels the active batch and every running transport.
func (c *UploadCoordinator) Discard() {
	batchID, inFlight := c.engine.Discard()
	for _, assetID := range inFlight {
		c.stop(uploadKey{batchID: batchID, assetID: assetID})
	}
	c.stopAllExcept(uuid.Nil)
}

// Busy reports whether any transport is still running.
func (c *UploadCoordinator) Busy() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.inflight) > 0
}

func (c *UploadCoordinator) track(key uploadKey, cancel context.CancelFunc) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.inflight[key]; ok {
		return false
	}
	c.inflight[key] = cancel
	return true
}

func (c *UploadCoordinator) untrack(key uploadKey) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.inflight, key)
}

func (c *UploadCoordinator) stop(key uploadKey) {
	c.mu.Lock()
	cancel, ok := c.inflight[key]
	c.mu.Unlock()
	if ok {
		cancel()
	}
}

func (c *UploadCoordinator) stopAllExcept(batchID uuid.UUID) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for key, cancel := range c.inflight {
		if key.batchID != batchID {
			cancel()
		}
	}
}

// settledElsewhere reports engine errors meaning the tracker was settled or
// dropped before its transport returned.
func settledElsewhere(err error) bool {
	return errs.Is(err, errs.ErrBatchSuperseded) ||
		errs.Is(err, errs.ErrAssetNotFound) ||
		errs.Is(err, errs.ErrInvalidTransition)
}

func isCancellation(err error) bool {
	return infra.IsKind(err, infra.KindCanceled) || errors.Is(err, context.Canceled)
}

func failureReason(err error) string {
	switch {
	case infra.IsKind(err, infra.KindTransport):
		return "network"
	case errors.Is(err, context.DeadlineExceeded):
		return "timeout"
	case infra.IsKind(err, infra.KindMalformedResponse):
		return "invalid_response"
	case infra.IsKind(err, infra.KindRejected):
		if msg := infra.UpstreamMessage(err); msg != "" {
			return msg
		}
		return "rejected"
	default:
		return "upload_failed"
	}
}
