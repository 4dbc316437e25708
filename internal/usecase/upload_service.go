package usecase

//go:generate mockgen -source=upload_service.go -destination=../../tests/mock/usecase/mock_upload_service.go -package=usecasemock

import (
	"context"
	"log/slog"
	"time"

	"brrow-engine/internal/domain/upload"
	"brrow-engine/internal/pkg/clock"
	"brrow-engine/internal/pkg/config"
	"brrow-engine/internal/usecase/shared"

	"github.com/google/uuid"
)

type UploadSessions interface {
	StartBatch(ctx context.Context, userID string, assets []upload.AssetRef) (BatchView, error)
	Batch(ctx context.Context, userID string, batchID uuid.UUID) (BatchView, error)
	BeginUpload(ctx context.Context, userID string, batchID uuid.UUID, assetID string) (BatchView, error)
	ReportProgress(ctx context.Context, userID string, batchID uuid.UUID, assetID string, progress float64) (BatchView, error)
	Complete(ctx context.Context, userID string, batchID uuid.UUID, assetID, location string) (BatchView, error)
	Fail(ctx context.Context, userID string, batchID uuid.UUID, assetID, reason string) (BatchView, error)
	Cancel(ctx context.Context, userID string, batchID uuid.UUID, assetID string) (BatchView, error)
	CancelAll(ctx context.Context, userID string, batchID uuid.UUID) ([]string, BatchView, error)
	RemoveAsset(ctx context.Context, userID string, batchID uuid.UUID, index int) (BatchView, error)
	UploadContent(ctx context.Context, userID string, batchID uuid.UUID, src UploadSource) (BatchView, error)
	UploadAll(ctx context.Context, userID string, batchID uuid.UUID, sources []UploadSource) (BatchView, error)
	Discard(ctx context.Context, userID string) error
	ExpireIdle() int
	Shutdown()
}

// uploadServiceImpl keeps one coordinator per user, standing in for the
// single upload screen a user has open.
type uploadServiceImpl struct {
	sessions  *shared.SessionStore[string, *UploadCoordinator]
	transport UploadTransport
	clock     clock.Clock
	cfg       config.UploadConfig
	ttl       time.Duration
	logger    *slog.Logger
}

func NewUploadService(transport UploadTransport, clk clock.Clock, cfg config.Config, logger *slog.Logger) UploadSessions {
	return &uploadServiceImpl{
		sessions:  shared.NewSessionStore[string, *UploadCoordinator](clk),
		transport: transport,
		clock:     clk,
		cfg:       cfg.Upload,
		ttl:       cfg.Session.TTL,
		logger:    logger,
	}
}

func (s *uploadServiceImpl) StartBatch(ctx context.Context, userID string, assets []upload.AssetRef) (BatchView, error) {
	coord, _ := s.sessions.GetOrPut(userID, userID, func() *UploadCoordinator {
		engine := NewUploadEngine(s.clock, s.logger.With(slog.String("user_id", userID)))
		return NewUploadCoordinator(engine, s.transport, s.cfg.MaxConcurrent, s.logger)
	})

	batchID, err := coord.StartBatch(assets)
	if err != nil {
		return BatchView{}, err
	}
	return coord.Engine().View(batchID)
}

func (s *uploadServiceImpl) Batch(ctx context.Context, userID string, batchID uuid.UUID) (BatchView, error) {
	coord, err := s.sessions.Get(userID, userID)
	if err != nil {
		return BatchView{}, err
	}
	return coord.Engine().View(batchID)
}

func (s *uploadServiceImpl) BeginUpload(ctx context.Context, userID string, batchID uuid.UUID, assetID string) (BatchView, error) {
	return s.apply(userID, batchID, func(c *UploadCoordinator) error {
		return c.Engine().BeginUpload(batchID, assetID)
	})
}

func (s *uploadServiceImpl) ReportProgress(ctx context.Context, userID string, batchID uuid.UUID, assetID string, progress float64) (BatchView, error) {
	return s.apply(userID, batchID, func(c *UploadCoordinator) error {
		return c.Engine().ReportProgress(batchID, assetID, progress)
	})
}

func (s *uploadServiceImpl) Complete(ctx context.Context, userID string, batchID uuid.UUID, assetID, location string) (BatchView, error) {
	return s.apply(userID, batchID, func(c *UploadCoordinator) error {
		return c.Engine().Complete(batchID, assetID, location)
	})
}

func (s *uploadServiceImpl) Fail(ctx context.Context, userID string, batchID uuid.UUID, assetID, reason string) (BatchView, error) {
	return s.apply(userID, batchID, func(c *UploadCoordinator) error {
		return c.Engine().Fail(batchID, assetID, reason)
	})
}

func (s *uploadServiceImpl) Cancel(ctx context.Context, userID string, batchID uuid.UUID, assetID string) (BatchView, error) {
	return s.apply(userID, batchID, func(c *UploadCoordinator) error {
		return c.Cancel(batchID, assetID)
	})
}

func (s *uploadServiceImpl) CancelAll(ctx context.Context, userID string, batchID uuid.UUID) ([]string, BatchView, error) {
	var cancelled []string
	view, err := s.apply(userID, batchID, func(c *UploadCoordinator) error {
		var err error
		cancelled, err = c.CancelAll(batchID)
		return err
	})
	return cancelled, view, err
}

func (s *uploadServiceImpl) RemoveAsset(ctx context.Context, userID string, batchID uuid.UUID, index int) (BatchView, error) {
	return s.apply(userID, batchID, func(c *UploadCoordinator) error {
		_, err := c.RemoveAsset(batchID, index)
		return err
	})
}

// UploadContent runs the transport for one asset and returns the batch as it
// stands afterwards. A failed or cancelled upload is reported alongside the
// view.
func (s *uploadServiceImpl) UploadContent(ctx context.Context, userID string, batchID uuid.UUID, src UploadSource) (BatchView, error) {
	coord, err := s.sessions.Get(userID, userID)
	if err != nil {
		return BatchView{}, err
	}

	uploadErr := coord.Upload(ctx, batchID, src)
	view, err := coord.Engine().View(batchID)
	if err != nil {
		return BatchView{}, err
	}
	return view, uploadErr
}

func (s *uploadServiceImpl) UploadAll(ctx context.Context, userID string, batchID uuid.UUID, sources []UploadSource) (BatchView, error) {
	coord, err := s.sessions.Get(userID, userID)
	if err != nil {
		return BatchView{}, err
	}
	return coord.UploadAll(ctx, batchID, sources)
}

// Discard tears down the user's upload screen, cancelling every transport.
func (s *uploadServiceImpl) Discard(ctx context.Context, userID string) error {
	coord, err := s.sessions.Delete(userID, userID)
	if err != nil {
		return err
	}
	coord.Discard()
	return nil
}

// ExpireIdle discards upload screens left untouched for longer than the
// session TTL. A screen with a transport still running is kept.
func (s *uploadServiceImpl) ExpireIdle() int {
	expired := s.sessions.Expire(s.ttl, (*UploadCoordinator).Busy)
	for _, coord := range expired {
		coord.Discard()
	}
	return len(expired)
}

func (s *uploadServiceImpl) Shutdown() {
	for _, coord := range s.sessions.Drain() {
		coord.Discard()
	}
}

func (s *uploadServiceImpl) apply(userID string, batchID uuid.UUID, fn func(*UploadCoordinator) error) (BatchView, error) {
	coord, err := s.sessions.Get(userID, userID)
	if err != nil {
		return BatchView{}, err
	}
	if err := fn(coord); err != nil {
		return BatchView{}, err
	}
	return coord.Engine().View(batchID)
}
