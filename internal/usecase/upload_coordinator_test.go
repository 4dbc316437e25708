//go:build unit

package usecase_test

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"brrow-engine/internal/domain/upload"
	"brrow-engine/internal/infra"
	"brrow-engine/internal/pkg/clock"
	"brrow-engine/internal/pkg/errs"
	"brrow-engine/internal/usecase"
	"brrow-engine/tests/common/testutil"
	usecasemock "brrow-engine/tests/mock/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newCoordinator(t *testing.T, maxConcurrent int, ids ...string) (*usecase.UploadCoordinator, *usecasemock.MockUploadTransport, uuid.UUID) {
	t.Helper()
	transport := usecasemock.NewMockUploadTransport(gomock.NewController(t))
	engine := usecase.NewUploadEngine(clock.NewMockClock(time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)), testutil.DiscardLogger())
	coord := usecase.NewUploadCoordinator(engine, transport, maxConcurrent, testutil.DiscardLogger())

	batchID, err := coord.StartBatch(assetRefs(ids...))
	require.NoError(t, err)
	return coord, transport, batchID
}

func source(id string) usecase.UploadSource {
	return usecase.UploadSource{AssetID: id, Name: id + ".jpg", ContentType: "image/jpeg", Data: []byte("jpeg-bytes-" + id)}
}

// blockUntilCancelled stands in for a transport stuck mid-upload.
func blockUntilCancelled(progress float64) func(context.Context, usecase.UploadRequest, func(float64)) (*usecase.UploadResult, error) {
	return func(ctx context.Context, _ usecase.UploadRequest, report func(float64)) (*usecase.UploadResult, error) {
		report(progress)
		<-ctx.Done()
		return nil, infra.WrapErr(testutil.DiscardLogger(), infra.KindCanceled, "upload aborted", ctx.Err())
	}
}

// waitForTransport returns once the asset's transport has reported progress.
func waitForTransport(t *testing.T, coord *usecase.UploadCoordinator, batchID uuid.UUID, index int) {
	t.Helper()
	require.Eventually(t, func() bool {
		tv, err := coord.Engine().AssetAt(batchID, index)
		return err == nil && tv.Status == upload.StatusUploading && tv.Progress > 0
	}, time.Second, time.Millisecond)
}

func TestUploadCoordinatorUpload(t *testing.T) {
	ctx := context.Background()

	t.Run("success reports progress and completes", func(t *testing.T) {
		coord, transport, batchID := newCoordinator(t, 2, "a1")
		transport.EXPECT().
			Upload(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, req usecase.UploadRequest, report func(float64)) (*usecase.UploadResult, error) {
				assert.Equal(t, "a1", req.AssetID)
				assert.Equal(t, "image/jpeg", req.ContentType)
				report(0.4)
				report(0.2)
				report(0.9)
				return &usecase.UploadResult{URL: "https://cdn.example.com/a1.jpg", PublicID: "listing/a1"}, nil
			})

		require.NoError(t, coord.Upload(ctx, batchID, source("a1")))

		view, err := coord.Engine().View(batchID)
		require.NoError(t, err)
		assert.Equal(t, upload.StatusCompleted, view.Trackers[0].Status)
		assert.Equal(t, "https://cdn.example.com/a1.jpg", view.Trackers[0].Location)
		assert.Equal(t, 1.0, view.OverallProgress)
	})

	t.Run("transport failure fails the tracker", func(t *testing.T) {
		coord, transport, batchID := newCoordinator(t, 2, "a1")
		transport.EXPECT().
			Upload(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, infra.WrapErr(testutil.DiscardLogger(), infra.KindTransport, "post image", errs.New("connection reset")))

		err := coord.Upload(ctx, batchID, source("a1"))
		assert.True(t, errs.Is(err, errs.ErrUploadFailure))
		assert.Equal(t, "network", errs.Hint(err))

		tv, err := coord.Engine().AssetAt(batchID, 0)
		require.NoError(t, err)
		assert.Equal(t, upload.StatusFailed, tv.Status)
		assert.Equal(t, "network", tv.Reason)
	})

	t.Run("rejection keeps the backend message", func(t *testing.T) {
		coord, transport, batchID := newCoordinator(t, 2, "a1")
		transport.EXPECT().
			Upload(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, infra.ResponseErr(testutil.DiscardLogger(), infra.KindRejected, 413, "Image too large"))

		err := coord.Upload(ctx, batchID, source("a1"))
		assert.True(t, errs.Is(err, errs.ErrUploadFailure))

		tv, err := coord.Engine().AssetAt(batchID, 0)
		require.NoError(t, err)
		assert.Equal(t, "Image too large", tv.Reason)
	})

	t.Run("empty response is invalid", func(t *testing.T) {
		coord, transport, batchID := newCoordinator(t, 2, "a1")
		transport.EXPECT().Upload(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil)

		err := coord.Upload(ctx, batchID, source("a1"))
		assert.True(t, errs.Is(err, errs.ErrUploadFailure))
		assert.Equal(t, "invalid_response", errs.Hint(err))
	})

	t.Run("unknown asset never reaches the transport", func(t *testing.T) {
		coord, _, batchID := newCoordinator(t, 2, "a1")

		err := coord.Upload(ctx, batchID, source("zz"))
		assert.True(t, errs.Is(err, errs.ErrAssetNotFound))
	})
}

func TestUploadCoordinatorCancel(t *testing.T) {
	ctx := context.Background()

	t.Run("cancel stops the transport", func(t *testing.T) {
		coord, transport, batchID := newCoordinator(t, 2, "a1")
		transport.EXPECT().Upload(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(blockUntilCancelled(0.3))

		done := make(chan error, 1)
		go func() { done <- coord.Upload(ctx, batchID, source("a1")) }()
		waitForTransport(t, coord, batchID, 0)

		require.NoError(t, coord.Cancel(batchID, "a1"))

		select {
		case err := <-done:
			assert.True(t, errs.Is(err, errs.ErrUploadCancelled))
		case <-time.After(time.Second):
			t.Fatal("transport was not cancelled")
		}
		tv, err := coord.Engine().AssetAt(batchID, 0)
		require.NoError(t, err)
		assert.Equal(t, upload.StatusCancelled, tv.Status)
	})

	t.Run("remove cancels an uploading asset first", func(t *testing.T) {
		coord, transport, batchID := newCoordinator(t, 2, "a1", "a2")
		transport.EXPECT().Upload(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(blockUntilCancelled(0.5))

		done := make(chan error, 1)
		go func() { done <- coord.Upload(ctx, batchID, source("a1")) }()
		waitForTransport(t, coord, batchID, 0)

		removed, err := coord.RemoveAsset(batchID, 0)
		require.NoError(t, err)
		assert.Equal(t, "a1", removed)

		select {
		case <-done:
		case <-time.After(time.Second):
			t.Fatal("transport was not cancelled")
		}
		view, err := coord.Engine().View(batchID)
		require.NoError(t, err)
		require.Len(t, view.Trackers, 1)
		assert.Equal(t, "a2", view.Trackers[0].AssetID)
	})

	t.Run("cancel all stops every transport", func(t *testing.T) {
		coord, transport, batchID := newCoordinator(t, 3, "a1", "a2")
		transport.EXPECT().Upload(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(blockUntilCancelled(0.1)).Times(2)

		done := make(chan usecase.BatchView, 1)
		go func() {
			view, err := coord.UploadAll(ctx, batchID, []usecase.UploadSource{source("a1"), source("a2")})
			assert.NoError(t, err)
			done <- view
		}()
		waitForTransport(t, coord, batchID, 0)
		waitForTransport(t, coord, batchID, 1)

		cancelled, err := coord.CancelAll(batchID)
		require.NoError(t, err)
		assert.ElementsMatch(t, []string{"a1", "a2"}, cancelled)

		select {
		case view := <-done:
			assert.True(t, view.Settled)
			assert.Equal(t, 2, view.Summary.Cancelled)
		case <-time.After(time.Second):
			t.Fatal("uploads did not stop")
		}
	})

	t.Run("new batch stops the old transports", func(t *testing.T) {
		coord, transport, first := newCoordinator(t, 2, "a1")
		transport.EXPECT().Upload(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(blockUntilCancelled(0.7))

		done := make(chan error, 1)
		go func() { done <- coord.Upload(ctx, first, source("a1")) }()
		waitForTransport(t, coord, first, 0)

		second, err := coord.StartBatch(assetRefs("b1"))
		require.NoError(t, err)

		select {
		case err := <-done:
			assert.True(t, errs.Is(err, errs.ErrUploadCancelled))
		case <-time.After(time.Second):
			t.Fatal("old transport kept running")
		}

		view, err := coord.Engine().View(second)
		require.NoError(t, err)
		assert.Equal(t, upload.StatusPending, view.Trackers[0].Status)
	})
}

func TestUploadCoordinatorUploadAll(t *testing.T) {
	ctx := context.Background()

	t.Run("one failure does not stop the batch", func(t *testing.T) {
		coord, transport, batchID := newCoordinator(t, 2, "a1", "a2", "a3")
		transport.EXPECT().
			Upload(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, req usecase.UploadRequest, report func(float64)) (*usecase.UploadResult, error) {
				report(0.5)
				if req.AssetID == "a2" {
					return nil, infra.WrapErr(testutil.DiscardLogger(), infra.KindTransport, "post image", errs.New("timeout"))
				}
				return &usecase.UploadResult{URL: "https://cdn.example.com/" + req.AssetID}, nil
			}).
			Times(3)

		view, err := coord.UploadAll(ctx, batchID, []usecase.UploadSource{source("a1"), source("a2"), source("a3")})
		require.NoError(t, err)
		assert.True(t, view.Settled)
		assert.Equal(t, upload.Summary{Total: 3, Completed: 2, Failed: 1}, view.Summary)
		assert.InDelta(t, 2.0/3.0, view.OverallProgress, 1e-9)
	})

	t.Run("concurrency is bounded", func(t *testing.T) {
		coord, transport, batchID := newCoordinator(t, 2, "a1", "a2", "a3", "a4")
		var running, peak atomic.Int32
		transport.EXPECT().
			Upload(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, req usecase.UploadRequest, _ func(float64)) (*usecase.UploadResult, error) {
				n := running.Add(1)
				for {
					p := peak.Load()
					if n <= p || peak.CompareAndSwap(p, n) {
						break
					}
				}
				time.Sleep(5 * time.Millisecond)
				running.Add(-1)
				return &usecase.UploadResult{URL: "u-" + req.AssetID}, nil
			}).
			Times(4)

		sources := []usecase.UploadSource{source("a1"), source("a2"), source("a3"), source("a4")}
		view, err := coord.UploadAll(ctx, batchID, sources)
		require.NoError(t, err)
		assert.Equal(t, 4, view.Summary.Completed)
		assert.LessOrEqual(t, peak.Load(), int32(2))
	})

	t.Run("already-settled asset does not cancel siblings", func(t *testing.T) {
		coord, transport, batchID := newCoordinator(t, 2, "a1", "a2")
		require.NoError(t, coord.Engine().BeginUpload(batchID, "a1"))
		require.NoError(t, coord.Engine().Complete(batchID, "a1", "https://cdn.example.com/a1"))

		transport.EXPECT().
			Upload(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(ctx context.Context, req usecase.UploadRequest, report func(float64)) (*usecase.UploadResult, error) {
				assert.Equal(t, "a2", req.AssetID)
				report(0.5)
				select {
				case <-ctx.Done():
					return nil, infra.WrapErr(testutil.DiscardLogger(), infra.KindCanceled, "upload aborted", ctx.Err())
				case <-time.After(200 * time.Millisecond):
				}
				return &usecase.UploadResult{URL: "https://cdn.example.com/a2"}, nil
			})

		view, err := coord.UploadAll(ctx, batchID, []usecase.UploadSource{source("a1"), source("a2")})
		require.NoError(t, err)
		assert.Equal(t, upload.StatusCompleted, view.Trackers[0].Status)
		assert.Equal(t, "https://cdn.example.com/a1", view.Trackers[0].Location)
		assert.Equal(t, upload.StatusCompleted, view.Trackers[1].Status)
		assert.Equal(t, upload.Summary{Total: 2, Completed: 2}, view.Summary)
	})

	t.Run("unknown and cancelled assets are skipped", func(t *testing.T) {
		coord, transport, batchID := newCoordinator(t, 1, "a1", "a2", "a3")
		require.NoError(t, coord.Cancel(batchID, "a2"))

		transport.EXPECT().
			Upload(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(ctx context.Context, req usecase.UploadRequest, _ func(float64)) (*usecase.UploadResult, error) {
				if err := ctx.Err(); err != nil {
					return nil, infra.WrapErr(testutil.DiscardLogger(), infra.KindCanceled, "upload aborted", err)
				}
				return &usecase.UploadResult{URL: "u-" + req.AssetID}, nil
			}).
			Times(2)

		sources := []usecase.UploadSource{source("zz"), source("a2"), source("a1"), source("a3")}
		view, err := coord.UploadAll(ctx, batchID, sources)
		require.NoError(t, err)
		assert.Equal(t, upload.Summary{Total: 3, Completed: 2, Cancelled: 1}, view.Summary)
	})
}
