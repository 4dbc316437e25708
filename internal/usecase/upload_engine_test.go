//go:build unit

package usecase_test

import (
	"testing"
	"time"

	"brrow-engine/internal/domain/upload"
	"brrow-engine/internal/pkg/clock"
	"brrow-engine/internal/pkg/errs"
	"brrow-engine/internal/usecase"
	"brrow-engine/tests/common/testutil"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func assetRefs(ids ...string) []upload.AssetRef {
	refs := make([]upload.AssetRef, 0, len(ids))
	for _, id := range ids {
		refs = append(refs, upload.AssetRef{ID: id, Name: id + ".jpg"})
	}
	return refs
}

func newUploadEngine(t *testing.T, ids ...string) (*usecase.UploadEngine, uuid.UUID) {
	t.Helper()
	engine := usecase.NewUploadEngine(clock.NewMockClock(time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)), testutil.DiscardLogger())
	batchID, err := engine.StartBatch(assetRefs(ids...))
	require.NoError(t, err)
	return engine, batchID
}

func TestUploadEngineMixedBatch(t *testing.T) {
	engine, batchID := newUploadEngine(t, "a1", "a2", "a3")

	for _, id := range []string{"a1", "a2", "a3"} {
		require.NoError(t, engine.BeginUpload(batchID, id))
	}
	require.NoError(t, engine.ReportProgress(batchID, "a1", 0.3))
	require.NoError(t, engine.Complete(batchID, "a1", "https://cdn.example.com/a1.jpg"))
	require.NoError(t, engine.ReportProgress(batchID, "a2", 0.6))
	require.NoError(t, engine.Fail(batchID, "a2", "network"))
	require.NoError(t, engine.ReportProgress(batchID, "a3", 0.5))

	overall, err := engine.OverallProgress(batchID)
	require.NoError(t, err)
	assert.InDelta(t, 0.5, overall, 1e-9)

	view, err := engine.View(batchID)
	require.NoError(t, err)
	assert.Equal(t, upload.Summary{Total: 3, Uploading: 1, Completed: 1, Failed: 1}, view.Summary)
	assert.False(t, view.Settled)
	assert.Equal(t, "https://cdn.example.com/a1.jpg", view.Trackers[0].Location)
	assert.Equal(t, "network", view.Trackers[1].Reason)
	assert.Empty(t, view.Retained)
}

func TestUploadEngineRejectsBadProgress(t *testing.T) {
	engine, batchID := newUploadEngine(t, "a1")

	err := engine.ReportProgress(batchID, "a1", 0.2)
	assert.True(t, errs.Is(err, errs.ErrInvalidTransition), "pending tracker")

	require.NoError(t, engine.BeginUpload(batchID, "a1"))
	require.NoError(t, engine.ReportProgress(batchID, "a1", 0.6))

	err = engine.ReportProgress(batchID, "a1", 0.4)
	assert.True(t, errs.Is(err, errs.ErrInvalidTransition))
	err = engine.ReportProgress(batchID, "a1", 1.2)
	assert.True(t, errs.Is(err, errs.ErrValidation))

	view, err := engine.View(batchID)
	require.NoError(t, err)
	assert.InDelta(t, 0.6, view.Trackers[0].Progress, 1e-9)

	err = engine.ReportProgress(batchID, "missing", 0.7)
	assert.True(t, errs.Is(err, errs.ErrAssetNotFound))
}

func TestUploadEngineOverallNeverReachesOneEarly(t *testing.T) {
	engine, batchID := newUploadEngine(t, "a1", "a2")

	require.NoError(t, engine.BeginUpload(batchID, "a1"))
	require.NoError(t, engine.Complete(batchID, "a1", "u1"))
	require.NoError(t, engine.BeginUpload(batchID, "a2"))
	require.NoError(t, engine.ReportProgress(batchID, "a2", 1))

	overall, err := engine.OverallProgress(batchID)
	require.NoError(t, err)
	assert.Less(t, overall, 1.0)

	require.NoError(t, engine.Complete(batchID, "a2", "u2"))
	overall, err = engine.OverallProgress(batchID)
	require.NoError(t, err)
	assert.Equal(t, 1.0, overall)
}

func TestUploadEngineCancel(t *testing.T) {
	engine, batchID := newUploadEngine(t, "a1", "a2", "a3")
	require.NoError(t, engine.BeginUpload(batchID, "a1"))
	require.NoError(t, engine.BeginUpload(batchID, "a2"))
	require.NoError(t, engine.Complete(batchID, "a2", "u2"))

	require.NoError(t, engine.Cancel(batchID, "a1"))
	require.NoError(t, engine.Cancel(batchID, "a1"))

	err := engine.ReportProgress(batchID, "a1", 0.9)
	assert.True(t, errs.Is(err, errs.ErrInvalidTransition))

	require.NoError(t, engine.BeginUpload(batchID, "a3"))
	cancelled, err := engine.CancelAll(batchID)
	require.NoError(t, err)
	assert.Equal(t, []string{"a3"}, cancelled)

	view, err := engine.View(batchID)
	require.NoError(t, err)
	assert.True(t, view.Settled)
	assert.Equal(t, upload.Summary{Total: 3, Completed: 1, Cancelled: 2}, view.Summary)
}

func TestUploadEngineRemoveAsset(t *testing.T) {
	engine, batchID := newUploadEngine(t, "a1", "a2")
	require.NoError(t, engine.BeginUpload(batchID, "a1"))

	_, err := engine.RemoveAsset(batchID, 0)
	assert.True(t, errs.Is(err, errs.ErrInvalidTransition))

	_, err = engine.RemoveAsset(batchID, 5)
	assert.True(t, errs.Is(err, errs.ErrValidation))

	removed, err := engine.RemoveAsset(batchID, 1)
	require.NoError(t, err)
	assert.Equal(t, "a2", removed)

	tv, err := engine.AssetAt(batchID, 0)
	require.NoError(t, err)
	assert.Equal(t, "a1", tv.AssetID)
}

func TestUploadEngineSupersede(t *testing.T) {
	engine, first := newUploadEngine(t, "a1", "a2")
	require.NoError(t, engine.BeginUpload(first, "a1"))
	require.NoError(t, engine.Complete(first, "a1", "u1"))
	require.NoError(t, engine.BeginUpload(first, "a2"))

	second, err := engine.StartBatch(assetRefs("b1"))
	require.NoError(t, err)
	require.NotEqual(t, first, second)

	err = engine.ReportProgress(first, "a2", 0.5)
	assert.True(t, errs.Is(err, errs.ErrBatchSuperseded))
	_, err = engine.View(first)
	assert.True(t, errs.Is(err, errs.ErrBatchSuperseded))

	view, err := engine.View(second)
	require.NoError(t, err)
	require.Len(t, view.Trackers, 1)
	require.Len(t, view.Retained, 1)
	assert.Equal(t, "a1", view.Retained[0].AssetID)
	assert.Equal(t, "u1", view.Retained[0].Location)

	_, err = engine.View(uuid.New())
	assert.True(t, errs.Is(err, errs.ErrSessionNotFound))

	_, err = engine.StartBatch(nil)
	assert.True(t, errs.Is(err, errs.ErrValidation))
}

func TestUploadEngineDiscard(t *testing.T) {
	engine, batchID := newUploadEngine(t, "a1", "a2")
	require.NoError(t, engine.BeginUpload(batchID, "a2"))

	discarded, inFlight := engine.Discard()
	assert.Equal(t, batchID, discarded)
	assert.Equal(t, []string{"a2"}, inFlight)

	_, err := engine.View(batchID)
	assert.True(t, errs.Is(err, errs.ErrBatchSuperseded))

	discarded, inFlight = engine.Discard()
	assert.Equal(t, uuid.Nil, discarded)
	assert.Empty(t, inFlight)
}
