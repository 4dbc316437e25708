//go:build unit

package upload_test

import (
	"testing"
	"time"

	"brrow-engine/internal/domain/upload"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBatch(t *testing.T, ids ...string) *upload.Batch {
	t.Helper()
	refs := make([]upload.AssetRef, 0, len(ids))
	for _, id := range ids {
		refs = append(refs, upload.AssetRef{ID: id, Name: id + ".jpg"})
	}
	b, err := upload.NewBatch(uuid.New(), refs, time.Now())
	require.NoError(t, err)
	return b
}

func tracker(t *testing.T, b *upload.Batch, id string) *upload.Tracker {
	t.Helper()
	tr, err := b.Tracker(id)
	require.NoError(t, err)
	return tr
}

func TestNewBatch(t *testing.T) {
	b := newBatch(t, "a1", "a2", "a3")
	require.Equal(t, 3, b.Len())

	ids := make([]string, 0, 3)
	for _, tr := range b.Trackers() {
		ids = append(ids, tr.AssetID())
		assert.Equal(t, upload.StatusPending, tr.Status())
	}
	assert.Equal(t, []string{"a1", "a2", "a3"}, ids)

	_, err := upload.NewBatch(uuid.New(), nil, time.Now())
	assert.ErrorIs(t, err, upload.ErrEmptyBatch)

	_, err = upload.NewBatch(uuid.New(), []upload.AssetRef{{ID: "x"}, {ID: "x"}}, time.Now())
	assert.ErrorIs(t, err, upload.ErrDuplicateAsset)

	_, err = b.Tracker("missing")
	assert.ErrorIs(t, err, upload.ErrAssetNotFound)
}

func TestBatchOverallProgress(t *testing.T) {
	t.Run("mixed outcome batch", func(t *testing.T) {
		b := newBatch(t, "a1", "a2", "a3")
		for _, tr := range b.Trackers() {
			require.NoError(t, tr.Begin())
		}

		require.NoError(t, tracker(t, b, "a1").ReportProgress(0.5))
		require.NoError(t, tracker(t, b, "a2").Complete(""))
		require.NoError(t, tracker(t, b, "a3").Fail("network"))

		assert.InDelta(t, 0.5, b.OverallProgress(), 1e-9)
		assert.False(t, b.Settled())
		assert.Equal(t, upload.Summary{Total: 3, Uploading: 1, Completed: 1, Failed: 1}, b.Summary())
	})

	t.Run("reaches one only when all completed", func(t *testing.T) {
		b := newBatch(t, "a1", "a2")
		assert.Zero(t, b.OverallProgress())

		for _, tr := range b.Trackers() {
			require.NoError(t, tr.Begin())
			require.NoError(t, tr.ReportProgress(1.0))
		}
		assert.Less(t, b.OverallProgress(), 1.0)
		assert.Greater(t, b.OverallProgress(), 0.999)

		require.NoError(t, tracker(t, b, "a1").Complete(""))
		assert.Less(t, b.OverallProgress(), 1.0)

		require.NoError(t, tracker(t, b, "a2").Complete(""))
		assert.Equal(t, 1.0, b.OverallProgress())
		assert.True(t, b.Settled())
	})

	t.Run("failed and cancelled count toward the denominator", func(t *testing.T) {
		b := newBatch(t, "a1", "a2", "a3", "a4")
		require.NoError(t, tracker(t, b, "a1").Begin())
		require.NoError(t, tracker(t, b, "a1").Complete(""))
		require.NoError(t, tracker(t, b, "a2").Cancel())
		require.NoError(t, tracker(t, b, "a3").Fail("too large"))
		require.NoError(t, tracker(t, b, "a4").Cancel())

		assert.InDelta(t, 0.25, b.OverallProgress(), 1e-9)
		assert.True(t, b.Settled())
	})

	t.Run("always within bounds", func(t *testing.T) {
		b := newBatch(t, "a1", "a2", "a3")
		steps := []func(){
			func() { _ = tracker(t, b, "a1").Begin() },
			func() { _ = tracker(t, b, "a1").ReportProgress(0.4) },
			func() { _ = tracker(t, b, "a2").Begin() },
			func() { _ = tracker(t, b, "a2").ReportProgress(1.0) },
			func() { _ = tracker(t, b, "a1").ReportProgress(0.9) },
			func() { _ = tracker(t, b, "a3").Cancel() },
			func() { _ = tracker(t, b, "a2").Complete("") },
			func() { _ = tracker(t, b, "a1").Complete("") },
		}
		for _, step := range steps {
			step()
			p := b.OverallProgress()
			assert.GreaterOrEqual(t, p, 0.0)
			assert.LessOrEqual(t, p, 1.0)
			assert.NotEqual(t, 1.0, p, "a cancelled asset keeps the batch below one")
		}
	})
}

func TestBatchRemove(t *testing.T) {
	b := newBatch(t, "a1", "a2", "a3")
	require.NoError(t, tracker(t, b, "a2").Begin())

	_, err := b.Remove(1)
	assert.ErrorIs(t, err, upload.ErrAssetUploading)

	_, err = b.Remove(3)
	assert.ErrorIs(t, err, upload.ErrIndexOutOfRange)

	removed, err := b.Remove(0)
	require.NoError(t, err)
	assert.Equal(t, "a1", removed.AssetID())
	assert.Equal(t, 2, b.Len())

	require.NoError(t, tracker(t, b, "a2").Cancel())
	removed, err = b.Remove(0)
	require.NoError(t, err)
	assert.Equal(t, "a2", removed.AssetID())
	assert.Equal(t, "a3", b.Trackers()[0].AssetID())

	_, err = b.Remove(0)
	require.NoError(t, err)
	assert.Zero(t, b.Len())
	assert.Zero(t, b.OverallProgress())
	assert.True(t, b.Settled())
}

func TestBatchCancelAll(t *testing.T) {
	b := newBatch(t, "a1", "a2", "a3", "a4")
	require.NoError(t, tracker(t, b, "a1").Begin())
	require.NoError(t, tracker(t, b, "a1").Complete(""))
	require.NoError(t, tracker(t, b, "a2").Begin())
	require.NoError(t, tracker(t, b, "a3").Begin())

	inFlight := b.CancelAll()
	assert.ElementsMatch(t, []string{"a2", "a3"}, inFlight)

	assert.Equal(t, upload.StatusCompleted, tracker(t, b, "a1").Status())
	for _, id := range []string{"a2", "a3", "a4"} {
		assert.Equal(t, upload.StatusCancelled, tracker(t, b, id).Status())
	}
	assert.Len(t, b.Completed(), 1)
	assert.Empty(t, b.CancelAll())
}
