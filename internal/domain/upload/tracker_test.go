//go:build unit

package upload_test

import (
	"math"
	"testing"

	"brrow-engine/internal/domain/upload"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func uploadingTracker(t *testing.T) *upload.Tracker {
	t.Helper()
	tr, err := upload.NewTracker(upload.AssetRef{ID: "a1", Name: "front.jpg"})
	require.NoError(t, err)
	require.NoError(t, tr.Begin())
	return tr
}

func TestNewTracker(t *testing.T) {
	tr, err := upload.NewTracker(upload.AssetRef{ID: " a1 ", Name: "front.jpg"})
	require.NoError(t, err)
	assert.Equal(t, "a1", tr.AssetID())
	assert.Equal(t, upload.StatusPending, tr.Status())
	assert.Zero(t, tr.EffectiveProgress())

	_, err = upload.NewTracker(upload.AssetRef{ID: "  "})
	assert.ErrorIs(t, err, upload.ErrInvalidAssetID)
}

func TestTrackerTransitions(t *testing.T) {
	t.Run("begin only from pending", func(t *testing.T) {
		tr := uploadingTracker(t)
		assert.ErrorIs(t, tr.Begin(), upload.ErrInvalidTransition)
	})

	t.Run("complete requires uploading", func(t *testing.T) {
		tr, err := upload.NewTracker(upload.AssetRef{ID: "a1"})
		require.NoError(t, err)
		assert.ErrorIs(t, tr.Complete(""), upload.ErrInvalidTransition)
		assert.Equal(t, upload.StatusPending, tr.Status())
	})

	t.Run("complete is idempotent", func(t *testing.T) {
		tr := uploadingTracker(t)
		require.NoError(t, tr.Complete("https://cdn.example/a1.jpg"))
		require.NoError(t, tr.Complete("https://cdn.example/other.jpg"))
		assert.Equal(t, "https://cdn.example/a1.jpg", tr.Location())
		assert.Equal(t, 1.0, tr.EffectiveProgress())
	})

	t.Run("pending can fail or cancel", func(t *testing.T) {
		tr, err := upload.NewTracker(upload.AssetRef{ID: "a1"})
		require.NoError(t, err)
		require.NoError(t, tr.Cancel())
		assert.Equal(t, upload.StatusCancelled, tr.Status())

		tr2, err := upload.NewTracker(upload.AssetRef{ID: "a2"})
		require.NoError(t, err)
		require.NoError(t, tr2.Fail("file unreadable"))
		assert.Equal(t, "file unreadable", tr2.Reason())
	})

	t.Run("terminal states are sinks", func(t *testing.T) {
		terminate := map[string]func(*upload.Tracker) error{
			"completed": func(tr *upload.Tracker) error { return tr.Complete("") },
			"failed":    func(tr *upload.Tracker) error { return tr.Fail("network") },
			"cancelled": func(tr *upload.Tracker) error { return tr.Cancel() },
		}

		for name, fn := range terminate {
			t.Run(name, func(t *testing.T) {
				tr := uploadingTracker(t)
				require.NoError(t, fn(tr))
				status := tr.Status()

				assert.ErrorIs(t, tr.ReportProgress(0.9), upload.ErrAlreadyTerminal)
				assert.ErrorIs(t, tr.Begin(), upload.ErrInvalidTransition)
				_ = tr.Fail("again")
				_ = tr.Cancel()
				_ = tr.Complete("")
				assert.Equal(t, status, tr.Status())
			})
		}
	})
}

func TestTrackerProgressIsMonotonic(t *testing.T) {
	tr := uploadingTracker(t)
	reports := []float64{0.1, 0.05, 0.3, 0.3, 0.2, 1.2, -0.1, math.NaN(), 0.7, 0.65, 1.0}

	recorded := []float64{tr.Progress()}
	for _, p := range reports {
		_ = tr.ReportProgress(p)
		recorded = append(recorded, tr.Progress())
	}

	for i := 1; i < len(recorded); i++ {
		assert.GreaterOrEqual(t, recorded[i], recorded[i-1], "progress decreased at step %d", i)
	}
	assert.Equal(t, 1.0, tr.Progress())
	assert.Equal(t, upload.StatusUploading, tr.Status())

	assert.ErrorIs(t, tr.ReportProgress(0.5), upload.ErrProgressRegression)
	assert.ErrorIs(t, tr.ReportProgress(2), upload.ErrProgressOutOfRange)

	require.NoError(t, tr.Fail("network"))
	assert.ErrorIs(t, tr.ReportProgress(1.0), upload.ErrAlreadyTerminal)
}
