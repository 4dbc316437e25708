package upload

import (
	"errors"
	"math"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyBatch      = errors.New("batch needs at least one asset")
	ErrDuplicateAsset  = errors.New("asset id appears more than once in batch")
	ErrAssetNotFound   = errors.New("asset not found in batch")
	ErrIndexOutOfRange = errors.New("asset index out of range")
	ErrAssetUploading  = errors.New("asset is uploading; cancel it before removing")
	ErrBatchSuperseded = errors.New("batch has been superseded")
)

// almostDone caps a batch that is not fully completed so it never reads as
// done while an upload is still open.
var almostDone = math.Nextafter(1, 0)

type Batch struct {
	id        uuid.UUID
	trackers  []*Tracker
	createdAt time.Time
}

// NewBatch creates one pending tracker per asset in selection order.
func NewBatch(id uuid.UUID, assets []AssetRef, now time.Time) (*Batch, error) {
	if len(assets) == 0 {
		return nil, ErrEmptyBatch
	}

	seen := make(map[string]struct{}, len(assets))
	trackers := make([]*Tracker, 0, len(assets))
	for _, ref := range assets {
		tr, err := NewTracker(ref)
		if err != nil {
			return nil, err
		}
		if _, dup := seen[tr.AssetID()]; dup {
			return nil, ErrDuplicateAsset
		}
		seen[tr.AssetID()] = struct{}{}
		trackers = append(trackers, tr)
	}

	return &Batch{id: id, trackers: trackers, createdAt: now}, nil
}

func (b *Batch) Tracker(assetID string) (*Tracker, error) {
	for _, tr := range b.trackers {
		if tr.AssetID() == assetID {
			return tr, nil
		}
	}
	return nil, ErrAssetNotFound
}

// Trackers returns the trackers in selection order. The slice is a copy; the
// trackers are not.
func (b *Batch) Trackers() []*Tracker {
	out := make([]*Tracker, len(b.trackers))
	copy(out, b.trackers)
	return out
}

// Remove drops the tracker at index. An uploading tracker must be cancelled
// first.
func (b *Batch) Remove(index int) (*Tracker, error) {
	if index < 0 || index >= len(b.trackers) {
		return nil, ErrIndexOutOfRange
	}
	tr := b.trackers[index]
	if tr.Status() == StatusUploading {
		return nil, ErrAssetUploading
	}
	b.trackers = append(b.trackers[:index], b.trackers[index+1:]...)
	return tr, nil
}

// CancelAll cancels every non-terminal tracker and returns the ids of those
// that were uploading, which are the ones with a live transport.
func (b *Batch) CancelAll() []string {
	var wasUploading []string
	for _, tr := range b.trackers {
		if tr.Status().IsTerminal() {
			continue
		}
		if tr.Status() == StatusUploading {
			wasUploading = append(wasUploading, tr.AssetID())
		}
		_ = tr.Cancel()
	}
	return wasUploading
}

// OverallProgress averages effective progress over every tracker, failed and
// cancelled ones included. It reaches 1 only when every tracker is completed.
// An empty batch reports 0.
func (b *Batch) OverallProgress() float64 {
	if len(b.trackers) == 0 {
		return 0
	}

	var sum float64
	allCompleted := true
	for _, tr := range b.trackers {
		sum += tr.EffectiveProgress()
		if tr.Status() != StatusCompleted {
			allCompleted = false
		}
	}
	if allCompleted {
		return 1
	}

	overall := sum / float64(len(b.trackers))
	if overall > almostDone {
		return almostDone
	}
	if overall < 0 {
		return 0
	}
	return overall
}

func (b *Batch) Completed() []*Tracker {
	var out []*Tracker
	for _, tr := range b.trackers {
		if tr.Status() == StatusCompleted {
			out = append(out, tr)
		}
	}
	return out
}

func (b *Batch) Summary() Summary {
	s := Summary{Total: len(b.trackers)}
	for _, tr := range b.trackers {
		switch tr.Status() {
		case StatusPending:
			s.Pending++
		case StatusUploading:
			s.Uploading++
		case StatusCompleted:
			s.Completed++
		case StatusFailed:
			s.Failed++
		case StatusCancelled:
			s.Cancelled++
		}
	}
	return s
}

// Settled reports whether every tracker reached a terminal state.
func (b *Batch) Settled() bool {
	for _, tr := range b.trackers {
		if !tr.Status().IsTerminal() {
			return false
		}
	}
	return true
}

func (b *Batch) ID() uuid.UUID        { return b.id }
func (b *Batch) CreatedAt() time.Time { return b.createdAt }
func (b *Batch) Len() int             { return len(b.trackers) }
