package upload

type Status string

const (
	StatusPending   Status = "pending"
	StatusUploading Status = "uploading"
	StatusCompleted Status = "completed"
	StatusFailed    Status = "failed"
	StatusCancelled Status = "cancelled"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusUploading, StatusCompleted, StatusFailed, StatusCancelled:
		return true
	default:
		return false
	}
}

// IsTerminal reports the sink states. A tracker accepts no change once it
// reaches one.
func (s Status) IsTerminal() bool {
	switch s {
	case StatusCompleted, StatusFailed, StatusCancelled:
		return true
	default:
		return false
	}
}

// AssetRef identifies one locally selected media item.
type AssetRef struct {
	ID   string
	Name string
}

// Summary counts trackers by status.
type Summary struct {
	Total     int
	Pending   int
	Uploading int
	Completed int
	Failed    int
	Cancelled int
}
