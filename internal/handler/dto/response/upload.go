package response

import (
	"brrow-engine/internal/usecase"

	"github.com/jinzhu/copier"
)

type TrackerResponse struct {
	AssetID  string  `json:"assetId"`
	Name     string  `json:"name"`
	Status   string  `json:"status"`
	Progress float64 `json:"progress"`
	Reason   string  `json:"reason,omitempty"`
	Location string  `json:"location,omitempty"`
}

type SummaryResponse struct {
	Total     int `json:"total"`
	Pending   int `json:"pending"`
	Uploading int `json:"uploading"`
	Completed int `json:"completed"`
	Failed    int `json:"failed"`
	Cancelled int `json:"cancelled"`
}

type BatchResponse struct {
	BatchID         string            `json:"batchId"`
	Trackers        []TrackerResponse `json:"trackers"`
	OverallProgress float64           `json:"overallProgress"`
	Summary         SummaryResponse   `json:"summary"`
	Settled         bool              `json:"settled"`
	CreatedAt       int64             `json:"createdAt"`
	Retained        []TrackerResponse `json:"retained,omitempty"`
}

func FromBatchView(v usecase.BatchView) (*BatchResponse, error) {
	res := &BatchResponse{
		BatchID:         v.BatchID.String(),
		Trackers:        []TrackerResponse{},
		OverallProgress: v.OverallProgress,
		Settled:         v.Settled,
		CreatedAt:       v.CreatedAt.Unix(),
	}
	if err := copier.Copy(&res.Trackers, v.Trackers); err != nil {
		return nil, err
	}
	if err := copier.Copy(&res.Summary, v.Summary); err != nil {
		return nil, err
	}
	if len(v.Retained) > 0 {
		if err := copier.Copy(&res.Retained, v.Retained); err != nil {
			return nil, err
		}
	}
	return res, nil
}

type CancelAllResponse struct {
	Cancelled []string       `json:"cancelled"`
	Batch     *BatchResponse `json:"batch"`
}
