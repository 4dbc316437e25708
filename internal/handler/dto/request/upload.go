package request

import (
	"brrow-engine/internal/domain/upload"
)

type AssetRequest struct {
	ID   string `json:"id" binding:"required"`
	Name string `json:"name" binding:"max=255"`
}

type StartBatchRequest struct {
	Assets []AssetRequest `json:"assets" binding:"required,min=1,dive"`
}

func (r *StartBatchRequest) ToDomain() []upload.AssetRef {
	refs := make([]upload.AssetRef, len(r.Assets))
	for i, a := range r.Assets {
		refs[i] = upload.AssetRef{ID: a.ID, Name: a.Name}
	}
	return refs
}

type ProgressRequest struct {
	Progress *float64 `json:"progress" binding:"required"`
}

type CompleteRequest struct {
	Location string `json:"location"`
}

type FailRequest struct {
	Reason string `json:"reason" binding:"required,max=500"`
}
