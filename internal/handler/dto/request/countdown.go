package request

import "brrow-engine/internal/domain/countdown"

type StartCountdownRequest struct {
	Deadline string `json:"deadline" binding:"required"`
	Purpose  string `json:"purpose" binding:"required"`
}

func (r *StartCountdownRequest) GetPurpose() countdown.Purpose {
	return countdown.Purpose(r.Purpose)
}
