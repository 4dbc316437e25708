package response

import (
	"brrow-engine/internal/domain/countdown"
	"brrow-engine/internal/usecase"
)

type RemainingResponse struct {
	Days     int    `json:"days"`
	Hours    int    `json:"hours"`
	Minutes  int    `json:"minutes"`
	Seconds  int64  `json:"seconds"`
	Expired  bool   `json:"expired"`
	Urgent   bool   `json:"urgent"`
	DaysLeft int    `json:"daysLeft"`
	Display  string `json:"display"`
}

func FromRemaining(r countdown.Remaining) RemainingResponse {
	return RemainingResponse{
		Days:     r.Days,
		Hours:    r.Hours,
		Minutes:  r.Minutes,
		Seconds:  r.Seconds,
		Expired:  r.Expired,
		Urgent:   r.Urgent(),
		DaysLeft: r.DaysLeft(),
		Display:  r.Display(),
	}
}

type CountdownResponse struct {
	SessionID string            `json:"sessionId"`
	Deadline  int64             `json:"deadline"`
	Purpose   string            `json:"purpose"`
	Running   bool              `json:"running"`
	Remaining RemainingResponse `json:"remaining"`
}

func FromCountdownView(v usecase.CountdownView) *CountdownResponse {
	return &CountdownResponse{
		SessionID: v.SessionID.String(),
		Deadline:  v.Deadline.Unix(),
		Purpose:   v.Purpose.String(),
		Running:   v.Running,
		Remaining: FromRemaining(v.Remaining),
	}
}
