package api

import (
	"io"
	"net/http"

	reqdto "brrow-engine/internal/handler/dto/request"
	resdto "brrow-engine/internal/handler/dto/response"
	"brrow-engine/internal/handler/httperr"
	"brrow-engine/internal/handler/middleware"
	"brrow-engine/internal/pkg/errs"
	"brrow-engine/internal/usecase"

	"github.com/gin-gonic/gin"
)

type CountdownHandler struct {
	countdowns usecase.CountdownSessions
}

func NewCountdownHandler(countdowns usecase.CountdownSessions) *CountdownHandler {
	return &CountdownHandler{countdowns: countdowns}
}

// @Summary Start countdown
// @Description Start ticking toward an ISO-8601 deadline.
// @Tags countdowns
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.StartCountdownRequest true "Deadline and purpose"
// @Success 201 {object} resdto.CountdownResponse
// @Failure 400 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /countdowns [post]
func (h *CountdownHandler) Start(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errs.New("missing user"), "Unauthorized", nil)
		return
	}
	var req reqdto.StartCountdownRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	view, err := h.countdowns.Start(c.Request.Context(), userID, req.Deadline, req.GetPurpose())
	if err != nil {
		httperr.Abort(c, err, nil)
		return
	}
	c.Header("Location", "/api/countdowns/"+view.SessionID.String())
	c.JSON(http.StatusCreated, resdto.FromCountdownView(view))
}

// @Summary Get countdown
// @Tags countdowns
// @Produce json
// @Security BearerAuth
// @Param id path string true "Countdown ID"
// @Success 200 {object} resdto.CountdownResponse
// @Failure 404 {object} httperr.Response
// @Router /countdowns/{id} [get]
func (h *CountdownHandler) Get(c *gin.Context) {
	userID, id, ok := sessionParams(c)
	if !ok {
		return
	}
	view, err := h.countdowns.Get(c.Request.Context(), userID, id)
	if err != nil {
		httperr.Abort(c, err, nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromCountdownView(view))
}

// @Summary Stream countdown
// @Description Server-sent events, one "tick" event per interval, starting with the latest value. The stream ends when the countdown is stopped or the client disconnects.
// @Tags countdowns
// @Produce text/event-stream
// @Security BearerAuth
// @Param id path string true "Countdown ID"
// @Success 200 {object} resdto.RemainingResponse
// @Failure 404 {object} httperr.Response
// @Router /countdowns/{id}/stream [get]
func (h *CountdownHandler) Stream(c *gin.Context) {
	userID, id, ok := sessionParams(c)
	if !ok {
		return
	}
	ticks, cancel, err := h.countdowns.Subscribe(c.Request.Context(), userID, id)
	if err != nil {
		httperr.Abort(c, err, nil)
		return
	}
	defer cancel()

	c.Header("Cache-Control", "no-cache")
	c.Header("X-Accel-Buffering", "no")
	done := c.Request.Context().Done()
	c.Stream(func(w io.Writer) bool {
		select {
		case <-done:
			return false
		case r, open := <-ticks:
			if !open {
				c.SSEvent("stopped", gin.H{"sessionId": id.String()})
				return false
			}
			c.SSEvent("tick", resdto.FromRemaining(r))
			return true
		}
	})
}

// @Summary Stop countdown
// @Tags countdowns
// @Security BearerAuth
// @Param id path string true "Countdown ID"
// @Success 204 "No Content"
// @Failure 404 {object} httperr.Response
// @Router /countdowns/{id} [delete]
func (h *CountdownHandler) Stop(c *gin.Context) {
	userID, id, ok := sessionParams(c)
	if !ok {
		return
	}
	if err := h.countdowns.Stop(c.Request.Context(), userID, id); err != nil {
		httperr.Abort(c, err, nil)
		return
	}
	c.Status(http.StatusNoContent)
}
