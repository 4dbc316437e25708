package api

import (
	"net/http"

	reqdto "brrow-engine/internal/handler/dto/request"
	resdto "brrow-engine/internal/handler/dto/response"
	"brrow-engine/internal/handler/httperr"
	"brrow-engine/internal/handler/middleware"
	"brrow-engine/internal/pkg/errs"
	"brrow-engine/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type OfferHandler struct {
	offers usecase.OfferSessions
}

func NewOfferHandler(offers usecase.OfferSessions) *OfferHandler {
	return &OfferHandler{offers: offers}
}

// @Summary Open offer session
// @Description Start negotiating on a listing. The opening amount is derived from the listing price.
// @Tags offers
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.OpenOfferRequest true "Open offer request"
// @Success 201 {object} resdto.OfferResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 503 {object} httperr.Response
// @Router /offers [post]
func (h *OfferHandler) Open(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errs.New("missing user"), "Unauthorized", nil)
		return
	}
	var req reqdto.OpenOfferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	view, err := h.offers.Open(c.Request.Context(), userID, req.ListingID)
	if err != nil {
		httperr.Abort(c, err, nil)
		return
	}
	c.Header("Location", "/api/offers/"+view.SessionID.String())
	c.JSON(http.StatusCreated, resdto.FromOfferView(view))
}

// @Summary Get offer session
// @Tags offers
// @Produce json
// @Security BearerAuth
// @Param id path string true "Offer session ID"
// @Success 200 {object} resdto.OfferResponse
// @Failure 404 {object} httperr.Response
// @Router /offers/{id} [get]
func (h *OfferHandler) Get(c *gin.Context) {
	userID, id, ok := sessionParams(c)
	if !ok {
		return
	}
	view, err := h.offers.Get(c.Request.Context(), userID, id)
	if err != nil {
		httperr.Abort(c, err, nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromOfferView(view))
}

// @Summary Set offer amount
// @Description Replace the amount with user-typed text. Invalid input leaves the amount unchanged.
// @Tags offers
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Offer session ID"
// @Param request body reqdto.SetAmountRequest true "Raw amount"
// @Success 200 {object} resdto.OfferResponse
// @Failure 409 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /offers/{id}/amount [put]
func (h *OfferHandler) SetAmount(c *gin.Context) {
	userID, id, ok := sessionParams(c)
	if !ok {
		return
	}
	var req reqdto.SetAmountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	h.respondEdit(c, func() (usecase.OfferView, error) {
		return h.offers.SetAmount(c.Request.Context(), userID, id, req.Raw)
	})
}

// @Summary Adjust offer amount
// @Description Add a signed delta to the amount, clamped to (0, price].
// @Tags offers
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Offer session ID"
// @Param request body reqdto.AdjustAmountRequest true "Delta"
// @Success 200 {object} resdto.OfferResponse
// @Failure 409 {object} httperr.Response
// @Router /offers/{id}/adjust [post]
func (h *OfferHandler) Adjust(c *gin.Context) {
	userID, id, ok := sessionParams(c)
	if !ok {
		return
	}
	var req reqdto.AdjustAmountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	h.respondEdit(c, func() (usecase.OfferView, error) {
		return h.offers.Adjust(c.Request.Context(), userID, id, *req.Delta)
	})
}

// @Summary Set offer message
// @Tags offers
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Offer session ID"
// @Param request body reqdto.SetMessageRequest true "Message"
// @Success 200 {object} resdto.OfferResponse
// @Failure 409 {object} httperr.Response
// @Router /offers/{id}/message [put]
func (h *OfferHandler) SetMessage(c *gin.Context) {
	userID, id, ok := sessionParams(c)
	if !ok {
		return
	}
	var req reqdto.SetMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	h.respondEdit(c, func() (usecase.OfferView, error) {
		return h.offers.SetMessage(c.Request.Context(), userID, id, req.Message)
	})
}

// @Summary Submit offer
// @Description Send the offer to the backend and return the payment authorization for the payment sheet.
// @Tags offers
// @Produce json
// @Security BearerAuth
// @Param id path string true "Offer session ID"
// @Success 200 {object} resdto.SubmitResponse
// @Success 202 {object} resdto.SubmitResponse "Submission cancelled"
// @Failure 402 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Failure 502 {object} httperr.Response
// @Failure 503 {object} httperr.Response
// @Router /offers/{id}/submit [post]
func (h *OfferHandler) Submit(c *gin.Context) {
	userID, id, ok := sessionParams(c)
	if !ok {
		return
	}
	auth, view, err := h.offers.Submit(c.Request.Context(), userID, id)
	if err != nil {
		if errs.Is(err, errs.ErrSubmissionCancelled) {
			c.JSON(http.StatusAccepted, resdto.FromSubmission(nil, view, "Submission cancelled"))
			return
		}
		httperr.Abort(c, err, viewDetail(err, view))
		return
	}
	c.JSON(http.StatusOK, resdto.FromSubmission(auth, view, ""))
}

// @Summary Resolve payment
// @Description Report what the payment sheet returned.
// @Tags offers
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Offer session ID"
// @Param request body reqdto.ResolvePaymentRequest true "Payment outcome"
// @Success 200 {object} resdto.PaymentResultResponse
// @Failure 402 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /offers/{id}/payment [post]
func (h *OfferHandler) ResolvePayment(c *gin.Context) {
	userID, id, ok := sessionParams(c)
	if !ok {
		return
	}
	var req reqdto.ResolvePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	view, err := h.offers.ResolvePayment(c.Request.Context(), userID, id, req.ToDomain())
	if err != nil {
		if errs.Is(err, errs.ErrPaymentCancelled) {
			c.JSON(http.StatusOK, resdto.PaymentResultResponse{
				Offer:     resdto.FromOfferView(view),
				Cancelled: true,
				Message:   errs.Hint(err),
			})
			return
		}
		httperr.Abort(c, err, viewDetail(err, view))
		return
	}
	c.JSON(http.StatusOK, resdto.PaymentResultResponse{Offer: resdto.FromOfferView(view)})
}

// @Summary Apply remote status
// @Description Record the seller's or backend's verdict on a sent offer.
// @Tags offers
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Offer session ID"
// @Param request body reqdto.ApplyStatusRequest true "New state"
// @Success 200 {object} resdto.OfferResponse
// @Failure 409 {object} httperr.Response
// @Router /offers/{id}/status [post]
func (h *OfferHandler) ApplyStatus(c *gin.Context) {
	userID, id, ok := sessionParams(c)
	if !ok {
		return
	}
	var req reqdto.ApplyStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	view, err := h.offers.ApplyRemoteStatus(c.Request.Context(), userID, id, req.ToDomain())
	if err != nil {
		httperr.Abort(c, err, nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromOfferView(view))
}

// @Summary List offer session events
// @Tags offers
// @Produce json
// @Security BearerAuth
// @Param id path string true "Offer session ID"
// @Success 200 {array} resdto.OfferEventResponse
// @Failure 404 {object} httperr.Response
// @Router /offers/{id}/events [get]
func (h *OfferHandler) Events(c *gin.Context) {
	userID, id, ok := sessionParams(c)
	if !ok {
		return
	}
	events, err := h.offers.Events(c.Request.Context(), userID, id)
	if err != nil {
		httperr.Abort(c, err, nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromOfferEvents(events))
}

// @Summary Close offer session
// @Description Abandon the session, cancelling any in-flight submission.
// @Tags offers
// @Security BearerAuth
// @Param id path string true "Offer session ID"
// @Success 204 "No Content"
// @Failure 404 {object} httperr.Response
// @Router /offers/{id} [delete]
func (h *OfferHandler) Close(c *gin.Context) {
	userID, id, ok := sessionParams(c)
	if !ok {
		return
	}
	if err := h.offers.Close(c.Request.Context(), userID, id); err != nil {
		httperr.Abort(c, err, nil)
		return
	}
	c.Status(http.StatusNoContent)
}

// respondEdit returns the unchanged view alongside a rejected edit so the
// client can redraw without another round trip.
func (h *OfferHandler) respondEdit(c *gin.Context, edit func() (usecase.OfferView, error)) {
	view, err := edit()
	if err != nil {
		httperr.Abort(c, err, viewDetail(err, view))
		return
	}
	c.JSON(http.StatusOK, resdto.FromOfferView(view))
}

func viewDetail(err error, view usecase.OfferView) any {
	if errs.Is(err, errs.ErrSessionNotFound) {
		return nil
	}
	return resdto.FromOfferView(view)
}

// sessionParams reads the caller and the :id path parameter, answering the
// request itself when either is missing.
func sessionParams(c *gin.Context) (string, uuid.UUID, bool) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errs.New("missing user"), "Unauthorized", nil)
		return "", uuid.Nil, false
	}
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return "", uuid.Nil, false
	}
	return userID, id, true
}
