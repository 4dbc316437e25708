package httperr

import (
	"net/http"

	"brrow-engine/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

type Response struct {
	Status int `json:"-"`
	Error  struct {
		Message string `json:"message"`
	} `json:"error"`
	Detail any `json:"detail,omitempty"`
}

// preserves original error for future monitoring
func AbortWithError(c *gin.Context, status int, err error, msg string, detail any) {
	if err == nil {
		panic("AbortWithError: err cannot be nil")
	}

	resp := Response{Status: status}
	resp.Error.Message = msg
	resp.Detail = detail

	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}

// Abort answers with the status for err's category and the user-facing hint
// attached to it, if any.
func Abort(c *gin.Context, err error, detail any) {
	status, fallback := Classify(err)
	msg := errs.Hint(err)
	if msg == "" {
		msg = fallback
	}
	AbortWithError(c, status, err, msg, detail)
}

var statusTable = []struct {
	sentinel error
	status   int
	message  string
}{
	{errs.ErrSessionNotFound, http.StatusNotFound, "Session not found"},
	{errs.ErrAssetNotFound, http.StatusNotFound, "Asset not found"},
	{errs.ErrListingUnavailable, http.StatusNotFound, "Listing unavailable"},
	{errs.ErrValidation, http.StatusUnprocessableEntity, "Validation failed"},
	{errs.ErrInvalidTransition, http.StatusConflict, "Operation not allowed in the current state"},
	{errs.ErrBatchSuperseded, http.StatusConflict, "Upload batch was replaced"},
	{errs.ErrPaymentMethodDeclined, http.StatusPaymentRequired, "Payment method declined"},
	{errs.ErrPaymentFailed, http.StatusPaymentRequired, "Payment failed"},
	{errs.ErrServerRejected, http.StatusBadGateway, "Failed to send offer"},
	{errs.ErrUploadFailure, http.StatusBadGateway, "Upload failed"},
	{errs.ErrTransport, http.StatusServiceUnavailable, "Network error"},
	{errs.ErrDatabaseOperationFailed, http.StatusInternalServerError, "Internal server error"},
}

// Classify maps a usecase error to its HTTP status and default message.
func Classify(err error) (int, string) {
	for _, row := range statusTable {
		if errs.Is(err, row.sentinel) {
			return row.status, row.message
		}
	}
	return http.StatusInternalServerError, "Internal server error"
}
