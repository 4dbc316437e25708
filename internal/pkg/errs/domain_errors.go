package errs

import "errors"

// Sentinel categories for the usecase layer. Apply them with Mark and test
// them with Is.
var (
	// Session errors
	ErrSessionNotFound = errors.New("session not found")

	// Validation errors never reach the network
	ErrValidation        = errors.New("validation failed")
	ErrInvalidTransition = errors.New("invalid state transition")

	// Offer submission errors
	ErrTransport             = errors.New("transport failure")
	ErrServerRejected        = errors.New("server rejected request")
	ErrPaymentMethodDeclined = errors.New("payment method declined")
	ErrSubmissionCancelled   = errors.New("submission cancelled")
	ErrListingUnavailable    = errors.New("listing unavailable")

	// Payment sheet outcomes
	ErrPaymentCancelled = errors.New("payment cancelled")
	ErrPaymentFailed    = errors.New("payment failed")

	// Upload errors
	ErrUploadFailure   = errors.New("upload failed")
	ErrUploadCancelled = errors.New("upload cancelled")
	ErrBatchSuperseded = errors.New("upload batch superseded")
	ErrAssetNotFound   = errors.New("asset not found")

	// Operation errors
	ErrDatabaseOperationFailed = errors.New("database operation failed")
)
