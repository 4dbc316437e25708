package infra

import (
	"context"
	"errors"
	"log/slog"

	"brrow-engine/internal/pkg/errs"
)

type ErrorKind string

// Error is what every infra adapter returns. Status and Message carry the
// upstream HTTP status and its error text when a response was read.
type Error struct {
	Kind    ErrorKind
	Status  int
	Message string
	msg     string
	err     error // wrapped low-level error
}

func (e Error) Error() string {
	if e.err != nil {
		return string(e.Kind) + ": " + e.msg + ": " + e.err.Error()
	}
	return string(e.Kind) + ": " + e.msg
}

func (e Error) Unwrap() error {
	return e.err
}

func WrapErr(slogger *slog.Logger, kind ErrorKind, msg string, err error) error {
	slogger.Log(context.Background(), levelFor(kind), "Infra error: "+msg,
		slog.String("kind", string(kind)),
	)

	if err != nil {
		err = errs.Wrap(err, msg)
	}

	return Error{Kind: kind, msg: msg, err: err}
}

// ResponseErr records a non-2xx upstream response.
func ResponseErr(slogger *slog.Logger, kind ErrorKind, status int, message string) error {
	slogger.Log(context.Background(), levelFor(kind), "Upstream rejected request",
		slog.String("kind", string(kind)),
		slog.Int("status", status),
		slog.String("message", message),
	)

	return Error{Kind: kind, Status: status, Message: message, msg: "upstream responded with an error"}
}

func IsKind(err error, kind ErrorKind) bool {
	var e Error
	if errors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}

// UpstreamMessage returns the error text the backend sent, if any.
func UpstreamMessage(err error) string {
	var e Error
	if errors.As(err, &e) {
		return e.Message
	}
	return ""
}

func levelFor(kind ErrorKind) slog.Level {
	switch kind {
	case KindCanceled:
		return slog.LevelDebug
	case KindPaymentDeclined, KindRejected, KindNotFound:
		return slog.LevelInfo
	case KindTransport, KindMalformedResponse:
		return slog.LevelWarn
	default:
		return slog.LevelError
	}
}

// Infrastructure-specific error kinds
const (
	KindNotFound          ErrorKind = "NOT_FOUND"
	KindDBFailure         ErrorKind = "DB_FAILURE"
	KindTransport         ErrorKind = "TRANSPORT"
	KindMalformedResponse ErrorKind = "MALFORMED_RESPONSE"
	KindRejected          ErrorKind = "REJECTED"
	KindPaymentDeclined   ErrorKind = "PAYMENT_DECLINED"
	KindCanceled          ErrorKind = "CANCELED"
)
