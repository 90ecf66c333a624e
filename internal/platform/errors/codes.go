// Package errors classifies gateway failures and decides how each one is
// surfaced to HTTP callers.
package errors

import (
	"net/http"

	"google.golang.org/grpc/codes"
)

// Code is a machine-readable error code.
type Code string

const (
	// Caller input errors
	CodeInvalidArgument Code = "INVALID_ARGUMENT"
	CodeUnauthenticated Code = "UNAUTHENTICATED"

	// CodeNotFound also answers routes the gateway does not serve.
	CodeNotFound Code = "NOT_FOUND"

	// Backend outcomes. Only CodeCommandRejected and CodeBackendFailure are
	// raised as gateway errors; the rest classify backend statuses for logs.
	CodeCommandRejected    Code = "COMMAND_REJECTED"
	CodeBackendUnavailable Code = "BACKEND_UNAVAILABLE"
	CodeBackendFailure     Code = "BACKEND_FAILURE"
)

// HTTPStatus maps the codes of gateway-raised errors to HTTP status codes.
func (c Code) HTTPStatus() int {
	switch c {
	case CodeInvalidArgument, CodeCommandRejected:
		return http.StatusBadRequest
	case CodeUnauthenticated:
		return http.StatusUnauthorized
	case CodeNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// FromGRPCCode classifies a backend status code. The result is logged with
// every backend failure.
func FromGRPCCode(code codes.Code) Code {
	switch code {
	case codes.OK:
		return ""
	case codes.InvalidArgument, codes.FailedPrecondition, codes.OutOfRange:
		return CodeInvalidArgument
	case codes.NotFound:
		return CodeNotFound
	case codes.Unauthenticated:
		return CodeUnauthenticated
	case codes.Unavailable, codes.DeadlineExceeded:
		return CodeBackendUnavailable
	default:
		return CodeBackendFailure
	}
}
