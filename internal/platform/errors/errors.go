package errors

import (
	stderrors "errors"

	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// Error is an error raised by the gateway itself rather than a backend.
type Error struct {
	Code    Code   // Machine-readable error code
	Message string // Caller-facing message
	Cause   error  // Wrapped underlying error, logged but never shown
}

// Error implements the error interface.
func (e *Error) Error() string {
	return e.Message
}

// Unwrap returns the underlying cause for error chain traversal.
func (e *Error) Unwrap() error {
	return e.Cause
}

// New creates a simple gateway error with a code and message.
func New(code Code, message string) *Error {
	return &Error{
		Code:    code,
		Message: message,
	}
}

// Wrap creates a gateway error that wraps an underlying cause.
func Wrap(code Code, message string, cause error) *Error {
	return &Error{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

// RPCFailure describes a failed backend call.
type RPCFailure struct {
	GRPCCode codes.Code
	Code     Code
	// Message is the raw status message the backend reported.
	Message string
	// Reason and Domain come from an attached errdetails.ErrorInfo, if any.
	Reason string
	Domain string
}

// Describe extracts what the backend reported about err. Errors that are not
// gRPC statuses are described as codes.Unknown with err.Error() as message.
func Describe(err error) RPCFailure {
	if err == nil {
		return RPCFailure{GRPCCode: codes.OK}
	}
	var gatewayErr *Error
	if stderrors.As(err, &gatewayErr) {
		return RPCFailure{
			GRPCCode: codes.Unknown,
			Code:     gatewayErr.Code,
			Message:  gatewayErr.Message,
		}
	}

	st := status.Convert(err)
	failure := RPCFailure{
		GRPCCode: st.Code(),
		Code:     FromGRPCCode(st.Code()),
		Message:  st.Message(),
	}
	for _, detail := range st.Details() {
		if info, ok := detail.(*errdetails.ErrorInfo); ok {
			failure.Reason = info.GetReason()
			failure.Domain = info.GetDomain()
			break
		}
	}
	return failure
}
