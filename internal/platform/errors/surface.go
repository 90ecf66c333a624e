package errors

import "net/http"

// Surface is the policy a call site chooses for exposing a failure.
type Surface int

const (
	// SurfaceServerError hides the failure behind a generic 500.
	SurfaceServerError Surface = iota
	// SurfaceClientMessage answers 400 with the raw backend message as body.
	// The message is whatever the backend wrote, so it may leak internals.
	SurfaceClientMessage
)

// genericServerMessage is the only body SurfaceServerError ever exposes.
const genericServerMessage = "internal server error"

// Outcome is the HTTP-facing result of applying a Surface to an error.
type Outcome struct {
	Status int
	// Body is the caller-visible text.
	Body string
	// Failure is what the backend reported, for logging.
	Failure RPCFailure
}

// Resolve applies the surface policy to err.
func (s Surface) Resolve(err error) Outcome {
	failure := Describe(err)
	switch s {
	case SurfaceClientMessage:
		return Outcome{Status: http.StatusBadRequest, Body: failure.Message, Failure: failure}
	default:
		return Outcome{Status: http.StatusInternalServerError, Body: genericServerMessage, Failure: failure}
	}
}

// String names the surface for logs.
func (s Surface) String() string {
	switch s {
	case SurfaceClientMessage:
		return "client_message"
	default:
		return "server_error"
	}
}
