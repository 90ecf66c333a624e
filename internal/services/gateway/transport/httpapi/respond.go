package httpapi

import (
	"encoding/json"
	stderrors "errors"
	"io"
	"net/http"

	"go.uber.org/zap"

	apperrors "github.com/gleb-syrov/bamboolead/internal/platform/errors"
)

// writeJSON writes a JSON response with the provided status code.
func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

// writeJSONError writes {"error": message}.
func writeJSONError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}

func writeText(w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(status)
	_, _ = io.WriteString(w, body)
}

// writeFailure answers a failed operation. Errors raised by the gateway
// itself (bad input, rejected commands, undecodable replies) carry their own
// status; everything else is a backend failure handled by surface.
func (h *Handler) writeFailure(w http.ResponseWriter, r *http.Request, surface apperrors.Surface, err error) {
	var gatewayErr *apperrors.Error
	if stderrors.As(err, &gatewayErr) {
		if gatewayErr.Cause != nil {
			h.logger.Warn("backend reply rejected",
				zap.String("route", routePattern(r)),
				zap.String("code", string(gatewayErr.Code)),
				zap.String("message", gatewayErr.Message),
				zap.NamedError("cause", gatewayErr.Cause),
				zap.String("request_id", requestIDOf(r)),
			)
		}
		writeGatewayError(w, gatewayErr)
		return
	}

	outcome := surface.Resolve(err)
	h.logger.Warn("backend call failed",
		zap.String("route", routePattern(r)),
		zap.Stringer("surface", surface),
		zap.Stringer("grpc_code", outcome.Failure.GRPCCode),
		zap.String("code", string(outcome.Failure.Code)),
		zap.String("reason", outcome.Failure.Reason),
		zap.String("message", outcome.Failure.Message),
		zap.String("request_id", requestIDOf(r)),
	)
	switch surface {
	case apperrors.SurfaceClientMessage:
		writeText(w, outcome.Status, outcome.Body)
	default:
		writeJSONError(w, outcome.Status, outcome.Body)
	}
}

// writeGatewayError answers with the status of err's code.
func writeGatewayError(w http.ResponseWriter, err *apperrors.Error) {
	writeJSONError(w, err.Code.HTTPStatus(), err.Message)
}

func badRequest(w http.ResponseWriter, err error) {
	writeJSONError(w, http.StatusBadRequest, err.Error())
}
