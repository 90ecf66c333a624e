package service

import (
	"github.com/gleb-syrov/bamboolead/internal/services/gateway/backend"

	apperrors "github.com/gleb-syrov/bamboolead/internal/platform/errors"
)

// CommandResult is the acknowledgment of an accepted integration command.
type CommandResult struct {
	ID      int64  `json:"id,omitempty"`
	Message string `json:"message,omitempty"`
}

// commandResult turns a backend acknowledgment into a result or a
// CodeCommandRejected error carrying the backend message.
func commandResult(resp *backend.CommandResponse) (CommandResult, error) {
	if resp == nil {
		return CommandResult{}, apperrors.New(apperrors.CodeBackendFailure, "empty command response")
	}
	if !resp.Success {
		message := resp.Message
		if message == "" {
			message = "command rejected"
		}
		return CommandResult{}, apperrors.New(apperrors.CodeCommandRejected, message)
	}
	return CommandResult{ID: resp.ID, Message: resp.Message}, nil
}
