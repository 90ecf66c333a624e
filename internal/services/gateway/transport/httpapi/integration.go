package httpapi

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/gleb-syrov/bamboolead/internal/services/gateway/backend"
	"github.com/gleb-syrov/bamboolead/internal/services/gateway/service"

	apperrors "github.com/gleb-syrov/bamboolead/internal/platform/errors"
)

const maxBodyBytes = 1 << 20

// integrationBody is the create/update payload.
type integrationBody struct {
	Name        string `json:"name" validate:"required,max=255"`
	OfferID     int64  `json:"offerId" validate:"gte=0"`
	PublisherID int64  `json:"publisherId" validate:"gte=0"`
	URL         string `json:"url" validate:"required,url"`
	Method      string `json:"method" validate:"required,oneof=GET POST"`
	Status      string `json:"status" validate:"omitempty,oneof=ACTIVE INACTIVE"`
}

func (b integrationBody) request() backend.IntegrationReq {
	return backend.IntegrationReq{
		Name:        strings.TrimSpace(b.Name),
		OfferID:     b.OfferID,
		PublisherID: b.PublisherID,
		URL:         b.URL,
		Method:      b.Method,
		Status:      b.Status,
	}
}

func (h *Handler) decodeIntegration(w http.ResponseWriter, r *http.Request) (backend.IntegrationReq, error) {
	var body integrationBody
	decoder := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&body); err != nil {
		return backend.IntegrationReq{}, fmt.Errorf("invalid json body: %w", err)
	}
	body.Method = strings.ToUpper(strings.TrimSpace(body.Method))
	body.Status = strings.ToUpper(strings.TrimSpace(body.Status))
	if err := h.validate.Struct(body); err != nil {
		return backend.IntegrationReq{}, fmt.Errorf("invalid integration: %w", err)
	}
	return body.request(), nil
}

func (h *Handler) listIntegrations(w http.ResponseWriter, r *http.Request) {
	req, err := integrationListing.parseFilter(r.URL.Query())
	if err != nil {
		badRequest(w, err)
		return
	}
	page, err := h.integrations.List(r.Context(), req)
	if err != nil {
		h.writeFailure(w, r, apperrors.SurfaceServerError, err)
		return
	}
	writeJSON(w, http.StatusOK, page)
}

func (h *Handler) getIntegration(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		badRequest(w, err)
		return
	}
	detail, err := h.integrations.Get(r.Context(), id)
	if err != nil {
		h.writeFailure(w, r, apperrors.SurfaceClientMessage, err)
		return
	}
	writeJSON(w, http.StatusOK, detail)
}

// getPlaceholders ignores the query string entirely.
func (h *Handler) getPlaceholders(w http.ResponseWriter, r *http.Request) {
	placeholders, err := h.integrations.Placeholders(r.Context())
	if err != nil {
		h.writeFailure(w, r, apperrors.SurfaceServerError, err)
		return
	}
	writeJSON(w, http.StatusOK, placeholders)
}

func (h *Handler) createIntegration(w http.ResponseWriter, r *http.Request) {
	in, err := h.decodeIntegration(w, r)
	if err != nil {
		badRequest(w, err)
		return
	}
	h.writeCommand(w, r, func() (service.CommandResult, error) {
		return h.integrations.Create(r.Context(), in)
	})
}

func (h *Handler) updateIntegration(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		badRequest(w, err)
		return
	}
	in, err := h.decodeIntegration(w, r)
	if err != nil {
		badRequest(w, err)
		return
	}
	h.writeCommand(w, r, func() (service.CommandResult, error) {
		return h.integrations.Update(r.Context(), id, in)
	})
}

func (h *Handler) changeIntegrationStatus(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		badRequest(w, err)
		return
	}
	status, err := parseStatus(r.URL.Query().Get("status"), integrationStatuses)
	if err != nil || status == nil || *status == "ALL" {
		badRequest(w, fmt.Errorf("status must be one of %s", strings.Join(integrationStatuses, ", ")))
		return
	}
	h.writeCommand(w, r, func() (service.CommandResult, error) {
		return h.integrations.ChangeStatus(r.Context(), id, *status)
	})
}

func (h *Handler) deleteIntegration(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		badRequest(w, err)
		return
	}
	h.writeCommand(w, r, func() (service.CommandResult, error) {
		return h.integrations.Delete(r.Context(), id)
	})
}

func (h *Handler) writeCommand(w http.ResponseWriter, r *http.Request, run func() (service.CommandResult, error)) {
	result, err := run()
	if err != nil {
		h.writeFailure(w, r, apperrors.SurfaceServerError, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}
