package httpapi

import (
	"net/http"

	"github.com/gleb-syrov/bamboolead/internal/services/gateway/role"

	apperrors "github.com/gleb-syrov/bamboolead/internal/platform/errors"
)

func (h *Handler) listClickTransactions(w http.ResponseWriter, r *http.Request) {
	req, err := clickListing.parseFilter(r.URL.Query())
	if err != nil {
		badRequest(w, err)
		return
	}
	page, err := h.clicks.List(r.Context(), role.FromContext(r.Context()), req)
	if err != nil {
		h.writeFailure(w, r, apperrors.SurfaceServerError, err)
		return
	}
	writeJSON(w, http.StatusOK, page)
}

func (h *Handler) getClickTransaction(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		badRequest(w, err)
		return
	}
	record, err := h.clicks.Get(r.Context(), role.FromContext(r.Context()), id)
	if err != nil {
		h.writeFailure(w, r, apperrors.SurfaceClientMessage, err)
		return
	}
	writeJSON(w, http.StatusOK, record)
}
