package httpapi

import (
	"net/http"
	"net/url"
	"strings"

	"github.com/gleb-syrov/bamboolead/internal/services/gateway/filter"
	"github.com/gleb-syrov/bamboolead/internal/services/gateway/service"

	apperrors "github.com/gleb-syrov/bamboolead/internal/platform/errors"
)

// parseStatisticQuery reads ids and the date range; paged routes also read
// page, size and sort through l.
func parseStatisticQuery(q url.Values, l *listing) (service.StatisticQuery, error) {
	var query service.StatisticQuery
	var err error
	if l != nil {
		if query.Filter, err = l.parseFilter(q); err != nil {
			return service.StatisticQuery{}, err
		}
	} else {
		var req filter.Request
		if req.OfferID, err = parseOptionalID(q, "offerId"); err != nil {
			return service.StatisticQuery{}, err
		}
		if req.PublisherID, err = parseOptionalID(q, "publisherId"); err != nil {
			return service.StatisticQuery{}, err
		}
		query.Filter = req
	}
	if query.DateFrom, err = parseDate(q, "dateFrom"); err != nil {
		return service.StatisticQuery{}, err
	}
	if query.DateTo, err = parseDate(q, "dateTo"); err != nil {
		return service.StatisticQuery{}, err
	}
	return query, nil
}

func (h *Handler) getGlobalStatistic(w http.ResponseWriter, r *http.Request) {
	q, err := parseStatisticQuery(r.URL.Query(), nil)
	if err != nil {
		badRequest(w, err)
		return
	}
	global, err := h.statistics.Global(r.Context(), q)
	if err != nil {
		h.writeFailure(w, r, apperrors.SurfaceServerError, err)
		return
	}
	writeJSON(w, http.StatusOK, global)
}

func (h *Handler) getClicksPerDay(w http.ResponseWriter, r *http.Request) {
	q, err := parseStatisticQuery(r.URL.Query(), nil)
	if err != nil {
		badRequest(w, err)
		return
	}
	days, err := h.statistics.ClicksPerDay(r.Context(), q)
	if err != nil {
		h.writeFailure(w, r, apperrors.SurfaceServerError, err)
		return
	}
	writeJSON(w, http.StatusOK, days)
}

func (h *Handler) listDailyStatistics(w http.ResponseWriter, r *http.Request) {
	q, err := parseStatisticQuery(r.URL.Query(), &dailyListing)
	if err != nil {
		badRequest(w, err)
		return
	}
	page, err := h.statistics.Daily(r.Context(), q)
	if err != nil {
		h.writeFailure(w, r, apperrors.SurfaceServerError, err)
		return
	}
	writeJSON(w, http.StatusOK, page)
}

func (h *Handler) getDailyStatisticTotal(w http.ResponseWriter, r *http.Request) {
	q, err := parseStatisticQuery(r.URL.Query(), nil)
	if err != nil {
		badRequest(w, err)
		return
	}
	total, err := h.statistics.DailyTotal(r.Context(), q)
	if err != nil {
		h.writeFailure(w, r, apperrors.SurfaceServerError, err)
		return
	}
	writeJSON(w, http.StatusOK, total)
}

func (h *Handler) listUtmStatistics(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	dimension := strings.ToLower(strings.TrimSpace(query.Get("dimension")))
	if dimension == "" {
		dimension = service.UtmDimensions[0]
	}
	q, err := parseStatisticQuery(query, &utmListing)
	if err != nil {
		badRequest(w, err)
		return
	}
	page, err := h.statistics.Utm(r.Context(), q, dimension)
	if err != nil {
		h.writeFailure(w, r, apperrors.SurfaceServerError, err)
		return
	}
	writeJSON(w, http.StatusOK, page)
}
