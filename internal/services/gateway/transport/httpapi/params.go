package httpapi

import (
	"fmt"
	"net/http"
	"net/url"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/gleb-syrov/bamboolead/internal/platform/pagination"
	"github.com/gleb-syrov/bamboolead/internal/services/gateway/filter"
	"github.com/go-chi/chi/v5"
)

// listing describes the query rules of one paged route.
type listing struct {
	statuses []string
	pageSize pagination.PageSizeConfig
	orderBy  pagination.OrderByConfig
}

var (
	clickStatuses       = []string{"PENDING", "APPROVED", "REJECTED"}
	integrationStatuses = []string{"ACTIVE", "INACTIVE"}

	defaultPageSize = pagination.PageSizeConfig{Default: 20, Max: 100}

	clickListing = listing{
		statuses: clickStatuses,
		pageSize: defaultPageSize,
		orderBy: pagination.OrderByConfig{
			Default: "id,desc",
			Allowed: []string{"id", "createdAt", "offerId", "publisherId", "status", "payout", "revenue", "country"},
		},
	}
	integrationListing = listing{
		statuses: integrationStatuses,
		pageSize: defaultPageSize,
		orderBy: pagination.OrderByConfig{
			Default: "id,desc",
			Allowed: []string{"id", "name", "createdAt", "offerId", "publisherId", "status"},
		},
	}
	dailyListing = listing{
		pageSize: defaultPageSize,
		orderBy: pagination.OrderByConfig{
			Default: "date,desc",
			Allowed: []string{"date", "offerId", "publisherId", "clicks", "uniqueClicks", "conversions", "revenue", "payout"},
		},
	}
	utmListing = listing{
		pageSize: pagination.PageSizeConfig{Default: 20, Max: 500},
		orderBy: pagination.OrderByConfig{
			Default: "clicks,desc",
			Allowed: []string{"value", "clicks", "uniqueClicks", "conversions", "revenue"},
		},
	}
)

// parseFilter reads status, offerId, publisherId, page, size and sort.
func (l listing) parseFilter(q url.Values) (filter.Request, error) {
	var req filter.Request
	var err error
	if len(l.statuses) > 0 {
		if req.Status, err = parseStatus(q.Get("status"), l.statuses); err != nil {
			return filter.Request{}, err
		}
	}
	if req.OfferID, err = parseOptionalID(q, "offerId"); err != nil {
		return filter.Request{}, err
	}
	if req.PublisherID, err = parseOptionalID(q, "publisherId"); err != nil {
		return filter.Request{}, err
	}
	if req.Page, err = parseInt32(q, "page"); err != nil {
		return filter.Request{}, err
	}
	if req.Page < 0 {
		return filter.Request{}, fmt.Errorf("page must not be negative")
	}
	size, err := parseInt32(q, "size")
	if err != nil {
		return filter.Request{}, err
	}
	req.Size = pagination.ClampPageSize(size, l.pageSize)
	if req.Sort, err = pagination.NormalizeOrderBy(q.Get("sort"), l.orderBy); err != nil {
		return filter.Request{}, err
	}
	return req, nil
}

// parseStatus returns nil for an absent status.
func parseStatus(raw string, allowed []string) (*string, error) {
	raw = strings.ToUpper(strings.TrimSpace(raw))
	if raw == "" {
		return nil, nil
	}
	if raw != filter.StatusAll && !slices.Contains(allowed, raw) {
		return nil, fmt.Errorf("unknown status %q", raw)
	}
	return &raw, nil
}

// parseOptionalID returns nil for an absent id and rejects non-positive ids.
func parseOptionalID(q url.Values, key string) (*int64, error) {
	raw := strings.TrimSpace(q.Get(key))
	if raw == "" {
		return nil, nil
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return nil, fmt.Errorf("%s must be a positive integer", key)
	}
	return &id, nil
}

func parseInt32(q url.Values, key string) (int32, error) {
	raw := strings.TrimSpace(q.Get(key))
	if raw == "" {
		return 0, nil
	}
	value, err := strconv.ParseInt(raw, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer", key)
	}
	return int32(value), nil
}

func parseDate(q url.Values, key string) (*time.Time, error) {
	raw := strings.TrimSpace(q.Get(key))
	if raw == "" {
		return nil, nil
	}
	date, err := time.Parse(time.DateOnly, raw)
	if err != nil {
		return nil, fmt.Errorf("%s must be a YYYY-MM-DD date", key)
	}
	return &date, nil
}

func pathID(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("id must be a positive integer")
	}
	return id, nil
}
