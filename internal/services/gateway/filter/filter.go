// Package filter turns sparse caller filters into the fully populated
// filters the backend services expect.
package filter

import "strings"

// StatusAll means "no status restriction".
const StatusAll = "ALL"

// Unrestricted is the id value meaning "no restriction on this dimension".
const Unrestricted int64 = 0

// Request is the caller-supplied filter. Nil fields were not supplied.
type Request struct {
	Status      *string
	OfferID     *int64
	PublisherID *int64
	Page        int32
	Size        int32
	Sort        string
}

// Normalized is the filter sent to a backend. Every field holds a value.
type Normalized struct {
	Status      string
	OfferID     int64
	PublisherID int64
	Page        int32
	Size        int32
	Sort        string
}

// Normalize substitutes defaults for missing fields. It never fails, and
// feeding a Normalized value back in as a fully supplied Request yields that
// value.
func Normalize(req Request) Normalized {
	return Normalized{
		Status:      statusOrAll(req.Status),
		OfferID:     idOrUnrestricted(req.OfferID),
		PublisherID: idOrUnrestricted(req.PublisherID),
		Page:        req.Page,
		Size:        req.Size,
		Sort:        req.Sort,
	}
}

func statusOrAll(status *string) string {
	if status == nil || strings.TrimSpace(*status) == "" {
		return StatusAll
	}
	return *status
}

func idOrUnrestricted(id *int64) int64 {
	if id == nil {
		return Unrestricted
	}
	return *id
}
