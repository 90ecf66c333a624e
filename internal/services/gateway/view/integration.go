package view

import (
	"time"

	"github.com/gleb-syrov/bamboolead/internal/services/gateway/backend"
	"github.com/gleb-syrov/bamboolead/internal/services/gateway/names"
)

// Integration is the listing form of an integration, the same for every role.
type Integration struct {
	ID            int64     `json:"id"`
	Name          string    `json:"name"`
	OfferID       int64     `json:"offerId"`
	OfferName     string    `json:"offerName"`
	PublisherID   int64     `json:"publisherId"`
	PublisherName string    `json:"publisherName,omitempty"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"createdAt"`
}

// IntegrationDetail is the single-record form of an integration.
type IntegrationDetail struct {
	Integration
	URL       string    `json:"url"`
	Method    string    `json:"method"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Integrations returns a shaper for listing records bound to n.
func Integrations(n names.Names) func(backend.IntegrationShortInfo) Integration {
	return func(record backend.IntegrationShortInfo) Integration {
		return ShapeIntegration(record, n)
	}
}

// ShapeIntegration enriches a listing record with offer and publisher names.
func ShapeIntegration(record backend.IntegrationShortInfo, n names.Names) Integration {
	publisherName, _ := n.PublisherName(record.PublisherID)
	return Integration{
		ID:            record.ID,
		Name:          record.Name,
		OfferID:       record.OfferID,
		OfferName:     n.OfferName(record.OfferID),
		PublisherID:   record.PublisherID,
		PublisherName: publisherName,
		Status:        record.Status,
		CreatedAt:     record.CreatedAt,
	}
}

// ShapeIntegrationDetail enriches a full integration record.
func ShapeIntegrationDetail(record backend.IntegrationInfo, n names.Names) IntegrationDetail {
	short := ShapeIntegration(backend.IntegrationShortInfo{
		ID:          record.ID,
		Name:        record.Name,
		OfferID:     record.OfferID,
		PublisherID: record.PublisherID,
		Status:      record.Status,
		CreatedAt:   record.CreatedAt,
	}, n)
	return IntegrationDetail{
		Integration: short,
		URL:         record.URL,
		Method:      record.Method,
		UpdatedAt:   record.UpdatedAt,
	}
}
