package view

import (
	"github.com/gleb-syrov/bamboolead/internal/services/gateway/backend"
	"github.com/gleb-syrov/bamboolead/internal/services/gateway/names"
	"github.com/shopspring/decimal"
)

// DailyStatistic is one day of one offer/publisher pair with names resolved.
type DailyStatistic struct {
	Date          string          `json:"date"`
	OfferID       int64           `json:"offerId"`
	OfferName     string          `json:"offerName"`
	PublisherID   int64           `json:"publisherId"`
	PublisherName string          `json:"publisherName,omitempty"`
	Clicks        int64           `json:"clicks"`
	UniqueClicks  int64           `json:"uniqueClicks"`
	Conversions   int64           `json:"conversions"`
	Revenue       decimal.Decimal `json:"revenue"`
	Payout        decimal.Decimal `json:"payout"`
}

// DailyStatistics returns a shaper for daily rows bound to n.
func DailyStatistics(n names.Names) func(backend.DailyClickStatistic) DailyStatistic {
	return func(record backend.DailyClickStatistic) DailyStatistic {
		publisherName, _ := n.PublisherName(record.PublisherID)
		return DailyStatistic{
			Date:          record.Date,
			OfferID:       record.OfferID,
			OfferName:     n.OfferName(record.OfferID),
			PublisherID:   record.PublisherID,
			PublisherName: publisherName,
			Clicks:        record.Clicks,
			UniqueClicks:  record.UniqueClicks,
			Conversions:   record.Conversions,
			Revenue:       record.Revenue,
			Payout:        record.Payout,
		}
	}
}

// UtmStatistic is one value of a UTM breakdown. It carries no ids to enrich.
type UtmStatistic = backend.UtmStatistic

// GlobalStatistic is passed through as the backend reports it.
type GlobalStatistic = backend.GlobalStatistic

// ClickPerDay is passed through as the backend reports it.
type ClickPerDay = backend.ClickPerDay

// DailyStatisticTotal is passed through as the backend reports it.
type DailyStatisticTotal = backend.DailyClickStatisticTotal
