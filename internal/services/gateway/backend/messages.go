package backend

import (
	"time"

	"github.com/gleb-syrov/bamboolead/internal/platform/pagination"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Models in this file are the gateway's view of the backend protobuf
// messages: money is decimal, click ids are UUIDs and timestamps are
// time.Time. The json tags are the HTTP shape of the records passed through
// unchanged.

// Pageable is the page request triple forwarded to backends.
type Pageable struct {
	Page int32  `json:"page"`
	Size int32  `json:"size"`
	Sort string `json:"sort"`
}

// IDRequest addresses one record.
type IDRequest struct {
	ID int64 `json:"id"`
}

// VoidRequest is the empty request message.
type VoidRequest struct{}

// CommandResponse acknowledges an integration command.
type CommandResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	ID      int64  `json:"id,omitempty"`
}

// ClickTransactionFilter selects click transactions.
type ClickTransactionFilter struct {
	Status      string   `json:"status"`
	OfferID     int64    `json:"offerId"`
	PublisherID int64    `json:"publisherId"`
	Pageable    Pageable `json:"pageable"`
}

// ClickTransaction is one tracked click.
type ClickTransaction struct {
	ID          int64           `json:"id"`
	ClickID     uuid.UUID       `json:"clickId"`
	OfferID     int64           `json:"offerId"`
	PublisherID int64           `json:"publisherId"`
	Status      string          `json:"status"`
	IP          string          `json:"ip"`
	UserAgent   string          `json:"userAgent"`
	Referer     string          `json:"referer"`
	Country     string          `json:"country"`
	UTMSource   string          `json:"utmSource"`
	UTMMedium   string          `json:"utmMedium"`
	UTMCampaign string          `json:"utmCampaign"`
	UTMContent  string          `json:"utmContent"`
	UTMTerm     string          `json:"utmTerm"`
	Payout      decimal.Decimal `json:"payout"`
	Revenue     decimal.Decimal `json:"revenue"`
	CreatedAt   time.Time       `json:"createdAt"`
}

// ClickTransactionContainer is one page of click transactions.
type ClickTransactionContainer struct {
	ClickTransactions []ClickTransaction `json:"clickTransactions"`
	Pageable          pagination.Info    `json:"pageable"`
}

// IntegrationReq carries the editable integration fields.
type IntegrationReq struct {
	Name        string `json:"name"`
	OfferID     int64  `json:"offerId"`
	PublisherID int64  `json:"publisherId"`
	URL         string `json:"url"`
	Method      string `json:"method"`
	Status      string `json:"status"`
}

// IntegrationUpdateReq replaces the fields of integration ID.
type IntegrationUpdateReq struct {
	ID          int64          `json:"id"`
	Integration IntegrationReq `json:"integration"`
}

// IntegrationChangeStatusReq moves integration ID to Status.
type IntegrationChangeStatusReq struct {
	ID     int64  `json:"id"`
	Status string `json:"status"`
}

// IntegrationInfo is the full integration record.
type IntegrationInfo struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	OfferID     int64     `json:"offerId"`
	PublisherID int64     `json:"publisherId"`
	URL         string    `json:"url"`
	Method      string    `json:"method"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// IntegrationShortInfo is the listing form of an integration.
type IntegrationShortInfo struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	OfferID     int64     `json:"offerId"`
	PublisherID int64     `json:"publisherId"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"createdAt"`
}

// IntegrationParamsReq selects integrations.
type IntegrationParamsReq struct {
	Status      string   `json:"status"`
	OfferID     int64    `json:"offerId"`
	PublisherID int64    `json:"publisherId"`
	Pageable    Pageable `json:"pageable"`
}

// IntegrationPageRes is one page of integrations.
type IntegrationPageRes struct {
	Integrations []IntegrationShortInfo `json:"integrations"`
	Pageable     pagination.Info        `json:"pageable"`
}

// ClickPlaceholdersRes maps postback placeholder tokens to labels.
type ClickPlaceholdersRes struct {
	Placeholders map[string]string `json:"placeholders"`
}

// StatisticFilter selects statistics. Pageable is nil for unpaged queries.
type StatisticFilter struct {
	OfferID     int64     `json:"offerId"`
	PublisherID int64     `json:"publisherId"`
	DateFrom    string    `json:"dateFrom"`
	DateTo      string    `json:"dateTo"`
	Pageable    *Pageable `json:"pageable,omitempty"`
}

// GlobalStatistic holds totals across the filtered range.
type GlobalStatistic struct {
	Clicks       int64           `json:"clicks"`
	UniqueClicks int64           `json:"uniqueClicks"`
	Conversions  int64           `json:"conversions"`
	Revenue      decimal.Decimal `json:"revenue"`
	Payout       decimal.Decimal `json:"payout"`
	Profit       decimal.Decimal `json:"profit"`
}

// ClickPerDay is the click count for one day.
type ClickPerDay struct {
	Date   string `json:"date"`
	Clicks int64  `json:"clicks"`
}

// ClicksPerDayResp lists click counts per day.
type ClicksPerDayResp struct {
	ClickPerDayList []ClickPerDay `json:"clickPerDayList"`
}

// DailyClickStatistic is one day of one offer/publisher pair.
type DailyClickStatistic struct {
	Date         string          `json:"date"`
	OfferID      int64           `json:"offerId"`
	PublisherID  int64           `json:"publisherId"`
	Clicks       int64           `json:"clicks"`
	UniqueClicks int64           `json:"uniqueClicks"`
	Conversions  int64           `json:"conversions"`
	Revenue      decimal.Decimal `json:"revenue"`
	Payout       decimal.Decimal `json:"payout"`
}

// DailyClickStatisticContainer is one page of daily statistics.
type DailyClickStatisticContainer struct {
	DailyClickStatistic []DailyClickStatistic `json:"dailyClickStatistic"`
	Pageable            pagination.Info       `json:"pageable"`
}

// DailyClickStatisticTotal sums the daily statistics of a filter.
type DailyClickStatisticTotal struct {
	Clicks       int64           `json:"clicks"`
	UniqueClicks int64           `json:"uniqueClicks"`
	Conversions  int64           `json:"conversions"`
	Revenue      decimal.Decimal `json:"revenue"`
	Payout       decimal.Decimal `json:"payout"`
}

// UtmStatisticReq selects a UTM breakdown along Dimension.
type UtmStatisticReq struct {
	OfferID     int64    `json:"offerId"`
	PublisherID int64    `json:"publisherId"`
	DateFrom    string   `json:"dateFrom"`
	DateTo      string   `json:"dateTo"`
	Dimension   string   `json:"dimension"`
	Pageable    Pageable `json:"pageable"`
}

// UtmStatistic aggregates clicks for one value of a UTM dimension.
type UtmStatistic struct {
	Value        string          `json:"value"`
	Clicks       int64           `json:"clicks"`
	UniqueClicks int64           `json:"uniqueClicks"`
	Conversions  int64           `json:"conversions"`
	Revenue      decimal.Decimal `json:"revenue"`
}

// UtmStatisticRes is one page of a UTM breakdown.
type UtmStatisticRes struct {
	UtmStatisticList []UtmStatistic `json:"utmStatisticList"`
	Pageable         pagination.Info `json:"pageable"`
}
