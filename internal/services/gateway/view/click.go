package view

import (
	"time"

	"github.com/gleb-syrov/bamboolead/internal/services/gateway/backend"
	"github.com/gleb-syrov/bamboolead/internal/services/gateway/names"
	"github.com/gleb-syrov/bamboolead/internal/services/gateway/role"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ClickTransactionView is implemented only by the role variants in this
// package.
type ClickTransactionView interface {
	clickTransactionView()
}

// UTM holds the five tracking parameters of a click.
type UTM struct {
	Source   string `json:"source,omitempty"`
	Medium   string `json:"medium,omitempty"`
	Campaign string `json:"campaign,omitempty"`
	Content  string `json:"content,omitempty"`
	Term     string `json:"term,omitempty"`
}

// ClickTransactionAdmin is the full click detail shown to administrators.
type ClickTransactionAdmin struct {
	ID            int64           `json:"id"`
	ClickID       uuid.UUID       `json:"clickId"`
	OfferID       int64           `json:"offerId"`
	OfferName     string          `json:"offerName"`
	PublisherID   int64           `json:"publisherId"`
	PublisherName string          `json:"publisherName,omitempty"`
	Status        string          `json:"status"`
	IP            string          `json:"ip"`
	UserAgent     string          `json:"userAgent"`
	Referer       string          `json:"referer"`
	Country       string          `json:"country"`
	UTM           UTM             `json:"utm"`
	Payout        decimal.Decimal `json:"payout"`
	Revenue       decimal.Decimal `json:"revenue"`
	CreatedAt     time.Time       `json:"createdAt"`
}

// ClickTransactionPublisher is the restricted click detail shown to
// publishers. Visitor fingerprint, revenue and publisher identity are not
// part of this type.
type ClickTransactionPublisher struct {
	ID        int64           `json:"id"`
	ClickID   uuid.UUID       `json:"clickId"`
	OfferID   int64           `json:"offerId"`
	OfferName string          `json:"offerName"`
	Status    string          `json:"status"`
	Country   string          `json:"country"`
	UTM       UTM             `json:"utm"`
	Payout    decimal.Decimal `json:"payout"`
	CreatedAt time.Time       `json:"createdAt"`
}

func (ClickTransactionAdmin) clickTransactionView()     {}
func (ClickTransactionPublisher) clickTransactionView() {}

type clickShaper func(backend.ClickTransaction, names.Names) ClickTransactionView

var clickShapers = map[role.Role]clickShaper{
	role.Admin:     clickAdmin,
	role.Publisher: clickPublisher,
}

// ClickTransaction shapes record for r. Roles without a dedicated variant get
// the publisher variant.
func ClickTransaction(r role.Role, record backend.ClickTransaction, n names.Names) ClickTransactionView {
	return clickShaperFor(r)(record, n)
}

// ClickTransactions returns a shaper bound to r and n, for use with
// pagination.AssembleMapped. The variant is chosen once, before any record is
// seen.
func ClickTransactions(r role.Role, n names.Names) func(backend.ClickTransaction) ClickTransactionView {
	shape := clickShaperFor(r)
	return func(record backend.ClickTransaction) ClickTransactionView {
		return shape(record, n)
	}
}

func clickShaperFor(r role.Role) clickShaper {
	if shape, ok := clickShapers[r]; ok {
		return shape
	}
	return clickShapers[role.Publisher]
}

func clickAdmin(record backend.ClickTransaction, n names.Names) ClickTransactionView {
	publisherName, _ := n.PublisherName(record.PublisherID)
	return ClickTransactionAdmin{
		ID:            record.ID,
		ClickID:       record.ClickID,
		OfferID:       record.OfferID,
		OfferName:     n.OfferName(record.OfferID),
		PublisherID:   record.PublisherID,
		PublisherName: publisherName,
		Status:        record.Status,
		IP:            record.IP,
		UserAgent:     record.UserAgent,
		Referer:       record.Referer,
		Country:       record.Country,
		UTM:           utmOf(record),
		Payout:        record.Payout,
		Revenue:       record.Revenue,
		CreatedAt:     record.CreatedAt,
	}
}

func clickPublisher(record backend.ClickTransaction, n names.Names) ClickTransactionView {
	return ClickTransactionPublisher{
		ID:        record.ID,
		ClickID:   record.ClickID,
		OfferID:   record.OfferID,
		OfferName: n.OfferName(record.OfferID),
		Status:    record.Status,
		Country:   record.Country,
		UTM:       utmOf(record),
		Payout:    record.Payout,
		CreatedAt: record.CreatedAt,
	}
}

func utmOf(record backend.ClickTransaction) UTM {
	return UTM{
		Source:   record.UTMSource,
		Medium:   record.UTMMedium,
		Campaign: record.UTMCampaign,
		Content:  record.UTMContent,
		Term:     record.UTMTerm,
	}
}
