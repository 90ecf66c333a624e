package view

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/gleb-syrov/bamboolead/internal/platform/pagination"
	"github.com/gleb-syrov/bamboolead/internal/services/gateway/backend"
	"github.com/gleb-syrov/bamboolead/internal/services/gateway/names"
	"github.com/gleb-syrov/bamboolead/internal/services/gateway/role"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

func testNames() names.Names {
	return names.Names{
		Offers:     names.NewMap(map[int64]string{11: "Summer Promo"}),
		Publishers: names.NewMap(map[int64]string{7: "Acme Media"}),
	}
}

func fullClick() backend.ClickTransaction {
	return backend.ClickTransaction{
		ID:          1,
		ClickID:     uuid.MustParse("6f1c2f7e-1f44-4c63-9f6b-0a4c1c1b9e21"),
		OfferID:     11,
		PublisherID: 7,
		Status:      "APPROVED",
		IP:          "203.0.113.9",
		UserAgent:   "Mozilla/5.0",
		Referer:     "https://example.com",
		Country:     "DE",
		UTMSource:   "newsletter",
		UTMMedium:   "email",
		UTMCampaign: "spring",
		UTMContent:  "hero",
		UTMTerm:     "shoes",
		Payout:      decimal.RequireFromString("1.25"),
		Revenue:     decimal.RequireFromString("2.00"),
		CreatedAt:   time.Date(2026, time.March, 4, 10, 0, 0, 0, time.UTC),
	}
}

func jsonKeys(t *testing.T, v any) map[string]bool {
	t.Helper()
	data, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var fields map[string]any
	if err := json.Unmarshal(data, &fields); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	keys := make(map[string]bool, len(fields))
	for key := range fields {
		keys[key] = true
	}
	return keys
}

func TestClickTransactionVariantByRole(t *testing.T) {
	record := fullClick()
	n := testNames()

	tests := []struct {
		name string
		role role.Role
		want string
	}{
		{name: "admin", role: role.Admin, want: "admin"},
		{name: "publisher", role: role.Publisher, want: "publisher"},
		{name: "unknown role", role: role.Role("AUDITOR"), want: "publisher"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var got string
			switch ClickTransaction(tc.role, record, n).(type) {
			case ClickTransactionAdmin:
				got = "admin"
			case ClickTransactionPublisher:
				got = "publisher"
			}
			if got != tc.want {
				t.Fatalf("variant = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestClickTransactionAdminIsStrictSuperset(t *testing.T) {
	record := fullClick()
	n := testNames()

	admin := jsonKeys(t, ClickTransaction(role.Admin, record, n))
	publisher := jsonKeys(t, ClickTransaction(role.Publisher, record, n))

	for key := range publisher {
		if !admin[key] {
			t.Fatalf("publisher field %q missing from admin variant", key)
		}
	}
	if len(admin) <= len(publisher) {
		t.Fatalf("admin fields = %d, publisher fields = %d; want admin > publisher", len(admin), len(publisher))
	}
	for _, hidden := range []string{"ip", "userAgent", "referer", "revenue", "publisherId", "publisherName"} {
		if publisher[hidden] {
			t.Fatalf("publisher variant exposes %q", hidden)
		}
	}
}

func TestClickTransactionVariantIgnoresRecordContent(t *testing.T) {
	n := testNames()
	sparse := backend.ClickTransaction{ID: 2}
	shape := ClickTransactions(role.Publisher, n)

	for _, record := range []backend.ClickTransaction{fullClick(), sparse} {
		if _, ok := shape(record).(ClickTransactionPublisher); !ok {
			t.Fatalf("record %d shaped as %T", record.ID, shape(record))
		}
	}
}

func TestClickTransactionEnrichment(t *testing.T) {
	record := fullClick()
	record.OfferID = 0
	record.PublisherID = 99

	admin, ok := ClickTransaction(role.Admin, record, testNames()).(ClickTransactionAdmin)
	if !ok {
		t.Fatal("expected admin variant")
	}
	if admin.OfferName != names.OfferFallback {
		t.Fatalf("offer name = %q, want %q", admin.OfferName, names.OfferFallback)
	}
	if admin.PublisherName != "" {
		t.Fatalf("publisher name = %q, want empty", admin.PublisherName)
	}
	if admin.UTM.Campaign != "spring" {
		t.Fatalf("utm campaign = %q, want spring", admin.UTM.Campaign)
	}
}

func TestIntegrationsEnrichment(t *testing.T) {
	records := []backend.IntegrationShortInfo{
		{ID: 1, Name: "postback", OfferID: 0, PublisherID: 7, Status: "ACTIVE"},
		{ID: 2, Name: "pixel", OfferID: 11, PublisherID: 8, Status: "INACTIVE"},
	}
	page := pagination.AssembleMapped(records, pagination.Info{Number: 0, Size: 20, TotalElements: 2}, Integrations(testNames()))

	first, second := page.Content[0], page.Content[1]
	if first.OfferName != "ALL" || first.PublisherName != "Acme Media" {
		t.Fatalf("first = %+v", first)
	}
	if second.OfferName != "Summer Promo" || second.PublisherName != "" {
		t.Fatalf("second = %+v", second)
	}
	if keys := jsonKeys(t, second); keys["publisherName"] {
		t.Fatal("expected publisherName omitted when unmapped")
	}
}

func TestShapeIntegrationDetail(t *testing.T) {
	updated := time.Date(2026, time.April, 1, 8, 30, 0, 0, time.UTC)
	detail := ShapeIntegrationDetail(backend.IntegrationInfo{
		ID:          5,
		Name:        "postback",
		OfferID:     11,
		PublisherID: 7,
		URL:         "https://tracker.example/pb?click={click_id}",
		Method:      "GET",
		Status:      "ACTIVE",
		UpdatedAt:   updated,
	}, testNames())

	if detail.ID != 5 || detail.OfferName != "Summer Promo" || detail.PublisherName != "Acme Media" {
		t.Fatalf("detail = %+v", detail)
	}
	if detail.URL == "" || detail.Method != "GET" || !detail.UpdatedAt.Equal(updated) {
		t.Fatalf("detail fields = %+v", detail)
	}
	keys := jsonKeys(t, detail)
	for _, key := range []string{"id", "offerName", "url", "method", "updatedAt"} {
		if !keys[key] {
			t.Fatalf("detail json missing %q", key)
		}
	}
}

func TestDailyStatistics(t *testing.T) {
	shape := DailyStatistics(testNames())
	got := shape(backend.DailyClickStatistic{
		Date:        "2026-03-04",
		OfferID:     11,
		PublisherID: 7,
		Clicks:      40,
		Revenue:     decimal.RequireFromString("12.5"),
	})
	if got.OfferName != "Summer Promo" || got.PublisherName != "Acme Media" {
		t.Fatalf("names = %q/%q", got.OfferName, got.PublisherName)
	}
	if got.Clicks != 40 || !got.Revenue.Equal(decimal.RequireFromString("12.5")) {
		t.Fatalf("values = %+v", got)
	}
}
