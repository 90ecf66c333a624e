package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/gleb-syrov/bamboolead/internal/platform/pagination"
	"github.com/gleb-syrov/bamboolead/internal/services/gateway/backend"
	"github.com/gleb-syrov/bamboolead/internal/services/gateway/filter"
	"github.com/gleb-syrov/bamboolead/internal/services/gateway/role"
	"github.com/gleb-syrov/bamboolead/internal/services/gateway/view"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	apperrors "github.com/gleb-syrov/bamboolead/internal/platform/errors"
)

func int64Ptr(v int64) *int64 { return &v }

func TestIntegrationListPublisherScenario(t *testing.T) {
	fake := &fakeIntegrationBackend{page: &backend.IntegrationPageRes{
		Integrations: []backend.IntegrationShortInfo{
			{ID: 1, Name: "postback", OfferID: 0, PublisherID: 7},
			{ID: 2, Name: "pixel", OfferID: 11, PublisherID: 7},
		},
		Pageable: pagination.Info{Number: 0, Size: 20, TotalElements: 2},
	}}
	svc := NewIntegrationService(fake, testNames())

	page, err := svc.List(context.Background(), filter.Request{
		PublisherID: int64Ptr(7),
		Page:        0,
		Size:        20,
		Sort:        "id,desc",
	})
	if err != nil {
		t.Fatalf("list: %v", err)
	}

	got := fake.lastParams
	if got.Status != "ALL" || got.OfferID != 0 || got.PublisherID != 7 {
		t.Fatalf("backend received %+v", got)
	}
	if got.Pageable != (backend.Pageable{Page: 0, Size: 20, Sort: "id,desc"}) {
		t.Fatalf("pageable = %+v", got.Pageable)
	}
	for _, item := range page.Content {
		if item.PublisherName != "Acme Media" {
			t.Fatalf("publisher name = %q, want Acme Media", item.PublisherName)
		}
	}
	if page.Content[0].OfferName != "ALL" {
		t.Fatalf("offer name for id 0 = %q, want ALL", page.Content[0].OfferName)
	}
	if page.Content[1].OfferName != "Summer Promo" {
		t.Fatalf("offer name for id 11 = %q", page.Content[1].OfferName)
	}
}

func TestClickListKeepsBackendTotal(t *testing.T) {
	records := make([]backend.ClickTransaction, 10)
	for i := range records {
		records[i] = backend.ClickTransaction{ID: int64(i + 1), OfferID: 11}
	}
	fake := &fakeClickBackend{container: &backend.ClickTransactionContainer{
		ClickTransactions: records,
		Pageable:          pagination.Info{Number: 5, Size: 10, TotalElements: 57},
	}}
	svc := NewClickService(fake, testNames())

	page, err := svc.List(context.Background(), role.Admin, filter.Request{Page: 5, Size: 10, Sort: "id,desc"})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if page.TotalElements != 57 {
		t.Fatalf("total elements = %d, want 57", page.TotalElements)
	}
	if len(page.Content) != 10 {
		t.Fatalf("content = %d, want 10", len(page.Content))
	}
	if fake.lastFilter.Status != filter.StatusAll {
		t.Fatalf("status = %q, want ALL", fake.lastFilter.Status)
	}
	for i, item := range page.Content {
		admin, ok := item.(view.ClickTransactionAdmin)
		if !ok {
			t.Fatalf("item %d shaped as %T", i, item)
		}
		if admin.ID != int64(i+1) {
			t.Fatalf("item %d id = %d; order not preserved", i, admin.ID)
		}
	}
}

func TestClickGetByRole(t *testing.T) {
	fake := &fakeClickBackend{record: &backend.ClickTransaction{ID: 3, OfferID: 11, PublisherID: 7}}
	svc := NewClickService(fake, testNames())

	got, err := svc.Get(context.Background(), role.Publisher, 3)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	publisher, ok := got.(view.ClickTransactionPublisher)
	if !ok {
		t.Fatalf("shaped as %T", got)
	}
	if publisher.OfferName != "Summer Promo" {
		t.Fatalf("offer name = %q", publisher.OfferName)
	}
}

func TestBackendErrorPropagatesUnchanged(t *testing.T) {
	backendErr := status.Error(codes.NotFound, "not found")
	svc := NewIntegrationService(&fakeIntegrationBackend{err: backendErr}, testNames())

	_, err := svc.Get(context.Background(), 404)
	if !errors.Is(err, backendErr) {
		t.Fatalf("err = %v, want backend error", err)
	}
	if status.Convert(err).Message() != "not found" {
		t.Fatalf("message = %q", status.Convert(err).Message())
	}
}

func TestNameResolutionFailureFailsRequest(t *testing.T) {
	resolver := testNames()
	resolver.err = errors.New("lookup down")
	fake := &fakeClickBackend{container: &backend.ClickTransactionContainer{}}
	svc := NewClickService(fake, resolver)

	if _, err := svc.List(context.Background(), role.Admin, filter.Request{}); err == nil {
		t.Fatal("expected error when names cannot be resolved")
	}
}

func TestIntegrationCommands(t *testing.T) {
	tests := []struct {
		name     string
		command  *backend.CommandResponse
		wantCode apperrors.Code
	}{
		{name: "accepted", command: &backend.CommandResponse{Success: true, ID: 9}},
		{name: "rejected", command: &backend.CommandResponse{Success: false, Message: "integration is active"}, wantCode: apperrors.CodeCommandRejected},
		{name: "rejected without message", command: &backend.CommandResponse{}, wantCode: apperrors.CodeCommandRejected},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			fake := &fakeIntegrationBackend{command: tc.command}
			svc := NewIntegrationService(fake, testNames())

			result, err := svc.Update(context.Background(), 9, backend.IntegrationReq{Name: "postback"})
			if tc.wantCode == "" {
				if err != nil {
					t.Fatalf("update: %v", err)
				}
				if result.ID != 9 {
					t.Fatalf("id = %d, want 9", result.ID)
				}
				if fake.lastUpdate.ID != 9 || fake.lastUpdate.Integration.Name != "postback" {
					t.Fatalf("backend received %+v", fake.lastUpdate)
				}
				return
			}
			var gatewayErr *apperrors.Error
			if !errors.As(err, &gatewayErr) || gatewayErr.Code != tc.wantCode {
				t.Fatalf("err = %v, want code %s", err, tc.wantCode)
			}
			if gatewayErr.Message == "" {
				t.Fatal("expected rejection message")
			}
		})
	}
}

func TestChangeStatusAndDelete(t *testing.T) {
	fake := &fakeIntegrationBackend{command: &backend.CommandResponse{Success: true}}
	svc := NewIntegrationService(fake, testNames())

	if _, err := svc.ChangeStatus(context.Background(), 4, "INACTIVE"); err != nil {
		t.Fatalf("change status: %v", err)
	}
	if *fake.lastStatus != (backend.IntegrationChangeStatusReq{ID: 4, Status: "INACTIVE"}) {
		t.Fatalf("backend received %+v", fake.lastStatus)
	}
	if _, err := svc.Delete(context.Background(), 4); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := svc.Create(context.Background(), backend.IntegrationReq{Name: "x"}); err != nil {
		t.Fatalf("create: %v", err)
	}
}

func TestPlaceholdersPassThrough(t *testing.T) {
	want := map[string]string{"utm_source": "UTM Source", "click_id": "Click ID"}
	resolver := testNames()
	svc := NewIntegrationService(&fakeIntegrationBackend{placeholder: &backend.ClickPlaceholdersRes{Placeholders: want}}, resolver)

	got, err := svc.Placeholders(context.Background())
	if err != nil {
		t.Fatalf("placeholders: %v", err)
	}
	if len(got) != len(want) || got["utm_source"] != "UTM Source" {
		t.Fatalf("placeholders = %v", got)
	}
	if resolver.calls != 0 {
		t.Fatalf("resolver calls = %d, want 0", resolver.calls)
	}
}

func TestStatisticDefaultRange(t *testing.T) {
	fake := &fakeStatisticBackend{global: &backend.GlobalStatistic{Clicks: 3}}
	svc := NewStatisticService(fake, testNames())
	svc.now = func() time.Time { return time.Date(2026, time.March, 31, 23, 0, 0, 0, time.UTC) }

	got, err := svc.Global(context.Background(), StatisticQuery{})
	if err != nil {
		t.Fatalf("global: %v", err)
	}
	if got.Clicks != 3 {
		t.Fatalf("clicks = %d", got.Clicks)
	}
	if fake.lastFilter.DateFrom != "2026-03-01" || fake.lastFilter.DateTo != "2026-03-31" {
		t.Fatalf("range = %s..%s", fake.lastFilter.DateFrom, fake.lastFilter.DateTo)
	}
	if fake.lastFilter.Pageable != nil {
		t.Fatal("expected no pageable for global statistics")
	}
}

func TestStatisticRejectsInvertedRange(t *testing.T) {
	from := time.Date(2026, time.April, 2, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, time.April, 1, 0, 0, 0, 0, time.UTC)
	fake := &fakeStatisticBackend{}
	svc := NewStatisticService(fake, testNames())

	_, err := svc.DailyTotal(context.Background(), StatisticQuery{DateFrom: &from, DateTo: &to})
	var gatewayErr *apperrors.Error
	if !errors.As(err, &gatewayErr) || gatewayErr.Code != apperrors.CodeInvalidArgument {
		t.Fatalf("err = %v, want invalid argument", err)
	}
	if fake.lastFilter != nil {
		t.Fatal("backend should not be called")
	}
}

func TestStatisticDailyEnrichedAndPaged(t *testing.T) {
	fake := &fakeStatisticBackend{daily: &backend.DailyClickStatisticContainer{
		DailyClickStatistic: []backend.DailyClickStatistic{{Date: "2026-03-04", OfferID: 11, PublisherID: 7, Clicks: 4}},
		Pageable:            pagination.Info{Number: 1, Size: 1, TotalElements: 31},
	}}
	svc := NewStatisticService(fake, testNames())

	page, err := svc.Daily(context.Background(), StatisticQuery{Filter: filter.Request{Page: 1, Size: 1, Sort: "date,desc"}})
	if err != nil {
		t.Fatalf("daily: %v", err)
	}
	if page.TotalElements != 31 || page.TotalPages != 31 {
		t.Fatalf("page = %+v", page)
	}
	if page.Content[0].OfferName != "Summer Promo" || page.Content[0].PublisherName != "Acme Media" {
		t.Fatalf("item = %+v", page.Content[0])
	}
	if fake.lastFilter.Pageable == nil || fake.lastFilter.Pageable.Sort != "date,desc" {
		t.Fatalf("pageable = %+v", fake.lastFilter.Pageable)
	}
}

func TestStatisticDailyTotalUnpaged(t *testing.T) {
	fake := &fakeStatisticBackend{total: &backend.DailyClickStatisticTotal{Clicks: 99}}
	svc := NewStatisticService(fake, testNames())

	total, err := svc.DailyTotal(context.Background(), StatisticQuery{Filter: filter.Request{Page: 2, Size: 50}})
	if err != nil {
		t.Fatalf("daily total: %v", err)
	}
	if total.Clicks != 99 || fake.lastFilter.Pageable != nil {
		t.Fatalf("total = %+v, pageable = %+v", total, fake.lastFilter.Pageable)
	}
}

func TestStatisticClicksPerDayEmpty(t *testing.T) {
	svc := NewStatisticService(&fakeStatisticBackend{perDay: &backend.ClicksPerDayResp{}}, testNames())

	days, err := svc.ClicksPerDay(context.Background(), StatisticQuery{})
	if err != nil {
		t.Fatalf("clicks per day: %v", err)
	}
	if days == nil || len(days) != 0 {
		t.Fatalf("days = %#v, want empty slice", days)
	}
}

func TestStatisticUtm(t *testing.T) {
	fake := &fakeStatisticBackend{utm: &backend.UtmStatisticRes{
		UtmStatisticList: []backend.UtmStatistic{{Value: "newsletter", Clicks: 40}},
		Pageable:         pagination.Info{Number: 0, Size: 500, TotalElements: 1},
	}}
	svc := NewStatisticService(fake, testNames())

	page, err := svc.Utm(context.Background(), StatisticQuery{Filter: filter.Request{OfferID: int64Ptr(11), Size: 500, Sort: "clicks,desc"}}, "utm_source")
	if err != nil {
		t.Fatalf("utm: %v", err)
	}
	if page.Content[0].Value != "newsletter" {
		t.Fatalf("content = %+v", page.Content)
	}
	if fake.lastUtm.Dimension != "utm_source" || fake.lastUtm.OfferID != 11 || fake.lastUtm.Pageable.Size != 500 {
		t.Fatalf("backend received %+v", fake.lastUtm)
	}

	if _, err := svc.Utm(context.Background(), StatisticQuery{}, "utm_nope"); err == nil {
		t.Fatal("expected unknown dimension error")
	}
}
